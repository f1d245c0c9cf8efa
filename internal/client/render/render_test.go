package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/atsscan/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreTier(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{100, TierGreen}, {90, TierGreen},
		{89, TierBlue}, {80, TierBlue},
		{79, TierYellow}, {70, TierYellow},
		{69, TierRed}, {0, TierRed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreTier(tt.score), "score %d", tt.score)
	}
}

func TestNew(t *testing.T) {
	for _, f := range []string{"", "text", "TEXT", "html"} {
		r, err := New(f)
		require.NoError(t, err, f)
		require.NotNil(t, r)
	}
	_, err := New("pdf")
	require.Error(t, err)
}

func uploadedScan() *models.Scan {
	return &models.Scan{
		ID:              "s1",
		ATSScore:        82,
		MissingKeywords: []string{"SQL"},
		MatchedKeywords: []string{"Python"},
		AIFeedback:      "Strong match",
	}
}

func TestHTML_UploadedScanResult(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)

	out, err := String(h, Result, NewResultView(uploadedScan().Result()))
	require.NoError(t, err)

	assert.Contains(t, out, `<div class="font-bold text-blue-600" data-tier="blue">82%</div>`)
	assert.Equal(t, 1, strings.Count(out, `class="keyword-tag missing"`))
	assert.Equal(t, 1, strings.Count(out, `class="keyword-tag matched`))
	assert.Contains(t, out, `<span class="keyword-tag missing">SQL</span>`)
	assert.Contains(t, out, `>Python</span>`)
	assert.Contains(t, out, "Strong match")
	assert.Contains(t, out, "Scan saved successfully!")
	for _, other := range []string{"text-green-600\" data-tier", "text-yellow-600", "text-red-600"} {
		assert.NotContains(t, out, other)
	}
}

func TestHTML_EscapesBackendText(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)

	out, err := String(h, Result, ResultView{
		Score:   10,
		Tier:    TierRed,
		Missing: []string{"<script>alert(1)</script>"},
		Summary: "a & b",
	})
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "a &amp; b")
}

func TestListView_Truncation(t *testing.T) {
	kws := make([]string, 8)
	for i := range kws {
		kws[i] = fmt.Sprintf("kw%d", i)
	}
	list := &models.ScanList{Total: 1, Scans: []models.ScanSummary{{
		ID:              "s1",
		ATSScore:        95,
		MatchedKeywords: kws,
		Timestamp:       models.Timestamp{Time: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	}}}

	v := NewListView(list)
	require.Len(t, v.Cards, 1)
	card := v.Cards[0]
	assert.Equal(t, kws[:5], card.Matched)
	assert.Equal(t, 3, card.MoreMatched)
	assert.Equal(t, "Resume Scan", card.Filename)
	assert.Equal(t, TierGreen, card.Tier)
	assert.Len(t, kws, 8, "source slice untouched")

	h, err := NewHTML()
	require.NoError(t, err)
	out, err := String(h, ScanList, v)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, `class="keyword-tag matched`))
	assert.Contains(t, out, "+3 more")
	assert.NotContains(t, out, "kw5")

	txt, err := NewText()
	require.NoError(t, err)
	out, err = String(txt, ScanList, v)
	require.NoError(t, err)
	assert.Contains(t, out, "[s1] Resume Scan  95% [green]")
	assert.Contains(t, out, "kw0, kw1, kw2, kw3, kw4 +3 more")
	assert.Contains(t, out, "Showing 1 of 1 scans.")
}

func TestListView_Empty(t *testing.T) {
	v := NewListView(&models.ScanList{})
	assert.True(t, v.Empty())
	assert.True(t, NewListView(nil).Empty())

	txt, err := NewText()
	require.NoError(t, err)
	out, err := String(txt, ScanList, v)
	require.NoError(t, err)
	assert.Contains(t, out, "No scans yet.")

	h, err := NewHTML()
	require.NoError(t, err)
	out, err = String(h, ScanList, v)
	require.NoError(t, err)
	assert.Contains(t, out, "empty-state")
}

func TestDetail_NoMissingKeywordsShowsNone(t *testing.T) {
	s := &models.Scan{
		ID:              "s9",
		ATSScore:        91,
		JobDescription:  "Go engineer",
		MatchedKeywords: []string{"Go"},
		AIFeedback:      "Great",
		Strengths:       []string{"Concise"},
		DetailedImprovements: []models.Improvement{
			{Category: "Skills", Issue: "No k8s", Suggestion: "Add k8s", Priority: "high"},
		},
	}
	v := NewDetailView(s)

	h, err := NewHTML()
	require.NoError(t, err)
	out, err := String(h, ScanDetail, v)
	require.NoError(t, err)
	assert.Contains(t, out, `<p class="text-sm text-gray-500">None</p>`)
	assert.NotContains(t, out, "<strong>File:</strong>")
	assert.Contains(t, out, "Concise")

	txt, err := NewText()
	require.NoError(t, err)
	out, err = String(txt, ScanDetail, v)
	require.NoError(t, err)
	assert.Contains(t, out, "Missing Keywords: None")
	assert.Contains(t, out, "Matched Keywords: Go")
	assert.Contains(t, out, "ATS Score: 91% [green]")
	assert.Contains(t, out, "  - Skills (high): No k8s")
}

func TestText_Result(t *testing.T) {
	txt, err := NewText()
	require.NoError(t, err)

	out, err := String(txt, Result, NewResultView(uploadedScan().Result()))
	require.NoError(t, err)
	assert.Contains(t, out, "ATS Compatibility Score: 82% [blue]")
	assert.Contains(t, out, "Missing Keywords: SQL\n")
	assert.Contains(t, out, "Matched Keywords: Python\n")
}

func TestChrome(t *testing.T) {
	txt, err := NewText()
	require.NoError(t, err)

	out, err := String(txt, Nav, NavView{Authenticated: true, UserLabel: "Ann", View: "dashboard", Actions: []string{"dashboard", "logout"}})
	require.NoError(t, err)
	assert.Equal(t, "Logged in as Ann | view: dashboard | dashboard, logout\n", out)

	out, err = String(txt, Message, MessageView{Level: "error", Text: "boom"})
	require.NoError(t, err)
	assert.Equal(t, "Error: boom\n", out)

	out, err = String(txt, Welcome, WelcomeView{Greeting: "Good morning, Ann!"})
	require.NoError(t, err)
	assert.Equal(t, "Good morning, Ann!\n", out)

	h, err := NewHTML()
	require.NoError(t, err)
	out, err = String(h, Nav, NavView{Actions: []string{"login", "signup"}, View: "login"})
	require.NoError(t, err)
	assert.Contains(t, out, `data-action="login">Login</a>`)
	assert.NotContains(t, out, "user-label")
}
