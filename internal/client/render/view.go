package render

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/atsscan/internal/client/models"
)

// Tier is the color band of an ATS score.
type Tier string

const (
	TierGreen  Tier = "green"
	TierBlue   Tier = "blue"
	TierYellow Tier = "yellow"
	TierRed    Tier = "red"
)

func ScoreTier(score int) Tier {
	switch {
	case score >= 90:
		return TierGreen
	case score >= 80:
		return TierBlue
	case score >= 70:
		return TierYellow
	default:
		return TierRed
	}
}

// CardKeywordLimit is how many matched keywords a list card shows.
const CardKeywordLimit = 5

const dateLayout = "January 2, 2006 at 3:04 PM"

type ResultView struct {
	Score   int
	Tier    Tier
	Missing []string
	Matched []string
	Summary string
	Saved   bool
}

func NewResultView(r models.Result) ResultView {
	return ResultView{
		Score:   r.Score,
		Tier:    ScoreTier(r.Score),
		Missing: r.Missing,
		Matched: r.Matched,
		Summary: r.Summary,
		Saved:   r.Saved,
	}
}

type CardView struct {
	ID          string
	Filename    string
	Date        string
	Score       int
	Tier        Tier
	Matched     []string
	MoreMatched int
}

type ListView struct {
	Cards []CardView
	Total int
}

func (v ListView) Empty() bool { return len(v.Cards) == 0 }

func NewListView(l *models.ScanList) ListView {
	if l == nil {
		return ListView{}
	}
	v := ListView{Total: l.Total, Cards: make([]CardView, 0, len(l.Scans))}
	for _, s := range l.Scans {
		shown := s.MatchedKeywords
		more := 0
		if len(shown) > CardKeywordLimit {
			more = len(shown) - CardKeywordLimit
			shown = shown[:CardKeywordLimit]
		}
		v.Cards = append(v.Cards, CardView{
			ID:          s.ID,
			Filename:    fallback(s.ResumeFilename, "Resume Scan"),
			Date:        formatDate(s.Timestamp.Time),
			Score:       s.ATSScore,
			Tier:        ScoreTier(s.ATSScore),
			Matched:     shown,
			MoreMatched: more,
		})
	}
	return v
}

type DetailView struct {
	ID             string
	Date           string
	Filename       string
	Score          int
	Tier           Tier
	JobDescription string
	Missing        []string
	Matched        []string
	Feedback       string
	Improvements   []models.Improvement
	QuickWins      []string
	Strengths      []string
}

func NewDetailView(s *models.Scan) DetailView {
	return DetailView{
		ID:             s.ID,
		Date:           formatDate(s.Timestamp.Time),
		Filename:       s.ResumeFilename,
		Score:          s.ATSScore,
		Tier:           ScoreTier(s.ATSScore),
		JobDescription: s.JobDescription,
		Missing:        s.MissingKeywords,
		Matched:        s.MatchedKeywords,
		Feedback:       s.AIFeedback,
		Improvements:   s.DetailedImprovements,
		QuickWins:      s.QuickWins,
		Strengths:      s.Strengths,
	}
}

// NavView is the header: who is logged in and which actions are offered.
type NavView struct {
	Authenticated bool
	UserLabel     string
	View          string
	Actions       []string
}

type WelcomeView struct {
	Greeting string
}

// MessageView is a one-line notice. Level is "info", "success" or "error".
type MessageView struct {
	Level string
	Text  string
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(dateLayout)
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
