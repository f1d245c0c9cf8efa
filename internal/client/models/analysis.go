package models

// Analysis is the payload of the unauthenticated analyze endpoint.
// A failed analysis comes back with only Error set.
type Analysis struct {
	Match                Percent       `json:"JD Match"`
	MissingKeywords      []string      `json:"MissingKeywords"`
	MatchedKeywords      []string      `json:"MatchedKeywords"`
	ProfileSummary       string        `json:"Profile Summary"`
	DetailedImprovements []Improvement `json:"Detailed Improvements,omitempty"`
	QuickWins            []string      `json:"Quick Wins,omitempty"`
	Strengths            []string      `json:"Strengths,omitempty"`
	Error                string        `json:"error,omitempty"`
}

// Result is what gets rendered after an analysis, saved or not.
type Result struct {
	Score          int
	Missing        []string
	Matched        []string
	Summary        string
	Saved          bool
	ResumeFilename string
}

func (a *Analysis) Result() Result {
	return Result{
		Score:   int(a.Match),
		Missing: a.MissingKeywords,
		Matched: a.MatchedKeywords,
		Summary: a.ProfileSummary,
	}
}

func (s *Scan) Result() Result {
	return Result{
		Score:          s.ATSScore,
		Missing:        s.MissingKeywords,
		Matched:        s.MatchedKeywords,
		Summary:        s.AIFeedback,
		Saved:          true,
		ResumeFilename: s.ResumeFilename,
	}
}
