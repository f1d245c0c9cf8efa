package models

// Scan is one persisted resume-vs-job-description analysis.
type Scan struct {
	ID                   string        `json:"id"`
	UserID               string        `json:"user_id,omitempty"`
	Timestamp            Timestamp     `json:"timestamp"`
	ResumeFilename       string        `json:"resume_filename,omitempty"`
	ResumeText           string        `json:"resume_text,omitempty"`
	JobDescription       string        `json:"job_description"`
	ATSScore             int           `json:"ats_score"`
	MatchedKeywords      []string      `json:"matched_keywords"`
	MissingKeywords      []string      `json:"missing_keywords"`
	AIFeedback           string        `json:"ai_feedback"`
	DetailedImprovements []Improvement `json:"detailed_improvements,omitempty"`
	QuickWins            []string      `json:"quick_wins,omitempty"`
	Strengths            []string      `json:"strengths,omitempty"`
}

// ScanSummary is the list-endpoint form of a scan, without the large text fields.
type ScanSummary struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id,omitempty"`
	Timestamp       Timestamp `json:"timestamp"`
	ResumeFilename  string    `json:"resume_filename,omitempty"`
	ATSScore        int       `json:"ats_score"`
	MatchedKeywords []string  `json:"matched_keywords"`
	MissingKeywords []string  `json:"missing_keywords"`
}

type ScanList struct {
	Scans []ScanSummary `json:"scans"`
	Total int           `json:"total"`
}

type Improvement struct {
	Category   string `json:"category"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
	Priority   string `json:"priority"`
}

// ScanCreate submits already-extracted resume text for analysis and storage.
type ScanCreate struct {
	ResumeText     string  `json:"resume_text"`
	JobDescription string  `json:"job_description"`
	ResumeFilename *string `json:"resume_filename,omitempty"`
}

// ScanUpdate re-runs the analysis with whichever fields are set.
type ScanUpdate struct {
	ResumeText     *string `json:"resume_text,omitempty"`
	JobDescription *string `json:"job_description,omitempty"`
	ResumeFilename *string `json:"resume_filename,omitempty"`
}
