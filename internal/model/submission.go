package model

import "time"

// Submission is the durable snapshot written once, at flow completion, from
// a completed SessionState. Append-only: never updated or deleted by the
// application. The field set and order mirrors the panel CSV layout exactly.
type Submission struct {
	ID            int64         `json:"id"`
	CompletedAt   time.Time     `json:"completion_time"`
	Name          string        `json:"name"`
	Surname       string        `json:"surname"`
	Contact       string        `json:"contact"`
	Institution   string        `json:"institution"`
	Cohort        string        `json:"cohort"`
	Profile       string        `json:"profile"`
	EfficacyBand  string        `json:"efficacy_band"`
	EfficacyTotal int           `json:"efficacy_total"`
	Scores        InterestScore `json:"scores"`
}

// SubmissionFilter narrows panel scans. Empty fields impose no restriction;
// set fields match exactly, case-insensitively.
type SubmissionFilter struct {
	Institution string `form:"institution" json:"institution"`
	Cohort      string `form:"cohort" json:"cohort"`
}

// PanelAggregate is the pure reduction the review panel shows over a scan
// result: how many submissions, the mean self-efficacy total, and how often
// each interest profile occurred.
type PanelAggregate struct {
	Count              int            `json:"count"`
	MeanEfficacy       float64        `json:"mean_efficacy"`
	ProfileFrequencies map[string]int `json:"profile_frequencies"`
}
