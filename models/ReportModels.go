package models

import "time"

// ReportRow is one presentation-ready line of a progress report. All
// percentages are already rounded to whole numbers.
type ReportRow struct {
	GroupName    string `json:"group_name" example:"B-64"`
	GroupID      string `json:"group_id" example:"5b0e6f0c-8a55-4a44-9c70-1f0f3d0f7a11"`
	Budget       int    `json:"budget" example:"1250"`
	PctReceived  int    `json:"pct_received" example:"100"`
	PctInstalled int    `json:"pct_installed" example:"75"`
	PctPunch     int    `json:"pct_punch" example:"0"`
	PctTested    int    `json:"pct_tested" example:"0"`
	PctRestored  int    `json:"pct_restored" example:"0"`
	PctTotal     int    `json:"pct_total" example:"62"`
}

// Pct returns the row's rounded percentage for one category.
func (r ReportRow) Pct(c StandardCategory) int {
	switch c {
	case CategoryReceived:
		return r.PctReceived
	case CategoryInstalled:
		return r.PctInstalled
	case CategoryPunch:
		return r.PctPunch
	case CategoryTested:
		return r.PctTested
	case CategoryRestored:
		return r.PctRestored
	}
	return 0
}

// SetPct stores the rounded percentage for one category.
func (r *ReportRow) SetPct(c StandardCategory, v int) {
	switch c {
	case CategoryReceived:
		r.PctReceived = v
	case CategoryInstalled:
		r.PctInstalled = v
	case CategoryPunch:
		r.PctPunch = v
	case CategoryTested:
		r.PctTested = v
	case CategoryRestored:
		r.PctRestored = v
	}
}

// ProgressReport is the single shape every export adapter consumes.
type ProgressReport struct {
	Title             string            `json:"title" example:"Plant 7 Progress by Area"`
	ProjectName       string            `json:"project_name" example:"Plant 7"`
	GeneratedAt       time.Time         `json:"generated_at" example:"2026-10-15T09:30:00Z"`
	GroupingDimension GroupingDimension `json:"grouping_dimension" example:"area"`
	Rows              []ReportRow       `json:"rows"`
	GrandTotal        ReportRow         `json:"grand_total"`
	SkippedComponents int               `json:"skipped_components" example:"0"`
	Warnings          []string          `json:"warnings,omitempty"`
}

// IsEmpty reports whether the report covers no active component at all.
func (r ProgressReport) IsEmpty() bool {
	return r.GrandTotal.Budget == 0
}
