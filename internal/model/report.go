package model

import "time"

// BatchReport summarizes one batch run over a comments file
type BatchReport struct {
	RunID      string         `json:"run_id"`
	Source     string         `json:"source"`                // Input file path
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Totals     Totals         `json:"totals"`
	Rules      map[string]int `json:"rules,omitempty"` // Corrections per rule key
	Outcomes   []Outcome      `json:"outcomes"`
}

// Totals counts outcomes by status
type Totals struct {
	Comments  int `json:"comments"`
	Corrected int `json:"corrected"`
	Clean     int `json:"clean"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Add records an outcome in the report
func (r *BatchReport) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	r.Totals.Comments++

	switch o.Status {
	case StatusCorrected:
		r.Totals.Corrected++
		if o.Correction != nil {
			if r.Rules == nil {
				r.Rules = make(map[string]int)
			}
			r.Rules[o.Correction.Rule]++
		}
	case StatusClean:
		r.Totals.Clean++
	case StatusSkipped:
		r.Totals.Skipped++
	case StatusFailed:
		r.Totals.Failed++
	}
}
