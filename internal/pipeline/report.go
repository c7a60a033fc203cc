package pipeline

import (
	"time"

	"github.com/ppiankov/eggcorn/internal/model"
	"github.com/ppiankov/eggcorn/internal/worker"
)

// BuildReport folds batch results into a report. Results that carry an
// error instead of an outcome are recorded as failed.
func BuildReport(runID, source string, startedAt time.Time, results []*worker.CheckResult) *model.BatchReport {
	report := &model.BatchReport{
		RunID:     runID,
		Source:    source,
		StartedAt: startedAt,
		Outcomes:  make([]model.Outcome, 0, len(results)),
	}

	for _, res := range results {
		switch {
		case res.Error != nil:
			report.Add(model.Outcome{
				CommentID: res.CommentID,
				Status:    model.StatusFailed,
				Error:     res.Error.Error(),
			})
		case res.Outcome != nil:
			report.Add(*res.Outcome)
		}
	}

	report.FinishedAt = time.Now().UTC()
	return report
}
