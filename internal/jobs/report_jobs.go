package jobs

import (
	"context"

	"carrental-backoffice/internal/logger"
)

// RefreshReportViews rebuilds the precomputed report aggregates so the
// dashboard read paths serve fresh numbers.
func (jr *JobRunner) RefreshReportViews() {
	jr.runWithRecovery("RefreshReportViews", func() {
		ctx := context.Background()

		if err := jr.store.ReportRepository.RefreshViews(ctx); err != nil {
			logger.Error("Failed to refresh report views", "error", err)
			return
		}
		logger.Info("Report views refreshed")
	})
}
