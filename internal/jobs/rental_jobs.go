package jobs

import (
	"context"
	"time"

	"carrental-backoffice/internal/logger"
)

// MarkOverdueRentals flips active contracts past their return datetime to
// overdue so the dashboard and overdue report pick them up.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()

		count, err := jr.store.RentalContractRepository.MarkOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}
		logger.Info("Marked rentals as overdue", "count", count)
	})
}
