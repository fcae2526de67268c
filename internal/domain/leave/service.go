package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	// RunAccrual executes one accrual pass under the shared job lock. A run
	// that finds the lock held reports Skipped rather than an error.
	RunAccrual(ctx context.Context, now time.Time) AccrualRunResult
	GetLedger(ctx context.Context, userID string) (LedgerResponse, error)
}
