package leave

import (
	"context"
	"time"
)

// LedgerRepository defines data access for employee leave ledgers.
type LedgerRepository interface {
	GetByUserID(ctx context.Context, userID string) (Ledger, error)
	// ListDue returns active ledgers whose next accrual date is at or before
	// the cutoff.
	ListDue(ctx context.Context, cutoff time.Time) ([]Ledger, error)
	Update(ctx context.Context, ledger Ledger) (Ledger, error)
}
