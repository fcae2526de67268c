package joblock

import (
	"context"
	"time"
)

// LockRepository provides compare-and-swap acquisition on the backing store.
type LockRepository interface {
	// Acquire attempts an atomic conditional take of the named lock. It
	// returns false when another holder has it and the hold is younger than
	// staleAfter; a hold older than staleAfter is reclaimed.
	Acquire(ctx context.Context, jobName string, staleAfter time.Duration) (bool, error)
	// Release unconditionally clears the lock and stamps released_at. Called
	// on every exit path of a run.
	Release(ctx context.Context, jobName string) error
	Get(ctx context.Context, jobName string) (Lock, error)
}
