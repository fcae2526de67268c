package joblock

import "time"

// Lock is the singleton-per-job-name mutual exclusion document. At most one
// holder per job name; a holder older than the staleness threshold is treated
// as abandoned and may be reclaimed.
type Lock struct {
	JobName    string
	IsLocked   bool
	LockedAt   *time.Time
	ReleasedAt *time.Time
}
