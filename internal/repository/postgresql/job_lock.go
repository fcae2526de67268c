package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/joblock"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/database"
)

type jobLockRepository struct {
	db *database.DB
}

func NewJobLockRepository(db *database.DB) joblock.LockRepository {
	return &jobLockRepository{db: db}
}

// Acquire takes the named lock in a single compare-and-set statement. A lock
// whose holder last touched it more than staleAfter ago is treated as
// abandoned and may be reclaimed.
func (r *jobLockRepository) Acquire(ctx context.Context, jobName string, staleAfter time.Duration) (bool, error) {
	query := `
		INSERT INTO job_locks (job_name, is_locked, locked_at, released_at)
		VALUES ($1, TRUE, NOW(), NULL)
		ON CONFLICT (job_name) DO UPDATE
			SET is_locked = TRUE, locked_at = NOW(), released_at = NULL
			WHERE job_locks.is_locked = FALSE
				OR job_locks.locked_at < NOW() - make_interval(secs => $2)
		RETURNING job_name`

	var name string
	err := r.db.QueryRow(ctx, query, jobName, staleAfter.Seconds()).Scan(&name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to acquire job lock: %w", err)
	}

	return true, nil
}

func (r *jobLockRepository) Release(ctx context.Context, jobName string) error {
	query := `
		UPDATE job_locks
		SET is_locked = FALSE, released_at = NOW()
		WHERE job_name = $1`

	tag, err := r.db.Exec(ctx, query, jobName)
	if err != nil {
		return fmt.Errorf("failed to release job lock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return joblock.ErrLockNotFound
	}

	return nil
}

func (r *jobLockRepository) Get(ctx context.Context, jobName string) (joblock.Lock, error) {
	query := `
		SELECT job_name, is_locked, locked_at, released_at
		FROM job_locks
		WHERE job_name = $1`

	var lock joblock.Lock
	err := r.db.QueryRow(ctx, query, jobName).Scan(
		&lock.JobName, &lock.IsLocked, &lock.LockedAt, &lock.ReleasedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return joblock.Lock{}, joblock.ErrLockNotFound
		}
		return joblock.Lock{}, fmt.Errorf("failed to get job lock: %w", err)
	}

	return lock, nil
}
