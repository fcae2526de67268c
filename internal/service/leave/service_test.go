package leave

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/peopleops-ph/hrops-backend-go/internal/domain/joblock"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeLedgerRepo struct {
	mu      sync.Mutex
	ledgers map[string]leave.Ledger // keyed by user id
	listErr error
	failFor string // UserID whose Update always fails
}

func newFakeLedgerRepo(ledgers ...leave.Ledger) *fakeLedgerRepo {
	repo := &fakeLedgerRepo{ledgers: make(map[string]leave.Ledger)}
	for _, l := range ledgers {
		repo.ledgers[l.UserID] = l
	}
	return repo
}

func (f *fakeLedgerRepo) GetByUserID(_ context.Context, userID string) (leave.Ledger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.ledgers[userID]
	if !ok {
		return leave.Ledger{}, leave.ErrLedgerNotFound
	}
	return l, nil
}

func (f *fakeLedgerRepo) ListDue(_ context.Context, cutoff time.Time) ([]leave.Ledger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var due []leave.Ledger
	for _, l := range f.ledgers {
		if l.IsActive && !l.NextAccrualDate.After(cutoff) {
			due = append(due, l)
		}
	}
	return due, nil
}

func (f *fakeLedgerRepo) Update(_ context.Context, ledger leave.Ledger) (leave.Ledger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ledger.UserID == f.failFor {
		return leave.Ledger{}, errors.New("write failed")
	}
	if _, ok := f.ledgers[ledger.UserID]; !ok {
		return leave.Ledger{}, leave.ErrLedgerNotFound
	}
	f.ledgers[ledger.UserID] = ledger
	return ledger, nil
}

type fakeLockRepo struct {
	mu       sync.Mutex
	held     bool
	lockedAt time.Time
	releases int
}

func (f *fakeLockRepo) Acquire(_ context.Context, _ string, staleAfter time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held && time.Since(f.lockedAt) < staleAfter {
		return false, nil
	}
	f.held = true
	f.lockedAt = time.Now()
	return true, nil
}

func (f *fakeLockRepo) Release(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.held = false
	f.releases++
	return nil
}

func (f *fakeLockRepo) Get(_ context.Context, jobName string) (joblock.Lock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lockedAt := f.lockedAt
	return joblock.Lock{JobName: jobName, IsLocked: f.held, LockedAt: &lockedAt}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func manila(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	return loc
}

func activeLedger(userID string, next time.Time) leave.Ledger {
	return leave.Ledger{
		ID:              "ledger-" + userID,
		UserID:          userID,
		CurrentBalance:  decimal.RequireFromString("3.75"),
		AccrualRate:     decimal.RequireFromString("1.25"),
		NextAccrualDate: next,
		IsActive:        true,
	}
}

// ===== RUN ACCRUAL =====

func TestLeaveService_RunAccrual_CreditsDueLedgers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)
	now := time.Date(2026, 6, 15, 1, 0, 0, 0, loc)

	repo := newFakeLedgerRepo(
		activeLedger("user-due", now.AddDate(0, 0, -1)),
		activeLedger("user-today", now),
		activeLedger("user-future", now.AddDate(0, 0, 5)),
	)
	lockRepo := &fakeLockRepo{}
	svc := NewLeaveService(repo, lockRepo, loc, 6*time.Hour, testLogger())

	result := svc.RunAccrual(ctx, now)

	assert.True(t, result.Success)
	assert.False(t, result.Skipped)
	assert.Equal(t, 2, result.TotalEmployees)
	assert.Equal(t, 2, result.UpdatedCount)
	assert.Len(t, result.Updates, 2)

	credited, err := repo.GetByUserID(ctx, "user-due")
	require.NoError(t, err)
	assert.True(t, credited.CurrentBalance.Equal(decimal.RequireFromString("5")))
	assert.True(t, credited.NextAccrualDate.After(now))

	untouched, err := repo.GetByUserID(ctx, "user-future")
	require.NoError(t, err)
	assert.True(t, untouched.CurrentBalance.Equal(decimal.RequireFromString("3.75")))
}

func TestLeaveService_RunAccrual_InactiveExcluded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)
	now := time.Date(2026, 6, 15, 1, 0, 0, 0, loc)

	inactive := activeLedger("user-inactive", now.AddDate(0, 0, -10))
	inactive.IsActive = false

	repo := newFakeLedgerRepo(inactive)
	svc := NewLeaveService(repo, &fakeLockRepo{}, loc, 6*time.Hour, testLogger())

	result := svc.RunAccrual(ctx, now)

	assert.True(t, result.Success)
	assert.Zero(t, result.TotalEmployees)
	assert.Zero(t, result.UpdatedCount)
}

func TestLeaveService_RunAccrual_SkipsWhileLockHeld(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)
	now := time.Date(2026, 6, 15, 1, 0, 0, 0, loc)

	repo := newFakeLedgerRepo(activeLedger("user-due", now.AddDate(0, 0, -1)))
	lockRepo := &fakeLockRepo{held: true, lockedAt: time.Now()}
	svc := NewLeaveService(repo, lockRepo, loc, 6*time.Hour, testLogger())

	result := svc.RunAccrual(ctx, now)

	assert.True(t, result.Success)
	assert.True(t, result.Skipped)
	assert.Zero(t, result.UpdatedCount)

	// The skipped run must not have released the other holder's lock.
	assert.Zero(t, lockRepo.releases)

	untouched, err := repo.GetByUserID(ctx, "user-due")
	require.NoError(t, err)
	assert.True(t, untouched.CurrentBalance.Equal(decimal.RequireFromString("3.75")))
}

func TestLeaveService_RunAccrual_ReclaimsStaleLock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)
	now := time.Date(2026, 6, 15, 1, 0, 0, 0, loc)

	repo := newFakeLedgerRepo(activeLedger("user-due", now.AddDate(0, 0, -1)))
	lockRepo := &fakeLockRepo{held: true, lockedAt: time.Now().Add(-7 * time.Hour)}
	svc := NewLeaveService(repo, lockRepo, loc, 6*time.Hour, testLogger())

	result := svc.RunAccrual(ctx, now)

	assert.True(t, result.Success)
	assert.False(t, result.Skipped)
	assert.Equal(t, 1, result.UpdatedCount)
}

func TestLeaveService_RunAccrual_ReleasesLockAfterRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)
	now := time.Date(2026, 6, 15, 1, 0, 0, 0, loc)

	repo := newFakeLedgerRepo()
	lockRepo := &fakeLockRepo{}
	svc := NewLeaveService(repo, lockRepo, loc, 6*time.Hour, testLogger())

	first := svc.RunAccrual(ctx, now)
	require.True(t, first.Success)
	assert.Equal(t, 1, lockRepo.releases)

	second := svc.RunAccrual(ctx, now)
	assert.True(t, second.Success)
	assert.False(t, second.Skipped)
}

func TestLeaveService_RunAccrual_ReleasesLockOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)
	now := time.Date(2026, 6, 15, 1, 0, 0, 0, loc)

	repo := newFakeLedgerRepo()
	repo.listErr = errors.New("connection reset")
	lockRepo := &fakeLockRepo{}
	svc := NewLeaveService(repo, lockRepo, loc, 6*time.Hour, testLogger())

	result := svc.RunAccrual(ctx, now)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "connection reset")
	assert.Equal(t, 1, lockRepo.releases)
}

func TestLeaveService_RunAccrual_FailedLedgerDoesNotRollBackOthers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)
	now := time.Date(2026, 6, 15, 1, 0, 0, 0, loc)

	repo := newFakeLedgerRepo(
		activeLedger("user-ok", now.AddDate(0, 0, -1)),
		activeLedger("user-bad", now.AddDate(0, 0, -1)),
	)
	repo.failFor = "user-bad"
	svc := NewLeaveService(repo, &fakeLockRepo{}, loc, 6*time.Hour, testLogger())

	result := svc.RunAccrual(ctx, now)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.TotalEmployees)
	assert.Equal(t, 1, result.UpdatedCount)

	ok, err := repo.GetByUserID(ctx, "user-ok")
	require.NoError(t, err)
	assert.True(t, ok.CurrentBalance.Equal(decimal.RequireFromString("5")))

	bad, err := repo.GetByUserID(ctx, "user-bad")
	require.NoError(t, err)
	assert.True(t, bad.CurrentBalance.Equal(decimal.RequireFromString("3.75")))
}

func TestLeaveService_RunAccrual_ContendedRunsCreditOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)
	now := time.Date(2026, 6, 15, 1, 0, 0, 0, loc)

	repo := newFakeLedgerRepo(activeLedger("user-due", now.AddDate(0, 0, -1)))
	lockRepo := &fakeLockRepo{}
	svc := NewLeaveService(repo, lockRepo, loc, 6*time.Hour, testLogger())

	// Hold the lock for the duration of both calls so exactly one run, the
	// pre-acquired one, does the work.
	acquired, err := lockRepo.Acquire(ctx, "leaveAccrual", 6*time.Hour)
	require.NoError(t, err)
	require.True(t, acquired)

	contended := svc.RunAccrual(ctx, now)
	require.NoError(t, lockRepo.Release(ctx, "leaveAccrual"))
	winner := svc.RunAccrual(ctx, now)

	assert.True(t, contended.Skipped)
	assert.Zero(t, contended.UpdatedCount)
	assert.False(t, winner.Skipped)
	assert.Equal(t, 1, winner.UpdatedCount)

	credited, err := repo.GetByUserID(ctx, "user-due")
	require.NoError(t, err)
	assert.True(t, credited.CurrentBalance.Equal(decimal.RequireFromString("5")))
}

func TestLeaveService_RunAccrual_SameDayLaterDateCreditedOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)
	now := time.Date(2026, 6, 15, 1, 0, 0, 0, loc)

	// Accrual date falls at 23:00 on the run day, well after the 01:00 run.
	repo := newFakeLedgerRepo(activeLedger("user-tonight", time.Date(2026, 6, 15, 23, 0, 0, 0, loc)))
	svc := NewLeaveService(repo, &fakeLockRepo{}, loc, 6*time.Hour, testLogger())

	first := svc.RunAccrual(ctx, now)
	require.True(t, first.Success)
	assert.Equal(t, 1, first.UpdatedCount)

	credited, err := repo.GetByUserID(ctx, "user-tonight")
	require.NoError(t, err)
	assert.True(t, credited.CurrentBalance.Equal(decimal.RequireFromString("5")))
	assert.Equal(t, time.Date(2026, 7, 15, 23, 0, 0, 0, loc), credited.NextAccrualDate)

	second := svc.RunAccrual(ctx, now.AddDate(0, 0, 1))
	require.True(t, second.Success)
	assert.Zero(t, second.UpdatedCount, "next day's run must not credit the same cycle twice")

	unchanged, err := repo.GetByUserID(ctx, "user-tonight")
	require.NoError(t, err)
	assert.True(t, unchanged.CurrentBalance.Equal(decimal.RequireFromString("5")))
}

func TestLeaveService_RunAccrual_NoHistoryWritten(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)
	now := time.Date(2026, 6, 15, 1, 0, 0, 0, loc)

	repo := newFakeLedgerRepo(activeLedger("user-due", now.AddDate(0, 0, -1)))
	svc := NewLeaveService(repo, &fakeLockRepo{}, loc, 6*time.Hour, testLogger())

	result := svc.RunAccrual(ctx, now)
	require.True(t, result.Success)

	credited, err := repo.GetByUserID(ctx, "user-due")
	require.NoError(t, err)
	assert.Empty(t, credited.History)
}

// ===== GET LEDGER =====

func TestLeaveService_GetLedger(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)

	repo := newFakeLedgerRepo(activeLedger("user-1", time.Date(2026, 7, 10, 0, 0, 0, 0, loc)))
	svc := NewLeaveService(repo, &fakeLockRepo{}, loc, 6*time.Hour, testLogger())

	resp, err := svc.GetLedger(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
	assert.NotNil(t, resp.History)
}

func TestLeaveService_GetLedger_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loc := manila(t)

	svc := NewLeaveService(newFakeLedgerRepo(), &fakeLockRepo{}, loc, 6*time.Hour, testLogger())

	_, err := svc.GetLedger(ctx, "missing")

	assert.ErrorIs(t, err, leave.ErrLedgerNotFound)
}
