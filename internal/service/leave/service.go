package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopleops-ph/hrops-backend-go/internal/domain/joblock"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/leave"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/metrics"
)

// lockName is the shared job lock key; only one accrual run may hold it.
const lockName = "leaveAccrual"

type LeaveServiceImpl struct {
	ledgerRepo leave.LedgerRepository
	lockRepo   joblock.LockRepository
	loc        *time.Location
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewLeaveService(
	ledgerRepo leave.LedgerRepository,
	lockRepo joblock.LockRepository,
	loc *time.Location,
	staleAfter time.Duration,
	logger *slog.Logger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		ledgerRepo: ledgerRepo,
		lockRepo:   lockRepo,
		loc:        loc,
		staleAfter: staleAfter,
		logger:     logger,
	}
}

// RunAccrual implements leave.LeaveService. Each ledger is credited and saved
// individually; a failure on one employee is logged and the run moves on, so
// earlier credits are never rolled back.
func (s *LeaveServiceImpl) RunAccrual(ctx context.Context, now time.Time) leave.AccrualRunResult {
	result := leave.AccrualRunResult{
		Updates:   []leave.AccrualUpdate{},
		Timestamp: now.UTC(),
	}

	acquired, err := s.lockRepo.Acquire(ctx, lockName, s.staleAfter)
	if err != nil {
		result.Error = fmt.Sprintf("failed to acquire job lock: %v", err)
		metrics.AccrualRuns.WithLabelValues(metrics.OutcomeFailure).Inc()
		return result
	}
	if !acquired {
		s.logger.Info("leave accrual already running, skipping", "lock", lockName)
		result.Success = true
		result.Skipped = true
		metrics.AccrualRuns.WithLabelValues(metrics.OutcomeSkipped).Inc()
		return result
	}
	defer func() {
		if err := s.lockRepo.Release(ctx, lockName); err != nil {
			s.logger.Error("failed to release job lock", "lock", lockName, "error", err)
		}
	}()

	cutoff := leave.EndOfDay(now, s.loc)

	ledgers, err := s.ledgerRepo.ListDue(ctx, cutoff)
	if err != nil {
		result.Error = fmt.Sprintf("failed to list due ledgers: %v", err)
		metrics.AccrualRuns.WithLabelValues(metrics.OutcomeFailure).Inc()
		return result
	}
	result.TotalEmployees = len(ledgers)

	for _, ledger := range ledgers {
		// ListDue already filters, but the gate is re-checked per ledger so a
		// row that changed between the query and this pass is not credited.
		if !ledger.DueForAccrual(cutoff) {
			continue
		}

		accrued := ledger.ApplyAccrual(now)

		updated, err := s.ledgerRepo.Update(ctx, ledger)
		if err != nil {
			s.logger.Error("failed to save accrued ledger", "user_id", ledger.UserID, "error", err)
			continue
		}

		result.UpdatedCount++
		result.Updates = append(result.Updates, leave.AccrualUpdate{
			UserID:          updated.UserID,
			Accrued:         accrued,
			NewBalance:      updated.CurrentBalance,
			NextAccrualDate: updated.NextAccrualDate,
		})
	}

	result.Success = true
	metrics.AccrualRuns.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.AccrualLedgersUpdated.Add(float64(result.UpdatedCount))

	s.logger.Info("leave accrual run finished",
		"total_employees", result.TotalEmployees,
		"updated", result.UpdatedCount,
	)

	return result
}

// GetLedger implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLedger(ctx context.Context, userID string) (leave.LedgerResponse, error) {
	ledger, err := s.ledgerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return leave.LedgerResponse{}, err
	}
	return leave.ToLedgerResponse(ledger), nil
}
