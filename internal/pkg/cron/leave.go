package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopleops-ph/hrops-backend-go/internal/domain/leave"
)

// AccrualRunner is implemented by the leave accrual service.
type AccrualRunner interface {
	RunAccrual(ctx context.Context, now time.Time) leave.AccrualRunResult
}

// LeaveJobs wires the leave accrual run onto the scheduler. The job ticks
// hourly and fires only during the configured run hour in the organization
// timezone, so the accrual effectively runs once a day.
type LeaveJobs struct {
	runner  AccrualRunner
	loc     *time.Location
	runHour int
}

func NewLeaveJobs(runner AccrualRunner, loc *time.Location, runHour int) *LeaveJobs {
	return &LeaveJobs{
		runner:  runner,
		loc:     loc,
		runHour: runHour,
	}
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("leave_accrual", 1*time.Hour, j.RunLeaveAccrual)
}

func (j *LeaveJobs) RunLeaveAccrual(ctx context.Context) error {
	now := time.Now()
	if now.In(j.loc).Hour() != j.runHour {
		return nil
	}

	slog.Info("Cron: Starting leave accrual job")

	result := j.runner.RunAccrual(ctx, now)
	switch {
	case result.Skipped:
		slog.Info("Cron: Leave accrual skipped, another run holds the lock")
	case !result.Success:
		return fmt.Errorf("leave accrual run failed: %s", result.Error)
	default:
		slog.Info("Cron: Leave accrual completed",
			"total_employees", result.TotalEmployees,
			"updated", result.UpdatedCount)
	}
	return nil
}
