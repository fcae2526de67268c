package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccrualUpdate is one employee's outcome within an accrual run.
type AccrualUpdate struct {
	UserID          string          `json:"user_id"`
	Accrued         decimal.Decimal `json:"accrued"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	NextAccrualDate time.Time       `json:"next_accrual_date"`
}

// AccrualRunResult is the structured outcome of a single accrual run. The
// job never propagates an error to its scheduler; failures land here.
type AccrualRunResult struct {
	Success        bool            `json:"success"`
	Skipped        bool            `json:"skipped,omitempty"`
	TotalEmployees int             `json:"total_employees"`
	UpdatedCount   int             `json:"updated_count"`
	Updates        []AccrualUpdate `json:"updates"`
	Error          string          `json:"error,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// LedgerResponse is the read model for a single employee ledger.
type LedgerResponse struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	AnnualLeaveCredit decimal.Decimal `json:"annual_leave_credit"`
	CurrentBalance    decimal.Decimal `json:"current_balance"`
	AccrualRate       decimal.Decimal `json:"accrual_rate"`
	LastAccrualDate   time.Time       `json:"last_accrual_date"`
	NextAccrualDate   time.Time       `json:"next_accrual_date"`
	IsActive          bool            `json:"is_active"`
	EmploymentStatus  string          `json:"employment_status"`
	History           []HistoryEntry  `json:"history"`
}

func ToLedgerResponse(l Ledger) LedgerResponse {
	history := l.History
	if history == nil {
		history = []HistoryEntry{}
	}
	return LedgerResponse{
		ID:                l.ID,
		UserID:            l.UserID,
		AnnualLeaveCredit: l.AnnualLeaveCredit,
		CurrentBalance:    l.CurrentBalance,
		AccrualRate:       l.AccrualRate,
		LastAccrualDate:   l.LastAccrualDate,
		NextAccrualDate:   l.NextAccrualDate,
		IsActive:          l.IsActive,
		EmploymentStatus:  l.EmploymentStatus,
		History:           history,
	}
}
