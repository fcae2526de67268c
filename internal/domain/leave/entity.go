package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryStatus enum for ledger history entries.
type HistoryStatus string

const (
	HistoryStatusApproved HistoryStatus = "approved"
	HistoryStatusRejected HistoryStatus = "rejected"
	HistoryStatusPending  HistoryStatus = "pending"
)

// HistoryEntry is an append-only audit line on the ledger. History records
// request-driven events only; scheduled accrual does not write here.
type HistoryEntry struct {
	Date        time.Time     `json:"date"`
	Description string        `json:"description"`
	Days        decimal.Decimal `json:"days"`
	TicketRef   string        `json:"ticket_ref,omitempty"`
	Status      HistoryStatus `json:"status"`
}

// Ledger - one per employee. CurrentBalance changes only through the accrual
// job or explicit request approval/rejection.
type Ledger struct {
	ID                string
	UserID            string
	AnnualLeaveCredit decimal.Decimal
	CurrentBalance    decimal.Decimal
	AccrualRate       decimal.Decimal
	LastAccrualDate   time.Time
	NextAccrualDate   time.Time
	IsActive          bool
	EmploymentStatus  string
	History           []HistoryEntry
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DueForAccrual reports whether the ledger accrues in a run evaluated at
// cutoff (end of day in the organization timezone). Inactive employees never
// accrue, regardless of their dates.
func (l *Ledger) DueForAccrual(cutoff time.Time) bool {
	return l.IsActive && !l.NextAccrualDate.After(cutoff)
}

// ApplyAccrual credits one cycle's worth, stamps the accrual, and advances
// the schedule by at least one monthly boundary. The schedule always moves
// even when NextAccrualDate falls later on the run day than now, so a ledger
// credited by an end-of-day run cannot accrue again the next day. Missed
// cycles collapse into a single advance; the credit is still one cycle's
// rate. Returns the amount credited.
func (l *Ledger) ApplyAccrual(now time.Time) decimal.Decimal {
	accrued := l.AccrualRate
	l.CurrentBalance = l.CurrentBalance.Add(accrued)
	l.LastAccrualDate = now

	next := l.NextAccrualDate.AddDate(0, 1, 0)
	for !next.After(now) {
		next = next.AddDate(0, 1, 0)
	}
	l.NextAccrualDate = next

	return accrued
}

// EndOfDay returns the last instant of t's calendar day in loc. Accrual runs
// compare next-accrual dates against this cutoff so a date falling anywhere
// on the run day still accrues.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}
