package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/leave"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/database"
)

type leaveLedgerRepository struct {
	db *database.DB
}

func NewLeaveLedgerRepository(db *database.DB) leave.LedgerRepository {
	return &leaveLedgerRepository{db: db}
}

const ledgerColumns = `
	id, user_id, annual_leave_credit, current_balance, accrual_rate,
	last_accrual_date, next_accrual_date, is_active, employment_status,
	history, created_at, updated_at
`

func scanLedger(row pgx.Row) (leave.Ledger, error) {
	var l leave.Ledger
	err := row.Scan(
		&l.ID, &l.UserID, &l.AnnualLeaveCredit, &l.CurrentBalance, &l.AccrualRate,
		&l.LastAccrualDate, &l.NextAccrualDate, &l.IsActive, &l.EmploymentStatus,
		&l.History, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *leaveLedgerRepository) GetByUserID(ctx context.Context, userID string) (leave.Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM leave_ledgers WHERE user_id = $1`

	ledger, err := scanLedger(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Ledger{}, leave.ErrLedgerNotFound
		}
		return leave.Ledger{}, fmt.Errorf("failed to get leave ledger: %w", err)
	}

	return ledger, nil
}

func (r *leaveLedgerRepository) ListDue(ctx context.Context, cutoff time.Time) ([]leave.Ledger, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM leave_ledgers
		WHERE is_active = TRUE AND next_accrual_date <= $1
		ORDER BY next_accrual_date ASC`

	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list due leave ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []leave.Ledger
	for rows.Next() {
		ledger, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave ledger: %w", err)
		}
		ledgers = append(ledgers, ledger)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave ledgers: %w", err)
	}

	return ledgers, nil
}

func (r *leaveLedgerRepository) Update(ctx context.Context, ledger leave.Ledger) (leave.Ledger, error) {
	query := `
		UPDATE leave_ledgers SET
			annual_leave_credit = $2, current_balance = $3, accrual_rate = $4,
			last_accrual_date = $5, next_accrual_date = $6, is_active = $7,
			employment_status = $8, history = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + ledgerColumns

	updated, err := scanLedger(r.db.QueryRow(ctx, query,
		ledger.ID, ledger.AnnualLeaveCredit, ledger.CurrentBalance, ledger.AccrualRate,
		ledger.LastAccrualDate, ledger.NextAccrualDate, ledger.IsActive,
		ledger.EmploymentStatus, ledger.History,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Ledger{}, leave.ErrLedgerNotFound
		}
		return leave.Ledger{}, fmt.Errorf("failed to update leave ledger: %w", err)
	}

	return updated, nil
}
