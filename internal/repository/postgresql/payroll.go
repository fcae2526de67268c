package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/payroll"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, user_id, employee, payroll_rate, pay, work_days, holidays,
	total_overtime, total_supplementary, salary_adjustments,
	lates_and_absences, gross_salary, total_deductions, grandtotal,
	status, sent_at, created_at, updated_at
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var userID string
	err := row.Scan(
		&rec.ID, &userID, &rec.Employee, &rec.PayrollRate, &rec.Pay, &rec.WorkDays, &rec.Holidays,
		&rec.TotalOvertime, &rec.TotalSupplementary, &rec.SalaryAdjustments,
		&rec.LatesAndAbsences, &rec.GrossSalary, &rec.TotalDeductions, &rec.GrandTotal,
		&rec.Status, &rec.SentAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payroll_records (
			id, user_id, employee, payroll_rate, pay, work_days, holidays,
			total_overtime, total_supplementary, salary_adjustments,
			lates_and_absences, gross_salary, total_deductions, grandtotal, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(r.db.QueryRow(ctx, query,
		record.ID, record.Employee.UserID, record.Employee, record.PayrollRate,
		record.Pay, record.WorkDays, record.Holidays, record.TotalOvertime, record.TotalSupplementary,
		record.SalaryAdjustments, record.LatesAndAbsences, record.GrossSalary,
		record.TotalDeductions, record.GrandTotal, record.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_records_user_id") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) Update(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	query := `
		UPDATE payroll_records SET
			employee = $2, payroll_rate = $3, pay = $4, work_days = $5, holidays = $6,
			total_overtime = $7, total_supplementary = $8, salary_adjustments = $9,
			lates_and_absences = $10, gross_salary = $11, total_deductions = $12,
			grandtotal = $13, status = $14, sent_at = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(r.db.QueryRow(ctx, query,
		record.ID, record.Employee, record.PayrollRate, record.Pay, record.WorkDays, record.Holidays,
		record.TotalOvertime, record.TotalSupplementary, record.SalaryAdjustments,
		record.LatesAndAbsences, record.GrossSalary, record.TotalDeductions,
		record.GrandTotal, record.Status, record.SentAt,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE id = $1`

	rec, err := scanPayrollRecord(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByUserID(ctx context.Context, userID string) (payroll.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE user_id = $1`

	rec, err := scanPayrollRecord(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) List(ctx context.Context) ([]payroll.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_records ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, nil
}

func (r *payrollRepository) DeleteByUserID(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payroll_records WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}
