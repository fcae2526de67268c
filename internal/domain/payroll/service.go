package payroll

import "context"

type PayrollService interface {
	// Process upserts the record keyed by payroll_rate.user_id and returns
	// the recomputed record plus whether it was newly created.
	Process(ctx context.Context, req ProcessPayrollRequest) (PayrollRecordResponse, bool, error)
	Update(ctx context.Context, req UpdatePayrollRecordRequest) (PayrollRecordResponse, error)
	List(ctx context.Context) ([]PayrollRecordResponse, error)
	GetByUserID(ctx context.Context, userID string) (PayrollRecordResponse, error)
	DeleteByUserID(ctx context.Context, userID string) error
	Send(ctx context.Context, userID string) (PayrollRecordResponse, error)
	Payslip(ctx context.Context, userID string) ([]byte, error)
}
