package payroll

import "context"

// PayrollRepository defines data access for payroll records. One record per
// employee; the store enforces uniqueness on the employee user id.
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	Update(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByUserID(ctx context.Context, userID string) (PayrollRecord, error)
	List(ctx context.Context) ([]PayrollRecord, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
