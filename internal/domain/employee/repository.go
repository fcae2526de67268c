package employee

import "context"

type EmployeeRepository interface {
	GetByUserID(ctx context.Context, userID string) (Employee, error)
}
