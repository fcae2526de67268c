package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/employee"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	query := `
		SELECT id, user_id, first_name, last_name, email, job_position,
			created_at, updated_at
		FROM employees
		WHERE user_id = $1`

	var emp employee.Employee
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&emp.ID, &emp.UserID, &emp.FirstName, &emp.LastName, &emp.Email,
		&emp.JobPosition, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}
