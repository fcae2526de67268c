package response

import (
	"errors"
	"net/http"

	"github.com/peopleops-ph/hrops-backend-go/internal/domain/auth"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/employee"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/leave"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/payroll"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/user"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this employee")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadySent):
		Conflict(w, "Payroll record has already been sent")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLedgerNotFound):
		NotFound(w, "Leave ledger not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
