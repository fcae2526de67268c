package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this employee")
	ErrPayrollRecordAlreadySent   = errors.New("payroll record already sent")
)
