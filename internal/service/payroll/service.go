package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peopleops-ph/hrops-backend-go/internal/domain/employee"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/payroll"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/metrics"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/pdf"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// enrichSnapshot refreshes the denormalized employee fields from the profile
// store. An unknown employee or a blank profile field leaves the stored
// snapshot value in place.
func (s *PayrollServiceImpl) enrichSnapshot(ctx context.Context, rec *payroll.PayrollRecord) error {
	emp, err := s.employeeRepo.GetByUserID(ctx, rec.Employee.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up employee profile: %w", err)
	}

	if emp.Email != "" {
		rec.Employee.Email = emp.Email
	}
	if name := emp.FullName(); name != "" {
		rec.Employee.FullName = name
	}
	if emp.JobPosition != "" {
		rec.Employee.JobPosition = emp.JobPosition
	}
	return nil
}

// Process implements payroll.PayrollService.
func (s *PayrollServiceImpl) Process(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.PayrollRecordResponse, bool, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, false, err
	}

	userID := req.PayrollRate.UserID

	rec, err := s.payrollRepo.GetByUserID(ctx, userID)
	created := false
	if err != nil {
		if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.PayrollRecordResponse{}, false, err
		}
		created = true
		rec = payroll.PayrollRecord{
			Employee:    payroll.EmployeeSnapshot{UserID: userID},
			PayrollRate: payroll.PayrollRate{UserID: userID},
			Status:      payroll.PayrollStatusDraft,
		}
	}

	req.ApplyTo(&rec)
	if err := s.enrichSnapshot(ctx, &rec); err != nil {
		return payroll.PayrollRecordResponse{}, false, err
	}

	rec = payroll.Compute(rec)
	metrics.PayrollComputations.Inc()

	if created {
		rec, err = s.payrollRepo.Create(ctx, rec)
	} else {
		rec, err = s.payrollRepo.Update(ctx, rec)
	}
	if err != nil {
		return payroll.PayrollRecordResponse{}, false, err
	}

	return payroll.ToRecordResponse(rec), created, nil
}

// Update implements payroll.PayrollService.
func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	req.ApplyTo(&rec)
	if err := s.enrichSnapshot(ctx, &rec); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec = payroll.Compute(rec)
	metrics.PayrollComputations.Inc()

	rec, err = s.payrollRepo.Update(ctx, rec)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return payroll.ToRecordResponse(rec), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.payrollRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return payroll.ToRecordResponses(records), nil
}

// GetByUserID implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetByUserID(ctx context.Context, userID string) (payroll.PayrollRecordResponse, error) {
	rec, err := s.payrollRepo.GetByUserID(ctx, userID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.ToRecordResponse(rec), nil
}

// DeleteByUserID implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteByUserID(ctx context.Context, userID string) error {
	return s.payrollRepo.DeleteByUserID(ctx, userID)
}

// Send implements payroll.PayrollService. It marks a draft record as sent and
// stamps the send time. Sending twice is rejected.
func (s *PayrollServiceImpl) Send(ctx context.Context, userID string) (payroll.PayrollRecordResponse, error) {
	rec, err := s.payrollRepo.GetByUserID(ctx, userID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if rec.Status == payroll.PayrollStatusSent {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordAlreadySent
	}

	now := time.Now().UTC()
	rec.Status = payroll.PayrollStatusSent
	rec.SentAt = &now

	rec, err = s.payrollRepo.Update(ctx, rec)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return payroll.ToRecordResponse(rec), nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, userID string) ([]byte, error) {
	rec, err := s.payrollRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	doc, err := pdf.RenderPayslip(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	metrics.PayslipsRendered.Inc()

	return doc, nil
}
