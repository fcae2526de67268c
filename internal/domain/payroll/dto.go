package payroll

import (
	"time"

	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== MERGE INPUTS ==========
//
// Partial update documents. Every field is a pointer; a nil field leaves the
// stored value untouched, a non-nil field overwrites the scalar at the leaf.
// One merge per nested sub-object, composed by ProcessPayrollRequest.ApplyTo.

type PayrollRateInput struct {
	UserID      string           `json:"user_id"`
	MonthlyRate *decimal.Decimal `json:"monthly_rate,omitempty"`
}

func (in *PayrollRateInput) applyTo(pr *PayrollRate) {
	if in.UserID != "" {
		pr.UserID = in.UserID
	}
	if in.MonthlyRate != nil {
		pr.MonthlyRate = *in.MonthlyRate
	}
}

type WorkDaysInput struct {
	RegularDays      *decimal.Decimal `json:"regular_days,omitempty"`
	AbsentDays       *decimal.Decimal `json:"absent_days,omitempty"`
	MinsLate         *int             `json:"mins_late,omitempty"`
	UndertimeMinutes *int             `json:"undertime_minutes,omitempty"`
	TotalHoursWorked *decimal.Decimal `json:"total_hours_worked,omitempty"`
}

func (in *WorkDaysInput) applyTo(wd *WorkDays) {
	if in.RegularDays != nil {
		wd.RegularDays = *in.RegularDays
	}
	if in.AbsentDays != nil {
		wd.AbsentDays = *in.AbsentDays
	}
	if in.MinsLate != nil {
		wd.MinsLate = *in.MinsLate
	}
	if in.UndertimeMinutes != nil {
		wd.UndertimeMinutes = *in.UndertimeMinutes
	}
	if in.TotalHoursWorked != nil {
		wd.TotalHoursWorked = *in.TotalHoursWorked
	}
}

type HolidaysInput struct {
	RegularHolidays *decimal.Decimal `json:"regular_holidays,omitempty"`
	SpecialHolidays *decimal.Decimal `json:"special_holidays,omitempty"`
}

func (in *HolidaysInput) applyTo(h *Holidays) {
	if in.RegularHolidays != nil {
		h.RegularHolidays = *in.RegularHolidays
	}
	if in.SpecialHolidays != nil {
		h.SpecialHolidays = *in.SpecialHolidays
	}
}

type OvertimeInput struct {
	RegularOTHours                  *decimal.Decimal `json:"regular_ot_hours,omitempty"`
	RestDayOTHours                  *decimal.Decimal `json:"rest_day_ot_hours,omitempty"`
	RestDayOTExcessHours            *decimal.Decimal `json:"rest_day_ot_excess_hours,omitempty"`
	RegularHolidayWorkedHours       *decimal.Decimal `json:"regular_holiday_worked_hours,omitempty"`
	RegularHolidayWorkedExcessHours *decimal.Decimal `json:"regular_holiday_worked_excess_hours,omitempty"`
	SpecialHolidayWorkedHours       *decimal.Decimal `json:"special_holiday_worked_hours,omitempty"`
	SpecialHolidayWorkedOTHours     *decimal.Decimal `json:"special_holiday_worked_ot_hours,omitempty"`
	SpecialHolidayRestDayHours      *decimal.Decimal `json:"special_holiday_rest_day_hours,omitempty"`
	SpecialHolidayRestDayOTHours    *decimal.Decimal `json:"special_holiday_rest_day_ot_hours,omitempty"`
}

func (in *OvertimeInput) applyTo(ot *Overtime) {
	if in.RegularOTHours != nil {
		ot.RegularOTHours = *in.RegularOTHours
	}
	if in.RestDayOTHours != nil {
		ot.RestDayOTHours = *in.RestDayOTHours
	}
	if in.RestDayOTExcessHours != nil {
		ot.RestDayOTExcessHours = *in.RestDayOTExcessHours
	}
	if in.RegularHolidayWorkedHours != nil {
		ot.RegularHolidayWorkedHours = *in.RegularHolidayWorkedHours
	}
	if in.RegularHolidayWorkedExcessHours != nil {
		ot.RegularHolidayWorkedExcessHours = *in.RegularHolidayWorkedExcessHours
	}
	if in.SpecialHolidayWorkedHours != nil {
		ot.SpecialHolidayWorkedHours = *in.SpecialHolidayWorkedHours
	}
	if in.SpecialHolidayWorkedOTHours != nil {
		ot.SpecialHolidayWorkedOTHours = *in.SpecialHolidayWorkedOTHours
	}
	if in.SpecialHolidayRestDayHours != nil {
		ot.SpecialHolidayRestDayHours = *in.SpecialHolidayRestDayHours
	}
	if in.SpecialHolidayRestDayOTHours != nil {
		ot.SpecialHolidayRestDayOTHours = *in.SpecialHolidayRestDayOTHours
	}
}

type SupplementaryInput struct {
	NightDiffHours               *decimal.Decimal `json:"night_diff_hours,omitempty"`
	NightDiffOTHours             *decimal.Decimal `json:"night_diff_ot_hours,omitempty"`
	RestDayNightDiffHours        *decimal.Decimal `json:"rest_day_night_diff_hours,omitempty"`
	RegularHolidayNightDiffHours *decimal.Decimal `json:"regular_holiday_night_diff_hours,omitempty"`
	SpecialHolidayNightDiffHours *decimal.Decimal `json:"special_holiday_night_diff_hours,omitempty"`
}

func (in *SupplementaryInput) applyTo(sup *Supplementary) {
	if in.NightDiffHours != nil {
		sup.NightDiffHours = *in.NightDiffHours
	}
	if in.NightDiffOTHours != nil {
		sup.NightDiffOTHours = *in.NightDiffOTHours
	}
	if in.RestDayNightDiffHours != nil {
		sup.RestDayNightDiffHours = *in.RestDayNightDiffHours
	}
	if in.RegularHolidayNightDiffHours != nil {
		sup.RegularHolidayNightDiffHours = *in.RegularHolidayNightDiffHours
	}
	if in.SpecialHolidayNightDiffHours != nil {
		sup.SpecialHolidayNightDiffHours = *in.SpecialHolidayNightDiffHours
	}
}

type SalaryAdjustmentsInput struct {
	UnpaidDays     *decimal.Decimal `json:"unpaid_days,omitempty"`
	SalaryIncrease *decimal.Decimal `json:"salary_increase,omitempty"`
}

func (in *SalaryAdjustmentsInput) applyTo(adj *SalaryAdjustments) {
	if in.UnpaidDays != nil {
		adj.UnpaidDays = *in.UnpaidDays
	}
	if in.SalaryIncrease != nil {
		adj.SalaryIncrease = *in.SalaryIncrease
	}
}

type GrossExtrasInput struct {
	NonTaxableAllowance *decimal.Decimal `json:"non_taxable_allowance,omitempty"`
	Bonus               *decimal.Decimal `json:"bonus,omitempty"`
}

func (in *GrossExtrasInput) applyTo(g *GrossSalary) {
	if in.NonTaxableAllowance != nil {
		g.NonTaxableAllowance = *in.NonTaxableAllowance
	}
	if in.Bonus != nil {
		g.Bonus = *in.Bonus
	}
}

type DeductionsInput struct {
	SSS         *decimal.Decimal `json:"sss,omitempty"`
	PhilHealth  *decimal.Decimal `json:"philhealth,omitempty"`
	PagIbig     *decimal.Decimal `json:"pagibig,omitempty"`
	WISP        *decimal.Decimal `json:"wisp,omitempty"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
	SSSLoan     *decimal.Decimal `json:"sss_loan,omitempty"`
	PagIbigLoan *decimal.Decimal `json:"pagibig_loan,omitempty"`
	CompanyLoan *decimal.Decimal `json:"company_loan,omitempty"`
}

func (in *DeductionsInput) applyTo(d *Deductions) {
	if in.SSS != nil {
		d.SSS = *in.SSS
	}
	if in.PhilHealth != nil {
		d.PhilHealth = *in.PhilHealth
	}
	if in.PagIbig != nil {
		d.PagIbig = *in.PagIbig
	}
	if in.WISP != nil {
		d.WISP = *in.WISP
	}
	if in.Tax != nil {
		d.Tax = *in.Tax
	}
	if in.SSSLoan != nil {
		d.SSSLoan = *in.SSSLoan
	}
	if in.PagIbigLoan != nil {
		d.PagIbigLoan = *in.PagIbigLoan
	}
	if in.CompanyLoan != nil {
		d.CompanyLoan = *in.CompanyLoan
	}
}

// ========== REQUESTS ==========

// ProcessPayrollRequest is the upsert document, keyed by payroll_rate.user_id.
type ProcessPayrollRequest struct {
	PayrollRate        PayrollRateInput        `json:"payroll_rate"`
	WorkDays           *WorkDaysInput          `json:"work_days,omitempty"`
	Holidays           *HolidaysInput          `json:"holidays,omitempty"`
	TotalOvertime      *OvertimeInput          `json:"total_overtime,omitempty"`
	TotalSupplementary *SupplementaryInput     `json:"total_supplementary,omitempty"`
	SalaryAdjustments  *SalaryAdjustmentsInput `json:"salary_adjustments,omitempty"`
	GrossSalary        *GrossExtrasInput       `json:"gross_salary,omitempty"`
	TotalDeductions    *DeductionsInput        `json:"total_deductions,omitempty"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PayrollRate.UserID) {
		errs = append(errs, validator.ValidationError{Field: "payroll_rate.user_id", Message: "is required"})
	}
	if r.PayrollRate.MonthlyRate != nil && r.PayrollRate.MonthlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "payroll_rate.monthly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyTo merges the request into rec, sub-object by sub-object, overwriting
// scalars at the leaves. Derived fields are untouched here; Compute rewrites
// them afterwards.
func (r *ProcessPayrollRequest) ApplyTo(rec *PayrollRecord) {
	r.PayrollRate.applyTo(&rec.PayrollRate)
	if r.WorkDays != nil {
		r.WorkDays.applyTo(&rec.WorkDays)
	}
	if r.Holidays != nil {
		r.Holidays.applyTo(&rec.Holidays)
	}
	if r.TotalOvertime != nil {
		r.TotalOvertime.applyTo(&rec.TotalOvertime)
	}
	if r.TotalSupplementary != nil {
		r.TotalSupplementary.applyTo(&rec.TotalSupplementary)
	}
	if r.SalaryAdjustments != nil {
		r.SalaryAdjustments.applyTo(&rec.SalaryAdjustments)
	}
	if r.GrossSalary != nil {
		r.GrossSalary.applyTo(&rec.GrossSalary)
	}
	if r.TotalDeductions != nil {
		r.TotalDeductions.applyTo(&rec.TotalDeductions)
	}
}

// UpdatePayrollRecordRequest patches an existing record by record id. Same
// merge semantics as ProcessPayrollRequest, without the upsert key.
type UpdatePayrollRecordRequest struct {
	ID                 string                  `json:"-"`
	PayrollRate        *PayrollRateInput       `json:"payroll_rate,omitempty"`
	WorkDays           *WorkDaysInput          `json:"work_days,omitempty"`
	Holidays           *HolidaysInput          `json:"holidays,omitempty"`
	TotalOvertime      *OvertimeInput          `json:"total_overtime,omitempty"`
	TotalSupplementary *SupplementaryInput     `json:"total_supplementary,omitempty"`
	SalaryAdjustments  *SalaryAdjustmentsInput `json:"salary_adjustments,omitempty"`
	GrossSalary        *GrossExtrasInput       `json:"gross_salary,omitempty"`
	TotalDeductions    *DeductionsInput        `json:"total_deductions,omitempty"`
}

func (r *UpdatePayrollRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PayrollRate != nil && r.PayrollRate.MonthlyRate != nil && r.PayrollRate.MonthlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "payroll_rate.monthly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdatePayrollRecordRequest) ApplyTo(rec *PayrollRecord) {
	if r.PayrollRate != nil {
		r.PayrollRate.applyTo(&rec.PayrollRate)
	}
	if r.WorkDays != nil {
		r.WorkDays.applyTo(&rec.WorkDays)
	}
	if r.Holidays != nil {
		r.Holidays.applyTo(&rec.Holidays)
	}
	if r.TotalOvertime != nil {
		r.TotalOvertime.applyTo(&rec.TotalOvertime)
	}
	if r.TotalSupplementary != nil {
		r.TotalSupplementary.applyTo(&rec.TotalSupplementary)
	}
	if r.SalaryAdjustments != nil {
		r.SalaryAdjustments.applyTo(&rec.SalaryAdjustments)
	}
	if r.GrossSalary != nil {
		r.GrossSalary.applyTo(&rec.GrossSalary)
	}
	if r.TotalDeductions != nil {
		r.TotalDeductions.applyTo(&rec.TotalDeductions)
	}
}

// ========== RESPONSES ==========

type PayrollRecordResponse struct {
	ID                 string            `json:"id"`
	Employee           EmployeeSnapshot  `json:"employee"`
	PayrollRate        PayrollRate       `json:"payroll_rate"`
	Pay                Pay               `json:"pay"`
	WorkDays           WorkDays          `json:"work_days"`
	Holidays           Holidays          `json:"holidays"`
	TotalOvertime      Overtime          `json:"total_overtime"`
	TotalSupplementary Supplementary     `json:"total_supplementary"`
	SalaryAdjustments  SalaryAdjustments `json:"salary_adjustments"`
	LatesAndAbsences   LatesAndAbsences  `json:"lates_and_absences"`
	GrossSalary        GrossSalary       `json:"gross_salary"`
	TotalDeductions    Deductions        `json:"total_deductions"`
	GrandTotal         GrandTotal        `json:"grandtotal"`
	Status             string            `json:"status"`
	SentAt             *string           `json:"sent_at,omitempty"`
}

func ToRecordResponse(r PayrollRecord) PayrollRecordResponse {
	var sentAtStr *string
	if r.SentAt != nil {
		str := r.SentAt.Format(time.RFC3339)
		sentAtStr = &str
	}

	return PayrollRecordResponse{
		ID:                 r.ID,
		Employee:           r.Employee,
		PayrollRate:        r.PayrollRate,
		Pay:                r.Pay,
		WorkDays:           r.WorkDays,
		Holidays:           r.Holidays,
		TotalOvertime:      r.TotalOvertime,
		TotalSupplementary: r.TotalSupplementary,
		SalaryAdjustments:  r.SalaryAdjustments,
		LatesAndAbsences:   r.LatesAndAbsences,
		GrossSalary:        r.GrossSalary,
		TotalDeductions:    r.TotalDeductions,
		GrandTotal:         r.GrandTotal,
		Status:             string(r.Status),
		SentAt:             sentAtStr,
	}
}

func ToRecordResponses(records []PayrollRecord) []PayrollRecordResponse {
	result := make([]PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToRecordResponse(r))
	}
	return result
}
