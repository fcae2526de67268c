package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft PayrollStatus = "draft"
	PayrollStatusSent  PayrollStatus = "sent"
)

// EmployeeSnapshot - denormalized profile fields copied onto the record
// from the employee store during upsert.
type EmployeeSnapshot struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	JobPosition string `json:"job_position"`
}

// PayrollRate - the monthly rate is the source of truth; daily and hourly
// rates are always derived from it, never stored independently.
type PayrollRate struct {
	UserID      string          `json:"user_id"`
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
}

// Pay - derived base earnings: regular days worked times the daily rate.
type Pay struct {
	BasicPay decimal.Decimal `json:"basic_pay"`
}

// WorkDays - attendance-derived raw inputs for the period.
type WorkDays struct {
	RegularDays      decimal.Decimal `json:"regular_days"`
	AbsentDays       decimal.Decimal `json:"absent_days"`
	MinsLate         int             `json:"mins_late"`
	UndertimeMinutes int             `json:"undertime_minutes"`
	TotalHoursWorked decimal.Decimal `json:"total_hours_worked"`
}

// Holidays - holiday day counts and their derived pay.
type Holidays struct {
	RegularHolidays decimal.Decimal `json:"regular_holidays"`
	SpecialHolidays decimal.Decimal `json:"special_holidays"`
	RegHolidayPay   decimal.Decimal `json:"reg_holiday_pay"`
	SpeHolidayPay   decimal.Decimal `json:"spe_holiday_pay"`
}

// Overtime - overtime hour counts per category and their derived pay.
type Overtime struct {
	RegularOTHours                  decimal.Decimal `json:"regular_ot_hours"`
	RestDayOTHours                  decimal.Decimal `json:"rest_day_ot_hours"`
	RestDayOTExcessHours            decimal.Decimal `json:"rest_day_ot_excess_hours"`
	RegularHolidayWorkedHours       decimal.Decimal `json:"regular_holiday_worked_hours"`
	RegularHolidayWorkedExcessHours decimal.Decimal `json:"regular_holiday_worked_excess_hours"`
	SpecialHolidayWorkedHours       decimal.Decimal `json:"special_holiday_worked_hours"`
	SpecialHolidayWorkedOTHours     decimal.Decimal `json:"special_holiday_worked_ot_hours"`
	SpecialHolidayRestDayHours      decimal.Decimal `json:"special_holiday_rest_day_hours"`
	SpecialHolidayRestDayOTHours    decimal.Decimal `json:"special_holiday_rest_day_ot_hours"`
	RegularOTPay                    decimal.Decimal `json:"regular_ot_pay"`
	RestDayOTPay                    decimal.Decimal `json:"rest_day_ot_pay"`
	RestDayOTExcessPay              decimal.Decimal `json:"rest_day_ot_excess_pay"`
	RegularHolidayWorkedPay         decimal.Decimal `json:"regular_holiday_worked_pay"`
	RegularHolidayWorkedExcessPay   decimal.Decimal `json:"regular_holiday_worked_excess_pay"`
	SpecialHolidayWorkedPay         decimal.Decimal `json:"special_holiday_worked_pay"`
	SpecialHolidayWorkedOTPay       decimal.Decimal `json:"special_holiday_worked_ot_pay"`
	SpecialHolidayRestDayPay        decimal.Decimal `json:"special_holiday_rest_day_pay"`
	SpecialHolidayRestDayOTPay      decimal.Decimal `json:"special_holiday_rest_day_ot_pay"`
	TotalOvertimePay                decimal.Decimal `json:"total_overtime_pay"`
}

// Supplementary - night differential hour counts per category and their
// derived pay. Every variant carries the same 10% premium on the hourly rate.
type Supplementary struct {
	NightDiffHours               decimal.Decimal `json:"night_diff_hours"`
	NightDiffOTHours             decimal.Decimal `json:"night_diff_ot_hours"`
	RestDayNightDiffHours        decimal.Decimal `json:"rest_day_night_diff_hours"`
	RegularHolidayNightDiffHours decimal.Decimal `json:"regular_holiday_night_diff_hours"`
	SpecialHolidayNightDiffHours decimal.Decimal `json:"special_holiday_night_diff_hours"`
	NightDiffPay                 decimal.Decimal `json:"night_diff_pay"`
	NightDiffOTPay               decimal.Decimal `json:"night_diff_ot_pay"`
	RestDayNightDiffPay          decimal.Decimal `json:"rest_day_night_diff_pay"`
	RegularHolidayNightDiffPay   decimal.Decimal `json:"regular_holiday_night_diff_pay"`
	SpecialHolidayNightDiffPay   decimal.Decimal `json:"special_holiday_night_diff_pay"`
	TotalSupplementaryPay        decimal.Decimal `json:"total_supplementary_pay"`
}

// SalaryAdjustments - manual adjustments applied during the period.
type SalaryAdjustments struct {
	UnpaidDays     decimal.Decimal `json:"unpaid_days"`
	UnpaidAmount   decimal.Decimal `json:"unpaid_amount"`
	SalaryIncrease decimal.Decimal `json:"salary_increase"`
}

// LatesAndAbsences - deduction amounts derived from absence and lateness.
type LatesAndAbsences struct {
	AmountAbsent    decimal.Decimal `json:"amount_absent"`
	AmountMinLateUT decimal.Decimal `json:"amount_min_late_ut"`
}

// GrossSalary - computed gross plus the manual non-taxable extras, which are
// carried on the record but excluded from the gross sum.
type GrossSalary struct {
	GrossSalary         decimal.Decimal `json:"gross_salary"`
	NonTaxableAllowance decimal.Decimal `json:"non_taxable_allowance"`
	Bonus               decimal.Decimal `json:"bonus"`
}

// Deductions - statutory contribution, tax and loan line items plus the
// computed total (which also folds in absence/lateness/unpaid amounts).
type Deductions struct {
	SSS             decimal.Decimal `json:"sss"`
	PhilHealth      decimal.Decimal `json:"philhealth"`
	PagIbig         decimal.Decimal `json:"pagibig"`
	WISP            decimal.Decimal `json:"wisp"`
	Tax             decimal.Decimal `json:"tax"`
	SSSLoan         decimal.Decimal `json:"sss_loan"`
	PagIbigLoan     decimal.Decimal `json:"pagibig_loan"`
	CompanyLoan     decimal.Decimal `json:"company_loan"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
}

// GrandTotal - final net pay. May legitimately be negative when deductions
// exceed earnings; never clamped.
type GrandTotal struct {
	GrandTotal decimal.Decimal `json:"grandtotal"`
}

// PayrollRecord - one per employee, unique on Employee.UserID.
// Every *Pay and total field is a pure function of the rate and count fields
// and is rewritten in full by Compute on each upsert.
type PayrollRecord struct {
	ID                 string
	Employee           EmployeeSnapshot
	PayrollRate        PayrollRate
	Pay                Pay
	WorkDays           WorkDays
	Holidays           Holidays
	TotalOvertime      Overtime
	TotalSupplementary Supplementary
	SalaryAdjustments  SalaryAdjustments
	LatesAndAbsences   LatesAndAbsences
	GrossSalary        GrossSalary
	TotalDeductions    Deductions
	GrandTotal         GrandTotal
	Status             PayrollStatus
	SentAt             *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
