package payroll

import "github.com/shopspring/decimal"

// Rate divisors: 26 working days per month, 8 hours per day.
var (
	workingDaysPerMonth = decimal.NewFromInt(26)
	hoursPerDay         = decimal.NewFromInt(8)
	minutesPerHour      = decimal.NewFromInt(60)
)

// Category multipliers. Applied to the daily rate for day-denominated
// categories and to the hourly rate for hour-denominated ones.
var (
	multRegularHoliday          = decimal.NewFromInt(1)
	multSpecialHoliday          = decimal.RequireFromString("0.3")
	multRegularOT               = decimal.RequireFromString("1.25")
	multRestDayOT               = decimal.RequireFromString("1.3")
	multRestDayOTExcess         = decimal.RequireFromString("1.5")
	multRegularHolidayWorked    = decimal.RequireFromString("2.0")
	multRegularHolidayWorkedExc = decimal.RequireFromString("2.6")
	multSpecialHolidayWorked    = decimal.RequireFromString("1.3")
	multSpecialHolidayWorkedOT  = decimal.RequireFromString("1.69")
	multSpecialHolidayRestDay   = decimal.RequireFromString("1.69")
	multSpecialHolidayRestDayOT = decimal.RequireFromString("2.0")
	multNightDiff               = decimal.RequireFromString("0.1")
)

// moneyScale is the scale every stored monetary amount is rounded to.
// Rounding happens once, when a pay line is derived; totals are sums of the
// rounded lines so additivity holds exactly.
const moneyScale = 2

// DeriveRates converts a monthly rate into daily and hourly rates.
// A zero monthly rate is valid and yields zero pay downstream.
func DeriveRates(monthlyRate decimal.Decimal) (dailyRate, hourlyRate decimal.Decimal) {
	dailyRate = monthlyRate.Div(workingDaysPerMonth)
	hourlyRate = dailyRate.Div(hoursPerDay)
	return dailyRate, hourlyRate
}

func payLine(count, rate, multiplier decimal.Decimal) decimal.Decimal {
	return count.Mul(rate).Mul(multiplier).Round(moneyScale)
}

// Compute derives every pay, total and grandtotal field of the record from
// its rate and count fields, returning a new record. The derived sub-objects
// are rewritten in full, so a stale derived field can never survive a partial
// update of the raw inputs. Compute never mutates its input and has no clock
// or store dependency: same input, same output.
func Compute(rec PayrollRecord) PayrollRecord {
	dailyRate, hourlyRate := DeriveRates(rec.PayrollRate.MonthlyRate)
	minuteRate := hourlyRate.Div(minutesPerHour)

	basicPay := rec.WorkDays.RegularDays.Mul(dailyRate).Round(moneyScale)
	rec.Pay = Pay{BasicPay: basicPay}

	h := rec.Holidays
	h.RegHolidayPay = payLine(h.RegularHolidays, dailyRate, multRegularHoliday)
	h.SpeHolidayPay = payLine(h.SpecialHolidays, dailyRate, multSpecialHoliday)
	rec.Holidays = h

	ot := rec.TotalOvertime
	ot.RegularOTPay = payLine(ot.RegularOTHours, hourlyRate, multRegularOT)
	ot.RestDayOTPay = payLine(ot.RestDayOTHours, hourlyRate, multRestDayOT)
	ot.RestDayOTExcessPay = payLine(ot.RestDayOTExcessHours, hourlyRate, multRestDayOTExcess)
	ot.RegularHolidayWorkedPay = payLine(ot.RegularHolidayWorkedHours, hourlyRate, multRegularHolidayWorked)
	ot.RegularHolidayWorkedExcessPay = payLine(ot.RegularHolidayWorkedExcessHours, hourlyRate, multRegularHolidayWorkedExc)
	ot.SpecialHolidayWorkedPay = payLine(ot.SpecialHolidayWorkedHours, hourlyRate, multSpecialHolidayWorked)
	ot.SpecialHolidayWorkedOTPay = payLine(ot.SpecialHolidayWorkedOTHours, hourlyRate, multSpecialHolidayWorkedOT)
	ot.SpecialHolidayRestDayPay = payLine(ot.SpecialHolidayRestDayHours, hourlyRate, multSpecialHolidayRestDay)
	ot.SpecialHolidayRestDayOTPay = payLine(ot.SpecialHolidayRestDayOTHours, hourlyRate, multSpecialHolidayRestDayOT)
	ot.TotalOvertimePay = decimal.Sum(
		ot.RegularOTPay,
		ot.RestDayOTPay,
		ot.RestDayOTExcessPay,
		ot.RegularHolidayWorkedPay,
		ot.RegularHolidayWorkedExcessPay,
		ot.SpecialHolidayWorkedPay,
		ot.SpecialHolidayWorkedOTPay,
		ot.SpecialHolidayRestDayPay,
		ot.SpecialHolidayRestDayOTPay,
	)
	rec.TotalOvertime = ot

	sup := rec.TotalSupplementary
	sup.NightDiffPay = payLine(sup.NightDiffHours, hourlyRate, multNightDiff)
	sup.NightDiffOTPay = payLine(sup.NightDiffOTHours, hourlyRate, multNightDiff)
	sup.RestDayNightDiffPay = payLine(sup.RestDayNightDiffHours, hourlyRate, multNightDiff)
	sup.RegularHolidayNightDiffPay = payLine(sup.RegularHolidayNightDiffHours, hourlyRate, multNightDiff)
	sup.SpecialHolidayNightDiffPay = payLine(sup.SpecialHolidayNightDiffHours, hourlyRate, multNightDiff)
	sup.TotalSupplementaryPay = decimal.Sum(
		sup.NightDiffPay,
		sup.NightDiffOTPay,
		sup.RestDayNightDiffPay,
		sup.RegularHolidayNightDiffPay,
		sup.SpecialHolidayNightDiffPay,
	)
	rec.TotalSupplementary = sup

	adj := rec.SalaryAdjustments
	adj.UnpaidAmount = adj.UnpaidDays.Mul(dailyRate).Round(moneyScale)
	rec.SalaryAdjustments = adj

	la := LatesAndAbsences{
		AmountAbsent: rec.WorkDays.AbsentDays.Mul(dailyRate).Round(moneyScale),
		AmountMinLateUT: decimal.NewFromInt(int64(rec.WorkDays.MinsLate + rec.WorkDays.UndertimeMinutes)).
			Mul(minuteRate).Round(moneyScale),
	}
	rec.LatesAndAbsences = la

	gross := rec.GrossSalary
	gross.GrossSalary = decimal.Sum(
		basicPay,
		h.RegHolidayPay,
		h.SpeHolidayPay,
		ot.TotalOvertimePay,
		sup.TotalSupplementaryPay,
		adj.SalaryIncrease,
	)
	rec.GrossSalary = gross

	ded := rec.TotalDeductions
	ded.TotalDeductions = decimal.Sum(
		la.AmountAbsent,
		la.AmountMinLateUT,
		adj.UnpaidAmount,
		ded.SSS,
		ded.PhilHealth,
		ded.PagIbig,
		ded.WISP,
		ded.Tax,
		ded.SSSLoan,
		ded.PagIbigLoan,
		ded.CompanyLoan,
	)
	rec.TotalDeductions = ded

	rec.GrandTotal = GrandTotal{GrandTotal: gross.GrossSalary.Sub(ded.TotalDeductions)}

	return rec
}
