package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func baseRecord(monthlyRate string) PayrollRecord {
	return PayrollRecord{
		Employee:    EmployeeSnapshot{UserID: "emp-1"},
		PayrollRate: PayrollRate{UserID: "emp-1", MonthlyRate: dec(monthlyRate)},
		Status:      PayrollStatusDraft,
	}
}

func TestDeriveRates(t *testing.T) {
	daily, hourly := DeriveRates(dec("26000"))
	assert.True(t, daily.Equal(dec("1000")), "daily = %s", daily)
	assert.True(t, hourly.Equal(dec("125")), "hourly = %s", hourly)
}

func TestDeriveRates_ZeroRate(t *testing.T) {
	daily, hourly := DeriveRates(decimal.Zero)
	assert.True(t, daily.IsZero())
	assert.True(t, hourly.IsZero())
}

func TestDeriveRates_RoundTrip(t *testing.T) {
	// hourlyRate * 8 * 26 must recover the monthly rate within tolerance.
	tolerance := dec("0.0000001")
	for _, monthly := range []string{"0", "15000", "26000", "26001", "31417.33", "123456.78"} {
		_, hourly := DeriveRates(dec(monthly))
		back := hourly.Mul(decimal.NewFromInt(8)).Mul(decimal.NewFromInt(26))
		diff := back.Sub(dec(monthly)).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance), "monthly=%s back=%s", monthly, back)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	rec := baseRecord("31417.33")
	rec.WorkDays = WorkDays{RegularDays: dec("22"), AbsentDays: dec("1.5"), MinsLate: 37, UndertimeMinutes: 12}
	rec.Holidays = Holidays{RegularHolidays: dec("1"), SpecialHolidays: dec("2")}
	rec.TotalOvertime.RegularOTHours = dec("3.5")
	rec.TotalSupplementary.NightDiffHours = dec("16")
	rec.TotalDeductions.SSS = dec("1125")

	first := Compute(rec)
	second := Compute(rec)
	assert.Equal(t, first, second)

	// Recomputing an already-computed record changes nothing either.
	assert.Equal(t, first, Compute(first))
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	rec := baseRecord("26000")
	rec.WorkDays.RegularDays = dec("26")

	_ = Compute(rec)
	assert.True(t, rec.GrossSalary.GrossSalary.IsZero(), "input record was mutated")
}

func TestCompute_BasicScenario(t *testing.T) {
	// monthlyRate=26000, regularDays=26, all else zero.
	rec := baseRecord("26000")
	rec.WorkDays.RegularDays = dec("26")

	out := Compute(rec)

	assert.True(t, out.Pay.BasicPay.Equal(dec("26000")), "basic pay = %s", out.Pay.BasicPay)
	assert.True(t, out.GrossSalary.GrossSalary.Equal(dec("26000")), "gross = %s", out.GrossSalary.GrossSalary)
	assert.True(t, out.TotalDeductions.TotalDeductions.IsZero())
	assert.True(t, out.GrandTotal.GrandTotal.Equal(dec("26000")), "net = %s", out.GrandTotal.GrandTotal)
}

func TestCompute_OverwritesStaleBasicPay(t *testing.T) {
	// A stored basic pay from a previous computation never survives a
	// recompute with new raw inputs.
	rec := baseRecord("26000")
	rec.WorkDays.RegularDays = dec("13")
	rec.Pay = Pay{BasicPay: dec("26000")}

	out := Compute(rec)

	assert.True(t, out.Pay.BasicPay.Equal(dec("13000")), "basic pay = %s", out.Pay.BasicPay)
	assert.True(t, out.GrossSalary.GrossSalary.Equal(dec("13000")))
}

func TestCompute_RegularOvertimeScenario(t *testing.T) {
	// monthlyRate=26000 gives hourlyRate=125; 8h OT at 1.25 = 1250.
	rec := baseRecord("26000")
	rec.TotalOvertime.RegularOTHours = dec("8")

	out := Compute(rec)

	assert.True(t, out.TotalOvertime.RegularOTPay.Equal(dec("1250")), "regular OT pay = %s", out.TotalOvertime.RegularOTPay)
	assert.True(t, out.TotalOvertime.TotalOvertimePay.Equal(dec("1250")))
	assert.True(t, out.GrossSalary.GrossSalary.Equal(dec("1250")))
}

func TestCompute_AllZeroInputs(t *testing.T) {
	out := Compute(baseRecord("0"))

	assert.True(t, out.GrossSalary.GrossSalary.IsZero())
	assert.True(t, out.TotalDeductions.TotalDeductions.IsZero())
	assert.True(t, out.GrandTotal.GrandTotal.IsZero())
}

func TestCompute_GrossAdditivity(t *testing.T) {
	rec := baseRecord("31417.33")
	rec.WorkDays = WorkDays{RegularDays: dec("20"), AbsentDays: dec("2"), MinsLate: 45, UndertimeMinutes: 30}
	rec.Holidays = Holidays{RegularHolidays: dec("1"), SpecialHolidays: dec("1")}
	rec.TotalOvertime = Overtime{
		RegularOTHours:                  dec("4"),
		RestDayOTHours:                  dec("8"),
		RestDayOTExcessHours:            dec("2"),
		RegularHolidayWorkedHours:       dec("8"),
		RegularHolidayWorkedExcessHours: dec("1.5"),
		SpecialHolidayWorkedHours:       dec("8"),
		SpecialHolidayWorkedOTHours:     dec("2"),
		SpecialHolidayRestDayHours:      dec("8"),
		SpecialHolidayRestDayOTHours:    dec("1"),
	}
	rec.TotalSupplementary = Supplementary{
		NightDiffHours:               dec("8"),
		NightDiffOTHours:             dec("2"),
		RestDayNightDiffHours:        dec("8"),
		RegularHolidayNightDiffHours: dec("8"),
		SpecialHolidayNightDiffHours: dec("8"),
	}
	rec.SalaryAdjustments = SalaryAdjustments{UnpaidDays: dec("1"), SalaryIncrease: dec("500")}

	out := Compute(rec)

	expected := decimal.Sum(
		out.Pay.BasicPay,
		out.Holidays.RegHolidayPay,
		out.Holidays.SpeHolidayPay,
		out.TotalOvertime.RegularOTPay,
		out.TotalOvertime.RestDayOTPay,
		out.TotalOvertime.RestDayOTExcessPay,
		out.TotalOvertime.RegularHolidayWorkedPay,
		out.TotalOvertime.RegularHolidayWorkedExcessPay,
		out.TotalOvertime.SpecialHolidayWorkedPay,
		out.TotalOvertime.SpecialHolidayWorkedOTPay,
		out.TotalOvertime.SpecialHolidayRestDayPay,
		out.TotalOvertime.SpecialHolidayRestDayOTPay,
		out.TotalSupplementary.NightDiffPay,
		out.TotalSupplementary.NightDiffOTPay,
		out.TotalSupplementary.RestDayNightDiffPay,
		out.TotalSupplementary.RegularHolidayNightDiffPay,
		out.TotalSupplementary.SpecialHolidayNightDiffPay,
		out.SalaryAdjustments.SalaryIncrease,
	)
	assert.True(t, out.GrossSalary.GrossSalary.Equal(expected),
		"gross = %s, sum of parts = %s", out.GrossSalary.GrossSalary, expected)
}

func TestCompute_MultiplierTable(t *testing.T) {
	// hourlyRate=125, dailyRate=1000; one unit in each category.
	cases := []struct {
		name string
		set  func(rec *PayrollRecord)
		get  func(rec PayrollRecord) decimal.Decimal
		want string
	}{
		{"regular OT 1.25", func(r *PayrollRecord) { r.TotalOvertime.RegularOTHours = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.TotalOvertime.RegularOTPay }, "156.25"},
		{"rest day OT 1.3", func(r *PayrollRecord) { r.TotalOvertime.RestDayOTHours = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.TotalOvertime.RestDayOTPay }, "162.5"},
		{"rest day OT excess 1.5", func(r *PayrollRecord) { r.TotalOvertime.RestDayOTExcessHours = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.TotalOvertime.RestDayOTExcessPay }, "187.5"},
		{"regular holiday worked 2.0", func(r *PayrollRecord) { r.TotalOvertime.RegularHolidayWorkedHours = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.TotalOvertime.RegularHolidayWorkedPay }, "250"},
		{"regular holiday worked excess 2.6", func(r *PayrollRecord) { r.TotalOvertime.RegularHolidayWorkedExcessHours = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.TotalOvertime.RegularHolidayWorkedExcessPay }, "325"},
		{"special holiday worked 1.3", func(r *PayrollRecord) { r.TotalOvertime.SpecialHolidayWorkedHours = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.TotalOvertime.SpecialHolidayWorkedPay }, "162.5"},
		{"special holiday worked OT 1.69", func(r *PayrollRecord) { r.TotalOvertime.SpecialHolidayWorkedOTHours = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.TotalOvertime.SpecialHolidayWorkedOTPay }, "211.25"},
		{"special holiday rest day 1.69", func(r *PayrollRecord) { r.TotalOvertime.SpecialHolidayRestDayHours = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.TotalOvertime.SpecialHolidayRestDayPay }, "211.25"},
		{"special holiday rest day OT 2.0", func(r *PayrollRecord) { r.TotalOvertime.SpecialHolidayRestDayOTHours = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.TotalOvertime.SpecialHolidayRestDayOTPay }, "250"},
		{"night differential 0.1", func(r *PayrollRecord) { r.TotalSupplementary.NightDiffHours = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.TotalSupplementary.NightDiffPay }, "12.5"},
		{"regular holiday unworked 1.0/day", func(r *PayrollRecord) { r.Holidays.RegularHolidays = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.Holidays.RegHolidayPay }, "1000"},
		{"special holiday base 0.3/day", func(r *PayrollRecord) { r.Holidays.SpecialHolidays = dec("1") },
			func(r PayrollRecord) decimal.Decimal { return r.Holidays.SpeHolidayPay }, "300"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := baseRecord("26000")
			tc.set(&rec)
			got := tc.get(Compute(rec))
			assert.True(t, got.Equal(dec(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestCompute_DeductionAggregation(t *testing.T) {
	rec := baseRecord("26000")
	rec.WorkDays = WorkDays{RegularDays: dec("24"), AbsentDays: dec("2"), MinsLate: 60, UndertimeMinutes: 0}
	rec.SalaryAdjustments.UnpaidDays = dec("1")
	rec.TotalDeductions = Deductions{
		SSS:        dec("1125"),
		PhilHealth: dec("650"),
		PagIbig:    dec("100"),
		WISP:       dec("225"),
		Tax:        dec("1875.5"),
		SSSLoan:    dec("500"),
	}

	out := Compute(rec)

	// absent 2d*1000 + 60min*(125/60) + unpaid 1d*1000 + line items
	require.True(t, out.LatesAndAbsences.AmountAbsent.Equal(dec("2000")))
	require.True(t, out.LatesAndAbsences.AmountMinLateUT.Equal(dec("125")))
	require.True(t, out.SalaryAdjustments.UnpaidAmount.Equal(dec("1000")))
	expected := dec("2000").Add(dec("125")).Add(dec("1000")).
		Add(dec("1125")).Add(dec("650")).Add(dec("100")).Add(dec("225")).Add(dec("1875.5")).Add(dec("500"))
	assert.True(t, out.TotalDeductions.TotalDeductions.Equal(expected),
		"total deductions = %s, want %s", out.TotalDeductions.TotalDeductions, expected)
}

func TestCompute_NetPayCanGoNegative(t *testing.T) {
	rec := baseRecord("26000")
	rec.WorkDays.RegularDays = dec("1")
	rec.TotalDeductions.CompanyLoan = dec("5000")

	out := Compute(rec)

	assert.True(t, out.GrandTotal.GrandTotal.IsNegative(),
		"net should be negative, got %s", out.GrandTotal.GrandTotal)
	assert.True(t, out.GrandTotal.GrandTotal.Equal(dec("-4000")))
}

func TestCompute_MissingRateYieldsZeroPay(t *testing.T) {
	// Absent rate is rate 0, not an error; the computation stays total.
	rec := PayrollRecord{Employee: EmployeeSnapshot{UserID: "emp-2"}}
	rec.WorkDays.RegularDays = dec("26")
	rec.TotalOvertime.RegularOTHours = dec("8")

	out := Compute(rec)
	assert.True(t, out.GrossSalary.GrossSalary.IsZero())
	assert.True(t, out.GrandTotal.GrandTotal.IsZero())
}

func TestCompute_ManualExtrasExcludedFromGross(t *testing.T) {
	rec := baseRecord("26000")
	rec.WorkDays.RegularDays = dec("26")
	rec.GrossSalary.NonTaxableAllowance = dec("2000")
	rec.GrossSalary.Bonus = dec("3000")

	out := Compute(rec)

	assert.True(t, out.GrossSalary.GrossSalary.Equal(dec("26000")))
	assert.True(t, out.GrossSalary.NonTaxableAllowance.Equal(dec("2000")), "manual field must survive recompute")
	assert.True(t, out.GrossSalary.Bonus.Equal(dec("3000")))
}
