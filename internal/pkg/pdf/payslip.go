// Package pdf renders payslips with gofpdf.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// RenderPayslip renders a single payroll record as an A4 payslip and returns
// the PDF bytes.
func RenderPayslip(rec payroll.PayrollRecord) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	p.SetFont("Helvetica", "B", 16)
	p.Cell(40, 10, "Payslip")
	p.Ln(12)

	p.SetFont("Helvetica", "", 12)
	p.Cell(0, 8, fmt.Sprintf("Employee: %s", rec.Employee.FullName))
	p.Ln(7)
	p.Cell(0, 8, fmt.Sprintf("Email: %s", rec.Employee.Email))
	p.Ln(7)
	p.Cell(0, 8, fmt.Sprintf("Position: %s", rec.Employee.JobPosition))
	p.Ln(10)

	p.SetFont("Helvetica", "B", 12)
	p.Cell(0, 8, "Earnings")
	p.Ln(8)
	p.SetFont("Helvetica", "", 11)
	line(p, "Basic pay", rec.Pay.BasicPay)
	line(p, "Regular holiday pay", rec.Holidays.RegHolidayPay)
	line(p, "Special holiday pay", rec.Holidays.SpeHolidayPay)
	line(p, "Overtime pay", rec.TotalOvertime.TotalOvertimePay)
	line(p, "Night differential", rec.TotalSupplementary.TotalSupplementaryPay)
	line(p, "Salary increase", rec.SalaryAdjustments.SalaryIncrease)
	line(p, "Non-taxable allowance", rec.GrossSalary.NonTaxableAllowance)
	line(p, "Bonus", rec.GrossSalary.Bonus)
	p.Ln(3)

	p.SetFont("Helvetica", "B", 12)
	p.Cell(0, 8, "Deductions")
	p.Ln(8)
	p.SetFont("Helvetica", "", 11)
	line(p, "Absences", rec.LatesAndAbsences.AmountAbsent)
	line(p, "Lates / undertime", rec.LatesAndAbsences.AmountMinLateUT)
	line(p, "Unpaid days", rec.SalaryAdjustments.UnpaidAmount)
	line(p, "SSS", rec.TotalDeductions.SSS)
	line(p, "PhilHealth", rec.TotalDeductions.PhilHealth)
	line(p, "Pag-IBIG", rec.TotalDeductions.PagIbig)
	line(p, "WISP", rec.TotalDeductions.WISP)
	line(p, "Withholding tax", rec.TotalDeductions.Tax)
	line(p, "Loans", rec.TotalDeductions.SSSLoan.Add(rec.TotalDeductions.PagIbigLoan).Add(rec.TotalDeductions.CompanyLoan))
	p.Ln(3)

	p.SetFont("Helvetica", "B", 12)
	line(p, "Gross salary", rec.GrossSalary.GrossSalary)
	line(p, "Total deductions", rec.TotalDeductions.TotalDeductions)
	line(p, "Net pay", rec.GrandTotal.GrandTotal)

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func line(p *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	p.CellFormat(100, 7, label, "", 0, "L", false, 0, "")
	p.CellFormat(60, 7, amount.StringFixed(2), "", 0, "R", false, 0, "")
	p.Ln(7)
}
