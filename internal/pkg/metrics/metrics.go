// Package metrics exposes Prometheus counters for the payroll and leave
// accrual paths, served on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Accrual run outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeSkipped = "skipped"
	OutcomeFailure = "failure"
)

var (
	AccrualRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrops_leave_accrual_runs_total",
		Help: "Leave accrual runs by outcome (success, skipped, failure).",
	}, []string{"outcome"})

	AccrualLedgersUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hrops_leave_accrual_ledgers_updated_total",
		Help: "Ledgers credited across all accrual runs.",
	})

	PayrollComputations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hrops_payroll_computations_total",
		Help: "Full payroll recomputations performed.",
	})

	PayslipsRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hrops_payslips_rendered_total",
		Help: "Payslip PDFs rendered.",
	})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
