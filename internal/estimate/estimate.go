// Package estimate orchestrates the closure cost pipeline: derived
// quantities, direct and indirect costing, scheduling, cashflow, breakdowns,
// and sensitivity analysis, assembled into one Results aggregate.
package estimate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/internal/sensitivity"
	"github.com/minerehab/closure-forecast/pkg/breakdown"
	"github.com/minerehab/closure-forecast/pkg/cashflow"
	"github.com/minerehab/closure-forecast/pkg/closure"
	"github.com/minerehab/closure-forecast/pkg/constants"
	"github.com/minerehab/closure-forecast/pkg/costing"
	"github.com/minerehab/closure-forecast/pkg/mathutil"
	"github.com/minerehab/closure-forecast/pkg/quantities"
	"github.com/minerehab/closure-forecast/pkg/schedule"
)

// Results is the root output aggregate for one estimate run. It is plain
// serializable data with no behavior, produced atomically by Run.
type Results struct {
	Derived   quantities.Derived `json:"derived"`
	LineItems []costing.LineItem `json:"lineItems"`

	DirectWorksCost     float64 `json:"directWorksCost"`
	IndirectCosts       float64 `json:"indirectCosts"`
	TotalNominalCost    float64 `json:"totalNominalCost"`
	TotalEscalatedCost  float64 `json:"totalEscalatedCost"`
	TotalDiscountedCost float64 `json:"totalDiscountedCost"`

	PeakCashflowYear int     `json:"peakCashflowYear"`
	PeakCashflowCost float64 `json:"peakCashflowCost"`

	Cashflow []cashflow.Year `json:"cashflow"`

	PhaseBreakdown    []breakdown.PhaseSummary    `json:"phaseBreakdown"`
	CategoryBreakdown []breakdown.CategorySummary `json:"categoryBreakdown"`

	Sensitivity []sensitivity.Result `json:"sensitivity,omitempty"`

	MonitoringCostSharePercent float64           `json:"monitoringCostSharePercent"`
	Schedule                   schedule.Schedule `json:"schedule"`
	TotalDurationYears         int               `json:"totalDurationYears"`
}

// Options adjust how Run assembles the estimate.
type Options struct {
	// SkipSensitivity leaves the sensitivity results empty. Useful when
	// only the headline estimate is needed.
	SkipSensitivity bool

	// SensitivityVariationPercent overrides the default +/-10% driver
	// perturbation when positive.
	SensitivityVariationPercent float64
}

// Run computes the full estimate for a pre-validated input state, including
// sensitivity analysis. Identical inputs always produce structurally
// identical results.
func Run(logger *zap.Logger, in *config.InputState) (*Results, error) {
	return RunWithOptions(logger, in, Options{})
}

// RunWithOptions computes the estimate with the provided options.
func RunWithOptions(logger *zap.Logger, in *config.InputState, opts Options) (*Results, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if in == nil {
		return nil, fmt.Errorf("input state cannot be nil")
	}

	results := compute(in)

	logger.Debug("computed base estimate",
		zap.String("op", "estimate.RunWithOptions"),
		zap.Float64("totalNominalCost", results.TotalNominalCost),
		zap.Float64("npv", results.TotalDiscountedCost),
		zap.Int("totalDurationYears", results.TotalDurationYears),
	)

	if !opts.SkipSensitivity {
		variation := opts.SensitivityVariationPercent
		if variation <= 0 {
			variation = constants.DefaultSensitivityVariationPercent
		}

		sensResults, err := sensitivity.Analyze(logger, in, variation, func(perturbed *config.InputState) (sensitivity.Evaluation, error) {
			branch := compute(perturbed)
			return sensitivity.Evaluation{
				TotalCost: branch.TotalNominalCost,
				NPV:       branch.TotalDiscountedCost,
			}, nil
		})
		if err != nil {
			return nil, fmt.Errorf("sensitivity analysis failed: %w", err)
		}
		results.Sensitivity = sensResults
	}

	return results, nil
}

// compute runs the deterministic pipeline for one input, without sensitivity
// analysis. Sensitivity branches reuse it on their perturbed clones.
func compute(in *config.InputState) *Results {
	derived := quantities.Derive(in)

	direct := costing.BuildDirectWorks(in, derived)
	directTotal := costing.Total(direct)

	indirect := costing.BuildIndirects(in.IndirectRates, derived.RiskUpliftPercent, directTotal)
	items := append(direct, indirect...)

	sched := schedule.Build(in.Durations)
	years := cashflow.Distribute(items, sched, in.Durations, in.Financial)
	peakYear, peakCost := cashflow.Peak(years)

	totalNominal := mathutil.Round(costing.Total(items))

	var monitoringCost float64
	for _, item := range items {
		if item.Category == closure.CategoryMonitoring {
			monitoringCost += item.Subtotal
		}
	}

	return &Results{
		Derived:                    derived,
		LineItems:                  items,
		DirectWorksCost:            mathutil.Round(directTotal),
		IndirectCosts:              mathutil.Round(costing.Total(indirect)),
		TotalNominalCost:           totalNominal,
		TotalEscalatedCost:         cashflow.TotalEscalated(years),
		TotalDiscountedCost:        cashflow.TotalDiscounted(years),
		PeakCashflowYear:           peakYear,
		PeakCashflowCost:           peakCost,
		Cashflow:                   years,
		PhaseBreakdown:             breakdown.ByPhase(items),
		CategoryBreakdown:          breakdown.ByCategory(items),
		MonitoringCostSharePercent: mathutil.RoundTo(mathutil.CalculatePercentage(monitoringCost, totalNominal), 2),
		Schedule:                   sched,
		TotalDurationYears:         sched.TotalDurationYears,
	}
}
