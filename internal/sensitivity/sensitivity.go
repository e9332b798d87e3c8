// Package sensitivity performs one-at-a-time driver analysis: each named
// input driver is perturbed by a fixed percentage in both directions and the
// full estimate pipeline is rerun at each end.
package sensitivity

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/pkg/constants"
)

// Evaluation carries the two headline figures a sensitivity branch records.
type Evaluation struct {
	TotalCost float64
	NPV       float64
}

// Evaluator runs the full estimate pipeline for a perturbed input. It is
// injected by the caller so this package does not depend on the estimate
// orchestrator.
type Evaluator func(*config.InputState) (Evaluation, error)

// Driver identifies one perturbable input parameter through a getter and
// setter pair, keeping the driver list data rather than code.
type Driver struct {
	Name string
	Unit string
	Get  func(*config.InputState) float64
	Set  func(*config.InputState, float64)
}

// Drivers returns the fixed list of analysed drivers. Only these eight of
// the available parameters are wired in; extending the list is a matter of
// adding a table row.
func Drivers() []Driver {
	return []Driver{
		{
			Name: "Disturbed area",
			Unit: "ha",
			Get:  func(in *config.InputState) float64 { return in.Quantities.DisturbedAreaHa },
			Set:  func(in *config.InputState, v float64) { in.Quantities.DisturbedAreaHa = v },
		},
		{
			Name: "Earthworks rate",
			Unit: "$/m3",
			Get:  func(in *config.InputState) float64 { return in.UnitRates.EarthworksPerM3 },
			Set:  func(in *config.InputState, v float64) { in.UnitRates.EarthworksPerM3 = v },
		},
		{
			Name: "TSF area",
			Unit: "ha",
			Get:  func(in *config.InputState) float64 { return in.Quantities.TSFAreaHa },
			Set:  func(in *config.InputState, v float64) { in.Quantities.TSFAreaHa = v },
		},
		{
			Name: "TSF cover thickness",
			Unit: "m",
			Get:  func(in *config.InputState) float64 { return in.Quantities.TSFCoverThicknessM },
			Set:  func(in *config.InputState, v float64) { in.Quantities.TSFCoverThicknessM = v },
		},
		{
			Name: "Water treatment duration",
			Unit: "years",
			Get:  func(in *config.InputState) float64 { return in.Quantities.WaterTreatmentDurationYears },
			Set:  func(in *config.InputState, v float64) { in.Quantities.WaterTreatmentDurationYears = v },
		},
		{
			Name: "Contingency",
			Unit: "%",
			Get:  func(in *config.InputState) float64 { return in.IndirectRates.ContingencyPercent },
			Set:  func(in *config.InputState, v float64) { in.IndirectRates.ContingencyPercent = v },
		},
		{
			Name: "Discount rate",
			Unit: "%",
			Get:  func(in *config.InputState) float64 { return in.Financial.DiscountRatePercent },
			Set:  func(in *config.InputState, v float64) { in.Financial.DiscountRatePercent = v },
		},
		{
			Name: "Revegetation rate",
			Unit: "$/ha",
			Get:  func(in *config.InputState) float64 { return in.UnitRates.RevegetationPerHa },
			Set:  func(in *config.InputState, v float64) { in.UnitRates.RevegetationPerHa = v },
		},
	}
}

// Result records the outcome of perturbing one driver.
type Result struct {
	Driver           string  `json:"driver"`
	Unit             string  `json:"unit"`
	BaseValue        float64 `json:"baseValue"`
	LowValue         float64 `json:"lowValue"`
	HighValue        float64 `json:"highValue"`
	VariationPercent float64 `json:"variationPercent"`
	LowTotalCost     float64 `json:"lowTotalCost"`
	HighTotalCost    float64 `json:"highTotalCost"`
	LowNPV           float64 `json:"lowNPV"`
	HighNPV          float64 `json:"highNPV"`
	TotalCostDelta   float64 `json:"totalCostDelta"`
	NPVDelta         float64 `json:"npvDelta"`
}

// Analyze perturbs every driver with a non-zero base value by
// variationPercent in each direction and reruns the pipeline through the
// evaluator. Drivers with a zero base are skipped: a percentage of zero is
// meaningless and would collapse both branches onto the base case. Results
// come back sorted by descending absolute cost delta.
func Analyze(logger *zap.Logger, in *config.InputState, variationPercent float64, evaluate Evaluator) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if evaluate == nil {
		return nil, fmt.Errorf("sensitivity evaluator cannot be nil")
	}
	if variationPercent <= 0 {
		variationPercent = constants.DefaultSensitivityVariationPercent
	}

	var results []Result
	for _, driver := range Drivers() {
		base := driver.Get(in)
		if base == 0 {
			logger.Debug("skipping sensitivity driver with zero base value",
				zap.String("op", "sensitivity.Analyze"),
				zap.String("driver", driver.Name),
			)
			continue
		}

		lowValue := base * (1 - variationPercent/100)
		highValue := base * (1 + variationPercent/100)

		lowInput := in.Clone()
		driver.Set(lowInput, lowValue)
		low, err := evaluate(lowInput)
		if err != nil {
			return nil, fmt.Errorf("sensitivity low branch for %s failed: %w", driver.Name, err)
		}

		highInput := in.Clone()
		driver.Set(highInput, highValue)
		high, err := evaluate(highInput)
		if err != nil {
			return nil, fmt.Errorf("sensitivity high branch for %s failed: %w", driver.Name, err)
		}

		results = append(results, Result{
			Driver:           driver.Name,
			Unit:             driver.Unit,
			BaseValue:        base,
			LowValue:         lowValue,
			HighValue:        highValue,
			VariationPercent: variationPercent,
			LowTotalCost:     low.TotalCost,
			HighTotalCost:    high.TotalCost,
			LowNPV:           low.NPV,
			HighNPV:          high.NPV,
			TotalCostDelta:   high.TotalCost - low.TotalCost,
			NPVDelta:         high.NPV - low.NPV,
		})

		logger.Debug("evaluated sensitivity driver",
			zap.String("op", "sensitivity.Analyze"),
			zap.String("driver", driver.Name),
			zap.Float64("base", base),
			zap.Float64("costDelta", high.TotalCost-low.TotalCost),
		)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return math.Abs(results[i].TotalCostDelta) > math.Abs(results[j].TotalCostDelta)
	})

	return results, nil
}
