// Package quantities derives the physical quantities that drive costing from
// the raw input record.
package quantities

import (
	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/pkg/risk"
	"github.com/minerehab/closure-forecast/pkg/units"
)

// Derived is the read-only snapshot of computed physical quantities and risk
// metrics for one estimate run.
type Derived struct {
	DisturbedAreaM2 float64 `json:"disturbedAreaM2"`
	TSFAreaM2       float64 `json:"tsfAreaM2"`
	WRDAreaM2       float64 `json:"wrdAreaM2"`

	TSFCappingVolumeM3      float64 `json:"tsfCappingVolumeM3"`
	WRDEarthworksVolumeM3   float64 `json:"wrdEarthworksVolumeM3"`
	TotalEarthworksVolumeM3 float64 `json:"totalEarthworksVolumeM3"`
	TopsoilVolumeM3         float64 `json:"topsoilVolumeM3"`

	TotalWaterTreatmentML float64 `json:"totalWaterTreatmentML"`

	RiskScore         float64 `json:"riskScore"`
	RiskUpliftPercent float64 `json:"riskUpliftPercent"`
}

// Derive computes the derived quantities for the given input. It is a pure
// function of the input state.
func Derive(in *config.InputState) Derived {
	q := in.Quantities

	d := Derived{
		DisturbedAreaM2: units.HaToM2(q.DisturbedAreaHa),
		TSFAreaM2:       units.HaToM2(q.TSFAreaHa),
		WRDAreaM2:       units.HaToM2(q.WRDFootprintHa),
	}

	d.TSFCappingVolumeM3 = d.TSFAreaM2 * q.TSFCoverThicknessM
	d.WRDEarthworksVolumeM3 = d.WRDAreaM2 * q.WRDReshapingDepthM * in.UnitRates.BulkingFactor

	// A survey override supersedes the parametric capping+reshaping model
	// when provided.
	if q.TotalEarthworksVolumeOverrideM3 != nil {
		d.TotalEarthworksVolumeM3 = *q.TotalEarthworksVolumeOverrideM3
	} else {
		d.TotalEarthworksVolumeM3 = d.TSFCappingVolumeM3 + d.WRDEarthworksVolumeM3
	}

	d.TopsoilVolumeM3 = d.DisturbedAreaM2 * q.TopsoilThicknessM
	d.TotalWaterTreatmentML = units.AnnualiseDailyFlow(q.WaterTreatmentFlowMLPerDay) * q.WaterTreatmentDurationYears

	d.RiskScore = risk.CompositeScore(in.RiskFactors)
	d.RiskUpliftPercent = risk.UpliftPercent(d.RiskScore)

	return d
}
