// Package risk computes the composite site risk score and the contingency
// uplift derived from it.
package risk

import (
	"github.com/minerehab/closure-forecast/pkg/mathutil"
)

// Factors holds the five independent risk scores, each on a 0-100 scale.
type Factors struct {
	Contamination float64 `json:"contamination" yaml:"contamination"`
	Geotechnical  float64 `json:"geotechnical" yaml:"geotechnical"`
	WaterQuality  float64 `json:"waterQuality" yaml:"waterQuality"`
	Regulatory    float64 `json:"regulatory" yaml:"regulatory"`
	Logistics     float64 `json:"logistics" yaml:"logistics"`
}

// Composite score weights. They sum to 1.0 so the score stays on the same
// 0-100 scale as the input factors.
const (
	WeightContamination = 0.25
	WeightGeotechnical  = 0.20
	WeightWaterQuality  = 0.25
	WeightRegulatory    = 0.15
	WeightLogistics     = 0.15
)

// upliftSegment is one linear segment of the score-to-uplift map.
type upliftSegment struct {
	scoreLow   float64
	scoreHigh  float64
	upliftLow  float64
	upliftHigh float64
}

// The piecewise-linear uplift map. Segments share endpoints so the mapping
// is continuous and non-decreasing over the full score range.
var upliftSegments = []upliftSegment{
	{0, 20, 0, 5},
	{20, 40, 5, 10},
	{40, 60, 10, 20},
	{60, 80, 20, 35},
	{80, 100, 35, 50},
}

// CompositeScore returns the weighted composite risk score on a 0-100 scale,
// rounded to one decimal.
func CompositeScore(f Factors) float64 {
	score := f.Contamination*WeightContamination +
		f.Geotechnical*WeightGeotechnical +
		f.WaterQuality*WeightWaterQuality +
		f.Regulatory*WeightRegulatory +
		f.Logistics*WeightLogistics
	return mathutil.RoundTo(score, 1)
}

// UpliftPercent maps a composite risk score to a contingency uplift
// percentage between 0 and 50. Scores outside [0, 100] clamp to the
// endpoint uplifts.
func UpliftPercent(score float64) float64 {
	if score <= 0 {
		return 0
	}
	if score >= 100 {
		return 50
	}
	for _, seg := range upliftSegments {
		if score <= seg.scoreHigh {
			fraction := (score - seg.scoreLow) / (seg.scoreHigh - seg.scoreLow)
			return seg.upliftLow + fraction*(seg.upliftHigh-seg.upliftLow)
		}
	}
	return 50
}
