// Package cashflow spreads line item costs across project years and applies
// escalation and discounting.
package cashflow

import (
	"math"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/pkg/closure"
	"github.com/minerehab/closure-forecast/pkg/costing"
	"github.com/minerehab/closure-forecast/pkg/mathutil"
	"github.com/minerehab/closure-forecast/pkg/schedule"
)

// Year is one annual bucket of the time-phased cashflow.
type Year struct {
	Year                 int                      `json:"year"`
	Offset               int                      `json:"offset"`
	NominalCost          float64                  `json:"nominalCost"`
	EscalatedCost        float64                  `json:"escalatedCost"`
	DiscountedCost       float64                  `json:"discountedCost"`
	CumulativeNominal    float64                  `json:"cumulativeNominal"`
	CumulativeDiscounted float64                  `json:"cumulativeDiscounted"`
	PhaseCosts           map[closure.Phase]float64 `json:"phaseCosts"`
}

// Distribute allocates every line item across its phase's configured years,
// then applies escalation and discounting per year. The result always has
// TotalDurationYears+1 buckets, offsets 0 through the total duration.
//
// Escalation compounds from year zero; discounting divides the escalated
// value back at the configured rate. The discount mode flag does not change
// the rate applied in either mode; it is carried for callers only.
func Distribute(items []costing.LineItem, sched schedule.Schedule, durations config.PhaseDurations, fin config.Financial) []Year {
	duration := sched.TotalDurationYears
	years := make([]Year, duration+1)
	for offset := range years {
		phaseCosts := make(map[closure.Phase]float64, len(closure.Phases()))
		for _, phase := range closure.Phases() {
			phaseCosts[phase] = 0
		}
		years[offset] = Year{
			Year:       fin.ClosureStartYear + offset,
			Offset:     offset,
			PhaseCosts: phaseCosts,
		}
	}

	for _, item := range items {
		start := sched.StartYear(item.Phase)
		phaseYears := durations.Years(item.Phase)

		if phaseYears <= 0 {
			// Zero-duration phases collapse their costs into the start year.
			offset := clampOffset(start, duration)
			years[offset].NominalCost += item.Subtotal
			years[offset].PhaseCosts[item.Phase] += item.Subtotal
			continue
		}

		annual := item.Subtotal / float64(phaseYears)
		for i := 0; i < phaseYears; i++ {
			offset := clampOffset(start+i, duration)
			years[offset].NominalCost += annual
			years[offset].PhaseCosts[item.Phase] += annual
		}
	}

	escalation := fin.EscalationRatePercent / 100
	discount := fin.DiscountRatePercent / 100

	var cumulativeNominal, cumulativeDiscounted float64
	for offset := range years {
		nominal := years[offset].NominalCost
		escalated := nominal * math.Pow(1+escalation, float64(offset))
		discounted := escalated / math.Pow(1+discount, float64(offset))

		years[offset].NominalCost = mathutil.Round(nominal)
		years[offset].EscalatedCost = mathutil.Round(escalated)
		years[offset].DiscountedCost = mathutil.Round(discounted)

		cumulativeNominal += years[offset].NominalCost
		cumulativeDiscounted += years[offset].DiscountedCost
		years[offset].CumulativeNominal = mathutil.Round(cumulativeNominal)
		years[offset].CumulativeDiscounted = mathutil.Round(cumulativeDiscounted)

		for phase, cost := range years[offset].PhaseCosts {
			years[offset].PhaseCosts[phase] = mathutil.Round(cost)
		}
	}

	return years
}

func clampOffset(offset, duration int) int {
	if offset < 0 {
		return 0
	}
	if offset > duration {
		return duration
	}
	return offset
}

// TotalNominal sums the nominal cost across all years.
func TotalNominal(years []Year) float64 {
	var total float64
	for _, y := range years {
		total += y.NominalCost
	}
	return mathutil.Round(total)
}

// TotalEscalated sums the escalated cost across all years.
func TotalEscalated(years []Year) float64 {
	var total float64
	for _, y := range years {
		total += y.EscalatedCost
	}
	return mathutil.Round(total)
}

// TotalDiscounted sums the discounted cost across all years, i.e. the NPV of
// the closure programme.
func TotalDiscounted(years []Year) float64 {
	var total float64
	for _, y := range years {
		total += y.DiscountedCost
	}
	return mathutil.Round(total)
}

// Peak returns the year with the highest escalated cost. The earliest year
// wins ties. The second return is the peak escalated cost; both are zero
// for an empty sequence.
func Peak(years []Year) (int, float64) {
	if len(years) == 0 {
		return 0, 0
	}
	peakYear := years[0].Year
	peakCost := years[0].EscalatedCost
	for _, y := range years[1:] {
		if y.EscalatedCost > peakCost {
			peakYear = y.Year
			peakCost = y.EscalatedCost
		}
	}
	return peakYear, peakCost
}
