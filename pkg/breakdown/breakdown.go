// Package breakdown rolls line items into phase-level and category-level
// summaries for presentation.
package breakdown

import (
	"sort"

	"github.com/minerehab/closure-forecast/pkg/closure"
	"github.com/minerehab/closure-forecast/pkg/costing"
	"github.com/minerehab/closure-forecast/pkg/mathutil"
)

// PhaseSummary is the rolled-up cost for one closure phase.
type PhaseSummary struct {
	Phase          closure.Phase `json:"phase"`
	Label          string        `json:"label"`
	Total          float64       `json:"total"`
	PercentOfTotal float64       `json:"percentOfTotal"`
}

// CategorySummary is the rolled-up cost for one cost category.
type CategorySummary struct {
	Category       closure.Category `json:"category"`
	Label          string           `json:"label"`
	Total          float64          `json:"total"`
	PercentOfTotal float64          `json:"percentOfTotal"`
}

// ByPhase sums subtotals per phase across all line items, direct and
// indirect alike. Every phase appears in the result, zero-cost phases
// included, so downstream percentage math is total over the phase enum.
func ByPhase(items []costing.LineItem) []PhaseSummary {
	totals := make(map[closure.Phase]float64, len(closure.Phases()))
	for _, phase := range closure.Phases() {
		totals[phase] = 0
	}
	var grand float64
	for _, item := range items {
		totals[item.Phase] += item.Subtotal
		grand += item.Subtotal
	}

	summaries := make([]PhaseSummary, 0, len(closure.Phases()))
	for _, phase := range closure.Phases() {
		total := mathutil.Round(totals[phase])
		summaries = append(summaries, PhaseSummary{
			Phase:          phase,
			Label:          phase.Label(),
			Total:          total,
			PercentOfTotal: mathutil.RoundTo(mathutil.CalculatePercentage(total, grand), 2),
		})
	}
	return summaries
}

// ByCategory sums subtotals per category, omits zero-value categories, and
// sorts descending by total cost. The omission and ordering differ from the
// phase breakdown on purpose: categories are a ranking, phases a timeline.
func ByCategory(items []costing.LineItem) []CategorySummary {
	totals := make(map[closure.Category]float64, len(closure.Categories()))
	var grand float64
	for _, item := range items {
		totals[item.Category] += item.Subtotal
		grand += item.Subtotal
	}

	summaries := make([]CategorySummary, 0, len(totals))
	for _, category := range closure.Categories() {
		total := mathutil.Round(totals[category])
		if total == 0 {
			continue
		}
		summaries = append(summaries, CategorySummary{
			Category:       category,
			Label:          category.Label(),
			Total:          total,
			PercentOfTotal: mathutil.RoundTo(mathutil.CalculatePercentage(total, grand), 2),
		})
	}

	// Stable sort keeps enum order for equal totals.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total > summaries[j].Total
	})
	return summaries
}
