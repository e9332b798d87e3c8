// Package costing builds the itemized direct and indirect cost lines for a
// closure estimate.
package costing

import (
	"github.com/minerehab/closure-forecast/pkg/closure"
	"github.com/minerehab/closure-forecast/pkg/mathutil"
)

// LineItem is one itemized cost in an estimate. Subtotal is always
// Quantity x UnitRate; lump sums carry a quantity of 1. Line items are
// immutable once built.
type LineItem struct {
	Category    closure.Category `json:"category"`
	Description string           `json:"description"`
	Quantity    float64          `json:"quantity"`
	Unit        string           `json:"unit"`
	UnitRate    float64          `json:"unitRate"`
	Subtotal    float64          `json:"subtotal"`
	Phase       closure.Phase    `json:"phase"`
}

// UnitLumpSum is the unit label for costs not scaled by a physical driver.
const UnitLumpSum = "lump sum"

func newLineItem(category closure.Category, description string, quantity float64, unit string, unitRate float64, phase closure.Phase) LineItem {
	return LineItem{
		Category:    category,
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		UnitRate:    unitRate,
		Subtotal:    mathutil.Round(quantity * unitRate),
		Phase:       phase,
	}
}

func newLumpSum(category closure.Category, description string, amount float64, phase closure.Phase) LineItem {
	return newLineItem(category, description, 1, UnitLumpSum, amount, phase)
}

// Total sums the subtotals of the given line items.
func Total(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

// DirectTotal sums the subtotals of direct works items only.
func DirectTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		if !item.Category.Indirect() {
			total += item.Subtotal
		}
	}
	return total
}

// IndirectTotal sums the subtotals of indirect items only.
func IndirectTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		if item.Category.Indirect() {
			total += item.Subtotal
		}
	}
	return total
}
