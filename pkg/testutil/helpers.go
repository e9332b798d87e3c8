// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/minerehab/closure-forecast/pkg/closure"
	"github.com/minerehab/closure-forecast/pkg/costing"
)

// FindLineItem finds the first line item of the given category in the slice.
// Returns a pointer to the item if found, nil otherwise.
func FindLineItem(items []costing.LineItem, category closure.Category) *costing.LineItem {
	for i := range items {
		if items[i].Category == category {
			return &items[i]
		}
	}
	return nil
}

// CategoryTotal sums the subtotals of every line item in the given category.
func CategoryTotal(items []costing.LineItem, category closure.Category) float64 {
	var total float64
	for i := range items {
		if items[i].Category == category {
			total += items[i].Subtotal
		}
	}
	return total
}
