// Package output provides utilities for formatting and displaying estimate
// results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/minerehab/closure-forecast/internal/estimate"
)

// PrettyString renders a human-readable summary of the estimate.
func PrettyString(results *estimate.Results) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString("--- Closure cost estimate ---\n")
	p.Fprintf(&b, "Direct works:        $%.2f\n", results.DirectWorksCost)
	p.Fprintf(&b, "Indirect costs:      $%.2f\n", results.IndirectCosts)
	p.Fprintf(&b, "Total (nominal):     $%.2f\n", results.TotalNominalCost)
	p.Fprintf(&b, "Total (escalated):   $%.2f\n", results.TotalEscalatedCost)
	p.Fprintf(&b, "NPV (discounted):    $%.2f\n", results.TotalDiscountedCost)
	p.Fprintf(&b, "Peak cashflow:       $%.2f in %d\n", results.PeakCashflowCost, results.PeakCashflowYear)
	fmt.Fprintf(&b, "Project duration:    %d years\n", results.TotalDurationYears)
	fmt.Fprintf(&b, "Risk score:          %.1f (uplift %.1f%%)\n", results.Derived.RiskScore, results.Derived.RiskUpliftPercent)
	fmt.Fprintf(&b, "Monitoring share:    %.1f%% of total\n", results.MonitoringCostSharePercent)

	b.WriteString("\n--- Phase breakdown ---\n")
	b.WriteString("Phase                                  | Total           | Share\n")
	b.WriteString("_____                                  | _____           | _____\n")
	for _, phase := range results.PhaseBreakdown {
		p.Fprintf(&b, "%-38s | $%.2f | %.1f%%\n", phase.Label, phase.Total, phase.PercentOfTotal)
	}

	b.WriteString("\n--- Category breakdown ---\n")
	b.WriteString("Category                               | Total           | Share\n")
	b.WriteString("________                               | _____           | _____\n")
	for _, category := range results.CategoryBreakdown {
		p.Fprintf(&b, "%-38s | $%.2f | %.1f%%\n", category.Label, category.Total, category.PercentOfTotal)
	}

	if len(results.Sensitivity) > 0 {
		b.WriteString("\n--- Sensitivity (sorted by cost impact) ---\n")
		b.WriteString("Driver                    | Cost delta      | NPV delta\n")
		b.WriteString("______                    | __________      | _________\n")
		for _, s := range results.Sensitivity {
			p.Fprintf(&b, "%-25s | $%.2f | $%.2f\n", s.Driver, s.TotalCostDelta, s.NPVDelta)
		}
	}

	return b.String()
}

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(results *estimate.Results) {
	fmt.Print(PrettyString(results))
}

// CsvString renders the annual cashflow in comma-separated value format.
func CsvString(results *estimate.Results) string {
	var b strings.Builder
	b.WriteString(`"year","nominal","escalated","discounted","cumulative nominal","cumulative discounted"` + "\n")
	for _, y := range results.Cashflow {
		fmt.Fprintf(&b, `"%d","%.2f","%.2f","%.2f","%.2f","%.2f"`+"\n",
			y.Year, y.NominalCost, y.EscalatedCost, y.DiscountedCost,
			y.CumulativeNominal, y.CumulativeDiscounted)
	}
	return b.String()
}

// CsvFormat outputs the annual cashflow in comma-separated value format.
func CsvFormat(results *estimate.Results) {
	fmt.Print(CsvString(results))
}

// ItemsCsvString renders the line items in comma-separated value format.
func ItemsCsvString(results *estimate.Results) string {
	var b strings.Builder
	b.WriteString(`"category","description","quantity","unit","unit rate","subtotal","phase"` + "\n")
	for _, item := range results.LineItems {
		fmt.Fprintf(&b, `"%s","%s","%.2f","%s","%.2f","%.2f","%s"`+"\n",
			item.Category, item.Description, item.Quantity, item.Unit,
			item.UnitRate, item.Subtotal, item.Phase)
	}
	return b.String()
}

// JSONString renders the full results structure as indented JSON.
func JSONString(results *estimate.Results) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	return string(data), nil
}

// JSONFormat outputs the full results structure as indented JSON.
func JSONFormat(results *estimate.Results) error {
	s, err := JSONString(results)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}
