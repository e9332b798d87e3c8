package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/internal/estimate"
)

func defaultResults(t *testing.T) *estimate.Results {
	t.Helper()
	in := config.DefaultInputState()
	results, err := estimate.Run(nil, &in)
	if err != nil {
		t.Fatalf("failed to compute results fixture: %v", err)
	}
	return results
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyString(t *testing.T) {
	out := PrettyString(defaultResults(t))

	for _, want := range []string{
		"--- Closure cost estimate ---",
		"--- Phase breakdown ---",
		"--- Category breakdown ---",
		"--- Sensitivity (sorted by cost impact) ---",
		"Total (nominal):",
		"NPV (discounted):",
		"Project duration:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("PrettyString missing %q", want)
		}
	}

	// Currency values carry thousands separators via the message printer.
	if !strings.Contains(out, ",") {
		t.Error("PrettyString should format large currency values with separators")
	}
}

func TestPrettyFormatWritesStdout(t *testing.T) {
	results := defaultResults(t)
	out := captureStdout(t, func() { PrettyFormat(results) })
	if !strings.Contains(out, "--- Closure cost estimate ---") {
		t.Error("PrettyFormat did not write the summary header to stdout")
	}
}

func TestCsvString(t *testing.T) {
	results := defaultResults(t)
	out := CsvString(results)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != `"year","nominal","escalated","discounted","cumulative nominal","cumulative discounted"` {
		t.Errorf("CsvString header = %q", lines[0])
	}
	// Header plus one row per project year.
	if len(lines) != len(results.Cashflow)+1 {
		t.Errorf("CsvString produced %d lines, expected %d", len(lines), len(results.Cashflow)+1)
	}
	if !strings.Contains(lines[1], `"2030"`) {
		t.Errorf("first cashflow row %q should start at the closure start year", lines[1])
	}
}

func TestItemsCsvString(t *testing.T) {
	results := defaultResults(t)
	out := ItemsCsvString(results)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(results.LineItems)+1 {
		t.Errorf("ItemsCsvString produced %d lines, expected %d", len(lines), len(results.LineItems)+1)
	}
	if !strings.Contains(out, `"Mobilisation"`) {
		t.Error("ItemsCsvString missing the mobilisation line")
	}
	if !strings.Contains(out, `"lump sum"`) {
		t.Error("ItemsCsvString missing lump sum units")
	}
}

func TestJSONStringRoundTrips(t *testing.T) {
	results := defaultResults(t)
	out, err := JSONString(results)
	if err != nil {
		t.Fatalf("JSONString() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSONString produced invalid JSON: %v", err)
	}
	for _, key := range []string{"derived", "lineItems", "totalNominalCost", "cashflow", "phaseBreakdown", "sensitivity"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON output missing key %q", key)
		}
	}
}

func TestJSONFormatWritesStdout(t *testing.T) {
	results := defaultResults(t)
	out := captureStdout(t, func() {
		if err := JSONFormat(results); err != nil {
			t.Errorf("JSONFormat() error = %v", err)
		}
	})
	if !strings.Contains(out, `"totalNominalCost"`) {
		t.Error("JSONFormat did not write results JSON to stdout")
	}
}
