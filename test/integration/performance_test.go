package integration

import (
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/internal/estimate"
)

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

// TestBasicFunctionality tests basic functionality works
func TestBasicFunctionality(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	results, err := estimate.Run(logger, &conf.Input)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if results.TotalNominalCost <= 0 {
		t.Fatalf("Expected a positive estimate but got %.2f", results.TotalNominalCost)
	}

	t.Logf("Successfully computed estimate of %.2f over %d years",
		results.TotalNominalCost, results.TotalDurationYears)
}

// TestPerformance tests performance characteristics of the full pipeline
// including sensitivity analysis.
func TestPerformance(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	start := time.Now()
	for i := 0; i < 100; i++ {
		if _, err := estimate.Run(logger, &conf.Input); err != nil {
			t.Fatalf("Run failed on iteration %d: %v", i, err)
		}
	}
	elapsed := time.Since(start)

	// The pipeline is pure arithmetic over small slices; 100 full runs with
	// sensitivity should complete well inside a second.
	if elapsed > 5*time.Second {
		t.Errorf("100 estimate runs took %v, expected under 5s", elapsed)
	}
	t.Logf("100 estimate runs completed in %v", elapsed)
}

func BenchmarkEstimateRun(b *testing.B) {
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		b.Fatalf("LoadConfiguration failed: %v", err)
	}
	logger := zap.NewNop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := estimate.Run(logger, &conf.Input); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

func BenchmarkEstimateRunWithoutSensitivity(b *testing.B) {
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		b.Fatalf("LoadConfiguration failed: %v", err)
	}
	logger := zap.NewNop()
	opts := estimate.Options{SkipSensitivity: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := estimate.RunWithOptions(logger, &conf.Input, opts); err != nil {
			b.Fatalf("RunWithOptions failed: %v", err)
		}
	}
}
