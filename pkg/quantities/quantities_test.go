package quantities

import (
	"math"
	"testing"

	"github.com/minerehab/closure-forecast/internal/config"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func TestDeriveAreasAndVolumes(t *testing.T) {
	in := config.DefaultInputState()
	in.Quantities.DisturbedAreaHa = 500
	in.Quantities.TopsoilThicknessM = 0.15
	in.Quantities.TSFAreaHa = 100
	in.Quantities.TSFCoverThicknessM = 0.5
	in.Quantities.WRDFootprintHa = 200
	in.Quantities.WRDReshapingDepthM = 0.3
	in.UnitRates.BulkingFactor = 1.15
	in.Quantities.TotalEarthworksVolumeOverrideM3 = nil

	d := Derive(&in)

	if !almostEqual(d.DisturbedAreaM2, 5000000) {
		t.Errorf("DisturbedAreaM2 = %v, expected 5000000", d.DisturbedAreaM2)
	}
	if !almostEqual(d.TSFAreaM2, 1000000) {
		t.Errorf("TSFAreaM2 = %v, expected 1000000", d.TSFAreaM2)
	}
	if !almostEqual(d.WRDAreaM2, 2000000) {
		t.Errorf("WRDAreaM2 = %v, expected 2000000", d.WRDAreaM2)
	}
	if !almostEqual(d.TSFCappingVolumeM3, 500000) {
		t.Errorf("TSFCappingVolumeM3 = %v, expected 500000", d.TSFCappingVolumeM3)
	}
	if !almostEqual(d.WRDEarthworksVolumeM3, 690000) {
		t.Errorf("WRDEarthworksVolumeM3 = %v, expected 690000", d.WRDEarthworksVolumeM3)
	}
	if !almostEqual(d.TotalEarthworksVolumeM3, 1190000) {
		t.Errorf("TotalEarthworksVolumeM3 = %v, expected 1190000", d.TotalEarthworksVolumeM3)
	}
	if !almostEqual(d.TopsoilVolumeM3, 750000) {
		t.Errorf("TopsoilVolumeM3 = %v, expected 750000", d.TopsoilVolumeM3)
	}
}

func TestDeriveEarthworksOverride(t *testing.T) {
	in := config.DefaultInputState()
	override := 42000.0
	in.Quantities.TotalEarthworksVolumeOverrideM3 = &override

	d := Derive(&in)

	if !almostEqual(d.TotalEarthworksVolumeM3, 42000.0) {
		t.Errorf("TotalEarthworksVolumeM3 = %v, expected survey override 42000", d.TotalEarthworksVolumeM3)
	}
	// The component volumes still reflect the parametric model.
	if d.TSFCappingVolumeM3 == 0 || d.WRDEarthworksVolumeM3 == 0 {
		t.Error("component volumes should be derived even when the override is set")
	}
}

func TestDeriveWaterTreatmentVolume(t *testing.T) {
	tests := []struct {
		name     string
		flow     float64
		years    float64
		expected float64
	}{
		{"Default programme", 2, 10, 7300},
		{"Single year", 1, 1, 365},
		{"No treatment", 0, 10, 0},
		{"No duration", 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := config.DefaultInputState()
			in.Quantities.WaterTreatmentFlowMLPerDay = tt.flow
			in.Quantities.WaterTreatmentDurationYears = tt.years

			d := Derive(&in)
			if !almostEqual(d.TotalWaterTreatmentML, tt.expected) {
				t.Errorf("TotalWaterTreatmentML = %v, expected %v", d.TotalWaterTreatmentML, tt.expected)
			}
		})
	}
}

func TestDeriveRiskMetrics(t *testing.T) {
	in := config.DefaultInputState()
	in.RiskFactors.Contamination = 40
	in.RiskFactors.Geotechnical = 35
	in.RiskFactors.WaterQuality = 45
	in.RiskFactors.Regulatory = 30
	in.RiskFactors.Logistics = 25

	d := Derive(&in)

	if !almostEqual(d.RiskScore, 36.5) {
		t.Errorf("RiskScore = %v, expected 36.5", d.RiskScore)
	}
	// Score 36.5 sits in the 20-40 segment: 5 + (16.5/20)*5 = 9.125.
	if !almostEqual(d.RiskUpliftPercent, 9.125) {
		t.Errorf("RiskUpliftPercent = %v, expected 9.125", d.RiskUpliftPercent)
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	in := config.DefaultInputState()
	first := Derive(&in)
	second := Derive(&in)
	if first != second {
		t.Errorf("Derive() not deterministic: %+v vs %+v", first, second)
	}
}
