// Package config defines the validated input record for a closure estimate
// and includes functions for loading and saving it.
package config

import (
	"github.com/minerehab/closure-forecast/pkg/closure"
	"github.com/minerehab/closure-forecast/pkg/risk"
)

// MonitoringIntensity selects the annual monitoring programme rate.
type MonitoringIntensity string

// Monitoring intensity levels.
const (
	MonitoringLow    MonitoringIntensity = "low"
	MonitoringMedium MonitoringIntensity = "medium"
	MonitoringHigh   MonitoringIntensity = "high"
)

// DiscountMode selects how the discount rate is interpreted. The mode is
// carried through to output but does not currently alter the discount rate
// applied; see the cashflow package.
type DiscountMode string

// Discount modes.
const (
	DiscountNominal DiscountMode = "nominal"
	DiscountReal    DiscountMode = "real"
)

// InputState is the fully validated input record for one estimate run. The
// engine assumes every field has already passed pkg/validation and performs
// no bounds checks of its own.
type InputState struct {
	Quantities    Quantities     `yaml:"quantities"`
	UnitRates     UnitRates      `yaml:"unitRates"`
	IndirectRates IndirectRates  `yaml:"indirectRates"`
	RiskFactors   risk.Factors   `yaml:"riskFactors"`
	Financial     Financial      `yaml:"financial"`
	Durations     PhaseDurations `yaml:"durations"`
}

// Quantities holds the physical site dimensions, counts, and the flags that
// gate optional cost items.
type Quantities struct {
	DisturbedAreaHa    float64 `yaml:"disturbedAreaHa"`
	TopsoilThicknessM  float64 `yaml:"topsoilThicknessM"`
	TSFAreaHa          float64 `yaml:"tsfAreaHa"`
	TSFCoverThicknessM float64 `yaml:"tsfCoverThicknessM"`
	WRDFootprintHa     float64 `yaml:"wrdFootprintHa"`
	WRDReshapingDepthM float64 `yaml:"wrdReshapingDepthM"`

	// TotalEarthworksVolumeOverrideM3 bypasses the parametric earthworks
	// volume model with site-specific survey data when non-nil. This is an
	// intentional escape hatch, not a default path.
	TotalEarthworksVolumeOverrideM3 *float64 `yaml:"totalEarthworksVolumeOverrideM3,omitempty"`

	NumberOfBuildings int     `yaml:"numberOfBuildings"`
	RoadLengthKm      float64 `yaml:"roadLengthKm"`

	WaterTreatmentFlowMLPerDay  float64 `yaml:"waterTreatmentFlowMLPerDay"`
	WaterTreatmentDurationYears float64 `yaml:"waterTreatmentDurationYears"`

	HazardousMaterialsPresent bool    `yaml:"hazardousMaterialsPresent"`
	HazardousMaterialsAreaHa  float64 `yaml:"hazardousMaterialsAreaHa"`
	CommunityHeritageRequired bool    `yaml:"communityHeritageRequired"`

	MonitoringIntensity MonitoringIntensity `yaml:"monitoringIntensity"`
}

// UnitRates holds cost-per-unit constants and dimensionless adjustment
// factors. All monetary rates are in dollars.
type UnitRates struct {
	MobilisationLumpSum    float64 `yaml:"mobilisationLumpSum"`
	DemolitionPerBuilding  float64 `yaml:"demolitionPerBuilding"`
	EarthworksPerM3        float64 `yaml:"earthworksPerM3"`
	TopsoilPerM3           float64 `yaml:"topsoilPerM3"`
	BulkingFactor          float64 `yaml:"bulkingFactor"`
	CappingBasePerM2       float64 `yaml:"cappingBasePerM2"`
	CappingThicknessFactor float64 `yaml:"cappingThicknessFactor"`

	WaterTreatmentCapexBase       float64 `yaml:"waterTreatmentCapexBase"`
	WaterTreatmentOpexPerML       float64 `yaml:"waterTreatmentOpexPerML"`
	WaterTreatmentIntensityFactor float64 `yaml:"waterTreatmentIntensityFactor"`

	RevegetationPerHa            float64 `yaml:"revegetationPerHa"`
	RevegetationComplexityFactor float64 `yaml:"revegetationComplexityFactor"`
	ErosionControlPerHa          float64 `yaml:"erosionControlPerHa"`
	RoadRehabilitationPerKm      float64 `yaml:"roadRehabilitationPerKm"`
	HazardousMaterialsPerHa      float64 `yaml:"hazardousMaterialsPerHa"`
	CommunityHeritageLumpSum     float64 `yaml:"communityHeritageLumpSum"`

	MonitoringAnnualLow    float64 `yaml:"monitoringAnnualLow"`
	MonitoringAnnualMedium float64 `yaml:"monitoringAnnualMedium"`
	MonitoringAnnualHigh   float64 `yaml:"monitoringAnnualHigh"`
}

// MonitoringAnnual returns the annual monitoring rate for the given
// intensity level.
func (r UnitRates) MonitoringAnnual(intensity MonitoringIntensity) float64 {
	switch intensity {
	case MonitoringLow:
		return r.MonitoringAnnualLow
	case MonitoringHigh:
		return r.MonitoringAnnualHigh
	default:
		return r.MonitoringAnnualMedium
	}
}

// IndirectRates holds the percentage rates for the indirect cost waterfall.
type IndirectRates struct {
	SiteEstablishmentPercent float64 `yaml:"siteEstablishmentPercent"`
	ContractorMarginPercent  float64 `yaml:"contractorMarginPercent"`
	ContingencyPercent       float64 `yaml:"contingencyPercent"`
	OwnersCostsPercent       float64 `yaml:"ownersCostsPercent"`
}

// Financial holds the time-value parameters for the cashflow distribution.
type Financial struct {
	ClosureStartYear      int          `yaml:"closureStartYear"`
	EscalationRatePercent float64      `yaml:"escalationRatePercent"`
	DiscountRatePercent   float64      `yaml:"discountRatePercent"`
	DiscountMode          DiscountMode `yaml:"discountMode"`
}

// PhaseDurations holds the configured duration in whole years for each
// closure phase.
type PhaseDurations struct {
	PlanningApprovals         int `yaml:"planningApprovals"`
	DecommissioningDemolition int `yaml:"decommissioningDemolition"`
	EarthworksLandform        int `yaml:"earthworksLandform"`
	TailingsWRDRehabilitation int `yaml:"tailingsWRDRehabilitation"`
	WaterManagement           int `yaml:"waterManagement"`
	RevegetationEcosystem     int `yaml:"revegetationEcosystem"`
	MonitoringMaintenance     int `yaml:"monitoringMaintenance"`
	RelinquishmentPostClosure int `yaml:"relinquishmentPostClosure"`
}

// Years returns the configured duration for the given phase.
func (d PhaseDurations) Years(phase closure.Phase) int {
	switch phase {
	case closure.PhasePlanningApprovals:
		return d.PlanningApprovals
	case closure.PhaseDecommissioningDemolition:
		return d.DecommissioningDemolition
	case closure.PhaseEarthworksLandform:
		return d.EarthworksLandform
	case closure.PhaseTailingsWRDRehabilitation:
		return d.TailingsWRDRehabilitation
	case closure.PhaseWaterManagement:
		return d.WaterManagement
	case closure.PhaseRevegetationEcosystem:
		return d.RevegetationEcosystem
	case closure.PhaseMonitoringMaintenance:
		return d.MonitoringMaintenance
	case closure.PhaseRelinquishmentPostClosure:
		return d.RelinquishmentPostClosure
	}
	return 0
}

// Clone returns a deep copy of the input state. Sensitivity analysis
// perturbs clones so branches never alias the base input.
func (in *InputState) Clone() *InputState {
	clone := *in
	if in.Quantities.TotalEarthworksVolumeOverrideM3 != nil {
		override := *in.Quantities.TotalEarthworksVolumeOverrideM3
		clone.Quantities.TotalEarthworksVolumeOverrideM3 = &override
	}
	return &clone
}

// DefaultInputState returns the reference scenario used when an input file
// omits values: a 500 ha disturbed site with a 100 ha TSF, 200 ha WRD,
// 15 buildings, 3% escalation, and 7% discounting.
func DefaultInputState() InputState {
	return InputState{
		Quantities: Quantities{
			DisturbedAreaHa:             500,
			TopsoilThicknessM:           0.15,
			TSFAreaHa:                   100,
			TSFCoverThicknessM:          0.5,
			WRDFootprintHa:              200,
			WRDReshapingDepthM:          0.3,
			NumberOfBuildings:           15,
			RoadLengthKm:                12,
			WaterTreatmentFlowMLPerDay:  2,
			WaterTreatmentDurationYears: 10,
			HazardousMaterialsPresent:   true,
			HazardousMaterialsAreaHa:    5,
			CommunityHeritageRequired:   true,
			MonitoringIntensity:         MonitoringMedium,
		},
		UnitRates: UnitRates{
			MobilisationLumpSum:           500000,
			DemolitionPerBuilding:         25000,
			EarthworksPerM3:               8.5,
			TopsoilPerM3:                  12,
			BulkingFactor:                 1.15,
			CappingBasePerM2:              15,
			CappingThicknessFactor:        2.0,
			WaterTreatmentCapexBase:       2000000,
			WaterTreatmentOpexPerML:       150,
			WaterTreatmentIntensityFactor: 1.0,
			RevegetationPerHa:             6000,
			RevegetationComplexityFactor:  1.2,
			ErosionControlPerHa:           800,
			RoadRehabilitationPerKm:       40000,
			HazardousMaterialsPerHa:       50000,
			CommunityHeritageLumpSum:      250000,
			MonitoringAnnualLow:           150000,
			MonitoringAnnualMedium:        300000,
			MonitoringAnnualHigh:          500000,
		},
		IndirectRates: IndirectRates{
			SiteEstablishmentPercent: 5,
			ContractorMarginPercent:  10,
			ContingencyPercent:       15,
			OwnersCostsPercent:       5,
		},
		RiskFactors: risk.Factors{
			Contamination: 40,
			Geotechnical:  35,
			WaterQuality:  45,
			Regulatory:    30,
			Logistics:     25,
		},
		Financial: Financial{
			ClosureStartYear:      2030,
			EscalationRatePercent: 3,
			DiscountRatePercent:   7,
			DiscountMode:          DiscountNominal,
		},
		Durations: PhaseDurations{
			PlanningApprovals:         2,
			DecommissioningDemolition: 2,
			EarthworksLandform:        3,
			TailingsWRDRehabilitation: 3,
			WaterManagement:           10,
			RevegetationEcosystem:     2,
			MonitoringMaintenance:     10,
			RelinquishmentPostClosure: 2,
		},
	}
}
