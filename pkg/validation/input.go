package validation

import (
	"fmt"
	"math"

	"github.com/minerehab/closure-forecast/internal/config"
)

// CheckInput validates an input state before it is handed to the engine.
// Hard violations (non-finite values, negative quantities, out-of-range
// enums and percentages) come back as an error; legal but questionable
// values come back as warnings. The engine itself never re-validates.
func CheckInput(in *config.InputState) ([]string, error) {
	if in == nil {
		return nil, fmt.Errorf("input state cannot be nil")
	}

	if err := checkBounds(in); err != nil {
		return nil, err
	}

	return collectWarnings(in), nil
}

// nonNegativeFields lists every numeric input that must be finite and >= 0.
func nonNegativeFields(in *config.InputState) []struct {
	name  string
	value float64
} {
	q := in.Quantities
	r := in.UnitRates
	return []struct {
		name  string
		value float64
	}{
		{"quantities.disturbedAreaHa", q.DisturbedAreaHa},
		{"quantities.topsoilThicknessM", q.TopsoilThicknessM},
		{"quantities.tsfAreaHa", q.TSFAreaHa},
		{"quantities.tsfCoverThicknessM", q.TSFCoverThicknessM},
		{"quantities.wrdFootprintHa", q.WRDFootprintHa},
		{"quantities.wrdReshapingDepthM", q.WRDReshapingDepthM},
		{"quantities.roadLengthKm", q.RoadLengthKm},
		{"quantities.waterTreatmentFlowMLPerDay", q.WaterTreatmentFlowMLPerDay},
		{"quantities.waterTreatmentDurationYears", q.WaterTreatmentDurationYears},
		{"quantities.hazardousMaterialsAreaHa", q.HazardousMaterialsAreaHa},
		{"unitRates.mobilisationLumpSum", r.MobilisationLumpSum},
		{"unitRates.demolitionPerBuilding", r.DemolitionPerBuilding},
		{"unitRates.earthworksPerM3", r.EarthworksPerM3},
		{"unitRates.topsoilPerM3", r.TopsoilPerM3},
		{"unitRates.bulkingFactor", r.BulkingFactor},
		{"unitRates.cappingBasePerM2", r.CappingBasePerM2},
		{"unitRates.cappingThicknessFactor", r.CappingThicknessFactor},
		{"unitRates.waterTreatmentCapexBase", r.WaterTreatmentCapexBase},
		{"unitRates.waterTreatmentOpexPerML", r.WaterTreatmentOpexPerML},
		{"unitRates.waterTreatmentIntensityFactor", r.WaterTreatmentIntensityFactor},
		{"unitRates.revegetationPerHa", r.RevegetationPerHa},
		{"unitRates.revegetationComplexityFactor", r.RevegetationComplexityFactor},
		{"unitRates.erosionControlPerHa", r.ErosionControlPerHa},
		{"unitRates.roadRehabilitationPerKm", r.RoadRehabilitationPerKm},
		{"unitRates.hazardousMaterialsPerHa", r.HazardousMaterialsPerHa},
		{"unitRates.communityHeritageLumpSum", r.CommunityHeritageLumpSum},
		{"unitRates.monitoringAnnualLow", r.MonitoringAnnualLow},
		{"unitRates.monitoringAnnualMedium", r.MonitoringAnnualMedium},
		{"unitRates.monitoringAnnualHigh", r.MonitoringAnnualHigh},
	}
}

// percentFields lists every rate that must lie in [0, 100].
func percentFields(in *config.InputState) []struct {
	name  string
	value float64
} {
	ir := in.IndirectRates
	rf := in.RiskFactors
	return []struct {
		name  string
		value float64
	}{
		{"indirectRates.siteEstablishmentPercent", ir.SiteEstablishmentPercent},
		{"indirectRates.contractorMarginPercent", ir.ContractorMarginPercent},
		{"indirectRates.contingencyPercent", ir.ContingencyPercent},
		{"indirectRates.ownersCostsPercent", ir.OwnersCostsPercent},
		{"riskFactors.contamination", rf.Contamination},
		{"riskFactors.geotechnical", rf.Geotechnical},
		{"riskFactors.waterQuality", rf.WaterQuality},
		{"riskFactors.regulatory", rf.Regulatory},
		{"riskFactors.logistics", rf.Logistics},
	}
}

func checkBounds(in *config.InputState) error {
	for _, field := range nonNegativeFields(in) {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return fmt.Errorf("%s must be a finite number", field.name)
		}
		if field.value < 0 {
			return fmt.Errorf("%s cannot be negative, got %v", field.name, field.value)
		}
	}

	for _, field := range percentFields(in) {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return fmt.Errorf("%s must be a finite number", field.name)
		}
		if field.value < 0 || field.value > 100 {
			return fmt.Errorf("%s must be between 0 and 100, got %v", field.name, field.value)
		}
	}

	if in.Quantities.NumberOfBuildings < 0 {
		return fmt.Errorf("quantities.numberOfBuildings cannot be negative, got %d", in.Quantities.NumberOfBuildings)
	}

	if override := in.Quantities.TotalEarthworksVolumeOverrideM3; override != nil {
		if math.IsNaN(*override) || math.IsInf(*override, 0) {
			return fmt.Errorf("quantities.totalEarthworksVolumeOverrideM3 must be a finite number")
		}
		if *override < 0 {
			return fmt.Errorf("quantities.totalEarthworksVolumeOverrideM3 cannot be negative, got %v", *override)
		}
	}

	switch in.Quantities.MonitoringIntensity {
	case config.MonitoringLow, config.MonitoringMedium, config.MonitoringHigh:
	default:
		return fmt.Errorf("quantities.monitoringIntensity must be low, medium, or high, got %q", in.Quantities.MonitoringIntensity)
	}

	switch in.Financial.DiscountMode {
	case config.DiscountNominal, config.DiscountReal:
	default:
		return fmt.Errorf("financial.discountMode must be nominal or real, got %q", in.Financial.DiscountMode)
	}

	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"financial.escalationRatePercent", in.Financial.EscalationRatePercent},
		{"financial.discountRatePercent", in.Financial.DiscountRatePercent},
	} {
		if math.IsNaN(rate.value) || math.IsInf(rate.value, 0) {
			return fmt.Errorf("%s must be a finite number", rate.name)
		}
		if rate.value < 0 || rate.value > 50 {
			return fmt.Errorf("%s must be between 0 and 50, got %v", rate.name, rate.value)
		}
	}

	d := in.Durations
	for _, duration := range []struct {
		name  string
		years int
	}{
		{"durations.planningApprovals", d.PlanningApprovals},
		{"durations.decommissioningDemolition", d.DecommissioningDemolition},
		{"durations.earthworksLandform", d.EarthworksLandform},
		{"durations.tailingsWRDRehabilitation", d.TailingsWRDRehabilitation},
		{"durations.waterManagement", d.WaterManagement},
		{"durations.revegetationEcosystem", d.RevegetationEcosystem},
		{"durations.monitoringMaintenance", d.MonitoringMaintenance},
		{"durations.relinquishmentPostClosure", d.RelinquishmentPostClosure},
	} {
		if duration.years < 0 {
			return fmt.Errorf("%s cannot be negative, got %d", duration.name, duration.years)
		}
		if duration.years > 100 {
			return fmt.Errorf("%s cannot exceed 100 years, got %d", duration.name, duration.years)
		}
	}

	return nil
}

func collectWarnings(in *config.InputState) []string {
	var warnings []string

	d := in.Durations
	totalConfigured := d.PlanningApprovals + d.DecommissioningDemolition + d.EarthworksLandform +
		d.TailingsWRDRehabilitation + d.WaterManagement + d.RevegetationEcosystem +
		d.MonitoringMaintenance + d.RelinquishmentPostClosure
	if totalConfigured == 0 {
		warnings = append(warnings, "All phase durations are zero - every cost will land in the closure start year")
	}

	if in.Financial.EscalationRatePercent > in.Financial.DiscountRatePercent {
		warnings = append(warnings, fmt.Sprintf(
			"Escalation rate (%.1f%%) exceeds discount rate (%.1f%%) - later spend raises NPV",
			in.Financial.EscalationRatePercent, in.Financial.DiscountRatePercent))
	}

	if in.Quantities.TotalEarthworksVolumeOverrideM3 != nil {
		warnings = append(warnings, fmt.Sprintf(
			"Earthworks volume override of %.0f m3 supplied - parametric TSF/WRD volume model is bypassed",
			*in.Quantities.TotalEarthworksVolumeOverrideM3))
	}

	if d.MonitoringMaintenance == 0 {
		warnings = append(warnings, "Monitoring phase duration is zero - the monitoring line item will carry no cost")
	}

	if in.Quantities.WaterTreatmentFlowMLPerDay > 0 && in.Quantities.WaterTreatmentDurationYears == 0 {
		warnings = append(warnings, "Water treatment flow is set but duration is zero - no water treatment costs will be included")
	}
	if in.Quantities.WaterTreatmentDurationYears > 0 && in.Quantities.WaterTreatmentFlowMLPerDay == 0 {
		warnings = append(warnings, "Water treatment duration is set but flow is zero - no water treatment costs will be included")
	}

	if in.Quantities.HazardousMaterialsPresent && in.Quantities.HazardousMaterialsAreaHa == 0 {
		warnings = append(warnings, "Hazardous materials flagged but area is zero - no hazardous materials costs will be included")
	}

	return warnings
}
