package costing

import (
	"fmt"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/pkg/closure"
	"github.com/minerehab/closure-forecast/pkg/quantities"
)

// directContext carries the inputs every direct works entry builds from.
type directContext struct {
	in      *config.InputState
	derived quantities.Derived
}

// directEntry pairs the inclusion condition for one cost item with its
// builder. Entries are evaluated in table order so the item sequence is
// stable across runs.
type directEntry struct {
	include func(directContext) bool
	build   func(directContext) LineItem
}

func always(directContext) bool { return true }

// directEntries is the declarative table of direct works cost items. Each
// item appears only when its driving quantity is positive or its gating flag
// is enabled.
var directEntries = []directEntry{
	{
		include: always,
		build: func(c directContext) LineItem {
			return newLumpSum(closure.CategoryMobilisation,
				"Contractor mobilisation and site establishment plant",
				c.in.UnitRates.MobilisationLumpSum,
				closure.PhaseDecommissioningDemolition)
		},
	},
	{
		include: func(c directContext) bool { return c.in.Quantities.NumberOfBuildings > 0 },
		build: func(c directContext) LineItem {
			return newLineItem(closure.CategoryDemolition,
				fmt.Sprintf("Demolition of %d buildings and structures", c.in.Quantities.NumberOfBuildings),
				float64(c.in.Quantities.NumberOfBuildings), "buildings",
				c.in.UnitRates.DemolitionPerBuilding,
				closure.PhaseDecommissioningDemolition)
		},
	},
	{
		include: func(c directContext) bool { return c.derived.TotalEarthworksVolumeM3 > 0 },
		build: func(c directContext) LineItem {
			return newLineItem(closure.CategoryEarthworks,
				"Bulk earthworks and landform reshaping",
				c.derived.TotalEarthworksVolumeM3, "m3",
				c.in.UnitRates.EarthworksPerM3,
				closure.PhaseEarthworksLandform)
		},
	},
	{
		include: func(c directContext) bool { return c.derived.TopsoilVolumeM3 > 0 },
		build: func(c directContext) LineItem {
			return newLineItem(closure.CategoryTopsoilPlacement,
				"Topsoil recovery and placement over disturbed areas",
				c.derived.TopsoilVolumeM3, "m3",
				c.in.UnitRates.TopsoilPerM3,
				closure.PhaseEarthworksLandform)
		},
	},
	{
		include: func(c directContext) bool { return c.in.Quantities.TSFAreaHa > 0 },
		build: func(c directContext) LineItem {
			rate := c.in.UnitRates.CappingBasePerM2 *
				(c.in.Quantities.TSFCoverThicknessM * c.in.UnitRates.CappingThicknessFactor)
			return newLineItem(closure.CategoryTSFClosure,
				"TSF capping and closure cover system",
				c.derived.TSFAreaM2, "m2", rate,
				closure.PhaseTailingsWRDRehabilitation)
		},
	},
	{
		include: func(c directContext) bool { return c.in.Quantities.WRDFootprintHa > 0 },
		build: func(c directContext) LineItem {
			// WRD cover work is costed at half the intensity of TSF
			// capping, a deliberate simplification of the rate model.
			rate := c.in.UnitRates.CappingBasePerM2 *
				(c.in.Quantities.WRDReshapingDepthM * c.in.UnitRates.CappingThicknessFactor * 0.5)
			return newLineItem(closure.CategoryWRDRehabilitation,
				"WRD reshaping and cover placement",
				c.derived.WRDAreaM2, "m2", rate,
				closure.PhaseTailingsWRDRehabilitation)
		},
	},
	{
		include: waterTreatmentRequired,
		build: func(c directContext) LineItem {
			return newLumpSum(closure.CategoryWaterTreatment,
				"Water treatment plant capital works",
				c.in.UnitRates.WaterTreatmentCapexBase*c.in.UnitRates.WaterTreatmentIntensityFactor,
				closure.PhaseWaterManagement)
		},
	},
	{
		include: waterTreatmentRequired,
		build: func(c directContext) LineItem {
			rate := c.in.UnitRates.WaterTreatmentOpexPerML * c.in.UnitRates.WaterTreatmentIntensityFactor
			return newLineItem(closure.CategoryWaterTreatment,
				fmt.Sprintf("Water treatment operations over %g years", c.in.Quantities.WaterTreatmentDurationYears),
				c.derived.TotalWaterTreatmentML, "ML", rate,
				closure.PhaseWaterManagement)
		},
	},
	{
		include: func(c directContext) bool { return c.in.Quantities.DisturbedAreaHa > 0 },
		build: func(c directContext) LineItem {
			rate := c.in.UnitRates.RevegetationPerHa * c.in.UnitRates.RevegetationComplexityFactor
			return newLineItem(closure.CategoryRevegetation,
				"Revegetation and ecosystem establishment",
				c.in.Quantities.DisturbedAreaHa, "ha", rate,
				closure.PhaseRevegetationEcosystem)
		},
	},
	{
		include: func(c directContext) bool { return c.in.Quantities.DisturbedAreaHa > 0 },
		build: func(c directContext) LineItem {
			return newLineItem(closure.CategoryErosionControls,
				"Erosion and sediment control structures",
				c.in.Quantities.DisturbedAreaHa, "ha",
				c.in.UnitRates.ErosionControlPerHa,
				closure.PhaseEarthworksLandform)
		},
	},
	{
		include: func(c directContext) bool { return c.in.Quantities.RoadLengthKm > 0 },
		build: func(c directContext) LineItem {
			return newLineItem(closure.CategoryRoadRehabilitation,
				"Haul road ripping and rehabilitation",
				c.in.Quantities.RoadLengthKm, "km",
				c.in.UnitRates.RoadRehabilitationPerKm,
				closure.PhaseEarthworksLandform)
		},
	},
	{
		include: func(c directContext) bool {
			return c.in.Quantities.HazardousMaterialsPresent && c.in.Quantities.HazardousMaterialsAreaHa > 0
		},
		build: func(c directContext) LineItem {
			return newLineItem(closure.CategoryHazardousMaterials,
				"Hazardous materials removal and disposal",
				c.in.Quantities.HazardousMaterialsAreaHa, "ha",
				c.in.UnitRates.HazardousMaterialsPerHa,
				closure.PhaseDecommissioningDemolition)
		},
	},
	{
		include: func(c directContext) bool { return c.in.Quantities.CommunityHeritageRequired },
		build: func(c directContext) LineItem {
			return newLumpSum(closure.CategoryCommunityHeritage,
				"Community consultation and heritage management",
				c.in.UnitRates.CommunityHeritageLumpSum,
				closure.PhasePlanningApprovals)
		},
	},
	{
		include: always,
		build: func(c directContext) LineItem {
			years := c.in.Durations.Years(closure.PhaseMonitoringMaintenance)
			rate := c.in.UnitRates.MonitoringAnnual(c.in.Quantities.MonitoringIntensity)
			return newLineItem(closure.CategoryMonitoring,
				fmt.Sprintf("Post-closure monitoring and maintenance (%s intensity)", c.in.Quantities.MonitoringIntensity),
				float64(years), "years", rate,
				closure.PhaseMonitoringMaintenance)
		},
	},
}

func waterTreatmentRequired(c directContext) bool {
	return c.in.Quantities.WaterTreatmentDurationYears > 0 &&
		c.in.Quantities.WaterTreatmentFlowMLPerDay > 0
}

// BuildDirectWorks produces the direct works line items for the given input
// and derived quantities, in stable table order.
func BuildDirectWorks(in *config.InputState, derived quantities.Derived) []LineItem {
	ctx := directContext{in: in, derived: derived}

	items := make([]LineItem, 0, len(directEntries))
	for _, entry := range directEntries {
		if entry.include(ctx) {
			items = append(items, entry.build(ctx))
		}
	}
	return items
}
