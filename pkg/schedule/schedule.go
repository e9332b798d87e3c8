// Package schedule computes phase start offsets and total project duration
// from configured phase durations.
package schedule

import (
	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/pkg/closure"
)

// Schedule holds the relative start year of every closure phase and the
// total project duration in years.
type Schedule struct {
	StartYears         map[closure.Phase]int `json:"startYears"`
	TotalDurationYears int                   `json:"totalDurationYears"`
}

// StartYear returns the relative start year for the given phase.
func (s Schedule) StartYear(phase closure.Phase) int {
	return s.StartYears[phase]
}

// Build derives the phase schedule. Phases are not purely sequential:
// earthworks, TSF/WRD rehabilitation, and water management all begin
// together once decommissioning finishes, and the long-running water and
// monitoring tracks are reconciled with a max() before relinquishment.
func Build(d config.PhaseDurations) Schedule {
	planning := d.PlanningApprovals
	decomm := d.DecommissioningDemolition
	earthworks := d.EarthworksLandform
	tailings := d.TailingsWRDRehabilitation
	water := d.WaterManagement
	reveg := d.RevegetationEcosystem
	monitoring := d.MonitoringMaintenance
	relinquishment := d.RelinquishmentPostClosure

	decommStart := planning
	landformStart := decommStart + decomm
	revegStart := landformStart + maxInt(earthworks, tailings)
	monitoringStart := revegStart + reveg
	relinquishmentStart := revegStart + reveg + maxInt(water, monitoring)

	starts := map[closure.Phase]int{
		closure.PhasePlanningApprovals:         0,
		closure.PhaseDecommissioningDemolition: decommStart,
		closure.PhaseEarthworksLandform:        landformStart,
		closure.PhaseTailingsWRDRehabilitation: landformStart,
		closure.PhaseWaterManagement:           landformStart,
		closure.PhaseRevegetationEcosystem:     revegStart,
		closure.PhaseMonitoringMaintenance:     monitoringStart,
		closure.PhaseRelinquishmentPostClosure: relinquishmentStart,
	}

	return Schedule{
		StartYears:         starts,
		TotalDurationYears: relinquishmentStart + relinquishment,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
