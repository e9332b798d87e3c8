package schedule

import (
	"testing"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/pkg/closure"
)

func TestBuildDefaultDurations(t *testing.T) {
	// planning 2, decomm 2, earthworks 3, tailings 3, water 10, reveg 2,
	// monitoring 10, relinquishment 2.
	s := Build(config.DefaultInputState().Durations)

	expected := map[closure.Phase]int{
		closure.PhasePlanningApprovals:         0,
		closure.PhaseDecommissioningDemolition: 2,
		closure.PhaseEarthworksLandform:        4,
		closure.PhaseTailingsWRDRehabilitation: 4,
		closure.PhaseWaterManagement:           4,
		closure.PhaseRevegetationEcosystem:     7,
		closure.PhaseMonitoringMaintenance:     9,
		closure.PhaseRelinquishmentPostClosure: 19,
	}
	for phase, start := range expected {
		if got := s.StartYear(phase); got != start {
			t.Errorf("StartYear(%v) = %d, expected %d", phase, got, start)
		}
	}

	// 2 + 2 + max(3,3) + 2 + max(10,10) + 2 = 21.
	if s.TotalDurationYears != 21 {
		t.Errorf("TotalDurationYears = %d, expected 21", s.TotalDurationYears)
	}
}

func TestBuildParallelLandformTracks(t *testing.T) {
	tests := []struct {
		name          string
		earthworks    int
		tailings      int
		revegStart    int
		totalDuration int
	}{
		{"Earthworks longer", 5, 2, 9, 23},
		{"Tailings longer", 2, 6, 10, 24},
		{"Equal tracks", 4, 4, 8, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := config.DefaultInputState().Durations
			d.EarthworksLandform = tt.earthworks
			d.TailingsWRDRehabilitation = tt.tailings

			s := Build(d)

			// Both tracks start together after decommissioning; only the
			// longer one pushes revegetation out.
			if s.StartYear(closure.PhaseEarthworksLandform) != s.StartYear(closure.PhaseTailingsWRDRehabilitation) {
				t.Error("earthworks and tailings tracks should start together")
			}
			if got := s.StartYear(closure.PhaseRevegetationEcosystem); got != tt.revegStart {
				t.Errorf("revegetation start = %d, expected %d", got, tt.revegStart)
			}
			if s.TotalDurationYears != tt.totalDuration {
				t.Errorf("TotalDurationYears = %d, expected %d", s.TotalDurationYears, tt.totalDuration)
			}
		})
	}
}

func TestBuildWaterMonitoringReconciliation(t *testing.T) {
	tests := []struct {
		name                string
		water               int
		monitoring          int
		relinquishmentStart int
	}{
		// reveg ends at year 9 with the default front-end schedule.
		{"Water dominates", 15, 5, 24},
		{"Monitoring dominates", 3, 12, 21},
		{"Both zero", 0, 0, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := config.DefaultInputState().Durations
			d.WaterManagement = tt.water
			d.MonitoringMaintenance = tt.monitoring

			s := Build(d)

			if got := s.StartYear(closure.PhaseRelinquishmentPostClosure); got != tt.relinquishmentStart {
				t.Errorf("relinquishment start = %d, expected %d", got, tt.relinquishmentStart)
			}
			// Water starts with the landform tracks even though it is
			// reconciled at the back end.
			if s.StartYear(closure.PhaseWaterManagement) != s.StartYear(closure.PhaseEarthworksLandform) {
				t.Error("water management should start with the landform tracks")
			}
		})
	}
}

func TestBuildAllZeroDurations(t *testing.T) {
	s := Build(config.PhaseDurations{})
	for _, phase := range closure.Phases() {
		if got := s.StartYear(phase); got != 0 {
			t.Errorf("StartYear(%v) = %d, expected 0 for empty schedule", phase, got)
		}
	}
	if s.TotalDurationYears != 0 {
		t.Errorf("TotalDurationYears = %d, expected 0", s.TotalDurationYears)
	}
}

func TestBuildEveryPhasePresent(t *testing.T) {
	s := Build(config.DefaultInputState().Durations)
	if len(s.StartYears) != len(closure.Phases()) {
		t.Fatalf("schedule has %d phases, expected %d", len(s.StartYears), len(closure.Phases()))
	}
	for _, phase := range closure.Phases() {
		if _, ok := s.StartYears[phase]; !ok {
			t.Errorf("schedule missing phase %v", phase)
		}
	}
}

func TestBuildMonitoringFollowsRevegetation(t *testing.T) {
	d := config.DefaultInputState().Durations
	d.RevegetationEcosystem = 5
	s := Build(d)

	revegEnd := s.StartYear(closure.PhaseRevegetationEcosystem) + d.RevegetationEcosystem
	if got := s.StartYear(closure.PhaseMonitoringMaintenance); got != revegEnd {
		t.Errorf("monitoring start = %d, expected %d (end of revegetation)", got, revegEnd)
	}
}
