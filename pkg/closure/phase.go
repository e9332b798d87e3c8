// Package closure defines the closure lifecycle phases and cost categories
// shared across the estimation engine.
package closure

import "fmt"

// Phase identifies one stage of the mine closure lifecycle.
type Phase int

// Closure phases in canonical execution order.
const (
	PhasePlanningApprovals Phase = iota
	PhaseDecommissioningDemolition
	PhaseEarthworksLandform
	PhaseTailingsWRDRehabilitation
	PhaseWaterManagement
	PhaseRevegetationEcosystem
	PhaseMonitoringMaintenance
	PhaseRelinquishmentPostClosure
)

var phaseNames = map[Phase]string{
	PhasePlanningApprovals:         "PlanningApprovals",
	PhaseDecommissioningDemolition: "DecommissioningDemolition",
	PhaseEarthworksLandform:        "EarthworksLandform",
	PhaseTailingsWRDRehabilitation: "TailingsWRDRehabilitation",
	PhaseWaterManagement:           "WaterManagement",
	PhaseRevegetationEcosystem:     "RevegetationEcosystem",
	PhaseMonitoringMaintenance:     "MonitoringMaintenance",
	PhaseRelinquishmentPostClosure: "RelinquishmentPostClosure",
}

var phaseLabels = map[Phase]string{
	PhasePlanningApprovals:         "Planning & Approvals",
	PhaseDecommissioningDemolition: "Decommissioning & Demolition",
	PhaseEarthworksLandform:        "Earthworks & Landform",
	PhaseTailingsWRDRehabilitation: "Tailings & WRD Rehabilitation",
	PhaseWaterManagement:           "Water Management",
	PhaseRevegetationEcosystem:     "Revegetation & Ecosystem Establishment",
	PhaseMonitoringMaintenance:     "Monitoring & Maintenance",
	PhaseRelinquishmentPostClosure: "Relinquishment & Post-Closure",
}

// Phases returns all closure phases in canonical execution order.
func Phases() []Phase {
	return []Phase{
		PhasePlanningApprovals,
		PhaseDecommissioningDemolition,
		PhaseEarthworksLandform,
		PhaseTailingsWRDRehabilitation,
		PhaseWaterManagement,
		PhaseRevegetationEcosystem,
		PhaseMonitoringMaintenance,
		PhaseRelinquishmentPostClosure,
	}
}

// String returns the stable identifier for the phase, used in CSV and JSON
// output.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Label returns the human-readable display name for the phase.
func (p Phase) Label() string {
	if label, ok := phaseLabels[p]; ok {
		return label
	}
	return p.String()
}

// MarshalText implements encoding.TextMarshaler so phases serialize by name,
// including as JSON map keys.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	name := string(text)
	for _, candidate := range Phases() {
		if phaseNames[candidate] == name {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown closure phase %q", name)
}
