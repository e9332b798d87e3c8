package closure

import "fmt"

// Category identifies one cost category in a closure estimate.
type Category int

// Direct works categories, in presentation order.
const (
	CategoryMobilisation Category = iota
	CategoryDemolition
	CategoryEarthworks
	CategoryTopsoilPlacement
	CategoryTSFClosure
	CategoryWRDRehabilitation
	CategoryWaterTreatment
	CategoryRevegetation
	CategoryErosionControls
	CategoryRoadRehabilitation
	CategoryHazardousMaterials
	CategoryCommunityHeritage
	CategoryMonitoring
)

// Indirect cost categories, in waterfall order.
const (
	CategorySiteEstablishment Category = iota + 13
	CategoryContractorMargin
	CategoryContingency
	CategoryRiskUplift
	CategoryOwnersCosts
)

var categoryNames = map[Category]string{
	CategoryMobilisation:       "Mobilisation",
	CategoryDemolition:         "Demolition",
	CategoryEarthworks:         "Earthworks",
	CategoryTopsoilPlacement:   "TopsoilPlacement",
	CategoryTSFClosure:         "TSFClosure",
	CategoryWRDRehabilitation:  "WRDRehabilitation",
	CategoryWaterTreatment:     "WaterTreatment",
	CategoryRevegetation:       "Revegetation",
	CategoryErosionControls:    "ErosionControls",
	CategoryRoadRehabilitation: "RoadRehabilitation",
	CategoryHazardousMaterials: "HazardousMaterials",
	CategoryCommunityHeritage:  "CommunityHeritage",
	CategoryMonitoring:         "Monitoring",
	CategorySiteEstablishment:  "SiteEstablishment",
	CategoryContractorMargin:   "ContractorMargin",
	CategoryContingency:        "Contingency",
	CategoryRiskUplift:         "RiskUplift",
	CategoryOwnersCosts:        "OwnersCosts",
}

var categoryLabels = map[Category]string{
	CategoryMobilisation:       "Mobilisation",
	CategoryDemolition:         "Building Demolition",
	CategoryEarthworks:         "Bulk Earthworks",
	CategoryTopsoilPlacement:   "Topsoil Placement",
	CategoryTSFClosure:         "TSF Closure",
	CategoryWRDRehabilitation:  "WRD Rehabilitation",
	CategoryWaterTreatment:     "Water Treatment",
	CategoryRevegetation:       "Revegetation",
	CategoryErosionControls:    "Erosion Controls",
	CategoryRoadRehabilitation: "Road Rehabilitation",
	CategoryHazardousMaterials: "Hazardous Materials",
	CategoryCommunityHeritage:  "Community & Heritage",
	CategoryMonitoring:         "Monitoring & Maintenance",
	CategorySiteEstablishment:  "Site Establishment",
	CategoryContractorMargin:   "Contractor Margin",
	CategoryContingency:        "Contingency",
	CategoryRiskUplift:         "Risk Uplift",
	CategoryOwnersCosts:        "Owner's Costs",
}

// Categories returns all cost categories in presentation order, direct works
// first and then the indirect waterfall.
func Categories() []Category {
	return []Category{
		CategoryMobilisation,
		CategoryDemolition,
		CategoryEarthworks,
		CategoryTopsoilPlacement,
		CategoryTSFClosure,
		CategoryWRDRehabilitation,
		CategoryWaterTreatment,
		CategoryRevegetation,
		CategoryErosionControls,
		CategoryRoadRehabilitation,
		CategoryHazardousMaterials,
		CategoryCommunityHeritage,
		CategoryMonitoring,
		CategorySiteEstablishment,
		CategoryContractorMargin,
		CategoryContingency,
		CategoryRiskUplift,
		CategoryOwnersCosts,
	}
}

// String returns the stable identifier for the category, used in CSV and
// JSON output.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Label returns the human-readable display name for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return c.String()
}

// Indirect reports whether the category is one of the dependent overhead
// categories rather than a direct works category.
func (c Category) Indirect() bool {
	switch c {
	case CategorySiteEstablishment, CategoryContractorMargin, CategoryContingency,
		CategoryRiskUplift, CategoryOwnersCosts:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler so categories serialize by
// name, including as JSON map keys.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	name := string(text)
	for _, candidate := range Categories() {
		if categoryNames[candidate] == name {
			*c = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown cost category %q", name)
}
