package costing

import (
	"fmt"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/pkg/closure"
	"github.com/minerehab/closure-forecast/pkg/mathutil"
)

// BuildIndirects produces the five dependent indirect cost items as a
// waterfall over the direct works total. Each successive percentage applies
// to the running subtotal including the items before it, mirroring how
// commercial markups stack. RiskUplift is the exception: it shares the
// Contingency base rather than compounding on it.
func BuildIndirects(rates config.IndirectRates, riskUpliftPercent, directWorksTotal float64) []LineItem {
	items := make([]LineItem, 0, 5)

	running := directWorksTotal

	siteEstablishment := mathutil.Round(mathutil.ApplyPercentage(running, rates.SiteEstablishmentPercent))
	items = append(items, newLumpSum(closure.CategorySiteEstablishment,
		fmt.Sprintf("Site establishment and temporary facilities (%.1f%% of direct works)", rates.SiteEstablishmentPercent),
		siteEstablishment, closure.PhaseDecommissioningDemolition))
	running += siteEstablishment

	contractorMargin := mathutil.Round(mathutil.ApplyPercentage(running, rates.ContractorMarginPercent))
	items = append(items, newLumpSum(closure.CategoryContractorMargin,
		fmt.Sprintf("Contractor margin (%.1f%% of subtotal)", rates.ContractorMarginPercent),
		contractorMargin, closure.PhaseEarthworksLandform))
	running += contractorMargin

	// Contingency and risk uplift are both assessed on the subtotal after
	// margin; neither compounds on the other.
	contingencyBase := running
	contingency := mathutil.Round(mathutil.ApplyPercentage(contingencyBase, rates.ContingencyPercent))
	items = append(items, newLumpSum(closure.CategoryContingency,
		fmt.Sprintf("Estimating contingency (%.1f%% of subtotal)", rates.ContingencyPercent),
		contingency, closure.PhaseEarthworksLandform))

	riskUplift := mathutil.Round(mathutil.ApplyPercentage(contingencyBase, riskUpliftPercent))
	items = append(items, newLumpSum(closure.CategoryRiskUplift,
		fmt.Sprintf("Risk-based contingency uplift (%.1f%% of subtotal)", riskUpliftPercent),
		riskUplift, closure.PhaseTailingsWRDRehabilitation))
	running += contingency + riskUplift

	ownersCosts := mathutil.Round(mathutil.ApplyPercentage(running, rates.OwnersCostsPercent))
	items = append(items, newLumpSum(closure.CategoryOwnersCosts,
		fmt.Sprintf("Owner's project and approvals costs (%.1f%% of subtotal)", rates.OwnersCostsPercent),
		ownersCosts, closure.PhasePlanningApprovals))

	return items
}
