package scoring

import (
	"fmt"
	"sort"

	"irindex/internal/model"
)

// needsImprovementThreshold is the pillar score below which a targeted
// recommendation is generated
const needsImprovementThreshold = 70.0

// strengthThreshold is the pillar score at or above which a pillar counts as
// a strength
const strengthThreshold = 80.0

// pillarRemediations maps each pillar to its remediation guidance, indexed by
// how weak the pillar is: severe (< 40) and moderate (< 70).
var pillarRemediations = map[model.PillarID]struct {
	severe   string
	moderate string
}{
	model.PillarVisibility: {
		severe:   "Deploy comprehensive activity monitoring across endpoints, cloud, and SaaS before investing elsewhere — without visibility, every other control is guesswork.",
		moderate: "Extend monitoring coverage to the data-movement channels you cannot see today, and build behavioral baselines to surface anomalies.",
	},
	model.PillarCoaching: {
		severe:   "Introduce preventive guardrails that block or warn on risky actions, paired with in-the-moment coaching so users learn as they work.",
		moderate: "Strengthen enhanced training and contextual coaching: target the risky behaviors your monitoring already observes.",
	},
	model.PillarEvidence: {
		severe:   "Stand up an evidence-grade investigation capability: centralized activity timelines, tamper-evident storage, and a documented escalation path with HR and legal.",
		moderate: "Shorten investigation time by consolidating activity data into one timeline view and formalizing chain-of-custody handling.",
	},
	model.PillarIdentity: {
		severe:   "Automate joiner/mover/leaver access changes and inventory your SaaS estate — orphaned accounts and shadow IT are the fastest path to unnoticed exfiltration.",
		moderate: "Tighten least privilege with recurring entitlement reviews and continuous discovery of unsanctioned SaaS and risky OAuth grants.",
	},
	model.PillarPhishing: {
		severe:   "Move to phishing-resistant authentication (FIDO2/passkeys) and establish a reporting-and-response loop for suspicious messages.",
		moderate: "Raise phishing resilience with continuous simulations that drive targeted follow-up and faster credential revocation.",
	},
}

// industryGuidance adds one cohort-specific recommendation when the industry
// is known and at least one pillar needs work
var industryGuidance = map[model.Industry]string{
	model.IndustryHealthcare:        "Healthcare organizations should prioritize audit trails around patient-record access; insider snooping is the sector's most common incident type.",
	model.IndustryFinancialServices: "Financial services firms should align these controls with regulatory expectations for trader surveillance and data-handling attestation.",
	model.IndustryTechnology:        "Technology companies should focus controls on source code and product telemetry, the assets most frequently taken by departing engineers.",
	model.IndustryGovernment:        "Government agencies should map these gaps against their mandatory insider threat program requirements.",
	model.IndustryManufacturing:     "Manufacturers should extend monitoring to engineering file shares and CAD repositories, the usual targets of IP theft.",
	model.IndustryRetail:            "Retailers should pay particular attention to seasonal-workforce access lifecycles and POS system privileges.",
	model.IndustryEducation:         "Education institutions should balance open-collaboration culture with monitoring of student-record and research-data access.",
	model.IndustryEnergy:            "Energy companies should treat OT/ICS access paths as first-class insider risk surfaces alongside IT.",
	model.IndustryProfessional:      "Professional services firms should scope controls around client-confidential matter files and engagement data.",
}

// Recommend derives priority-ordered guidance from the pillar breakdown.
// The weakest pillar leads; pillars at or above the needs-improvement
// threshold produce no targeted entry.
func Recommend(breakdown []model.PillarBreakdown, pillarNames map[model.PillarID]string, industry model.Industry) []string {
	weak := make([]model.PillarBreakdown, 0, len(breakdown))
	for _, pb := range breakdown {
		if pb.Score < needsImprovementThreshold {
			weak = append(weak, pb)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].Score < weak[j].Score })

	if len(weak) == 0 {
		return []string{"All five pillars score in the healthy range. Maintain the program with periodic reassessment and tabletop exercises."}
	}

	recs := make([]string, 0, len(weak)+1)
	for _, pb := range weak {
		rem, ok := pillarRemediations[pb.PillarID]
		if !ok {
			recs = append(recs, fmt.Sprintf("Improve the %s pillar; it scores %.0f, below the healthy threshold.", pillarNames[pb.PillarID], pb.Score))
			continue
		}
		if pb.Score < 40 {
			recs = append(recs, rem.severe)
		} else {
			recs = append(recs, rem.moderate)
		}
	}

	if g, ok := industryGuidance[industry]; ok {
		recs = append(recs, g)
	}
	return recs
}
