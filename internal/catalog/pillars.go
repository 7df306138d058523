package catalog

import "irindex/internal/model"

// Pillars is the registry of the five scoring pillars. Weights sum to 1.0;
// New validates that before the catalog is served.
func Pillars() []model.Pillar {
	return []model.Pillar{
		{
			ID:          model.PillarVisibility,
			Name:        "Visibility",
			Description: "Monitoring coverage and detection of risky insider activity across endpoints, cloud, and data stores.",
			Weight:      0.25,
			Color:       "#2563eb",
		},
		{
			ID:          model.PillarCoaching,
			Name:        "Prevention & Coaching",
			Description: "Proactive controls, policy guardrails, and in-the-moment user coaching.",
			Weight:      0.25,
			Color:       "#16a34a",
		},
		{
			ID:          model.PillarEvidence,
			Name:        "Investigation & Evidence",
			Description: "Case management, forensic timelines, and evidence preservation for insider events.",
			Weight:      0.20,
			Color:       "#9333ea",
		},
		{
			ID:          model.PillarIdentity,
			Name:        "Identity & SaaS",
			Description: "Identity hygiene, access governance, and SaaS/shadow-IT oversight.",
			Weight:      0.15,
			Color:       "#ea580c",
		},
		{
			ID:          model.PillarPhishing,
			Name:        "Phishing Resilience",
			Description: "Resistance to credential theft and social engineering targeting insiders.",
			Weight:      0.15,
			Color:       "#dc2626",
		},
	}
}
