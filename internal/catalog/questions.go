package catalog

import "irindex/internal/model"

// levels builds the standard five-step option ladder used by every question
func levels(l0, l25, l50, l75, l100 string) []model.AnswerOption {
	return []model.AnswerOption{
		{Value: 0, Label: l0},
		{Value: 25, Label: l25},
		{Value: 50, Label: l50},
		{Value: 75, Label: l75},
		{Value: 100, Label: l100},
	}
}

// Questions is the full questionnaire: 20 items, four per pillar. Question
// weights within each pillar sum to 1.0; New validates that.
func Questions() []model.Question {
	return []model.Question{
		// Visibility
		{
			ID:       "visibility-1",
			PillarID: model.PillarVisibility,
			Text:     "How much of your environment (endpoints, cloud workloads, SaaS) is covered by activity monitoring?",
			Weight:   0.30,
			Options: levels(
				"No monitoring in place",
				"A few critical servers only",
				"Most endpoints, little cloud coverage",
				"Endpoints and major cloud services",
				"Comprehensive coverage including SaaS and unmanaged devices",
			),
		},
		{
			ID:       "visibility-2",
			PillarID: model.PillarVisibility,
			Text:     "Can you see data movement events (uploads, USB transfers, personal email) in near real time?",
			Weight:   0.25,
			Options: levels(
				"No visibility into data movement",
				"Periodic manual review of logs",
				"Alerts on a narrow set of channels",
				"Real-time alerts on most exfiltration channels",
				"Real-time visibility across all channels with risk context",
			),
		},
		{
			ID:       "visibility-3",
			PillarID: model.PillarVisibility,
			Text:     "Do you maintain behavioral baselines that surface unusual insider activity?",
			Weight:   0.25,
			Options: levels(
				"No baselining",
				"Static threshold alerts only",
				"Basic per-user baselines",
				"Peer-group baselines with anomaly scoring",
				"Continuously tuned baselines feeding automated triage",
			),
		},
		{
			ID:       "visibility-4",
			PillarID: model.PillarVisibility,
			Text:     "How quickly are departing or offboarded employees flagged for elevated monitoring?",
			Weight:   0.20,
			Options: levels(
				"Never flagged",
				"Flagged after HR notifies security manually",
				"Flagged within a week of notice",
				"Flagged within a day via HR integration",
				"Automatically flagged at notice with retroactive review",
			),
		},

		// Prevention & Coaching
		{
			ID:       "prevention-coaching-1",
			PillarID: model.PillarCoaching,
			Text:     "Do policy guardrails block or warn on risky actions (mass downloads, personal cloud sync) before data leaves?",
			Weight:   0.30,
			Options: levels(
				"No preventive controls",
				"Block lists on a few destinations",
				"Warnings on common risky actions",
				"Blocking with documented exception flow",
				"Adaptive controls tuned by user risk level",
			),
		},
		{
			ID:       "prevention-coaching-2",
			PillarID: model.PillarCoaching,
			Text:     "Do users receive in-the-moment coaching when they trigger a risky-activity policy?",
			Weight:   0.30,
			Options: levels(
				"No user-facing feedback",
				"After-the-fact emails from security",
				"Generic pop-up warnings",
				"Contextual coaching with policy links",
				"Tailored coaching with acknowledgment tracking and trends",
			),
		},
		{
			ID:       "prevention-coaching-3",
			PillarID: model.PillarCoaching,
			Text:     "How current and well-communicated is your acceptable-use / data-handling policy?",
			Weight:   0.20,
			Options: levels(
				"No written policy",
				"Policy exists but is stale and unread",
				"Reviewed annually, acknowledged at hire",
				"Reviewed annually with recurring acknowledgment",
				"Living policy with role-specific guidance and attestation",
			),
		},
		{
			ID:       "prevention-coaching-4",
			PillarID: model.PillarCoaching,
			Text:     "Is security training targeted at the insider-risk behaviors you actually observe?",
			Weight:   0.20,
			Options: levels(
				"No security training",
				"Annual generic compliance training",
				"Annual training with insider-risk module",
				"Role-based training informed by incidents",
				"Continuous micro-training driven by observed behavior",
			),
		},

		// Investigation & Evidence
		{
			ID:       "investigation-evidence-1",
			PillarID: model.PillarEvidence,
			Text:     "When an insider incident is suspected, how quickly can you assemble a timeline of the user's activity?",
			Weight:   0.35,
			Options: levels(
				"We cannot reconstruct activity",
				"Weeks of manual log pulling",
				"Days, across several consoles",
				"Hours, from a central investigation view",
				"Minutes, with an automatically assembled timeline",
			),
		},
		{
			ID:       "investigation-evidence-2",
			PillarID: model.PillarEvidence,
			Text:     "Is investigation evidence collected and stored in a forensically defensible way?",
			Weight:   0.25,
			Options: levels(
				"No evidence preservation",
				"Screenshots and ad hoc exports",
				"Centralized logs without chain of custody",
				"Tamper-evident storage with access audit",
				"Full chain of custody accepted by legal/HR",
			),
		},
		{
			ID:       "investigation-evidence-3",
			PillarID: model.PillarEvidence,
			Text:     "Do you have a documented, practiced insider-incident response process involving HR and legal?",
			Weight:   0.20,
			Options: levels(
				"No process",
				"Informal escalation to management",
				"Documented process, security-only",
				"Documented cross-functional process",
				"Practiced cross-functional process with defined decision rights",
			),
		},
		{
			ID:       "investigation-evidence-4",
			PillarID: model.PillarEvidence,
			Text:     "How long are the logs and artifacts needed for insider investigations retained?",
			Weight:   0.20,
			Options: levels(
				"Not retained",
				"Under 30 days",
				"30-90 days",
				"90 days to a year",
				"A year or more, aligned to legal hold requirements",
			),
		},

		// Identity & SaaS
		{
			ID:       "identity-saas-1",
			PillarID: model.PillarIdentity,
			Text:     "How tightly is access provisioned and deprovisioned as people join, move, and leave?",
			Weight:   0.30,
			Options: levels(
				"Manual, often missed",
				"Manual with a checklist",
				"Automated for core systems only",
				"Automated joiner/mover/leaver for most systems",
				"Fully automated with periodic access recertification",
			),
		},
		{
			ID:       "identity-saas-2",
			PillarID: model.PillarIdentity,
			Text:     "Do you enforce least privilege and review privileged or sensitive entitlements?",
			Weight:   0.25,
			Options: levels(
				"No entitlement reviews",
				"Ad hoc reviews after incidents",
				"Annual review of admin accounts",
				"Quarterly reviews of privileged and sensitive access",
				"Continuous entitlement analytics with just-in-time privilege",
			),
		},
		{
			ID:       "identity-saas-3",
			PillarID: model.PillarIdentity,
			Text:     "How much visibility do you have into unsanctioned SaaS and shadow IT in use?",
			Weight:   0.25,
			Options: levels(
				"None",
				"Anecdotal knowledge only",
				"Periodic discovery scans",
				"Continuous discovery with risk ranking",
				"Continuous discovery with sanctioning workflow and controls",
			),
		},
		{
			ID:       "identity-saas-4",
			PillarID: model.PillarIdentity,
			Text:     "Are OAuth grants and third-party app connections to corporate data reviewed?",
			Weight:   0.20,
			Options: levels(
				"Never reviewed",
				"Reviewed after incidents",
				"Periodic manual review",
				"Automated inventory with risky-grant alerts",
				"Automated review with revocation policy enforcement",
			),
		},

		// Phishing Resilience
		{
			ID:       "phishing-resilience-1",
			PillarID: model.PillarPhishing,
			Text:     "What phishing-resistant authentication do you enforce for your workforce?",
			Weight:   0.40,
			Options: levels(
				"Passwords only",
				"SMS or voice one-time codes",
				"App-based OTP for most users",
				"Push MFA with number matching everywhere",
				"FIDO2/passkeys enforced for all users",
			),
		},
		{
			ID:       "phishing-resilience-2",
			PillarID: model.PillarPhishing,
			Text:     "How do you measure and act on simulated-phishing results?",
			Weight:   0.30,
			Options: levels(
				"No simulations",
				"Annual simulation, results unused",
				"Quarterly simulations with reporting",
				"Monthly simulations driving targeted training",
				"Continuous program with risk-scored follow-up per user",
			),
		},
		{
			ID:       "phishing-resilience-3",
			PillarID: model.PillarPhishing,
			Text:     "Can employees report suspicious messages easily, and are reports triaged?",
			Weight:   0.15,
			Options: levels(
				"No reporting channel",
				"Shared mailbox, rarely reviewed",
				"Report button, manual triage",
				"Report button with SLA-backed triage",
				"One-click reporting with automated triage and feedback",
			),
		},
		{
			ID:       "phishing-resilience-4",
			PillarID: model.PillarPhishing,
			Text:     "How quickly are credentials rotated and sessions revoked after a suspected compromise?",
			Weight:   0.15,
			Options: levels(
				"No defined response",
				"Days, manual process",
				"Same day, manual process",
				"Within hours via runbook",
				"Automated revocation within minutes of detection",
			),
		},
	}
}
