package extractor

import "qa-insights-go/internal/types"

// MockAnalysis is the deterministic result returned in mock mode.
func MockAnalysis(campaign types.Campaign) types.AnalysisResult {
	r := types.AnalysisResult{
		CallDetails: types.CallDetails{
			AgentName:    "Mock Agent",
			CallID:       "MOCK-0001",
			CallDuration: "06:30",
			CallDateTime: "2025-01-15T14:30:00Z",
		},
		CustomerSentiment: types.CustomerSentiment{
			PositivePercentage: 60,
			NegativePercentage: 40,
			PositiveCount:      6,
			NegativeCount:      4,
		},
		HoldOrSilenceCount: 1,
		Resolution: types.Resolution{
			IssueResolved:      true,
			ResolutionLanguage: types.StrPtr("Is there anything else I can help you with today?"),
			ReasonCategory:     "Resolved on first call",
			ReasonDetail:       "Agent completed the required steps and confirmed the outcome with the customer.",
		},
		OverallFindings: types.OverallFindings{
			Opportunities:   "Acknowledge the customer's frustration earlier in the call.",
			Recommendations: "Summarize next steps before closing.",
		},
		AgentCommendation: types.AgentCommendation{
			Detected:            true,
			CustomerPraiseQuote: types.StrPtr("Thank you, you were really helpful."),
		},
	}

	empathy := types.Empathy{
		EmpathyScore:       85,
		SuggestedPhrases:   []string{"I understand how frustrating this must be."},
		SentimentAlignment: "Agent matched the customer's tone.",
	}

	if campaign == types.CampaignBanking {
		r.Summary = "Customer asked about a recent card transaction."
		r.CallType = "Transaction Inquiry"
		r.RootCause = "Unrecognized merchant name"
		r.SecurityVerification = []string{"Date of Birth", "Mailing Address", "Last Statement", "Recent Deposit or Payment"}
		r.AgentPerformance.CorePillars = types.BankingPillars{
			AccountVerification: types.AccountVerification{
				ClientNameVerified:      true,
				VerificationScore:       100,
				StaticQuestionsAsked:    2,
				NonStaticQuestionsAsked: 2,
				PassedVerification:      true,
				VerificationDetails:     "Name verified with two static and two non-static questions.",
			},
			Empathy: empathy,
		}
		return r
	}

	r.Summary = "Customer reported intermittent internet drops; agent restarted the modem remotely."
	r.CallType = "Internet Connectivity"
	r.RootCause = "Modem firmware fault"
	r.TroubleshootingFlow = []string{"Verified account", "Checked line status", "Restarted modem remotely", "Confirmed connection"}
	r.IsRepeatCall = types.BoolPtr(false)
	r.AgentPerformance.CorePillars = types.InternetCablePillars{
		ProcedureFlow: types.ProcedureFlow{
			AdherenceScore:  90,
			KeySteps:        []types.ProcedureStep{{StepName: "Restart modem", Completed: true, Details: "Remote restart"}},
			Deviations:      []string{},
			EfficiencyGains: "Check line status before the restart.",
		},
		Ownership: types.Ownership{
			OwnershipScore:      80,
			SuggestedPhrases:    []string{"I will make sure this is fixed before we hang up."},
			MissedOpportunities: "Offer a follow-up call.",
		},
		Empathy: empathy,
	}
	return r
}
