package export

import (
	"fmt"
	"strings"

	"qa-insights-go/internal/scoring"
	"qa-insights-go/internal/search"
	"qa-insights-go/internal/types"
)

// FormatText renders one call as a plain-text report. The pillar section
// follows the campaign; troubleshooting review marks are included when
// feedback is non-nil and the note is appended when present.
func FormatText(fileName string, r types.AnalysisResult, note string, feedback types.TroubleshootingFeedback, campaign types.Campaign) string {
	total := fixed(scoring.TotalScore(r), 1)

	var pillars, rootCause string
	if bp, ok := r.AgentPerformance.Pillars().(types.BankingPillars); ok && campaign == types.CampaignBanking {
		pillars = bankingPillars(bp, total)
		rootCause = securitySection(r)
	} else {
		pillars = cablePillars(r.AgentPerformance.Pillars(), total)
		rootCause = troubleshootingSection(r, feedback)
	}

	outcome := "Not Resolved"
	if r.Resolution.IssueResolved {
		outcome = "Resolved"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis for: %s\n", fileName)
	b.WriteString(strings.Repeat("-", 50) + "\n\n")
	b.WriteString("CALL DETAILS\n")
	fmt.Fprintf(&b, "- Agent Name: %s\n", r.CallDetails.AgentName)
	fmt.Fprintf(&b, "- Call ID: %s\n", r.CallDetails.CallID)
	fmt.Fprintf(&b, "- Date & Time: %s\n", search.FormatCallTime(r.CallDetails.CallDateTime))
	fmt.Fprintf(&b, "- Duration: %s\n\n", r.CallDetails.CallDuration)
	fmt.Fprintf(&b, "SUMMARY\n%s\n\n", r.Summary)
	b.WriteString("KEY INSIGHTS\n")
	fmt.Fprintf(&b, "- Call Type: %s\n", r.CallType)
	fmt.Fprintf(&b, "- Call Outcome: %s (%s)\n\n", outcome, r.Resolution.ReasonDetail)
	b.WriteString(pillars + "\n")
	b.WriteString(rootCause + "\n\n")
	b.WriteString("OVERALL FINDINGS\n")
	fmt.Fprintf(&b, "- Opportunities: %s\n", r.OverallFindings.Opportunities)
	fmt.Fprintf(&b, "- Recommendations: %s", r.OverallFindings.Recommendations)
	if note != "" {
		fmt.Fprintf(&b, "\n\nNOTES & COMMENTS\n%s", note)
	}
	return strings.TrimSpace(b.String())
}

func bankingPillars(p types.BankingPillars, total string) string {
	av := p.AccountVerification
	lines := []string{
		fmt.Sprintf("CORE PILLAR PERFORMANCE (Call Quality Score: %s%%)", total),
		fmt.Sprintf("- Account Verification (%d%%):", av.VerificationScore),
		fmt.Sprintf("  - Client Name Verified: %s", yesNo(av.ClientNameVerified)),
		fmt.Sprintf("  - Details: %s", av.VerificationDetails),
		fmt.Sprintf("  - Static/Non-Static Asked: %d/%d", av.StaticQuestionsAsked, av.NonStaticQuestionsAsked),
	}
	return strings.Join(append(lines, empathyLines(p.Empathy)...), "\n")
}

func cablePillars(p types.CorePillars, total string) string {
	pfScore, pfDev, pfEff := "N/A", "None", "N/A"
	ownScore, ownSug, ownOpp := "N/A", "None", "N/A"
	if ic, ok := p.(types.InternetCablePillars); ok {
		pfScore = fmt.Sprint(ic.ProcedureFlow.AdherenceScore)
		pfDev = joinOr(ic.ProcedureFlow.Deviations, ", ", "None")
		pfEff = orNA(ic.ProcedureFlow.EfficiencyGains)
		ownScore = fmt.Sprint(ic.Ownership.OwnershipScore)
		ownSug = quoted(ic.Ownership.SuggestedPhrases)
		ownOpp = orNA(ic.Ownership.MissedOpportunities)
	}
	lines := []string{
		fmt.Sprintf("CORE PILLAR PERFORMANCE (Call Quality Score: %s%%)", total),
		fmt.Sprintf("- Procedure Flow (%s%%):", pfScore),
		"  - Deviations: " + pfDev,
		"  - Efficiency: " + pfEff,
		fmt.Sprintf("- Ownership (%s%%):", ownScore),
		"  - Suggestions: " + ownSug,
		"  - Opportunities: " + ownOpp,
	}
	return strings.Join(append(lines, empathyLines(p.EmpathyPillar())...), "\n")
}

func empathyLines(e types.Empathy) []string {
	return []string{
		fmt.Sprintf("- Empathy (%d%%):", e.EmpathyScore),
		"  - Suggestions: " + quoted(e.SuggestedPhrases),
		"  - Sentiment Alignment: " + e.SentimentAlignment,
	}
}

func securitySection(r types.AnalysisResult) string {
	return strings.Join([]string{
		"ROOT CAUSE & SECURITY VERIFICATION",
		"- Root Cause: " + r.RootCause,
		"- Security Verification Asked:",
		numbered(r.SecurityVerification, func(int) string { return "" }),
	}, "\n")
}

func troubleshootingSection(r types.AnalysisResult, feedback types.TroubleshootingFeedback) string {
	lines := []string{"ROOT CAUSE & TROUBLESHOOTING"}
	steps := r.TroubleshootingFlow
	if len(steps) > 0 && feedback != nil {
		a := scoring.TroubleshootingAdherence(len(steps), feedback)
		if a.Scored {
			lines = append(lines, fmt.Sprintf("Score: %d/%d (%s%%)", a.Followed, a.Applicable, fixed(a.Percent, 0)))
		} else {
			lines = append(lines, "Score: N/A")
		}
	}
	mark := func(int) string { return "" }
	if feedback != nil {
		mark = func(i int) string { return " " + statusText(feedback[i]) }
	}
	lines = append(lines,
		"- Root Cause: "+r.RootCause,
		"- Troubleshooting Steps:",
		numbered(steps, mark),
	)
	return strings.Join(lines, "\n")
}

func statusText(s types.TroubleshootingStatus) string {
	switch s {
	case types.StepChecked:
		return "[Necessary]"
	case types.StepCrossed:
		return "[Unnecessary]"
	case types.StepNA:
		return "[N/A]"
	default:
		return "[Not Reviewed]"
	}
}

func numbered(steps []string, suffix func(int) string) string {
	if len(steps) == 0 {
		return "  None"
	}
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = fmt.Sprintf("  %d. %s%s", i+1, s, suffix(i))
	}
	return strings.Join(out, "\n")
}

func quoted(phrases []string) string {
	if len(phrases) == 0 {
		return "None"
	}
	return `"` + strings.Join(phrases, `", "`) + `"`
}

func joinOr(ss []string, sep, empty string) string {
	if len(ss) == 0 {
		return empty
	}
	return strings.Join(ss, sep)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
