package extractor

import (
	"fmt"
	"strconv"
	"strings"

	"qa-insights-go/internal/scoring"
	"qa-insights-go/internal/types"
)

const highlightsBase = `You are a senior call center operations analyst. Based on the following summary of call data, generate 3-4 concise, actionable key highlights for a manager.`

const bankingHighlightFocus = `Your entire focus must be on **Customer Dissatisfaction**.

1.  **Analyze Dissatisfaction Drivers:** Deeply analyze the "Top Reasons for Dissatisfaction". How do these reasons correlate with low Verification Scores or Empathy Scores?
2.  **Assess Impact:** Explain how these issues are impacting the customer experience and trust in the bank.
3.  **Provide Actionable Recommendations:** For each highlight, provide a specific, actionable recommendation focused on improving security procedures (Verification Score) and showing genuine empathy to reduce dissatisfaction.`

const cableHighlightFocus = `Your entire focus must be on **Issue Resolution** and the **Top Reasons for Unresolved Calls**.

1.  **Analyze the Drivers:** Deeply analyze the provided "Top Reasons for Unresolved Calls". What is driving these unresolved calls? Is there a correlation with the Top Call Driver or low scores in the core pillars?
2.  **Assess Impact:** Explain how these top unresolved reasons are impacting the overall Issue Resolution rate and the customer experience.
3.  **Provide Actionable Recommendations:** For each key highlight, provide a specific, forward-looking recommendation on how to improve the resolution rate.`

const highlightsFormat = `Return ONLY a JSON object of the form {"highlights": [{"emoji": "", "text": ""}]} with 3 or 4 entries.
Each text must be easy to understand and include a brief, actionable recommendation.`

// BuildHighlightsPrompt builds the dashboard highlights prompt. Banking
// focuses on dissatisfaction and verification; internet/cable on unresolved calls.
func BuildHighlightsPrompt(campaign types.Campaign, s types.AnalyticsSummary) string {
	var focus string
	var lines []string
	if campaign == types.CampaignBanking {
		focus = bankingHighlightFocus
		lines = []string{
			fmt.Sprintf("- Total Calls Analyzed: %d", s.TotalCalls),
			"- Average Verification Score: " + oneDecimal(s.AvgVerificationScore) + "%",
			"- Average Empathy Score: " + oneDecimal(s.AvgEmpathyScore) + "%",
			"- Top Call Driver: " + topDriver(s),
			"- Top Reasons for Dissatisfaction: " + reasonList(s.DissatisfactionReasonCounts),
		}
	} else {
		focus = cableHighlightFocus
		lines = []string{
			fmt.Sprintf("- Total Calls Analyzed: %d", s.TotalCalls),
			"- Overall Resolution Rate: " + oneDecimal(s.ResolutionRate) + "%",
			"- Average Procedure Flow Score: " + oneDecimal(s.AvgProcedureFlowScore) + "%",
			"- Average Ownership Score: " + oneDecimal(s.AvgOwnershipScore) + "%",
			"- Average Empathy Score: " + oneDecimal(s.AvgEmpathyScore) + "%",
			"- Top Call Driver: " + topDriver(s),
			"- Top Reasons for Unresolved Calls: " + reasonList(s.UnresolvedReasonCounts),
		}
	}
	return highlightsBase + "\n" + focus + "\n\nAnalytics Summary:\n" + strings.Join(lines, "\n") + "\n\n" + highlightsFormat
}

func topDriver(s types.AnalyticsSummary) string {
	if s.TopCallDriver == nil || s.TotalCalls == 0 {
		return "N/A"
	}
	share := float64(s.TopCallDriver.Value) / float64(s.TotalCalls) * 100
	return fmt.Sprintf("%s (%s%% of calls)", s.TopCallDriver.Label, oneDecimal(share))
}

func reasonList(counts []types.ReasonCount) string {
	if len(counts) == 0 {
		return "N/A"
	}
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s (%d calls)", c.Reason, c.Count)
	}
	return strings.Join(parts, ", ")
}

func oneDecimal(x float64) string {
	return strconv.FormatFloat(scoring.RoundHalfUp(x*10)/10, 'f', 1, 64)
}

// MockHighlights is the deterministic mock-mode answer, derived from the summary.
func MockHighlights(campaign types.Campaign, s types.AnalyticsSummary) []types.Highlight {
	driver := types.Highlight{Emoji: "🎯", Text: "Top call driver: " + topDriver(s) + ". Build a quick-reference guide for it."}
	if campaign == types.CampaignBanking {
		return []types.Highlight{
			{Emoji: "🔐", Text: "Average verification score is " + oneDecimal(s.AvgVerificationScore) + "%. Coach agents to complete every static and non-static check."},
			{Emoji: "📉", Text: "Top reasons for dissatisfaction: " + reasonList(s.DissatisfactionReasonCounts) + ". Review these calls in the next team huddle."},
			{Emoji: "💡", Text: "Average empathy score is " + oneDecimal(s.AvgEmpathyScore) + "%. Share acknowledgement phrases before moving to verification."},
			driver,
		}
	}
	return []types.Highlight{
		{Emoji: "📈", Text: "Resolution rate is " + oneDecimal(s.ResolutionRate) + "% across " + strconv.Itoa(s.TotalCalls) + " calls. Target the top unresolved reason first."},
		{Emoji: "📉", Text: "Top reasons for unresolved calls: " + reasonList(s.UnresolvedReasonCounts) + ". Add an escalation checklist for them."},
		{Emoji: "💡", Text: "Average ownership score is " + oneDecimal(s.AvgOwnershipScore) + "%. Encourage agents to commit to next steps out loud."},
		driver,
	}
}
