package aggregator

import (
	"strings"

	"qa-insights-go/internal/scoring"
	"qa-insights-go/internal/types"
)

const unknownRootCause = "Unknown"

type agentTotals struct {
	totalScore float64
	count      int
}

// GenerateDashboardMetrics folds records into the dashboard summary in a
// single pass. Ranking ties keep first-seen order. Empty input yields a
// zero-valued summary with empty (non-nil) slices.
func GenerateDashboardMetrics(records []types.AnalysisResult) types.DashboardMetrics {
	if len(records) == 0 {
		return emptyMetrics()
	}

	var (
		totalQa, totalPF, totalOwn, totalEmp, totalVer float64
		resolved, positive, negative, totalSecs        int
	)
	callTypes := newCounter()
	rootCauses := newCounter()
	reasons := newCounter()
	agentOrder := []string{}
	agents := map[string]*agentTotals{}

	for _, r := range records {
		scores := scoring.CalculateQaScores(r)
		totalQa += scores.Total.Score
		totalPF += scores.ProcedureFlow.Score
		totalOwn += scores.Ownership.Score
		totalEmp += scores.Empathy.Score
		totalVer += scoring.VerificationScore(r)

		positive += r.CustomerSentiment.PositiveCount
		negative += r.CustomerSentiment.NegativeCount
		callTypes.add(r.CallType)
		totalSecs += scoring.ParseDurationToSeconds(r.CallDetails.CallDuration)

		name := r.CallDetails.AgentName
		at, ok := agents[name]
		if !ok {
			at = &agentTotals{}
			agents[name] = at
			agentOrder = append(agentOrder, name)
		}
		at.totalScore += scores.Total.Score
		at.count++

		if r.Resolution.IssueResolved {
			resolved++
			continue
		}
		cause := r.RootCause
		if cause == "" {
			cause = unknownRootCause
		}
		rootCauses.add(cause)
		if reason := NormalizeReason(r.Resolution.ReasonCategory); reason != "" {
			reasons.add(reason)
		}
	}

	n := float64(len(records))
	summary := types.AnalyticsSummary{
		TotalCalls:            len(records),
		ResolutionRate:        float64(resolved) / n * 100,
		AvgQaScore:            totalQa / n,
		AvgProcedureFlowScore: totalPF / n,
		AvgOwnershipScore:     totalOwn / n,
		AvgEmpathyScore:       totalEmp / n,
		AvgVerificationScore:  totalVer / n,
		AgentPerformance:      rankAgents(agentOrder, agents),
	}

	ranked := callTypes.labelValues()
	if len(ranked) > 0 {
		top := ranked[0]
		summary.TopCallDriver = &top
	}

	// The banking dashboard relabels the unresolved histogram as dissatisfaction.
	summary.TopUnresolvedRootCause = rootCauses.top()
	summary.UnresolvedReasonCounts = reasons.reasonCounts()
	summary.TopDissatisfactionReason = rootCauses.top()
	summary.DissatisfactionReasonCounts = reasons.reasonCounts()

	return types.DashboardMetrics{
		TotalCalls:            summary.TotalCalls,
		AvgDuration:           scoring.FormatDuration(float64(totalSecs) / n),
		AvgQaScore:            summary.AvgQaScore,
		AvgProcedureFlowScore: summary.AvgProcedureFlowScore,
		AvgOwnershipScore:     summary.AvgOwnershipScore,
		AvgEmpathyScore:       summary.AvgEmpathyScore,
		AvgVerificationScore:  summary.AvgVerificationScore,
		Resolved:              types.Count{Count: resolved},
		Unresolved:            types.Count{Count: len(records) - resolved},
		Sentiment:             sentimentSplit(positive, negative),
		CallTypes:             ranked,
		AnalyticsSummary:      summary,
	}
}

// NormalizeReason trims a reason category and strips one trailing period.
func NormalizeReason(reason string) string {
	return strings.TrimSuffix(strings.TrimSpace(reason), ".")
}

func sentimentSplit(positive, negative int) types.SentimentSplit {
	s := types.SentimentSplit{Positive: positive, Negative: negative}
	total := positive + negative
	if total == 0 {
		return s
	}
	// Independently rounded; the pair may not sum to 100.
	s.PositivePercent = int(scoring.RoundHalfUp(float64(positive) / float64(total) * 100))
	s.NegativePercent = int(scoring.RoundHalfUp(float64(negative) / float64(total) * 100))
	return s
}

func rankAgents(order []string, agents map[string]*agentTotals) []types.AgentPerformanceSummary {
	out := make([]types.AgentPerformanceSummary, 0, len(order))
	for _, name := range order {
		at := agents[name]
		out = append(out, types.AgentPerformanceSummary{
			Name:       name,
			AvgQaScore: at.totalScore / float64(at.count),
			CallCount:  at.count,
		})
	}
	sortStableDesc(out, func(a types.AgentPerformanceSummary) float64 { return a.AvgQaScore })
	return out
}

func emptyMetrics() types.DashboardMetrics {
	return types.DashboardMetrics{
		AvgDuration: "00:00",
		CallTypes:   []types.LabelValue{},
		AnalyticsSummary: types.AnalyticsSummary{
			AgentPerformance:            []types.AgentPerformanceSummary{},
			UnresolvedReasonCounts:      []types.ReasonCount{},
			DissatisfactionReasonCounts: []types.ReasonCount{},
		},
	}
}
