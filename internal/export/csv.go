package export

import (
	"strconv"
	"strings"

	"qa-insights-go/internal/scoring"
	"qa-insights-go/internal/types"
)

// CSVHeaders are the columns of the all-calls export, in order.
var CSVHeaders = []string{
	"callId", "agentName", "callDateTime", "callDuration", "callType", "rootCause", "summary",
	"issueResolved", "resolutionReasonCategory", "resolutionReasonDetail", "holdOrSilenceCount",
	"callQualityScorePercent", "procedureFlowScore", "ownershipScore", "empathyScore",
	"procedureFlowDeviations", "ownershipSuggestedPhrases", "empathySuggestedPhrases",
	"customerSentimentPositivePercent", "customerSentimentNegativePercent",
	"opportunities", "recommendations",
}

// callRow returns one record's export cells aligned with CSVHeaders.
// A nil cell is a pillar the call does not have.
func callRow(r types.AnalysisResult) []any {
	var pf, own, deviations, ownPhrases any
	pillars := r.AgentPerformance.Pillars()
	if p, ok := pillars.(types.InternetCablePillars); ok {
		pf = p.ProcedureFlow.AdherenceScore
		own = p.Ownership.OwnershipScore
		deviations = strings.Join(p.ProcedureFlow.Deviations, "; ")
		ownPhrases = strings.Join(p.Ownership.SuggestedPhrases, "; ")
	}
	emp := pillars.EmpathyPillar()

	return []any{
		r.CallDetails.CallID,
		r.CallDetails.AgentName,
		r.CallDetails.CallDateTime,
		r.CallDetails.CallDuration,
		r.CallType,
		r.RootCause,
		r.Summary,
		r.Resolution.IssueResolved,
		r.Resolution.ReasonCategory,
		r.Resolution.ReasonDetail,
		r.HoldOrSilenceCount,
		fixed(scoring.TotalScore(r), 2),
		pf,
		own,
		emp.EmpathyScore,
		deviations,
		ownPhrases,
		strings.Join(emp.SuggestedPhrases, "; "),
		r.CustomerSentiment.PositivePercentage,
		r.CustomerSentiment.NegativePercentage,
		r.OverallFindings.Opportunities,
		r.OverallFindings.Recommendations,
	}
}

// FormatCSV renders every record as one CSV row under CSVHeaders.
// Rows are joined with "\n" and there is no trailing newline.
func FormatCSV(records []types.AnalysisResult) string {
	var b strings.Builder
	writeCSVRow(&b, toCells(CSVHeaders))
	for _, r := range records {
		b.WriteByte('\n')
		writeCSVRow(&b, callRow(r))
	}
	return b.String()
}

func toCells(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func writeCSVRow(b *strings.Builder, cells []any) {
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSVField(cellString(c)))
	}
}

// escapeCSVField quotes a field only when it holds a comma, quote or newline.
func escapeCSVField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func cellString(c any) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// fixed formats x with digits decimals, rounding halves up.
func fixed(x float64, digits int) string {
	return strconv.FormatFloat(roundTo(x, digits), 'f', digits, 64)
}
