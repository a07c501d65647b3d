package actionable

import (
	"qa-insights-go/internal/scoring"
	"qa-insights-go/internal/types"
)

const (
	// A complaint is only surfaced when the measured score corroborates it.
	RedFlagMaxScore = 50.0
	// Praise is only surfaced on genuinely excellent calls.
	CommendationMinScore = 90.0

	ComplaintReason = "Customer Complaint about Agent Behavior"
)

// FindRedFlags returns calls with a detected behavior complaint and a total
// QA score below RedFlagMaxScore, in input order.
func FindRedFlags(records []types.AnalysisResult) []types.RedFlag {
	flags := []types.RedFlag{}
	for _, r := range records {
		if !r.AgentBehaviorComplaint.Detected {
			continue
		}
		if scoring.TotalScore(r) >= RedFlagMaxScore {
			continue
		}
		flags = append(flags, types.RedFlag{
			CallID:    r.CallDetails.CallID,
			AgentName: r.CallDetails.AgentName,
			Reason:    ComplaintReason,
			Quote:     r.AgentBehaviorComplaint.CustomerComplaintQuote,
		})
	}
	return flags
}

// FindCommendations returns calls with detected praise, a non-empty quote and
// a total QA score above CommendationMinScore, in input order.
func FindCommendations(records []types.AnalysisResult) []types.Commendation {
	out := []types.Commendation{}
	for _, r := range records {
		c := r.AgentCommendation
		if !c.Detected || c.CustomerPraiseQuote == nil || *c.CustomerPraiseQuote == "" {
			continue
		}
		if scoring.TotalScore(r) <= CommendationMinScore {
			continue
		}
		out = append(out, types.Commendation{
			CallID:    r.CallDetails.CallID,
			AgentName: r.CallDetails.AgentName,
			Quote:     c.CustomerPraiseQuote,
		})
	}
	return out
}
