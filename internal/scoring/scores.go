package scoring

import "qa-insights-go/internal/types"

const possible = 100

// CalculateQaScores derives the per-call breakdown from the pillar variant.
//
//   - internet/cable: total is the mean of procedure flow, ownership and empathy
//   - banking account call: total is the mean of verification and empathy; the
//     procedure flow slot carries the verification score
//   - general inquiry: total is 0; only empathy carries a score
//
// Scores are read verbatim with no clamping.
func CalculateQaScores(r types.AnalysisResult) types.QaScoreBreakdown {
	pillars := r.AgentPerformance.Pillars()
	emp := float64(pillars.EmpathyPillar().EmpathyScore)

	out := types.QaScoreBreakdown{
		ProcedureFlow: entry(0),
		Ownership:     entry(0),
		Empathy:       entry(emp),
		Total:         entry(0),
	}

	switch p := pillars.(type) {
	case types.InternetCablePillars:
		pf := float64(p.ProcedureFlow.AdherenceScore)
		own := float64(p.Ownership.OwnershipScore)
		out.ProcedureFlow = entry(pf)
		out.Ownership = entry(own)
		out.Total = entry((pf + own + emp) / 3)
	case types.BankingPillars:
		ver := float64(p.AccountVerification.VerificationScore)
		out.ProcedureFlow = entry(ver)
		out.Total = entry((ver + emp) / 2)
	}
	return out
}

// TotalScore is shorthand for CalculateQaScores(r).Total.Score.
func TotalScore(r types.AnalysisResult) float64 {
	return CalculateQaScores(r).Total.Score
}

// VerificationScore is the raw account verification score, 0 when the pillar is absent.
func VerificationScore(r types.AnalysisResult) float64 {
	if av, ok := r.AgentPerformance.AccountVerification(); ok {
		return float64(av.VerificationScore)
	}
	return 0
}

func entry(score float64) types.ScoreEntry {
	return types.ScoreEntry{Score: score, Possible: possible}
}
