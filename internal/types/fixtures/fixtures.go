// Package fixtures builds AnalysisResult values for tests.
package fixtures

import "qa-insights-go/internal/types"

type Option func(*types.AnalysisResult)

// InternetCable returns a resolved internet/cable record.
func InternetCable(agent, callID string, pf, own, emp int, opts ...Option) types.AnalysisResult {
	r := base(agent, callID)
	r.AgentPerformance.CorePillars = types.InternetCablePillars{
		ProcedureFlow: types.ProcedureFlow{AdherenceScore: pf, Deviations: []string{}},
		Ownership:     types.Ownership{OwnershipScore: own, SuggestedPhrases: []string{}},
		Empathy:       types.Empathy{EmpathyScore: emp, SuggestedPhrases: []string{}},
	}
	return apply(r, opts)
}

// Banking returns a resolved account-specific banking record.
func Banking(agent, callID string, ver, emp int, opts ...Option) types.AnalysisResult {
	r := base(agent, callID)
	r.AgentPerformance.CorePillars = types.BankingPillars{
		AccountVerification: types.AccountVerification{VerificationScore: ver, ClientNameVerified: true},
		Empathy:             types.Empathy{EmpathyScore: emp, SuggestedPhrases: []string{}},
	}
	return apply(r, opts)
}

// GeneralInquiry returns a banking record without account verification.
func GeneralInquiry(agent, callID string, emp int, opts ...Option) types.AnalysisResult {
	r := base(agent, callID)
	r.AgentPerformance.CorePillars = types.GeneralInquiryPillars{
		Empathy: types.Empathy{EmpathyScore: emp, SuggestedPhrases: []string{}},
	}
	return apply(r, opts)
}

// Item wraps a result with a file name and content hash derived from the call id.
func Item(r types.AnalysisResult) types.ResultItem {
	return types.ResultItem{
		FileName:          r.CallDetails.CallID + ".txt",
		Result:            r,
		ContentHash:       "hash-" + r.CallDetails.CallID,
		TranscriptContent: "Agent: hello\nCustomer: hi",
	}
}

// Items wraps every result with Item.
func Items(rs ...types.AnalysisResult) []types.ResultItem {
	out := make([]types.ResultItem, len(rs))
	for i, r := range rs {
		out[i] = Item(r)
	}
	return out
}

func Duration(d string) Option {
	return func(r *types.AnalysisResult) { r.CallDetails.CallDuration = d }
}

func DateTime(dt string) Option {
	return func(r *types.AnalysisResult) { r.CallDetails.CallDateTime = dt }
}

func CallType(ct string) Option {
	return func(r *types.AnalysisResult) { r.CallType = ct }
}

func RootCause(rc string) Option {
	return func(r *types.AnalysisResult) { r.RootCause = rc }
}

func Summary(s string) Option {
	return func(r *types.AnalysisResult) { r.Summary = s }
}

// Unresolved marks the call unresolved with the given reason category.
func Unresolved(reason string) Option {
	return func(r *types.AnalysisResult) {
		r.Resolution.IssueResolved = false
		r.Resolution.ReasonCategory = reason
	}
}

func Sentiment(pos, neg int) Option {
	return func(r *types.AnalysisResult) {
		r.CustomerSentiment.PositiveCount = pos
		r.CustomerSentiment.NegativeCount = neg
	}
}

func Repeat() Option {
	return func(r *types.AnalysisResult) { r.IsRepeatCall = types.BoolPtr(true) }
}

func Complaint(quote string) Option {
	return func(r *types.AnalysisResult) {
		r.AgentBehaviorComplaint = types.AgentBehaviorComplaint{Detected: true, CustomerComplaintQuote: types.StrPtr(quote)}
	}
}

// Praise sets a detected commendation; an empty quote is stored as null.
func Praise(quote string) Option {
	return func(r *types.AnalysisResult) {
		r.AgentCommendation.Detected = true
		if quote != "" {
			r.AgentCommendation.CustomerPraiseQuote = types.StrPtr(quote)
		}
	}
}

func base(agent, callID string) types.AnalysisResult {
	return types.AnalysisResult{
		CallDetails: types.CallDetails{
			AgentName:    agent,
			CallID:       callID,
			CallDuration: "05:00",
			CallDateTime: "2024-03-01T10:00:00Z",
		},
		Summary:    "Customer called about an issue.",
		CallType:   "General",
		RootCause:  "Unknown",
		Resolution: types.Resolution{IssueResolved: true, ReasonCategory: "Resolved", ReasonDetail: "Fixed on call"},
	}
}

func apply(r types.AnalysisResult, opts []Option) types.AnalysisResult {
	for _, o := range opts {
		o(&r)
	}
	return r
}
