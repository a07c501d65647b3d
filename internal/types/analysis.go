// internal/types/analysis.go
package types

// --------------------------------------------
// Campaign selects the evaluation context
// --------------------------------------------
type Campaign string

const (
	CampaignInternetCable Campaign = "internet_cable"
	CampaignBanking       Campaign = "banking"
)

// Valid reports whether c is a known campaign.
func (c Campaign) Valid() bool {
	return c == CampaignInternetCable || c == CampaignBanking
}

// --------------------------------------------
// AnalysisResult is one structured outcome per analyzed call,
// as produced by the LLM analysis service.
// --------------------------------------------
type AnalysisResult struct {
	CallDetails             CallDetails             `json:"callDetails"`
	Summary                 string                  `json:"summary"`
	CallType                string                  `json:"callType"`
	RootCause               string                  `json:"rootCause"`
	CustomerSentiment       CustomerSentiment       `json:"customerSentiment"`
	HoldOrSilenceCount      int                     `json:"holdOrSilenceCount"`
	AgentPerformance        AgentPerformance        `json:"agentPerformance"`
	Resolution              Resolution              `json:"resolution"`
	UnderstandabilityIssues UnderstandabilityIssues `json:"understandabilityIssues"`
	TroubleshootingFlow     []string                `json:"troubleshootingFlow,omitempty"`
	SecurityVerification    []string                `json:"securityVerificationAsked,omitempty"`
	OverallFindings         OverallFindings         `json:"overallFindings"`
	AgentBehaviorComplaint  AgentBehaviorComplaint  `json:"agentBehaviorComplaint"`
	AgentCommendation       AgentCommendation       `json:"agentCommendation"`
	IsRepeatCall            *bool                   `json:"isRepeatCall,omitempty"`
}

// RepeatCall treats an absent flag as false.
func (r AnalysisResult) RepeatCall() bool {
	return r.IsRepeatCall != nil && *r.IsRepeatCall
}

type CallDetails struct {
	AgentName    string `json:"agentName"`
	CallID       string `json:"callId"`
	CallDuration string `json:"callDuration"` // "MM:SS"
	CallDateTime string `json:"callDateTime"` // ISO 8601
}

// Counts are the basis for aggregate sentiment; percentages are per call only.
type CustomerSentiment struct {
	PositivePercentage float64 `json:"positivePercentage"`
	NegativePercentage float64 `json:"negativePercentage"`
	PositiveCount      int     `json:"positiveCount"`
	NegativeCount      int     `json:"negativeCount"`
}

type Resolution struct {
	IssueResolved      bool    `json:"issueResolved"`
	ResolutionLanguage *string `json:"resolutionLanguage"`
	ReasonCategory     string  `json:"reasonCategory"`
	ReasonDetail       string  `json:"reasonDetail"`
}

type UnderstandabilityIssue struct {
	Detected     bool    `json:"detected"`
	SamplePhrase *string `json:"samplePhrase"`
}

type UnderstandabilityIssues struct {
	NotUnderstandingInfo UnderstandabilityIssue `json:"notUnderstandingInfo"`
	AudioVolume          UnderstandabilityIssue `json:"audioVolume"`
	ClarityOfSpeech      UnderstandabilityIssue `json:"clarityOfSpeech"`
}

type OverallFindings struct {
	Opportunities   string `json:"opportunities"`
	Recommendations string `json:"recommendations"`
}

type AgentBehaviorComplaint struct {
	Detected               bool    `json:"detected"`
	CustomerComplaintQuote *string `json:"customerComplaintQuote"`
}

type AgentCommendation struct {
	Detected            bool    `json:"detected"`
	CustomerPraiseQuote *string `json:"customerPraiseQuote"`
}

// --------------------------------------------
// ResultItem wraps a result with its upload metadata.
// ContentHash is the opaque join key for annotations.
// --------------------------------------------
type ResultItem struct {
	FileName          string         `json:"fileName"`
	Result            AnalysisResult `json:"result"`
	ContentHash       string         `json:"contentHash"`
	TranscriptContent string         `json:"transcriptContent"`
	AudioURL          string         `json:"audioUrl,omitempty"`
}

// Results strips the upload metadata.
func Results(items []ResultItem) []AnalysisResult {
	out := make([]AnalysisResult, len(items))
	for i, it := range items {
		out[i] = it.Result
	}
	return out
}

// StrPtr is a small helper for optional string fields.
func StrPtr(s string) *string { return &s }

// BoolPtr is a small helper for optional bool fields.
func BoolPtr(b bool) *bool { return &b }

// --------------------------------------------
// Reviewer annotations, stored apart from the record
// --------------------------------------------
type TroubleshootingStatus string

const (
	StepChecked TroubleshootingStatus = "checked"
	StepCrossed TroubleshootingStatus = "crossed"
	StepNA      TroubleshootingStatus = "na"
)

// Valid reports whether s is a known step status.
func (s TroubleshootingStatus) Valid() bool {
	return s == StepChecked || s == StepCrossed || s == StepNA
}

// TroubleshootingFeedback maps a step index to its reviewer status.
type TroubleshootingFeedback map[int]TroubleshootingStatus
