package types

// ScoreEntry is one scored slot out of Possible.
type ScoreEntry struct {
	Score    float64 `json:"score"`
	Possible float64 `json:"possible"`
}

// QaScoreBreakdown is derived per call. For banking account calls the
// ProcedureFlow slot carries the verification score.
type QaScoreBreakdown struct {
	ProcedureFlow ScoreEntry `json:"procedureFlow"`
	Ownership     ScoreEntry `json:"ownership"`
	Empathy       ScoreEntry `json:"empathy"`
	Total         ScoreEntry `json:"total"`
}

type LabelValue struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type AgentPerformanceSummary struct {
	Name       string  `json:"name"`
	AvgQaScore float64 `json:"avgQaScore"`
	CallCount  int     `json:"callCount"`
}

type AnalyticsSummary struct {
	TotalCalls                  int                       `json:"totalCalls"`
	ResolutionRate              float64                   `json:"resolutionRate"`
	AvgQaScore                  float64                   `json:"avgQaScore"`
	AvgProcedureFlowScore       float64                   `json:"avgProcedureFlowScore"`
	AvgOwnershipScore           float64                   `json:"avgOwnershipScore"`
	AvgEmpathyScore             float64                   `json:"avgEmpathyScore"`
	AvgVerificationScore        float64                   `json:"avgVerificationScore"`
	TopCallDriver               *LabelValue               `json:"topCallDriver"`
	AgentPerformance            []AgentPerformanceSummary `json:"agentPerformance"`
	TopUnresolvedRootCause      *string                   `json:"topUnresolvedRootCause"`
	UnresolvedReasonCounts      []ReasonCount             `json:"unresolvedReasonCounts"`
	TopDissatisfactionReason    *string                   `json:"topDissatisfactionReason"`
	DissatisfactionReasonCounts []ReasonCount             `json:"dissatisfactionReasonCounts"`
}

type Count struct {
	Count int `json:"count"`
}

type SentimentSplit struct {
	Positive        int `json:"positive"`
	Negative        int `json:"negative"`
	PositivePercent int `json:"positivePercent"`
	NegativePercent int `json:"negativePercent"`
}

// DashboardMetrics is the full fold of a record collection.
type DashboardMetrics struct {
	TotalCalls            int              `json:"totalCalls"`
	AvgDuration           string           `json:"avgDuration"`
	AvgQaScore            float64          `json:"avgQaScore"`
	AvgProcedureFlowScore float64          `json:"avgProcedureFlowScore"`
	AvgOwnershipScore     float64          `json:"avgOwnershipScore"`
	AvgEmpathyScore       float64          `json:"avgEmpathyScore"`
	AvgVerificationScore  float64          `json:"avgVerificationScore"`
	Resolved              Count            `json:"resolved"`
	Unresolved            Count            `json:"unresolved"`
	Sentiment             SentimentSplit   `json:"sentiment"`
	CallTypes             []LabelValue     `json:"callTypes"`
	AnalyticsSummary      AnalyticsSummary `json:"analyticsSummary"`
}

// DriverMetric is one row per distinct callType.
type DriverMetric struct {
	Driver                string  `json:"driver"`
	Count                 int     `json:"count"`
	PercentOfTotal        float64 `json:"percentOfTotal"`
	AvgDuration           float64 `json:"avgDuration"`
	AvgProcedureFlowScore float64 `json:"avgProcedureFlowScore"`
	AvgOwnershipScore     float64 `json:"avgOwnershipScore"`
	AvgEmpathyScore       float64 `json:"avgEmpathyScore"`
	AvgVerificationScore  float64 `json:"avgVerificationScore"`
	ResolutionRate        float64 `json:"resolutionRate"`
	RepeatPercent         float64 `json:"repeatPercent"`
}

type DriverMaxValues struct {
	PercentOfTotal float64 `json:"percentOfTotal"`
	AvgDuration    float64 `json:"avgDuration"`
}

type DriverBreakdown struct {
	Data      []DriverMetric  `json:"data"`
	MaxValues DriverMaxValues `json:"maxValues"`
}

type RedFlag struct {
	CallID    string  `json:"callId"`
	AgentName string  `json:"agentName"`
	Reason    string  `json:"reason"`
	Quote     *string `json:"quote,omitempty"`
}

type Commendation struct {
	CallID    string  `json:"callId"`
	AgentName string  `json:"agentName"`
	Quote     *string `json:"quote"`
}

type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

// ParseSortDirection accepts "asc"/"ascending" and "desc"/"descending"; anything else is def.
func ParseSortDirection(s string, def SortDirection) SortDirection {
	switch s {
	case "asc", "ascending":
		return Ascending
	case "desc", "descending":
		return Descending
	}
	return def
}

// SortConfig is the active sort column of a table view.
type SortConfig struct {
	Key       string        `json:"key"`
	Direction SortDirection `json:"direction"`
}

// Request returns the config after a header click on key: a new key sorts
// ascending, the same ascending key flips to descending.
func (c SortConfig) Request(key string) SortConfig {
	if c.Key == key && c.Direction == Ascending {
		return SortConfig{Key: key, Direction: Descending}
	}
	return SortConfig{Key: key, Direction: Ascending}
}

// Highlight is one generated takeaway for the dashboard.
type Highlight struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}
