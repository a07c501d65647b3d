package search

import (
	"qa-insights-go/internal/scoring"
	"qa-insights-go/internal/types"
)

// Row is one line of the review table.
type Row struct {
	types.ResultItem
	QaScores types.QaScoreBreakdown `json:"qaScores"`
}

// Query drives the search & review view. CallID and AgentName filter
// independently; an empty Sort key falls back to DefaultSort.
type Query struct {
	CallID    string
	AgentName string
	Range     DateRange
	Sort      types.SortConfig
}

// Review filters, sorts and scores items for the review table.
func Review(items []types.ResultItem, q Query) ([]Row, error) {
	out := FilterByText(items, q.CallID, []TextField{FieldCallID})
	out = FilterByText(out, q.AgentName, []TextField{FieldAgentName})
	out = FilterByDateRange(out, q.Range)

	cfg := q.Sort
	if cfg.Key == "" {
		cfg = DefaultSort
	}
	sorted, err := SortBy(out, cfg)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(sorted))
	for i, it := range sorted {
		rows[i] = Row{ResultItem: it, QaScores: scoring.CalculateQaScores(it.Result)}
	}
	return rows, nil
}
