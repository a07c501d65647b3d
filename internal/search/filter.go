package search

import (
	"strings"

	"qa-insights-go/internal/aggregator"
	"qa-insights-go/internal/types"
)

// AllDrivers disables the call-driver filter.
const AllDrivers = "all"

// TextField selects one searchable string of a record.
type TextField func(types.ResultItem) string

var (
	FieldFileName  TextField = func(it types.ResultItem) string { return it.FileName }
	FieldAgentName TextField = func(it types.ResultItem) string { return it.Result.CallDetails.AgentName }
	FieldCallID    TextField = func(it types.ResultItem) string { return it.Result.CallDetails.CallID }
	FieldSummary   TextField = func(it types.ResultItem) string { return it.Result.Summary }
	FieldRootCause TextField = func(it types.ResultItem) string { return it.Result.RootCause }
	FieldCallType  TextField = func(it types.ResultItem) string { return it.Result.CallType }
)

// FeedFields are the fields the data feed searches.
var FeedFields = []TextField{FieldFileName, FieldAgentName, FieldCallID, FieldSummary, FieldRootCause, FieldCallType}

// FilterByDateRange keeps records whose callDateTime falls in r. With an
// active range, records with an unparseable timestamp are dropped.
func FilterByDateRange(items []types.ResultItem, r DateRange) []types.ResultItem {
	if !r.Active() {
		return clone(items)
	}
	return filter(items, func(it types.ResultItem) bool {
		t, ok := ParseCallTime(it.Result.CallDetails.CallDateTime)
		return ok && r.Contains(t)
	})
}

// FilterByText keeps records where any field contains query, case-insensitively.
// An empty query matches everything.
func FilterByText(items []types.ResultItem, query string, fields []TextField) []types.ResultItem {
	if query == "" {
		return clone(items)
	}
	q := strings.ToLower(query)
	return filter(items, func(it types.ResultItem) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(it)), q) {
				return true
			}
		}
		return false
	})
}

// FilterByCallType keeps records of one driver; "" and AllDrivers keep everything.
func FilterByCallType(items []types.ResultItem, driver string) []types.ResultItem {
	if driver == "" || driver == AllDrivers {
		return clone(items)
	}
	return ByCallType(items, driver)
}

// ByCallType is the drill-down list for one call driver.
func ByCallType(items []types.ResultItem, driver string) []types.ResultItem {
	return filter(items, func(it types.ResultItem) bool { return it.Result.CallType == driver })
}

// ByReason is the drill-down list for one unresolved-reason histogram bucket.
func ByReason(items []types.ResultItem, reason string) []types.ResultItem {
	return filter(items, func(it types.ResultItem) bool {
		res := it.Result.Resolution
		return !res.IssueResolved && aggregator.NormalizeReason(res.ReasonCategory) == reason
	})
}

// CallTypes lists the distinct drivers, sorted.
func CallTypes(items []types.ResultItem) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, it := range items {
		if !seen[it.Result.CallType] {
			seen[it.Result.CallType] = true
			out = append(out, it.Result.CallType)
		}
	}
	sortStrings(out)
	return out
}

func filter(items []types.ResultItem, keep func(types.ResultItem) bool) []types.ResultItem {
	out := []types.ResultItem{}
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func clone(items []types.ResultItem) []types.ResultItem {
	out := make([]types.ResultItem, len(items))
	copy(out, items)
	return out
}
