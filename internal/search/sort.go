package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"qa-insights-go/internal/scoring"
	"qa-insights-go/internal/types"
)

// ErrUnknownSortKey is returned for a dotted path that is not sortable.
var ErrUnknownSortKey = errors.New("unknown sort key")

// DefaultSort is newest call first.
var DefaultSort = types.SortConfig{Key: KeyCallDateTime, Direction: types.Descending}

const (
	KeyCallDuration = "result.callDetails.callDuration"
	KeyCallDateTime = "result.callDetails.callDateTime"
)

type sortValue struct {
	num   float64
	str   string
	isNum bool
}

func num(f float64) sortValue { return sortValue{num: f, isNum: true} }
func str(s string) sortValue  { return sortValue{str: s} }

func boolNum(b bool) sortValue {
	if b {
		return num(1)
	}
	return num(0)
}

func (a sortValue) compare(b sortValue) int {
	if a.isNum {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	}
	return strings.Compare(a.str, b.str)
}

type accessor func(types.ResultItem) sortValue

// sortKeys maps dotted paths to accessors. Duration and date keys compare
// as seconds and epoch millis; unparseable dates sort as epoch.
var sortKeys = map[string]accessor{
	"fileName":                         func(it types.ResultItem) sortValue { return str(it.FileName) },
	"result.callDetails.agentName":     func(it types.ResultItem) sortValue { return str(it.Result.CallDetails.AgentName) },
	"result.callDetails.callId":        func(it types.ResultItem) sortValue { return str(it.Result.CallDetails.CallID) },
	KeyCallDuration:                    func(it types.ResultItem) sortValue { return num(float64(scoring.ParseDurationToSeconds(it.Result.CallDetails.CallDuration))) },
	KeyCallDateTime:                    func(it types.ResultItem) sortValue { return num(float64(CallTimeMillis(it.Result.CallDetails.CallDateTime))) },
	"result.callType":                  func(it types.ResultItem) sortValue { return str(it.Result.CallType) },
	"result.rootCause":                 func(it types.ResultItem) sortValue { return str(it.Result.RootCause) },
	"result.resolution.issueResolved":  func(it types.ResultItem) sortValue { return boolNum(it.Result.Resolution.IssueResolved) },
	"result.resolution.reasonCategory": func(it types.ResultItem) sortValue { return str(it.Result.Resolution.ReasonCategory) },
	"result.isRepeatCall":              func(it types.ResultItem) sortValue { return boolNum(it.Result.RepeatCall()) },
	"result.holdOrSilenceCount":        func(it types.ResultItem) sortValue { return num(float64(it.Result.HoldOrSilenceCount)) },
	"result.customerSentiment.positivePercentage": func(it types.ResultItem) sortValue {
		return num(it.Result.CustomerSentiment.PositivePercentage)
	},
	"result.agentBehaviorComplaint.detected": func(it types.ResultItem) sortValue {
		return boolNum(it.Result.AgentBehaviorComplaint.Detected)
	},
	"qaScores.total.score":         func(it types.ResultItem) sortValue { return num(scoring.CalculateQaScores(it.Result).Total.Score) },
	"qaScores.procedureFlow.score": func(it types.ResultItem) sortValue { return num(scoring.CalculateQaScores(it.Result).ProcedureFlow.Score) },
	"qaScores.ownership.score":     func(it types.ResultItem) sortValue { return num(scoring.CalculateQaScores(it.Result).Ownership.Score) },
	"qaScores.empathy.score":       func(it types.ResultItem) sortValue { return num(scoring.CalculateQaScores(it.Result).Empathy.Score) },
}

// SortKeys lists the accepted dotted paths, sorted.
func SortKeys() []string {
	keys := make([]string, 0, len(sortKeys))
	for k := range sortKeys {
		keys = append(keys, k)
	}
	sortStrings(keys)
	return keys
}

// SortBy returns a stably sorted copy of items.
func SortBy(items []types.ResultItem, cfg types.SortConfig) ([]types.ResultItem, error) {
	get, ok := sortKeys[cfg.Key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, cfg.Key)
	}
	vals := make([]sortValue, len(items))
	idx := make([]int, len(items))
	for i, it := range items {
		vals[i] = get(it)
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		c := vals[idx[i]].compare(vals[idx[j]])
		if cfg.Direction == types.Descending {
			return c > 0
		}
		return c < 0
	})
	out := make([]types.ResultItem, len(items))
	for i, k := range idx {
		out[i] = items[k]
	}
	return out, nil
}

func sortStrings(s []string) { sort.Strings(s) }
