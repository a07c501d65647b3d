package aggregator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"qa-insights-go/internal/scoring"
	"qa-insights-go/internal/types"
)

// ErrUnknownDriverColumn is returned when sorting by a column DriverMetric does not have.
var ErrUnknownDriverColumn = errors.New("unknown driver column")

type driverTotals struct {
	count        int
	durationSecs int
	procedure    float64
	ownership    float64
	empathy      float64
	verification float64
	resolved     int
	repeat       int
}

// BuildDriverMetrics groups records by exact callType. Rows come back in
// first-seen order; use SortDriverMetrics for a table order.
func BuildDriverMetrics(records []types.AnalysisResult) types.DriverBreakdown {
	out := types.DriverBreakdown{Data: []types.DriverMetric{}}
	if len(records) == 0 {
		return out
	}

	order := []string{}
	groups := map[string]*driverTotals{}
	for _, r := range records {
		g, ok := groups[r.CallType]
		if !ok {
			g = &driverTotals{}
			groups[r.CallType] = g
			order = append(order, r.CallType)
		}
		g.count++
		g.durationSecs += scoring.ParseDurationToSeconds(r.CallDetails.CallDuration)

		// Per-pillar averages use whichever pillars the call actually has.
		if pf, ok := r.AgentPerformance.ProcedureFlow(); ok {
			g.procedure += float64(pf.AdherenceScore)
		}
		if own, ok := r.AgentPerformance.Ownership(); ok {
			g.ownership += float64(own.OwnershipScore)
		}
		if av, ok := r.AgentPerformance.AccountVerification(); ok {
			g.verification += float64(av.VerificationScore)
		}
		g.empathy += float64(r.AgentPerformance.Pillars().EmpathyPillar().EmpathyScore)

		if r.Resolution.IssueResolved {
			g.resolved++
		}
		if r.RepeatCall() {
			g.repeat++
		}
	}

	total := float64(len(records))
	for _, driver := range order {
		g := groups[driver]
		n := float64(g.count)
		m := types.DriverMetric{
			Driver:                driver,
			Count:                 g.count,
			PercentOfTotal:        n / total * 100,
			AvgDuration:           float64(g.durationSecs) / n,
			AvgProcedureFlowScore: g.procedure / n,
			AvgOwnershipScore:     g.ownership / n,
			AvgEmpathyScore:       g.empathy / n,
			AvgVerificationScore:  g.verification / n,
			ResolutionRate:        float64(g.resolved) / n * 100,
			RepeatPercent:         float64(g.repeat) / n * 100,
		}
		out.Data = append(out.Data, m)
		if m.PercentOfTotal > out.MaxValues.PercentOfTotal {
			out.MaxValues.PercentOfTotal = m.PercentOfTotal
		}
		if m.AvgDuration > out.MaxValues.AvgDuration {
			out.MaxValues.AvgDuration = m.AvgDuration
		}
	}
	return out
}

var driverColumns = map[string]func(types.DriverMetric) float64{
	"count":                 func(m types.DriverMetric) float64 { return float64(m.Count) },
	"percentOfTotal":        func(m types.DriverMetric) float64 { return m.PercentOfTotal },
	"avgDuration":           func(m types.DriverMetric) float64 { return m.AvgDuration },
	"avgProcedureFlowScore": func(m types.DriverMetric) float64 { return m.AvgProcedureFlowScore },
	"avgOwnershipScore":     func(m types.DriverMetric) float64 { return m.AvgOwnershipScore },
	"avgEmpathyScore":       func(m types.DriverMetric) float64 { return m.AvgEmpathyScore },
	"avgVerificationScore":  func(m types.DriverMetric) float64 { return m.AvgVerificationScore },
	"resolutionRate":        func(m types.DriverMetric) float64 { return m.ResolutionRate },
	"repeatPercent":         func(m types.DriverMetric) float64 { return m.RepeatPercent },
}

// DriverColumns lists the sortable DriverMetric columns.
func DriverColumns() []string {
	cols := []string{"driver"}
	for k := range driverColumns {
		cols = append(cols, k)
	}
	sort.Strings(cols[1:])
	return cols
}

// SortDriverMetrics returns a stably sorted copy. "driver" compares as a
// string, every other column numerically.
func SortDriverMetrics(rows []types.DriverMetric, cfg types.SortConfig) ([]types.DriverMetric, error) {
	var cmp func(a, b types.DriverMetric) int
	if cfg.Key == "driver" {
		cmp = func(a, b types.DriverMetric) int { return strings.Compare(a.Driver, b.Driver) }
	} else {
		key, ok := driverColumns[cfg.Key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDriverColumn, cfg.Key)
		}
		cmp = func(a, b types.DriverMetric) int {
			x, y := key(a), key(b)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	}

	out := make([]types.DriverMetric, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if cfg.Direction == types.Descending {
			return c > 0
		}
		return c < 0
	})
	return out, nil
}
