package aggregator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-insights-go/internal/types"
	"qa-insights-go/internal/types/fixtures"
)

func driverRecords() []types.AnalysisResult {
	return []types.AnalysisResult{
		fixtures.InternetCable("a", "1", 80, 60, 100, fixtures.CallType("Billing"), fixtures.Duration("02:00")),
		fixtures.InternetCable("a", "2", 40, 20, 60, fixtures.CallType("Billing"), fixtures.Duration("04:00"), fixtures.Unresolved("x"), fixtures.Repeat()),
		fixtures.Banking("b", "3", 90, 70, fixtures.CallType("Card"), fixtures.Duration("10:00")),
		fixtures.GeneralInquiry("c", "4", 50, fixtures.CallType("billing"), fixtures.Duration("nope")),
	}
}

func TestBuildDriverMetrics(t *testing.T) {
	got := BuildDriverMetrics(driverRecords())

	require.Len(t, got.Data, 3)
	billing := got.Data[0]
	assert.Equal(t, "Billing", billing.Driver)
	assert.Equal(t, 2, billing.Count)
	assert.InDelta(t, 50, billing.PercentOfTotal, 1e-9)
	assert.InDelta(t, 180, billing.AvgDuration, 1e-9)
	assert.InDelta(t, 60, billing.AvgProcedureFlowScore, 1e-9)
	assert.InDelta(t, 40, billing.AvgOwnershipScore, 1e-9)
	assert.InDelta(t, 80, billing.AvgEmpathyScore, 1e-9)
	assert.InDelta(t, 0, billing.AvgVerificationScore, 1e-9)
	assert.InDelta(t, 50, billing.ResolutionRate, 1e-9)
	assert.InDelta(t, 50, billing.RepeatPercent, 1e-9)

	card := got.Data[1]
	assert.Equal(t, "Card", card.Driver)
	assert.InDelta(t, 90, card.AvgVerificationScore, 1e-9)
	assert.InDelta(t, 0, card.AvgProcedureFlowScore, 1e-9)
	assert.InDelta(t, 70, card.AvgEmpathyScore, 1e-9)

	// grouping is case sensitive
	lower := got.Data[2]
	assert.Equal(t, "billing", lower.Driver)
	assert.InDelta(t, 0, lower.AvgDuration, 1e-9)

	assert.InDelta(t, 50, got.MaxValues.PercentOfTotal, 1e-9)
	assert.InDelta(t, 600, got.MaxValues.AvgDuration, 1e-9)
}

func TestBuildDriverMetrics_CountsSumToTotal(t *testing.T) {
	records := driverRecords()
	sum := 0
	for _, m := range BuildDriverMetrics(records).Data {
		sum += m.Count
	}
	assert.Equal(t, len(records), sum)
	assert.Equal(t, GenerateDashboardMetrics(records).TotalCalls, sum)
}

func TestBuildDriverMetrics_Empty(t *testing.T) {
	got := BuildDriverMetrics(nil)
	require.NotNil(t, got.Data)
	assert.Empty(t, got.Data)
	assert.Equal(t, types.DriverMaxValues{}, got.MaxValues)
}

func TestBuildDriverMetrics_Idempotent(t *testing.T) {
	records := driverRecords()
	assert.Equal(t, BuildDriverMetrics(records), BuildDriverMetrics(records))
}

func TestSortDriverMetrics(t *testing.T) {
	rows := BuildDriverMetrics(driverRecords()).Data

	t.Run("numeric descending", func(t *testing.T) {
		got, err := SortDriverMetrics(rows, types.SortConfig{Key: "avgDuration", Direction: types.Descending})
		require.NoError(t, err)
		assert.Equal(t, []string{"Card", "Billing", "billing"}, drivers(got))
	})

	t.Run("numeric ascending keeps ties stable", func(t *testing.T) {
		got, err := SortDriverMetrics(rows, types.SortConfig{Key: "resolutionRate", Direction: types.Ascending})
		require.NoError(t, err)
		// Billing 50, Card 100, billing 100
		assert.Equal(t, []string{"Billing", "Card", "billing"}, drivers(got))
	})

	t.Run("driver compares as string", func(t *testing.T) {
		got, err := SortDriverMetrics(rows, types.SortConfig{Key: "driver", Direction: types.Ascending})
		require.NoError(t, err)
		assert.Equal(t, []string{"Billing", "Card", "billing"}, drivers(got))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := drivers(rows)
		_, err := SortDriverMetrics(rows, types.SortConfig{Key: "count", Direction: types.Ascending})
		require.NoError(t, err)
		assert.Equal(t, before, drivers(rows))
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := SortDriverMetrics(rows, types.SortConfig{Key: "nope"})
		assert.True(t, errors.Is(err, ErrUnknownDriverColumn))
	})
}

func TestDriverColumns(t *testing.T) {
	cols := DriverColumns()
	assert.Equal(t, "driver", cols[0])
	assert.Contains(t, cols, "repeatPercent")
	assert.Len(t, cols, 10)
}

func drivers(rows []types.DriverMetric) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Driver
	}
	return out
}
