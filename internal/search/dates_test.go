package search

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		want  time.Time
	}{
		{name: "rfc3339 utc", input: "2024-03-01T10:00:00Z", ok: true, want: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{name: "offset normalized", input: "2024-03-01T10:00:00+02:00", ok: true, want: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{name: "millis", input: "2024-03-01T10:00:00.250Z", ok: true, want: time.Date(2024, 3, 1, 10, 0, 0, int(250*time.Millisecond), time.UTC)},
		{name: "zone-less", input: "2024-03-01T10:00:00", ok: true, want: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{name: "date only", input: "2024-03-01", ok: true, want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "minutes with zone", input: "2025-01-15T14:30Z", ok: true, want: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)},
		{name: "basic offset", input: "2025-01-15T14:30:00+0530", ok: true, want: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)},
		{name: "space separated minutes", input: "2025-01-15 14:30", ok: true, want: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)},
		{name: "micros zone-less", input: "2025-01-15T14:30:00.123456", ok: true, want: time.Date(2025, 1, 15, 14, 30, 0, 123456000, time.UTC)},
		{name: "empty", input: ""},
		{name: "garbage", input: "N/A"},
		{name: "impossible date", input: "2024-13-45"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCallTime(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestCallTimeMillis(t *testing.T) {
	assert.Equal(t, int64(0), CallTimeMillis("not a date"))
	assert.Equal(t, int64(0), CallTimeMillis(""))
	assert.Equal(t, int64(1709287200000), CallTimeMillis("2024-03-01T10:00:00Z"))
}

func TestFormatCallTime(t *testing.T) {
	assert.Equal(t, "N/A", FormatCallTime(""))
	assert.Equal(t, "yesterday", FormatCallTime("yesterday"))
	assert.Equal(t, "2024-03-01 10:00:00 UTC", FormatCallTime("2024-03-01T10:00:00Z"))
	assert.Equal(t, "2024-03-01", FormatCallDate("2024-03-01T10:00:00Z"))
	assert.Equal(t, "later", FormatCallDate("later"))
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-03-01", "2024-03-02")
	require.NoError(t, err)
	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *r.Start)
	assert.Equal(t, time.Date(2024, 3, 2, 23, 59, 59, 999_000_000, time.UTC), *r.End)
	assert.True(t, r.Active())

	open, err := ParseDateRange("", "")
	require.NoError(t, err)
	assert.False(t, open.Active())

	_, err = ParseDateRange("soon", "")
	assert.True(t, errors.Is(err, ErrInvalidDate))
	_, err = ParseDateRange("", "later")
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestDateRange_ContainsIsInclusive(t *testing.T) {
	r, err := ParseDateRange("2024-03-01", "2024-03-01")
	require.NoError(t, err)
	assert.True(t, r.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 3, 1, 23, 59, 59, 999_000_000, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)))
}
