package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationToSeconds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "zero padded", input: "05:32", want: 332},
		{name: "single digit minutes", input: "5:32", want: 332},
		{name: "minutes unbounded", input: "65:00", want: 3900},
		{name: "seconds not range checked", input: "1:75", want: 135},
		{name: "empty", input: "", want: 0},
		{name: "hours form rejected", input: "01:02:03", want: 0},
		{name: "letters", input: "ab:cd", want: 0},
		{name: "missing seconds", input: "05:", want: 0},
		{name: "surrounding space", input: " 05:32", want: 0},
		{name: "negative", input: "-1:30", want: 0},
		{name: "decimal", input: "1.5:30", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDurationToSeconds(tt.input))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "zero", seconds: 0, want: "00:00"},
		{name: "whole minutes", seconds: 240, want: "04:00"},
		{name: "rounds down below half", seconds: 59.4, want: "00:59"},
		{name: "rounding carries into minutes", seconds: 59.6, want: "01:00"},
		{name: "carry at later minute", seconds: 119.5, want: "02:00"},
		{name: "half rounds up", seconds: 90.5, want: "01:31"},
		{name: "more than an hour", seconds: 3905, want: "65:05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}
