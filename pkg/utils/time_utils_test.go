package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStateTransitionTime(t *testing.T) {
	parsed := ParseStateTransitionTime("User initiated (2023-04-01 12:34:56 GMT)")
	require.NotNil(t, parsed)
	assert.Equal(t, 2023, parsed.Year())
	assert.Equal(t, time.April, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
	assert.Equal(t, 12, parsed.Hour())
}

func TestParseStateTransitionTimeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{"empty string", ""},
		{"no parenthesis", "User initiated"},
		{"garbage date", "User initiated (not a date)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseStateTransitionTime(tt.reason))
		})
	}
}

func TestAgeDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, AgeDays(now, now))
	assert.Equal(t, 10, AgeDays(now.AddDate(0, 0, -10), now))
	assert.Equal(t, 365, AgeDays(now.AddDate(-1, 0, 0), now))
}

func TestGetMonthlyHours(t *testing.T) {
	assert.Equal(t, 730.0, GetMonthlyHours())
}
