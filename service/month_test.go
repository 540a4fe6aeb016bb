package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKey(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "first of month",
			input:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024-01",
		},
		{
			name:     "mid month with time of day",
			input:    time.Date(2024, 1, 17, 14, 30, 45, 0, time.UTC),
			expected: "2024-01",
		},
		{
			name:     "last instant of month",
			input:    time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC),
			expected: "2024-02",
		},
		{
			name:     "non-UTC timestamp is bucketed in UTC",
			input:    time.Date(2024, 3, 1, 0, 30, 0, 0, time.FixedZone("CET", 3600)),
			expected: "2024-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthKey(tt.input))
		})
	}
}

func TestMonthStart(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		start, err := MonthStart("2024-06")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := MonthStart("June 2024")
		assert.Error(t, err)
	})

	t.Run("round trip with MonthKey", func(t *testing.T) {
		start, err := MonthStart("2024-11")
		require.NoError(t, err)
		assert.Equal(t, "2024-11", MonthKey(start))
	})
}

func TestNextMonthStart(t *testing.T) {
	t.Run("mid year", func(t *testing.T) {
		next, err := NextMonthStart("2024-06")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("year boundary", func(t *testing.T) {
		next, err := NextMonthStart("2024-12")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), next)
	})
}
