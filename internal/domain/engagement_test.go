package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepThresholds_Apply(t *testing.T) {
	steps := StepThresholds{Excellent: 10, Good: 5, Base: 2}

	cases := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "excellent", value: 12, expected: 1.0},
		{name: "at_excellent", value: 10, expected: 1.0},
		{name: "good", value: 7, expected: 0.6},
		{name: "at_good", value: 5, expected: 0.6},
		{name: "base", value: 3, expected: 0.3},
		{name: "at_base", value: 2, expected: 0.3},
		{name: "below_base", value: 1, expected: 0},
		{name: "zero", value: 0, expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, steps.Apply(tc.value))
		})
	}
}

func TestScoreEngagement(t *testing.T) {
	weights := DefaultEngagementWeights()

	cases := []struct {
		name     string
		record   EngagementRecord
		expected float64
	}{
		{
			name:     "no_activity",
			record:   EngagementRecord{CoachID: "c1", Month: "2026-08"},
			expected: 0,
		},
		{
			name: "all_excellent",
			record: EngagementRecord{
				CoachID:                "c1",
				Month:                  "2026-08",
				SessionsCompleted:      12,
				ResponseRate:           0.95,
				RecentReviewCount:      6,
				CommunityActivityCount: 15,
				ConversionRate:         0.6,
			},
			expected: 100,
		},
		{
			name: "mixed_tiers",
			record: EngagementRecord{
				CoachID: "c1",
				Month:   "2026-08",
				// good, excellent, base, below base, base tiers.
				SessionsCompleted:      6,
				ResponseRate:           0.95,
				RecentReviewCount:      1,
				CommunityActivityCount: 1,
				ConversionRate:         0.2,
			},
			expected: 18 + 20 + 6 + 0 + 4.5,
		},
		{
			name: "crossing_threshold_beats_marginal_gain",
			record: EngagementRecord{
				CoachID:           "c1",
				Month:             "2026-08",
				SessionsCompleted: 9, // still good tier, same as 5
			},
			expected: 18,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ScoreEngagement(tc.record, weights), 0.0001)
		})
	}
}

func TestYearMonthOf(t *testing.T) {
	ts := time.Date(2026, 8, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, YearMonth("2026-08"), YearMonthOf(ts))
	assert.True(t, YearMonthOf(ts).IsValid())
	assert.False(t, YearMonth("august").IsValid())
}
