package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyBoost_Deterministic(t *testing.T) {
	date := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)

	first := DailyBoost("coach1", date)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, DailyBoost("coach1", date),
			"same (coach, date) must always produce the same boost")
	}

	// Time of day within the same date must not matter.
	assert.Equal(t, first, DailyBoost("coach1", time.Date(2026, 8, 31, 0, 0, 1, 0, time.UTC)))

	// Different days or coaches are free to differ.
	nextDay := DailyBoost("coach1", date.AddDate(0, 0, 1))
	assert.GreaterOrEqual(t, nextDay, 0.0)
}

func TestDailyBoost_Range(t *testing.T) {
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		boost := DailyBoost(string(rune('a'+i%26))+"coach", date.AddDate(0, 0, i))
		assert.GreaterOrEqual(t, boost, 0.0)
		assert.LessOrEqual(t, boost, 10.0)
	}
}

func TestRotationPolicy_InactivityBoost(t *testing.T) {
	policy := DefaultRotationPolicy()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	daysAgo := func(d int) *time.Time {
		ts := now.AddDate(0, 0, -d)
		return &ts
	}

	cases := []struct {
		name        string
		lastRequest *time.Time
		min, max    float64
	}{
		{name: "recent_request_no_boost", lastRequest: daysAgo(3), min: 0, max: 0},
		{name: "just_under_threshold", lastRequest: daysAgo(13), min: 0, max: 0},
		{name: "at_threshold", lastRequest: daysAgo(14), min: 10, max: 10},
		{name: "one_week_past", lastRequest: daysAgo(21), min: 12.5, max: 12.5},
		{name: "at_ramp_end", lastRequest: daysAgo(28), min: 15, max: 15},
		{name: "beyond_ramp_capped", lastRequest: daysAgo(90), min: 15, max: 15},
		{name: "never_requested", lastRequest: nil, min: 15, max: 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			boost := policy.InactivityBoost(tc.lastRequest, now)
			assert.GreaterOrEqual(t, boost, tc.min)
			assert.LessOrEqual(t, boost, tc.max)
		})
	}
}

func TestRotationPolicy_RotationScore(t *testing.T) {
	policy := DefaultRotationPolicy()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	lastRequest := now.AddDate(0, 0, -20)
	state := policy.RotationScore("coach1", &lastRequest, now)

	assert.True(t, state.InactivityBoostActive)
	assert.GreaterOrEqual(t, state.RotationScore, state.DailyBoost+10)
	assert.LessOrEqual(t, state.RotationScore, state.DailyBoost+15)
	assert.LessOrEqual(t, state.RotationScore, 100.0)
	assert.Equal(t, "2026-08-31", state.Date)

	recent := now.AddDate(0, 0, -1)
	active := policy.RotationScore("coach1", &recent, now)
	assert.False(t, active.InactivityBoostActive)
	assert.Equal(t, active.DailyBoost, active.RotationScore)
}

func TestTrendOf(t *testing.T) {
	cases := []struct {
		name     string
		scores   []float64
		expected VisibilityTrend
	}{
		{name: "too_short", scores: []float64{5, 1}, expected: VisibilityTrendSteady},
		{name: "declining", scores: []float64{9, 8, 4, 2}, expected: VisibilityTrendDeclining},
		{name: "rising", scores: []float64{2, 3, 8, 9}, expected: VisibilityTrendSteady},
		{name: "flat", scores: []float64{5, 5, 5, 5}, expected: VisibilityTrendSteady},
		{name: "odd_window_declining", scores: []float64{10, 9, 5, 2, 1}, expected: VisibilityTrendDeclining},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TrendOf(tc.scores))
		})
	}
}
