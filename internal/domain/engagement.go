package domain

import (
	"errors"
	"time"
)

// YearMonth identifies one calendar month, e.g. "2026-08".
type YearMonth string

// YearMonthOf returns the YearMonth containing t, in UTC.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth(t.UTC().Format("2006-01"))
}

// IsValid reports whether the value parses as a calendar month.
func (m YearMonth) IsValid() bool {
	_, err := time.Parse("2006-01", string(m))
	return err == nil
}

func (m YearMonth) String() string {
	return string(m)
}

// EngagementRecord aggregates one coach's raw activity counters for one
// month. The current month's record stays mutable until the month
// closes; closed months are append-only history.
type EngagementRecord struct {
	CoachID                string    `json:"coach_id"`
	Month                  YearMonth `json:"month"`
	SessionsCompleted      int       `json:"sessions_completed"`
	ResponseRate           float64   `json:"response_rate"`
	RecentReviewCount      int       `json:"recent_review_count"`
	CommunityActivityCount int       `json:"community_activity_count"`
	ConversionRate         float64   `json:"conversion_rate"`
	Closed                 bool      `json:"closed"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// EngagementScore is a computed 0-100 engagement value. Closed scores
// come from a finished month; otherwise the score is a live estimate
// from counts so far.
type EngagementScore struct {
	CoachID string    `json:"coach_id"`
	Month   YearMonth `json:"month"`
	Score   float64   `json:"score"`
	Closed  bool      `json:"closed"`
}

// StepThresholds is a three-tier step function: crossing Excellent
// earns the full bucket, Good earns 60%, Base earns 30%, below Base
// earns nothing. Steps reward crossing meaningful activity levels over
// marginal increments.
type StepThresholds struct {
	Excellent float64
	Good      float64
	Base      float64
}

// Apply maps a raw metric through the step function, returning the
// fraction of the bucket earned.
func (s StepThresholds) Apply(value float64) float64 {
	switch {
	case value >= s.Excellent:
		return 1.0
	case value >= s.Good:
		return 0.6
	case value >= s.Base:
		return 0.3
	default:
		return 0
	}
}

// EngagementWeights holds the bucket weights and step thresholds of the
// engagement formula. Weights are percentages of the 0-100 score.
type EngagementWeights struct {
	Sessions   float64
	Response   float64
	Reviews    float64
	Community  float64
	Conversion float64

	SessionThresholds    StepThresholds
	ResponseThresholds   StepThresholds
	ReviewThresholds     StepThresholds
	CommunityThresholds  StepThresholds
	ConversionThresholds StepThresholds
}

// DefaultEngagementWeights returns the product-defined 30/20/20/15/15
// split with its threshold tables.
func DefaultEngagementWeights() EngagementWeights {
	return EngagementWeights{
		Sessions:   30,
		Response:   20,
		Reviews:    20,
		Community:  15,
		Conversion: 15,

		SessionThresholds:    StepThresholds{Excellent: 10, Good: 5, Base: 2},
		ResponseThresholds:   StepThresholds{Excellent: 0.9, Good: 0.7, Base: 0.5},
		ReviewThresholds:     StepThresholds{Excellent: 5, Good: 3, Base: 1},
		CommunityThresholds:  StepThresholds{Excellent: 12, Good: 6, Base: 2},
		ConversionThresholds: StepThresholds{Excellent: 0.5, Good: 0.3, Base: 0.1},
	}
}

// ScoreEngagement computes the 0-100 engagement score for one month's
// counters.
func ScoreEngagement(rec EngagementRecord, w EngagementWeights) float64 {
	score := w.Sessions*w.SessionThresholds.Apply(float64(rec.SessionsCompleted)) +
		w.Response*w.ResponseThresholds.Apply(rec.ResponseRate) +
		w.Reviews*w.ReviewThresholds.Apply(float64(rec.RecentReviewCount)) +
		w.Community*w.CommunityThresholds.Apply(float64(rec.CommunityActivityCount)) +
		w.Conversion*w.ConversionThresholds.Apply(rec.ConversionRate)

	return Clamp(score, 0, 100)
}

// ErrEngagementRecordNotFound is returned when no record exists for a
// (coach, month) key.
var ErrEngagementRecordNotFound = errors.New("engagement record not found")
