package domain

import (
	"errors"
	"hash/fnv"
	"time"
)

// dailyBoostRange is the modulus of the daily boost, yielding [0,10].
const dailyBoostRange = 11

// RotationState is one coach's fairness state for one day. The daily
// boost is regenerated once per day and read-only within that day.
type RotationState struct {
	CoachID               string     `json:"coach_id"`
	Date                  string     `json:"date"`
	DailyBoost            float64    `json:"daily_boost"`
	InactivityBoostActive bool       `json:"inactivity_boost_active"`
	RotationScore         float64    `json:"rotation_score"`
	LastRequestReceivedAt *time.Time `json:"last_request_received_at,omitempty"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// DailyBoost is the deterministic fairness boost for a coach on a given
// day, in [0,10]. It is a pure function of (coachID, date): repeated and
// concurrent calls within the same day agree without coordination, and
// no process-global randomness is involved.
func DailyBoost(coachID string, date time.Time) float64 {
	h := fnv.New64a()
	// Errors are impossible per the hash.Hash contract.
	_, _ = h.Write([]byte(coachID))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(date.UTC().Format("2006-01-02")))

	return float64(h.Sum64() % dailyBoostRange)
}

// RotationPolicy holds the fairness tunables.
type RotationPolicy struct {
	// InactivityThresholdDays is how long a coach must go without an
	// incoming request before compensation starts.
	InactivityThresholdDays int

	// Compensation scales linearly from BoostMin at the threshold to
	// BoostMax once RampDays further days have elapsed.
	BoostMin float64
	BoostMax float64
	RampDays int
}

// DefaultRotationPolicy returns the product defaults: compensation of
// [10,15] points starting at 14 request-free days.
func DefaultRotationPolicy() RotationPolicy {
	return RotationPolicy{
		InactivityThresholdDays: 14,
		BoostMin:                10,
		BoostMax:                15,
		RampDays:                14,
	}
}

// InactivityBoost returns the compensation for a coach whose last
// incoming request was at lastRequest, or 0 when the coach is within
// the threshold. A nil lastRequest means the coach has never received a
// request and earns the maximum compensation.
func (p RotationPolicy) InactivityBoost(lastRequest *time.Time, now time.Time) float64 {
	if lastRequest == nil {
		return p.BoostMax
	}

	days := now.Sub(*lastRequest).Hours() / 24
	if days < float64(p.InactivityThresholdDays) {
		return 0
	}

	if p.RampDays <= 0 {
		return p.BoostMax
	}
	extra := days - float64(p.InactivityThresholdDays)
	fraction := clamp01(extra / float64(p.RampDays))

	return p.BoostMin + fraction*(p.BoostMax-p.BoostMin)
}

// RotationScore combines the daily boost with any active inactivity
// compensation, clamped to [0,100].
func (p RotationPolicy) RotationScore(coachID string, lastRequest *time.Time, now time.Time) RotationState {
	daily := DailyBoost(coachID, now)
	compensation := p.InactivityBoost(lastRequest, now)

	return RotationState{
		CoachID:               coachID,
		Date:                  now.UTC().Format("2006-01-02"),
		DailyBoost:            daily,
		InactivityBoostActive: compensation > 0,
		RotationScore:         Clamp(daily+compensation, 0, 100),
		LastRequestReceivedAt: lastRequest,
	}
}

// VisibilityTrend classifies a rolling window of rotation-adjusted
// visibility scores. Declining trends feed advisory notifications; they
// never affect ranking.
type VisibilityTrend string

const (
	VisibilityTrendSteady    VisibilityTrend = "steady"
	VisibilityTrendDeclining VisibilityTrend = "declining"
)

// TrendOf compares the newer half of the window against the older half.
// Scores are ordered oldest first. Windows shorter than four entries
// are always steady: too little signal to call a decline.
func TrendOf(scores []float64) VisibilityTrend {
	if len(scores) < 4 {
		return VisibilityTrendSteady
	}

	half := len(scores) / 2
	older := avg(scores[:half])
	newer := avg(scores[len(scores)-half:])

	if newer < older {
		return VisibilityTrendDeclining
	}
	return VisibilityTrendSteady
}

func avg(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ErrRotationStateNotFound is returned when no rotation state exists
// for a (coach, date) key.
var ErrRotationStateNotFound = errors.New("rotation state not found")
