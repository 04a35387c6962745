package domain

import (
	"errors"
	"time"
)

// Standing is the decay-ladder state of a coach's reputation. The
// ladder only moves forward while the coach stays under the monthly
// post threshold; resuming activity returns the coach to Active.
type Standing string

const (
	StandingActive         Standing = "active"
	StandingWarned         Standing = "warned"
	StandingPenalizedTier2 Standing = "penalized_tier2"
	StandingHidden         Standing = "hidden"
)

// IsValid reports whether the standing is a known ladder state.
func (s Standing) IsValid() bool {
	switch s {
	case StandingActive, StandingWarned, StandingPenalizedTier2, StandingHidden:
		return true
	default:
		return false
	}
}

// Tier is the points-derived reputation tier shown on dashboards. It is
// independent of the decay standing.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// TierThresholds maps minimum point totals to tiers.
type TierThresholds struct {
	Silver   int
	Gold     int
	Platinum int
}

// DefaultTierThresholds returns the default tier boundaries.
func DefaultTierThresholds() TierThresholds {
	return TierThresholds{Silver: 500, Gold: 1500, Platinum: 3000}
}

// TierFor derives the tier for a point total.
func (t TierThresholds) TierFor(points int) Tier {
	switch {
	case points >= t.Platinum:
		return TierPlatinum
	case points >= t.Gold:
		return TierGold
	case points >= t.Silver:
		return TierSilver
	default:
		return TierBronze
	}
}

// ReputationLedger is one coach's cumulative reputation state. Rows are
// never deleted; decay only decrements points and flips visibility.
type ReputationLedger struct {
	CoachID                   string    `json:"coach_id"`
	TotalPoints               int       `json:"total_points"`
	Standing                  Standing  `json:"standing"`
	ConsecutiveInactiveMonths int       `json:"consecutive_inactive_months"`
	IsHidden                  bool      `json:"is_hidden"`
	MonthlyPostCount          int       `json:"monthly_post_count"`
	StreakDays                int       `json:"streak_days"`
	LastActivityAt            time.Time `json:"last_activity_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// Tier returns the points tier for dashboard display.
func (l ReputationLedger) Tier(thresholds TierThresholds) Tier {
	return thresholds.TierFor(l.TotalPoints)
}

// DecayPolicy holds the decay ladder's tunables. Deductions are
// cumulative from the month-zero baseline, not additive per month.
type DecayPolicy struct {
	// MinPostsPerMonth is the community-post threshold a coach must
	// meet to stay in Active standing.
	MinPostsPerMonth int

	// Deductions from baseline after 1, 2, and 3+ inactive months.
	WarnedDeduction int
	Tier2Deduction  int
	HiddenDeduction int
}

// DefaultDecayPolicy returns the product defaults.
func DefaultDecayPolicy() DecayPolicy {
	return DecayPolicy{
		MinPostsPerMonth: 4,
		WarnedDeduction:  20,
		Tier2Deduction:   50,
		HiddenDeduction:  100,
	}
}

// cumulativeDeduction returns the total points owed after n consecutive
// inactive months.
func (p DecayPolicy) cumulativeDeduction(months int) int {
	switch {
	case months >= 3:
		return p.HiddenDeduction
	case months == 2:
		return p.Tier2Deduction
	case months == 1:
		return p.WarnedDeduction
	default:
		return 0
	}
}

// standingFor returns the ladder state after n consecutive inactive
// months.
func standingFor(months int) Standing {
	switch {
	case months >= 3:
		return StandingHidden
	case months == 2:
		return StandingPenalizedTier2
	case months == 1:
		return StandingWarned
	default:
		return StandingActive
	}
}

// ApplyMonthlyDecay evaluates one closed month against the ledger and
// returns the updated ledger plus the points deducted this evaluation.
//
// A month at or above the post threshold resets the inactivity counter
// and clears the hidden flag; lost points are not restored. A month
// below the threshold advances the ladder and deducts the difference
// between this month's cumulative deduction and what was already taken.
// Points never drop below zero and the hidden flag is the only fatal
// consequence, itself recoverable the next active month.
func ApplyMonthlyDecay(ledger ReputationLedger, postsThisMonth int, policy DecayPolicy, now time.Time) (ReputationLedger, int) {
	if postsThisMonth >= policy.MinPostsPerMonth {
		ledger.ConsecutiveInactiveMonths = 0
		ledger.Standing = StandingActive
		ledger.IsHidden = false
		ledger.MonthlyPostCount = 0
		ledger.UpdatedAt = now
		return ledger, 0
	}

	alreadyDeducted := policy.cumulativeDeduction(ledger.ConsecutiveInactiveMonths)
	ledger.ConsecutiveInactiveMonths++
	owed := policy.cumulativeDeduction(ledger.ConsecutiveInactiveMonths)

	deduction := owed - alreadyDeducted
	if deduction < 0 {
		deduction = 0
	}
	if deduction > ledger.TotalPoints {
		deduction = ledger.TotalPoints
	}

	ledger.TotalPoints -= deduction
	ledger.Standing = standingFor(ledger.ConsecutiveInactiveMonths)
	ledger.IsHidden = ledger.Standing == StandingHidden
	ledger.MonthlyPostCount = 0
	ledger.UpdatedAt = now

	return ledger, deduction
}

// ErrLedgerNotFound is returned when a coach has no reputation ledger.
var ErrLedgerNotFound = errors.New("reputation ledger not found")
