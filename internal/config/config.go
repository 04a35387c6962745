// Package config supplies the engine's tunable weights and thresholds.
// Every value has a documented default; a missing file or missing keys
// never fail startup or a ranking call.
package config

import (
	"fmt"

	"github.com/coachably/ranking-engine/internal/domain"
)

// EngineConfig holds every admin-tunable parameter of the ranking
// engine.
type EngineConfig struct {
	// Final formula weights, as fractions summing to 1.
	MatchWeight      float64 `koanf:"match_weight"`
	EngagementWeight float64 `koanf:"engagement_weight"`
	RotationWeight   float64 `koanf:"rotation_weight"`

	// TopN is how many coaches a ranking returns.
	TopN int `koanf:"top_n"`

	// Engagement bucket weights, as percentages of the 0-100 score.
	SessionsBucket   float64 `koanf:"sessions_bucket"`
	ResponseBucket   float64 `koanf:"response_bucket"`
	ReviewsBucket    float64 `koanf:"reviews_bucket"`
	CommunityBucket  float64 `koanf:"community_bucket"`
	ConversionBucket float64 `koanf:"conversion_bucket"`

	// Compatibility sub-bucket point budgets; the defaults sum to 100.
	MatchPriorityArea   float64 `koanf:"match_priority_area"`
	MatchSecondaryArea  float64 `koanf:"match_secondary_area"`
	MatchRelatedArea    float64 `koanf:"match_related_area"`
	MatchFocusTopics    float64 `koanf:"match_focus_topics"`
	MatchProblems       float64 `koanf:"match_problems"`
	MatchRating         float64 `koanf:"match_rating"`
	MatchReviews        float64 `koanf:"match_reviews"`
	MatchExperience     float64 `koanf:"match_experience"`
	MatchCertifications float64 `koanf:"match_certifications"`
	MatchStyleFit       float64 `koanf:"match_style_fit"`
	MatchMissionFit     float64 `koanf:"match_mission_fit"`
	MatchArchetypeFit   float64 `koanf:"match_archetype_fit"`
	MatchLocation       float64 `koanf:"match_location"`
	MatchPrice          float64 `koanf:"match_price"`
	MatchSessionMode    float64 `koanf:"match_session_mode"`
	MatchChatChannel    float64 `koanf:"match_chat_channel"`

	// Saturation points: counts at which the quality sub-scores earn
	// their full budget.
	MatchReviewsFull    int `koanf:"match_reviews_full"`
	MatchExperienceFull int `koanf:"match_experience_full"`
	MatchCertsFull      int `koanf:"match_certs_full"`

	// MinPostsPerMonth is the decay ladder's activity threshold.
	MinPostsPerMonth int `koanf:"min_posts_per_month"`

	// Decay deductions, cumulative from baseline.
	WarnedDeduction int `koanf:"warned_deduction"`
	Tier2Deduction  int `koanf:"tier2_deduction"`
	HiddenDeduction int `koanf:"hidden_deduction"`

	// Reputation tier boundaries.
	SilverPoints   int `koanf:"silver_points"`
	GoldPoints     int `koanf:"gold_points"`
	PlatinumPoints int `koanf:"platinum_points"`

	// Rotation fairness parameters.
	InactivityThresholdDays int     `koanf:"inactivity_threshold_days"`
	InactivityBoostMin      float64 `koanf:"inactivity_boost_min"`
	InactivityBoostMax      float64 `koanf:"inactivity_boost_max"`
	InactivityRampDays      int     `koanf:"inactivity_ramp_days"`

	// TrendWindowDays is the rolling window used for visibility-trend
	// notifications.
	TrendWindowDays int `koanf:"trend_window_days"`

	// RankingCacheTTLSeconds bounds response caching of ranking
	// results.
	RankingCacheTTLSeconds int `koanf:"ranking_cache_ttl_seconds"`

	// Marketplace commercial parameters surfaced to other systems.
	PlatformFeePercent float64 `koanf:"platform_fee_percent"`
	TrialLengthDays    int     `koanf:"trial_length_days"`
}

// Default returns the documented default configuration.
func Default() *EngineConfig {
	return &EngineConfig{
		MatchWeight:      0.70,
		EngagementWeight: 0.20,
		RotationWeight:   0.10,

		TopN: 3,

		SessionsBucket:   30,
		ResponseBucket:   20,
		ReviewsBucket:    20,
		CommunityBucket:  15,
		ConversionBucket: 15,

		MatchPriorityArea:   15,
		MatchSecondaryArea:  8,
		MatchRelatedArea:    5,
		MatchFocusTopics:    7,
		MatchProblems:       5,
		MatchRating:         10,
		MatchReviews:        5,
		MatchExperience:     5,
		MatchCertifications: 5,
		MatchStyleFit:       8,
		MatchMissionFit:     5,
		MatchArchetypeFit:   7,
		MatchLocation:       5,
		MatchPrice:          5,
		MatchSessionMode:    3,
		MatchChatChannel:    2,

		MatchReviewsFull:    20,
		MatchExperienceFull: 10,
		MatchCertsFull:      3,

		MinPostsPerMonth: 4,
		WarnedDeduction:  20,
		Tier2Deduction:   50,
		HiddenDeduction:  100,

		SilverPoints:   500,
		GoldPoints:     1500,
		PlatinumPoints: 3000,

		InactivityThresholdDays: 14,
		InactivityBoostMin:      10,
		InactivityBoostMax:      15,
		InactivityRampDays:      14,

		TrendWindowDays: 7,

		RankingCacheTTLSeconds: 300,

		PlatformFeePercent: 15,
		TrialLengthDays:    14,
	}
}

// Validate rejects configurations that would make scores meaningless.
func (c *EngineConfig) Validate() error {
	sum := c.MatchWeight + c.EngagementWeight + c.RotationWeight
	if sum <= 0 {
		return fmt.Errorf("formula weights must sum to a positive value, got %f", sum)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.InactivityBoostMax < c.InactivityBoostMin {
		return fmt.Errorf("inactivity_boost_max %f below inactivity_boost_min %f",
			c.InactivityBoostMax, c.InactivityBoostMin)
	}
	if c.PlatformFeePercent < 0 || c.PlatformFeePercent > 100 {
		return fmt.Errorf("platform_fee_percent must be within [0,100], got %f", c.PlatformFeePercent)
	}
	if c.TrialLengthDays < 0 {
		return fmt.Errorf("trial_length_days must not be negative, got %d", c.TrialLengthDays)
	}
	return nil
}

// MatchWeights converts to the domain compatibility point budgets.
func (c *EngineConfig) MatchWeights() domain.MatchWeights {
	return domain.MatchWeights{
		PriorityArea:  c.MatchPriorityArea,
		SecondaryArea: c.MatchSecondaryArea,
		RelatedArea:   c.MatchRelatedArea,
		FocusTopics:   c.MatchFocusTopics,
		Problems:      c.MatchProblems,

		Rating:         c.MatchRating,
		Reviews:        c.MatchReviews,
		Experience:     c.MatchExperience,
		Certifications: c.MatchCertifications,

		StyleFit:     c.MatchStyleFit,
		MissionFit:   c.MatchMissionFit,
		ArchetypeFit: c.MatchArchetypeFit,

		Location:    c.MatchLocation,
		Price:       c.MatchPrice,
		SessionMode: c.MatchSessionMode,
		ChatChannel: c.MatchChatChannel,

		ReviewsFull:    c.MatchReviewsFull,
		ExperienceFull: c.MatchExperienceFull,
		CertsFull:      c.MatchCertsFull,
	}
}

// FormulaWeights converts to the domain weight struct.
func (c *EngineConfig) FormulaWeights() domain.FormulaWeights {
	return domain.FormulaWeights{
		Match:      c.MatchWeight,
		Engagement: c.EngagementWeight,
		Rotation:   c.RotationWeight,
	}
}

// EngagementWeights converts to the domain engagement formula,
// overriding the bucket split. Step thresholds keep their documented
// defaults.
func (c *EngineConfig) EngagementWeights() domain.EngagementWeights {
	w := domain.DefaultEngagementWeights()
	w.Sessions = c.SessionsBucket
	w.Response = c.ResponseBucket
	w.Reviews = c.ReviewsBucket
	w.Community = c.CommunityBucket
	w.Conversion = c.ConversionBucket
	return w
}

// DecayPolicy converts to the domain decay policy.
func (c *EngineConfig) DecayPolicy() domain.DecayPolicy {
	return domain.DecayPolicy{
		MinPostsPerMonth: c.MinPostsPerMonth,
		WarnedDeduction:  c.WarnedDeduction,
		Tier2Deduction:   c.Tier2Deduction,
		HiddenDeduction:  c.HiddenDeduction,
	}
}

// RotationPolicy converts to the domain rotation policy.
func (c *EngineConfig) RotationPolicy() domain.RotationPolicy {
	return domain.RotationPolicy{
		InactivityThresholdDays: c.InactivityThresholdDays,
		BoostMin:                c.InactivityBoostMin,
		BoostMax:                c.InactivityBoostMax,
		RampDays:                c.InactivityRampDays,
	}
}

// TierThresholds converts to the domain tier boundaries.
func (c *EngineConfig) TierThresholds() domain.TierThresholds {
	return domain.TierThresholds{
		Silver:   c.SilverPoints,
		Gold:     c.GoldPoints,
		Platinum: c.PlatinumPoints,
	}
}
