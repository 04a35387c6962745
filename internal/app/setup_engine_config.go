package app

import (
	"github.com/coachably/ranking-engine/internal/command"
	"github.com/coachably/ranking-engine/internal/config"
	"github.com/coachably/ranking-engine/internal/domain"
)

// defaultScoringConcurrency caps parallel per-coach scoring during a
// ranking computation.
const defaultScoringConcurrency = 8

// RankCoachesConfig builds the ranking command configuration from the
// loaded engine configuration.
func RankCoachesConfig(cfg *config.EngineConfig) command.RankCoachesConfig {
	return command.RankCoachesConfig{
		Formula:            cfg.FormulaWeights(),
		MatchWeights:       cfg.MatchWeights(),
		EngagementWeights:  cfg.EngagementWeights(),
		RotationPolicy:     cfg.RotationPolicy(),
		DefaultLimit:       cfg.TopN,
		ScoringConcurrency: defaultScoringConcurrency,
	}
}

// RecordActivityConfig builds the event ingestion configuration.
func RecordActivityConfig() command.RecordActivityConfig {
	return command.RecordActivityConfig{
		Points: domain.DefaultPointsPolicy(),
	}
}

// GetEngagementSummaryConfig builds the engagement summary
// configuration from the loaded engine configuration.
func GetEngagementSummaryConfig(cfg *config.EngineConfig) command.GetEngagementSummaryConfig {
	return command.GetEngagementSummaryConfig{
		Weights: cfg.EngagementWeights(),
	}
}

// GetReputationSummaryConfig builds the reputation summary
// configuration from the loaded engine configuration.
func GetReputationSummaryConfig(cfg *config.EngineConfig) command.GetReputationSummaryConfig {
	return command.GetReputationSummaryConfig{
		Tiers: cfg.TierThresholds(),
	}
}

// EvaluateDecayConfig builds the decay job configuration from the
// loaded engine configuration.
func EvaluateDecayConfig(cfg *config.EngineConfig) command.EvaluateDecayConfig {
	return command.EvaluateDecayConfig{
		Policy: cfg.DecayPolicy(),
	}
}

// RegenerateRotationConfig builds the rotation job configuration from
// the loaded engine configuration.
func RegenerateRotationConfig(cfg *config.EngineConfig) command.RegenerateRotationConfig {
	return command.RegenerateRotationConfig{
		Policy:          cfg.RotationPolicy(),
		TrendWindowDays: cfg.TrendWindowDays,
	}
}
