package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachably/ranking-engine/internal/domain"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.InDelta(t, 1.0, cfg.MatchWeight+cfg.EngagementWeight+cfg.RotationWeight, 1e-9)
	assert.Equal(t, 3, cfg.TopN)
	assert.InDelta(t, 100.0,
		cfg.SessionsBucket+cfg.ResponseBucket+cfg.ReviewsBucket+cfg.CommunityBucket+cfg.ConversionBucket, 1e-9)
	assert.Equal(t, domain.DefaultMatchWeights(), cfg.MatchWeights())
	assert.Equal(t, 4, cfg.MinPostsPerMonth)
	assert.Equal(t, 20, cfg.WarnedDeduction)
	assert.Equal(t, 50, cfg.Tier2Deduction)
	assert.Equal(t, 100, cfg.HiddenDeduction)
	assert.Equal(t, 14, cfg.InactivityThresholdDays)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*EngineConfig)
		wantErr bool
	}{
		{name: "defaults_ok", mutate: func(*EngineConfig) {}},
		{name: "zero_weights", mutate: func(c *EngineConfig) {
			c.MatchWeight, c.EngagementWeight, c.RotationWeight = 0, 0, 0
		}, wantErr: true},
		{name: "zero_top_n", mutate: func(c *EngineConfig) { c.TopN = 0 }, wantErr: true},
		{name: "inverted_boost_range", mutate: func(c *EngineConfig) {
			c.InactivityBoostMin, c.InactivityBoostMax = 15, 10
		}, wantErr: true},
		{name: "fee_above_hundred", mutate: func(c *EngineConfig) {
			c.PlatformFeePercent = 101
		}, wantErr: true},
		{name: "negative_trial_length", mutate: func(c *EngineConfig) {
			c.TrialLengthDays = -1
		}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_FileAndEnvLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top_n: 5\nmin_posts_per_month: 6\n"), 0o600))

	t.Setenv("RANKING_CONFIG", path)
	t.Setenv("RANKENG_TOP_N", "7")
	t.Setenv("RANKENG_MATCH_PRIORITY_AREA", "20")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	// Env overrides file, file overrides defaults, untouched keys keep
	// their defaults.
	assert.Equal(t, 7, cfg.TopN)
	assert.Equal(t, 6, cfg.MinPostsPerMonth)
	assert.Equal(t, 20, cfg.WarnedDeduction)

	// Compatibility sub-bucket budgets override individually.
	weights := cfg.MatchWeights()
	assert.InDelta(t, 20.0, weights.PriorityArea, 1e-9)
	assert.InDelta(t, 8.0, weights.SecondaryArea, 1e-9)
}

func TestMustLoad_FallsBackToDefaults(t *testing.T) {
	t.Setenv("RANKING_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := MustLoad(context.Background())

	assert.Equal(t, Default(), cfg)
}
