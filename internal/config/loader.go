package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/coachably/ranking-engine/internal/domain"
)

// configFileEnv names the optional YAML file with engine overrides.
const configFileEnv = "RANKING_CONFIG"

// envPrefix namespaces engine override environment variables,
// e.g. RANKENG_TOP_N=5.
const envPrefix = "RANKENG_"

// Load layers engine configuration: defaults, then the optional YAML
// file, then RANKENG_-prefixed environment variables. Unknown keys are
// ignored and missing keys keep their defaults, so partial overrides
// are always safe.
func Load(ctx context.Context) (*EngineConfig, error) {
	logger := domain.LoggerFromContext(ctx)

	k := koanf.New(".")

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading engine config file %s: %w", path, err)
		}
		logger.InfoContext(ctx, "loaded engine config file", "path", path)
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading engine config from environment: %w", err)
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshalling engine config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating engine config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration, falling back to pure defaults on any
// error. Absent or malformed config never fails startup; the incident
// is logged and the documented defaults apply.
func MustLoad(ctx context.Context) *EngineConfig {
	cfg, err := Load(ctx)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "falling back to default engine config", "error", err)
		return Default()
	}
	return cfg
}
