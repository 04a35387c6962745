package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/coachably/ranking-engine/internal/command"
	"github.com/coachably/ranking-engine/internal/config"
	"github.com/coachably/ranking-engine/internal/datasources"
	"github.com/coachably/ranking-engine/internal/datasources/mysql"
	"github.com/coachably/ranking-engine/internal/datasources/redis"
	"github.com/coachably/ranking-engine/internal/datasources/webhook"
	"github.com/coachably/ranking-engine/internal/transport/web/router"
	"github.com/coachably/ranking-engine/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	engineCfg := config.MustLoad(ctx)

	repo, err := SetupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	cache, err := setupRankingCache(ctx, engineCfg)
	if err != nil {
		return nil, fmt.Errorf("setting up ranking cache: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	rankCmd := command.NewRankCoaches(
		repo, repo, repo, repo, repo, repo, cache,
		RankCoachesConfig(engineCfg),
	)

	engagementCmd := command.NewGetEngagementSummary(repo, repo, GetEngagementSummaryConfig(engineCfg))
	reputationCmd := command.NewGetReputationSummary(repo, GetReputationSummaryConfig(engineCfg))
	recordCmd := command.NewRecordActivity(repo, repo, repo, RecordActivityConfig())
	createTokenCmd := command.NewCreateDashboardToken(repo, repo)

	httpRouter, err := router.MakeRouter(
		rankCmd,
		engagementCmd,
		reputationCmd,
		recordCmd,
		createTokenCmd,
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

// SetupRepository connects to MySQL and wraps it in the store
// implementation. Shared by the HTTP service and the batch jobs.
func SetupRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupRankingCache(ctx context.Context, engineCfg *config.EngineConfig) (datasources.RankingCache, error) {
	switch driver := MustGetEnvAsString(ctx, "RANKING_CACHE_DRIVER"); driver {
	case "null":
		return datasources.NullRankingCache{}, nil
	case "redis":
		cache, err := redis.Connect(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			MustGetEnvAsString(ctx, "REDIS_PASSWORD"),
			time.Duration(engineCfg.RankingCacheTTLSeconds)*time.Second,
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return cache, nil
	default:
		return nil, fmt.Errorf("unknown ranking cache driver [%s]", driver)
	}
}

// SetupVisibilityNotifier selects the notifier used by the batch jobs
// to flag declining visibility and standing changes.
func SetupVisibilityNotifier(ctx context.Context) (datasources.VisibilityNotifier, error) {
	switch driver := MustGetEnvAsString(ctx, "NOTIFIER_DRIVER"); driver {
	case "null":
		return datasources.NullVisibilityNotifier{}, nil
	case "webhook":
		return webhook.New(
			MustGetEnvAsString(ctx, "NOTIFIER_WEBHOOK_URL"),
			MustGetEnvAsString(ctx, "NOTIFIER_WEBHOOK_SECRET"),
		), nil
	default:
		return nil, fmt.Errorf("unknown notifier driver [%s]", driver)
	}
}

func setupAuthMiddleware(
	ctx context.Context, repo datasources.DashboardTokenRepository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "dashboard_token":
			validators = append(validators, router.NewDashboardTokenValidator(ctx, repo, repo))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
