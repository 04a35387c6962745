package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/coachably/ranking-engine/internal/app"
	"github.com/coachably/ranking-engine/internal/command"
	"github.com/coachably/ranking-engine/internal/config"
	"github.com/coachably/ranking-engine/internal/datasources/mysql"
	"github.com/coachably/ranking-engine/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "rotation regeneration failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "rotation regeneration completed successfully")
}

func run(ctx context.Context) error {
	engineCfg := config.MustLoad(ctx)

	mysqlURI := os.Getenv("MYSQL_URI")
	if mysqlURI == "" {
		return fmt.Errorf("MYSQL_URI environment variable is required")
	}

	db, err := mysql.Connect(ctx, mysqlURI)
	if err != nil {
		return fmt.Errorf("connecting to MySQL: %w", err)
	}
	defer func() { _ = db.Close() }()

	repo := mysql.New(db)

	notifier, err := app.SetupVisibilityNotifier(ctx)
	if err != nil {
		return fmt.Errorf("setting up notifier: %w", err)
	}

	rotateCmd := command.NewRegenerateRotation(repo, repo, notifier, app.RegenerateRotationConfig(engineCfg))

	resp, err := rotateCmd.Execute(ctx, command.RegenerateRotationRequest{})
	if err != nil {
		return err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "regenerated rotation states",
		"coaches_rotated", resp.CoachesRotated,
		"declining_notified", resp.DecliningNotified,
	)

	return nil
}
