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
		logger.ErrorContext(ctx, "decay evaluation failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "decay evaluation completed successfully")
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

	decayCmd := command.NewEvaluateDecay(repo, notifier, app.EvaluateDecayConfig(engineCfg))

	resp, err := decayCmd.Execute(ctx, command.EvaluateDecayRequest{})
	if err != nil {
		return err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "evaluated reputation decay",
		"evaluated", resp.Evaluated,
		"deducted", resp.Deducted,
		"hidden", resp.Hidden,
		"readmitted", resp.Readmitted,
	)

	return nil
}
