package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/coachably/ranking-engine/internal/command"
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
		logger.ErrorContext(ctx, "engagement close failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "engagement close completed successfully")
}

func run(ctx context.Context) error {
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

	closeCmd := command.NewCloseEngagementMonth(repo)

	// CLOSE_MONTH overrides the month for backfills; empty means the
	// previous calendar month.
	resp, err := closeCmd.Execute(ctx, command.CloseEngagementMonthRequest{
		Month: domain.YearMonth(os.Getenv("CLOSE_MONTH")),
	})
	if err != nil {
		return err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "closed engagement month",
		"month", resp.Month, "records_closed", resp.RecordsClosed)

	return nil
}
