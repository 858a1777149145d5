// Command cleanup physically removes topics that were soft-deleted longer
// than topics.hard_delete_retention_days ago. It is meant to be run by an
// external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/topics-backend/internal/adapter/postgres"
	"github.com/heartmarshall/topics-backend/internal/adapter/postgres/topic"
	"github.com/heartmarshall/topics-backend/internal/app"
	"github.com/heartmarshall/topics-backend/internal/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "only report how many topics would be removed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := topic.New(pool)
	threshold := time.Now().UTC().AddDate(0, 0, -cfg.Topics.HardDeleteRetentionDays)

	if *dryRun {
		n, err := repo.CountDeletedBefore(ctx, threshold)
		if err != nil {
			logger.Error("count failed", slog.String("error", err.Error()))
			pool.Close()
			os.Exit(1)
		}
		logger.Info("dry run", slog.Int("would_delete", n), slog.Time("threshold", threshold))
		return
	}

	deleted, err := repo.HardDeleteOld(ctx, threshold)
	if err != nil {
		logger.Error("hard delete failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("hard delete completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
