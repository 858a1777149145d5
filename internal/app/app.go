package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/topics-backend/internal/adapter/postgres"
	topicrepo "github.com/heartmarshall/topics-backend/internal/adapter/postgres/topic"
	"github.com/heartmarshall/topics-backend/internal/config"
	"github.com/heartmarshall/topics-backend/internal/domain"
	topicsvc "github.com/heartmarshall/topics-backend/internal/service/topic"
	"github.com/heartmarshall/topics-backend/internal/transport/middleware"
	"github.com/heartmarshall/topics-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations and seed data when enabled, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Topics.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	c := wire(cfg, logger, pool)
	defer c.stop()

	if cfg.Topics.SeedOnStart {
		if _, err := SeedTopics(ctx, logger, c.repo, c.service); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// components is the wired object graph shared by Run and the e2e tests.
type components struct {
	repo    *topicrepo.Repo
	service *topicsvc.Service
	handler http.Handler
	stop    func()
}

func wire(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *components {
	repo := topicrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	svc := topicsvc.NewService(logger, repo, txm, domain.SystemClock{},
		topicsvc.WithPageSizes(cfg.Topics.DefaultPageSize, cfg.Topics.MaxPageSize),
	)

	health := rest.NewHealthHandler(BuildVersion(),
		rest.HealthCheck{Name: "database", Check: pool.Ping},
		rest.HealthCheck{Name: "topics", Check: func(ctx context.Context) error {
			_, err := repo.Count(ctx, true)
			return err
		}},
	)

	var limiter *middleware.RateLimiter
	stop := func() {}
	if cfg.Server.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, rateLimitCleanupInterval)
		stop = limiter.Stop
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Log:     logger,
		Topics:  rest.NewTopicHandler(svc, logger, cfg.Topics.MaxPageSize),
		Health:  health,
		CORS:    cfg.CORS,
		Limiter: limiter,
	})

	return &components{repo: repo, service: svc, handler: handler, stop: stop}
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
