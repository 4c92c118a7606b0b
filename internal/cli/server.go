package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"quizbank-service/internal/app"
	"quizbank-service/internal/config"
	"quizbank-service/internal/infra/memory"
	pgsource "quizbank-service/internal/infra/postgres"
	redissession "quizbank-service/internal/infra/redis"
	transport "quizbank-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler, cleanup, err := buildHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting quiz service", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildHandler picks adapters from config: Redis sessions when redis.addr is
// set, Postgres seeding when postgres.url is set, in-memory otherwise.
func buildHandler(ctx context.Context, cfg config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	users, err := memory.NewCredentialStore(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, cleanup, err
	}

	sessionTTL := config.TTLDuration(cfg.Session.TTL, 30*time.Minute)
	var sessions app.SessionRepository
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = client.Close() })
		if err := client.Ping(ctx).Err(); err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("ping redis: %w", err)
		}
		sessions = redissession.NewSessionStore(client, sessionTTL)
	} else {
		sessions = memory.NewSessionStore(sessionTTL)
	}

	quizzes := app.NewQuizService(memory.NewQuizRepository(), logger)
	if len(cfg.Quizzes) > 0 {
		n, err := quizzes.Seed(ctx, memory.NewStaticQuizSource(cfg.Quizzes))
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		logger.Info("seeded quizzes from config", "count", n)
	}
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("connect postgres: %w", err)
		}
		closers = append(closers, pool.Close)
		n, err := quizzes.Seed(ctx, pgsource.NewQuizSource(pool))
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		logger.Info("seeded quizzes from postgres", "count", n)
	}

	accounts := app.NewAccountService(users, sessions, logger)
	return transport.NewHandler(accounts, quizzes, cfg.CookieName(), logger).Routes(), cleanup, nil
}
