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
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/account"
	activityrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/activity"
	tagrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/tag"
	userrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/crm-backend/internal/adapter/redis"
	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/account"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
	"github.com/heartmarshall/crm-backend/internal/transport/middleware"
	"github.com/heartmarshall/crm-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// Postgres and Redis, wires the account service into the HTTP router and
// serves until ctx is cancelled, then shuts down gracefully.
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

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close() //nolint:errcheck

	handler, cleanup := newHandler(cfg, logger, pool, rdb)
	defer cleanup()

	return serve(ctx, logger, cfg.Server, handler)
}

// newHandler wires repositories, stores and the account service into the
// HTTP router. The returned func releases background resources.
func newHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *goredis.Client) (http.Handler, func()) {
	accounts := accountrepo.New(pool)
	tags := tagrepo.New(pool)
	users := userrepo.New(pool)
	activities := activityrepo.New(pool)

	svc := account.NewService(
		logger,
		accounts,
		tags,
		users,
		activities,
		redis.NewRecentStore(rdb, cfg.Session.RecentLimit),
		postgres.NewTxManager(pool),
		serviceConfig(cfg.Accounts),
	)

	limiter := middleware.NewRateLimiter(5 * time.Minute)

	handler := rest.NewRouter(rest.RouterDeps{
		Accounts:    rest.NewAccountHandler(svc, redis.NewSessionStore(rdb, cfg.Session.TTL), logger),
		Health:      rest.NewHealthHandler(pool, redis.NewPinger(rdb), BuildVersion()),
		Loaders:     &dataloader.Repos{Tag: tags, User: users},
		Tokens:      auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		RateLimiter: limiter,
		Config:      cfg,
		Logger:      logger,
	})

	return handler, limiter.Stop
}

func serviceConfig(c config.AccountsConfig) account.Config {
	return account.Config{
		Defaults: domain.ListingDefaults{
			PerPage: c.PerPage,
			Outline: domain.Outline(c.Outline),
			SortBy:  domain.SortField(c.SortBy),
		},
		DefaultAccess:     domain.Access(c.DefaultAccess),
		AutoCompleteLimit: c.AutoCompleteLimit,
	}
}

// serve runs the HTTP server until ctx is done or the listener fails.
func serve(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
