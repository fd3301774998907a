// Package main is the entrypoint for the userreport API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"

	"github.com/userreport/userreport/internal/analytics"
	"github.com/userreport/userreport/internal/cache"
	"github.com/userreport/userreport/internal/config"
	"github.com/userreport/userreport/internal/handler"
	"github.com/userreport/userreport/internal/repository"
	"github.com/userreport/userreport/internal/server"
	"github.com/userreport/userreport/internal/service"
)

// userStore is what the API needs from a user backend.
type userStore interface {
	service.UserStore
	Ping(ctx context.Context) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var shutdown []namedShutdown

	// Initialize user store
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if closeStore != nil {
		shutdown = append(shutdown, namedShutdown{"user_store", closeStore})
	}

	checks := map[string]handler.HealthChecker{"user_store": store}

	// Initialize cache
	var userCache service.UserCache
	if cfg.CacheEnabled() {
		c, err := cache.New(ctx, cfg.RedisURL,
			cache.WithUserTTL(cfg.UserCacheTTL),
			cache.WithNegativeTTL(cfg.UserNegativeCacheTTL),
		)
		if err != nil {
			runShutdown(ctx, shutdown)
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			return fmt.Errorf("connect to redis: %s", sanitizeError(err, cfg.RedisURL))
		}
		logger.Info("connected to Redis", "redis_url", redactURL(cfg.RedisURL))
		userCache = c
		checks["redis"] = c
		shutdown = append(shutdown, namedShutdown{"redis", func(context.Context) error { return c.Close() }})
	} else {
		checks["redis"] = nil
	}

	// Initialize services
	userService := service.NewUserService(store, userCache, logger)
	reportService := service.NewReportService(userService, analytics.NewStub(cfg.AnalyticsPlaceholder))

	router := server.NewRouter(server.Routes{
		Info:          handler.New(),
		Health:        handler.NewHealthHandler(checks),
		Users:         handler.NewUserHandler(userService, logger),
		Report:        handler.NewReportHandler(reportService, logger),
		Logger:        logger,
		IsDevelopment: cfg.IsDevelopment(),
	})

	srv := server.New(router, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)
	for _, s := range shutdown {
		srv.OnShutdown(s.name, s.fn)
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"user_store", cfg.UserStore,
		"cache_enabled", cfg.CacheEnabled(),
	)

	return srv.Run(ctx)
}

type namedShutdown struct {
	name string
	fn   server.ShutdownFunc
}

// runShutdown closes already opened components when startup fails part way.
func runShutdown(ctx context.Context, funcs []namedShutdown) {
	for i := len(funcs) - 1; i >= 0; i-- {
		_ = funcs[i].fn(ctx)
	}
}

// openStore returns the configured user backend and, for postgres, its close func.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (userStore, server.ShutdownFunc, error) {
	switch cfg.UserStore {
	case config.UserStorePostgres:
		repo, err := repository.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error(
				"failed to connect to database",
				slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
				slog.String("database_url", redactURL(cfg.DatabaseURL)),
			)
			return nil, nil, fmt.Errorf("connect to database: %s", sanitizeError(err, cfg.DatabaseURL))
		}
		logger.Info("connected to database", "database_url", redactURL(cfg.DatabaseURL))
		return repo, func(context.Context) error {
			repo.Close()
			return nil
		}, nil
	default:
		users := repository.DefaultUsers()
		logger.Info("using in-memory user store", "users", len(users))
		return repository.NewMemory(users...), nil, nil
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
