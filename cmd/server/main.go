package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vncsmyrnk/auth/internal/adapters/handler/http"
	"github.com/vncsmyrnk/auth/internal/adapters/hasher"
	"github.com/vncsmyrnk/auth/internal/adapters/notifier"
	"github.com/vncsmyrnk/auth/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/auth/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/auth/internal/config"
	"github.com/vncsmyrnk/auth/internal/core/ports"
	"github.com/vncsmyrnk/auth/internal/core/services"
	"github.com/vncsmyrnk/auth/internal/logging"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		userRepo  ports.UserRepository
		tokenRepo ports.AccessTokenRepository
		health    *http.HealthHandler
	)

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		userRepo = memory.NewUserRepository()
		tokenRepo = memory.NewAccessTokenRepository()
		health = http.NewHealthHandler(nil, logger)
	default:
		db, err := openDatabase(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		userRepo = postgres.NewUserRepository(db)
		tokenRepo = postgres.NewAccessTokenRepository(db)
		health = http.NewHealthHandler(db, logger)
	}

	tokens := services.NewTokenService(tokenRepo, cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	authService := services.NewAuthService(
		userRepo,
		tokens,
		hasher.NewBcrypt(cfg.Auth.BcryptCost),
		newNotifier(cfg, logger),
		services.AuthOptions{
			RememberMeTTL: cfg.Auth.RememberMeTTL,
			Logger:        logger,
		},
	)

	handler := http.NewHandler(
		http.NewAuthHandler(authService, logger),
		http.NewUserHandler(authService, logger),
		health,
		authService,
		logger,
	)
	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := postgres.Open(ctx, cfg.Postgres.DSN())
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		logger.Info("applying database migrations")
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

func newNotifier(cfg *config.Config, logger *slog.Logger) ports.Notifier {
	if cfg.Mail.Host == "" {
		return notifier.NewLog(logger, cfg.AppURL)
	}
	return notifier.NewSMTP(notifier.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		AppURL:   cfg.AppURL,
	})
}
