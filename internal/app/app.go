package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	cardrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/card"
	folderrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/folder"
	sessionrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/session"
	userrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/user"
	authtoken "github.com/heartmarshall/flashdeck-backend/internal/auth"
	"github.com/heartmarshall/flashdeck-backend/internal/config"
	authsvc "github.com/heartmarshall/flashdeck-backend/internal/service/auth"
	"github.com/heartmarshall/flashdeck-backend/internal/service/deck"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and HTTP handlers, and serves
// the API until SIGINT or SIGTERM triggers a graceful shutdown.
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

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	logger.Info("database connection established")

	users := userrepo.New(pool)
	folders := folderrepo.New(pool)
	cards := cardrepo.New(pool)
	sessions := sessionrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := authtoken.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, sessions, txManager, jwtManager, cfg.Auth)
	deckService := deck.NewService(logger, folders, cards, txManager)

	router := rest.NewRouter(&rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService, cfg.Auth, logger),
		Folders: rest.NewFolderHandler(deckService, logger),
		Cards:   rest.NewCardHandler(deckService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Version: Version,
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}

	mws = append(mws, middleware.Auth(authService, cfg.Auth.SessionCookie))

	handler := middleware.Chain(mws...)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-stop:
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	if limiter != nil {
		limiter.Stop()
	}

	logger.Info("server stopped")
	return nil
}
