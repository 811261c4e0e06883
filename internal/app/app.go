package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres/audit"
	messagerepo "github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres/message"
	streamrepo "github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres/stream"
	userrepo "github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres/user"
	usertopicrepo "github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres/usertopic"
	"github.com/heartmarshall/topicpolicy-backend/internal/auth"
	"github.com/heartmarshall/topicpolicy-backend/internal/config"
	"github.com/heartmarshall/topicpolicy-backend/internal/service/stream"
	"github.com/heartmarshall/topicpolicy-backend/internal/service/usertopic"
	"github.com/heartmarshall/topicpolicy-backend/internal/transport/middleware"
	"github.com/heartmarshall/topicpolicy-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and HTTP handlers, and serves
// until ctx is cancelled, then shuts the server down gracefully.
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

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	// Repositories
	streams := streamrepo.New(pool)
	overrides := usertopicrepo.New(pool)
	users := userrepo.New(pool)
	messages := messagerepo.New(pool)
	audit := auditrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services
	streamSvc := stream.NewService(logger, streams, overrides)
	userTopicSvc := usertopic.NewService(logger, users, streamSvc, overrides, messages, audit, txm, cfg.Policy)

	// Transport
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewUserTopicHandler(userTopicSvc, logger),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
		limiter.Limit(cfg.RateLimit.PerMinute),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
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
