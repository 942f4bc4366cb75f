package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/microshop/services/internal/auditlog/sqlite"
	"github.com/microshop/services/internal/catalog"
	"github.com/microshop/services/internal/events/rabbitmq"
	"github.com/microshop/services/internal/order"
	"github.com/microshop/services/internal/pkg/cache"
	"github.com/microshop/services/internal/pkg/config"
	"github.com/microshop/services/internal/pkg/idempotency"
	"github.com/microshop/services/internal/pkg/telemetry"
	"github.com/microshop/services/internal/user"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadOrder()

	shutdown, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	deps := order.ServiceDeps{
		Users:    user.NewClient(cfg.UserServiceURL),
		Products: catalog.NewClient(cfg.ProductServiceURL),
		Store:    order.NewStore(),
	}

	if cfg.AuditDBPath != "" {
		repo, err := sqlite.Open(cfg.AuditDBPath)
		if err != nil {
			slog.Error("failed to open audit database", "path", cfg.AuditDBPath, "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		deps.Audit = repo
		slog.Info("audit trail enabled", "path", cfg.AuditDBPath)
	}

	if cfg.AMQPURL != "" {
		publisher, err := rabbitmq.New(cfg.AMQPURL)
		if err != nil {
			slog.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		deps.Events = publisher
		slog.Info("order event publishing enabled")
	}

	svc, err := order.NewService(deps)
	if err != nil {
		slog.Error("failed to build order service", "error", err)
		os.Exit(1)
	}

	var createMiddlewares []func(http.Handler) http.Handler
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr, "order")
		createMiddlewares = append(createMiddlewares, idempotency.New(redisCache).Handler)
		slog.Info("idempotent order creation enabled", "redis", cfg.RedisAddr)
	}

	router := order.NewRouter(order.NewHandler(svc), createMiddlewares...)
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: otelhttp.NewHandler(router, cfg.ServiceName),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("http shutdown error", "error", err)
		}
	}()

	slog.Info("order service running", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("failed to serve", "error", err)
		os.Exit(1)
	}
}
