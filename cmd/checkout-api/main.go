package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jcmexdev/ecommerce-checkout/internal/checkout"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/journal"
	"github.com/jcmexdev/ecommerce-checkout/internal/gateway/httpx"
	"github.com/jcmexdev/ecommerce-checkout/internal/pkg/cache"
	"github.com/jcmexdev/ecommerce-checkout/internal/pkg/telemetry"
	"github.com/jcmexdev/ecommerce-checkout/internal/store"
)

const serviceName = "checkout-api"

func main() {
	telemetry.InitLogger(serviceName, getEnv("LOG_LEVEL", "info"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, serviceName)
	if err != nil {
		slog.Error("failed to set up tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			slog.Error("tracer shutdown failed", "error", err)
		}
	}()

	repo := journal.NewMemoryRepository()

	st := store.New(checkout.NewService(repo))
	store.SeedDemo(st)

	var idemCache cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		idemCache = cache.NewRedisCache(addr, serviceName)
	}

	handler := httpx.NewHandler(st, repo, idemCache)

	srv := &http.Server{
		Addr:    getEnv("HTTP_ADDR", ":8080"),
		Handler: httpx.NewRouter(handler),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("checkout API running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
