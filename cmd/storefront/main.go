package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/stonique/storefront/internal/catalog/app"
	"github.com/stonique/storefront/internal/catalog/infra/fakestore"
	"github.com/stonique/storefront/internal/httpapi"
	"github.com/stonique/storefront/pkg/config"
	"github.com/stonique/storefront/pkg/kv"
	"github.com/stonique/storefront/pkg/logger"
	"github.com/stonique/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store := openStore(ctx, cfg, log)

	feed := fakestore.NewClient(cfg.FeedBaseURL, 10*time.Second)
	catalog := app.NewService(feed)

	sessions := httpapi.NewSessions(store)
	router := httpapi.NewRouter(catalog, sessions, cfg.ShippingFee, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

// openStore picks the Redis backend when configured and reachable, falling
// back to process memory otherwise.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) kv.Store {
	if cfg.RedisAddr == "" {
		return kv.NewMemoryStore()
	}

	rs := kv.NewRedisStore(cfg.RedisAddr)
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if !rs.Ping(pingCtx) {
		log.Warn("redis unreachable, using in-memory store", slog.String("addr", cfg.RedisAddr))
		return kv.NewMemoryStore()
	}

	log.Info("using redis store", slog.String("addr", cfg.RedisAddr))
	return rs
}
