package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fsanano/rest-client/internal/config"
	"fsanano/rest-client/internal/handler"
	"fsanano/rest-client/internal/httpclient"
	"fsanano/rest-client/internal/logger"
	"fsanano/rest-client/internal/service/backend"
	"fsanano/rest-client/internal/service/naver"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg := logger.New(cfg.LogLevel)
	defer logg.Sync()

	// 2. Setup Logic
	transport := httpclient.NewRestyClient(httpclient.Config{Timeout: cfg.HTTPTimeout}, logg)

	backendClient := backend.NewClient(backend.Config{
		Origin:       cfg.Backend.Origin,
		ExchangePath: cfg.Backend.ExchangePath,
	}, transport, logg)

	naverClient := naver.NewClient(naver.Config{
		APIURL:       cfg.Naver.APIURL,
		ClientID:     cfg.Naver.ClientID,
		ClientSecret: cfg.Naver.ClientSecret,
		Display:      cfg.Naver.Display,
	}, transport, logg)

	h := handler.NewHandler(backendClient, naverClient, logg)

	// 3. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 4. Run Server with Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logg.Info("starting server", zap.String("port", cfg.ServerPort), zap.String("backend", cfg.Backend.Origin))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logg.Info("shutting down server")

		// Create a deadline to wait for.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logg.Fatal("server failed", zap.Error(err))
	}

	logg.Info("server exiting")
}
