package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"finlens/internal/amqp"
	"finlens/internal/api"
	"finlens/internal/config"
	"finlens/internal/ledger"
	"finlens/internal/log"
	"finlens/internal/market"
	"finlens/internal/report"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.ComponentApp)
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, cleanup, err := ledger.NewSource(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize ledger source", "error", err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}

	// Report events are optional: without AMQP the composer only writes files.
	var events report.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		events = client
	}

	composer := report.NewComposer(report.Options{
		Source:          source,
		Rates:           market.NewRatesClient(),
		Stocks:          market.NewStocksClient(),
		Sink:            report.NewFileSink(cfg.ReportsDir),
		Events:          events,
		RatesAPIKey:     cfg.ExchangeRatesAPIKey,
		StocksAPIKey:    cfg.AlphaVantageAPIKey,
		SettingsPath:    cfg.UserSettingsPath,
		CashbackExclude: cfg.CashbackExclude,
	})

	apiServer := api.NewServer(composer, logger)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        apiServer.Handler(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting finlens server", "port", cfg.Port, log.FieldBackend, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
