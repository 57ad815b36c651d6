package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"reline-bot/line"
	"reline-bot/observability"
	"reline-bot/repositories"
	"reline-bot/runtime"
	"reline-bot/server"
	"reline-bot/services"
	"reline-bot/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so every
// defer (database cleanup included) executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Platform adapter & repositories
	adapter, err := line.NewSDKAdapter(config.ChannelSecret, config.ChannelToken)
	if err != nil {
		return fmt.Errorf("LINE client setup failed: %w", err)
	}
	conversationRepository := repositories.NewConversationRepository(db, log)
	contentRepository := repositories.NewContentRepository(db, log)

	// 4. Services
	metrics := observability.NewMetrics()
	errorSink := sink.NewErrorSink(log, adapter, config.AdminTargetID, config.NotifyBuffer)
	counter := services.NewMemberCounter(adapter, log, metrics, config.MemberCountTTL)
	sampler := services.NewContentSampler(contentRepository, metrics, config.ContentTTL)
	lifecycle := services.NewConversationService(conversationRepository, adapter, log)
	commands := services.NewCommandService(adapter, lifecycle, log)
	direct := services.NewDirectMessageService(adapter, sampler, log)
	processor := services.NewEventProcessor(
		log, counter, lifecycle, commands, direct,
		conversationRepository, metrics, errorSink,
		config.BatchTimeout, config.DedupeCapacity,
	)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Background workers
	supervisor := runtime.NewSupervisor(log).Add(errorSink)
	go supervisor.Run(ctx)

	// 7. HTTP server
	router := server.NewRouter(log, adapter, processor, metrics)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: router}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting webhook server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("webhook server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	supervisor.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
