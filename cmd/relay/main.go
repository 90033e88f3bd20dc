package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"line-relay/api/relay"
	"line-relay/infrastructure/grpc/server"
	"line-relay/infrastructure/storage"
	"line-relay/internal"
	"line-relay/runtime"
	"line-relay/runtime/workers"
	"line-relay/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	grpc3 "github.com/mama165/sdk-go/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal error.
// Returning instead of exiting lets the deferred database close run.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return exitConfig, err
	}
	retention, err := config.Retention()
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		url := fmt.Sprintf("http://localhost:%d%s?prefix=%s", config.DebugPort, endpoint, "line:")
		logger.Info("Debug Badger inspector available", "url", url)
		database.StartDebugServer(db, config.DebugPort, endpoint, RelayMapper)
	}

	// 3. Relay
	presence := runtime.NewPresence()
	pairingRepository := storage.NewPairingRepository(db, logger, retention)
	mailboxRepository := storage.NewMailboxRepository(db, logger, retention, config.LimitMailbox)
	core := runtime.NewCore(logger, presence, pairingRepository, mailboxRepository, config.Profile())
	relayService := services.NewRelayService(logger, core, runtime.NewRegistry(),
		config.DeliveryTimeout, config.MaxContentLength, config.KeepSeatOnDisconnect)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	// 5. Background workers
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewValueLogGCWorker(db, logger, config.GCInterval, config.GCDiscardRatio),
		workers.NewStatsWorker(logger, presence, config.StatsInterval),
	)
	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		sup.Run(ctx)
	}()

	// 6. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(logger)))
	relay.RegisterRelayServiceServer(s, server.NewRelayServer(logger, relayService, config.ConnectionBufferSize))

	go func() {
		logger.Info("Starting gRPC server",
			"address", address,
			"retention", retention.String(),
			"at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		sup.Stop()
		<-supervisorDone
		return exitRuntime, err
	}

	// 8. Graceful Shutdown
	// Streams still open after the grace period are canceled, each releasing its seats.
	logger.Info("Shutting down gracefully...")
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(config.ShutdownTimeout):
		logger.Warn("Grace period over, closing remaining streams")
		s.Stop()
	}
	sup.Stop()
	<-supervisorDone
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// RelayMapper feeds the debug inspector. Keys and details never show raw tokens.
func RelayMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	row.Key = storage.RedactKey(key)
	row.Type, row.Detail = storage.Describe(key, val)
	return row
}
