package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"social-client/client"
	"social-client/internal"
	"social-client/repositories"
	"social-client/runtime"
	"social-client/services"
	"social-client/ui"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Local storage (BadgerDB)
	opts := badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING)
	if config.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.WARNING)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Restore the session and build the store
	store := repositories.NewSessionRepository(db)
	validator := client.NewTokenValidator(log, config.BackendURL, config.RequestTimeout)
	bootstrapper := services.NewSessionBootstrapper(log, store, validator)

	initial, err := bootstrapper.InitializeState(ctx)
	if err != nil {
		return exitRuntime, err
	}

	controller := runtime.NewController(log, initial, bootstrapper)
	controller.Start(ctx)

	renderer := ui.NewRenderer(os.Stdout, config.Colours)
	controller.Subscribe(renderer)
	renderer.Notify(controller.State())

	// 5. Check the restored token in the background, torn down on exit
	cancelValidation, validationDone := bootstrapper.StartValidation(ctx, initial, controller)
	defer func() {
		cancelValidation()
		<-validationDone
	}()

	// 6. Command loop
	lines := make(chan string)
	go readLines(log, os.Stdin, lines)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" {
				return exitOK, nil
			}
			action, err := ui.ParseCommand(line)
			if err != nil {
				log.Warn("Ignoring command", "error", err)
				continue
			}
			controller.Dispatch(action)
		}
	}
}

func readLines(log *slog.Logger, r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		log.Error("Reading input failed", "error", err)
	}
}
