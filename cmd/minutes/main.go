package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/flow"
	"github.com/nguyentantai21042004/meeting-flow/internal/llm"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/internal/processor"
	"github.com/nguyentantai21042004/meeting-flow/internal/server"
	"github.com/nguyentantai21042004/meeting-flow/internal/watcher"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Minutes Flow Service")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s (%d API keys)", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
	log.Info(ctx, "Max concurrent transcripts: %d", cfg.Performance.MaxConcurrent)

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	client := llm.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	flows := flow.New(client, log)
	proc := processor.New(cfg, flows, log)

	// Create watcher with the processor as handler
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Each loop reports back on its own channel so shutdown can wait
	// for it to finish draining.
	watcherDone := make(chan error, 1)
	go func() {
		watcherDone <- w.Start(ctx)
	}()

	// Stays nil when the API is disabled; a nil channel never fires.
	var serverDone chan error
	if cfg.Server.Enabled {
		srv := server.New(cfg.Server.Addr, flows, log)
		serverDone = make(chan error, 1)
		go func() {
			serverDone <- srv.Start(ctx)
		}()
		log.Info(ctx, "API listening on %s", cfg.Server.Addr)
		for _, desc := range flows.List() {
			log.Info(ctx, "  POST /api/v1/flows/%s - %s", desc.Name, desc.Description)
		}
	}

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	// Wait for shutdown signal or a failed loop
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-watcherDone:
		watcherDone = nil
		if err != nil && err != context.Canceled {
			log.Error(ctx, "Watcher error: %v", err)
		}
	case err := <-serverDone:
		serverDone = nil
		if err != nil && err != context.Canceled {
			log.Error(ctx, "Server error: %v", err)
		}
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	// Block until in-flight transcript processing has drained and the
	// server has finished its shutdown.
	if watcherDone != nil {
		if err := <-watcherDone; err != nil && err != context.Canceled {
			log.Error(ctx, "Watcher error: %v", err)
		}
	}
	if serverDone != nil {
		if err := <-serverDone; err != nil && err != context.Canceled {
			log.Error(ctx, "Server error: %v", err)
		}
	}

	log.Info(ctx, "Meeting Minutes Flow Service stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
