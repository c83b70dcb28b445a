package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vokinneberg/ctbto-agent/internal/agent"
	"github.com/vokinneberg/ctbto-agent/internal/config"
	"github.com/vokinneberg/ctbto-agent/internal/llm"

	httphandler "github.com/vokinneberg/ctbto-agent/internal/http"
)

func main() {
	// Load .env.local / .env if present
	if err := config.LoadEnvFiles(); err != nil {
		slog.Error("Failed to load env files", "error", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.LoadConfig("server", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	// Load agent profile
	profile, err := agent.LoadProfile(cfg.ProfilePath)
	if err != nil {
		slog.Error("Failed to load agent profile", "error", err, "path", cfg.ProfilePath)
		os.Exit(1)
	}
	slog.Info("Loaded agent profile", "model", profile.Model, "temperature", profile.Temperature, "keywords", len(profile.Keywords))

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	slog.Info("Initialized OpenAI client")

	// Initialize query processor
	processor := agent.NewProcessor(llmClient, profile, logger)

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(processor)

	// Create router
	r := httphandler.NewRouter(handler, cfg.RequestTimeout)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
