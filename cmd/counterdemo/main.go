package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/localrivet/counterdemo/internal/config"
	"github.com/localrivet/counterdemo/internal/counter"
	"github.com/localrivet/counterdemo/internal/identity"
	"github.com/localrivet/counterdemo/internal/logger"
	"github.com/localrivet/counterdemo/internal/server"
)

func main() {
	// Initialize logging first thing
	appLogger := setupLogging()

	info := identity.Default()
	appLogger.Info("%s MCP Server %s - Starting...", info.Name, info.Version)

	// Load configuration
	cfg, err := config.InitGlobal(config.DefaultConfigFilename)
	if err != nil {
		logger.LogError(err)
		appLogger.Fatal("Failed to load configuration")
	}

	// Configure logging based on config
	if cfg.Logging.Level != "" {
		appLogger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
		appLogger.Info("Log level set to %s", cfg.Logging.Level)
	}

	if cfg.Logging.Format == "json" {
		appLogger.SetFormat(logger.JSON)
		appLogger.Info("Log format set to JSON")
	}

	// Initialize the counter store; the counter always starts at 0 and is
	// lost on exit.
	store := counter.New()
	storeLogger := appLogger.WithContext("store")
	storeLogger.Info("Counter store initialized")

	// Initialize the MCP server
	srv := server.NewCounterToolServer(store, cfg.Server.Name)
	srvLogger := appLogger.WithContext("server")

	if err := srv.Initialize(); err != nil {
		err = logger.ConfigError(err, "Failed to initialize MCP server")
		logger.LogError(err)
		appLogger.Fatal("Failed to initialize MCP server")
	}
	srvLogger.Info("MCP server initialized")

	// Handle graceful shutdown
	setupSignalHandler(srv, appLogger)

	// Start the MCP server (this will block until the transport ends)
	srvLogger.Info("Starting MCP server...")
	if err := srv.Start(); err != nil {
		err = logger.ExternalError(err, "MCP server failed")
		logger.LogError(err)
		appLogger.Fatal("Failed to start MCP server")
	}
}

// setupLogging configures and returns the application logger
func setupLogging() *logger.Logger {
	config := logger.DefaultConfig()

	// Try to get log level from environment variable
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		config.Level = logger.ParseLevel(levelStr)
	}

	appLogger := logger.New(config)
	logger.SetDefaultLogger(appLogger)

	return appLogger
}

// setupSignalHandler sets up a signal handler for graceful shutdown.
func setupSignalHandler(srv server.CounterToolServer, log *logger.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Received shutdown signal, terminating gracefully...")

		if err := srv.Stop(); err != nil {
			err = logger.InternalError(err, "Error stopping server during shutdown")
			logger.LogError(err)
		}

		log.Info("Shutdown complete")
		os.Exit(0)
	}()
}
