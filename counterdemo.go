package counterdemo

import (
	"log/slog"

	"github.com/localrivet/counterdemo/internal/config"
	"github.com/localrivet/counterdemo/internal/counter"
	"github.com/localrivet/counterdemo/internal/errortypes"
	"github.com/localrivet/counterdemo/internal/identity"
	"github.com/localrivet/counterdemo/internal/server"
	"github.com/localrivet/counterdemo/internal/telemetry"
)

// Config represents the configuration for the counterdemo service.
type Config = config.Config

// Info is the static server identity reported to MCP clients.
type Info = identity.Info

// Server represents the counterdemo service.
type Server struct {
	config     *config.Config
	store      *counter.Store
	toolServer *server.MCPCounterToolServer
	logger     *slog.Logger // Logger for this Server instance
}

// ServerOptions defines the options for creating a new Server.
type ServerOptions struct {
	Config     *Config      // Pre-filled config. If nil, ConfigPath is used.
	ConfigPath string       // Path to config file. Used if Config is nil. If both are empty, DefaultConfig() is used.
	Logger     *slog.Logger // External logger. If nil, slog.Default() is used.
}

// NewServer creates a new counterdemo Server with the given options.
// If opts.Config is provided, it will be used directly.
// Otherwise, if opts.ConfigPath is provided, configuration will be loaded from that path.
// If neither is provided, DefaultConfig() will be used.
// If opts.Logger is nil, slog.Default() will be used.
func NewServer(opts ServerOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg *Config
	var err error

	if opts.Config != nil {
		cfg = opts.Config
	} else if opts.ConfigPath != "" {
		logger.Info("Loading configuration for server initialization", "path", opts.ConfigPath)
		cfg, err = config.LoadConfigWithPath(opts.ConfigPath)
		if err != nil {
			logger.Error("Failed to load configuration from path", "path", opts.ConfigPath, "error", err)
			return nil, errortypes.ConfigError(err, "Failed to load configuration from path: "+opts.ConfigPath)
		}
	} else {
		cfg = DefaultConfig()
	}

	store, err := CreateComponents(cfg, logger)
	if err != nil {
		logger.Error("Failed to create components during server initialization", "error", err)
		return nil, err
	}

	logger.Info("Initializing counter tool server component")
	toolServer := server.NewCounterToolServer(store, cfg.Server.Name)
	if err := toolServer.Initialize(); err != nil {
		logger.Error("Failed to initialize MCP counter tool server component", "error", err)
		return nil, errortypes.ConfigError(err, "Failed to initialize MCP counter tool server component")
	}

	logger.Info("counterdemo server successfully initialized")
	return &Server{
		config:     cfg,
		store:      store,
		toolServer: toolServer,
		logger:     logger,
	}, nil
}

// DefaultConfig returns the default configuration for the counterdemo service.
func DefaultConfig() *Config {
	return config.NewConfig()
}

// Start starts the counterdemo service on the stdio transport. It blocks
// until the transport ends.
func (s *Server) Start() error {
	s.logger.Info("Starting counterdemo service")
	return s.toolServer.Start()
}

// Stop stops the counterdemo service.
func (s *Server) Stop() error {
	s.logger.Info("Stopping counterdemo service")
	if err := s.toolServer.Stop(); err != nil {
		s.logger.Error("Error stopping tool server", "error", err)
		return err
	}

	s.logger.Info("counterdemo service stopped")
	return nil
}

// CallTool invokes a tool by name through the same dispatch path the MCP
// transport uses, returning the decimal string result. Unknown names
// return a not-found error.
func (s *Server) CallTool(name string) (string, error) {
	return s.toolServer.Dispatch(name)
}

// Increment adds 1 to the counter and returns the new value.
func (s *Server) Increment() int64 {
	value := s.store.Increment()
	s.logger.Debug("Incremented counter", "value", value)
	return value
}

// Decrement subtracts 1 from the counter and returns the new value.
func (s *Server) Decrement() int64 {
	value := s.store.Decrement()
	s.logger.Debug("Decremented counter", "value", value)
	return value
}

// GetCounter returns the current counter value.
func (s *Server) GetCounter() int64 {
	return s.store.Value()
}

// GetStore returns the counter store instance used by the server.
func (s *Server) GetStore() *counter.Store {
	return s.store
}

// GetInfo returns the static server identity.
func (s *Server) GetInfo() Info {
	return identity.Default()
}

// GetMetrics returns the metrics collector tracking tool-call activity.
func (s *Server) GetMetrics() *telemetry.MetricsCollector {
	return s.toolServer.Metrics()
}

// CreateComponents creates and initializes the components of the
// counterdemo service without creating a server instance. This is useful
// for hosts that embed the counter tools in their own MCP server.
func CreateComponents(cfg *Config, logger *slog.Logger) (*counter.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg == nil {
		logger.Warn("CreateComponents called with nil config, using defaults")
		cfg = DefaultConfig()
	}

	// The counter is purely in-memory and always starts at 0.
	logger.Info("Initializing counter store")
	return counter.New(), nil
}
