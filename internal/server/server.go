// Package server provides the MCP server implementation for the counterdemo
// service.
package server

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/localrivet/gomcp/server"

	"github.com/localrivet/counterdemo/internal/counter"
	"github.com/localrivet/counterdemo/internal/errortypes"
	"github.com/localrivet/counterdemo/internal/identity"
	"github.com/localrivet/counterdemo/internal/telemetry"
	"github.com/localrivet/counterdemo/internal/tools"
)

// ErrUnknownTool is returned by Dispatch for invocations naming a tool
// outside the registered set. It surfaces to MCP clients as a
// method-not-found error; the serving loop stays up.
var ErrUnknownTool = errors.New("unknown tool")

// MCPCounterToolServer implements the CounterToolServer interface for
// handling MCP tool calls against the shared counter store.
type MCPCounterToolServer struct {
	store     *counter.Store
	name      string
	metrics   *telemetry.MetricsCollector
	mcpServer *server.Server
}

var _ CounterToolServer = (*MCPCounterToolServer)(nil)

// NewCounterToolServer creates a new MCPCounterToolServer instance. An
// empty name falls back to the default server identity.
func NewCounterToolServer(store *counter.Store, name string) *MCPCounterToolServer {
	if name == "" {
		name = identity.Default().Name
	}
	return &MCPCounterToolServer{
		store:   store,
		name:    name,
		metrics: telemetry.NewMetricsCollector(),
	}
}

// Initialize initializes the server and registers the counter tools.
func (s *MCPCounterToolServer) Initialize() error {
	info := identity.Default()
	slog.Info("Initializing MCP Counter Tool Server",
		"name", s.name,
		"version", info.Version,
		"protocol_version", info.ProtocolVersion)

	if s.store == nil {
		return errortypes.ConfigError(errors.New("missing counter store"), "server initialization failed")
	}

	// Create the MCP server
	srv := server.NewServer(s.name)

	// Register the three counter tools from the static table
	srv = srv.Tool(tools.ToolIncrement, tools.DescIncrement,
		s.handleIncrement)
	srv = srv.Tool(tools.ToolDecrement, tools.DescDecrement,
		s.handleDecrement)
	srv = srv.Tool(tools.ToolGetCounter, tools.DescGetCounter,
		s.handleGetCounter)

	s.mcpServer = srv
	slog.Info("MCP Counter Tool Server initialized successfully", "tool_count", len(tools.Descriptors()))
	return nil
}

// Start starts the MCP server on the stdio transport. It blocks until the
// transport reaches end-of-stream and returns an error only if the
// transport itself fails.
func (s *MCPCounterToolServer) Start() error {
	if s.mcpServer == nil {
		return errortypes.ConfigError(errors.New("server not initialized"), "cannot start server")
	}

	slog.Info("Starting MCP Counter Tool Server")
	s.metrics.RecordTimestamp(telemetry.MetricServerStart)

	// Start the server using stdio transport
	stdioServer := s.mcpServer.AsStdio()
	return stdioServer.Run()
}

// Stop gracefully shuts down the MCP server.
func (s *MCPCounterToolServer) Stop() error {
	slog.Info("Stopping MCP Counter Tool Server")
	slog.Debug("Final metrics", "report", s.metrics.GetReport())
	// The server will exit when stdin is closed
	return nil
}

// Metrics returns the collector tracking tool-call activity.
func (s *MCPCounterToolServer) Metrics() *telemetry.MetricsCollector {
	return s.metrics
}

// Dispatch routes a tool invocation by name to the counter store and
// formats the resulting value as a decimal string. Every error is recovered
// here and converted to a structured response for that call only; no error
// affects subsequent calls.
func (s *MCPCounterToolServer) Dispatch(name string) (string, error) {
	start := time.Now()

	var value int64
	switch name {
	case tools.ToolIncrement:
		value = s.store.Increment()
		s.metrics.IncrementCounter(telemetry.MetricCallsIncrement, 1)
	case tools.ToolDecrement:
		value = s.store.Decrement()
		s.metrics.IncrementCounter(telemetry.MetricCallsDecrement, 1)
	case tools.ToolGetCounter:
		value = s.store.Value()
		s.metrics.IncrementCounter(telemetry.MetricCallsGetCounter, 1)
	default:
		s.metrics.IncrementCounter(telemetry.MetricCallsUnknown, 1)
		s.metrics.IncrementCounter(telemetry.MetricCallsFailure, 1)

		err := errortypes.NotFoundError(ErrUnknownTool, "no tool registered with name "+name).
			WithField("tool", name)
		errortypes.LogError(nil, err)

		resp := ErrorResponseFor(err)
		slog.Debug("Dispatch rejected", "code", resp.Code, "message", resp.Message)
		return "", err
	}

	s.metrics.IncrementCounter(telemetry.MetricCallsSuccess, 1)
	s.metrics.RecordTimer(telemetry.MetricDispatchTime, time.Since(start))
	s.metrics.SetGauge(telemetry.MetricCounterValue, float64(value))

	return strconv.FormatInt(value, 10), nil
}

// handleIncrement handles the increment MCP tool call.
func (s *MCPCounterToolServer) handleIncrement(ctx *server.Context, req tools.IncrementRequest) (string, error) {
	slog.Debug("Processing increment request")
	return s.Dispatch(tools.ToolIncrement)
}

// handleDecrement handles the decrement MCP tool call.
func (s *MCPCounterToolServer) handleDecrement(ctx *server.Context, req tools.DecrementRequest) (string, error) {
	slog.Debug("Processing decrement request")
	return s.Dispatch(tools.ToolDecrement)
}

// handleGetCounter handles the get_counter MCP tool call.
func (s *MCPCounterToolServer) handleGetCounter(ctx *server.Context, req tools.GetCounterRequest) (string, error) {
	slog.Debug("Processing get_counter request")
	return s.Dispatch(tools.ToolGetCounter)
}
