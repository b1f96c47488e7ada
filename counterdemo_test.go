package counterdemo

import (
	"testing"

	"github.com/localrivet/counterdemo/internal/errortypes"
	"github.com/localrivet/counterdemo/internal/tools"
)

func newTestService(t *testing.T) *Server {
	t.Helper()

	srv, err := NewServer(ServerOptions{Config: DefaultConfig()})
	if err != nil {
		t.Fatalf("NewServer returned error: %v", err)
	}
	return srv
}

func TestDirectCounterAPI(t *testing.T) {
	srv := newTestService(t)

	if got := srv.GetCounter(); got != 0 {
		t.Errorf("GetCounter() on fresh server = %d, want 0", got)
	}

	if got := srv.Increment(); got != 1 {
		t.Errorf("Increment() = %d, want 1", got)
	}
	if got := srv.Increment(); got != 2 {
		t.Errorf("Increment() = %d, want 2", got)
	}
	if got := srv.Decrement(); got != 1 {
		t.Errorf("Decrement() = %d, want 1", got)
	}
	if got := srv.GetCounter(); got != 1 {
		t.Errorf("GetCounter() = %d, want 1", got)
	}
}

func TestCallTool(t *testing.T) {
	srv := newTestService(t)

	result, err := srv.CallTool(tools.ToolIncrement)
	if err != nil {
		t.Fatalf("CallTool returned error: %v", err)
	}
	if result != "1" {
		t.Errorf("CallTool(increment) = %q, want %q", result, "1")
	}

	result, err = srv.CallTool(tools.ToolGetCounter)
	if err != nil {
		t.Fatalf("CallTool returned error: %v", err)
	}
	if result != "1" {
		t.Errorf("CallTool(get_counter) = %q, want %q", result, "1")
	}
}

func TestCallToolUnknownName(t *testing.T) {
	srv := newTestService(t)
	srv.Increment()

	_, err := srv.CallTool("reset")
	if err == nil {
		t.Fatal("Expected an error for an unknown tool name")
	}
	if !errortypes.IsNotFoundError(err) {
		t.Errorf("Expected a not-found error, got %v", err)
	}

	if got := srv.GetCounter(); got != 1 {
		t.Errorf("Counter changed by failed call: %d, want 1", got)
	}
}

func TestGetInfo(t *testing.T) {
	srv := newTestService(t)

	info := srv.GetInfo()
	if info.Name == "" || info.ProtocolVersion == "" {
		t.Errorf("Incomplete server identity: %+v", info)
	}
	if !info.Capabilities.Tools {
		t.Error("Expected tools capability to be declared")
	}
}

func TestGetMetrics(t *testing.T) {
	srv := newTestService(t)

	srv.CallTool(tools.ToolIncrement)

	if srv.GetMetrics() == nil {
		t.Fatal("Expected a non-nil metrics collector")
	}
}
