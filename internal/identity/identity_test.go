package identity

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	info := Default()

	if info.Name == "" {
		t.Error("Expected non-empty implementation name")
	}
	if info.Version == "" {
		t.Error("Expected non-empty version")
	}
	if info.ProtocolVersion != ProtocolVersion {
		t.Errorf("ProtocolVersion = %q, want %q", info.ProtocolVersion, ProtocolVersion)
	}
	if !info.Capabilities.Tools {
		t.Error("Expected tools capability to be declared")
	}
}

func TestInstructionsNameAllTools(t *testing.T) {
	info := Default()

	for _, name := range []string{"increment", "decrement", "get_counter"} {
		if !strings.Contains(info.Instructions, name) {
			t.Errorf("Instructions do not mention the %q tool", name)
		}
	}
}

func TestDefaultIsStable(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different identities across calls")
	}
}
