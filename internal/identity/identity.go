// Package identity holds the static server identification reported to MCP
// clients during the initialize handshake: implementation name and version,
// protocol version, capability flags, and the usage instructions string.
package identity

import (
	"runtime/debug"
	"sync"
)

const (
	// Name is the implementation name reported to clients.
	Name = "counterdemo"

	// Version is the release version, used when build metadata is
	// unavailable.
	Version = "0.1.0"

	// ProtocolVersion is the MCP protocol revision this server targets.
	ProtocolVersion = "2025-03-26"

	// Instructions is the human-readable usage string for clients.
	Instructions = "This server provides counter tools that can increment, decrement, " +
		"and retrieve the current value of a counter. Use the 'increment', " +
		"'decrement', and 'get_counter' tools to interact with the counter."
)

// Capabilities declares which MCP features the server supports.
type Capabilities struct {
	Tools bool `json:"tools"`
}

// Info is the process-wide server identity. It is computed once at first
// use and never changes.
type Info struct {
	Name            string       `json:"name"`
	Version         string       `json:"version"`
	ProtocolVersion string       `json:"protocol_version"`
	Instructions    string       `json:"instructions"`
	Capabilities    Capabilities `json:"capabilities"`
}

var (
	once sync.Once
	info Info
)

// Default returns the server identity, preferring the module version from
// build metadata over the compiled-in release constant.
func Default() Info {
	once.Do(func() {
		version := Version
		if bi, ok := debug.ReadBuildInfo(); ok {
			if v := bi.Main.Version; v != "" && v != "(devel)" {
				version = v
			}
		}

		info = Info{
			Name:            Name,
			Version:         version,
			ProtocolVersion: ProtocolVersion,
			Instructions:    Instructions,
			Capabilities:    Capabilities{Tools: true},
		}
	})
	return info
}
