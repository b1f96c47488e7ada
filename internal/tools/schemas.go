// Package tools defines the tool names, request schemas, and the static
// registration table for the counterdemo service.
package tools

const (
	// ToolIncrement is the name of the increment MCP tool
	ToolIncrement = "increment"

	// ToolDecrement is the name of the decrement MCP tool
	ToolDecrement = "decrement"

	// ToolGetCounter is the name of the get_counter MCP tool
	ToolGetCounter = "get_counter"
)

// Tool descriptions shown to MCP clients during discovery.
const (
	DescIncrement  = "Add 1 to the shared counter and return the new value"
	DescDecrement  = "Subtract 1 from the shared counter and return the new value"
	DescGetCounter = "Return the current value of the shared counter without changing it"
)

// IncrementRequest defines the input schema for the increment tool.
// The tool takes no parameters; any supplied arguments are ignored.
type IncrementRequest struct{}

// DecrementRequest defines the input schema for the decrement tool.
// The tool takes no parameters; any supplied arguments are ignored.
type DecrementRequest struct{}

// GetCounterRequest defines the input schema for the get_counter tool.
// The tool takes no parameters; any supplied arguments are ignored.
type GetCounterRequest struct{}

// Descriptor describes one registered tool for discovery.
type Descriptor struct {
	// Name is the unique tool name clients invoke.
	Name string `json:"name"`

	// Description is the human-readable description of the tool.
	Description string `json:"description"`
}

// Descriptors returns the fixed registration table for the service. The
// list is static: exactly these three tools, in registration order.
func Descriptors() []Descriptor {
	return []Descriptor{
		{Name: ToolIncrement, Description: DescIncrement},
		{Name: ToolDecrement, Description: DescDecrement},
		{Name: ToolGetCounter, Description: DescGetCounter},
	}
}
