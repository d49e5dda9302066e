package executor

import (
	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
)

// Callbacks holds optional hooks for observing a turn. Display concerns
// live behind these so the loop itself stays output-agnostic.
type Callbacks struct {
	// OnToolCall is called before executing a tool
	OnToolCall func(toolCall aisdk.ToolCall) error

	// OnToolResult is called after tool execution
	OnToolResult func(toolName string, result *aisdk.ToolResponse, err error) error

	// OnCompaction is called after the working transcript has been compacted
	OnCompaction func(summary string)
}

// ToolCall calls the OnToolCall callback if it's set
func (c *Callbacks) ToolCall(toolCall aisdk.ToolCall) error {
	if c == nil || c.OnToolCall == nil {
		return nil
	}
	return c.OnToolCall(toolCall)
}

// ToolResult calls the OnToolResult callback if it's set
func (c *Callbacks) ToolResult(toolName string, result *aisdk.ToolResponse, err error) error {
	if c == nil || c.OnToolResult == nil {
		return nil
	}
	return c.OnToolResult(toolName, result, err)
}

// Compaction calls the OnCompaction callback if it's set
func (c *Callbacks) Compaction(summary string) {
	if c == nil || c.OnCompaction == nil {
		return
	}
	c.OnCompaction(summary)
}
