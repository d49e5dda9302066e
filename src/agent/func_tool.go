package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	jsonschema "github.com/swaggest/jsonschema-go"
)

// FuncTool is a tool declared with an explicit parameter schema and a plain
// executor function. Used for tools whose schema is hand written rather than
// reflected from an input struct.
type FuncTool struct {
	Type     string             `json:"type"` // Always "function" for function tools
	Function aisdk.ToolFunction `json:"function"`
	Executor aisdk.ToolExecutor `json:"-"`
}

// GetType returns the tool type
func (t *FuncTool) GetType() string {
	return t.Type
}

// GetName returns the tool's name
func (t *FuncTool) GetName() string {
	return t.Function.Name
}

// GetDescription returns the tool's description
func (t *FuncTool) GetDescription() string {
	return t.Function.Description
}

// GetParameters returns the tool's parameter schema
func (t *FuncTool) GetParameters() *jsonschema.Schema {
	return t.Function.Parameters
}

// Execute runs the tool
func (t *FuncTool) Execute(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
	if t.Executor == nil {
		return nil, fmt.Errorf("tool %s has no executor", t.GetName())
	}
	return t.Executor(ctx, call)
}

// MarshalJSON implements custom JSON marshaling
func (t *FuncTool) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string             `json:"type"`
		Function aisdk.ToolFunction `json:"function"`
	}{
		Type:     t.Type,
		Function: t.Function,
	})
}

// Ensure FuncTool implements the Tool interface
var _ Tool = (*FuncTool)(nil)
