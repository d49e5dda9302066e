package tool_datetime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/Praneeth-Gandodi/Tars/src/schema"
)

// Tool name constant
const Name = "get_datetime"

const datetimePrompt = `Get current date and time - NO PARAMETERS NEEDED
Always returns the local date, time, timezone, and weekday.`

// Output is the current local time broken into fields
type Output struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
	Day      string `json:"day"`
}

// Overridable for tests.
var now = time.Now

// Tool returns the get_datetime tool definition. Declared with an explicit
// empty schema because there is no input struct to reflect.
func Tool() agent.Tool {
	return &agent.FuncTool{
		Type: "function",
		Function: aisdk.ToolFunction{
			Name:        Name,
			Description: datetimePrompt,
			Parameters:  schema.CreateEmptyObjectSchema(),
		},
		Executor: execute,
	}
}

func execute(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
	t := now()
	tz, _ := t.Zone()
	if tz == "" {
		tz = "Local"
	}

	out := Output{
		Date:     t.Format("2006-01-02"),
		Time:     t.Format("15:04:05"),
		Timezone: tz,
		Day:      t.Format("Monday"),
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return &aisdk.ToolResponse{
		Type:    "text",
		Content: data,
	}, nil
}
