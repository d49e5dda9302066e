package tool_datetime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatetimeTool(t *testing.T) {
	tool := Tool()
	assert.Equal(t, Name, tool.GetName())
	require.NotNil(t, tool.GetParameters())
}

func TestDatetimeExecute(t *testing.T) {
	fixed := time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)
	old := now
	now = func() time.Time { return fixed }
	defer func() { now = old }()

	resp, err := execute(context.Background(), &aisdk.ToolCall{})
	require.NoError(t, err)
	require.NotNil(t, resp)

	var out Output
	require.NoError(t, json.Unmarshal(resp.Content, &out))
	assert.Equal(t, "2026-08-31", out.Date)
	assert.Equal(t, "14:30:05", out.Time)
	assert.Equal(t, "Monday", out.Day)
	assert.Equal(t, "UTC", out.Timezone)
}
