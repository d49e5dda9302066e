package tool_sysinfo

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSysinfoTool(t *testing.T) {
	tool := Tool()
	assert.Equal(t, Name, tool.GetName())
	require.NotNil(t, tool.GetParameters())
}

func TestSysinfoExecute(t *testing.T) {
	resp, err := execute(context.Background(), &aisdk.ToolCall{})
	require.NoError(t, err)
	require.NotNil(t, resp)

	var out Output
	require.NoError(t, json.Unmarshal(resp.Content, &out))
	assert.NotEmpty(t, out.OS)
	assert.Greater(t, out.CPUCores, 0)
}
