package tool_sysinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/Praneeth-Gandodi/Tars/src/schema"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Tool name constant
const Name = "get_system_info"

const sysinfoPrompt = `Get information about the local machine - NO PARAMETERS NEEDED
Returns hostname, OS, uptime, CPU model and core count, and memory usage.`

// Output is a snapshot of the local machine
type Output struct {
	Hostname      string  `json:"hostname"`
	OS            string  `json:"os"`
	Platform      string  `json:"platform"`
	UptimeHours   float64 `json:"uptime_hours"`
	CPUModel      string  `json:"cpu_model,omitempty"`
	CPUCores      int     `json:"cpu_cores"`
	MemoryTotalMB uint64  `json:"memory_total_mb"`
	MemoryUsedMB  uint64  `json:"memory_used_mb"`
	MemoryPercent float64 `json:"memory_percent"`
}

// Tool returns the get_system_info tool definition
func Tool() agent.Tool {
	return &agent.FuncTool{
		Type: "function",
		Function: aisdk.ToolFunction{
			Name:        Name,
			Description: sysinfoPrompt,
			Parameters:  schema.CreateEmptyObjectSchema(),
		},
		Executor: execute,
	}
}

func execute(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
	out := Output{
		OS:       runtime.GOOS,
		CPUCores: runtime.NumCPU(),
	}

	if info, err := host.InfoWithContext(ctx); err == nil {
		out.Hostname = info.Hostname
		out.Platform = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
		out.UptimeHours = float64(info.Uptime) / 3600
	}

	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		out.CPUModel = cpus[0].ModelName
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		out.MemoryTotalMB = vm.Total / (1024 * 1024)
		out.MemoryUsedMB = vm.Used / (1024 * 1024)
		out.MemoryPercent = vm.UsedPercent
	}

	// Uptime rounded so the model does not quote a dozen decimal places.
	out.UptimeHours = float64(int(out.UptimeHours*10)) / 10

	data, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return &aisdk.ToolResponse{Type: "text", Content: data}, nil
}
