package tarsagent

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/shirou/gopsutil/v3/host"
)

const basePrompt = `You are TARS, an AI assistant. Answer questions accurately and concisely. Do not add fictional scenarios or movie context.

**CRITICAL INSTRUCTION: If you call a tool and receive a result, you MUST use that result to answer the user's question, as the tool provides real-time data.**

Keep answers short and direct; your output is displayed on a command line interface. When a tool returns an error, tell the user what failed instead of inventing an answer.`

// getEnvironmentInfo returns the runtime context appended to the prompt so
// the model can answer questions about the local machine and date without a
// tool round trip.
func getEnvironmentInfo() string {
	return fmt.Sprintf(`# Environment
Today's date: %s
OS: %s
Architecture: %s`,
		time.Now().Format("2006-01-02"),
		getOSVersion(),
		runtime.GOARCH,
	)
}

// getOSVersion returns detailed OS version information
func getOSVersion() string {
	info, err := host.Info()
	if err == nil {
		if info.PlatformVersion != "" {
			return fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
		}
		return info.Platform
	}
	return runtime.GOOS
}

func formatToolsForPrompt(toolbox *agent.DefaultToolbox) string {
	if toolbox == nil || len(toolbox.Tools()) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("# Available tools\n")
	for _, tool := range toolbox.Tools() {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", tool.GetName(), firstLine(tool.GetDescription())))
	}
	return sb.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// GenerateSystemPrompt composes the persona, environment context, and tool
// inventory into the session system prompt.
func GenerateSystemPrompt(toolbox *agent.DefaultToolbox) string {
	sections := []string{basePrompt, getEnvironmentInfo()}
	if tools := formatToolsForPrompt(toolbox); tools != "" {
		sections = append(sections, tools)
	}
	return strings.Join(sections, "\n\n")
}
