package tools

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/athapong/slatetext/util"
)

type toolGroup struct {
	name string
	desc string
}

// toolGroups are the names accepted by ENABLE_TOOLS
var toolGroups = []toolGroup{
	{"tool_manager", "Tool management"},
	{"slate", "Slate document to plain text and previews"},
	{"compare", "Plain-text diff of two Slate documents"},
	{"fetch", "Slate documents fetched over HTTP"},
}

// RegisterToolManagerTool registers the tool_manager tool to the server
func RegisterToolManagerTool(s *server.MCPServer) {
	tool := mcp.NewTool("tool_manager",
		mcp.WithDescription("Manage MCP tools - list, enable or disable tool groups"),
		mcp.WithString("action", mcp.Required(), mcp.Description("Action to perform: list, enable, disable")),
		mcp.WithString("tool_name", mcp.Description("Tool group to enable/disable")),
	)

	s.AddTool(tool, util.ErrorGuard(toolManagerHandler))
}

func toolManagerHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments
	action, ok := arguments["action"].(string)
	if !ok {
		return mcp.NewToolResultError("action must be a string"), nil
	}

	// Read live so enable/disable calls show up in later listings.
	cfg := util.LoadConfig()
	toolList := cfg.EnableTools

	switch action {
	case "list":
		var response strings.Builder
		response.WriteString("Available tools:\n")
		for _, t := range toolGroups {
			status := "disabled"
			if cfg.ToolEnabled(t.name) {
				status = "enabled"
			}
			response.WriteString(fmt.Sprintf("- %s (%s) [%s]\n", t.name, t.desc, status))
		}
		response.WriteString("\nCurrently enabled tools:\n")
		if len(toolList) == 0 {
			response.WriteString("All tools are enabled (ENABLE_TOOLS is empty)\n")
		} else {
			for _, name := range toolList {
				response.WriteString(fmt.Sprintf("- %s\n", name))
			}
		}
		response.WriteString("\nChanges apply to tool registration on the next server start.\n")
		return mcp.NewToolResultText(response.String()), nil

	case "enable", "disable":
		toolName, ok := arguments["tool_name"].(string)
		if !ok || toolName == "" {
			return mcp.NewToolResultError("tool_name is required for enable/disable actions"), nil
		}
		if !knownToolGroup(toolName) {
			return mcp.NewToolResultError(fmt.Sprintf("unknown tool: %s", toolName)), nil
		}

		if action == "enable" {
			if len(toolList) == 0 {
				return mcp.NewToolResultText(fmt.Sprintf("Tool %s is already enabled (ENABLE_TOOLS is empty)", toolName)), nil
			}
			if !slices.Contains(toolList, toolName) {
				toolList = append(toolList, toolName)
			}
		} else {
			if len(toolList) == 0 {
				// everything was enabled; disabling one means listing the rest
				for _, t := range toolGroups {
					toolList = append(toolList, t.name)
				}
			}
			toolList = slices.DeleteFunc(toolList, func(name string) bool { return name == toolName })
			if len(toolList) == 0 {
				return mcp.NewToolResultError("at least one tool must stay enabled"), nil
			}
		}

		if err := os.Setenv("ENABLE_TOOLS", strings.Join(toolList, ",")); err != nil {
			return nil, fmt.Errorf("failed to update ENABLE_TOOLS: %w", err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("Successfully %sd tool: %s", action, toolName)), nil

	default:
		return mcp.NewToolResultError("Invalid action. Use 'list', 'enable', or 'disable'"), nil
	}
}

func knownToolGroup(name string) bool {
	return slices.ContainsFunc(toolGroups, func(t toolGroup) bool { return t.name == name })
}
