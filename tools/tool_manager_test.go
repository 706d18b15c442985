package tools

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolManagerHandler(t *testing.T) {
	t.Setenv("ENABLE_TOOLS", "")

	text, isError := callTool(t, toolManagerHandler, map[string]interface{}{"action": "list"})
	require.False(t, isError)
	assert.Contains(t, text, "- slate (Slate document to plain text and previews) [enabled]")
	assert.Contains(t, text, "All tools are enabled")

	text, isError = callTool(t, toolManagerHandler, map[string]interface{}{"action": "disable", "tool_name": "compare"})
	require.False(t, isError)
	assert.Equal(t, "Successfully disabled tool: compare", text)
	assert.Equal(t, "tool_manager,slate,fetch", os.Getenv("ENABLE_TOOLS"))

	text, _ = callTool(t, toolManagerHandler, map[string]interface{}{"action": "list"})
	assert.Contains(t, text, "- compare (Plain-text diff of two Slate documents) [disabled]")

	_, isError = callTool(t, toolManagerHandler, map[string]interface{}{"action": "enable", "tool_name": "compare"})
	require.False(t, isError)
	assert.Equal(t, "tool_manager,slate,fetch,compare", os.Getenv("ENABLE_TOOLS"))

	_, isError = callTool(t, toolManagerHandler, map[string]interface{}{"action": "enable", "tool_name": "gitlab"})
	assert.True(t, isError)

	_, isError = callTool(t, toolManagerHandler, map[string]interface{}{"action": "restart"})
	assert.True(t, isError)
}

func TestToolManagerHandler_EnableWhenAllEnabled(t *testing.T) {
	t.Setenv("ENABLE_TOOLS", "")

	text, isError := callTool(t, toolManagerHandler, map[string]interface{}{"action": "enable", "tool_name": "slate"})
	require.False(t, isError)
	assert.Contains(t, text, "already enabled")
	assert.Empty(t, os.Getenv("ENABLE_TOOLS"))

	text, _ = callTool(t, toolManagerHandler, map[string]interface{}{"action": "list"})
	for _, group := range toolGroups {
		assert.Contains(t, text, "- "+group.name+" ("+group.desc+") [enabled]")
	}
	assert.NotContains(t, text, "[disabled]")
}
