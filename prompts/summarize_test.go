package prompts

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDocumentHandler(t *testing.T) {
	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"document": `{"document":{"nodes":[]}}`, "audience": "editors"}

	result, err := summarizeDocumentHandler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Messages, 1)

	assert.Equal(t, "Summary of a Slate document for editors", result.Description)
	assert.Equal(t, mcp.RoleUser, result.Messages[0].Role)

	content, ok := result.Messages[0].Content.(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, content.Text, "slate_to_plaintext")
	assert.Contains(t, content.Text, `{"document":{"nodes":[]}}`)
}

func TestSummarizeDocumentHandler_MissingDocument(t *testing.T) {
	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{}

	_, err := summarizeDocumentHandler(context.Background(), req)
	assert.Error(t, err)
}
