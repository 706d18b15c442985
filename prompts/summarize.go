package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func RegisterSummarizeTools(s *server.MCPServer) {
	prompt := mcp.NewPrompt("summarize_document",
		mcp.WithPromptDescription("Summarize a Slate rich-text document"),
		mcp.WithArgument("document", mcp.RequiredArgument(), mcp.ArgumentDescription("The Slate document JSON to summarize")),
		mcp.WithArgument("audience", mcp.ArgumentDescription("Who the summary is written for")),
	)
	s.AddPrompt(prompt, summarizeDocumentHandler)
}

func summarizeDocumentHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	document := request.Params.Arguments["document"]
	if document == "" {
		return nil, fmt.Errorf("document argument is required")
	}

	audience := request.Params.Arguments["audience"]
	if audience == "" {
		audience = "a general reader"
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Summary of a Slate document for %s", audience),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf("Use the slate_to_plaintext tool to convert the document below, then summarize it for %s in a few sentences.\n\n%s", audience, document),
				},
			},
		},
	}, nil
}
