package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/athapong/slatetext/util"
)

// RegisterCompareTool registers the Slate document comparison tool to the server
func RegisterCompareTool(s *server.MCPServer) {
	compareTool := mcp.NewTool("slate_compare",
		mcp.WithDescription("Compare the plain text of two Slate documents, e.g. two revisions of an article"),
		mcp.WithString("source", mcp.Required(), mcp.Description("Source Slate document JSON")),
		mcp.WithString("target", mcp.Required(), mcp.Description("Target Slate document JSON")),
		mcp.WithString("path", mcp.Description("Optional JSON path of the Slate document inside both payloads")),
	)
	s.AddTool(compareTool, util.ErrorGuard(slateCompareHandler))
}

func slateCompareHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	source, err := documentArgument(arguments, "source")
	if err != nil {
		return nil, err
	}
	target, err := documentArgument(arguments, "target")
	if err != nil {
		return nil, err
	}

	sourceText := source.ToPlainText()
	targetText := target.ToPlainText()
	if sourceText == targetText {
		return mcp.NewToolResultText("No differences found"), nil
	}

	var comparison strings.Builder
	comparison.WriteString("Content Changes:\n")
	comparison.WriteString("=================\n")
	comparison.WriteString(diffLines(sourceText, targetText))

	return mcp.NewToolResultText(comparison.String()), nil
}

// diffLines diffs two plain-text renditions line by line, so each
// serialized block shows up as a whole added, removed or unchanged line.
func diffLines(source, target string) string {
	dmp := diffmatchpatch.New()
	sourceChars, targetChars, lines := dmp.DiffLinesToChars(source, target)
	diffs := dmp.DiffMain(sourceChars, targetChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var result strings.Builder
	for _, diff := range diffs {
		text := strings.TrimSuffix(diff.Text, "\n")
		if text == "" {
			continue
		}
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			result.WriteString("- " + strings.ReplaceAll(text, "\n", "\n- ") + "\n")
		case diffmatchpatch.DiffInsert:
			result.WriteString("+ " + strings.ReplaceAll(text, "\n", "\n+ ") + "\n")
		case diffmatchpatch.DiffEqual:
			result.WriteString("  " + strings.ReplaceAll(text, "\n", "\n  ") + "\n")
		}
	}

	return result.String()
}
