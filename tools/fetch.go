package tools

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/athapong/slatetext/pkg/slate"
	"github.com/athapong/slatetext/services"
	"github.com/athapong/slatetext/util"
)

const maxFetchSize = 10 << 20

// RegisterFetchTool registers the slate_fetch tool to the server
func RegisterFetchTool(s *server.MCPServer) {
	tool := mcp.NewTool("slate_fetch",
		mcp.WithDescription("Fetches a Slate document from an HTTP/HTTPS URL (e.g. a CMS API) and returns its plain text. HTML pages are returned as Markdown."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The complete HTTP/HTTPS URL to fetch (e.g., https://cms.example.com/api/articles/42)"),
		),
		mcp.WithString("path", mcp.Description("Optional JSON path of the Slate document inside the response")),
	)

	s.AddTool(tool, util.ErrorGuard(fetchHandler))
}

func fetchHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments
	url, ok := arguments["url"].(string)
	if !ok || url == "" {
		return mcp.NewToolResultError("url must be a string"), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid URL: %s", err)), nil
	}
	req.Header.Set("Accept", "application/json, text/html;q=0.9")

	resp, err := services.DefaultHttpClient().Do(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch URL: %s", err)), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch URL: %s", resp.Status)), nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read response body: %s", err)), nil
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType == "text/html" {
		mdContent, err := htmltomarkdown.ConvertString(string(body))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to convert HTML to Markdown: %v", err)), nil
		}
		return mcp.NewToolResultText(mdContent), nil
	}

	if mediaType != "application/json" && !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported content type: %s", mediaType)), nil
	}

	path, _ := arguments["path"].(string)
	if path == "" {
		path = util.DefaultConfig().DocumentPath
	}
	doc, err := slate.ParsePath(body, path)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(doc.ToPlainText()), nil
}
