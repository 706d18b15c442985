package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkoukk/tiktoken-go"

	"github.com/athapong/slatetext/pkg/preview"
	"github.com/athapong/slatetext/pkg/slate"
	"github.com/athapong/slatetext/util"
)

// RegisterSlateTool registers the Slate conversion tools to the server
func RegisterSlateTool(s *server.MCPServer) {
	plainTextTool := mcp.NewTool("slate_to_plaintext",
		mcp.WithDescription("Convert a SlateJS rich-text document (JSON) into normalized plain text: one block per line, paragraphs end with punctuation, headings, figures and captions are dropped"),
		mcp.WithString("document", mcp.Required(), mcp.Description("Slate document JSON, e.g. {\"document\":{\"nodes\":[...]}}")),
		mcp.WithString("path", mcp.Description("Optional JSON path of the Slate document inside a larger payload (e.g. data.story.content)")),
	)
	s.AddTool(plainTextTool, util.ErrorGuard(slateToPlainTextHandler))

	previewTool := mcp.NewTool("slate_preview",
		mcp.WithDescription("Build a short preview of a Slate document: the first sentences of its plain text, with sentence, character and token counts"),
		mcp.WithString("document", mcp.Required(), mcp.Description("Slate document JSON")),
		mcp.WithString("path", mcp.Description("Optional JSON path of the Slate document inside a larger payload")),
		mcp.WithNumber("sentences", mcp.Description("Number of sentences in the preview (default from SLATE_PREVIEW_SENTENCES, 3)")),
	)
	s.AddTool(previewTool, util.ErrorGuard(slatePreviewHandler))
}

func slateToPlainTextHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := documentArgument(request.Params.Arguments, "document")
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(doc.ToPlainText()), nil
}

func slatePreviewHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments
	cfg := util.DefaultConfig()

	doc, err := documentArgument(arguments, "document")
	if err != nil {
		return nil, err
	}

	maxSentences := cfg.PreviewSentences
	if n, ok := arguments["sentences"].(float64); ok && n > 0 {
		maxSentences = int(n)
	}

	text := doc.ToPlainText()
	if text == "" {
		return mcp.NewToolResultText("Document has no text content"), nil
	}

	summary, sentences, err := preview.Summarize(text, maxSentences)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build preview: %v", err)), nil
	}

	var result strings.Builder
	result.WriteString("Preview:\n")
	result.WriteString(summary)
	result.WriteString("\n\n")
	result.WriteString(fmt.Sprintf("Sentences: %d\n", len(sentences)))
	result.WriteString(fmt.Sprintf("Characters: %d\n", utf8.RuneCountInString(text)))

	tokens, err := countTokens(cfg.TokenEncoding, text)
	if err != nil {
		result.WriteString(fmt.Sprintf("Tokens (%s): unavailable (%v)\n", cfg.TokenEncoding, err))
	} else {
		result.WriteString(fmt.Sprintf("Tokens (%s): %d\n", cfg.TokenEncoding, tokens))
	}

	return mcp.NewToolResultText(result.String()), nil
}

// documentArgument parses a Slate document passed either as a JSON string or
// as an already decoded JSON object.
func documentArgument(arguments map[string]interface{}, name string) (*slate.Document, error) {
	var raw []byte
	switch v := arguments[name].(type) {
	case string:
		raw = []byte(v)
	case map[string]interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s argument: %w", name, err)
		}
		raw = encoded
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, fmt.Errorf("%s argument is required", name)
	}

	path, _ := arguments["path"].(string)
	if path == "" {
		path = util.DefaultConfig().DocumentPath
	}

	doc, err := slate.ParsePath(raw, path)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return doc, nil
}

var (
	encoders   = make(map[string]*tiktoken.Tiktoken)
	encodersMu sync.Mutex
)

// countTokens is a variable so tests can avoid loading BPE ranks.
var countTokens = func(encoding, text string) (int, error) {
	encodersMu.Lock()
	defer encodersMu.Unlock()

	enc, ok := encoders[encoding]
	if !ok {
		var err error
		enc, err = tiktoken.GetEncoding(encoding)
		if err != nil {
			return 0, err
		}
		encoders[encoding] = enc
	}
	return len(enc.Encode(text, nil, nil)), nil
}
