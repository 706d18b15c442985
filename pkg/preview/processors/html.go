package processors

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/athapong/slatetext/pkg/preview"
)

// HTMLProcessor is responsible for processing HTML content.
type HTMLProcessor struct{}

// NewHTMLProcessor creates a new instance of HTMLProcessor.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{}
}

// Process extracts the body text, one non-empty line per block.
func (p *HTMLProcessor) Process(ctx context.Context, doc *preview.Document) error {
	html, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Content))
	if err != nil {
		return errors.Wrap(err, "failed to create document from HTML content")
	}

	if doc.Metadata == nil {
		doc.Metadata = make(map[string]interface{})
	}

	html.Find("script, style, noscript, template").Remove()
	if title := strings.TrimSpace(html.Find("title").First().Text()); title != "" {
		doc.Metadata["title"] = title
	}

	lines := strings.Split(html.Find("body").Text(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			kept = append(kept, line)
		}
	}
	doc.Text = strings.Join(kept, "\n")

	return nil
}

// SupportedTypes returns the MIME types supported by the HTMLProcessor.
func (p *HTMLProcessor) SupportedTypes() []string {
	return []string{preview.ContentTypeHTML}
}
