package preview

import (
	"context"
	"time"
)

// Content types handled by the bundled processors
const (
	ContentTypeSlate = "application/vnd.slate+json"
	ContentTypeJSON  = "application/json"
	ContentTypeHTML  = "text/html"
)

// Document is a unit of work flowing through the pipeline: raw content in,
// plain text and preview out.
type Document struct {
	ID          string                 `json:"id"`
	ContentType string                 `json:"content_type"`
	Source      string                 `json:"source,omitempty"`
	Content     []byte                 `json:"-"`
	Text        string                 `json:"text"`
	Summary     string                 `json:"summary,omitempty"`
	Sentences   []string               `json:"sentences,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Error       string                 `json:"error,omitempty"`
	ProcessedAt time.Time              `json:"processed_at"`
}

// DocumentProcessor converts the raw Content of a document into Text
type DocumentProcessor interface {
	Process(ctx context.Context, doc *Document) error
	SupportedTypes() []string
}
