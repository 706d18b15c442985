package processors

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/athapong/slatetext/pkg/preview"
	"github.com/athapong/slatetext/pkg/preview/metrics"
	"github.com/athapong/slatetext/pkg/slate"
)

// SlateProcessor converts Slate editor documents to plain text.
type SlateProcessor struct {
	path   string
	logger *logrus.Logger
}

// NewSlateProcessor creates a processor reading the document at the given
// gjson path of each payload. An empty path means the payload is the document.
func NewSlateProcessor(path string) *SlateProcessor {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &SlateProcessor{
		path:   path,
		logger: logger,
	}
}

// Process parses doc.Content and stores its plain text in doc.Text.
func (p *SlateProcessor) Process(ctx context.Context, doc *preview.Document) error {
	parsed, err := slate.ParsePath(doc.Content, p.path)
	if err != nil {
		metrics.SlateParseErrors.Inc()
		return errors.Wrap(err, "slate processor")
	}

	doc.Text = parsed.ToPlainText()
	if doc.Metadata == nil {
		doc.Metadata = make(map[string]interface{})
	}

	nodeTypes := parsed.NodeTypes().ToSlice()
	sort.Strings(nodeTypes)
	doc.Metadata["node_types"] = nodeTypes
	doc.Metadata["block_count"] = len(parsed.Nodes)

	unknown := parsed.UnknownNodeTypes().ToSlice()
	if len(unknown) > 0 {
		sort.Strings(unknown)
		for _, t := range unknown {
			metrics.SlateUnknownNodeTypes.WithLabelValues(t).Inc()
		}
		p.logger.WithFields(logrus.Fields{
			"doc_id":     doc.ID,
			"node_types": unknown,
		}).Debug("Serialized unknown node types with the default rule")
	}

	return nil
}

// SupportedTypes returns the MIME types supported by the SlateProcessor.
func (p *SlateProcessor) SupportedTypes() []string {
	return []string{preview.ContentTypeSlate, preview.ContentTypeJSON}
}
