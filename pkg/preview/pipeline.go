package preview

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/athapong/slatetext/pkg/preview/metrics"
)

// ErrUnsupportedType is returned when no processor handles a document's content type
var ErrUnsupportedType = errors.New("unsupported content type")

// Pipeline converts documents to plain text previews using the processor
// registered for each content type.
type Pipeline struct {
	processors       map[string]DocumentProcessor
	mutex            sync.RWMutex
	logger           *logrus.Logger
	batchSize        int
	summarySentences int
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithLogger sets the pipeline logger
func WithLogger(logger *logrus.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithBatchSize sets how many documents are processed concurrently
func WithBatchSize(size int) Option {
	return func(p *Pipeline) {
		if size > 0 {
			p.batchSize = size
		}
	}
}

// WithSummarySentences sets the number of sentences kept in Summary. Zero disables summaries.
func WithSummarySentences(n int) Option {
	return func(p *Pipeline) {
		if n >= 0 {
			p.summarySentences = n
		}
	}
}

// NewPipeline creates a new preview pipeline
func NewPipeline(opts ...Option) *Pipeline {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	p := &Pipeline{
		processors:       make(map[string]DocumentProcessor),
		batchSize:        10,
		summarySentences: 3,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddProcessor registers a processor for each of its supported content types.
// A later processor replaces an earlier one for the same type.
func (p *Pipeline) AddProcessor(processor DocumentProcessor) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	for _, contentType := range processor.SupportedTypes() {
		p.processors[contentType] = processor
	}
}

// SupportedTypes returns the content types with a registered processor
func (p *Pipeline) SupportedTypes() []string {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	types := make([]string, 0, len(p.processors))
	for contentType := range p.processors {
		types = append(types, contentType)
	}
	return types
}

func (p *Pipeline) processorFor(contentType string) (DocumentProcessor, bool) {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}

	p.mutex.RLock()
	defer p.mutex.RUnlock()
	processor, ok := p.processors[contentType]
	return processor, ok
}

// Process converts a single document and fills in its summary
func (p *Pipeline) Process(ctx context.Context, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("cannot process nil document")
	}
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	log := p.logger.WithFields(logrus.Fields{
		"doc_id":       doc.ID,
		"content_type": doc.ContentType,
	})
	log.Debug("Processing document")

	processor, ok := p.processorFor(doc.ContentType)
	if !ok {
		metrics.DocumentsProcessed.WithLabelValues(doc.ContentType, "unsupported").Inc()
		err := fmt.Errorf("%w: %q", ErrUnsupportedType, doc.ContentType)
		doc.Error = err.Error()
		return fmt.Errorf("document %s: %w", doc.ID, err)
	}

	timer := prometheus.NewTimer(metrics.ProcessingDuration.WithLabelValues(doc.ContentType))
	defer timer.ObserveDuration()

	if doc.Metadata == nil {
		doc.Metadata = make(map[string]interface{})
	}

	if err := processor.Process(ctx, doc); err != nil {
		metrics.DocumentsProcessed.WithLabelValues(doc.ContentType, "error").Inc()
		doc.Error = err.Error()
		return fmt.Errorf("document %s: %w", doc.ID, err)
	}

	if p.summarySentences > 0 && doc.Text != "" {
		summary, sentences, err := Summarize(doc.Text, p.summarySentences)
		if err != nil {
			log.WithError(err).Warn("Failed to summarize document")
		} else {
			doc.Summary = summary
			doc.Sentences = sentences
		}
	}

	doc.Error = ""
	doc.ProcessedAt = time.Now()
	metrics.DocumentsProcessed.WithLabelValues(doc.ContentType, "success").Inc()

	log.WithField("text_length", len(doc.Text)).Debug("Document processing completed")
	return nil
}

// BatchProcess processes documents concurrently, batchSize at a time. Every
// document is attempted; failures are recorded on the document and returned
// joined together.
func (p *Pipeline) BatchProcess(ctx context.Context, docs []*Document) error {
	p.logger.WithField("document_count", len(docs)).Info("Starting batch processing")
	metrics.PipelineQueueLength.Add(float64(len(docs)))

	var errs []error
	for i := 0; i < len(docs); i += p.batchSize {
		if err := ctx.Err(); err != nil {
			metrics.PipelineQueueLength.Sub(float64(len(docs) - i))
			return errors.Join(append(errs, err)...)
		}

		end := i + p.batchSize
		if end > len(docs) {
			end = len(docs)
		}

		batch := docs[i:end]
		batchErrs := make(chan error, len(batch))
		var wg sync.WaitGroup

		for _, doc := range batch {
			wg.Add(1)
			go func(d *Document) {
				defer wg.Done()
				defer metrics.PipelineQueueLength.Dec()

				if err := p.Process(ctx, d); err != nil {
					p.logger.WithError(err).Error("Failed to process document")
					batchErrs <- err
				}
			}(doc)
		}

		wg.Wait()
		close(batchErrs)

		for err := range batchErrs {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		p.logger.WithField("failed_count", len(errs)).Warn("Batch processing completed with errors")
		return fmt.Errorf("batch processing failed for %d of %d documents: %w", len(errs), len(docs), errors.Join(errs...))
	}

	p.logger.Info("Batch processing completed successfully")
	return nil
}
