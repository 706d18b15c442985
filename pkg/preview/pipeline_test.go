package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upperProcessor struct {
	calls atomic.Int32
}

func (p *upperProcessor) Process(ctx context.Context, doc *Document) error {
	p.calls.Add(1)
	if string(doc.Content) == "fail" {
		return errors.New("boom")
	}
	doc.Text = strings.ToUpper(string(doc.Content))
	return nil
}

func (p *upperProcessor) SupportedTypes() []string {
	return []string{"text/plain"}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestPipeline(opts ...Option) (*Pipeline, *upperProcessor) {
	processor := &upperProcessor{}
	p := NewPipeline(append([]Option{WithLogger(quietLogger())}, opts...)...)
	p.AddProcessor(processor)
	return p, processor
}

func TestPipeline_Process(t *testing.T) {
	p, _ := newTestPipeline(WithSummarySentences(0))

	doc := &Document{ContentType: "text/plain", Content: []byte("hello")}
	require.NoError(t, p.Process(context.Background(), doc))

	assert.Equal(t, "HELLO", doc.Text)
	assert.NotEmpty(t, doc.ID, "missing IDs are generated")
	assert.False(t, doc.ProcessedAt.IsZero())
	assert.NotNil(t, doc.Metadata)
	assert.Empty(t, doc.Summary)
}

func TestPipeline_Process_KeepsExistingID(t *testing.T) {
	p, _ := newTestPipeline()

	doc := &Document{ID: "doc-1", ContentType: "text/plain", Content: []byte("x")}
	require.NoError(t, p.Process(context.Background(), doc))
	assert.Equal(t, "doc-1", doc.ID)
}

func TestPipeline_Process_ContentTypeParameters(t *testing.T) {
	p, _ := newTestPipeline()

	doc := &Document{ContentType: "text/plain; charset=utf-8", Content: []byte("x")}
	assert.NoError(t, p.Process(context.Background(), doc))
}

func TestPipeline_Process_Summary(t *testing.T) {
	p, _ := newTestPipeline(WithSummarySentences(1))

	doc := &Document{ContentType: "text/plain", Content: []byte("first line.\nsecond line.")}
	require.NoError(t, p.Process(context.Background(), doc))

	assert.Equal(t, "FIRST LINE.", doc.Summary)
	assert.Len(t, doc.Sentences, 2)
}

func TestPipeline_Process_Errors(t *testing.T) {
	p, _ := newTestPipeline()

	err := p.Process(context.Background(), nil)
	assert.Error(t, err)

	doc := &Document{ContentType: "application/pdf"}
	err = p.Process(context.Background(), doc)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, doc.Error, "unsupported content type")

	doc = &Document{ContentType: "text/plain", Content: []byte("fail")}
	err = p.Process(context.Background(), doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, "boom", doc.Error)
}

func TestPipeline_Process_CancelledContext(t *testing.T) {
	p, processor := newTestPipeline()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Process(ctx, &Document{ContentType: "text/plain", Content: []byte("x")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), processor.calls.Load())
}

func TestPipeline_BatchProcess(t *testing.T) {
	p, processor := newTestPipeline(WithBatchSize(3), WithSummarySentences(0))

	docs := make([]*Document, 0, 10)
	for i := 0; i < 10; i++ {
		docs = append(docs, &Document{ContentType: "text/plain", Content: []byte(fmt.Sprintf("doc %d", i))})
	}

	require.NoError(t, p.BatchProcess(context.Background(), docs))

	assert.Equal(t, int32(10), processor.calls.Load())
	for i, doc := range docs {
		assert.Equal(t, fmt.Sprintf("DOC %d", i), doc.Text)
	}
}

func TestPipeline_BatchProcess_ContinuesAfterFailures(t *testing.T) {
	p, processor := newTestPipeline(WithBatchSize(2), WithSummarySentences(0))

	docs := []*Document{
		{ContentType: "text/plain", Content: []byte("fail")},
		{ContentType: "text/plain", Content: []byte("ok")},
		{ContentType: "image/png", Content: []byte("png")},
		{ContentType: "text/plain", Content: []byte("fine")},
	}

	err := p.BatchProcess(context.Background(), docs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 4 documents")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	assert.Equal(t, int32(3), processor.calls.Load())
	assert.Equal(t, "OK", docs[1].Text)
	assert.Equal(t, "FINE", docs[3].Text)
	assert.NotEmpty(t, docs[0].Error)
}

func TestPipeline_SupportedTypes(t *testing.T) {
	p, _ := newTestPipeline()
	assert.ElementsMatch(t, []string{"text/plain"}, p.SupportedTypes())
}
