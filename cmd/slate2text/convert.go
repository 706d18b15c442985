package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/athapong/slatetext/pkg/preview"
	"github.com/athapong/slatetext/pkg/preview/processors"
	"github.com/athapong/slatetext/pkg/preview/storage"
)

var (
	flagPath      string
	flagOutput    string
	flagSentences int
	flagBatchSize int
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|dir>",
	Short: "Convert Slate documents to plain text",
	Long: `Convert parses every .json (Slate) and .html file given, renders its plain
text and prints it. With --output the processed documents, including their
previews and metadata, are written to a JSON file instead.

Examples:
  slate2text convert article.json
  slate2text convert export.json --path data.story.content
  slate2text convert ./articles --output previews.json --sentences 2`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagPath, "path", "", "JSON path of the Slate document inside each file")
	convertCmd.Flags().StringVar(&flagOutput, "output", "", "Write processed documents to this JSON file")
	convertCmd.Flags().IntVar(&flagSentences, "sentences", 3, "Number of sentences in each preview (0 disables previews)")
	convertCmd.Flags().IntVar(&flagBatchSize, "batch_size", 10, "Number of documents processed concurrently")
}

func runConvert(cmd *cobra.Command, args []string) error {
	docs, err := collectDocuments(args[0])
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no .json or .html files found in %s", args[0])
	}
	logger.WithField("count", len(docs)).Debug("Collected documents")

	pipeline := preview.NewPipeline(
		preview.WithLogger(logger),
		preview.WithBatchSize(flagBatchSize),
		preview.WithSummarySentences(flagSentences),
	)
	pipeline.AddProcessor(processors.NewSlateProcessor(flagPath))
	pipeline.AddProcessor(processors.NewHTMLProcessor())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// failed documents still carry their error, so write what we have first
	batchErr := pipeline.BatchProcess(ctx, docs)

	if flagOutput != "" {
		if err := storage.NewJSONStore(flagOutput).Store(ctx, docs); err != nil {
			return err
		}
		logger.Infof("Written %d documents to %s", len(docs), flagOutput)
	} else {
		writeText(cmd.OutOrStdout(), docs)
	}

	return batchErr
}

// collectDocuments loads a single file, or every supported file below a directory.
func collectDocuments(root string) ([]*preview.Document, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", root)
	}

	if !info.IsDir() {
		doc, err := loadDocument(root)
		if err != nil {
			return nil, err
		}
		return []*preview.Document{doc}, nil
	}

	var docs []*preview.Document
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || contentTypeFor(path) == "" {
			return nil
		}
		doc, err := loadDocument(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", root)
	}
	return docs, nil
}

func loadDocument(path string) (*preview.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	contentType := contentTypeFor(path)
	if contentType == "" {
		contentType = preview.ContentTypeSlate
	}

	return &preview.Document{
		ContentType: contentType,
		Source:      path,
		Content:     content,
	}, nil
}

func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return preview.ContentTypeSlate
	case ".html", ".htm":
		return preview.ContentTypeHTML
	default:
		return ""
	}
}

func writeText(w io.Writer, docs []*preview.Document) {
	if len(docs) == 1 {
		if docs[0].Error == "" {
			fmt.Fprintln(w, docs[0].Text)
		}
		return
	}

	for _, doc := range docs {
		if doc.Error != "" {
			continue
		}
		fmt.Fprintf(w, "==> %s <==\n%s\n\n", doc.Source, doc.Text)
	}
}
