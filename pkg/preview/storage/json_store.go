package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/athapong/slatetext/pkg/preview"
)

// DocumentStore defines an interface for persisting processed previews
type DocumentStore interface {
	// Store persists processed documents
	Store(ctx context.Context, docs []*preview.Document) error

	// Load loads processed documents from storage
	Load(ctx context.Context) ([]*preview.Document, error)
}

// JSONStore implements DocumentStore using a single JSON file
type JSONStore struct {
	filePath string
}

// NewJSONStore creates a new JSON document store
func NewJSONStore(filePath string) *JSONStore {
	return &JSONStore{
		filePath: filePath,
	}
}

// Store writes the documents as an indented JSON array
func (s *JSONStore) Store(ctx context.Context, docs []*preview.Document) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	if docs == nil {
		docs = []*preview.Document{}
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode documents")
	}

	return errors.Wrapf(os.WriteFile(s.filePath, data, 0644), "failed to write %s", s.filePath)
}

// Load reads documents previously written by Store
func (s *JSONStore) Load(ctx context.Context) ([]*preview.Document, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", s.filePath)
	}

	var docs []*preview.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", s.filePath)
	}

	return docs, nil
}
