package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athapong/slatetext/pkg/preview"
)

func TestJSONStore_StoreAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "previews.json")
	store := NewJSONStore(path)

	docs := []*preview.Document{
		{
			ID:          "1",
			ContentType: preview.ContentTypeSlate,
			Source:      "a.json",
			Content:     []byte("not persisted"),
			Text:        "hello world.",
			Summary:     "hello world.",
			Metadata:    map[string]interface{}{"block_count": 1},
			ProcessedAt: time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC),
		},
		{ID: "2", Error: "boom"},
	}

	require.NoError(t, store.Store(context.Background(), docs))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "hello world.", loaded[0].Text)
	assert.Equal(t, "a.json", loaded[0].Source)
	assert.Nil(t, loaded[0].Content)
	assert.Equal(t, float64(1), loaded[0].Metadata["block_count"])
	assert.True(t, docs[0].ProcessedAt.Equal(loaded[0].ProcessedAt))
	assert.Equal(t, "boom", loaded[1].Error)
}

func TestJSONStore_StoreNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, NewJSONStore(path).Store(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONStore_LoadErrors(t *testing.T) {
	_, err := NewJSONStore(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = NewJSONStore(path).Load(context.Background())
	assert.ErrorContains(t, err, "failed to decode")
}
