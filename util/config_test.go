package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENABLE_TOOLS", "")
	t.Setenv("ENABLE_SSE", "")
	t.Setenv("SLATE_PREVIEW_SENTENCES", "")
	t.Setenv("SLATE_TOKEN_ENCODING", "")
	t.Setenv("SLATE_DOCUMENT_PATH", "")

	cfg := LoadConfig()

	assert.Empty(t, cfg.EnableTools)
	assert.False(t, cfg.EnableSSE)
	assert.Equal(t, 3, cfg.PreviewSentences)
	assert.Equal(t, "cl100k_base", cfg.TokenEncoding)
	assert.Empty(t, cfg.DocumentPath)
	assert.True(t, cfg.ToolEnabled("slate"))
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("ENABLE_TOOLS", "slate, compare,,")
	t.Setenv("ENABLE_SSE", "true")
	t.Setenv("SLATE_PREVIEW_SENTENCES", "5")
	t.Setenv("SLATE_TOKEN_ENCODING", "o200k_base")
	t.Setenv("SLATE_DOCUMENT_PATH", "story.content")

	cfg := LoadConfig()

	assert.Equal(t, []string{"slate", "compare"}, cfg.EnableTools)
	assert.True(t, cfg.EnableSSE)
	assert.Equal(t, 5, cfg.PreviewSentences)
	assert.Equal(t, "o200k_base", cfg.TokenEncoding)
	assert.Equal(t, "story.content", cfg.DocumentPath)
	assert.True(t, cfg.ToolEnabled("compare"))
	assert.False(t, cfg.ToolEnabled("tool_manager"))
}

func TestLoadConfig_InvalidSentences(t *testing.T) {
	t.Setenv("SLATE_PREVIEW_SENTENCES", "many")
	assert.Equal(t, 3, LoadConfig().PreviewSentences)

	t.Setenv("SLATE_PREVIEW_SENTENCES", "-1")
	assert.Equal(t, 3, LoadConfig().PreviewSentences)
}
