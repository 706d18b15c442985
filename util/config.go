package util

import (
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Config holds the settings read from the environment (and the .env file).
type Config struct {
	EnableTools      []string
	EnableSSE        bool
	PreviewSentences int
	TokenEncoding    string
	DocumentPath     string
}

// LoadConfig reads the configuration from environment variables
func LoadConfig() Config {
	cfg := Config{
		EnableSSE:        os.Getenv("ENABLE_SSE") == "true",
		PreviewSentences: 3,
		TokenEncoding:    "cl100k_base",
		DocumentPath:     os.Getenv("SLATE_DOCUMENT_PATH"),
	}

	for _, name := range strings.Split(os.Getenv("ENABLE_TOOLS"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.EnableTools = append(cfg.EnableTools, name)
		}
	}

	if n, err := strconv.Atoi(os.Getenv("SLATE_PREVIEW_SENTENCES")); err == nil && n >= 0 {
		cfg.PreviewSentences = n
	}
	if enc := os.Getenv("SLATE_TOKEN_ENCODING"); enc != "" {
		cfg.TokenEncoding = enc
	}

	return cfg
}

// DefaultConfig is loaded once, after main has applied the .env file
var DefaultConfig = sync.OnceValue(LoadConfig)

// ToolEnabled reports whether a tool is enabled. An empty ENABLE_TOOLS enables everything.
func (c Config) ToolEnabled(name string) bool {
	return len(c.EnableTools) == 0 || slices.Contains(c.EnableTools, name)
}
