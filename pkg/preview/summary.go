package preview

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Summarize splits text into sentences and returns the first maxSentences of
// them joined by a space, along with every sentence found. Blocks (lines) are
// segmented separately so a sentence never spans two blocks.
func Summarize(text string, maxSentences int) (string, []string, error) {
	sentences := make([]string, 0)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		doc, err := prose.NewDocument(line,
			prose.WithTokenization(false),
			prose.WithTagging(false),
			prose.WithExtraction(false),
		)
		if err != nil {
			return "", nil, fmt.Errorf("failed to segment sentences: %w", err)
		}

		for _, sent := range doc.Sentences() {
			if s := strings.TrimSpace(sent.Text); s != "" {
				sentences = append(sentences, s)
			}
		}
	}

	n := len(sentences)
	if maxSentences > 0 && maxSentences < n {
		n = maxSentences
	}
	return strings.Join(sentences[:n], " "), sentences, nil
}
