package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	text := "The phone launched today. It ships next month.\nPrices start low."

	summary, sentences, err := Summarize(text, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"The phone launched today.", "It ships next month.", "Prices start low."}, sentences)
	assert.Equal(t, "The phone launched today. It ships next month.", summary)
}

func TestSummarize_BlocksAreNotMerged(t *testing.T) {
	_, sentences, err := Summarize("Berikut daftar lengkapnya:\nOnePlus 13, Oppo Find X8.", 0)
	require.NoError(t, err)

	require.Len(t, sentences, 2)
	assert.Equal(t, "Berikut daftar lengkapnya:", sentences[0])
}

func TestSummarize_Limits(t *testing.T) {
	summary, sentences, err := Summarize("One sentence only.", 5)
	require.NoError(t, err)
	assert.Equal(t, "One sentence only.", summary)
	assert.Len(t, sentences, 1)

	summary, sentences, err = Summarize("  \n\n ", 3)
	require.NoError(t, err)
	assert.Empty(t, summary)
	assert.Empty(t, sentences)
}
