package slate

import (
	"strings"
	"unicode"
)

const (
	noSpaceAfter  = `-("“`
	noSpaceBefore = `-)"”` + basicPunctuation
)

// serializeLeaves joins a run of sibling leaves, trimming whitespace around
// marked leaves so "a **b** c" does not end up with doubled spaces.
func serializeLeaves(leaves []Leaf, separator string) string {
	parts := make([]string, 0, len(leaves))

	for i := range leaves {
		current := &leaves[i]
		if current.Text == "" {
			continue
		}

		var prev, next *Leaf
		if i > 0 {
			prev = &leaves[i-1]
		}
		if i < len(leaves)-1 {
			next = &leaves[i+1]
		}

		text := current.Text
		switch {
		case current.HasMarks() || (prev.HasMarks() && next.HasMarks()):
			text = strings.TrimSpace(text)
		case prev.HasMarks():
			text = strings.TrimLeftFunc(text, unicode.IsSpace)
		case next.HasMarks():
			text = strings.TrimRightFunc(text, unicode.IsSpace)
		}

		if text == "" {
			continue
		}
		parts = append(parts, text)
	}

	var result strings.Builder
	for i, part := range parts {
		if i > 0 && needsSeparator(parts[i-1], part) {
			result.WriteString(separator)
		}
		result.WriteString(part)
	}
	return result.String()
}

// needsSeparator is false when either side already glues to punctuation or quotes.
func needsSeparator(prev, next string) bool {
	return !(endsWithAny(prev, noSpaceAfter) || startsWithAny(next, noSpaceBefore))
}

func endsWithAny(s, chars string) bool {
	for _, c := range chars {
		if strings.HasSuffix(s, string(c)) {
			return true
		}
	}
	return false
}

func startsWithAny(s, chars string) bool {
	for _, c := range chars {
		if strings.HasPrefix(s, string(c)) {
			return true
		}
	}
	return false
}
