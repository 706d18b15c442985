package slate

import (
	"regexp"
	"strings"
)

const (
	newline           = "\n"
	spaceSeparator    = " "
	commaSeparator    = ","
	dotSeparator      = "."
	sentenceSeparator = ". "
)

var (
	multipleDotsRegex = regexp.MustCompile(`\.+`)
	dotSpaceRegex     = regexp.MustCompile(`\.\s`)
	newlinesRegex     = regexp.MustCompile(`\n+`)
)

// ToPlainText converts the document to plain text, one block per line.
// The document is not modified and may be converted concurrently.
func (d *Document) ToPlainText() string {
	if d == nil {
		return ""
	}
	text := serializeNodes(d.Nodes, newline, spaceSeparator, true, false)
	text = newlinesRegex.ReplaceAllString(text, newline)
	return strings.TrimSpace(text)
}

// serializeNodes renders sibling nodes. nodeSeparator is the initial join
// context; the medium heading, inline, link and list-item arms replace it for the
// siblings that follow. lastInList marks the final node as the last item of
// the enclosing list.
func serializeNodes(nodes []Node, nodeSeparator, leafSeparator string, isRootLevel, lastInList bool) string {
	var result strings.Builder
	separator := nodeSeparator

	for i := range nodes {
		node := nodes[i]
		kind := node.Kind()

		if kind == KindParagraph {
			node = withTerminalPunctuation(node)
		}

		if len(node.Nodes) > 0 {
			switch kind {
			case KindHeadingLarge, KindCaption, KindFigure:
				continue
			case KindBulletedList, KindNumberedList:
				items := serializeNodes(node.Nodes, separator, leafSeparator, false, true)
				result.WriteString(cleanUpList(items))
				continue
			case KindHeadingMedium:
				// the heading text is dropped; only the join context changes
				separator = sentenceSeparator
			case KindInline:
				separator = spaceSeparator
				result.WriteString(serializeNodes(node.Nodes, separator, leafSeparator, false, false))
				result.WriteString(leafSeparator)
			case KindLink:
				separator = spaceSeparator
				result.WriteString(serializeNodes(node.Nodes, separator, leafSeparator, false, false))
			case KindListItem:
				separator = commaSeparator
				if lastInList && i == len(nodes)-1 {
					separator = sentenceSeparator
				}
				result.WriteString(serializeNodes(node.Nodes, separator, leafSeparator, false, false))
				result.WriteString(leafSeparator)
			default:
				text := strings.TrimSpace(serializeNodes(node.Nodes, spaceSeparator, leafSeparator, false, false))
				if separator == commaSeparator && endsWithPunctuation(text) {
					text = text[:len(text)-1] + separator
				} else if separator == newline {
					text += separator
				}
				result.WriteString(text)
			}
		} else if len(node.Leaves) > 0 {
			result.WriteString(serializeLeaves(node.Leaves, leafSeparator))
		}

		// one block per line at the top level
		if isRootLevel && !strings.HasSuffix(result.String(), newline) {
			result.WriteString(newline)
		}
	}

	return result.String()
}

// cleanUpList collapses the doubled terminal punctuation nested list items
// produce. The two passes must run in this order.
func cleanUpList(text string) string {
	cleaned := multipleDotsRegex.ReplaceAllString(text, sentenceSeparator)
	return dotSpaceRegex.ReplaceAllString(cleaned, dotSeparator)
}
