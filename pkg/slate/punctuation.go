package slate

import (
	"strings"
	"unicode"
)

const basicPunctuation = ".,:;!?"

func endsWithPunctuation(text string) bool {
	return text != "" && strings.ContainsRune(basicPunctuation, rune(text[len(text)-1]))
}

// withTerminalPunctuation returns a view of a paragraph whose last leaf, and
// the last leaf of its last child, end in sentence punctuation. The node is
// copied on write; the caller's tree is left as parsed.
func withTerminalPunctuation(node Node) Node {
	if n := len(node.Leaves); n > 0 {
		node.Leaves = replaceLastLeaf(node.Leaves, punctuateLeaf(node.Leaves[n-1]))
	}

	if n := len(node.Nodes); n > 0 && len(node.Nodes[n-1].Leaves) > 0 {
		last := node.Nodes[n-1]
		last.Leaves = replaceLastLeaf(last.Leaves, punctuateLeaf(last.Leaves[len(last.Leaves)-1]))

		nodes := make([]Node, n)
		copy(nodes, node.Nodes)
		nodes[n-1] = last
		node.Nodes = nodes
	}

	return node
}

func punctuateLeaf(leaf Leaf) Leaf {
	if leaf.Text == "" {
		return leaf
	}
	leaf.Text = strings.TrimRightFunc(leaf.Text, unicode.IsSpace)
	if !endsWithPunctuation(leaf.Text) {
		leaf.Text += sentenceSeparator
	}
	return leaf
}

func replaceLastLeaf(leaves []Leaf, leaf Leaf) []Leaf {
	out := make([]Leaf, len(leaves))
	copy(out, leaves)
	out[len(out)-1] = leaf
	return out
}
