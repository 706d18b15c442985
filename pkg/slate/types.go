package slate

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Mark represents an opaque formatting mark (bold, italic, underline...).
// Only the presence of marks on a leaf changes how it is serialized.
type Mark map[string]interface{}

// Type returns the mark type, or "" when absent.
func (m Mark) Type() string {
	t, _ := m["type"].(string)
	return t
}

// Leaf represents a run of text with its formatting marks
type Leaf struct {
	Object string `json:"object"`
	Text   string `json:"text"`
	Marks  []Mark `json:"marks"`
}

// HasMarks reports whether the leaf carries at least one mark.
func (l *Leaf) HasMarks() bool {
	return l != nil && len(l.Marks) > 0
}

// Node represents a block or inline element of a Slate document.
// A node holds either child nodes or leaves.
type Node struct {
	Object string `json:"object"`
	Type   string `json:"type"`
	Nodes  []Node `json:"nodes"`
	Leaves []Leaf `json:"leaves"`
}

// Kind returns the node kind used for serialization dispatch.
func (n *Node) Kind() Kind {
	return KindOf(n.Type)
}

// Document represents the root of a Slate document
type Document struct {
	Nodes []Node `json:"nodes"`
}

// NodeTypes returns the distinct node types present anywhere in the document.
func (d *Document) NodeTypes() mapset.Set[string] {
	types := mapset.NewThreadUnsafeSet[string]()
	walkNodes(d.Nodes, func(n *Node) {
		types.Add(n.Type)
	})
	return types
}

// UnknownNodeTypes returns the node types the serializer handles with its
// default rule. Untyped nodes (text containers) are not reported.
func (d *Document) UnknownNodeTypes() mapset.Set[string] {
	unknown := mapset.NewThreadUnsafeSet[string]()
	for t := range d.NodeTypes().Iter() {
		if t != "" && KindOf(t) == KindOther {
			unknown.Add(t)
		}
	}
	return unknown
}

func walkNodes(nodes []Node, fn func(*Node)) {
	for i := range nodes {
		fn(&nodes[i])
		walkNodes(nodes[i].Nodes, fn)
	}
}
