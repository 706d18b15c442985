package slate

// Kind is the closed set of node types the serializer knows how to join.
type Kind int

// Node kinds; KindOther covers every unrecognized type.
const (
	KindOther Kind = iota
	KindParagraph
	KindHeadingLarge
	KindHeadingMedium
	KindBulletedList
	KindNumberedList
	KindListItem
	KindInline
	KindLink
	KindCaption
	KindFigure
)

var kindNames = map[string]Kind{
	"paragraph":      KindParagraph,
	"heading-large":  KindHeadingLarge,
	"heading-medium": KindHeadingMedium,
	"bulleted-list":  KindBulletedList,
	"numbered-list":  KindNumberedList,
	"list-item":      KindListItem,
	"inline":         KindInline,
	"link":           KindLink,
	"caption":        KindCaption,
	"figure":         KindFigure,
}

// KindOf maps a node type tag to its Kind. Unrecognized tags map to KindOther.
func KindOf(nodeType string) Kind {
	if k, ok := kindNames[nodeType]; ok {
		return k
	}
	return KindOther
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "other"
}
