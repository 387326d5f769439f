package doc

import (
	"slices"
	"strings"

	"github.com/zephyrtronium/latex"
)

// ListKind is the environment a list renders in. A list only accepts
// sublists of its own kind.
type ListKind interface {
	Ordered | Unordered
	env() string
}

// Ordered lists are numbered. They render in an enumerate environment.
type Ordered struct{}

func (Ordered) env() string { return "enumerate" }

// Unordered lists are bulleted. They render in an itemize environment.
type Unordered struct{}

func (Unordered) env() string { return "itemize" }

// List is an arbitrarily nested list of items. The zero value is an empty
// list ready to use.
type List[K ListKind] struct {
	entries []entry[K]
}

// entry is either an item or a sublist.
type entry[K ListKind] struct {
	item string
	sub  *List[K]
}

// NewOrdered creates an empty numbered list.
func NewOrdered() *List[Ordered] {
	return new(List[Ordered])
}

// NewUnordered creates an empty bulleted list.
func NewUnordered() *List[Unordered] {
	return new(List[Unordered])
}

// Add appends items of plain text.
func (l *List[K]) Add(items ...string) *List[K] {
	for _, s := range items {
		l.entries = append(l.entries, entry[K]{item: s})
	}
	return l
}

// AddItem appends an item rendered from r. The item is rendered immediately,
// so later changes to r do not affect the list.
func (l *List[K]) AddItem(r latex.Renderer) *List[K] {
	l.entries = append(l.entries, entry[K]{item: r.LaTeX()})
	return l
}

// AddList appends a copy of sub as a nested list.
func (l *List[K]) AddList(sub *List[K]) *List[K] {
	if sub == nil {
		panic("doc: nil sublist")
	}
	c := &List[K]{entries: slices.Clone(sub.entries)}
	l.entries = append(l.entries, entry[K]{sub: c})
	return l
}

// Len returns the number of entries in l, counting each sublist once.
func (l *List[K]) Len() int {
	return len(l.entries)
}

// LaTeX renders the list. Each nesting level is indented by one more tab.
func (l *List[K]) LaTeX() string {
	var b strings.Builder
	l.build(&b, 1)
	return b.String()
}

func (l *List[K]) build(b *strings.Builder, depth int) {
	var k K
	prefix := strings.Repeat("\t", depth-1)
	b.WriteString(prefix + `\begin{` + k.env() + "}\n")
	for _, e := range l.entries {
		if e.sub != nil {
			e.sub.build(b, depth+1)
			continue
		}
		b.WriteString(prefix + "\t\\item " + e.item + "\n")
	}
	b.WriteString(prefix + `\end{` + k.env() + "}\n")
}
