package doc

import (
	"slices"
	"strings"

	"github.com/zephyrtronium/latex"
)

// Subsection is a titled division of a section.
type Subsection struct {
	title   string
	content []string
}

// NewSubsection creates an empty subsection.
func NewSubsection(title string) *Subsection {
	return &Subsection{title: title}
}

// Write appends a paragraph of plain text.
func (s *Subsection) Write(text string) *Subsection {
	s.content = append(s.content, text)
	return s
}

// Add appends content rendered from r, e.g. an equation or a list. The
// content is rendered immediately.
func (s *Subsection) Add(r latex.Renderer) *Subsection {
	return s.Write(r.LaTeX())
}

// Title returns the subsection's title.
func (s *Subsection) Title() string {
	return s.title
}

// LaTeX renders the subsection heading followed by its content.
func (s *Subsection) LaTeX() string {
	var b strings.Builder
	s.build(&b)
	return b.String()
}

func (s *Subsection) build(b *strings.Builder) {
	b.WriteString(`\subsection{` + s.title + "}\n\n")
	paragraphs(b, s.content)
}

// Section is a titled division of a document. Leading content renders
// before any subsections.
type Section struct {
	title   string
	newPage bool
	leading []string
	subs    []Subsection
}

// NewSection creates an empty section. If newPage is true, the section starts
// on a new page.
func NewSection(title string, newPage bool) *Section {
	return &Section{title: title, newPage: newPage}
}

// Write appends a paragraph of plain text to the leading content.
func (s *Section) Write(text string) *Section {
	s.leading = append(s.leading, text)
	return s
}

// Add appends content rendered from r to the leading content.
func (s *Section) Add(r latex.Renderer) *Section {
	return s.Write(r.LaTeX())
}

// AddSubsection appends a copy of sub.
func (s *Section) AddSubsection(sub *Subsection) *Section {
	if sub == nil {
		panic("doc: nil subsection")
	}
	s.subs = append(s.subs, Subsection{title: sub.title, content: slices.Clone(sub.content)})
	return s
}

// Title returns the section's title.
func (s *Section) Title() string {
	return s.title
}

// Subsections returns the number of subsections in s.
func (s *Section) Subsections() int {
	return len(s.subs)
}

// LaTeX renders the section: an optional page break, the heading, the
// leading content, then each subsection.
func (s *Section) LaTeX() string {
	var b strings.Builder
	s.build(&b)
	return b.String()
}

func (s *Section) build(b *strings.Builder) {
	if s.newPage {
		b.WriteString("\n\n\\newpage\n\n")
	}
	b.WriteString(`\section{` + s.title + "}\n\n")
	paragraphs(b, s.leading)
	for i := range s.subs {
		s.subs[i].build(b)
		b.WriteString("\n\n")
	}
}

func (s *Section) clone() *Section {
	r := *s
	r.leading = slices.Clone(s.leading)
	r.subs = slices.Clone(s.subs)
	return &r
}

// paragraphs writes each piece of content followed by a blank line.
func paragraphs(b *strings.Builder, content []string) {
	for _, c := range content {
		b.WriteString(c)
		b.WriteString("\n\n")
	}
}
