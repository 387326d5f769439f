package doc

import (
	"strconv"
	"strings"

	"github.com/zephyrtronium/latex"
)

// Class is a LaTeX document class. It decides whether a document may have a
// subtitle and a table of contents.
type Class struct {
	name     string
	toc      bool
	subtitle bool
}

var (
	// Article is the article class. Articles have neither subtitles nor
	// tables of contents.
	Article = Class{name: "article"}
	// Report is the report class.
	Report = Class{name: "report", toc: true, subtitle: true}
	// Book is the book class.
	Book = Class{name: "book", toc: true, subtitle: true}
)

// ParseClass gets the class with the given name.
func ParseClass(name string) (Class, error) {
	for _, c := range []Class{Article, Report, Book} {
		if c.name == name {
			return c, nil
		}
	}
	return Class{}, &ClassError{Name: name}
}

// String returns the class name as it appears in \documentclass.
func (c Class) String() string {
	return c.name
}

// CanTOC reports whether documents of the class may have a table of contents.
func (c Class) CanTOC() bool {
	return c.toc
}

// CanSubtitle reports whether documents of the class may have a subtitle.
func (c Class) CanSubtitle() bool {
	return c.subtitle
}

// ClassError is the error from ParseClass for an unknown class name.
type ClassError struct {
	Name string
}

func (err *ClassError) Error() string {
	return "unknown document class " + strconv.Quote(err.Name)
}

// DefaultFontSize is the font size of new documents, in points.
const DefaultFontSize = 12

// Document is a complete LaTeX document.
type Document struct {
	class    Class
	fontSize int
	title    string
	subtitle string
	toc      bool
	imports  []string
	leading  []string
	sections []*Section
}

// New creates a document. The table of contents is enabled if the class
// allows one.
func New(class Class, title string) *Document {
	if class.name == "" {
		panic("doc: zero document class")
	}
	return &Document{
		class:    class,
		fontSize: DefaultFontSize,
		title:    title,
		toc:      class.toc,
	}
}

// WithSubtitle sets the subtitle. It renders only if the class allows it.
func (d *Document) WithSubtitle(subtitle string) *Document {
	d.subtitle = subtitle
	return d
}

// Use imports a package.
func (d *Document) Use(pkgs ...string) *Document {
	d.imports = append(d.imports, pkgs...)
	return d
}

// WithLeadingContent appends content rendered from r before the first
// section.
func (d *Document) WithLeadingContent(r latex.Renderer) *Document {
	return d.Write(r.LaTeX())
}

// Write appends a paragraph of plain text before the first section.
func (d *Document) Write(text string) *Document {
	d.leading = append(d.leading, text)
	return d
}

// WithTOC enables the table of contents if the class allows one.
func (d *Document) WithTOC() *Document {
	d.toc = d.class.toc
	return d
}

// WithoutTOC disables the table of contents.
func (d *Document) WithoutTOC() *Document {
	d.toc = false
	return d
}

// WithFontSize sets the base font size in points.
func (d *Document) WithFontSize(pt int) *Document {
	if pt <= 0 {
		panic("doc: font size must be positive")
	}
	d.fontSize = pt
	return d
}

// Insert appends a copy of sect.
func (d *Document) Insert(sect *Section) *Document {
	if sect == nil {
		panic("doc: nil section")
	}
	d.sections = append(d.sections, sect.clone())
	return d
}

// Title returns the document's title.
func (d *Document) Title() string {
	return d.title
}

// Subtitle returns the document's subtitle, whether or not it renders.
func (d *Document) Subtitle() string {
	return d.subtitle
}

// Class returns the document's class.
func (d *Document) Class() Class {
	return d.class
}

// TOC reports whether the document renders a table of contents.
func (d *Document) TOC() bool {
	return d.toc
}

// Imports returns the imported packages in order.
func (d *Document) Imports() []string {
	return append([]string(nil), d.imports...)
}

// Sections returns the number of sections in the document.
func (d *Document) Sections() int {
	return len(d.sections)
}

// LaTeX renders the whole document source.
func (d *Document) LaTeX() string {
	var b strings.Builder
	b.WriteString(`\documentclass[` + strconv.Itoa(d.fontSize) + "pt]{" + d.class.name + "}\n\n")
	if d.class.subtitle && d.subtitle != "" {
		b.WriteString(`\title{` + d.title + ` \\ ` + d.subtitle + "}\n")
	} else {
		b.WriteString(`\title{` + d.title + "}\n")
	}
	b.WriteString("\n\n")
	for _, pkg := range d.imports {
		b.WriteString(`\usepackage{` + pkg + "}\n")
	}
	b.WriteString("\n\n")
	b.WriteString("\\begin{document}\n\n\\maketitle\n\n")
	if d.toc {
		b.WriteString("\\tableofcontents\n\n\\newpage\n\n")
	}
	b.WriteString("\n\n")
	paragraphs(&b, d.leading)
	for _, s := range d.sections {
		s.build(&b)
		b.WriteString("\n\n")
	}
	b.WriteString("\\end{document}\n")
	return b.String()
}
