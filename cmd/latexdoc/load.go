package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/zephyrtronium/latex"
	"github.com/zephyrtronium/latex/doc"
	"github.com/zephyrtronium/latex/expr"
)

// docFile is the YAML description of a document.
type docFile struct {
	Class    string        `yaml:"class"`
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	FontSize int           `yaml:"fontsize"`
	TOC      *bool         `yaml:"toc"`
	Use      []string      `yaml:"use"`
	Leading  []block       `yaml:"leading"`
	Sections []sectionFile `yaml:"sections"`
}

type sectionFile struct {
	Title       string           `yaml:"title"`
	NewPage     bool             `yaml:"newpage"`
	Content     []block          `yaml:"content"`
	Subsections []subsectionFile `yaml:"subsections"`
}

type subsectionFile struct {
	Title   string  `yaml:"title"`
	Content []block `yaml:"content"`
}

// block is one piece of content. Exactly one of Text, Equation, Derivation,
// and List is set. A bare string is a block of plain text.
type block struct {
	Text       string           `yaml:"text"`
	Bold       bool             `yaml:"bold"`
	Italic     bool             `yaml:"italic"`
	Equation   *equationBlock   `yaml:"equation"`
	Derivation *derivationBlock `yaml:"derivation"`
	List       *listBlock       `yaml:"list"`
}

type equationBlock struct {
	LHS   string `yaml:"lhs"`
	RHS   string `yaml:"rhs"`
	Label string `yaml:"label"`
}

type derivationBlock struct {
	LHS      string   `yaml:"lhs"`
	Steps    []string `yaml:"steps"`
	Evaluate bool     `yaml:"evaluate"`
	Label    string   `yaml:"label"`
}

type listBlock struct {
	Ordered bool       `yaml:"ordered"`
	Items   []listItem `yaml:"items"`
}

// listItem is a string item or a nested {items: [...]} sublist.
type listItem struct {
	Text  string
	Items []listItem
	sub   bool
}

func (b *block) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if s, ok := raw.(string); ok {
		*b = block{Text: s}
		return nil
	}
	type plain block
	return unmarshal((*plain)(b))
}

func (it *listItem) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch raw := raw.(type) {
	case string:
		*it = listItem{Text: raw}
		return nil
	case map[string]any:
		var n struct {
			Items []listItem `yaml:"items"`
		}
		if err := unmarshal(&n); err != nil {
			return err
		}
		*it = listItem{Items: n.Items, sub: true}
		return nil
	default:
		return errors.New("list item must be a string or a sublist of items")
	}
}

// loadDocument reads a YAML document description and builds the document.
func loadDocument(r io.Reader) (*doc.Document, error) {
	var f docFile
	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	return f.document()
}

func (f *docFile) document() (*doc.Document, error) {
	if f.Class == "" {
		f.Class = "article"
	}
	class, err := doc.ParseClass(f.Class)
	if err != nil {
		return nil, err
	}
	d := doc.New(class, f.Title).WithSubtitle(f.Subtitle).Use(f.Use...)
	if f.FontSize < 0 {
		return nil, fmt.Errorf("font size %d must be positive", f.FontSize)
	}
	if f.FontSize > 0 {
		d.WithFontSize(f.FontSize)
	}
	if f.TOC != nil && !*f.TOC {
		d.WithoutTOC()
	}
	for i := range f.Leading {
		r, err := f.Leading[i].renderer()
		if err != nil {
			return nil, fmt.Errorf("leading content %d: %w", i+1, err)
		}
		d.WithLeadingContent(r)
	}
	for i := range f.Sections {
		s, err := f.Sections[i].section()
		if err != nil {
			return nil, fmt.Errorf("section %d (%s): %w", i+1, f.Sections[i].Title, err)
		}
		d.Insert(s)
	}
	return d, nil
}

func (f *sectionFile) section() (*doc.Section, error) {
	s := doc.NewSection(f.Title, f.NewPage)
	for i := range f.Content {
		r, err := f.Content[i].renderer()
		if err != nil {
			return nil, fmt.Errorf("content %d: %w", i+1, err)
		}
		s.Add(r)
	}
	for i := range f.Subsections {
		sf := &f.Subsections[i]
		sub := doc.NewSubsection(sf.Title)
		for j := range sf.Content {
			r, err := sf.Content[j].renderer()
			if err != nil {
				return nil, fmt.Errorf("subsection %d (%s) content %d: %w", i+1, sf.Title, j+1, err)
			}
			sub.Add(r)
		}
		s.AddSubsection(sub)
	}
	return s, nil
}

func (b *block) renderer() (latex.Renderer, error) {
	n := 0
	if b.Text != "" {
		n++
	}
	if b.Equation != nil {
		n++
	}
	if b.Derivation != nil {
		n++
	}
	if b.List != nil {
		n++
	}
	if n != 1 {
		return nil, errors.New("content must have exactly one of text, equation, derivation, or list")
	}
	switch {
	case b.Equation != nil:
		return b.Equation.renderer()
	case b.Derivation != nil:
		return b.Derivation.renderer()
	case b.List != nil:
		return b.List.renderer()
	}
	var styles []latex.Style
	if b.Bold {
		styles = append(styles, latex.Bold)
	}
	if b.Italic {
		styles = append(styles, latex.Italic)
	}
	if len(styles) == 0 {
		return latex.Plain(b.Text), nil
	}
	return latex.NewText(b.Text, styles...), nil
}

func (e *equationBlock) renderer() (latex.Renderer, error) {
	lhs, err := parseSide("lhs", e.LHS)
	if err != nil {
		return nil, err
	}
	rhs, err := parseSide("rhs", e.RHS)
	if err != nil {
		return nil, err
	}
	eq := expr.Eqn(lhs, rhs)
	if e.Label != "" {
		eq = eq.WithLabel(e.Label)
	}
	return eq, nil
}

func (e *derivationBlock) renderer() (latex.Renderer, error) {
	lhs, err := parseSide("lhs", e.LHS)
	if err != nil {
		return nil, err
	}
	if len(e.Steps) == 0 {
		return nil, errors.New("derivation needs at least one step")
	}
	steps := make([]latex.Renderer, 0, len(e.Steps)+1)
	var last *expr.Expr
	for i, s := range e.Steps {
		last, err = parseSide(fmt.Sprintf("step %d", i+1), s)
		if err != nil {
			return nil, err
		}
		steps = append(steps, last)
	}
	if e.Evaluate {
		v, err := evalValue(last)
		if err != nil {
			return nil, fmt.Errorf("evaluating last step: %w", err)
		}
		steps = append(steps, v)
	}
	eq := expr.Aligned(lhs, steps[0], steps[1:]...)
	if e.Label != "" {
		eq = eq.WithLabel(e.Label)
	}
	return eq, nil
}

func parseSide(name, src string) (*expr.Expr, error) {
	x, err := expr.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", name, src, err)
	}
	return x, nil
}

func (l *listBlock) renderer() (latex.Renderer, error) {
	if l.Ordered {
		return fillList(doc.NewOrdered(), l.Items)
	}
	return fillList(doc.NewUnordered(), l.Items)
}

func fillList[K doc.ListKind](list *doc.List[K], items []listItem) (*doc.List[K], error) {
	for _, it := range items {
		if !it.sub {
			list.Add(it.Text)
			continue
		}
		if len(it.Items) == 0 {
			return nil, errors.New("empty sublist")
		}
		sub, err := fillList(new(doc.List[K]), it.Items)
		if err != nil {
			return nil, err
		}
		list.AddList(sub)
	}
	return list, nil
}
