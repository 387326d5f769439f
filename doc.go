// Package latex generates LaTeX source from Go values.
//
// The expr subpackage builds mathematical expressions which can be both
// evaluated and typeset from the same tree. The doc subpackage composes
// lists, sections, and whole documents. This package holds the pieces they
// share: the Renderer interface and styled text.
//
package latex

// Renderer is anything that can produce LaTeX source for itself.
type Renderer interface {
	LaTeX() string
}

// Plain is literal LaTeX source. It renders as itself.
type Plain string

// LaTeX returns p unchanged.
func (p Plain) LaTeX() string {
	return string(p)
}
