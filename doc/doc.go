// Package doc composes LaTeX documents from lists, sections, and any other
// latex.Renderer.
//
// Containers render their content when it is added, so a list item or a
// paragraph holding an equation captures the equation as it was at that
// moment. Sublists, subsections, and sections are copied when added.
package doc
