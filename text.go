package latex

import "strings"

// Style is a pair of markers wrapped around text.
type Style struct {
	Open  string
	Close string
}

// Text styles.
var (
	None      = Style{}
	Normal    = Style{`\normal{`, `}`}
	Italic    = Style{`\textit{`, `}`}
	Bold      = Style{`\textbf{`, `}`}
	Underline = Style{`\underline{`, `}`}

	Tiny    = Style{`\tiny{`, `}`}
	Small   = Style{`\small{`, `}`}
	Large   = Style{`\large{`, `}`}
	Larger  = Style{`\Large{`, `}`}
	Largest = Style{`\LARGE{`, `}`}
	Huge    = Style{`\huge{`, `}`}
	Huger   = Style{`\Huge{`, `}`}
)

// Math-mode styles.
var (
	MathNormal = Style{`\mathnormal{`, `}`}
	MathItalic = Style{`\mathit{`, `}`}
	MathBold   = Style{`\boldsymbol{`, `}`}
)

// Text is literal text decorated by a stack of styles.
type Text struct {
	Raw    string
	Styles []Style
}

// NewText creates styled text. The first style is outermost.
func NewText(raw string, styles ...Style) Text {
	return Text{Raw: raw, Styles: append([]Style(nil), styles...)}
}

// LaTeX opens every style in order, writes the text, then closes the styles
// in reverse order.
func (t Text) LaTeX() string {
	var b strings.Builder
	for _, s := range t.Styles {
		b.WriteString(s.Open)
	}
	b.WriteString(t.Raw)
	for i := len(t.Styles) - 1; i >= 0; i-- {
		b.WriteString(t.Styles[i].Close)
	}
	return b.String()
}

// String is the same as LaTeX.
func (t Text) String() string {
	return t.LaTeX()
}

// Convenience constructors for single-style text.
func ItalicText(s string) Text    { return NewText(s, Italic) }
func BoldText(s string) Text      { return NewText(s, Bold) }
func UnderlineText(s string) Text { return NewText(s, Underline) }
func TinyText(s string) Text      { return NewText(s, Tiny) }
func SmallText(s string) Text     { return NewText(s, Small) }
func LargeText(s string) Text     { return NewText(s, Large) }
func LargerText(s string) Text    { return NewText(s, Larger) }
func LargestText(s string) Text   { return NewText(s, Largest) }
func HugeText(s string) Text      { return NewText(s, Huge) }
func HugerText(s string) Text     { return NewText(s, Huger) }
