package expr

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zephyrtronium/latex"
)

// Expr = num | name | Call | Neg | Plus | Add | Sub | Mul | Div | Pow | '(' Expr ')' | '[' Expr ']' | '{' Expr '}'
// Call = funcname Expr | funcname ArgList
// ArgList = '(' Expr { (',' | ';') Expr } ')' | '[' ... ']' | '{' ... '}'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr | Expr Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Pow = Expr '^' Expr

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type eofopt struct {
	c, s bool
	ws   string
}

// parsectx holds general data for parsing.
type parsectx struct {
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
	// ceof and seof indicate whether commas and semicolons, respectively, are
	// allowed at the end of an expression.
	ceof, seof bool
	// given maps identifiers to the values they stand for.
	given map[string]*Expr
}

// StopOn tells the parser to treat a list of characters as ending the
// expression. Each rune must be a comma, semicolon, or whitespace codepoint.
// Whitespace does not end an expression where a term is expected, e.g. at the
// beginning of an expression or following an operator or bracket. Commas and
// semicolons do not end expressions inside bracketed function argument lists.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	var o eofopt
	v := make([]rune, 0, len(chars))
	for _, r := range chars {
		switch {
		case r == ',':
			o.c = true
		case r == ';':
			o.s = true
		case unicode.IsSpace(r):
			if strings.ContainsRune(string(v), r) {
				continue
			}
			v = append(v, r)
		default:
			panic("expr: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	o.ws = string(v)
	return &o
}

// Given tells the parser that the identifier name stands for x. Each
// occurrence parses as a node rendering as name and evaluating to x, the
// same as Valued(latex.Plain(name), x). Given takes precedence over the
// constants pi and e but not over function names.
func Given(name string, x *Expr) ParseOption {
	if name == "" {
		panic("expr: empty given name")
	}
	return &givenopt{name: name, x: lift(x)}
}

type givenopt struct {
	name string
	x    *Expr
}

func (o *givenopt) parseOption(p parsectx) parsectx {
	m := make(map[string]*Expr, len(p.given)+1)
	for k, v := range p.given {
		m[k] = v
	}
	m[o.name] = o.x
	p.given = m
	return p
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.ceof = o.c
	p.seof = o.s
	p.wseof = o.ws
	return p
}

// Parse parses an expression. Integer literals become integer values, and
// bracketed sums, differences, and products become Paren nodes so that they
// render with their brackets. The given options are applied in order.
//
// When the parse stops on a separator requested with StopOn, the separator
// is consumed from src.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	switch tok.kind {
	case tokenEOF:
	case tokenSep:
		switch {
		case p.ceof && tok.text == ",":
		case p.seof && tok.text == ";":
		default:
			return nil, itShouldNotHaveEndedThisWay(tok, -1)
		}
	default:
		return nil, itShouldNotHaveEndedThisWay(tok, -1)
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	}
	return n, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (*Expr, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum, tokenIdent, tokenOpen:
			// (parsed) x -> (parsed) * (x)
			// (parsed) x^(expr) -> (parsed) * (x^(expr))
			// a^(parsed) x -> (a^(parsed)) * (x)
			scan.push(tok)
			if !termprec.moreBinding(until) {
				return n, nil
			}
			rhs, err := parseterm(scan, p, termprec)
			if err != nil {
				return nil, err
			}
			n = binary(KindMul, n, rhs)
		case tokenOp:
			prec := binaryop(tok.text)
			if prec.op == KindNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				return nil, empty(scan)
			}
			n = combine(prec.op, n, rhs)
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("expr: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// any encountered token must be valid as the start of a subexpression, and
// whitespace normally lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx, until operator) (*Expr, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return number(tok)
	case tokenIdent:
		if fn, ok := parsefuncs[tok.text]; ok {
			return parsecall(scan, p, until, fn, tok.text)
		}
		return ident(p, tok.text), nil
	case tokenOp:
		prec := unaryop(tok.text)
		if prec.op == KindNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, empty(scan)
		}
		if prec.op == KindSub {
			return negate(rhs), nil
		}
		return rhs, nil
	case tokenOpen:
		return parsegroup(scan, p, tok)
	case tokenClose:
		// Let the caller decide whether an empty subexpression is allowed.
		scan.push(tok)
		return nil, nil
	case tokenSep:
		switch tok.text {
		case ",":
			if p.ceof {
				scan.push(tok)
				return nil, nil
			}
		case ";":
			if p.seof {
				scan.push(tok)
				return nil, nil
			}
		default:
			panic("expr: invalid separator " + strconv.Quote(tok.text))
		}
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("expr: unknown token: " + tok.String())
	}
}

// parsegroup parses a bracketed subexpression following the open bracket.
func parsegroup(scan *lexer, p *parsectx, open lexToken) (*Expr, error) {
	match := rightbracket(open.text)
	n, err := parseterm(scan, p, exprprec)
	if err != nil {
		return nil, err
	}
	end := scan.must()
	if end.kind != tokenClose || end.text != closebrackets[match] {
		return nil, itShouldNotHaveEndedThisWay(end, match)
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	return group(n), nil
}

// parsecall parses the arguments to a call of a known function.
func parsecall(scan *lexer, p *parsectx, until operator, fn parsefunc, name string) (*Expr, error) {
	// We respect whitespace here so that sin\nx doesn't string together
	// expressions.
	tok, err := scan.next(p.wseof)
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenOpen:
		args, err := parsearglist(scan, p, tok)
		if err != nil {
			return nil, err
		}
		if len(args) < fn.min || len(args) > fn.max {
			return nil, &CallError{Col: tok.pos, Func: name, Len: len(args), Min: fn.min, Max: fn.max}
		}
		return fn.build(args), nil
	case tokenNum, tokenIdent, tokenOp:
		// Single argument. exp x -> exp(x)
		if fn.min > 1 {
			return nil, &CallError{Col: tok.pos, Func: name, Len: 1, Min: fn.min, Max: fn.max}
		}
		scan.push(tok)
		if termprec.moreBinding(until) {
			until = termprec
		}
		arg, err := parseterm(scan, p, until)
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, empty(scan)
		}
		return fn.build([]*Expr{arg}), nil
	case tokenClose, tokenSep, tokenEOF:
		return nil, &CallError{Col: tok.pos, Func: name, Len: 0, Min: fn.min, Max: fn.max}
	default:
		panic("expr: unknown token: " + tok.String())
	}
}

// parsearglist parses a bracketed list of zero or more args following the
// open bracket. It consumes the close bracket.
func parsearglist(scan *lexer, p *parsectx, open lexToken) ([]*Expr, error) {
	match := rightbracket(open.text)
	var args []*Expr
	for {
		n, err := parseterm(scan, p, exprprec)
		if err != nil {
			// As a special case, reporting mismatched brackets is more helpful
			// than empty expression, if that's what we'd do here.
			if ee, _ := err.(*EmptyExpressionError); ee != nil && ee.End == "" {
				err = &BracketError{Col: ee.Col, Left: open.text}
			}
			return nil, err
		}
		end := scan.must()
		switch end.kind {
		case tokenClose:
			if end.text != closebrackets[match] {
				return nil, &BracketError{Col: end.pos, Left: open.text, Right: end.text}
			}
			if n == nil {
				// f() is allowed, but f(a,) isn't.
				if len(args) != 0 {
					return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
				}
				return nil, nil
			}
			return append(args, n), nil
		case tokenSep:
			if n == nil {
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			args = append(args, n)
		case tokenEOF:
			return nil, &BracketError{Col: end.pos, Left: open.text, Right: ""}
		default:
			panic("expr: parseterm ended on non-end token " + end.String())
		}
	}
}

// number converts a number token to a literal. Integer text becomes an
// integer value unless it overflows.
func number(tok lexToken) (*Expr, error) {
	if tok.text == "inf" || tok.text == "Inf" {
		return Lit(math.Inf(1)), nil
	}
	if i, err := strconv.ParseInt(tok.text, 10, 64); err == nil {
		return Lit(i), nil
	}
	f, err := strconv.ParseFloat(tok.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
	}
	return Lit(f), nil
}

// ident converts a name that is not a function to a node.
func ident(p *parsectx, name string) *Expr {
	if x := p.given[name]; x != nil {
		return Valued(latex.Plain(name), x)
	}
	switch name {
	case "pi", "π":
		return Pi()
	case "e":
		return E()
	}
	if upper, lower, ok := strings.Cut(name, "_"); ok && upper != "" && lower != "" {
		return Subscript(latex.Plain(upper), latex.Plain(lower))
	}
	return Var(name)
}

// negate applies unary minus. Literals are negated directly; anything else
// becomes a product with -1.
func negate(x *Expr) *Expr {
	if x.kind == KindNum {
		return Neg(x.val)
	}
	return binary(KindMul, -1, x)
}

// group marks a bracketed subexpression whose rendering needs the brackets.
func group(x *Expr) *Expr {
	switch x.kind {
	case KindAdd, KindSub, KindMul:
		return Paren(x)
	}
	return x
}

// unparen removes a grouping that the rendering of an operation already
// provides.
func unparen(x *Expr) *Expr {
	if x.kind == KindParen {
		return x.left
	}
	return x
}

// combine creates a binary operation node from parsed operands.
func combine(k Kind, l, r *Expr) *Expr {
	switch k {
	case KindFrac, KindPow:
		return binary(k, unparen(l), unparen(r))
	}
	return binary(k, l, r)
}

// empty returns an error for an empty subexpression ended by the pushed
// token.
func empty(scan *lexer) error {
	end := scan.must()
	return &EmptyExpressionError{Col: end.pos, End: end.text}
}

type parsefunc struct {
	// min and max are the allowed numbers of arguments.
	min, max int
	build    func(args []*Expr) *Expr
}

var parsefuncs = map[string]parsefunc{
	"ln":   {1, 1, func(a []*Expr) *Expr { return Ln(a[0]) }},
	"exp":  {1, 1, func(a []*Expr) *Expr { return Exp(a[0]) }},
	"sqrt": {1, 1, func(a []*Expr) *Expr { return Sqrt(a[0]) }},
	"sin":  {1, 1, func(a []*Expr) *Expr { return Sin(a[0]) }},
	"cos":  {1, 1, func(a []*Expr) *Expr { return Cos(a[0]) }},
	"tan":  {1, 1, func(a []*Expr) *Expr { return Tan(a[0]) }},
	"log": {1, 2, func(a []*Expr) *Expr {
		if len(a) == 1 {
			return Log(a[0], 10)
		}
		return Log(a[0], a[1])
	}},
	"root": {2, 2, func(a []*Expr) *Expr { return Root(a[0], a[1]) }},
}

// rightbracket gets the closing bracket index for an opening bracket.
func rightbracket(left string) int {
	r, sz := utf8.DecodeRuneInString(left)
	k := strings.IndexRune(OpenBrackets, r)
	if k < 0 || sz != len(left) {
		panic("expr: invalid bracket " + strconv.Quote(left))
	}
	return k
}

// leftbracket gets the opening bracket matching right. If right is no bracket,
// then the result is the empty string.
func leftbracket(right int) string {
	if right == -1 {
		return ""
	}
	return openbrackets[right]
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. match is the bracket rune index that
// the expression should have matched, or -1 if none.
func itShouldNotHaveEndedThisWay(tok lexToken, match int) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, Left: leftbracket(match), Right: ""}
	case tokenClose:
		// A bracket could be the wrong bracket for the opening brace or any
		// bracket at the end of an input.
		return &BracketError{Col: tok.pos, Left: leftbracket(match), Right: tok.text}
	case tokenSep:
		// Separator outside a function call.
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	default:
		panic("expr: it really should not have ended this way: " + tok.String())
	}
}

type operator struct {
	// prec is the precedence value. Lower is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op Kind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binaryop gets a binary operator for a token string. If there is no such
// binary operator, then the result has an op of KindNone.
func binaryop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, KindAdd}
	case "-":
		return operator{1, false, KindSub}
	case "*", "×":
		return operator{5, false, KindMul}
	case "/", "÷":
		return operator{5, false, KindFrac}
	case "^":
		return operator{15, true, KindPow}
	default:
		return operator{}
	}
}

// unaryop gets a unary operator for a token string. Unary plus has an op of
// KindAdd and unary minus has KindSub. If there is no such unary operator,
// then the result has an op of KindNone.
func unaryop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, KindAdd}
	case "-":
		return operator{10, true, KindSub}
	default:
		return operator{}
	}
}

var (
	// termprec is the default precedence for parsing terms. Its prec
	// should match that of multiplication.
	termprec = operator{5, true, KindMul}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, KindNone}
)
