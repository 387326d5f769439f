package expr

import "strconv"

// InputError is an error in parsing an expression that points at the input.
// Every error Parse returns for malformed input is an InputError.
type InputError interface {
	error
	// Pos is the 1-based rune column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)

// atcol prefixes an error message with its column.
func atcol(col int, msg string) string {
	return "col " + strconv.Itoa(col) + ": " + msg
}

// OperatorError reports an operator used where it has no meaning, e.g. *
// at the start of a term.
type OperatorError struct {
	Col      int
	Operator string
	// Unary is true when the operator appeared where a term was expected.
	Unary bool
}

func (err *OperatorError) Error() string {
	op := strconv.Quote(err.Operator)
	if err.Unary {
		return atcol(err.Col, op+" cannot begin a term")
	}
	return atcol(err.Col, op+" is not an infix operator")
}

func (err *OperatorError) Pos() int { return err.Col }

// BracketError reports a bracket without a partner or with the wrong one.
// Left is empty for a stray close bracket, and Right is empty for a group
// that is never closed.
type BracketError struct {
	Col   int
	Left  string
	Right string
}

func (err *BracketError) Error() string {
	switch {
	case err.Left == "":
		return atcol(err.Col, "unmatched "+err.Right)
	case err.Right == "":
		return atcol(err.Col, err.Left+" is never closed")
	default:
		return atcol(err.Col, err.Left+" closed by "+err.Right)
	}
}

func (err *BracketError) Pos() int { return err.Col }

// SeparatorError reports a comma or semicolon outside the arguments of a
// function like log or root.
type SeparatorError struct {
	Col int
	Sep string
}

func (err *SeparatorError) Error() string {
	return atcol(err.Col, "separator "+strconv.Quote(err.Sep)+" outside function arguments")
}

func (err *SeparatorError) Pos() int { return err.Col }

// CallError reports a function given too few or too many arguments.
type CallError struct {
	Col  int
	Func string
	// Len is the number of arguments given. Min and Max bound the number the
	// function accepts.
	Len, Min, Max int
}

func (err *CallError) Error() string {
	var want string
	switch {
	case err.Max == 0:
		return atcol(err.Col, err.Func+" cannot take "+strconv.Itoa(err.Len)+" arguments")
	case err.Min == err.Max && err.Max == 1:
		want = "1 argument"
	case err.Min == err.Max:
		want = strconv.Itoa(err.Max) + " arguments"
	default:
		want = strconv.Itoa(err.Min) + " to " + strconv.Itoa(err.Max) + " arguments"
	}
	return atcol(err.Col, err.Func+" takes "+want+", not "+strconv.Itoa(err.Len))
}

func (err *CallError) Pos() int { return err.Col }

// EmptyExpressionError reports a missing operand, as in "2 *" or "()". End
// is the token where the operand should have been, or empty at the end of
// input.
type EmptyExpressionError struct {
	Col int
	End string
}

func (err *EmptyExpressionError) Error() string {
	switch {
	case err.End != "":
		return atcol(err.Col, "missing operand before "+strconv.Quote(err.End))
	case err.Col <= 1:
		return atcol(err.Col, "empty expression")
	default:
		return atcol(err.Col, "missing operand at end")
	}
}

func (err *EmptyExpressionError) Pos() int { return err.Col }
