package expr

import (
	"math"
	"strconv"
)

// Value is the numeric result of evaluating an expression. It is either an
// integer or a real. Arithmetic between two integers stays integral;
// anything involving a real is real.
type Value struct {
	i    int64
	f    float64
	real bool
}

// Int creates an integer value.
func Int(i int64) Value {
	return Value{i: i}
}

// Float creates a real value.
func Float(f float64) Value {
	return Value{f: f, real: true}
}

// IsInt returns whether v is an integer value.
func (v Value) IsInt() bool {
	return !v.real
}

// Int64 returns v as an integer, truncating reals.
func (v Value) Int64() int64 {
	if v.real {
		return int64(v.f)
	}
	return v.i
}

// Float64 returns v as a real.
func (v Value) Float64() float64 {
	if v.real {
		return v.f
	}
	return float64(v.i)
}

// String formats integers in decimal and reals with six significant digits.
func (v Value) String() string {
	if v.real {
		return strconv.FormatFloat(v.f, 'g', 6, 64)
	}
	return strconv.FormatInt(v.i, 10)
}

// LaTeX is the same as String. It allows a computed value to appear as a
// step in an aligned equation.
func (v Value) LaTeX() string {
	return v.String()
}

func add(l, r Value) Value {
	if l.real || r.real {
		return Float(l.Float64() + r.Float64())
	}
	return Int(l.i + r.i)
}

func sub(l, r Value) Value {
	if l.real || r.real {
		return Float(l.Float64() - r.Float64())
	}
	return Int(l.i - r.i)
}

func mul(l, r Value) Value {
	if l.real || r.real {
		return Float(l.Float64() * r.Float64())
	}
	return Int(l.i * r.i)
}

// quo divides l by r. Integer division truncates, and an integer zero
// divisor panics the way Go's own division does.
func quo(l, r Value) Value {
	if l.real || r.real {
		return Float(l.Float64() / r.Float64())
	}
	return Int(l.i / r.i)
}

func pow(l, r Value) Value {
	return Float(math.Pow(l.Float64(), r.Float64()))
}
