package interp

import (
	"strconv"
	"strings"
)

// Value is the interface implemented by every runtime value the
// interpreter manipulates (spec.md §3). It intentionally mirrors the
// teacher's machine.Value contract: a display form and a short type name.
type Value interface {
	String() string
	Type() string
}

// NilType is the type of Nil. Represented as a distinct named type (not
// Go's untyped nil) so it can implement Value and compare equal to itself.
type NilType struct{}

// Nil is the language's sole nil value.
var Nil = NilType{}

func (NilType) String() string { return "nil" }
func (NilType) Type() string   { return "nil" }

// Boolean is a true/false value.
type Boolean bool

func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (Boolean) Type() string     { return "boolean" }

// Number is the language's only numeric type: an IEEE-754 64-bit float
// (spec.md §3 invariant I5).
type Number float64

func (n Number) String() string {
	f := float64(n)
	// Display form strips a trailing ".0" on integral values, following the
	// original jlox implementation (see SPEC_FULL.md "Number formatting").
	if f == float64(int64(f)) && !strings.ContainsAny(strconv.FormatFloat(f, 'g', -1, 64), "eE") {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
func (Number) Type() string { return "number" }

// String is the language's UTF-8 string type.
type String string

func (s String) String() string { return string(s) }
func (String) Type() string     { return "string" }

// Callable is implemented by any Value that may appear as the callee of a
// Call expression: user-defined Functions and built-in NativeFunctions.
type Callable interface {
	Value
	Arity() int
	Name() string
}

// Truthy implements spec.md §3's truthiness rule: Nil and Boolean(false) are
// false, everything else — including Number(0) and the empty string — is
// true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case NilType:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// Equal implements spec.md §3's equality rule: structural within matching
// variants, always false across variants except Nil==Nil, and IEEE-754
// equality for Number (so NaN != NaN, per invariant I5 and P6).
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case NilType:
		_, ok := b.(NilType)
		return ok
	case Boolean:
		bb, ok := b.(Boolean)
		return ok && a == bb
	case Number:
		bn, ok := b.(Number)
		return ok && float64(a) == float64(bn)
	case String:
		bs, ok := b.(String)
		return ok && a == bs
	default:
		// Functions and native functions compare by identity.
		return a == b
	}
}
