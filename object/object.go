/*
File    : gomix-lite/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the runtime value domain of gomix-lite: the
// tagged variants every expression evaluates to. It mirrors
// github.com/akashmaji946/go-mix's objects package — the same
// GetType/ToString-shaped interface and one struct per variant — trimmed
// to the value set this language actually has (no arrays, maps, sets,
// structs: see DESIGN.md for why that surface was dropped).
package object

import (
	"fmt"
	"math"
	"strconv"
)

// Type identifies which variant a Value is, for type-checking in the
// evaluator and for error messages.
type Type string

const (
	NumberType        Type = "number"
	BooleanType       Type = "boolean"
	StringType        Type = "string"
	NilType           Type = "nil"
	UninitializedType Type = "uninitialized"
	FunctionType      Type = "function"
	BuiltinType       Type = "builtin"
)

// Value is the interface every gomix-lite runtime value implements.
// Truthy and Equals encode the two predicates the language specifies on
// the whole domain (spec.md §3); ToString/Inspect give the two rendering
// modes the CLI needs ("interpretation" output vs. debug display).
type Value interface {
	Type() Type
	// ToString is the "print"/interpretation rendering: no type tag, the
	// format `evaluate` mode and the print statement use.
	ToString() string
	// Inspect is a debug-oriented rendering used only for developer-facing
	// tooling (never by print/evaluate output).
	Inspect() string
}

// Number is the language's sole numeric type: an IEEE-754 double, per
// spec.md §3 (`Number(f64)`).
type Number struct {
	Value float64
}

func (n *Number) Type() Type { return NumberType }

// ToString renders a number the way `evaluate` mode does: integral values
// print without a trailing ".0" ("3", not "3.0"), matching spec.md §4.6's
// "interpretation" formatting rule.
func (n *Number) ToString() string {
	if math.IsInf(n.Value, 1) {
		return "Infinity"
	}
	if math.IsInf(n.Value, -1) {
		return "-Infinity"
	}
	if math.IsNaN(n.Value) {
		return "NaN"
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Number) Inspect() string { return fmt.Sprintf("<number(%s)>", n.ToString()) }

// Boolean wraps a Go bool.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type     { return BooleanType }
func (b *Boolean) ToString() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) Inspect() string { return fmt.Sprintf("<boolean(%s)>", b.ToString()) }

// String wraps an immutable Go string. Concatenation (via +) always
// produces a new String; there is no interning (spec.md §9).
type String struct {
	Value string
}

func (s *String) Type() Type       { return StringType }
func (s *String) ToString() string { return s.Value }
func (s *String) Inspect() string  { return fmt.Sprintf("<string(%q)>", s.Value) }

// Nil is the language's null value. It is a singleton in spirit (every Nil
// literal evaluates to an equivalent value) but not a pointer singleton in
// this implementation, since equality is defined structurally (see Equals).
type Nil struct{}

func (n *Nil) Type() Type       { return NilType }
func (n *Nil) ToString() string { return "nil" }
func (n *Nil) Inspect() string  { return "<nil>" }

// Uninitialized is the sentinel bound to `var x;` (no initializer). Per
// spec.md §9's Open Question resolution, reading it is a runtime error
// distinguishable from reading an explicit nil.
type Uninitialized struct{}

func (u *Uninitialized) Type() Type       { return UninitializedType }
func (u *Uninitialized) ToString() string { return "uninitialized" }
func (u *Uninitialized) Inspect() string  { return "<uninitialized>" }

// Truthy implements the language's truthiness predicate (spec.md §3):
// Nil and Uninitialized are false, Boolean(false) is false, everything
// else — including Number(0) and the empty string — is true.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *Nil, *Uninitialized:
		return false
	case *Boolean:
		return val.Value
	default:
		return true
	}
}

// Equals implements the language's equality predicate (spec.md §3):
// same variant and payload. Numbers compare with plain IEEE-754 ==
// (so NaN != NaN, by inheriting Go's float comparison). Functions and
// builtins are compared by identity (pointer equality), which is never
// exercised by a literal per spec.md.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Uninitialized:
		_, ok := b.(*Uninitialized)
		return ok
	default:
		return a == b
	}
}
