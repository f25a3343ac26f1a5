/*
File    : gomix-lite/builtin/builtin.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtin defines the small set of natively-implemented
// functions gomix-lite programs can call without a `fun` declaration. It
// plays the role go-mix's std package plays — a Builtin{Name, Callback}
// registry bound into the global environment at start-up — cut down to
// the one function spec.md §6 actually names.
package builtin

import (
	"fmt"
	"time"

	"github.com/akashmaji946/gomix-lite/object"
)

// Callback is the signature every builtin implements: it receives already
// -evaluated arguments and returns a value or a runtime error.
type Callback func(args []object.Value) (object.Value, error)

// Builtin is a natively-implemented callable, registered into the global
// environment the same way go-mix's std.Builtin is registered into
// std.Builtins. Arity is checked by the evaluator before Callback runs.
type Builtin struct {
	Name     string
	Arity    int
	Callback Callback
}

func (b *Builtin) Type() object.Type { return object.BuiltinType }
func (b *Builtin) ToString() string  { return fmt.Sprintf("<native fn %s>", b.Name) }
func (b *Builtin) Inspect() string   { return b.ToString() }

// All returns every builtin gomix-lite registers globally (spec.md §6).
func All() []*Builtin {
	return []*Builtin{clockBuiltin}
}

// clockBuiltin exposes wall-clock time in milliseconds since the Unix
// epoch, the one builtin spec.md §6 requires and the standard Lox family
// test suites rely on for timing loops.
var clockBuiltin = &Builtin{
	Name:  "clock",
	Arity: 0,
	Callback: func(args []object.Value) (object.Value, error) {
		ms := float64(time.Now().UnixNano()) / float64(time.Millisecond)
		return &object.Number{Value: ms}, nil
	},
}
