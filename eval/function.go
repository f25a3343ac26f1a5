/*
File    : gomix-lite/eval/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/environment"
	"github.com/akashmaji946/gomix-lite/object"
)

// Function is a user-declared callable. It captures Closure by pointer,
// not by copy — go-mix's function package gets this right already
// (Function.Scp is a *scope.Scope), and DESIGN.md records why go-mix's
// Scope.Copy() must never be used for this: copying would snapshot the
// enclosing frame instead of sharing it, so two closures created from the
// same `make()` call would stop seeing each other's mutations.
type Function struct {
	Name    string
	Params  []string
	Body    *ast.BlockStmt
	Closure *environment.Environment
}

func (f *Function) Type() object.Type { return object.FunctionType }
func (f *Function) ToString() string {
	if f.Name == "" {
		return "<fn>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}
func (f *Function) Inspect() string { return f.ToString() }

// Arity is the number of declared parameters; the evaluator checks this
// against the call site's argument count before invoking callFunction.
func (f *Function) Arity() int { return len(f.Params) }
