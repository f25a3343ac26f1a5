/*
File    : gomix-lite/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks the AST and produces values or runtime errors
// (spec.md §4.5). It is the Go-native home of go-mix's eval package — the
// same Evaluator-holds-an-environment-and-dispatches shape as
// eval/evaluator.go's Evaluator.RegisterFunction/CallFunction — generalized
// to this language's expression/statement set and its non-local-return
// control flow.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/builtin"
	"github.com/akashmaji946/gomix-lite/environment"
	"github.com/akashmaji946/gomix-lite/object"
	"github.com/akashmaji946/gomix-lite/token"
)

// RuntimeError is a gomix-lite runtime fault: a message plus the source
// line it occurred on, rendered as "[line N] Runtime Error: message". The
// CLI driver maps a RuntimeError to exit code 70 (spec.md §4.6, §7).
type RuntimeError struct {
	Message string
	Line    int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime Error: %s", e.Line, e.Message)
}

func runtimeErrorf(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Line: line}
}

// returnSignal unwinds exactly one function call. It is returned (never
// panicked) from every statement-evaluating method until callFunction
// catches it, which is how this interpreter avoids the "process-global
// mailbox" spec.md §5 warns against — a global slot would let a nested
// call like f(g()) clobber the outer call's pending return value, whereas
// threading the signal through the normal error return of each Go call
// keeps every in-flight return local to its own call stack frame.
type returnSignal struct{ value object.Value }

func (r *returnSignal) Error() string { return "return outside a function call" }

// Evaluator walks statements and expressions against a chain of
// environments rooted at Globals. Writer is where `print` output goes
// (a bare expression's value is returned by EvalExpression, not written
// here), matching go-mix's
// Evaluator.SetWriter/GetInputReader split of I/O from evaluation.
type Evaluator struct {
	Globals *environment.Environment
	env     *environment.Environment
	Writer  io.Writer
}

// New creates an Evaluator with a fresh global environment, every builtin
// from the builtin package already bound (spec.md §6).
func New() *Evaluator {
	globals := environment.New(nil)
	for _, b := range builtin.All() {
		globals.Define(b.Name, b)
	}
	return &Evaluator{Globals: globals, env: globals, Writer: os.Stdout}
}

// EvalExpression evaluates a single expression in the global environment,
// used by "evaluate" mode when the whole program is one bare expression
// (spec.md §4.6).
func (e *Evaluator) EvalExpression(expr ast.Expr) (object.Value, error) {
	return e.evalExpr(expr)
}

// Run executes a full statement list in the global environment, used by
// "evaluate" mode for any program that is not a single bare expression
// (spec.md §4.6). An unhandled returnSignal reaching here means `return`
// was used outside a function, which is itself reported as a runtime
// error.
func (e *Evaluator) Run(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := e.execute(stmt); err != nil {
			if rs, ok := err.(*returnSignal); ok {
				return runtimeErrorf(stmt.Line(), "Can't return %s from top-level code.", rs.value.ToString())
			}
			return err
		}
	}
	return nil
}

func (e *Evaluator) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := e.evalExpr(s.Expr)
		return err
	case *ast.PrintStmt:
		value, err := e.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.Writer, value.ToString())
		return nil
	case *ast.VarStmt:
		return e.execVar(s)
	case *ast.BlockStmt:
		return e.executeBlock(s.Stmts, environment.New(e.env))
	case *ast.IfStmt:
		return e.execIf(s)
	case *ast.WhileStmt:
		return e.execWhile(s)
	case *ast.FunctionStmt:
		fn := &Function{Name: s.Name.Lexeme, Params: paramNames(s.Params), Body: s.Body, Closure: e.env}
		if err := e.env.Define(s.Name.Lexeme, fn); err != nil {
			return runtimeErrorf(s.Line(), "%s", err.Error())
		}
		return nil
	case *ast.ReturnStmt:
		var value object.Value = &object.Nil{}
		if s.Value != nil {
			v, err := e.evalExpr(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}
	default:
		return runtimeErrorf(stmt.Line(), "Unknown statement node.")
	}
}

func paramNames(toks []token.Token) []string {
	names := make([]string, len(toks))
	for i, t := range toks {
		names[i] = t.Lexeme
	}
	return names
}

func (e *Evaluator) execVar(s *ast.VarStmt) error {
	var value object.Value = &object.Uninitialized{}
	if s.Initializer != nil {
		v, err := e.evalExpr(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	if err := e.env.Define(s.Name.Lexeme, value); err != nil {
		return runtimeErrorf(s.Line(), "%s", err.Error())
	}
	return nil
}

// executeBlock runs stmts in a child environment, always restoring the
// caller's environment on the way out — including when a returnSignal or
// any other error is propagating (spec.md §4.4's block-scope lifecycle).
func (e *Evaluator) executeBlock(stmts []ast.Stmt, child *environment.Environment) error {
	previous := e.env
	e.env = child
	defer func() { e.env = previous }()

	for _, stmt := range stmts {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execIf(s *ast.IfStmt) error {
	cond, err := e.evalExpr(s.Expr)
	if err != nil {
		return err
	}
	if object.Truthy(cond) {
		return e.execute(s.Then)
	}
	if s.Else != nil {
		return e.execute(s.Else)
	}
	return nil
}

func (e *Evaluator) execWhile(s *ast.WhileStmt) error {
	for {
		cond, err := e.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		if !object.Truthy(cond) {
			return nil
		}
		if err := e.execute(s.Body); err != nil {
			return err
		}
	}
}

func (e *Evaluator) evalExpr(expr ast.Expr) (object.Value, error) {
	switch n := expr.(type) {
	case *ast.LiteralExpr:
		return n.Value, nil
	case *ast.GroupingExpr:
		return e.evalExpr(n.Inner)
	case *ast.VariableExpr:
		v, err := e.env.Get(n.Name.Lexeme)
		if err != nil {
			return nil, runtimeErrorf(n.Line(), "%s", err.Error())
		}
		return v, nil
	case *ast.AssignExpr:
		value, err := e.evalExpr(n.Value)
		if err != nil {
			return nil, err
		}
		if err := e.env.Assign(n.Name.Lexeme, value); err != nil {
			return nil, runtimeErrorf(n.Line(), "%s", err.Error())
		}
		return value, nil
	case *ast.UnaryExpr:
		return e.evalUnary(n)
	case *ast.BinaryExpr:
		return e.evalBinary(n)
	case *ast.LogicalExpr:
		return e.evalLogical(n)
	case *ast.CallExpr:
		return e.evalCall(n)
	default:
		return nil, runtimeErrorf(expr.Line(), "Unknown expression node.")
	}
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpr) (object.Value, error) {
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Op.Lexeme {
	case "-":
		num, ok := right.(*object.Number)
		if !ok {
			return nil, runtimeErrorf(n.Line(), "Operand must be a number.")
		}
		return &object.Number{Value: -num.Value}, nil
	case "!":
		return &object.Boolean{Value: !object.Truthy(right)}, nil
	default:
		return nil, runtimeErrorf(n.Line(), "Unknown unary operator %q.", n.Op.Lexeme)
	}
}

// evalBinary implements spec.md §4.5's operator table: arithmetic and
// ordering require both operands to be Number, `+` additionally accepts
// two Strings for concatenation, and `==`/`!=` use the language's
// structural equality over the whole value domain rather than being
// restricted to numbers.
func (e *Evaluator) evalBinary(n *ast.BinaryExpr) (object.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Lexeme {
	case "==":
		return &object.Boolean{Value: object.Equals(left, right)}, nil
	case "!=":
		return &object.Boolean{Value: !object.Equals(left, right)}, nil
	case "+":
		if ln, ok := left.(*object.Number); ok {
			rn, ok := right.(*object.Number)
			if !ok {
				return nil, runtimeErrorf(n.Line(), "Operands must be two numbers or two strings.")
			}
			return &object.Number{Value: ln.Value + rn.Value}, nil
		}
		if ls, ok := left.(*object.String); ok {
			rs, ok := right.(*object.String)
			if !ok {
				return nil, runtimeErrorf(n.Line(), "Operands must be two numbers or two strings.")
			}
			return &object.String{Value: ls.Value + rs.Value}, nil
		}
		return nil, runtimeErrorf(n.Line(), "Operands must be two numbers or two strings.")
	case "-", "*", "/", ">", ">=", "<", "<=":
		ln, ok := left.(*object.Number)
		if !ok {
			return nil, runtimeErrorf(n.Line(), "Operands must be numbers.")
		}
		rn, ok := right.(*object.Number)
		if !ok {
			return nil, runtimeErrorf(n.Line(), "Operands must be numbers.")
		}
		switch n.Op.Lexeme {
		case "-":
			return &object.Number{Value: ln.Value - rn.Value}, nil
		case "*":
			return &object.Number{Value: ln.Value * rn.Value}, nil
		case "/":
			return &object.Number{Value: ln.Value / rn.Value}, nil
		case ">":
			return &object.Boolean{Value: ln.Value > rn.Value}, nil
		case ">=":
			return &object.Boolean{Value: ln.Value >= rn.Value}, nil
		case "<":
			return &object.Boolean{Value: ln.Value < rn.Value}, nil
		case "<=":
			return &object.Boolean{Value: ln.Value <= rn.Value}, nil
		}
	}
	return nil, runtimeErrorf(n.Line(), "Unknown binary operator %q.", n.Op.Lexeme)
}

// evalLogical implements short-circuiting `and`/`or`: the result is
// whichever operand value decided the outcome, not a coerced Boolean
// (spec.md §4.5 — `1 or 2` evaluates to Number(1)).
func (e *Evaluator) evalLogical(n *ast.LogicalExpr) (object.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Op.Lexeme == "or" {
		if object.Truthy(left) {
			return left, nil
		}
	} else {
		if !object.Truthy(left) {
			return left, nil
		}
	}
	return e.evalExpr(n.Right)
}

func (e *Evaluator) evalCall(n *ast.CallExpr) (object.Value, error) {
	callee, err := e.evalExpr(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *Function:
		if len(args) != fn.Arity() {
			return nil, runtimeErrorf(n.Line(), "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return e.callFunction(fn, args)
	case *builtin.Builtin:
		if len(args) != fn.Arity {
			return nil, runtimeErrorf(n.Line(), "Expected %d arguments but got %d.", fn.Arity, len(args))
		}
		v, err := fn.Callback(args)
		if err != nil {
			return nil, runtimeErrorf(n.Line(), "%s", err.Error())
		}
		return v, nil
	default:
		return nil, runtimeErrorf(n.Line(), "Can only call functions and classes.")
	}
}

// callFunction invokes fn: a fresh environment enclosing its captured
// Closure (never the caller's environment — that is what makes a
// function's free variables resolve lexically instead of dynamically),
// the parameters bound positionally, and the body executed as a block.
// A returnSignal raised anywhere inside Body is caught here and nowhere
// else, which is the whole of this interpreter's non-local-return
// mechanism (spec.md §5).
func (e *Evaluator) callFunction(fn *Function, args []object.Value) (object.Value, error) {
	callEnv := environment.New(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param, args[i])
	}

	err := e.executeBlock(fn.Body.Stmts, callEnv)
	if err == nil {
		return &object.Nil{}, nil
	}
	if rs, ok := err.(*returnSignal); ok {
		return rs.value, nil
	}
	return nil, err
}
