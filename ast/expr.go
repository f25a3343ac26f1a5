/*
File    : gomix-lite/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the tagged-variant tree the parser builds and the
// evaluator walks. It plays the role go-mix's parser/node.go plays there,
// cut down to the node set spec.md §3 names and reshaped so each node
// carries the originating token needed to report its source line
// (spec.md: "Each node holds enough of the originating token to report
// its source line at runtime").
package ast

import (
	"github.com/akashmaji946/gomix-lite/object"
	"github.com/akashmaji946/gomix-lite/token"
)

// Node is implemented by every expression and statement node; Line lets
// the evaluator report the source position of a runtime error without
// needing a separate position table.
type Node interface {
	Line() int
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	expr()
}

// LiteralExpr wraps an already-resolved constant value: a number, string,
// boolean, or nil. The parser constructs the Value directly from the
// scanned token so the evaluator never re-parses literal text.
type LiteralExpr struct {
	Value object.Value
	Tok   token.Token
}

func (e *LiteralExpr) Line() int { return e.Tok.Line }
func (e *LiteralExpr) expr()     {}

// VariableExpr references a named binding; Name is the identifier token so
// both its lexeme and line are available.
type VariableExpr struct {
	Name token.Token
}

func (e *VariableExpr) Line() int { return e.Name.Line }
func (e *VariableExpr) expr()     {}

// GroupingExpr is a parenthesized sub-expression, kept as its own node
// (rather than folded away) so the pretty-printer can render `(group ...)`
// per spec.md §4.3.
type GroupingExpr struct {
	Inner Expr
	Paren token.Token
}

func (e *GroupingExpr) Line() int { return e.Paren.Line }
func (e *GroupingExpr) expr()     {}

// UnaryExpr is a prefix operator application: `-x` or `!x`.
type UnaryExpr struct {
	Op    token.Token
	Right Expr
}

func (e *UnaryExpr) Line() int { return e.Op.Line }
func (e *UnaryExpr) expr()     {}

// BinaryExpr is an infix arithmetic/comparison/equality operator
// application.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *BinaryExpr) Line() int { return e.Op.Line }
func (e *BinaryExpr) expr()     {}

// LogicalExpr is `and`/`or`, kept distinct from BinaryExpr because its
// right operand must only be evaluated when short-circuiting requires it
// (spec.md §4.5).
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *LogicalExpr) Line() int { return e.Op.Line }
func (e *LogicalExpr) expr()     {}

// AssignExpr binds a new value to an existing variable and yields that
// value (spec.md §4.5).
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) Line() int { return e.Name.Line }
func (e *AssignExpr) expr()     {}

// CallExpr invokes Callee with Args. ClosingParen is retained specifically
// so call-site runtime errors ("Can only call functions and classes.",
// arity mismatches) report the closing paren's line, per spec.md §4.5.
type CallExpr struct {
	Callee       Expr
	ClosingParen token.Token
	Args         []Expr
}

func (e *CallExpr) Line() int { return e.ClosingParen.Line }
func (e *CallExpr) expr()     {}
