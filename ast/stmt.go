/*
File    : gomix-lite/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/gomix-lite/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmt()
}

// ExpressionStmt evaluates Expr for its side effects and discards the
// result (except at the top level in "evaluate" mode for a bare
// expression — see the eval package).
type ExpressionStmt struct {
	Expr Expr
	Tok  token.Token
}

func (s *ExpressionStmt) Line() int { return s.Tok.Line }
func (s *ExpressionStmt) stmt()     {}

// PrintStmt evaluates Expr and writes its string form followed by a
// newline (spec.md §4.5).
type PrintStmt struct {
	Expr Expr
	Tok  token.Token
}

func (s *PrintStmt) Line() int { return s.Tok.Line }
func (s *PrintStmt) stmt()     {}

// VarStmt declares a new binding. Initializer is nil for `var x;`, in
// which case the evaluator binds object.Uninitialized rather than nil
// (spec.md §9).
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) Line() int { return s.Name.Line }
func (s *VarStmt) stmt()     {}

// BlockStmt introduces a new lexical scope around Stmts. The parser also
// uses BlockStmt to lower `for` loops (spec.md §4.2's desugaring).
type BlockStmt struct {
	Stmts []Stmt
	Tok   token.Token
}

func (s *BlockStmt) Line() int { return s.Tok.Line }
func (s *BlockStmt) stmt()     {}

// IfStmt is a conditional; Else is nil when there is no else clause.
type IfStmt struct {
	Cond token.Token // the `if` keyword token, for line reporting
	Expr Expr
	Then Stmt
	Else Stmt
}

func (s *IfStmt) Line() int { return s.Cond.Line }
func (s *IfStmt) stmt()     {}

// WhileStmt is a condition-checked loop. The parser also emits WhileStmt
// as part of lowering `for` (spec.md §4.2).
type WhileStmt struct {
	Tok  token.Token // the `while` keyword token
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) Line() int { return s.Tok.Line }
func (s *WhileStmt) stmt()     {}

// FunctionStmt declares a named function: parameters plus a block body.
// Params are plain identifier tokens; the parser enforces the 255-
// parameter soft cap (spec.md §4.2) without rejecting the parse.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   *BlockStmt
}

func (s *FunctionStmt) Line() int { return s.Name.Line }
func (s *FunctionStmt) stmt()     {}

// ReturnStmt unwinds the nearest enclosing function call with Value's
// result (Nil if Value is nil, i.e. a bare `return;`).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) Line() int { return s.Keyword.Line }
func (s *ReturnStmt) stmt()     {}
