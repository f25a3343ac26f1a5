/*
File    : gomix-lite/ast/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/gomix-lite/object"
)

// Print renders e as a single line of Lisp-style S-expressions, the
// format the "parse" CLI mode emits (spec.md §4.3, §8 scenario 1):
// binary/unary nodes become `(op left right)` / `(op right)`, grouping
// becomes `(group expr)`, numbers render with at least a ".0" fraction
// (see literalText), and other literals render via their own ToString with
// strings losing their surrounding quotes.
//
// This mirrors go-mix's main/print_visitor.go in spirit (a dedicated
// visitor walking the tree for debug display) but renders the exact
// parenthesized grammar spec.md specifies rather than go-mix's indented
// "Visiting X Node" trace format.
func Print(e Expr) string {
	switch n := e.(type) {
	case *LiteralExpr:
		return literalText(n.Value)
	case *VariableExpr:
		return n.Name.Lexeme
	case *GroupingExpr:
		return parenthesize("group", n.Inner)
	case *UnaryExpr:
		return parenthesize(n.Op.Lexeme, n.Right)
	case *BinaryExpr:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *LogicalExpr:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *AssignExpr:
		return parenthesize("= "+n.Name.Lexeme, n.Value)
	case *CallExpr:
		args := append([]Expr{n.Callee}, n.Args...)
		return parenthesize("call", args...)
	default:
		return ""
	}
}

// literalText renders a LiteralExpr's value for the "parse" CLI mode,
// which keeps a number's trailing ".0" (spec.md §8 scenario 1:
// `(* (group (+ 1.0 2.0)) (- 3.0))`) — unlike object.Number.ToString,
// used by "evaluate" mode, which drops it.
func literalText(v object.Value) string {
	if n, ok := v.(*object.Number); ok {
		s := fmt.Sprintf("%g", n.Value)
		for i := 0; i < len(s); i++ {
			if s[i] == '.' || s[i] == 'e' || s[i] == 'E' {
				return s
			}
		}
		return s + ".0"
	}
	return v.ToString()
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(Print(e))
	}
	b.WriteByte(')')
	return b.String()
}
