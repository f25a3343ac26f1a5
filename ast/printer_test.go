/*
File    : gomix-lite/ast/printer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/akashmaji946/gomix-lite/object"
	"github.com/akashmaji946/gomix-lite/token"
	"github.com/stretchr/testify/assert"
)

func TestPrint_BinaryAndGrouping(t *testing.T) {
	// (1 + 2) * -3
	one := &LiteralExpr{Value: &object.Number{Value: 1}, Tok: token.New(token.NUMBER, "1", 1)}
	two := &LiteralExpr{Value: &object.Number{Value: 2}, Tok: token.New(token.NUMBER, "2", 1)}
	three := &LiteralExpr{Value: &object.Number{Value: 3}, Tok: token.New(token.NUMBER, "3", 1)}

	plus := &BinaryExpr{Left: one, Op: token.New(token.PLUS, "+", 1), Right: two}
	group := &GroupingExpr{Inner: plus, Paren: token.New(token.LEFT_PAREN, "(", 1)}
	neg := &UnaryExpr{Op: token.New(token.MINUS, "-", 1), Right: three}
	mul := &BinaryExpr{Left: group, Op: token.New(token.STAR, "*", 1), Right: neg}

	assert.Equal(t, "(* (group (+ 1.0 2.0)) (- 3.0))", Print(mul))
}

func TestPrint_VariableAndAssign(t *testing.T) {
	v := &VariableExpr{Name: token.New(token.IDENTIFIER, "x", 1)}
	assert.Equal(t, "x", Print(v))

	assign := &AssignExpr{Name: token.New(token.IDENTIFIER, "x", 1), Value: &LiteralExpr{Value: &object.Number{Value: 5}}}
	assert.Equal(t, "(= x 5.0)", Print(assign))
}
