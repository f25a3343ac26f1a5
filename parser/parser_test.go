/*
File    : gomix-lite/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpression_PrecedenceAndGrouping(t *testing.T) {
	p := New("(1 + 2) * -3")
	expr := p.ParseExpression()
	require.False(t, p.HasErrors())
	assert.Equal(t, "(* (group (+ 1.0 2.0)) (- 3.0))", ast.Print(expr))
}

func TestParseExpression_InvalidAssignmentTargetIsReportedNotFatal(t *testing.T) {
	p := New("3 = 4")
	_ = p.ParseExpression()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0], "Invalid assignment target.")
}

func TestParseProgram_BareExpressionStatement(t *testing.T) {
	p := New(`"foo" + "bar";`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)
	assert.True(t, p.IsBareExpression())
}

func TestParseProgram_PrintIsNotBareExpression(t *testing.T) {
	p := New(`print 1 + 2;`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)
	assert.False(t, p.IsBareExpression())
	_, ok := stmts[0].(*ast.PrintStmt)
	assert.True(t, ok)
}

func TestParseProgram_ForLoopDesugarsToBlockWhile(t *testing.T) {
	p := New(`for (var i = 0; i < 3; i = i + 1) print i;`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)
	_, ok = block.Stmts[0].(*ast.VarStmt)
	assert.True(t, ok)
	whileStmt, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2)
}

func TestParseProgram_FunctionDeclaration(t *testing.T) {
	p := New(`fun add(a, b) { return a + b; }`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)

	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
}

func TestParseProgram_SynchronizeRecoversAfterError(t *testing.T) {
	p := New("var = ; var y = 1;")
	stmts := p.ParseProgram()
	require.True(t, p.HasErrors())
	require.Len(t, stmts, 1)
	varStmt, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "y", varStmt.Name.Lexeme)
}

func TestParseProgram_TooManyParametersIsNonFatal(t *testing.T) {
	var params string
	for i := 0; i < 256; i++ {
		if i > 0 {
			params += ", "
		}
		params += "p"
	}
	src := "fun f(" + params + ") { return 0; }"
	p := New(src)
	stmts := p.ParseProgram()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0], "Can't have more than 255 parameters.")
	require.Len(t, stmts, 1)
}
