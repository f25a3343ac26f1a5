/*
File    : gomix-lite/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSource mirrors the "evaluate" CLI mode's dispatch: a bare expression
// is evaluated and its result returned, anything else is executed as a
// statement list with print output captured in buf.
func runSource(t *testing.T, src string) (string, error) {
	t.Helper()
	p := parser.New(src)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())

	var buf bytes.Buffer
	e := New()
	e.Writer = &buf

	if p.IsBareExpression() {
		exprStmt := stmts[0].(*ast.ExpressionStmt)
		value, err := e.EvalExpression(exprStmt.Expr)
		if err != nil {
			return "", err
		}
		return value.ToString(), nil
	}

	if err := e.Run(stmts); err != nil {
		return buf.String(), err
	}
	return buf.String(), nil
}

func TestEvaluate_ArithmeticAndPrint(t *testing.T) {
	out, err := runSource(t, "print 1 + 2;")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestEvaluate_StringConcatenation(t *testing.T) {
	out, err := runSource(t, `"foo" + "bar"`)
	require.NoError(t, err)
	assert.Equal(t, "foobar", out)
}

func TestEvaluate_DivisionByZeroProducesInfinityNotCrash(t *testing.T) {
	out, err := runSource(t, "print 1 / 0;")
	require.NoError(t, err)
	assert.Equal(t, "Infinity\n", out)
}

func TestEvaluate_BlockScopingShadowsThenRestores(t *testing.T) {
	out, err := runSource(t, "var a = 1; { var a = 2; print a; } print a;")
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestEvaluate_RecursiveFibonacci(t *testing.T) {
	out, err := runSource(t, "fun f(n){ if (n<=1) return n; return f(n-1)+f(n-2);} print f(10);")
	require.NoError(t, err)
	assert.Equal(t, "55\n", out)
}

func TestEvaluate_MismatchedOperandsIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `1 + "x";`)
	require.Error(t, err)
	assert.IsType(t, &RuntimeError{}, err)
}

func TestEvaluate_ClosureCounterAccumulates(t *testing.T) {
	out, err := runSource(t, `
fun make() { var i = 0; fun inc() { i = i + 1; return i; } return inc; }
var c = make();
print c();
print c();
print c();
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestEvaluate_ShortCircuitOr_DoesNotEvaluateRightOperand(t *testing.T) {
	out, err := runSource(t, `
var calls = 0;
fun sideEffect() { calls = calls + 1; return true; }
var a = true or sideEffect();
print calls;
`)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestEvaluate_ShortCircuitAnd_DoesNotEvaluateRightOperand(t *testing.T) {
	out, err := runSource(t, `
var calls = 0;
fun sideEffect() { calls = calls + 1; return true; }
var a = false and sideEffect();
print calls;
`)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestEvaluate_LogicalReturnsOperandValueNotCoercedBool(t *testing.T) {
	out, err := runSource(t, "print 1 or 2;")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestEvaluate_ReadingUninitializedVariableIsRuntimeError(t *testing.T) {
	_, err := runSource(t, "var x; print x;")
	require.Error(t, err)
}

func TestEvaluate_AssignDoesNotCreateNewBinding(t *testing.T) {
	_, err := runSource(t, "x = 1;")
	require.Error(t, err)
}

func TestEvaluate_ArityMismatchIsRuntimeError(t *testing.T) {
	_, err := runSource(t, "fun f(a, b) { return a + b; } f(1);")
	require.Error(t, err)
}

func TestEvaluate_CallDoesNotMutateCallerEnvironment(t *testing.T) {
	out, err := runSource(t, `
var x = 1;
fun f(x) { x = 99; return x; }
print f(x);
print x;
`)
	require.NoError(t, err)
	assert.Equal(t, "99\n1\n", out)
}
