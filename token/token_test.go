/*
File    : gomix-lite/token/token_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdentifier(t *testing.T) {
	assert.Equal(t, VAR, LookupIdentifier("var"))
	assert.Equal(t, IDENTIFIER, LookupIdentifier("orchid"))
}

func TestTokenStringFormat(t *testing.T) {
	tok := New(LEFT_PAREN, "(", 1)
	assert.Equal(t, "LEFT_PAREN ( null", tok.String())
}

func TestTokenStringFormat_NumberKeepsTrailingZero(t *testing.T) {
	tok := NewLiteral(NUMBER, "3", 3.0, 1)
	assert.Equal(t, "NUMBER 3 3.0", tok.String())
}

func TestTokenStringFormat_StringLiteral(t *testing.T) {
	tok := NewLiteral(STRING, `"hi"`, "hi", 1)
	assert.Equal(t, `STRING "hi" hi`, tok.String())
}
