/*
File    : gomix-lite/scanner/scanner_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scanner

import (
	"testing"

	"github.com/akashmaji946/gomix-lite/token"
	"github.com/stretchr/testify/assert"
)

func typesOf(tokens []token.Token) []token.Type {
	kinds := make([]token.Type, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Type
	}
	return kinds
}

func TestScan_SingleAndTwoCharOperators(t *testing.T) {
	tokens := New("!= == <= >= < > ! =").Scan()
	assert.Equal(t, []token.Type{
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LESS, token.GREATER, token.BANG, token.EQUAL, token.EOF,
	}, typesOf(tokens))
}

func TestScan_NumberDoesNotConsumeTrailingDot(t *testing.T) {
	s := New("2.")
	tokens := s.Scan()
	assert.Equal(t, []token.Type{token.NUMBER, token.DOT, token.EOF}, typesOf(tokens))
	assert.Equal(t, "2", tokens[0].Lexeme)
	assert.Equal(t, 2.0, tokens[0].Literal)
}

func TestScan_NumberWithFraction(t *testing.T) {
	tokens := New("3.14").Scan()
	assert.Equal(t, []token.Type{token.NUMBER, token.EOF}, typesOf(tokens))
	assert.Equal(t, 3.14, tokens[0].Literal)
}

func TestScan_StringLiteralHasNoEscapeProcessing(t *testing.T) {
	tokens := New(`"hi\nthere"`).Scan()
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, `hi\nthere`, tokens[0].Literal)
}

func TestScan_UnterminatedStringIsAnError(t *testing.T) {
	s := New(`"never closed`)
	s.Scan()
	assert.True(t, s.HasErrors())
	assert.Contains(t, s.Errors()[0], "Unterminated string.")
}

func TestScan_KeywordsAndIdentifiers(t *testing.T) {
	tokens := New("var x = orchid").Scan()
	assert.Equal(t, []token.Type{token.VAR, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER, token.EOF}, typesOf(tokens))
}

func TestScan_LineCommentsAreSkipped(t *testing.T) {
	tokens := New("1 // a comment\n2").Scan()
	assert.Equal(t, []token.Type{token.NUMBER, token.NUMBER, token.EOF}, typesOf(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScan_UnexpectedCharacterIsReportedAndSkipped(t *testing.T) {
	s := New("@")
	tokens := s.Scan()
	assert.True(t, s.HasErrors())
	assert.Contains(t, s.Errors()[0], "Unexpected character: @")
	assert.Equal(t, []token.Type{token.EOF}, typesOf(tokens))
}
