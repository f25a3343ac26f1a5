/*
File    : gomix-lite/scanner/scanner.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scanner performs lexical analysis on gomix-lite source text. It
// is the Go-native home of github.com/akashmaji946/go-mix's lexer package
// (its byte-at-a-time Current/Advance/Peek shape and its single-pass
// error-collection strategy) re-cut to spec.md §4.1's token set and
// longest-match rules.
package scanner

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/gomix-lite/token"
)

// Scanner turns source text into a token stream, one NextToken at a time
// or all at once via Scan. It tracks only a line counter (not a column),
// matching spec.md's Token shape of (kind, lexeme, literal, line).
type Scanner struct {
	src     string
	start   int // start of the lexeme currently being scanned
	current int // index of the next unread byte
	line    int
	errors  []string
}

// New creates a Scanner positioned at the start of src, line 1.
func New(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// HasErrors reports whether any scan error was recorded.
func (s *Scanner) HasErrors() bool { return len(s.errors) > 0 }

// Errors returns every scan error collected so far, each already
// formatted as "[line N] Error: message" (spec.md §7).
func (s *Scanner) Errors() []string { return s.errors }

// Scan tokenizes the entire source in one pass and returns every token
// including the trailing EOF. Scanning never stops early on an error:
// every malformed token in the input is still reported (spec.md §4.1).
func (s *Scanner) Scan() []token.Token {
	var tokens []token.Token
	for {
		tok := s.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// NextToken scans and returns the single next token, skipping whitespace
// and comments first. It returns an EOF token once the source is
// exhausted; callers should stop requesting tokens after that point.
func (s *Scanner) NextToken() token.Token {
	s.skipWhitespaceAndComments()
	s.start = s.current

	if s.atEnd() {
		return token.New(token.EOF, "", s.line)
	}

	c := s.advance()

	switch {
	case c == '(':
		return s.simple(token.LEFT_PAREN)
	case c == ')':
		return s.simple(token.RIGHT_PAREN)
	case c == '{':
		return s.simple(token.LEFT_BRACE)
	case c == '}':
		return s.simple(token.RIGHT_BRACE)
	case c == ',':
		return s.simple(token.COMMA)
	case c == '.':
		return s.simple(token.DOT)
	case c == '-':
		return s.simple(token.MINUS)
	case c == '+':
		return s.simple(token.PLUS)
	case c == ';':
		return s.simple(token.SEMICOLON)
	case c == '*':
		return s.simple(token.STAR)
	case c == '/':
		return s.simple(token.SLASH)
	case c == '!':
		return s.oneOrTwo('=', token.BANG_EQUAL, token.BANG)
	case c == '=':
		return s.oneOrTwo('=', token.EQUAL_EQUAL, token.EQUAL)
	case c == '<':
		return s.oneOrTwo('=', token.LESS_EQUAL, token.LESS)
	case c == '>':
		return s.oneOrTwo('=', token.GREATER_EQUAL, token.GREATER)
	case c == '"':
		return s.readString()
	case isDigit(c):
		return s.readNumber()
	case isAlpha(c):
		return s.readIdentifier()
	default:
		s.errorf("Unexpected character: %c", c)
		return s.NextToken()
	}
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.src) }

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) lexeme() string { return s.src[s.start:s.current] }

func (s *Scanner) simple(kind token.Type) token.Token {
	return token.New(kind, s.lexeme(), s.line)
}

// oneOrTwo implements the longest-match rule for the four two-character
// operators (!=, ==, <=, >=): consume the second char when present,
// otherwise fall back to the single-character token.
func (s *Scanner) oneOrTwo(second byte, twoChar, oneChar token.Type) token.Token {
	if s.match(second) {
		return token.New(twoChar, s.lexeme(), s.line)
	}
	return token.New(oneChar, s.lexeme(), s.line)
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for s.peek() != '\n' && !s.atEnd() {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// readString scans a `"..."` literal. Escape processing is not
// performed — the literal's value is the raw text between the quotes
// (spec.md §4.1). An unterminated string is reported at the line the
// literal began on.
func (s *Scanner) readString() token.Token {
	startLine := s.line
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.errorAt(startLine, "Unterminated string.")
		return s.NextToken()
	}
	s.advance() // closing quote
	value := s.src[s.start+1 : s.current-1]
	return token.NewLiteral(token.STRING, s.lexeme(), value, startLine)
}

// readNumber scans digits, an optional fractional part, and nothing
// else: a leading or trailing '.' is not part of the number (spec.md
// §4.1 — "2." scans as NUMBER("2") followed by DOT).
func (s *Scanner) readNumber() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lexeme := s.lexeme()
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.errorf("Malformed number: %s", lexeme)
		value = 0
	}
	return token.NewLiteral(token.NUMBER, lexeme, value, s.line)
}

// readIdentifier scans [A-Za-z_][A-Za-z0-9_]* and classifies the result
// as a keyword or a plain identifier (spec.md §4.1). `true`, `false`, and
// `nil` are classified as their own keyword token types here; the parser
// is the layer that turns those into object.Value literals.
func (s *Scanner) readIdentifier() token.Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lexeme := s.lexeme()
	return token.New(token.LookupIdentifier(lexeme), lexeme, s.line)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

func (s *Scanner) errorf(format string, args ...interface{}) {
	s.errorAt(s.line, fmt.Sprintf(format, args...))
}

func (s *Scanner) errorAt(line int, msg string) {
	s.errors = append(s.errors, fmt.Sprintf("[line %d] Error: %s", line, msg))
}
