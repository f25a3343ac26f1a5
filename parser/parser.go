/*
File    : gomix-lite/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser with precedence
// climbing for gomix-lite (spec.md §4.2). It keeps go-mix's parser
// package's error-collection idiom — Errors []string, HasErrors/GetErrors,
// never panicking on a syntax error — but replaces go-mix's Pratt/
// function-table dispatch with direct recursive-descent methods, one per
// grammar rule, since spec.md's grammar is already precedence-ordered top
// to bottom and a table would only obscure it.
package parser

import (
	"fmt"

	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/object"
	"github.com/akashmaji946/gomix-lite/scanner"
	"github.com/akashmaji946/gomix-lite/token"
)

const maxArgs = 255

// syncSet is the panic-mode recovery set from spec.md §4.2: after an
// error, tokens are discarded until a consumed ';' or one of these
// statement-starting keywords is the next token.
var syncSet = map[token.Type]bool{
	token.CLASS:  true,
	token.FUN:    true,
	token.FOR:    true,
	token.IF:     true,
	token.PRINT:  true,
	token.RETURN: true,
	token.VAR:    true,
	token.WHILE:  true,
}

// Parser consumes a flat token slice (produced by scanning the whole
// source up front) and produces an AST. It never panics: a syntax error
// is recorded in Errors and parsing resynchronizes and continues, so a
// single run reports every parseable diagnostic (spec.md §4.2, §7).
type Parser struct {
	tokens  []token.Token
	current int
	Errors  []string

	// bareExpression is true only when the whole program parsed as
	// exactly one expression statement; "evaluate" CLI mode consults this
	// to decide whether to print the statement's value (spec.md §4.6).
	bareExpression bool
}

// New scans src completely and returns a Parser ready to produce
// statements or a single expression. Scanner errors are folded into the
// parser's own Errors list so callers only need to check one place.
func New(src string) *Parser {
	sc := scanner.New(src)
	tokens := sc.Scan()
	p := &Parser{tokens: tokens}
	p.Errors = append(p.Errors, sc.Errors()...)
	return p
}

// HasErrors reports whether scanning or parsing produced any error.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// AllTokens returns every token scanned from the source, including the
// trailing EOF, for the "tokenize" CLI mode (spec.md §4.6).
func (p *Parser) AllTokens() []token.Token { return p.tokens }

// GetErrors returns every collected diagnostic, scanner and parser alike.
func (p *Parser) GetErrors() []string { return p.Errors }

func (p *Parser) peek() token.Token     { return p.tokens[p.current] }
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }
func (p *Parser) atEnd() bool           { return p.peek().Type == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == kind
}

func (p *Parser) matchAny(kinds ...token.Type) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// parseError unwinds a grammar rule after a diagnostic has already been
// recorded in p.Errors; declaration() recovers it via synchronize.
type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }

func (p *Parser) errorAt(tok token.Token, message string) *parseError {
	var where string
	if tok.Type == token.EOF {
		where = " at end"
	} else {
		where = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}
	full := fmt.Sprintf("[line %d] Error%s: %s", tok.Line, where, message)
	p.Errors = append(p.Errors, full)
	return &parseError{msg: full}
}

// consume advances past the expected token kind or reports a syntax
// error at the current token.
func (p *Parser) consume(kind token.Type, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), message)
}

// synchronize discards tokens until the most likely start of the next
// statement: a consumed ';', or a token that begins a new statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		if syncSet[p.peek().Type] {
			return
		}
		p.advance()
	}
}

// ParseProgram parses the whole token stream as a sequence of
// declarations (spec.md's `program := declaration* EOF`).
func (p *Parser) ParseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	onlyExpression := true
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			continue
		}
		if stmt == nil {
			continue
		}
		if _, ok := stmt.(*ast.ExpressionStmt); !ok {
			onlyExpression = false
		}
		stmts = append(stmts, stmt)
	}
	p.bareExpression = onlyExpression && len(stmts) == 1
	return stmts
}

// ParseExpression parses the input as a single expression, used by the
// "parse" CLI mode (spec.md §4.2, §4.6).
func (p *Parser) ParseExpression() ast.Expr {
	expr, err := p.expression()
	if err != nil {
		return nil
	}
	return expr
}

// IsBareExpression reports whether the most recent ParseProgram call
// produced exactly one statement and that statement was an expression
// statement — the condition spec.md §4.6 uses to decide whether
// "evaluate" mode should print the statement's value.
func (p *Parser) IsBareExpression() bool { return p.bareExpression }

// declaration parses `funDecl | varDecl | statement`, recovering via
// synchronize() on error so the caller keeps making progress.
func (p *Parser) declaration() (stmt ast.Stmt, err error) {
	defer func() {
		if err != nil {
			p.synchronize()
		}
	}()

	switch {
	case p.matchAny(token.FUN):
		return p.functionDeclaration("function")
	case p.matchAny(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) functionDeclaration(kind string) (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind)); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d parameters.", maxArgs))
			}
			param, err := p.consume(token.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind)); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expr
	if p.matchAny(token.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.matchAny(token.FOR):
		return p.forStatement()
	case p.matchAny(token.IF):
		return p.ifStatement()
	case p.matchAny(token.PRINT):
		return p.printStatement()
	case p.matchAny(token.RETURN):
		return p.returnStatement()
	case p.matchAny(token.WHILE):
		return p.whileStatement()
	case p.matchAny(token.LEFT_BRACE):
		return p.block()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	keyword := p.previous()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expr: expr, Tok: keyword}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()
	var value ast.Expr
	var err error
	if !p.check(token.SEMICOLON) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

// expressionStatement parses `expression ";"`. The trailing ";" is
// waived when the expression runs straight into EOF: a program that is
// nothing but one expression is accepted without it, which is what lets
// "evaluate" mode treat a bare expression (spec.md §4.2's "no ';'"
// classification) as a complete program instead of a syntax error.
func (p *Parser) expressionStatement() (ast.Stmt, error) {
	tok := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.matchAny(token.SEMICOLON) || p.atEnd() {
		return &ast.ExpressionStmt{Expr: expr, Tok: tok}, nil
	}
	_, err = p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return nil, err
}

// block parses `"{" declaration* "}"`, assuming the opening brace was
// already consumed by the caller.
func (p *Parser) block() (*ast.BlockStmt, error) {
	openBrace := p.previous()
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		stmt, err := p.declaration()
		if err == nil && stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := p.consume(token.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return &ast.BlockStmt{Stmts: stmts, Tok: openBrace}, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	ifTok := p.previous()
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.matchAny(token.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Cond: ifTok, Expr: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	whileTok := p.previous()
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Tok: whileTok, Cond: cond, Body: body}, nil
}

// forStatement implements spec.md §4.2's exact desugaring:
// Block(initializer?, While(condition ?? true, Block(body, increment?))).
func (p *Parser) forStatement() (ast.Stmt, error) {
	forTok := p.previous()
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.matchAny(token.SEMICOLON):
		initializer = nil
	case p.matchAny(token.VAR):
		initializer, err = p.varDeclaration()
		if err != nil {
			return nil, err
		}
	default:
		initializer, err = p.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	closeParen, err := p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")
	if err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.BlockStmt{
			Tok:   closeParen,
			Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: increment, Tok: closeParen}},
		}
	}

	if condition == nil {
		condition = &ast.LiteralExpr{Value: &object.Boolean{Value: true}, Tok: forTok}
	}
	var loop ast.Stmt = &ast.WhileStmt{Tok: forTok, Cond: condition, Body: body}

	if initializer != nil {
		loop = &ast.BlockStmt{Tok: forTok, Stmts: []ast.Stmt{initializer, loop}}
	}
	return loop, nil
}

// expression is the grammar's entry point: `assignment`.
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses `(logic_or | IDENTIFIER) "=" assignment | logic_or`.
// An invalid target ("3 = 4") is reported at the '=' token without
// producing an AssignExpr, and parsing continues with the already-parsed
// left-hand side intact (spec.md §4.2, §7).
func (p *Parser) assignment() (ast.Expr, error) {
	left, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.matchAny(token.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if variable, ok := left.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Name: variable.Name, Value: value}, nil
		}
		p.errorAt(equals, "Invalid assignment target.")
		return left, nil
	}
	return left, nil
}

func (p *Parser) or() (ast.Expr, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.matchAny(token.OR) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) and() (ast.Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.matchAny(token.AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.matchAny(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.matchAny(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) term() (ast.Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.matchAny(token.MINUS, token.PLUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.matchAny(token.SLASH, token.STAR) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.matchAny(token.BANG, token.MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Right: right}, nil
	}
	return p.call()
}

// call parses `primary ( "(" arguments? ")" )*`, chaining repeated calls
// such as `f()()`. Argument-count overflow beyond 255 is a non-fatal
// diagnostic, matching the parameter-list rule (spec.md §4.2).
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		if p.matchAny(token.LEFT_PAREN) {
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d arguments.", maxArgs))
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	closingParen, err := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Callee: callee, ClosingParen: closingParen, Args: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.matchAny(token.FALSE):
		return &ast.LiteralExpr{Value: &object.Boolean{Value: false}, Tok: p.previous()}, nil
	case p.matchAny(token.TRUE):
		return &ast.LiteralExpr{Value: &object.Boolean{Value: true}, Tok: p.previous()}, nil
	case p.matchAny(token.NIL):
		return &ast.LiteralExpr{Value: &object.Nil{}, Tok: p.previous()}, nil
	case p.matchAny(token.NUMBER):
		tok := p.previous()
		return &ast.LiteralExpr{Value: &object.Number{Value: tok.Literal.(float64)}, Tok: tok}, nil
	case p.matchAny(token.STRING):
		tok := p.previous()
		return &ast.LiteralExpr{Value: &object.String{Value: tok.Literal.(string)}, Tok: tok}, nil
	case p.matchAny(token.IDENTIFIER):
		return &ast.VariableExpr{Name: p.previous()}, nil
	case p.matchAny(token.LEFT_PAREN):
		paren := p.previous()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.GroupingExpr{Inner: inner, Paren: paren}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}
