// Package parser implements a recursive-descent, precedence-climbing parser
// for Nawa source (spec.md §4.D).
package parser

import (
	"fmt"

	"github.com/tofey-ar/nawa/internal/ast"
	"github.com/tofey-ar/nawa/internal/lexer"
	"github.com/tofey-ar/nawa/internal/token"
)

// Precedence levels, lowest to highest (spec.md §4.D).
const (
	_ int = iota
	LOWEST
	OR_PREC
	AND_PREC
	EQUALS
	COMPARE
	SUM
	PRODUCT
	POWER
	PREFIX
	CALL_PREC
)

var precedences = map[token.Kind]int{
	token.OR:       OR_PREC,
	token.OROR:     OR_PREC,
	token.AND:      AND_PREC,
	token.ANDAND:   AND_PREC,
	token.EQ:       EQUALS,
	token.NEQ:      EQUALS,
	token.GT:       COMPARE,
	token.LT:       COMPARE,
	token.GTE:      COMPARE,
	token.LTE:      COMPARE,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.STARSTAR: POWER,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Error is a single parse-time diagnostic (spec.md §4.D).
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d", e.Message, e.Pos.Line)
}

// Parser consumes a token stream and produces a Program AST.
type Parser struct {
	l      *lexer.Lexer
	errors []*Error

	curToken  token.Token
	peekToken token.Token

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New creates a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = map[token.Kind]prefixParseFn{
		token.INT:      p.parseIntegerLiteral,
		token.FLOAT:    p.parseFloatLiteral,
		token.STRING:   p.parseTextLiteral,
		token.TRUE:     p.parseBooleanLiteral,
		token.FALSE:    p.parseBooleanLiteral,
		token.NULL:     p.parseNullLiteral,
		token.IDENT:    p.parseIdentifierExpression,
		token.LPAREN:   p.parseGroupedExpression,
		token.LBRACKET: p.parseListLiteral,
		token.LBRACE:   p.parseObjectLiteral,
		token.MINUS:    p.parseUnaryExpression,
		token.NOT:      p.parseUnaryExpression,
	}

	p.infixFns = map[token.Kind]infixParseFn{
		token.PLUS:     p.parseBinaryExpression,
		token.MINUS:    p.parseBinaryExpression,
		token.STAR:     p.parseBinaryExpression,
		token.SLASH:    p.parseBinaryExpression,
		token.PERCENT:  p.parseBinaryExpression,
		token.STARSTAR: p.parseBinaryExpressionRightAssoc,
		token.EQ:       p.parseBinaryExpression,
		token.NEQ:      p.parseBinaryExpression,
		token.GT:       p.parseBinaryExpression,
		token.LT:       p.parseBinaryExpression,
		token.GTE:      p.parseBinaryExpression,
		token.LTE:      p.parseBinaryExpression,
		token.OR:       p.parseBinaryExpression,
		token.OROR:     p.parseBinaryExpression,
		token.AND:      p.parseBinaryExpression,
		token.ANDAND:   p.parseBinaryExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns accumulated parse diagnostics.
func (p *Parser) Errors() []*Error {
	return p.errors
}

func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &Error{Message: msg, Pos: p.curToken.Pos})
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekToken.Kind == k }

// skipNewlines consumes NEWLINE tokens; the parser treats them as
// whitespace at every structural boundary (spec.md §4.D).
func (p *Parser) skipNewlines() {
	for p.curIs(token.NEWLINE) {
		p.nextToken()
	}
}

func (p *Parser) expect(k token.Kind) bool {
	if p.curIs(k) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf("expected %s, got %s", k, p.curToken.Kind))
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

// ParseProgram parses the whole token stream into a Program node. Parsing
// fails fast on the first error (spec.md §4.D).
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	p.skipNewlines()
	for !p.curIs(token.EOF) && len(p.errors) == 0 {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.skipNewlines()
	}
	return program
}
