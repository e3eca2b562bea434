package parser

import (
	"fmt"
	"strconv"

	"github.com/tofey-ar/nawa/internal/ast"
	"github.com/tofey-ar/nawa/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.curToken.Kind]
	if !ok {
		p.addError(fmt.Sprintf("unexpected expression at line %d", p.curToken.Pos.Line))
		return nil
	}
	left := prefix()

	// Prefix parsers leave curToken on the token after their expression, so
	// a following binary operator is the current token, not the peek token.
	for !p.curIs(token.NEWLINE) && precedence < p.curPrecedence() {
		infix, ok := p.infixFns[p.curToken.Kind]
		if !ok {
			return left
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curToken
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addError(fmt.Sprintf("invalid integer literal %q at line %d", tok.Literal, tok.Pos.Line))
		return nil
	}
	p.nextToken()
	return &ast.IntegerLiteral{Token: tok, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addError(fmt.Sprintf("invalid float literal %q at line %d", tok.Literal, tok.Pos.Line))
		return nil
	}
	p.nextToken()
	return &ast.FloatLiteral{Token: tok, Value: v}
}

func (p *Parser) parseTextLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken()
	return &ast.TextLiteral{Token: tok, Value: tok.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken()
	return &ast.BooleanLiteral{Token: tok, Value: tok.Kind == token.TRUE}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken()
	return &ast.NullLiteral{Token: tok}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume '('
	p.skipNewlines()
	expr := p.parseExpression(LOWEST)
	p.skipNewlines()
	if !p.expect(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseListLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken() // consume '['
	list := &ast.ListLiteral{Token: tok}
	p.skipNewlines()
	for !p.curIs(token.RBRACKET) {
		list.Elements = append(list.Elements, p.parseExpression(LOWEST))
		p.skipNewlines()
		if p.curIs(token.COMMA) {
			p.nextToken()
			p.skipNewlines()
			continue
		}
		break
	}
	p.skipNewlines()
	if !p.expect(token.RBRACKET) {
		return nil
	}
	return list
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken() // consume '{'
	obj := &ast.ObjectLiteral{Token: tok}
	p.skipNewlines()
	for !p.curIs(token.RBRACE) {
		if !p.curIs(token.IDENT) {
			p.addError(fmt.Sprintf("expected %s, got %s", token.IDENT, p.curToken.Kind))
			return nil
		}
		key := p.curToken.Literal
		p.nextToken()
		p.skipNewlines()
		if !p.expect(token.COLON) {
			return nil
		}
		p.skipNewlines()
		val := p.parseExpression(LOWEST)
		obj.Entries = append(obj.Entries, ast.ObjectEntry{Key: key, Value: val})
		p.skipNewlines()
		if p.curIs(token.COMMA) {
			p.nextToken()
			p.skipNewlines()
			continue
		}
		break
	}
	p.skipNewlines()
	if !p.expect(token.RBRACE) {
		return nil
	}
	return obj
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	op := tok.Literal
	if tok.Kind == token.NOT {
		op = "not"
	}
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.UnaryExpression{Token: tok, Operator: op, Operand: operand}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := operatorLiteral(tok)
	precedence := p.curPrecedence()
	p.nextToken()
	p.skipNewlines()
	right := p.parseExpression(precedence)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
}

// parseBinaryExpressionRightAssoc handles `**`, the sole right-associative
// operator (spec.md §4.D level 7): it recurses at one-lower precedence so
// the right operand may itself contain another `**`.
func (p *Parser) parseBinaryExpressionRightAssoc(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := operatorLiteral(tok)
	p.nextToken()
	p.skipNewlines()
	right := p.parseExpression(POWER - 1)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
}

func operatorLiteral(tok token.Token) string {
	switch tok.Kind {
	case token.OR:
		return "or"
	case token.OROR:
		return "or"
	case token.AND:
		return "and"
	case token.ANDAND:
		return "and"
	default:
		return tok.Literal
	}
}

// parseIdentifierExpression parses an identifier-headed primary. Exactly one
// postfix form may follow — call, index, or property access — never chained
// (spec.md §4.D, flagged as a limitation in §9).
func (p *Parser) parseIdentifierExpression() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()

	var expr ast.Expression
	switch p.curToken.Kind {
	case token.LPAREN:
		expr = p.parseCallExpression(ident)
	case token.LBRACKET:
		expr = p.parseIndexExpression(ident)
	case token.DOT:
		expr = p.parsePropertyAccessExpression(ident)
	default:
		return ident
	}
	if expr != nil && (p.curIs(token.LPAREN) || p.curIs(token.LBRACKET) || p.curIs(token.DOT)) {
		p.addError(fmt.Sprintf("chained postfix operation %s is not supported", p.curToken.Kind))
		return nil
	}
	return expr
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curToken // '('
	p.nextToken()
	call := &ast.CallExpression{Token: tok, Callee: callee}
	p.skipNewlines()
	for !p.curIs(token.RPAREN) {
		call.Arguments = append(call.Arguments, p.parseExpression(LOWEST))
		p.skipNewlines()
		if p.curIs(token.COMMA) {
			p.nextToken()
			p.skipNewlines()
			continue
		}
		break
	}
	p.skipNewlines()
	if !p.expect(token.RPAREN) {
		return nil
	}
	return call
}

func (p *Parser) parseIndexExpression(collection ast.Expression) ast.Expression {
	tok := p.curToken // '['
	p.nextToken()
	p.skipNewlines()
	idx := p.parseExpression(LOWEST)
	p.skipNewlines()
	if !p.expect(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpression{Token: tok, Collection: collection, Index: idx}
}

func (p *Parser) parsePropertyAccessExpression(obj ast.Expression) ast.Expression {
	tok := p.curToken // '.'
	p.nextToken()
	if !p.curIs(token.IDENT) {
		p.addError(fmt.Sprintf("expected %s, got %s", token.IDENT, p.curToken.Kind))
		return nil
	}
	prop := p.curToken.Literal
	p.nextToken()
	return &ast.PropertyAccessExpression{Token: tok, Object: obj, Property: prop}
}
