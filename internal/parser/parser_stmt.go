package parser

import (
	"fmt"

	"github.com/tofey-ar/nawa/internal/ast"
	"github.com/tofey-ar/nawa/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case token.PRINT:
		return p.parsePrintStatement(false)
	case token.PRINTLINE:
		return p.parsePrintStatement(true)
	case token.VAR:
		return p.parseVarDecl(false)
	case token.CONST:
		return p.parseVarDecl(true)
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.FUNCTION:
		return p.parseFunctionDefStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		tok := p.curToken
		p.nextToken()
		return &ast.BreakStatement{Token: tok}
	case token.CONTINUE:
		tok := p.curToken
		p.nextToken()
		return &ast.ContinueStatement{Token: tok}
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

func (p *Parser) parsePrintStatement(newline bool) ast.Statement {
	tok := p.curToken
	p.nextToken()
	value := p.parseExpression(LOWEST)
	return &ast.PrintStatement{Token: tok, Value: value, TrailingNewline: newline}
}

func (p *Parser) parseVarDecl(isConst bool) ast.Statement {
	tok := p.curToken
	p.nextToken()
	if !p.curIs(token.IDENT) {
		p.addError(fmt.Sprintf("expected %s, got %s", token.IDENT, p.curToken.Kind))
		return nil
	}
	name := p.curToken.Literal
	p.nextToken()

	decl := &ast.VarDeclStatement{Token: tok, Name: name, IsConst: isConst}

	if isConst {
		if !p.expect(token.ASSIGN) {
			return nil
		}
		decl.Value = p.parseExpression(LOWEST)
		return decl
	}

	if p.curIs(token.ASSIGN) {
		p.nextToken()
		decl.Value = p.parseExpression(LOWEST)
	}
	return decl
}

func (p *Parser) parseBlock() *ast.Block {
	if !p.expect(token.LBRACE) {
		return nil
	}
	block := &ast.Block{}
	p.skipNewlines()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) && len(p.errors) == 0 {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.skipNewlines()
	}
	if !p.expect(token.RBRACE) {
		return nil
	}
	return block
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	p.skipNewlines()
	then := p.parseBlock()

	stmt := &ast.IfStatement{Token: tok, Condition: cond, Then: then}

	// NEWLINE is whitespace at every structural boundary (spec.md §4.D), so
	// it is always safe to skip past it here to look for a trailing
	// 'else'/'else if' clause: skipping it early never changes the parse
	// when no else-clause follows, since the enclosing block/program loop
	// would skip the same newlines anyway.
	p.skipNewlines()
	if p.curIs(token.ELSE) {
		p.nextToken()
		p.skipNewlines()
		if p.curIs(token.IF) {
			nested := p.parseIfStatement()
			stmt.Else = &ast.Block{Statements: []ast.Statement{nested}}
		} else {
			stmt.Else = p.parseBlock()
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	p.skipNewlines()
	body := p.parseBlock()
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	if !p.curIs(token.IDENT) {
		p.addError(fmt.Sprintf("expected %s, got %s", token.IDENT, p.curToken.Kind))
		return nil
	}
	loopVar := p.curToken.Literal
	p.nextToken()
	if !p.expect(token.IN) {
		return nil
	}
	iterable := p.parseExpression(LOWEST)
	p.skipNewlines()
	body := p.parseBlock()
	return &ast.ForStatement{Token: tok, LoopVar: loopVar, Iterable: iterable, Body: body}
}

func (p *Parser) parseFunctionDefStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	if !p.curIs(token.IDENT) {
		p.addError(fmt.Sprintf("expected %s, got %s", token.IDENT, p.curToken.Kind))
		return nil
	}
	name := p.curToken.Literal
	p.nextToken()

	if !p.expect(token.LPAREN) {
		return nil
	}
	var params []string
	p.skipNewlines()
	for !p.curIs(token.RPAREN) {
		if !p.curIs(token.IDENT) {
			p.addError(fmt.Sprintf("expected %s, got %s", token.IDENT, p.curToken.Kind))
			return nil
		}
		params = append(params, p.curToken.Literal)
		p.nextToken()
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
	p.skipNewlines()
	body := p.parseBlock()
	return &ast.FunctionDefStatement{Token: tok, Name: name, Parameters: params, Body: body}
}

// returnEndsStatement reports whether the current token legally ends a bare
// `return` with no value (spec.md §4.D: "omitted if immediately followed by
// NEWLINE, `}`, or EOF").
func (p *Parser) returnEndsStatement() bool {
	return p.curIs(token.NEWLINE) || p.curIs(token.RBRACE) || p.curIs(token.EOF)
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	if p.returnEndsStatement() {
		return &ast.ReturnStatement{Token: tok}
	}
	value := p.parseExpression(LOWEST)
	return &ast.ReturnStatement{Token: tok, Value: value}
}

// parseExpressionOrAssignStatement implements spec.md §4.D's dispatch rule:
// "If the current token is an identifier and the next non-skipped token is
// `=`, parse as assignment ... else parse as expression."
func (p *Parser) parseExpressionOrAssignStatement() ast.Statement {
	tok := p.curToken
	if p.curIs(token.IDENT) && p.peekIs(token.ASSIGN) {
		name := p.curToken.Literal
		p.nextToken() // consume ident
		p.nextToken() // consume '='
		value := p.parseExpression(LOWEST)
		return &ast.AssignStatement{Token: tok, Target: name, Value: value}
	}
	expr := p.parseExpression(LOWEST)
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}
