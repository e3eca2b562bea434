// Package ast defines the abstract syntax tree node variants produced by the
// parser and consumed by the evaluator (spec.md §3).
package ast

import (
	"bytes"
	"strings"

	"github.com/tofey-ar/nawa/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that evaluates to a Value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node executed for effect.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Block is an ordered sequence of statements; it is a field of the
// enclosing construct, not a node type of its own (spec.md §3).
type Block struct {
	Statements []Statement
}

func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// Identifier names a variable, function, or loop target.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()          {}
func (i *Identifier) TokenLiteral() string     { return i.Token.Literal }
func (i *Identifier) String() string           { return i.Value }
func (i *Identifier) Pos() token.Position      { return i.Token.Pos }

// IntegerLiteral is an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Pos }

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal }
func (fl *FloatLiteral) Pos() token.Position  { return fl.Token.Pos }

// TextLiteral is a string literal with escapes already resolved.
type TextLiteral struct {
	Token token.Token
	Value string
}

func (tl *TextLiteral) expressionNode()      {}
func (tl *TextLiteral) TokenLiteral() string { return tl.Token.Literal }
func (tl *TextLiteral) String() string       { return "\"" + tl.Value + "\"" }
func (tl *TextLiteral) Pos() token.Position  { return tl.Token.Pos }

// BooleanLiteral is true/false.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() token.Position  { return bl.Token.Pos }

// NullLiteral is the sole absent-value literal.
type NullLiteral struct {
	Token token.Token
}

func (nl *NullLiteral) expressionNode()      {}
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NullLiteral) String() string       { return nl.Token.Literal }
func (nl *NullLiteral) Pos() token.Position  { return nl.Token.Pos }

// ListLiteral is an ordered sequence of element expressions.
type ListLiteral struct {
	Token    token.Token // '['
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()      {}
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Literal }
func (ll *ListLiteral) Pos() token.Position  { return ll.Token.Pos }
func (ll *ListLiteral) String() string {
	elems := make([]string, len(ll.Elements))
	for i, e := range ll.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// ObjectEntry is one name:value pair of an Object literal, in source order.
type ObjectEntry struct {
	Key   string
	Value Expression
}

// ObjectLiteral is an insertion-ordered mapping from identifier keys to
// value expressions. Duplicate keys are legal; the last one wins (spec.md §9).
type ObjectLiteral struct {
	Token   token.Token // '{'
	Entries []ObjectEntry
}

func (ol *ObjectLiteral) expressionNode()      {}
func (ol *ObjectLiteral) TokenLiteral() string { return ol.Token.Literal }
func (ol *ObjectLiteral) Pos() token.Position  { return ol.Token.Pos }
func (ol *ObjectLiteral) String() string {
	parts := make([]string, len(ol.Entries))
	for i, e := range ol.Entries {
		parts[i] = e.Key + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
