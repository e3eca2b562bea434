package ast

import (
	"strings"

	"github.com/tofey-ar/nawa/internal/token"
)

// BinaryExpression is `left op right` (spec.md §3, §4.D precedence levels 1-7).
type BinaryExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) Pos() token.Position  { return be.Token.Pos }
func (be *BinaryExpression) String() string {
	return "(" + be.Left.String() + " " + be.Operator + " " + be.Right.String() + ")"
}

// UnaryExpression is a prefix `- expr` or `not expr` (spec.md §4.D level 8).
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) Pos() token.Position  { return ue.Token.Pos }
func (ue *UnaryExpression) String() string {
	return "(" + ue.Operator + ue.Operand.String() + ")"
}

// CallExpression invokes callee with an ordered argument list.
type CallExpression struct {
	Token     token.Token // '('
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() token.Position  { return ce.Token.Pos }
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	return ce.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// IndexExpression is `collection[index]`.
type IndexExpression struct {
	Token      token.Token // '['
	Collection Expression
	Index      Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) Pos() token.Position  { return ie.Token.Pos }
func (ie *IndexExpression) String() string {
	return ie.Collection.String() + "[" + ie.Index.String() + "]"
}

// PropertyAccessExpression is `object.property`.
type PropertyAccessExpression struct {
	Token    token.Token // '.'
	Object   Expression
	Property string
}

func (pa *PropertyAccessExpression) expressionNode()      {}
func (pa *PropertyAccessExpression) TokenLiteral() string { return pa.Token.Literal }
func (pa *PropertyAccessExpression) Pos() token.Position  { return pa.Token.Pos }
func (pa *PropertyAccessExpression) String() string {
	return pa.Object.String() + "." + pa.Property
}
