package ast

import "github.com/tofey-ar/nawa/internal/token"

// IfStatement is `if cond { then } [else { else }]`. An else-if chain is
// encoded by making Else a Block containing a single nested IfStatement
// (spec.md §3).
type IfStatement struct {
	Token     token.Token
	Condition Expression
	Then      *Block
	Else      *Block // nil if no else-clause
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() token.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	out := "إذا " + is.Condition.String() + " " + is.Then.String()
	if is.Else != nil {
		out += " وإلا " + is.Else.String()
	}
	return out
}

// WhileStatement repeats Body while Condition is truthy.
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *Block
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	return "بينما " + ws.Condition.String() + " " + ws.Body.String()
}

// ForStatement binds LoopVar to each element yielded by Iterable in turn and
// executes Body.
type ForStatement struct {
	Token    token.Token
	LoopVar  string
	Iterable Expression
	Body     *Block
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) Pos() token.Position  { return fs.Token.Pos }
func (fs *ForStatement) String() string {
	return "لكل " + fs.LoopVar + " في " + fs.Iterable.String() + " " + fs.Body.String()
}
