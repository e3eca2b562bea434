package ast

import "github.com/tofey-ar/nawa/internal/token"

// AssignStatement stores value into the existing or newly-created binding
// named Target. Assignment is a statement, not an expression (spec.md §4.D).
type AssignStatement struct {
	Token  token.Token // the '=' token
	Target string
	Value  Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) Pos() token.Position  { return as.Token.Pos }
func (as *AssignStatement) String() string {
	return as.Target + " = " + as.Value.String()
}

// VarDeclStatement is `var name [= expr]` or `const name = expr`.
type VarDeclStatement struct {
	Token       token.Token // VAR or CONST
	Name        string
	Value       Expression // nil if omitted (var only; const always requires one)
	IsConst     bool
}

func (vd *VarDeclStatement) statementNode()       {}
func (vd *VarDeclStatement) TokenLiteral() string { return vd.Token.Literal }
func (vd *VarDeclStatement) Pos() token.Position  { return vd.Token.Pos }
func (vd *VarDeclStatement) String() string {
	kw := "var"
	if vd.IsConst {
		kw = "const"
	}
	if vd.Value != nil {
		return kw + " " + vd.Name + " = " + vd.Value.String()
	}
	return kw + " " + vd.Name
}

// PrintStatement writes Value's formatted representation to stdout.
// TrailingNewline distinguishes print (اكتب) from print-line (اطبع).
type PrintStatement struct {
	Token           token.Token
	Value           Expression
	TrailingNewline bool
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) Pos() token.Position  { return ps.Token.Pos }
func (ps *PrintStatement) String() string {
	return ps.Token.Literal + " " + ps.Value.String()
}

// ReturnStatement exits the enclosing function call, optionally carrying a
// value. Value is nil when the statement is bare.
type ReturnStatement struct {
	Token token.Token
	Value Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	if rs.Value != nil {
		return "أرجع " + rs.Value.String()
	}
	return "أرجع"
}

// BreakStatement exits the nearest enclosing loop.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) Pos() token.Position  { return bs.Token.Pos }
func (bs *BreakStatement) String() string       { return bs.Token.Literal }

// ContinueStatement skips to the next iteration of the nearest enclosing loop.
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *ContinueStatement) String() string       { return cs.Token.Literal }

// ExpressionStatement wraps a bare expression evaluated for its side effects
// (e.g. a call), its value discarded.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() token.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string       { return es.Expression.String() }
