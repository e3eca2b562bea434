package ast

import (
	"strings"

	"github.com/tofey-ar/nawa/internal/token"
)

// FunctionDefStatement registers Name in the global function table with the
// given ordered parameters and body. Re-definition overwrites silently
// (spec.md §4.F).
type FunctionDefStatement struct {
	Token      token.Token
	Name       string
	Parameters []string
	Body       *Block
}

func (fd *FunctionDefStatement) statementNode()       {}
func (fd *FunctionDefStatement) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDefStatement) Pos() token.Position  { return fd.Token.Pos }
func (fd *FunctionDefStatement) String() string {
	return "دالة " + fd.Name + "(" + strings.Join(fd.Parameters, ", ") + ") " + fd.Body.String()
}
