package ast

import (
	"testing"

	"github.com/tofey-ar/nawa/internal/token"
)

func TestProgramString(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&VarDeclStatement{
				Token: token.Token{Kind: token.VAR, Literal: "متغير"},
				Name:  "س",
				Value: &IntegerLiteral{Token: token.Token{Literal: "10"}, Value: 10},
			},
		},
	}
	want := "var س = 10\n"
	if prog.String() != want {
		t.Errorf("Program.String() = %q, want %q", prog.String(), want)
	}
}

func TestBinaryExpressionString(t *testing.T) {
	expr := &BinaryExpression{
		Left:     &IntegerLiteral{Token: token.Token{Literal: "2"}, Value: 2},
		Operator: "+",
		Right:    &IntegerLiteral{Token: token.Token{Literal: "3"}, Value: 3},
	}
	if expr.String() != "(2 + 3)" {
		t.Errorf("String() = %q", expr.String())
	}
}

func TestObjectLiteralPreservesOrderAndDuplicates(t *testing.T) {
	obj := &ObjectLiteral{
		Entries: []ObjectEntry{
			{Key: "a", Value: &IntegerLiteral{Token: token.Token{Literal: "1"}, Value: 1}},
			{Key: "a", Value: &IntegerLiteral{Token: token.Token{Literal: "2"}, Value: 2}},
		},
	}
	want := "{a: 1, a: 2}"
	if obj.String() != want {
		t.Errorf("String() = %q, want %q", obj.String(), want)
	}
}
