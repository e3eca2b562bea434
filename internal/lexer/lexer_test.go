package lexer

import (
	"testing"

	"github.com/tofey-ar/nawa/internal/token"
)

func TestNextTokenBasic(t *testing.T) {
	input := "متغير س = 10\nاطبع س * 2"

	tests := []struct {
		literal string
		kind    token.Kind
	}{
		{"متغير", token.VAR},
		{"س", token.IDENT},
		{"=", token.ASSIGN},
		{"10", token.INT},
		{"\n", token.NEWLINE},
		{"اطبع", token.PRINTLINE},
		{"س", token.IDENT},
		{"*", token.STAR},
		{"2", token.INT},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d]: kind = %s, want %s (literal=%q)", i, tok.Kind, tt.kind, tok.Literal)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d]: literal = %q, want %q", i, tok.Literal, tt.literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := "إذا وإلا بينما لكل في دالة أرجع توقف استمر صحيح خطأ او و ليس فارغ"
	tests := []token.Kind{
		token.IF, token.ELSE, token.WHILE, token.FOR, token.IN, token.FUNCTION,
		token.RETURN, token.BREAK, token.CONTINUE, token.TRUE, token.FALSE,
		token.OR, token.AND, token.NOT, token.NULL,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Kind != want {
			t.Fatalf("tests[%d]: kind = %s, want %s", i, tok.Kind, want)
		}
	}
}

func TestReservedWordsNotIdentifiers(t *testing.T) {
	l := New("صنف")
	tok := l.NextToken()
	if tok.Kind != token.CLASS {
		t.Fatalf("صنف should lex as CLASS, got %s", tok.Kind)
	}
}

func TestTwoCharOperatorsBeforeOneChar(t *testing.T) {
	input := "== != >= <= && || => += -= *= /= **"
	tests := []token.Kind{
		token.EQ, token.NEQ, token.GTE, token.LTE, token.ANDAND, token.OROR,
		token.ARROW, token.PLUSEQ, token.MINUSEQ, token.STAREQ, token.SLASHEQ, token.STARSTAR,
	}
	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Kind != want {
			t.Fatalf("tests[%d]: kind = %s, want %s (literal=%q)", i, tok.Kind, want, tok.Literal)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\\b"`, `a\b`},
		{`"a\"b"`, `a"b`},
		{`'it\'s'`, "it's"},
		{`"a\zb"`, "azb"}, // unknown escape drops the backslash
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Kind != token.STRING {
			t.Fatalf("input %q: kind = %s, want STRING", tt.input, tok.Kind)
		}
		if tok.Literal != tt.want {
			t.Fatalf("input %q: literal = %q, want %q", tt.input, tok.Literal, tt.want)
		}
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	l := New(`"abc`)
	l.NextToken()
	errs := l.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(errs))
	}
}

func TestUnterminatedBlockCommentReachesEOFSilently(t *testing.T) {
	l := New("/* لم يغلق أبدا")
	tok := l.NextToken()
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF after unterminated block comment, got %s", tok.Kind)
	}
	if len(l.Errors()) != 0 {
		t.Fatalf("unterminated block comment must not raise a lexer error, got %v", l.Errors())
	}
}

func TestLineComment(t *testing.T) {
	l := New("متغير // هذا تعليق\nس")
	tok := l.NextToken()
	if tok.Kind != token.VAR {
		t.Fatalf("kind = %s, want VAR", tok.Kind)
	}
	tok = l.NextToken()
	if tok.Kind != token.NEWLINE {
		t.Fatalf("kind = %s, want NEWLINE", tok.Kind)
	}
	tok = l.NextToken()
	if tok.Kind != token.IDENT || tok.Literal != "س" {
		t.Fatalf("kind/literal = %s/%q, want IDENT/س", tok.Kind, tok.Literal)
	}
}

func TestNumberFloatVsInt(t *testing.T) {
	l := New("10 3.14 7.")
	tok := l.NextToken()
	if tok.Kind != token.INT || tok.Literal != "10" {
		t.Fatalf("want INT 10, got %s %q", tok.Kind, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Kind != token.FLOAT || tok.Literal != "3.14" {
		t.Fatalf("want FLOAT 3.14, got %s %q", tok.Kind, tok.Literal)
	}
	// "7." with no trailing digit is an INT token followed by a DOT token.
	tok = l.NextToken()
	if tok.Kind != token.INT || tok.Literal != "7" {
		t.Fatalf("want INT 7, got %s %q", tok.Kind, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Kind != token.DOT {
		t.Fatalf("want DOT, got %s", tok.Kind)
	}
}

func TestUnknownSymbolError(t *testing.T) {
	l := New("#")
	tok := l.NextToken()
	if tok.Kind != token.ILLEGAL {
		t.Fatalf("kind = %s, want ILLEGAL", tok.Kind)
	}
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Message != "unknown symbol: #" {
		t.Fatalf("errors = %v", errs)
	}
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	toks, errs := Tokenize("متغير س = 1")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("last token kind = %s, want EOF", toks[len(toks)-1].Kind)
	}
}
