package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"متغير", VAR},
		{"إذا", IF},
		{"دالة", FUNCTION},
		{"س", IDENT},
		{"مربع", IDENT},
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.want {
			t.Errorf("LookupIdent(%q) = %s, want %s", tt.ident, got, tt.want)
		}
	}
}

func TestIsReservedWord(t *testing.T) {
	if !IsReservedWord("صنف") {
		t.Errorf("صنف should be reserved")
	}
	if IsReservedWord("متغير_المستخدم") {
		t.Errorf("user identifier incorrectly reported as reserved")
	}
}

func TestKindString(t *testing.T) {
	if VAR.String() != "VAR" {
		t.Errorf("VAR.String() = %s, want VAR", VAR.String())
	}
	if Kind(9999).String() == "" {
		t.Errorf("unknown kind should still stringify")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if p.String() != "3:7" {
		t.Errorf("Position.String() = %s, want 3:7", p.String())
	}
}
