package lext

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindInteger, "Integer"},
		{KindFloat, "Float"},
		{KindWhitespace, "Whitespace"},
		{KindWord, "Word"},
		{KindSymbol, "Symbol"},
		{KindLiteral, "Literal"},
		{KindBoundedIdentifier, "BoundedIdentifier"},
		{Kind(150), "Kind(150)"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestTokenIsKind(t *testing.T) {
	tok := Token{Kind: KindWord}
	if !tok.IsKind(KindWord) {
		t.Errorf("IsKind(KindWord) = false, want true")
	}
	if tok.IsKind(KindSymbol) {
		t.Errorf("IsKind(KindSymbol) = true, want false")
	}
}

func TestTokenReservedAndUserKind(t *testing.T) {
	reserved := Token{Kind: KindInteger}
	if !reserved.IsReservedKind() {
		t.Errorf("IsReservedKind() = false for KindInteger, want true")
	}
	if reserved.IsUserKind() {
		t.Errorf("IsUserKind() = true for KindInteger, want false")
	}

	user := Token{Kind: Kind(100)}
	if user.IsReservedKind() {
		t.Errorf("IsReservedKind() = true for Kind(100), want false")
	}
	if !user.IsUserKind() {
		t.Errorf("IsUserKind() = false for Kind(100), want true")
	}

	zero := Token{}
	if zero.IsReservedKind() {
		t.Errorf("IsReservedKind() = true for the zero Kind, want false")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Value: "abc", Kind: KindWord, Length: 3, Line: 2, Column: 5}
	want := `2:5+3 Word "abc"`
	if got := tok.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
