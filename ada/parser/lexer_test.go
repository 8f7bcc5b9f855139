package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"begin", []TokenKind{TokenBegin, TokenEOF}},
		{"begin x := 1 end", []TokenKind{TokenBegin, TokenIdent, TokenBecomes, TokenNumber, TokenEnd, TokenEOF}},
		{"42", []TokenKind{TokenNumber, TokenEOF}},
		{`"hello world"`, []TokenKind{TokenString, TokenEOF}},
		{"-- comment\nend", []TokenKind{TokenEnd, TokenEOF}},
		{"a - b -- trailing", []TokenKind{TokenIdent, TokenMinus, TokenIdent, TokenEOF}},
		{"+ - * / mod", []TokenKind{TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenMod, TokenEOF}},
		{"< > >= = /= <=", []TokenKind{TokenLT, TokenGT, TokenGE, TokenEQ, TokenNE, TokenLE, TokenEOF}},
		{"( ) ; ,", []TokenKind{TokenLParen, TokenRParen, TokenSemicolon, TokenComma, TokenEOF}},
		{"a<=b", []TokenKind{TokenIdent, TokenLE, TokenIdent, TokenEOF}},
		{"x1_y", []TokenKind{TokenIdent, TokenEOF}},
		{"Begin", []TokenKind{TokenIdent, TokenEOF}},
		{"x : y", []TokenKind{TokenIdent, TokenError, TokenIdent, TokenEOF}},
		{"#", []TokenKind{TokenError, TokenEOF}},
		{"\"open", []TokenKind{TokenError, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got []TokenKind
			for _, tok := range Tokenize([]byte(tt.input), "test.ada") {
				got = append(got, tok.Kind)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	input := "begin\n  x := \"hi\";\n  -- note\n  call p(a)\nend"
	got := Tokenize([]byte(input), "test.ada")
	want := []Token{
		{Kind: TokenBegin, Text: "begin", Line: 1, Column: 1},
		{Kind: TokenIdent, Text: "x", Line: 2, Column: 3},
		{Kind: TokenBecomes, Text: ":=", Line: 2, Column: 5},
		{Kind: TokenString, Text: `"hi"`, Line: 2, Column: 8},
		{Kind: TokenSemicolon, Text: ";", Line: 2, Column: 12},
		{Kind: TokenCall, Text: "call", Line: 4, Column: 3},
		{Kind: TokenIdent, Text: "p", Line: 4, Column: 8},
		{Kind: TokenLParen, Text: "(", Line: 4, Column: 9},
		{Kind: TokenIdent, Text: "a", Line: 4, Column: 10},
		{Kind: TokenRParen, Text: ")", Line: 4, Column: 11},
		{Kind: TokenEnd, Text: "end", Line: 5, Column: 1},
		{Kind: TokenEOF, Line: 5, Column: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLexerEOFRepeats(t *testing.T) {
	l := NewLexer([]byte("x"), "test.ada")
	if tok := l.Next(); tok.Kind != TokenIdent {
		t.Fatalf("first token = %v, want identifier", tok.Kind)
	}
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Kind != TokenEOF {
			t.Errorf("call %d: got %v, want end of input", i, tok.Kind)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenEOF, "end of input"},
		{TokenIdent, "identifier"},
		{TokenNumber, "number"},
		{TokenString, "string"},
		{TokenBegin, "begin"},
		{TokenMod, "mod"},
		{TokenBecomes, ":="},
		{TokenNE, "/="},
		{TokenKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("TokenKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	for word, kind := range keywords {
		if got := LookupKeyword(word); got != kind {
			t.Errorf("LookupKeyword(%q) = %v, want %v", word, got, kind)
		}
	}
	if got := LookupKeyword("total"); got != TokenIdent {
		t.Errorf("LookupKeyword(total) = %v, want identifier", got)
	}
}
