package parser

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenIdent
	TokenNumber
	TokenString

	// Keywords
	TokenBegin
	TokenEnd
	TokenIf
	TokenThen
	TokenElse
	TokenWhile
	TokenLoop
	TokenCall
	TokenDo
	TokenUntil
	TokenFor
	TokenMod

	// Operators and punctuation
	TokenBecomes
	TokenSemicolon
	TokenComma
	TokenLParen
	TokenRParen
	TokenLT
	TokenGT
	TokenGE
	TokenEQ
	TokenNE
	TokenLE
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:       "end of input",
	TokenError:     "invalid token",
	TokenIdent:     "identifier",
	TokenNumber:    "number",
	TokenString:    "string",
	TokenBegin:     "begin",
	TokenEnd:       "end",
	TokenIf:        "if",
	TokenThen:      "then",
	TokenElse:      "else",
	TokenWhile:     "while",
	TokenLoop:      "loop",
	TokenCall:      "call",
	TokenDo:        "do",
	TokenUntil:     "until",
	TokenFor:       "for",
	TokenMod:       "mod",
	TokenBecomes:   ":=",
	TokenSemicolon: ";",
	TokenComma:     ",",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLT:        "<",
	TokenGT:        ">",
	TokenGE:        ">=",
	TokenEQ:        "=",
	TokenNE:        "/=",
	TokenLE:        "<=",
	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenStar:      "*",
	TokenSlash:     "/",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexeme. Line and Column are 1-based.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

var keywords = map[string]TokenKind{
	"begin": TokenBegin,
	"end":   TokenEnd,
	"if":    TokenIf,
	"then":  TokenThen,
	"else":  TokenElse,
	"while": TokenWhile,
	"loop":  TokenLoop,
	"call":  TokenCall,
	"do":    TokenDo,
	"until": TokenUntil,
	"for":   TokenFor,
	"mod":   TokenMod,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}

// TokenSource hands out tokens one at a time. Once the input is exhausted
// it keeps returning a TokenEOF token.
type TokenSource interface {
	Next() Token
}
