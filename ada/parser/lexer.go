package parser

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) File() string {
	return l.file
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// skipTrivia consumes whitespace and "--" comments.
func (l *Lexer) skipTrivia() {
	for l.pos < len(l.input) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '-' && l.peekN(1) == '-':
			for l.pos < len(l.input) && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// Next implements TokenSource.
func (l *Lexer) Next() Token {
	l.skipTrivia()

	start, line, column := l.pos, l.line, l.column
	tok := func(kind TokenKind) Token {
		return Token{
			Kind:   kind,
			Text:   string(l.input[start:l.pos]),
			Line:   line,
			Column: column,
		}
	}

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Line: line, Column: column}
	}

	ch := l.peek()

	if isLetter(ch) {
		for isLetter(l.peek()) || isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
		return tok(LookupKeyword(string(l.input[start:l.pos])))
	}

	if isDigit(ch) {
		for isDigit(l.peek()) {
			l.advance()
		}
		return tok(TokenNumber)
	}

	if ch == '"' {
		return l.scanString(tok)
	}

	return l.scanOperator(tok)
}

func (l *Lexer) scanString(tok func(TokenKind) Token) Token {
	l.advance()
	for {
		ch := l.peek()
		if l.pos >= len(l.input) || ch == '\n' {
			return tok(TokenError)
		}
		l.advance()
		if ch == '"' {
			return tok(TokenString)
		}
	}
}

func (l *Lexer) scanOperator(tok func(TokenKind) Token) Token {
	ch := l.advance()
	switch ch {
	case ':':
		if l.peek() == '=' {
			l.advance()
			return tok(TokenBecomes)
		}
	case ';':
		return tok(TokenSemicolon)
	case ',':
		return tok(TokenComma)
	case '(':
		return tok(TokenLParen)
	case ')':
		return tok(TokenRParen)
	case '<':
		if l.peek() == '=' {
			l.advance()
			return tok(TokenLE)
		}
		return tok(TokenLT)
	case '>':
		if l.peek() == '=' {
			l.advance()
			return tok(TokenGE)
		}
		return tok(TokenGT)
	case '=':
		return tok(TokenEQ)
	case '/':
		if l.peek() == '=' {
			l.advance()
			return tok(TokenNE)
		}
		return tok(TokenSlash)
	case '+':
		return tok(TokenPlus)
	case '-':
		return tok(TokenMinus)
	case '*':
		return tok(TokenStar)
	}
	return tok(TokenError)
}

// Tokenize returns every token of input, up to and including the first
// TokenEOF.
func Tokenize(input []byte, file string) []Token {
	l := NewLexer(input, file)
	var tokens []Token
	for {
		t := l.Next()
		tokens = append(tokens, t)
		if t.Kind == TokenEOF {
			return tokens
		}
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
