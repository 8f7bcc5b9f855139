package parser

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

func WithTracer(t Tracer) Option {
	return func(p *Parser) {
		if t == nil {
			t = NopTracer
		}
		p.tracer = t
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

type parseFunc func(*Parser) error

// Parser is a recursive descent parser with one token of lookahead. The
// lookahead in tok is the only parse state; it is replaced in acceptTerminal
// and nowhere else.
type Parser struct {
	file    string
	src     TokenSource
	tracer  Tracer
	log     commonlog.Logger
	tok     Token
	started bool
}

func newParser(opts []Option) *Parser {
	p := &Parser{
		tracer: NopTracer,
		log:    commonlog.GetLogger("minada.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func New(src TokenSource, opts ...Option) *Parser {
	p := newParser(opts)
	p.src = src
	return p
}

// ParseProgram reads all of r and parses it as a StatementPart.
func ParseProgram(r io.Reader, opts ...Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	p := newParser(opts)
	p.src = NewLexer(data, p.file)
	return p.ParseStatementPart()
}

var entries = map[string]parseFunc{
	StatementPart:       (*Parser).parseStatementPart,
	StatementList:       (*Parser).parseStatementList,
	Statement:           (*Parser).parseStatement,
	AssignmentStatement: (*Parser).parseAssignmentStatement,
	IfStatement:         (*Parser).parseIfStatement,
	WhileStatement:      (*Parser).parseWhileStatement,
	ProcedureStatement:  (*Parser).parseProcedureStatement,
	UntilStatement:      (*Parser).parseUntilStatement,
	ForStatement:        (*Parser).parseForStatement,
	ArgumentList:        (*Parser).parseArgumentList,
	Condition:           (*Parser).parseCondition,
	ConditionalOperator: (*Parser).parseConditionalOperator,
	Expression:          (*Parser).parseExpression,
	Term:                (*Parser).parseTerm,
	Factor:              (*Parser).parseFactor,
}

// ParseStatementPart parses a whole program.
func (p *Parser) ParseStatementPart() error {
	return p.Parse(StatementPart)
}

// Parse parses the input as the named production followed by the end of
// input. Syntax errors are returned as *Diagnostic.
func (p *Parser) Parse(entry string) error {
	fn, ok := entries[entry]
	if !ok {
		return fmt.Errorf("unknown production %q", entry)
	}
	if !p.started {
		p.tok = p.src.Next()
		p.started = true
	}
	err := fn(p)
	if err == nil && p.tok.Kind != TokenEOF {
		err = report(p.tok, fmt.Sprintf("expected %s but found '%s' on line: %d", TokenEOF, p.tok.Kind, p.tok.Line))
	}
	if d, ok := AsDiagnostic(err); ok {
		leaf := d.Leaf()
		p.log.Debugf("%s: syntax error on line %d in %v: %s", p.file, leaf.Line, d.Context(), leaf.Message)
	}
	return err
}

// production runs body as the named nonterminal: it announces the
// production to the tracer and, if body fails, wraps the failure with the
// line the production started on. Exit is only sent on success.
func (p *Parser) production(name string, body func() error) error {
	line := p.tok.Line
	p.tracer.Enter(name)
	if err := body(); err != nil {
		return wrap(name, line, err)
	}
	p.tracer.Exit(name)
	return nil
}

func (p *Parser) check(kind TokenKind) bool {
	return p.tok.Kind == kind
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

// acceptTerminal consumes the lookahead if it has the given kind.
func (p *Parser) acceptTerminal(kind TokenKind) error {
	if p.tok.Kind != kind {
		return report(p.tok, fmt.Sprintf("expected '%s' but found '%s' on line: %d", kind, p.tok.Kind, p.tok.Line))
	}
	p.tracer.Leaf(p.tok)
	p.tok = p.src.Next()
	return nil
}

func (p *Parser) acceptAll(kinds ...TokenKind) error {
	for _, kind := range kinds {
		if err := p.acceptTerminal(kind); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseStatementPart() error {
	return p.production(StatementPart, func() error {
		if err := p.acceptTerminal(TokenBegin); err != nil {
			return err
		}
		if err := p.parseStatementList(); err != nil {
			return err
		}
		return p.acceptTerminal(TokenEnd)
	})
}

func (p *Parser) parseStatementList() error {
	return p.production(StatementList, func() error {
		if err := p.parseStatement(); err != nil {
			return err
		}
		if p.check(TokenSemicolon) {
			if err := p.acceptTerminal(TokenSemicolon); err != nil {
				return err
			}
			return p.parseStatementList()
		}
		return nil
	})
}

func (p *Parser) parseStatement() error {
	return p.production(Statement, func() error {
		switch p.tok.Kind {
		case TokenIdent:
			return p.parseAssignmentStatement()
		case TokenCall:
			return p.parseProcedureStatement()
		case TokenIf:
			return p.parseIfStatement()
		case TokenWhile:
			return p.parseWhileStatement()
		case TokenDo:
			return p.parseUntilStatement()
		case TokenFor:
			return p.parseForStatement()
		}
		return report(p.tok, fmt.Sprintf("expected a statement on line: %d", p.tok.Line))
	})
}

func (p *Parser) parseAssignmentStatement() error {
	return p.production(AssignmentStatement, func() error {
		if err := p.acceptAll(TokenIdent, TokenBecomes); err != nil {
			return err
		}
		if p.check(TokenString) {
			return p.acceptTerminal(TokenString)
		}
		return p.parseExpression()
	})
}

func (p *Parser) parseIfStatement() error {
	return p.production(IfStatement, func() error {
		if err := p.acceptTerminal(TokenIf); err != nil {
			return err
		}
		if err := p.parseCondition(); err != nil {
			return err
		}
		if err := p.acceptTerminal(TokenThen); err != nil {
			return err
		}
		if err := p.parseStatementList(); err != nil {
			return err
		}
		if p.check(TokenElse) {
			if err := p.acceptTerminal(TokenElse); err != nil {
				return err
			}
			if err := p.parseStatementList(); err != nil {
				return err
			}
		}
		return p.acceptAll(TokenEnd, TokenIf)
	})
}

func (p *Parser) parseWhileStatement() error {
	return p.production(WhileStatement, func() error {
		if err := p.acceptTerminal(TokenWhile); err != nil {
			return err
		}
		if err := p.parseCondition(); err != nil {
			return err
		}
		if err := p.acceptTerminal(TokenLoop); err != nil {
			return err
		}
		if err := p.parseStatementList(); err != nil {
			return err
		}
		return p.acceptAll(TokenEnd, TokenLoop)
	})
}

func (p *Parser) parseProcedureStatement() error {
	return p.production(ProcedureStatement, func() error {
		if err := p.acceptAll(TokenCall, TokenIdent, TokenLParen); err != nil {
			return err
		}
		if err := p.parseArgumentList(); err != nil {
			return err
		}
		return p.acceptTerminal(TokenRParen)
	})
}

func (p *Parser) parseUntilStatement() error {
	return p.production(UntilStatement, func() error {
		if err := p.acceptTerminal(TokenDo); err != nil {
			return err
		}
		if err := p.parseStatementList(); err != nil {
			return err
		}
		if err := p.acceptTerminal(TokenUntil); err != nil {
			return err
		}
		return p.parseCondition()
	})
}

func (p *Parser) parseForStatement() error {
	return p.production(ForStatement, func() error {
		if err := p.acceptAll(TokenFor, TokenLParen); err != nil {
			return err
		}
		if err := p.parseAssignmentStatement(); err != nil {
			return err
		}
		if err := p.acceptTerminal(TokenSemicolon); err != nil {
			return err
		}
		if err := p.parseCondition(); err != nil {
			return err
		}
		if err := p.acceptTerminal(TokenSemicolon); err != nil {
			return err
		}
		if err := p.parseAssignmentStatement(); err != nil {
			return err
		}
		if err := p.acceptAll(TokenRParen, TokenDo); err != nil {
			return err
		}
		if err := p.parseStatementList(); err != nil {
			return err
		}
		return p.acceptAll(TokenEnd, TokenLoop)
	})
}

func (p *Parser) parseArgumentList() error {
	return p.production(ArgumentList, func() error {
		if err := p.acceptTerminal(TokenIdent); err != nil {
			return err
		}
		if p.check(TokenComma) {
			if err := p.acceptTerminal(TokenComma); err != nil {
				return err
			}
			return p.parseArgumentList()
		}
		return nil
	})
}

func (p *Parser) parseCondition() error {
	return p.production(Condition, func() error {
		if err := p.acceptTerminal(TokenIdent); err != nil {
			return err
		}
		if err := p.parseConditionalOperator(); err != nil {
			return err
		}
		if p.match(TokenIdent, TokenNumber, TokenString) {
			return p.acceptTerminal(p.tok.Kind)
		}
		return report(p.tok, fmt.Sprintf("expected identifier, number, or string after conditional operator on line: %d", p.tok.Line))
	})
}

func (p *Parser) parseConditionalOperator() error {
	return p.production(ConditionalOperator, func() error {
		if p.match(TokenLT, TokenGT, TokenGE, TokenEQ, TokenNE, TokenLE) {
			return p.acceptTerminal(p.tok.Kind)
		}
		return report(p.tok, fmt.Sprintf("expected a conditional operator on line: %d", p.tok.Line))
	})
}

// parseExpression and parseTerm associate to the left by iterating, so an
// operator chain produces sibling terms under a single production.
func (p *Parser) parseExpression() error {
	return p.production(Expression, func() error {
		if err := p.parseTerm(); err != nil {
			return err
		}
		for p.match(TokenPlus, TokenMinus) {
			if err := p.acceptTerminal(p.tok.Kind); err != nil {
				return err
			}
			if err := p.parseTerm(); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Parser) parseTerm() error {
	return p.production(Term, func() error {
		if err := p.parseFactor(); err != nil {
			return err
		}
		for p.match(TokenStar, TokenSlash, TokenMod) {
			if err := p.acceptTerminal(p.tok.Kind); err != nil {
				return err
			}
			if err := p.parseFactor(); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Parser) parseFactor() error {
	return p.production(Factor, func() error {
		switch p.tok.Kind {
		case TokenIdent, TokenNumber:
			return p.acceptTerminal(p.tok.Kind)
		case TokenLParen:
			if err := p.acceptTerminal(TokenLParen); err != nil {
				return err
			}
			if err := p.parseExpression(); err != nil {
				return err
			}
			return p.acceptTerminal(TokenRParen)
		}
		return report(p.tok, fmt.Sprintf("expected identifier, number, or ( on line: %d", p.tok.Line))
	})
}
