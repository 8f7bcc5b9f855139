// Package grammar holds the EBNF description of the language checked by
// package parser.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var Source []byte

// Start is the production a complete program derives from.
const Start = "StatementPart"

const filename = "grammar.ebnf"

// Load parses the embedded grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, bytes.NewReader(Source))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return g, nil
}

// Verify loads the grammar and checks that every production is defined and
// reachable from start.
func Verify(start string) (ebnf.Grammar, error) {
	g, err := Load()
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, err
	}
	return g, nil
}

// IsLexical reports whether name is a lexical production.
func IsLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// Nonterminals returns the sorted names of the syntactic productions of g.
func Nonterminals(g ebnf.Grammar) []string {
	var names []string
	for name := range g {
		if !IsLexical(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Terminals returns the sorted, distinct literal tokens used by the
// syntactic productions of g.
func Terminals(g ebnf.Grammar) []string {
	seen := make(map[string]bool)
	for name, prod := range g {
		if IsLexical(name) {
			continue
		}
		collectTokens(prod.Expr, seen)
	}
	var tokens []string
	for tok := range seen {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

func collectTokens(x ebnf.Expression, seen map[string]bool) {
	switch x := x.(type) {
	case ebnf.Alternative:
		for _, e := range x {
			collectTokens(e, seen)
		}
	case ebnf.Sequence:
		for _, e := range x {
			collectTokens(e, seen)
		}
	case *ebnf.Group:
		collectTokens(x.Body, seen)
	case *ebnf.Option:
		collectTokens(x.Body, seen)
	case *ebnf.Repetition:
		collectTokens(x.Body, seen)
	case *ebnf.Token:
		seen[x.String] = true
	}
}
