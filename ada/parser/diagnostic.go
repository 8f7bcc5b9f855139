package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic describes the first syntax error of a parse. The innermost
// diagnostic (the leaf) carries the offending token; every enclosing
// production adds one wrapper whose Cause points inward.
type Diagnostic struct {
	Message    string
	Production string
	Line       int
	Token      *Token
	Cause      *Diagnostic
}

func (d *Diagnostic) Error() string {
	var parts []string
	for c := d; c != nil; c = c.Cause {
		parts = append(parts, c.Message)
	}
	return strings.Join(parts, ": ")
}

func (d *Diagnostic) Unwrap() error {
	if d.Cause == nil {
		return nil
	}
	return d.Cause
}

// Leaf returns the innermost diagnostic of the chain.
func (d *Diagnostic) Leaf() *Diagnostic {
	c := d
	for c.Cause != nil {
		c = c.Cause
	}
	return c
}

// Chain returns the diagnostics outermost first.
func (d *Diagnostic) Chain() []*Diagnostic {
	var chain []*Diagnostic
	for c := d; c != nil; c = c.Cause {
		chain = append(chain, c)
	}
	return chain
}

// Context returns the names of the productions that were active when the
// error occurred, outermost first.
func (d *Diagnostic) Context() []string {
	var names []string
	for c := d; c != nil; c = c.Cause {
		if c.Production != "" {
			names = append(names, c.Production)
		}
	}
	return names
}

// AsDiagnostic returns the Diagnostic inside err, if any.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

func report(tok Token, explanation string) error {
	t := tok
	return &Diagnostic{
		Message: fmt.Sprintf("%s (found '%s')", explanation, tok.Text),
		Line:    tok.Line,
		Token:   &t,
	}
}

func wrap(production string, line int, err error) error {
	cause, ok := AsDiagnostic(err)
	if !ok {
		return err
	}
	return &Diagnostic{
		Message:    fmt.Sprintf("in %s on line: %d", production, line),
		Production: production,
		Line:       line,
		Cause:      cause,
	}
}
