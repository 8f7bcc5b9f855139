package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/minada/ada/parser"
	"github.com/fatih/color"
)

// DiagnosticPrinter prints parse failures, innermost cause first, followed
// by the productions that were active from the innermost outwards.
type DiagnosticPrinter struct {
	w        io.Writer
	errorC   *color.Color
	contextC *color.Color
}

func NewDiagnosticPrinter(w io.Writer, useColor bool) *DiagnosticPrinter {
	p := &DiagnosticPrinter{
		w:        w,
		errorC:   color.New(color.FgRed, color.Bold),
		contextC: color.New(color.Faint),
	}
	if useColor {
		p.errorC.EnableColor()
		p.contextC.EnableColor()
	} else {
		p.errorC.DisableColor()
		p.contextC.DisableColor()
	}
	return p
}

func (p *DiagnosticPrinter) Print(file string, err error) error {
	_, werr := io.WriteString(p.w, p.Format(file, err))
	return werr
}

func (p *DiagnosticPrinter) Format(file string, err error) string {
	var sb strings.Builder
	d, ok := parser.AsDiagnostic(err)
	if !ok {
		fmt.Fprintf(&sb, "%s: %s\n", file, p.errorC.Sprint(err.Error()))
		return sb.String()
	}

	leaf := d.Leaf()
	fmt.Fprintf(&sb, "%s:%d: %s\n", file, leaf.Line, p.errorC.Sprint(leaf.Message))

	chain := d.Chain()
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Production == "" {
			continue
		}
		fmt.Fprintf(&sb, "    %s\n", p.contextC.Sprint(chain[i].Message))
	}
	return sb.String()
}
