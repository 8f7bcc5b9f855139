package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/minada/ada/parser"
	"github.com/google/go-cmp/cmp"
)

func parse(t *testing.T, entry, input string, tracer parser.Tracer) error {
	t.Helper()
	p := parser.New(parser.NewLexer([]byte(input), "test.ada"), parser.WithTracer(tracer))
	return p.Parse(entry)
}

func TestRecorderAndReplay(t *testing.T) {
	rec := &Recorder{}
	if err := parse(t, parser.StatementPart, "begin x := 1 end", rec); err != nil {
		t.Fatalf("parse: %v", err)
	}

	var got []string
	for _, e := range rec.Events {
		got = append(got, e.String())
	}
	want := []string{
		"enter StatementPart",
		`leaf begin "begin"`,
		"enter StatementList",
		"enter Statement",
		"enter AssignmentStatement",
		`leaf identifier "x"`,
		`leaf := ":="`,
		"enter Expression",
		"enter Term",
		"enter Factor",
		`leaf number "1"`,
		"exit Factor",
		"exit Term",
		"exit Expression",
		"exit AssignmentStatement",
		"exit Statement",
		"exit StatementList",
		`leaf end "end"`,
		"exit StatementPart",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	again := &Recorder{}
	rec.Replay(again)
	if diff := cmp.Diff(rec.Events, again.Events); diff != "" {
		t.Errorf("replay mismatch (-want +got):\n%s", diff)
	}
}

func TestTee(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	if err := parse(t, parser.Expression, "a + b", Tee(a, b)); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(a.Events) == 0 {
		t.Fatal("no events recorded")
	}
	if diff := cmp.Diff(a.Events, b.Events); diff != "" {
		t.Errorf("tee delivered different events (-a +b):\n%s", diff)
	}
}

func TestTextTracer(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTextTracer(&buf)
	if err := parse(t, parser.Term, "a * 2", tr); err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := strings.Join([]string{
		"begin Term",
		"  begin Factor",
		`    token identifier "a" line 1`,
		"  end Factor",
		`  token * "*" line 1`,
		"  begin Factor",
		`    token number "2" line 1`,
		"  end Factor",
		"end Term",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text trace mismatch (-want +got):\n%s", diff)
	}
	if tr.Err != nil {
		t.Errorf("Err = %v", tr.Err)
	}
}

func TestJSONLinesTracer(t *testing.T) {
	var buf bytes.Buffer
	tr := NewJSONLinesTracer(&buf)
	if err := parse(t, parser.Factor, "x", tr); err != nil {
		t.Fatalf("parse: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	var leaf map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &leaf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{
		"event":  "leaf",
		"kind":   "identifier",
		"text":   "x",
		"line":   float64(1),
		"column": float64(1),
	}
	if diff := cmp.Diff(want, leaf); diff != "" {
		t.Errorf("leaf event mismatch (-want +got):\n%s", diff)
	}
}

func TestTracersStopAtFailure(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTextTracer(&buf)
	err := parse(t, parser.StatementPart, "begin x := end", tr)
	if _, ok := parser.AsDiagnostic(err); !ok {
		t.Fatalf("got %v, want a diagnostic", err)
	}
	if strings.Contains(buf.String(), "end StatementPart") {
		t.Errorf("trace of a failed parse closes StatementPart:\n%s", buf.String())
	}
}
