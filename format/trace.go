package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/minada/ada/parser"
	"github.com/tliron/commonlog"
)

type EventKind int

const (
	EventEnter EventKind = iota
	EventLeaf
	EventExit
)

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventLeaf:
		return "leaf"
	case EventExit:
		return "exit"
	}
	return "unknown"
}

// Event is one tracer call. Name is set for enter and exit events, Token for
// leaf events.
type Event struct {
	Kind  EventKind
	Name  string
	Token parser.Token
}

func (e Event) String() string {
	if e.Kind == EventLeaf {
		return fmt.Sprintf("%s %s %q", e.Kind, e.Token.Kind, e.Token.Text)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Name)
}

// Recorder keeps every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Enter(name string) {
	r.Events = append(r.Events, Event{Kind: EventEnter, Name: name})
}

func (r *Recorder) Leaf(tok parser.Token) {
	r.Events = append(r.Events, Event{Kind: EventLeaf, Token: tok})
}

func (r *Recorder) Exit(name string) {
	r.Events = append(r.Events, Event{Kind: EventExit, Name: name})
}

// Replay sends the recorded events to t in order.
func (r *Recorder) Replay(t parser.Tracer) {
	for _, e := range r.Events {
		switch e.Kind {
		case EventEnter:
			t.Enter(e.Name)
		case EventLeaf:
			t.Leaf(e.Token)
		case EventExit:
			t.Exit(e.Name)
		}
	}
}

type tee []parser.Tracer

// Tee returns a tracer that forwards every event to all of tracers.
func Tee(tracers ...parser.Tracer) parser.Tracer {
	return tee(tracers)
}

func (t tee) Enter(name string) {
	for _, tr := range t {
		tr.Enter(name)
	}
}

func (t tee) Leaf(tok parser.Token) {
	for _, tr := range t {
		tr.Leaf(tok)
	}
}

func (t tee) Exit(name string) {
	for _, tr := range t {
		tr.Exit(name)
	}
}

// TextTracer writes an indented, human readable trace:
//
//	begin StatementPart
//	  token begin "begin" line 1
//	  begin StatementList
//	  ...
//	end StatementPart
//
// The first write error is kept in Err and silences further output.
type TextTracer struct {
	w      io.Writer
	indent string
	depth  int
	Err    error
}

func NewTextTracer(w io.Writer) *TextTracer {
	return &TextTracer{w: w, indent: "  "}
}

func (t *TextTracer) printf(format string, args ...any) {
	if t.Err != nil {
		return
	}
	_, t.Err = fmt.Fprintf(t.w, strings.Repeat(t.indent, t.depth)+format+"\n", args...)
}

func (t *TextTracer) Enter(name string) {
	t.printf("begin %s", name)
	t.depth++
}

func (t *TextTracer) Leaf(tok parser.Token) {
	t.printf("token %s %q line %d", tok.Kind, tok.Text, tok.Line)
}

func (t *TextTracer) Exit(name string) {
	t.depth--
	t.printf("end %s", name)
}

// JSONLinesTracer writes one JSON object per event.
type JSONLinesTracer struct {
	enc *json.Encoder
	Err error
}

func NewJSONLinesTracer(w io.Writer) *JSONLinesTracer {
	return &JSONLinesTracer{enc: json.NewEncoder(w)}
}

type jsonEvent struct {
	Event      string `json:"event"`
	Production string `json:"production,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Text       string `json:"text,omitempty"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
}

func (t *JSONLinesTracer) encode(e jsonEvent) {
	if t.Err != nil {
		return
	}
	t.Err = t.enc.Encode(e)
}

func (t *JSONLinesTracer) Enter(name string) {
	t.encode(jsonEvent{Event: EventEnter.String(), Production: name})
}

func (t *JSONLinesTracer) Leaf(tok parser.Token) {
	t.encode(jsonEvent{
		Event:  EventLeaf.String(),
		Kind:   tok.Kind.String(),
		Text:   tok.Text,
		Line:   tok.Line,
		Column: tok.Column,
	})
}

func (t *JSONLinesTracer) Exit(name string) {
	t.encode(jsonEvent{Event: EventExit.String(), Production: name})
}

// LogTracer reports events to a logger at debug level.
type LogTracer struct {
	log commonlog.Logger
}

func NewLogTracer(log commonlog.Logger) *LogTracer {
	return &LogTracer{log: log}
}

func (t *LogTracer) Enter(name string) {
	t.log.Debugf("enter %s", name)
}

func (t *LogTracer) Leaf(tok parser.Token) {
	t.log.Debugf("accept %s %q on line %d", tok.Kind, tok.Text, tok.Line)
}

func (t *LogTracer) Exit(name string) {
	t.log.Debugf("exit %s", name)
}
