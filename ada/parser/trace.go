package parser

// Tracer receives the derivation taken by the parser. Enter and Exit calls
// nest strictly; Leaf is called once per consumed token. After a failure no
// further events are sent, so a failed parse leaves unbalanced Enter calls.
type Tracer interface {
	Enter(name string)
	Leaf(tok Token)
	Exit(name string)
}

type nopTracer struct{}

func (nopTracer) Enter(string) {}
func (nopTracer) Leaf(Token)   {}
func (nopTracer) Exit(string)  {}

// NopTracer discards all events.
var NopTracer Tracer = nopTracer{}
