package format

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/dhamidi/minada/ada/parser"
)

// Node is a concrete syntax tree node. Production nodes have a Production
// name and children; leaves carry the accepted Token.
type Node struct {
	Production string
	Token      *parser.Token
	Children   []*Node
}

func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// String renders the tree in a compact bracketed form such as
// Factor(1) or Term[Factor(1) * Factor(x)].
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.IsLeaf() {
		sb.WriteString(n.Token.Text)
		return
	}
	sb.WriteString(n.Production)
	lb, rb := "[", "]"
	if len(n.Children) == 1 && n.Children[0].IsLeaf() {
		lb, rb = "(", ")"
	}
	sb.WriteString(lb)
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c.write(sb)
	}
	sb.WriteString(rb)
}

// TreeBuilder is a tracer that assembles the derivation into a tree.
type TreeBuilder struct {
	stack []*Node
	root  *Node
}

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

func (b *TreeBuilder) add(n *Node) {
	if len(b.stack) == 0 {
		return
	}
	top := b.stack[len(b.stack)-1]
	top.Children = append(top.Children, n)
}

func (b *TreeBuilder) Enter(name string) {
	n := &Node{Production: name}
	b.add(n)
	b.stack = append(b.stack, n)
}

func (b *TreeBuilder) Leaf(tok parser.Token) {
	t := tok
	b.add(&Node{Token: &t})
}

func (b *TreeBuilder) Exit(name string) {
	if len(b.stack) == 0 {
		return
	}
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if len(b.stack) == 0 {
		b.root = n
	}
}

// Root returns the completed tree, or nil while a production is still open,
// which is the case after a failed parse.
func (b *TreeBuilder) Root() *Node {
	if len(b.stack) > 0 {
		return nil
	}
	return b.root
}

// Partial returns the outermost node entered so far, complete or not.
func (b *TreeBuilder) Partial() *Node {
	if len(b.stack) > 0 {
		return b.stack[0]
	}
	return b.root
}

type TreeJSONEncoder struct {
	w io.Writer
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w}
}

func (e *TreeJSONEncoder) Encode(node *Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeJSONEncoder) MarshalText(node *Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type treeJSONNode struct {
	Production string          `json:"production,omitempty"`
	Token      *treeJSONToken  `json:"token,omitempty"`
	Children   []*treeJSONNode `json:"children,omitempty"`
}

type treeJSONToken struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func nodeToJSON(n *Node) *treeJSONNode {
	if n == nil {
		return nil
	}
	jn := &treeJSONNode{
		Production: n.Production,
	}

	if n.Token != nil {
		jn.Token = &treeJSONToken{
			Kind:   n.Token.Kind.String(),
			Text:   n.Token.Text,
			Line:   n.Token.Line,
			Column: n.Token.Column,
		}
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*treeJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
