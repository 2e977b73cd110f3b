// Package scene is a minimal retained scene graph for SVG-like output.
//
// The chart core draws into a [Node] tree instead of a DOM: it appends
// shapes, sets attributes and text, and binds pointer handlers. Encoders in
// the sink subpackage turn a tree into SVG or JSON, and tests drive handlers
// directly with [Node.Dispatch].
//
// Attributes keep insertion order so that encoding the same tree twice
// produces identical bytes.
package scene

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the element type of a node.
type Kind string

const (
	KindGroup Kind = "g"
	KindRect  Kind = "rect"
	KindText  Kind = "text"
	KindLine  Kind = "line"
)

// Attr is a single name/value attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the scene.
type Node struct {
	Kind     Kind
	Attrs    []Attr
	Text     string
	Children []*Node

	handlers map[Event]Handler
}

// New returns a detached node of the given kind.
func New(kind Kind) *Node {
	return &Node{Kind: kind}
}

// Append adds a child of kind and returns it.
func (n *Node) Append(kind Kind) *Node {
	c := New(kind)
	n.Children = append(n.Children, c)
	return c
}

// Attr sets an attribute, replacing an existing value in place. Numbers
// are written with at most three decimals.
func (n *Node) Attr(name string, v any) *Node {
	s := formatValue(v)
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = s
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: s})
	return n
}

// Class sets the class attribute.
func (n *Node) Class(c string) *Node { return n.Attr("class", c) }

// SetText sets the node's text content.
func (n *Node) SetText(s string) *Node {
	n.Text = s
	return n
}

// Get returns an attribute value.
func (n *Node) Get(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Float returns a numeric attribute, or NaN when absent or not a number.
func (n *Node) Float(name string) float64 {
	s, ok := n.Get(name)
	if !ok {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// HasClass reports whether c is one of the node's classes.
func (n *Node) HasClass(c string) bool {
	s, _ := n.Get("class")
	for _, f := range strings.Fields(s) {
		if f == c {
			return true
		}
	}
	return false
}

// Clear removes every child. Handlers bound on removed nodes go with them.
func (n *Node) Clear() {
	n.Children = nil
}

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns every descendant (including n) carrying class c.
func (n *Node) FindAll(c string) []*Node {
	var out []*Node
	n.Walk(func(x *Node) bool {
		if x.HasClass(c) {
			out = append(out, x)
		}
		return true
	})
	return out
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool { total++; return true })
	return total
}

// Equal reports whether a and b have the same structure, attributes and
// text. Handlers are not compared.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Text != b.Text || len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i] != b.Attrs[i] {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return FormatFloat(x)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case interface{ String() string }:
		return x.String()
	}
	return ""
}

// FormatFloat writes v with up to three decimals and no trailing zeros.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
