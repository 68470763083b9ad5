package tokenizer

import (
	"strings"

	"golang.org/x/net/html"
)

// NodeType identifies which variant a Node carries.
type NodeType int

const (
	RootNode NodeType = iota
	DoctypeNode
	ElementNode
	TextNode
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case RootNode:
		return "Root"
	case DoctypeNode:
		return "Doctype"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	default:
		return "Unknown"
	}
}

// voidElements is the set of elements whose HTML syntax forbids an end
// tag and which therefore cannot have children.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Node is a single node of the document tree produced by Parse. Parent
// is a navigational back-pointer only, never an ownership edge: the
// tree is owned top-down through Children.
type Node struct {
	Type NodeType

	// Doctype
	DoctypeName string
	DoctypeData string
	ForceQuirks bool

	// Element
	Tag         string
	Attrs       []Attribute
	SelfClosing bool

	// Text / Comment
	Text string

	Parent   *Node
	Children []*Node
}

func newNode(typ NodeType) *Node {
	return &Node{Type: typ}
}

// appendChild attaches child as the last child of n, setting its
// parent back-pointer.
func (n *Node) appendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Attr returns the value of the first attribute named key on an
// Element node, and whether it was present.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == key {
			return a.Value, true
		}
	}
	return "", false
}

// IsVoid reports whether an Element node is a void element.
func (n *Node) IsVoid() bool {
	return n.Type == ElementNode && voidElements[n.Tag]
}

// String is a non-normative debug stringifier. It re-escapes text content with golang.org/x/net/html,
// the same package a downstream templating consumer would reach for.
func (n *Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node) writeTo(sb *strings.Builder) {
	switch n.Type {
	case RootNode:
		for _, c := range n.Children {
			c.writeTo(sb)
		}
	case DoctypeNode:
		sb.WriteString("<!DOCTYPE " + n.DoctypeName)
		if n.DoctypeData != "" {
			sb.WriteString(" " + n.DoctypeData)
		}
		sb.WriteString(">")
	case CommentNode:
		sb.WriteString("<!--" + n.Text + "-->")
	case TextNode:
		sb.WriteString(html.EscapeString(n.Text))
	case ElementNode:
		sb.WriteString("<" + n.Tag)
		for _, a := range n.Attrs {
			sb.WriteString(" " + a.Name + `="`)
			sb.WriteString(html.EscapeString(a.Value))
			sb.WriteString(`"`)
		}
		if n.IsVoid() {
			sb.WriteString(">")
			return
		}
		sb.WriteString(">")
		for _, c := range n.Children {
			c.writeTo(sb)
		}
		sb.WriteString("</" + n.Tag + ">")
	}
}
