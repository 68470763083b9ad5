package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_AppendChildSetsParent(t *testing.T) {
	root := newNode(RootNode)
	child := newNode(ElementNode)
	child.Tag = "p"

	root.appendChild(child)

	assert.Same(t, root, child.Parent)
	assert.Equal(t, []*Node{child}, root.Children)
}

func TestNode_Attr(t *testing.T) {
	el := newNode(ElementNode)
	el.Attrs = []Attribute{{Name: "class", Value: "x"}, {Name: "id", Value: "y"}}

	v, ok := el.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "y", v)

	_, ok = el.Attr("missing")
	assert.False(t, ok)
}

func TestNode_IsVoid(t *testing.T) {
	img := newNode(ElementNode)
	img.Tag = "img"
	assert.True(t, img.IsVoid())

	div := newNode(ElementNode)
	div.Tag = "div"
	assert.False(t, div.IsVoid())

	assert.False(t, newNode(TextNode).IsVoid())
}

func TestNode_StringEscapesTextAndAttrs(t *testing.T) {
	root := newNode(RootNode)
	el := newNode(ElementNode)
	el.Tag = "a"
	el.Attrs = []Attribute{{Name: "title", Value: `a "quote"`}}
	text := newNode(TextNode)
	text.Text = "x < y & z"
	el.appendChild(text)
	root.appendChild(el)

	got := root.String()
	assert.Equal(t, `<a title="a &#34;quote&#34;">x &lt; y &amp; z</a>`, got)
}

func TestNode_StringVoidElementHasNoClosingContent(t *testing.T) {
	root := newNode(RootNode)
	br := newNode(ElementNode)
	br.Tag = "br"
	root.appendChild(br)

	assert.Equal(t, "<br>", root.String())
}
