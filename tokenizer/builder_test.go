package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_CoalescesAdjacentCharacterTokens(t *testing.T) {
	b := newBuilder()
	b.Receive(Token{Type: CharacterToken, Char: 'a'})
	b.Receive(Token{Type: CharacterToken, Char: 'b'})
	b.Receive(Token{Type: CharacterToken, Char: 'c'})
	root := b.Finalize()

	require.Len(t, root.Children, 1)
	assert.Equal(t, "abc", root.Children[0].Text)
}

func TestBuilder_EmptyTextBufferProducesNoNode(t *testing.T) {
	b := newBuilder()
	tag := newStartTag()
	tag.Name = "p"
	b.Receive(tag)
	root := b.Finalize()

	require.Len(t, root.Children, 1)
	assert.Empty(t, root.Children[0].Children)
}

func TestBuilder_VoidElementAttachesImmediatelyWithoutPush(t *testing.T) {
	b := newBuilder()
	tag := newStartTag()
	tag.Name = "br"
	b.Receive(tag)

	assert.Empty(t, b.stack)
	root := b.Finalize()
	require.Len(t, root.Children, 1)
	assert.Equal(t, "br", root.Children[0].Tag)
}

func TestBuilder_NonVoidElementIsAttachedOnlyWhenPopped(t *testing.T) {
	b := newBuilder()
	tag := newStartTag()
	tag.Name = "div"
	b.Receive(tag)

	require.Len(t, b.stack, 1)
	assert.Empty(t, b.root.Children, "element must not attach to parent until popped")

	end := newEndTag()
	end.Name = "div"
	b.Receive(end)

	assert.Empty(t, b.stack)
	require.Len(t, b.root.Children, 1)
	assert.Equal(t, "div", b.root.Children[0].Tag)
}

func TestBuilder_EndTagWithEmptyStackIsIgnored(t *testing.T) {
	b := newBuilder()
	end := newEndTag()
	end.Name = "div"
	b.Receive(end)

	root := b.Finalize()
	assert.Empty(t, root.Children)
}

func TestBuilder_StyleStartTagSignalsRawMode(t *testing.T) {
	b := newBuilder()
	var gotMode stateType
	var gotTag string
	b.onRawMode = func(mode stateType, tagName string) {
		gotMode = mode
		gotTag = tagName
	}

	tag := newStartTag()
	tag.Name = "style"
	b.Receive(tag)

	assert.Equal(t, stateRCData, gotMode)
	assert.Equal(t, "style", gotTag)
}

func TestBuilder_FinalizeClosesRemainingOpenElementsInOrder(t *testing.T) {
	b := newBuilder()
	outer := newStartTag()
	outer.Name = "div"
	b.Receive(outer)
	inner := newStartTag()
	inner.Name = "span"
	b.Receive(inner)
	b.Receive(Token{Type: CharacterToken, Char: 'x'})

	root := b.Finalize()
	require.Len(t, root.Children, 1)
	div := root.Children[0]
	require.Len(t, div.Children, 1)
	span := div.Children[0]
	require.Len(t, span.Children, 1)
	assert.Equal(t, "x", span.Children[0].Text)
}

func TestBuilder_CommentAndDoctypeAttachAsChildren(t *testing.T) {
	b := newBuilder()
	b.Receive(Token{Type: CommentToken, Data: "hi"})
	b.Receive(Token{Type: DoctypeToken, Name: "html"})

	root := b.Finalize()
	require.Len(t, root.Children, 2)
	assert.Equal(t, CommentNode, root.Children[0].Type)
	assert.Equal(t, "hi", root.Children[0].Text)
	assert.Equal(t, DoctypeNode, root.Children[1].Type)
	assert.Equal(t, "html", root.Children[1].DoctypeName)
}
