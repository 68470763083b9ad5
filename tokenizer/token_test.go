package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_AttributeAccumulatorCommitsOnNewAttr(t *testing.T) {
	tok := newStartTag()
	tok.beginAttr()
	tok.appendAttrName('i')
	tok.appendAttrName('d')
	tok.appendAttrValue('x')

	tok.beginAttr() // committing "id"="x" and starting a new one
	tok.appendAttrName('c')
	tok.commitAttr()

	require.Len(t, tok.Attrs, 2)
	assert.Equal(t, Attribute{Name: "id", Value: "x"}, tok.Attrs[0])
	assert.Equal(t, Attribute{Name: "c", Value: ""}, tok.Attrs[1])
}

func TestToken_CommitAttrSkipsEmptyName(t *testing.T) {
	tok := newStartTag()
	tok.beginAttr()
	tok.commitAttr()

	assert.Empty(t, tok.Attrs)
}

func TestToken_CommitAttrIsNoopWithoutPendingAttr(t *testing.T) {
	tok := newStartTag()
	tok.commitAttr()
	assert.Empty(t, tok.Attrs)
}

func TestToken_AppendNameAndData(t *testing.T) {
	tok := newStartTag()
	tok.appendName('d')
	tok.appendName('i')
	tok.appendName('v')
	assert.Equal(t, "div", tok.Name)

	c := newComment("")
	c.appendData('h')
	c.appendData('i')
	assert.Equal(t, "hi", c.Data)
}

func TestTokenType_String(t *testing.T) {
	cases := map[TokenType]string{
		CharacterToken: "Character",
		StartTagToken:  "StartTag",
		EndTagToken:    "EndTag",
		CommentToken:   "Comment",
		DoctypeToken:   "Doctype",
		EndOfFileToken: "EndOfFile",
	}
	for typ, want := range cases {
		assert.Equal(t, want, typ.String())
	}
}

func TestToken_StringRendersEndTag(t *testing.T) {
	tok := newEndTag()
	tok.Name = "div"
	assert.Equal(t, "EndTag(div)", tok.String())
}
