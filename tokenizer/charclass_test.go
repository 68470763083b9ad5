package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharClass_Whitespace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\f', '\r'} {
		assert.Truef(t, isWhitespace(r), "expected %q to be whitespace", r)
	}
	assert.False(t, isWhitespace('a'))
}

func TestCharClass_ASCIICasing(t *testing.T) {
	assert.True(t, isASCIIUpper('A'))
	assert.False(t, isASCIIUpper('a'))
	assert.True(t, isASCIILower('z'))
	assert.True(t, isASCIILetter('Q'))
	assert.False(t, isASCIILetter('5'))
	assert.Equal(t, 'a', toASCIILower('A'))
	assert.Equal(t, 'z', toASCIILower('z'))
}

func TestCharClass_DigitsAndHex(t *testing.T) {
	assert.True(t, isASCIIDigit('5'))
	assert.False(t, isASCIIDigit('f'))
	assert.True(t, isASCIIHexDigit('f'))
	assert.True(t, isASCIIHexDigit('F'))
	assert.True(t, isASCIIHexDigit('9'))
	assert.False(t, isASCIIHexDigit('g'))
	assert.True(t, isASCIIAlnum('x'))
	assert.True(t, isASCIIAlnum('9'))
	assert.False(t, isASCIIAlnum('-'))
}

func TestCharClass_HexDigitValue(t *testing.T) {
	assert.Equal(t, 9, hexDigitValue('9'))
	assert.Equal(t, 10, hexDigitValue('a'))
	assert.Equal(t, 15, hexDigitValue('F'))
}

func TestState_IsAttributeValueState(t *testing.T) {
	for _, s := range []stateType{
		stateAttributeValueDoubleQuoted,
		stateAttributeValueSingleQuoted,
		stateAttributeValueUnquoted,
	} {
		assert.True(t, isAttributeValueState(s))
	}
	assert.False(t, isAttributeValueState(stateData))
}
