package tokenizer

// stateType enumerates the tokenizer's dispatch states. Names follow
// the WHATWG tokenization states this package implements a simplified
// subset of.
type stateType int

const (
	stateData stateType = iota
	stateRCData
	stateRawText

	stateTagOpen
	stateEndTagOpen
	stateTagName

	stateRCDataLessThan
	stateRCDataEndTagOpen
	stateRCDataEndTagName

	stateRawTextLessThan
	stateRawTextEndTagOpen
	stateRawTextEndTagName

	stateBeforeAttributeName
	stateAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateAttributeValueDoubleQuoted
	stateAttributeValueSingleQuoted
	stateAttributeValueUnquoted
	stateAfterAttributeValueQuoted
	stateSelfClosingStartTag

	stateBogusComment
	stateMarkupDeclarationOpen
	stateCommentStart
	stateCommentStartDash
	stateComment
	stateCommentLessThan
	stateCommentLessThanBang
	stateCommentLessThanBangDash
	stateCommentLessThanBangDashDash
	stateCommentEndDash
	stateCommentEnd
	stateCommentEndBang

	stateDoctype
	stateBeforeDoctypeName
	stateDoctypeName
	stateAfterDoctypeName
	stateDoctypeData

	stateCharacterReference
	stateNamedCharacterReference
	stateNumericCharacterReference
	stateHexCharacterReferenceStart
	stateDecimalCharacterReferenceStart
	stateHexCharacterReference
	stateDecimalCharacterReference
	stateNumericCharacterReferenceEnd
)

// isAttributeValueState reports whether s is one of the attribute
// value states, used by the character-reference flush policy to
// decide whether buffered characters belong in an attribute value or
// should be emitted as standalone Character tokens.
func isAttributeValueState(s stateType) bool {
	switch s {
	case stateAttributeValueDoubleQuoted, stateAttributeValueSingleQuoted, stateAttributeValueUnquoted:
		return true
	default:
		return false
	}
}
