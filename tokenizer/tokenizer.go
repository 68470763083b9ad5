package tokenizer

// Tokenizer is the codepoint-driven HTML tokenization state machine.
// It consumes a rune slice and synchronously feeds every emitted Token
// to a Builder.
//
// Reconsumption is modeled without recursion: dispatch returns whether
// the same codepoint should be re-dispatched under the (possibly new)
// current state, and Run loops on that until false.
type Tokenizer struct {
	input []rune
	pos   int

	state       stateType
	returnState stateType
	current     Token

	tempBuffer  []rune
	charRefCode int

	rawTagName string

	builder *Builder
}

func newTokenizer(src string, b *Builder) *Tokenizer {
	t := &Tokenizer{
		input:   []rune(src),
		state:   stateData,
		builder: b,
	}
	b.onRawMode = func(mode stateType, tagName string) {
		t.state = mode
		t.rawTagName = tagName
	}
	return t
}

// Run drives the state machine to completion, feeding the builder as
// it goes. It does not return a value; the caller finalizes the
// builder separately.
func (t *Tokenizer) Run() {
	for {
		cp := t.nextRune()
		for t.dispatch(cp) {
		}
		if cp == EOF {
			return
		}
	}
}

func (t *Tokenizer) nextRune() rune {
	if t.pos >= len(t.input) {
		return EOF
	}
	r := t.input[t.pos]
	t.pos++
	return r
}

// dispatch runs one state's handler for cp and reports whether cp
// must be reconsumed under the state now current.
func (t *Tokenizer) dispatch(cp rune) bool {
	switch t.state {
	case stateData:
		return t.stepData(cp)
	case stateRCData:
		return t.stepRCData(cp)
	case stateRawText:
		return t.stepRawText(cp)

	case stateTagOpen:
		return t.stepTagOpen(cp)
	case stateEndTagOpen:
		return t.stepEndTagOpen(cp)
	case stateTagName:
		return t.stepTagName(cp)

	case stateRCDataLessThan:
		return t.stepRawLikeLessThan(cp, stateRCData, stateRCDataEndTagOpen)
	case stateRCDataEndTagOpen:
		return t.stepRawLikeEndTagOpen(cp, stateRCData, stateRCDataEndTagName)
	case stateRCDataEndTagName:
		return t.stepRawLikeEndTagName(cp, stateRCData)

	case stateRawTextLessThan:
		return t.stepRawLikeLessThan(cp, stateRawText, stateRawTextEndTagOpen)
	case stateRawTextEndTagOpen:
		return t.stepRawLikeEndTagOpen(cp, stateRawText, stateRawTextEndTagName)
	case stateRawTextEndTagName:
		return t.stepRawLikeEndTagName(cp, stateRawText)

	case stateBeforeAttributeName:
		return t.stepBeforeAttributeName(cp)
	case stateAttributeName:
		return t.stepAttributeName(cp)
	case stateAfterAttributeName:
		return t.stepAfterAttributeName(cp)
	case stateBeforeAttributeValue:
		return t.stepBeforeAttributeValue(cp)
	case stateAttributeValueDoubleQuoted:
		return t.stepAttributeValueQuoted(cp, '"', stateAttributeValueDoubleQuoted)
	case stateAttributeValueSingleQuoted:
		return t.stepAttributeValueQuoted(cp, '\'', stateAttributeValueSingleQuoted)
	case stateAttributeValueUnquoted:
		return t.stepAttributeValueUnquoted(cp)
	case stateAfterAttributeValueQuoted:
		return t.stepAfterAttributeValueQuoted(cp)
	case stateSelfClosingStartTag:
		return t.stepSelfClosingStartTag(cp)

	case stateBogusComment:
		return t.stepBogusComment(cp)
	case stateMarkupDeclarationOpen:
		return t.stepMarkupDeclarationOpen(cp)
	case stateCommentStart:
		return t.stepCommentStart(cp)
	case stateCommentStartDash:
		return t.stepCommentStartDash(cp)
	case stateComment:
		return t.stepComment(cp)
	case stateCommentLessThan:
		return t.stepCommentLessThan(cp)
	case stateCommentLessThanBang:
		return t.stepCommentLessThanBang(cp)
	case stateCommentLessThanBangDash:
		return t.stepCommentLessThanBangDash(cp)
	case stateCommentLessThanBangDashDash:
		return t.stepCommentLessThanBangDashDash(cp)
	case stateCommentEndDash:
		return t.stepCommentEndDash(cp)
	case stateCommentEnd:
		return t.stepCommentEnd(cp)
	case stateCommentEndBang:
		return t.stepCommentEndBang(cp)

	case stateDoctype:
		return t.stepDoctype(cp)
	case stateBeforeDoctypeName:
		return t.stepBeforeDoctypeName(cp)
	case stateDoctypeName:
		return t.stepDoctypeName(cp)
	case stateAfterDoctypeName:
		return t.stepAfterDoctypeName(cp)
	case stateDoctypeData:
		return t.stepDoctypeData(cp)

	case stateCharacterReference:
		return t.stepCharacterReference(cp)
	case stateNamedCharacterReference:
		return t.stepNamedCharacterReference(cp)
	case stateNumericCharacterReference:
		return t.stepNumericCharacterReference(cp)
	case stateHexCharacterReferenceStart:
		return t.stepHexCharacterReferenceStart(cp)
	case stateDecimalCharacterReferenceStart:
		return t.stepDecimalCharacterReferenceStart(cp)
	case stateHexCharacterReference:
		return t.stepHexCharacterReference(cp)
	case stateDecimalCharacterReference:
		return t.stepDecimalCharacterReference(cp)
	case stateNumericCharacterReferenceEnd:
		return t.stepNumericCharacterReferenceEnd(cp)
	}
	return false
}

// --- emission helpers ---

func (t *Tokenizer) emitChar(r rune) {
	t.builder.Receive(Token{Type: CharacterToken, Char: r})
}

func (t *Tokenizer) emitEOF() {
	t.builder.Receive(Token{Type: EndOfFileToken})
}

// emitPartialAndEOF is used by every "in tag/comment/doctype at EOF"
// branch: unterminated tags, comments, and doctypes emit the partial
// token as-is, followed by an EndOfFile token.
func (t *Tokenizer) emitPartialAndEOF() {
	t.current.commitAttr()
	logRecoveredf("state", t.state, "unterminated token at end of input, emitting partial token")
	t.builder.Receive(t.current)
	t.current = Token{}
	t.emitEOF()
}

// emitTag commits the pending attribute, sends the current StartTag
// or EndTag token, and decides the next state: stateData, unless the
// builder's tree-construction policy signals that the just-pushed
// element (style/script) requires a raw content sub-state.
func (t *Tokenizer) emitTag() {
	t.current.commitAttr()
	t.state = stateData
	t.builder.Receive(t.current)
	t.current = Token{}
}

func (t *Tokenizer) emitComment() {
	t.builder.Receive(t.current)
	t.current = Token{}
}

func (t *Tokenizer) emitDoctype() {
	t.builder.Receive(t.current)
	t.current = Token{}
}

// matchAhead reports whether cp followed by the upcoming input equals
// s, without consuming anything. caseInsensitive is used for the
// DOCTYPE keyword only.
func (t *Tokenizer) matchAhead(cp rune, s string, caseInsensitive bool) bool {
	want := []rune(s)
	first, w0 := cp, want[0]
	if caseInsensitive {
		first, w0 = toASCIILower(first), toASCIILower(w0)
	}
	if first != w0 {
		return false
	}
	for i := 1; i < len(want); i++ {
		idx := t.pos + i - 1
		if idx >= len(t.input) {
			return false
		}
		c, w := t.input[idx], want[i]
		if caseInsensitive {
			c, w = toASCIILower(c), toASCIILower(w)
		}
		if c != w {
			return false
		}
	}
	return true
}

// consumeAhead advances the cursor past the n-1 runes following cp
// that matchAhead already confirmed.
func (t *Tokenizer) consumeAhead(n int) {
	t.pos += n - 1
}

// --- Data / RCData / RawText ---

func (t *Tokenizer) stepData(cp rune) bool {
	switch cp {
	case '<':
		t.state = stateTagOpen
	case '&':
		t.returnState = stateData
		t.state = stateCharacterReference
	case EOF:
		t.emitEOF()
	default:
		t.emitChar(cp)
	}
	return false
}

func (t *Tokenizer) stepRCData(cp rune) bool {
	switch cp {
	case '<':
		t.state = stateRCDataLessThan
	case '&':
		t.returnState = stateRCData
		t.state = stateCharacterReference
	case 0:
		t.emitChar(replacementChar)
	case EOF:
		t.emitEOF()
	default:
		t.emitChar(cp)
	}
	return false
}

// stepRawText is like RCData but without character-reference handling,
// used for elements like script whose content must never be scanned
// for entities.
func (t *Tokenizer) stepRawText(cp rune) bool {
	switch cp {
	case '<':
		t.state = stateRawTextLessThan
	case 0:
		t.emitChar(replacementChar)
	case EOF:
		t.emitEOF()
	default:
		t.emitChar(cp)
	}
	return false
}

// --- Tag open / name ---

func (t *Tokenizer) stepTagOpen(cp rune) bool {
	switch {
	case cp == '!':
		t.state = stateMarkupDeclarationOpen
	case cp == '/':
		t.state = stateEndTagOpen
	case cp == '?':
		t.current = newComment("")
		t.state = stateBogusComment
		return true
	case isASCIILetter(cp):
		t.current = newStartTag()
		t.state = stateTagName
		return true
	case cp == EOF:
		t.emitChar('<')
		t.emitEOF()
	default:
		t.emitChar('<')
		t.state = stateData
		return true
	}
	return false
}

func (t *Tokenizer) stepEndTagOpen(cp rune) bool {
	switch {
	case isASCIILetter(cp):
		t.current = newEndTag()
		t.state = stateTagName
		return true
	case cp == '>':
		t.state = stateData
	default:
		t.current = newComment("")
		t.state = stateBogusComment
		return true
	}
	return false
}

func (t *Tokenizer) stepTagName(cp rune) bool {
	switch {
	case isWhitespace(cp):
		t.state = stateBeforeAttributeName
	case cp == '/':
		t.state = stateSelfClosingStartTag
	case cp == '>':
		t.emitTag()
	case cp == EOF:
		t.emitPartialAndEOF()
	case isASCIIUpper(cp):
		t.current.appendName(toASCIILower(cp))
	case cp == 0:
		t.current.appendName(replacementChar)
	default:
		t.current.appendName(cp)
	}
	return false
}

// --- RCData/RawText end tag machinery (shared shape, parameterized
// so the same handlers serve both sub-modes) ---

func (t *Tokenizer) stepRawLikeLessThan(cp rune, rawState, openState stateType) bool {
	if cp == '/' {
		t.tempBuffer = t.tempBuffer[:0]
		t.state = openState
		return false
	}
	t.emitChar('<')
	t.state = rawState
	return true
}

func (t *Tokenizer) stepRawLikeEndTagOpen(cp rune, rawState, nameState stateType) bool {
	if isASCIILetter(cp) {
		t.current = newEndTag()
		t.tempBuffer = t.tempBuffer[:0]
		t.state = nameState
		return true
	}
	t.emitChar('<')
	t.emitChar('/')
	t.state = rawState
	return true
}

// stepRawLikeEndTagName decides whether a "</name" sequence inside
// rcdata/rawtext actually closes the open raw element: any non-letter
// stops name collection; if the collected name doesn't match the
// currently-open raw element (or the sentinel isn't one of
// space/'/'/'>' i.e. EOF or anything else), the consumed "</name" is
// emitted as characters and cp is reconsumed in rawState.
func (t *Tokenizer) stepRawLikeEndTagName(cp rune, rawState stateType) bool {
	if isASCIILetter(cp) {
		t.current.appendName(toASCIILower(cp))
		t.tempBuffer = append(t.tempBuffer, cp)
		return false
	}

	matches := t.current.Name == t.rawTagName
	if matches {
		switch cp {
		case ' ', '\t', '\n', '\f':
			t.state = stateBeforeAttributeName
			return false
		case '/':
			t.state = stateSelfClosingStartTag
			return false
		case '>':
			t.emitTag()
			t.rawTagName = ""
			return false
		}
	}

	t.emitChar('<')
	t.emitChar('/')
	for _, r := range t.tempBuffer {
		t.emitChar(r)
	}
	t.tempBuffer = t.tempBuffer[:0]
	t.current = Token{}
	t.state = rawState
	return true
}

// --- Attributes ---

func (t *Tokenizer) stepBeforeAttributeName(cp rune) bool {
	switch {
	case isWhitespace(cp):
		return false
	case cp == '/' || cp == '>' || cp == EOF:
		t.state = stateAfterAttributeName
		return true
	case cp == '=':
		// Recoverable: tolerate by starting an attribute whose name
		// begins with '='.
		t.current.beginAttr()
		t.current.appendAttrName('=')
		t.state = stateAttributeName
		return false
	default:
		t.current.beginAttr()
		t.state = stateAttributeName
		return true
	}
}

func (t *Tokenizer) stepAttributeName(cp rune) bool {
	switch {
	case isWhitespace(cp) || cp == '/' || cp == '>' || cp == EOF:
		t.state = stateAfterAttributeName
		return true
	case cp == '=':
		t.state = stateBeforeAttributeValue
	case isASCIIUpper(cp):
		t.current.appendAttrName(toASCIILower(cp))
	case cp == 0:
		t.current.appendAttrName(replacementChar)
	default:
		t.current.appendAttrName(cp)
	}
	return false
}

func (t *Tokenizer) stepAfterAttributeName(cp rune) bool {
	switch {
	case isWhitespace(cp):
		return false
	case cp == '=':
		t.state = stateBeforeAttributeValue
	case cp == '/':
		t.current.commitAttr()
		t.state = stateSelfClosingStartTag
	case cp == '>':
		t.current.commitAttr()
		t.emitTag()
	case cp == EOF:
		t.emitPartialAndEOF()
	default:
		t.current.beginAttr()
		t.state = stateAttributeName
		return true
	}
	return false
}

func (t *Tokenizer) stepBeforeAttributeValue(cp rune) bool {
	switch cp {
	case ' ', '\t', '\n', '\f':
		return false
	case '"':
		t.state = stateAttributeValueDoubleQuoted
	case '\'':
		t.state = stateAttributeValueSingleQuoted
	case '>':
		t.current.commitAttr()
		t.emitTag()
	case EOF:
		t.emitPartialAndEOF()
	default:
		t.state = stateAttributeValueUnquoted
		return true
	}
	return false
}

func (t *Tokenizer) stepAttributeValueQuoted(cp, quote rune, self stateType) bool {
	switch cp {
	case quote:
		t.state = stateAfterAttributeValueQuoted
	case '&':
		t.returnState = self
		t.state = stateCharacterReference
	case 0:
		t.current.appendAttrValue(replacementChar)
	case EOF:
		t.emitPartialAndEOF()
	default:
		t.current.appendAttrValue(cp)
	}
	return false
}

func (t *Tokenizer) stepAttributeValueUnquoted(cp rune) bool {
	switch {
	case isWhitespace(cp):
		t.current.commitAttr()
		t.state = stateBeforeAttributeName
	case cp == '&':
		t.returnState = stateAttributeValueUnquoted
		t.state = stateCharacterReference
	case cp == '>':
		t.current.commitAttr()
		t.emitTag()
	case cp == 0:
		t.current.appendAttrValue(replacementChar)
	case cp == EOF:
		t.emitPartialAndEOF()
	default:
		t.current.appendAttrValue(cp)
	}
	return false
}

func (t *Tokenizer) stepAfterAttributeValueQuoted(cp rune) bool {
	switch {
	case isWhitespace(cp):
		t.current.commitAttr()
		t.state = stateBeforeAttributeName
	case cp == '/':
		t.current.commitAttr()
		t.state = stateSelfClosingStartTag
	case cp == '>':
		t.current.commitAttr()
		t.emitTag()
	case cp == EOF:
		t.emitPartialAndEOF()
	default:
		t.state = stateBeforeAttributeName
		return true
	}
	return false
}

func (t *Tokenizer) stepSelfClosingStartTag(cp rune) bool {
	switch cp {
	case '>':
		t.current.SelfClosing = true
		t.emitTag()
	case EOF:
		t.emitPartialAndEOF()
	default:
		t.state = stateBeforeAttributeName
		return true
	}
	return false
}

// --- Bogus comment / markup declaration open ---

func (t *Tokenizer) stepBogusComment(cp rune) bool {
	switch cp {
	case '>':
		t.emitComment()
		t.state = stateData
	case EOF:
		t.emitPartialAndEOF()
	case 0:
		t.current.appendData(replacementChar)
	default:
		t.current.appendData(cp)
	}
	return false
}

func (t *Tokenizer) stepMarkupDeclarationOpen(cp rune) bool {
	if t.matchAhead(cp, "--", false) {
		t.consumeAhead(2)
		t.current = newComment("")
		t.state = stateCommentStart
		return false
	}
	if t.matchAhead(cp, "DOCTYPE", true) {
		t.consumeAhead(7)
		t.current = newDoctype()
		t.state = stateDoctype
		return false
	}
	if t.matchAhead(cp, "[CDATA[", false) {
		t.consumeAhead(7)
		t.current = newComment("[CDATA[")
		t.state = stateBogusComment
		return false
	}
	t.current = newComment("")
	t.state = stateBogusComment
	return true
}

// --- Comments ---
//
// comment's handling of '-' (transition to commentEndDash rather than
// the base table's blank cell) is a deliberate reading documented in
// DESIGN.md: without it, "-->" could never close a comment, which
// contradicts the worked examples this tokenizer is tested against.

func (t *Tokenizer) stepCommentStart(cp rune) bool {
	switch cp {
	case '-':
		t.state = stateCommentStartDash
	case '>':
		t.emitComment()
		t.state = stateData
	case EOF:
		t.emitPartialAndEOF()
	default:
		t.state = stateComment
		return true
	}
	return false
}

func (t *Tokenizer) stepCommentStartDash(cp rune) bool {
	switch cp {
	case '-':
		t.state = stateCommentEnd
	case '>':
		// Treated by analogy with the other comment end-transitions.
		t.emitComment()
		t.state = stateData
	case EOF:
		t.emitPartialAndEOF()
	default:
		t.current.appendData('-')
		t.state = stateComment
		return true
	}
	return false
}

func (t *Tokenizer) stepComment(cp rune) bool {
	switch cp {
	case '-':
		t.state = stateCommentEndDash
	case '<':
		t.current.appendData('<')
		t.state = stateCommentLessThan
	case 0:
		t.current.appendData(replacementChar)
	case EOF:
		t.emitPartialAndEOF()
	default:
		t.current.appendData(cp)
	}
	return false
}

func (t *Tokenizer) stepCommentLessThan(cp rune) bool {
	switch cp {
	case '!':
		t.current.appendData('!')
		t.state = stateCommentLessThanBang
	case '<':
		t.current.appendData('<')
	default:
		t.state = stateComment
		return true
	}
	return false
}

func (t *Tokenizer) stepCommentLessThanBang(cp rune) bool {
	if cp == '-' {
		t.state = stateCommentLessThanBangDash
		return false
	}
	t.state = stateComment
	return true
}

func (t *Tokenizer) stepCommentLessThanBangDash(cp rune) bool {
	if cp == '-' {
		t.state = stateCommentLessThanBangDashDash
		return false
	}
	t.state = stateCommentEndDash
	return true
}

func (t *Tokenizer) stepCommentLessThanBangDashDash(cp rune) bool {
	t.state = stateCommentEnd
	return true
}

func (t *Tokenizer) stepCommentEndDash(cp rune) bool {
	switch cp {
	case '-':
		t.state = stateCommentEnd
	case EOF:
		t.emitPartialAndEOF()
	default:
		t.current.appendData('-')
		t.state = stateComment
		return true
	}
	return false
}

func (t *Tokenizer) stepCommentEnd(cp rune) bool {
	switch cp {
	case '>':
		t.emitComment()
		t.state = stateData
	case EOF:
		t.emitPartialAndEOF()
	case '!':
		t.state = stateCommentEndBang
	case '-':
		t.current.appendData('-')
	default:
		t.current.appendData('-')
		t.current.appendData('-')
		t.state = stateComment
		return true
	}
	return false
}

func (t *Tokenizer) stepCommentEndBang(cp rune) bool {
	switch cp {
	case '-':
		t.current.appendData('-')
		t.current.appendData('-')
		t.current.appendData('!')
		t.state = stateCommentEndDash
	case '>':
		t.emitComment()
		t.state = stateData
	case EOF:
		t.emitPartialAndEOF()
	default:
		t.current.appendData('-')
		t.current.appendData('-')
		t.current.appendData('!')
		t.state = stateComment
		return true
	}
	return false
}

// --- Doctype ---

func (t *Tokenizer) stepDoctype(cp rune) bool {
	switch {
	case isWhitespace(cp):
		t.state = stateBeforeDoctypeName
	case cp == EOF:
		t.current.ForceQuirks = true
		t.emitPartialAndEOF()
	default:
		t.state = stateBeforeDoctypeName
		return true
	}
	return false
}

func (t *Tokenizer) stepBeforeDoctypeName(cp rune) bool {
	switch {
	case isWhitespace(cp):
		return false
	case cp == '>':
		t.current.ForceQuirks = true
		t.emitDoctype()
		t.state = stateData
	case cp == EOF:
		t.current.ForceQuirks = true
		t.emitPartialAndEOF()
	case isASCIIUpper(cp):
		t.current.appendName(toASCIILower(cp))
		t.state = stateDoctypeName
	case cp == 0:
		t.current.appendName(replacementChar)
		t.state = stateDoctypeName
	default:
		t.current.appendName(cp)
		t.state = stateDoctypeName
	}
	return false
}

func (t *Tokenizer) stepDoctypeName(cp rune) bool {
	switch {
	case isWhitespace(cp):
		t.state = stateAfterDoctypeName
	case cp == '>':
		t.emitDoctype()
		t.state = stateData
	case cp == EOF:
		t.current.ForceQuirks = true
		t.emitPartialAndEOF()
	case isASCIIUpper(cp):
		t.current.appendName(toASCIILower(cp))
	case cp == 0:
		t.current.appendName(replacementChar)
	default:
		t.current.appendName(cp)
	}
	return false
}

func (t *Tokenizer) stepAfterDoctypeName(cp rune) bool {
	switch {
	case isWhitespace(cp):
		return false
	case cp == '>':
		t.emitDoctype()
		t.state = stateData
	case cp == EOF:
		t.current.ForceQuirks = true
		t.emitPartialAndEOF()
	default:
		t.state = stateDoctypeData
		return true
	}
	return false
}

func (t *Tokenizer) stepDoctypeData(cp rune) bool {
	switch cp {
	case '>':
		t.emitDoctype()
		t.state = stateData
	case EOF:
		t.current.ForceQuirks = true
		t.emitPartialAndEOF()
	case 0:
		t.current.appendData(replacementChar)
	default:
		t.current.appendData(cp)
	}
	return false
}
