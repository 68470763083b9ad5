package tokenizer

// windows1252PatchTable maps the C1 control range (0x80-0x9F) to the
// Windows-1252 codepoints browsers substitute for numeric character
// references in that range.
var windows1252PatchTable = map[rune]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}

// stepCharacterReference is the entry state reached on '&' in Data,
// RCData, or an attribute-value state.
func (t *Tokenizer) stepCharacterReference(cp rune) bool {
	t.tempBuffer = append(t.tempBuffer[:0], '&')
	switch {
	case isASCIIAlnum(cp):
		t.state = stateNamedCharacterReference
		return true
	case cp == '#':
		t.tempBuffer = append(t.tempBuffer, '#')
		t.state = stateNumericCharacterReference
	default:
		t.flushTempBuffer()
		t.state = t.returnState
		return true
	}
	return false
}

// stepNamedCharacterReference implements the longest-match-with-
// backtrack algorithm over the entity trie.
func (t *Tokenizer) stepNamedCharacterReference(cp rune) bool {
	search := t.tempBuffer[1:]

	if cp == ';' {
		extended := append(append([]rune{}, search...), ';')
		if node := sharedEntityTrie.lookup(extended); node != nil && node.terminal {
			t.addEntity(node.replacement)
			t.state = t.returnState
			return false
		}
		t.flushTempBuffer()
		t.state = t.returnState
		return true
	}

	extended := append(append([]rune{}, search...), cp)
	if sharedEntityTrie.lookup(extended) != nil {
		t.tempBuffer = append(t.tempBuffer, cp)
		return false
	}

	if t.current.Type == StartTagToken && (cp == '=' || isASCIIAlnum(cp)) {
		t.flushTempBuffer()
		t.state = t.returnState
		return true
	}

	// Backtrack: search (without the rejected cp) may itself resolve,
	// or some proper prefix of it does. Whatever is popped beyond the
	// matched prefix is carried forward as literal text.
	for n := len(search); n >= 0; n-- {
		prefix := search[:n]
		node := sharedEntityTrie.lookup(prefix)
		if node != nil && node.terminal {
			t.addEntity(node.replacement)
			leftover := append([]rune{}, search[n:]...)
			for _, r := range leftover {
				t.flushOne(r)
			}
			t.tempBuffer = t.tempBuffer[:0]
			t.state = t.returnState
			return true
		}
	}

	t.flushTempBuffer()
	t.state = t.returnState
	return true
}

// flushTempBuffer flushes a failed character-reference attempt: if the
// current token is a StartTag and return_state is an attribute-value
// state, the buffered characters become part of the current attribute
// value; otherwise each is emitted as a standalone Character token.
func (t *Tokenizer) flushTempBuffer() {
	logRecoveredf("reference", string(t.tempBuffer), "unresolved character reference, flushing as literal text")
	for _, r := range t.tempBuffer {
		t.flushOne(r)
	}
	t.tempBuffer = t.tempBuffer[:0]
}

func (t *Tokenizer) flushOne(r rune) {
	if t.current.Type == StartTagToken && isAttributeValueState(t.returnState) {
		t.current.appendAttrValue(r)
		return
	}
	t.emitChar(r)
}

// addEntity appends the replacement string's runes to the current
// attribute value, or emits them as Character tokens, then clears
// temp_buffer.
func (t *Tokenizer) addEntity(replacement string) {
	for _, r := range replacement {
		if t.current.Type == StartTagToken && isAttributeValueState(t.returnState) {
			t.current.appendAttrValue(r)
		} else {
			t.emitChar(r)
		}
	}
	t.tempBuffer = t.tempBuffer[:0]
}

// --- Numeric character references ---

func (t *Tokenizer) stepNumericCharacterReference(cp rune) bool {
	t.charRefCode = 0
	switch cp {
	case 'x', 'X':
		t.tempBuffer = append(t.tempBuffer, cp)
		t.state = stateHexCharacterReferenceStart
	default:
		t.state = stateDecimalCharacterReferenceStart
		return true
	}
	return false
}

func (t *Tokenizer) stepHexCharacterReferenceStart(cp rune) bool {
	if isASCIIHexDigit(cp) {
		t.state = stateHexCharacterReference
		return true
	}
	t.flushTempBuffer()
	t.state = t.returnState
	return true
}

func (t *Tokenizer) stepDecimalCharacterReferenceStart(cp rune) bool {
	if isASCIIDigit(cp) {
		t.state = stateDecimalCharacterReference
		return true
	}
	t.flushTempBuffer()
	t.state = t.returnState
	return true
}

func (t *Tokenizer) stepHexCharacterReference(cp rune) bool {
	switch {
	case isASCIIHexDigit(cp):
		t.charRefCode = t.charRefCode*16 + hexDigitValue(cp)
		return false
	case cp == ';':
		t.state = stateNumericCharacterReferenceEnd
		return false
	default:
		t.state = stateNumericCharacterReferenceEnd
		return true
	}
}

func (t *Tokenizer) stepDecimalCharacterReference(cp rune) bool {
	switch {
	case isASCIIDigit(cp):
		t.charRefCode = t.charRefCode*10 + int(cp-'0')
		return false
	case cp == ';':
		t.state = stateNumericCharacterReferenceEnd
		return false
	default:
		t.state = stateNumericCharacterReferenceEnd
		return true
	}
}

// stepNumericCharacterReferenceEnd sanitizes charRefCode and emits the
// resulting scalar.
func (t *Tokenizer) stepNumericCharacterReferenceEnd(cp rune) bool {
	code := t.charRefCode

	switch {
	case code == 0 || code > 0x10FFFF || (code >= 0xD800 && code <= 0xDFFF):
		code = 0xFFFD
	default:
		if patched, ok := windows1252PatchTable[rune(code)]; ok {
			code = int(patched)
		}
	}

	t.addEntity(string(rune(code)))
	t.state = t.returnState
	return true
}
