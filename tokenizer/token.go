package tokenizer

import "fmt"

// TokenType identifies which variant a Token carries.
type TokenType int

const (
	CharacterToken TokenType = iota
	StartTagToken
	EndTagToken
	CommentToken
	DoctypeToken
	EndOfFileToken
)

func (t TokenType) String() string {
	switch t {
	case CharacterToken:
		return "Character"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "Doctype"
	case EndOfFileToken:
		return "EndOfFile"
	default:
		return "Unknown"
	}
}

// Attribute is a single (name, value) pair in source order. Duplicates
// are kept as-is; the tree builder does not deduplicate them.
type Attribute struct {
	Name  string
	Value string
}

// Token is the tagged union emitted by the tokenizer. Only the fields
// relevant to Type are meaningful; the rest are left zero.
//
// StartTag accumulates attrs via currentName/currentValue while
// a tag is being scanned; commitAttr moves the pending pair into Attrs
// and clears the accumulators.
type Token struct {
	Type TokenType

	// Character
	Char rune

	// StartTag / EndTag
	Name         string
	Attrs        []Attribute
	SelfClosing  bool
	currentName  []rune
	currentValue []rune
	haveAttr     bool

	// Comment
	Data string

	// Doctype
	ForceQuirks bool
}

func newStartTag() Token {
	return Token{Type: StartTagToken}
}

func newEndTag() Token {
	return Token{Type: EndTagToken}
}

func newComment(initial string) Token {
	return Token{Type: CommentToken, Data: initial}
}

func newDoctype() Token {
	return Token{Type: DoctypeToken}
}

// beginAttr starts a new pending attribute, first committing whatever
// was pending before it (if any).
func (t *Token) beginAttr() {
	t.commitAttr()
	t.currentName = t.currentName[:0]
	t.currentValue = t.currentValue[:0]
	t.haveAttr = true
}

// commitAttr appends the pending (name, value) pair to Attrs if a name
// was collected, then clears the accumulators. Safe to call when no
// attribute is pending.
func (t *Token) commitAttr() {
	if !t.haveAttr {
		return
	}
	name := string(t.currentName)
	if name != "" {
		t.Attrs = append(t.Attrs, Attribute{Name: name, Value: string(t.currentValue)})
	}
	t.currentName = nil
	t.currentValue = nil
	t.haveAttr = false
}

func (t *Token) appendAttrName(r rune) {
	if !t.haveAttr {
		t.haveAttr = true
	}
	t.currentName = append(t.currentName, r)
}

func (t *Token) appendAttrValue(r rune) {
	t.currentValue = append(t.currentValue, r)
}

// appendName appends to the tag/doctype name.
func (t *Token) appendName(r rune) {
	t.Name += string(r)
}

// appendData appends to comment/doctype data.
func (t *Token) appendData(r rune) {
	t.Data += string(r)
}

// String is a non-normative debug rendering used by the tokens CLI
// command, not by tree construction.
func (t Token) String() string {
	switch t.Type {
	case CharacterToken:
		return fmt.Sprintf("Character(%q)", t.Char)
	case StartTagToken:
		return fmt.Sprintf("StartTag(%s attrs=%v selfClosing=%v)", t.Name, t.Attrs, t.SelfClosing)
	case EndTagToken:
		return fmt.Sprintf("EndTag(%s)", t.Name)
	case CommentToken:
		return fmt.Sprintf("Comment(%q)", t.Data)
	case DoctypeToken:
		return fmt.Sprintf("Doctype(%s data=%q forceQuirks=%v)", t.Name, t.Data, t.ForceQuirks)
	case EndOfFileToken:
		return "EndOfFile"
	default:
		return "Unknown"
	}
}
