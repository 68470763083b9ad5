package tokenizer

// Builder consumes the tokenizer's token stream and builds the
// document tree. It maintains a stack of currently open
// elements ("unfinished"). Root itself is never pushed: it is the
// current node whenever the stack is empty.
//
// Open elements are pushed without being attached to their parent;
// they are attached exactly when they come off the stack again, on a
// matching (or, per the simplification this design makes, any) end
// tag, or at finalization. End-tag handling is a single unconditional
// pop — there is no adoption-agency algorithm and no scope search
// here.
type Builder struct {
	root    *Node
	stack   []*Node
	textBuf []rune

	// onRawMode is called when a style/script start tag is pushed, so
	// the driving Tokenizer can switch into the matching raw content
	// mode for subsequent input.
	onRawMode func(mode stateType, tagName string)

	// onToken, if set, observes every token as it arrives, ahead of
	// tree construction. Used by Tokens() for debug token dumps.
	onToken func(Token)
}

// rawModeByTag maps tag names that trigger a raw-content sub-state of
// the tokenizer to the state to switch into: style gets rcdata, script
// gets rawtext (no character-reference handling) since its content is
// never meant to contain entities.
var rawModeByTag = map[string]stateType{
	"style":  stateRCData,
	"script": stateRawText,
}

func newBuilder() *Builder {
	return &Builder{root: newNode(RootNode), stack: nil}
}

func (b *Builder) current() *Node {
	if len(b.stack) == 0 {
		return b.root
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) flushText() {
	if len(b.textBuf) == 0 {
		return
	}
	text := newNode(TextNode)
	text.Text = string(b.textBuf)
	b.current().appendChild(text)
	b.textBuf = b.textBuf[:0]
}

// Receive processes one emitted token. EndOfFileToken is not handled
// here; the driver calls Finalize once the tokenizer's run loop
// returns.
func (b *Builder) Receive(tok Token) {
	if b.onToken != nil {
		b.onToken(tok)
	}
	switch tok.Type {
	case CharacterToken:
		b.textBuf = append(b.textBuf, tok.Char)

	case StartTagToken:
		b.flushText()
		el := newNode(ElementNode)
		el.Tag = tok.Name
		el.Attrs = tok.Attrs
		el.SelfClosing = tok.SelfClosing

		if tok.SelfClosing || voidElements[el.Tag] {
			b.current().appendChild(el)
			return
		}

		b.stack = append(b.stack, el)
		if mode, ok := rawModeByTag[el.Tag]; ok && b.onRawMode != nil {
			b.onRawMode(mode, el.Tag)
		}

	case EndTagToken:
		b.flushText()
		if len(b.stack) == 0 {
			logRecoveredf("tag", tok.Name, "end tag %q with no open elements, ignored", tok.Name)
			return
		}
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		if top.Tag != tok.Name {
			logRecoveredf("tag", tok.Name, "end tag closed mismatched open element %q", top.Tag)
		}
		b.current().appendChild(top)

	case CommentToken:
		b.flushText()
		c := newNode(CommentNode)
		c.Text = tok.Data
		b.current().appendChild(c)

	case DoctypeToken:
		b.flushText()
		d := newNode(DoctypeNode)
		d.DoctypeName = tok.Name
		d.DoctypeData = tok.Data
		d.ForceQuirks = tok.ForceQuirks
		b.current().appendChild(d)
	}
}

// Finalize flushes any pending text and closes out every remaining
// open element in stack order, attaching each to its new parent, then
// returns the Root node.
func (b *Builder) Finalize() *Node {
	b.flushText()
	for len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.current().appendChild(top)
	}
	return b.root
}
