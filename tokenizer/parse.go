// Package tokenizer implements a WHATWG-style HTML tokenization state
// machine, a trie-based named-character-reference resolver, and a
// small tree-construction phase adequate for downstream
// transformation/templating use.
package tokenizer

import "strings"

// Parse tokenizes body and builds the document tree, returning its
// Root. Parse never fails: every recoverable condition (unterminated
// tags/comments/doctypes, invalid character references, mismatched end
// tags) is absorbed and the most charitable tree is produced.
func Parse(body string) *Node {
	normalized := normalizeNewlines(body)
	builder := newBuilder()
	t := newTokenizer(normalized, builder)
	t.Run()
	return builder.Finalize()
}

// Tokens runs the tokenizer over body and returns the raw token
// stream it emitted, without attaching the tree-builder's stack
// semantics to the result. Non-normative: a debugging view of the
// tokens, not the tree.
func Tokens(body string) []Token {
	var tokens []Token
	builder := newBuilder()
	builder.onToken = func(tok Token) {
		tokens = append(tokens, tok)
	}
	t := newTokenizer(normalizeNewlines(body), builder)
	t.Run()
	builder.Finalize()
	return tokens
}

// normalizeNewlines replaces every "\r\n" and lone "\r" with "\n"
// before tokenization.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
