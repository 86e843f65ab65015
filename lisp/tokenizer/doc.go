// Package tokenizer converts Common Lisp source text into a stream of
// tokens, suitable for syntax highlighting.
//
// The tokenizer is lossless: whitespace, newlines and comments are
// returned as tokens, and concatenating the text of all tokens
// reproduces the input.  Lexically malformed input does not stop the
// tokenizer; instead, the affected region is returned as a token of
// type TokenError which carries a Diagnostic.
package tokenizer
