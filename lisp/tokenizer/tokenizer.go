// tokenizer.go - split Common Lisp source into tokens
// Copyright (C) 2016  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package tokenizer

import (
	"github.com/seehuhn/cl2html/lisp/scanner"
)

// A Tokenizer can be used to split a Common Lisp file into lexical
// units.
type Tokenizer struct {
	scanner.Scanner

	rules  []rule
	tokens TokenList
}

// NewTokenizer creates and initialises a new Tokenizer.  The argument
// `name` identifies the input in error messages.
func NewTokenizer(data []byte, name string) *Tokenizer {
	p := &Tokenizer{
		rules: defaultRules,
	}
	p.Init(data, name)
	return p
}

// Tokenize splits `data` into tokens.  An error is only returned if
// the tokenizer encounters an internal inconsistency; malformed
// input is reported using tokens of type TokenError instead.
func Tokenize(data []byte, name string) (TokenList, error) {
	return NewTokenizer(data, name).Tokenize()
}

// TokenizeFile reads the given file and splits its contents into
// tokens.
func TokenizeFile(fileName string) (TokenList, error) {
	scan, err := scanner.Open(fileName)
	if err != nil {
		return nil, err
	}
	p := &Tokenizer{
		Scanner: *scan,
		rules:   defaultRules,
	}
	return p.Tokenize()
}

type outcome int

const (
	noMatch outcome = iota
	matched
	failed
)

// result is returned by every lexical rule.  For outcome `failed`,
// diag describes the problem and the input between the mark and the
// current position forms the error token.
type result struct {
	outcome outcome
	diag    *Diagnostic
}

var (
	noMatchResult = result{outcome: noMatch}
	matchedResult = result{outcome: matched}
)

type rule struct {
	name string
	scan func(p *Tokenizer) result
}

// defaultRules lists the lexical rules in the order in which they are
// tried.  Numbers must come before symbols, and the comma and dispatch
// rules must come before the dot rule.
var defaultRules = []rule{
	{"comment", (*Tokenizer).scanComment},
	{"string", (*Tokenizer).scanString},
	{"left paren", (*Tokenizer).scanLeftParen},
	{"right paren", (*Tokenizer).scanRightParen},
	{"quote", (*Tokenizer).scanQuote},
	{"backquote", (*Tokenizer).scanBackquote},
	{"number", (*Tokenizer).scanNumber},
	{"comma", (*Tokenizer).scanComma},
	{"dispatch macro", (*Tokenizer).scanDispatch},
	{"dot", (*Tokenizer).scanDot},
	{"symbol", (*Tokenizer).scanSymbol},
	{"whitespace", (*Tokenizer).scanWhitespace},
}

// Tokenize splits the Tokenizer's input into tokens.  The returned
// list always ends with a single token of type TokenEOF.
func (p *Tokenizer) Tokenize() (toks TokenList, err error) {
	defer func() {
		if r := recover(); r != nil {
			e2, ok := r.(*scanner.ParseError)
			if !ok {
				panic(r)
			}
			toks = nil
			err = e2
		}
	}()

	p.Reset(scanner.Position{Line: 1})
	p.tokens = nil
	for !p.AtEnd() {
		p.ClearMark()
		res := p.applyRules()
		switch res.outcome {
		case matched:
			// pass
		case failed:
			p.emitError(res.diag)
		case noMatch:
			p.resync()
		}
	}
	p.ClearMark()
	p.emit(TokenEOF)

	return p.tokens, nil
}

func (p *Tokenizer) applyRules() result {
	for _, r := range p.rules {
		start := p.Pos()
		res := r.scan(p)
		if res.outcome == noMatch {
			if p.Pos() != start {
				panic(p.MakeError("rule \"" + r.name + "\" did not roll back"))
			}
			continue
		}
		if p.Pos().Offset == start.Offset {
			panic(p.MakeError("rule \"" + r.name + "\" made no progress"))
		}
		return res
	}
	return noMatchResult
}

// resync is used when no rule matches.  The next run of non-delimiter
// characters is turned into an error token.  If this does not make
// progress either, tokenization is aborted.
func (p *Tokenizer) resync() {
	p.SetMark()
	res := p.fail(ErrNoRuleMatched, "")
	if p.Pos().Offset == p.MarkPos().Offset {
		panic(p.MakeError("failed to parse any token"))
	}
	p.emitError(res.diag)
}

// emit appends a token covering the input from the mark to the
// current position, and commits the scan.
func (p *Tokenizer) emit(tt TokenType) {
	start := p.MarkPos()
	p.tokens = append(p.tokens, &Token{
		Type:   tt,
		Line:   start.Line,
		Column: start.Column,
		Text:   p.Consumed(),
	})
	p.ClearMark()
}

func (p *Tokenizer) emitError(diag *Diagnostic) {
	start := p.MarkPos()
	p.tokens = append(p.tokens, &Token{
		Type:   TokenError,
		Line:   start.Line,
		Column: start.Column,
		Text:   p.Consumed(),
		Diag:   diag,
	})
	p.ClearMark()
}

// fail skips to the next delimiter and returns a failed result.  The
// error context starts one byte before the current position, but not
// before the mark.
func (p *Tokenizer) fail(kind ErrorKind, expected string) result {
	start := p.MarkPos()
	ctxStart := p.Pos().Offset - 1
	if ctxStart < start.Offset {
		ctxStart = start.Offset
	}
	for !p.AtEnd() && !isDelimiter(p.Peek()) {
		p.Advance()
	}
	return result{
		outcome: failed,
		diag: &Diagnostic{
			Kind:     kind,
			File:     p.Name,
			Line:     start.Line,
			Column:   start.Column,
			Context:  p.Slice(ctxStart, p.Pos().Offset),
			Expected: expected,
		},
	}
}

// escaped checks whether the previously consumed byte is a backslash.
func (p *Tokenizer) escaped() bool {
	return p.Pos().Offset > 0 && p.Previous() == '\\'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNewline(c byte) bool {
	return c == '\n' || c == '\r'
}

// isBlank checks for whitespace other than line terminators.  Form
// feeds are common in Lisp source, as page separators.
func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f' || c == '\v'
}

func isWhitespace(c byte) bool {
	return isBlank(c) || isNewline(c)
}

// isSpecial checks whether c has a meaning of its own and thus cannot
// appear unescaped inside a symbol.
func isSpecial(c byte) bool {
	switch c {
	case ';', '\'', '(', ')', ',', '"':
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	return isWhitespace(c) || isSpecial(c)
}
