// token.go -
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
	"fmt"
	"strconv"
	"strings"
)

// TokenType is used to enumerate different types of token
type TokenType int

// The different token types used by this package.
const (
	TokenInteger TokenType = iota
	TokenFloat
	TokenString
	TokenSymbol

	TokenVector    // #(
	TokenBitVector // #*

	TokenCharacter // #\x
	TokenSharpB
	TokenSharpO
	TokenSharpX
	TokenSharpR
	TokenSharpC
	TokenSharpA
	TokenSharpS
	TokenSharpP

	TokenLeftParen
	TokenRightParen

	TokenQuote
	TokenBackquote
	TokenComma
	TokenCommaAt  // ,@
	TokenCommaDot // ,.
	TokenSharpQuote
	TokenSharpColon
	TokenSharpDot

	TokenDot
	TokenComment
	TokenSharpEqual
	TokenSharpSharp
	TokenSharpPlus
	TokenSharpMinus
	TokenSharpRightParen
	TokenWhitespace
	TokenNewline
	TokenError
	TokenEOF
)

var typeNames = [...]string{
	TokenInteger:         "Integral",
	TokenFloat:           "FloatingPoint",
	TokenString:          "String",
	TokenSymbol:          "Symbol",
	TokenVector:          "Vector",
	TokenBitVector:       "BitVector",
	TokenCharacter:       "Character",
	TokenSharpB:          "BinaryIntegral",
	TokenSharpO:          "OctalIntegral",
	TokenSharpX:          "HexIntegral",
	TokenSharpR:          "RadixNIntegral",
	TokenSharpC:          "SharpC",
	TokenSharpA:          "SharpA",
	TokenSharpS:          "RMStruct",
	TokenSharpP:          "SharpP",
	TokenLeftParen:       "LParen",
	TokenRightParen:      "RParen",
	TokenQuote:           "Quote",
	TokenBackquote:       "Backquote",
	TokenComma:           "Comma",
	TokenCommaAt:         "CommaAtSign",
	TokenCommaDot:        "CommaDot",
	TokenSharpQuote:      "SharpQuote",
	TokenSharpColon:      "SharpColon",
	TokenSharpDot:        "SharpDot",
	TokenDot:             "Dot",
	TokenComment:         "Semicolon",
	TokenSharpEqual:      "SharpEqual",
	TokenSharpSharp:      "SharpSharp",
	TokenSharpPlus:       "SharpPlus",
	TokenSharpMinus:      "SharpMinus",
	TokenSharpRightParen: "SharpRightParen",
	TokenWhitespace:      "Whitespace",
	TokenNewline:         "Newline",
	TokenError:           "Error",
	TokenEOF:             "EOF",
}

// String returns the name of the token type.  The names are also
// used as CSS class names by the HTML renderer.
func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(typeNames) {
		return typeNames[tt]
	}
	return "TokenType(" + strconv.Itoa(int(tt)) + ")"
}

// AllTypes returns all token types, in order.
func AllTypes() []TokenType {
	res := make([]TokenType, len(typeNames))
	for i := range res {
		res[i] = TokenType(i)
	}
	return res
}

// Token contains information about a single lexical unit in the Lisp
// source.
type Token struct {
	// Type describes which kind of token this is.
	Type TokenType

	// Line gives the 1-based line number of the first character of
	// the token.
	Line int

	// Column gives the 0-based byte offset of the first character
	// of the token within its line.
	Column int

	// Text is the exact part of the input covered by the token.  For
	// the whitespace placeholder emitted on empty lines and for the
	// end-of-input token, this is the empty string.
	Text string

	// Diag describes the problem for tokens of type TokenError.
	// Unused for all other token types.
	Diag *Diagnostic
}

// Lexeme returns the token text.  For error tokens, the diagnostic
// message and the error context are returned instead, separated by
// ErrorMarker.  Use SplitErrorLexeme to take this apart again.
func (tok *Token) Lexeme() string {
	if tok.Type == TokenError && tok.Diag != nil {
		return tok.Diag.Encode()
	}
	return tok.Text
}

// IsPlaceholder checks whether tok is the zero-width whitespace token
// which marks an empty line.
func (tok *Token) IsPlaceholder() bool {
	return tok.Type == TokenWhitespace && tok.Text == ""
}

// Display returns the text to show for the token.  This equals the
// token text, except that the empty-line placeholder is shown as a
// single space.
func (tok *Token) Display() string {
	if tok.IsPlaceholder() {
		return " "
	}
	return tok.Text
}

func (tok *Token) String() string {
	return fmt.Sprintf("%d:%d %s %q", tok.Line, tok.Column, tok.Type, tok.Lexeme())
}

// TokenList describes the output of the tokenizer.
type TokenList []*Token

// FormatText concatenates the text of all tokens.  For the output of
// the tokenizer, the result equals the tokenizer input.
func (toks TokenList) FormatText() string {
	var res []string
	for _, tok := range toks {
		res = append(res, tok.Text)
	}
	return strings.Join(res, "")
}

// Errors returns the diagnostics of all error tokens in the list.
func (toks TokenList) Errors() []*Diagnostic {
	var res []*Diagnostic
	for _, tok := range toks {
		if tok.Type == TokenError {
			res = append(res, tok.Diag)
		}
	}
	return res
}
