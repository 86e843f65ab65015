// diagnostic.go - recoverable lexical errors
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
	"strings"
)

// ErrorMarker separates the diagnostic message from the error context
// in the lexeme of an error token.
const ErrorMarker = '~'

// ErrorKind enumerates the recoverable problems the tokenizer reports
// as error tokens.
type ErrorKind int

// These are the different kinds of recoverable errors.
const (
	ErrUnterminatedString ErrorKind = iota
	ErrUnterminatedComment
	ErrIncompleteDispatch
	ErrUnrecognizedDispatch
	ErrNoRuleMatched
)

func (kind ErrorKind) String() string {
	switch kind {
	case ErrUnterminatedString:
		return "UnterminatedString"
	case ErrUnterminatedComment:
		return "UnterminatedComment"
	case ErrIncompleteDispatch:
		return "IncompleteDispatchMacro"
	case ErrUnrecognizedDispatch:
		return "UnrecognizedDispatchMacro"
	case ErrNoRuleMatched:
		return "NoRuleMatched"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(kind))
	}
}

// Diagnostic describes a lexically malformed region of the input.
type Diagnostic struct {
	Kind ErrorKind

	// File, Line and Column give the start of the malformed region.
	File   string
	Line   int
	Column int

	// Context is a short excerpt of the input around the place
	// where the problem was detected.
	Context string

	// Expected lists the dispatch macro suffix characters which
	// would have been valid, for ErrIncompleteDispatch and
	// ErrUnrecognizedDispatch.
	Expected string
}

// Message returns a human-readable description of the problem.
func (d *Diagnostic) Message() string {
	var msg string
	switch d.Kind {
	case ErrUnterminatedString:
		msg = "Unterminated string"
	case ErrUnterminatedComment:
		msg = "Unterminated block comment"
	case ErrIncompleteDispatch:
		msg = "Incomplete reader macro"
	case ErrUnrecognizedDispatch:
		msg = "Unexpected character while parsing reader macro"
	case ErrNoRuleMatched:
		msg = "Failed to parse any token"
	default:
		msg = d.Kind.String()
	}
	if d.Expected != "" {
		msg += ", expected one of " + d.Expected
	}
	return msg + "."
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message())
}

// Encode returns the lexeme of an error token: the parenthesised
// message, followed by ErrorMarker and the error context.
func (d *Diagnostic) Encode() string {
	return "(" + d.Message() + ")" + string(ErrorMarker) + d.Context
}

// SplitErrorLexeme splits the lexeme of an error token into the error
// context, which is meant to be displayed, and the diagnostic
// message.  Strings without ErrorMarker are returned unchanged as the
// context.
func SplitErrorLexeme(lexeme string) (context, message string) {
	idx := strings.IndexByte(lexeme, ErrorMarker)
	if idx < 0 {
		return lexeme, ""
	}
	message = strings.TrimSuffix(strings.TrimPrefix(lexeme[:idx], "("), ")")
	return lexeme[idx+1:], message
}
