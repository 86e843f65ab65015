// diagnostic_test.go - unit tests for diagnostic.go
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
	"testing"
)

func TestDiagnosticMessage(t *testing.T) {
	testCases := []struct {
		diag Diagnostic
		msg  string
	}{
		{Diagnostic{Kind: ErrUnterminatedString}, "Unterminated string."},
		{Diagnostic{Kind: ErrUnterminatedComment}, "Unterminated block comment."},
		{Diagnostic{Kind: ErrIncompleteDispatch, Expected: "( *"},
			"Incomplete reader macro, expected one of ( *."},
		{Diagnostic{Kind: ErrUnrecognizedDispatch, Expected: "A"},
			"Unexpected character while parsing reader macro, expected one of A."},
		{Diagnostic{Kind: ErrNoRuleMatched}, "Failed to parse any token."},
		{Diagnostic{Kind: ErrorKind(99)}, "ErrorKind(99)."},
	}
	for _, testCase := range testCases {
		if msg := testCase.diag.Message(); msg != testCase.msg {
			t.Errorf("%s: wrong message %q", testCase.diag.Kind, msg)
		}
	}

	d := &Diagnostic{Kind: ErrUnterminatedString, File: "a.lisp", Line: 3, Column: 4}
	if msg := d.Error(); msg != "a.lisp:3:4: Unterminated string." {
		t.Errorf("wrong error %q", msg)
	}
}

func TestErrorLexeme(t *testing.T) {
	d := &Diagnostic{Kind: ErrNoRuleMatched, Context: "x~y"}
	tok := &Token{Type: TokenError, Text: "x~y", Diag: d}

	lexeme := tok.Lexeme()
	if lexeme != "(Failed to parse any token.)~x~y" {
		t.Fatalf("wrong lexeme %q", lexeme)
	}
	context, message := SplitErrorLexeme(lexeme)
	if context != "x~y" || message != "Failed to parse any token." {
		t.Errorf("wrong split %q / %q", context, message)
	}

	context, message = SplitErrorLexeme("plain")
	if context != "plain" || message != "" {
		t.Errorf("wrong split %q / %q", context, message)
	}
}

func TestTokenList(t *testing.T) {
	toks := mustTokenize(t, "(a \"b\n#z")
	errs := toks.Errors()
	if len(errs) != 1 || errs[0].Kind != ErrUnterminatedString {
		t.Fatalf("wrong errors %v", errs)
	}
	if errs[0].File != "test" || errs[0].Line != 1 || errs[0].Column != 3 {
		t.Errorf("wrong error position %s", errs[0])
	}

	if s := toks[1].String(); s != `1:1 Symbol "a"` {
		t.Errorf("wrong string %q", s)
	}
}

func TestTypeNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, tt := range AllTypes() {
		name := tt.String()
		if name == "" || seen[name] {
			t.Errorf("bad name %q for type %d", name, int(tt))
		}
		seen[name] = true
	}
	if TokenComment.String() != "Semicolon" {
		t.Error("wrong name for comments")
	}
	if s := TokenType(-1).String(); s != "TokenType(-1)" {
		t.Errorf("wrong name %q", s)
	}
}
