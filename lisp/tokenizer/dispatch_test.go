// dispatch_test.go -
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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDispatch(t *testing.T) {
	testCases := []struct {
		in  string
		out []item
	}{
		{"#'car", []item{{TokenSharpQuote, "#'"}, {TokenSymbol, "car"}}},
		{"#:g1", []item{{TokenSharpColon, "#:"}, {TokenSymbol, "g1"}}},
		{"#.x", []item{{TokenSharpDot, "#."}, {TokenSymbol, "x"}}},
		{"#b101", []item{{TokenSharpB, "#b"}, {TokenInteger, "101"}}},
		{"#O17", []item{{TokenSharpO, "#O"}, {TokenInteger, "17"}}},
		{"#x1F", []item{{TokenSharpX, "#x"}, {TokenSymbol, "1F"}}},
		{"#c(1 2)", []item{
			{TokenSharpC, "#c"},
			{TokenLeftParen, "("},
			{TokenInteger, "1"},
			{TokenWhitespace, " "},
			{TokenInteger, "2"},
			{TokenRightParen, ")"},
		}},
		{"#S(p)", []item{
			{TokenSharpS, "#S"},
			{TokenLeftParen, "("},
			{TokenSymbol, "p"},
			{TokenRightParen, ")"},
		}},
		{"#p\"x\"", []item{{TokenSharpP, "#p"}, {TokenString, "\"x\""}}},
		{"#)", []item{{TokenSharpRightParen, "#)"}}},
		{"#(a)", []item{
			{TokenVector, "#("},
			{TokenSymbol, "a"},
			{TokenRightParen, ")"},
		}},
		{"#*101", []item{{TokenBitVector, "#*"}, {TokenInteger, "101"}}},
		{"#16r1F", []item{{TokenSharpR, "#16r"}, {TokenSymbol, "1F"}}},
		{"#3A(1 2 3)", []item{
			{TokenSharpA, "#3A"},
			{TokenLeftParen, "("},
			{TokenInteger, "1"},
			{TokenWhitespace, " "},
			{TokenInteger, "2"},
			{TokenWhitespace, " "},
			{TokenInteger, "3"},
			{TokenRightParen, ")"},
		}},
		{"#1=#1#", []item{{TokenSharpEqual, "#1="}, {TokenSharpSharp, "#1#"}}},
		{"#+sbcl", []item{{TokenSharpPlus, "#+"}, {TokenSymbol, "sbcl"}}},
		{"#-ccl", []item{{TokenSharpMinus, "#-"}, {TokenSymbol, "ccl"}}},
		{"#\\a", []item{{TokenCharacter, "#\\a"}}},
		{"#\\(", []item{{TokenCharacter, "#\\("}}},
		{"#\\)x", []item{{TokenCharacter, "#\\)"}, {TokenSymbol, "x"}}},
		{"#\\ ", []item{{TokenCharacter, "#\\ "}}},
		{"#\\Space)", []item{{TokenCharacter, "#\\Space"}, {TokenRightParen, ")"}}},
		{"#\\λ", []item{{TokenCharacter, "#\\λ"}}},
	}
	for _, testCase := range testCases {
		toks := mustTokenize(t, testCase.in)
		want := append(testCase.out, item{TokenEOF, ""})
		if d := cmp.Diff(want, items(toks)); d != "" {
			t.Errorf("%q: wrong tokens (-want +got):\n%s", testCase.in, d)
		}
	}
}

func TestDispatchErrors(t *testing.T) {
	testCases := []struct {
		in       string
		text     string
		kind     ErrorKind
		context  string
		expected string
	}{
		{"#", "#", ErrIncompleteDispatch, "#", ""},
		{"#12", "#12", ErrIncompleteDispatch, "2", "("},
		{"#\\", "#\\", ErrIncompleteDispatch, "\\", ""},
		{"#z foo", "#z", ErrUnrecognizedDispatch, "#z", "("},
		{"#3q(x)", "#3q", ErrUnrecognizedDispatch, "3q", "R"},
	}
	for _, testCase := range testCases {
		toks := mustTokenize(t, testCase.in)
		tok := toks[0]
		if tok.Type != TokenError || tok.Text != testCase.text {
			t.Errorf("%q: wrong first token %s", testCase.in, tok)
			continue
		}
		if tok.Diag.Kind != testCase.kind {
			t.Errorf("%q: wrong kind %s", testCase.in, tok.Diag.Kind)
		}
		if tok.Diag.Context != testCase.context {
			t.Errorf("%q: wrong context %q", testCase.in, tok.Diag.Context)
		}
		if !strings.Contains(tok.Diag.Expected, testCase.expected) {
			t.Errorf("%q: suffix %q missing from %q",
				testCase.in, testCase.expected, tok.Diag.Expected)
		}
	}
}

func TestLookupDispatch(t *testing.T) {
	for _, c := range []byte("bBxX") {
		if _, ok := lookupDispatch(immediateDispatch, c); !ok {
			t.Errorf("%q not found", c)
		}
	}
	if _, ok := lookupDispatch(immediateDispatch, 'A'); ok {
		t.Error("#A takes a numeric argument")
	}
	if tt, ok := lookupDispatch(numericDispatch, 'a'); !ok || tt != TokenSharpA {
		t.Errorf("wrong type %s for #a", tt)
	}
}
