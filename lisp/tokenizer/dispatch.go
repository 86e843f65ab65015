// dispatch.go - reader macros starting with "#"
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
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

type dispatchEntry struct {
	suffix byte
	tt     TokenType
}

// immediateDispatch lists the dispatch macros which take no numeric
// argument.  "#\" and "#|" are handled separately.
var immediateDispatch = []dispatchEntry{
	{'\'', TokenSharpQuote},
	{':', TokenSharpColon},
	{'.', TokenSharpDot},
	{'B', TokenSharpB},
	{'O', TokenSharpO},
	{'X', TokenSharpX},
	{'C', TokenSharpC},
	{'S', TokenSharpS},
	{'P', TokenSharpP},
	{')', TokenSharpRightParen},
}

// numericDispatch lists the dispatch macros which allow a decimal
// argument between the "#" and the suffix character.
var numericDispatch = []dispatchEntry{
	{'(', TokenVector},
	{'*', TokenBitVector},
	{'R', TokenSharpR},
	{'A', TokenSharpA},
	{'=', TokenSharpEqual},
	{'#', TokenSharpSharp},
	{'+', TokenSharpPlus},
	{'-', TokenSharpMinus},
}

func lookupDispatch(table []dispatchEntry, c byte) (TokenType, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	idx := slices.IndexFunc(table, func(entry dispatchEntry) bool {
		return entry.suffix == c
	})
	if idx < 0 {
		return 0, false
	}
	return table[idx].tt, true
}

func suffixList(tables ...[]dispatchEntry) string {
	var res []string
	for _, table := range tables {
		for _, entry := range table {
			res = append(res, string(entry.suffix))
		}
	}
	return strings.Join(res, " ")
}

var (
	allSuffixes     = `\ | ` + suffixList(immediateDispatch, numericDispatch)
	numericSuffixes = suffixList(numericDispatch)
)

// scanDispatch matches the reader macros introduced by "#".  For
// macros with a numeric argument, like "#3A" or "#16R", the argument
// is part of the token.
func (p *Tokenizer) scanDispatch() result {
	if p.Peek() != '#' {
		return noMatchResult
	}
	p.SetMark()
	p.Advance()

	if p.AtEnd() {
		return p.fail(ErrIncompleteDispatch, allSuffixes)
	}
	switch p.Peek() {
	case '\\':
		return p.scanCharacter()
	case '|':
		p.Advance()
		return p.scanBlockComment()
	}
	if tt, ok := lookupDispatch(immediateDispatch, p.Peek()); ok {
		p.Advance()
		p.emit(tt)
		return matchedResult
	}

	for isDigit(p.Peek()) {
		p.Advance()
	}
	if p.AtEnd() {
		return p.fail(ErrIncompleteDispatch, numericSuffixes)
	}
	if tt, ok := lookupDispatch(numericDispatch, p.Peek()); ok {
		p.Advance()
		p.emit(tt)
		return matchedResult
	}
	return p.fail(ErrUnrecognizedDispatch, numericSuffixes)
}

// scanCharacter matches a character literal like "#\a", "#\(" or
// "#\Space".  It is called with "#" consumed and the mark set.
func (p *Tokenizer) scanCharacter() result {
	p.Advance() // '\\'
	if p.AtEnd() {
		return p.fail(ErrIncompleteDispatch, "")
	}

	start := p.Pos().Offset
	r, size := utf8.DecodeRuneInString(p.Slice(start, start+utf8.UTFMax))
	for i := 0; i < size; i++ {
		p.Advance()
	}
	if unicode.IsLetter(r) {
		// character names like "Space" or "Newline"
		for !p.AtEnd() && !isDelimiter(p.Peek()) {
			p.Advance()
		}
	}
	p.emit(TokenCharacter)
	return matchedResult
}
