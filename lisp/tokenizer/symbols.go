// symbols.go -
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

// symbolNext checks whether the next input byte can be part of a
// symbol.
func (p *Tokenizer) symbolNext() bool {
	if p.AtEnd() {
		return false
	}
	c := p.Peek()
	if isWhitespace(c) {
		return false
	}
	return p.escaped() || !isSpecial(c)
}

// scanSymbol matches a symbol.  When called from another rule, the
// mark is already set and the symbol includes everything consumed so
// far.
func (p *Tokenizer) scanSymbol() result {
	if !p.Marked() {
		if p.Peek() == '#' {
			return noMatchResult
		}
		p.SetMark()
	}
	for p.symbolNext() {
		p.Advance()
	}
	if p.Pos() == p.MarkPos() {
		p.Rollback()
		return noMatchResult
	}
	p.emit(TokenSymbol)
	return matchedResult
}
