// whitespace.go -
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

// scanWhitespace matches a run of whitespace.  Blanks are collected
// into Whitespace tokens, and every line terminator becomes a Newline
// token of its own, where "\r\n" counts as a single terminator.  An
// empty line is marked by a zero-width Whitespace token before its
// Newline token.
func (p *Tokenizer) scanWhitespace() result {
	if !isWhitespace(p.Peek()) {
		return noMatchResult
	}
	for !p.AtEnd() {
		c := p.Peek()
		switch {
		case isBlank(c):
			p.SetMark()
			for isBlank(p.Peek()) {
				p.Advance()
			}
			p.emit(TokenWhitespace)
		case isNewline(c):
			p.SetMark()
			if p.Pos().Column == 0 {
				p.emit(TokenWhitespace)
				p.SetMark()
			}
			p.Advance()
			if c == '\r' && p.Peek() == '\n' {
				p.Advance()
			}
			p.emit(TokenNewline)
		default:
			return matchedResult
		}
	}
	return matchedResult
}
