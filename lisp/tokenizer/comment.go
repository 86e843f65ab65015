// comment.go -
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

// scanComment matches a line comment.  The comment extends up to, but
// not including, the end of the line.
func (p *Tokenizer) scanComment() result {
	if p.Marked() {
		panic(p.MakeError("comment scan started inside another token"))
	}
	if p.Peek() != ';' {
		return noMatchResult
	}
	p.SetMark()
	for !p.AtEnd() && !isNewline(p.Peek()) {
		p.Advance()
	}
	p.emit(TokenComment)
	return matchedResult
}

// scanBlockComment matches a block comment "#| ... |#".  Block
// comments nest.  It is called by the dispatch rule after "#|" has
// been consumed, with the mark set at the "#".
func (p *Tokenizer) scanBlockComment() result {
	depth := 1
	for depth > 0 {
		if p.AtEnd() {
			// Everything up to the end of input becomes part of the
			// error token.
			start := p.MarkPos()
			return result{
				outcome: failed,
				diag: &Diagnostic{
					Kind:    ErrUnterminatedComment,
					File:    p.Name,
					Line:    start.Line,
					Column:  start.Column,
					Context: p.Slice(start.Offset, start.Offset+2),
				},
			}
		}
		c := p.Advance()
		switch {
		case c == '|' && p.Peek() == '#':
			p.Advance()
			depth--
		case c == '#' && p.Peek() == '|':
			p.Advance()
			depth++
		}
	}
	p.emit(TokenComment)
	return matchedResult
}
