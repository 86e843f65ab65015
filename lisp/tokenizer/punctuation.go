// punctuation.go -
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

// scanChar matches a single character which forms a token on its own.
func (p *Tokenizer) scanChar(c byte, tt TokenType) result {
	if p.Peek() != c {
		return noMatchResult
	}
	p.SetMark()
	p.Advance()
	p.emit(tt)
	return matchedResult
}

func (p *Tokenizer) scanLeftParen() result {
	return p.scanChar('(', TokenLeftParen)
}

func (p *Tokenizer) scanRightParen() result {
	return p.scanChar(')', TokenRightParen)
}

func (p *Tokenizer) scanQuote() result {
	return p.scanChar('\'', TokenQuote)
}

func (p *Tokenizer) scanBackquote() result {
	return p.scanChar('`', TokenBackquote)
}

// scanComma matches ",", ",@" and ",.".
func (p *Tokenizer) scanComma() result {
	if p.Peek() != ',' {
		return noMatchResult
	}
	p.SetMark()
	p.Advance()
	tt := TokenComma
	switch p.Peek() {
	case '@':
		p.Advance()
		tt = TokenCommaAt
	case '.':
		p.Advance()
		tt = TokenCommaDot
	}
	p.emit(tt)
	return matchedResult
}

// scanDot matches tokens starting with a period: fractions like ".5",
// symbols like "..." and the consing dot.
func (p *Tokenizer) scanDot() result {
	if p.Peek() != '.' {
		return noMatchResult
	}
	return p.scanFraction()
}
