// numbers.go - integers, floats and the symbols which look like them
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

// scanNumber matches integers like "42", "-7" and "42.", and floating
// point numbers like "3.14".  If the digits are followed by characters
// which can continue a symbol, as in "123abc" or "1+", the whole run
// is returned as a symbol instead.
func (p *Tokenizer) scanNumber() result {
	c := p.Peek()
	if c != '-' && !isDigit(c) {
		return noMatchResult
	}
	p.SetMark()
	if c == '-' {
		p.Advance()
		if p.Peek() == '.' && isDigit(p.PeekAt(1)) {
			return p.scanFraction()
		}
		if !isDigit(p.Peek()) {
			return p.scanSymbol()
		}
	}
	for isDigit(p.Peek()) {
		p.Advance()
	}
	if p.Peek() == '.' {
		return p.scanFraction()
	}
	if p.symbolContinues() {
		return p.scanSymbol()
	}
	p.emit(TokenInteger)
	return matchedResult
}

// scanFraction continues a number after the decimal point.  If no
// mark is set, the period is the first character of the token.
func (p *Tokenizer) scanFraction() result {
	if !p.Marked() {
		p.SetMark()
	}
	p.Advance() // '.'

	if !isDigit(p.Peek()) {
		if p.Pos().Offset-p.MarkPos().Offset == 1 {
			return p.scanBareDot()
		}
		if p.AtEnd() || isDelimiter(p.Peek()) {
			p.emit(TokenInteger)
			return matchedResult
		}
		return p.scanSymbol()
	}

	for isDigit(p.Peek()) {
		p.Advance()
	}
	if p.symbolContinues() {
		return p.scanSymbol()
	}
	p.emit(TokenFloat)
	return matchedResult
}

// scanBareDot handles a period which is not followed by a digit.
func (p *Tokenizer) scanBareDot() result {
	if p.symbolNext() {
		return p.scanSymbol()
	}
	p.emit(TokenDot)
	return matchedResult
}

// symbolContinues implements the check whether the number scanned so
// far is really the start of a symbol.
func (p *Tokenizer) symbolContinues() bool {
	switch c := p.Peek(); {
	case p.AtEnd():
		return false
	case c == '\\':
		return true
	case isDigit(c), isWhitespace(c), c == '.':
		return false
	}
	return p.symbolNext()
}
