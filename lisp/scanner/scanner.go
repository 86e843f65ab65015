// scanner.go - a cursor over an in-memory input buffer
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

package scanner

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Position describes a location in the scanner input.
type Position struct {
	// Offset is the byte offset from the start of the input.
	Offset int

	// Line is the 1-based line number.
	Line int

	// Column is the 0-based byte offset within the current line.
	Column int
}

// Scanner implements a cursor over an in-memory input buffer.  The
// buffer is never modified.  In addition to the current position,
// the scanner can remember one "mark", which is used to implement
// speculative scans: a rule sets the mark, consumes input, and then
// either commits the scan (by clearing the mark) or rolls back to the
// marked position.
type Scanner struct {
	// Name is used to identify the input in error messages and
	// should be a short, human-readable string.
	Name string

	buf    []byte
	pos    Position
	mark   Position
	marked bool
}

// New creates a scanner which reads from `data`.  The argument
// `name` is used to identify the input in error messages.
func New(data []byte, name string) *Scanner {
	scan := &Scanner{}
	scan.Init(data, name)
	return scan
}

// Open reads the complete contents of the given file and returns a
// scanner for it.
func Open(fileName string) (*Scanner, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return New(data, fileName), nil
}

// Init resets the scanner to the start of a new input buffer.
func (scan *Scanner) Init(data []byte, name string) {
	scan.Name = name
	scan.buf = data
	scan.pos = Position{Line: 1}
	scan.mark = scan.pos
	scan.marked = false
}

// AtEnd checks whether all input has been consumed.
func (scan *Scanner) AtEnd() bool {
	return scan.pos.Offset >= len(scan.buf)
}

// Advance consumes and returns the next input byte.  Calling Advance
// at the end of input is an invariant violation and panics with a
// *ParseError.
func (scan *Scanner) Advance() byte {
	if scan.AtEnd() {
		panic(scan.MakeError("unexpected end of input"))
	}
	c := scan.buf[scan.pos.Offset]
	scan.pos.Offset++
	scan.pos.Column++
	if c == '\n' || c == '\r' && scan.Peek() != '\n' {
		scan.pos.Line++
		scan.pos.Column = 0
	}
	return c
}

// Peek returns the next input byte without consuming it.  At the end
// of input, 0 is returned.
func (scan *Scanner) Peek() byte {
	if scan.AtEnd() {
		return 0
	}
	return scan.buf[scan.pos.Offset]
}

// PeekAt returns the input byte `offset` bytes after the current
// position.  Offset 0 is the byte returned by .Peek().  Looking at the
// position directly after the last byte returns 0; looking any
// further is an invariant violation and panics with a *ParseError.
func (scan *Scanner) PeekAt(offset int) byte {
	idx := scan.pos.Offset + offset
	switch {
	case idx < 0:
		panic(scan.MakeError("unexpected start of input"))
	case idx > len(scan.buf):
		panic(scan.MakeError("unexpected end of input"))
	case idx == len(scan.buf):
		return 0
	}
	return scan.buf[idx]
}

// Previous returns the most recently consumed byte.  It panics with a
// *ParseError if nothing has been consumed yet.
func (scan *Scanner) Previous() byte {
	if scan.pos.Offset == 0 {
		panic(scan.MakeError("unexpected start of input"))
	}
	return scan.buf[scan.pos.Offset-1]
}

// Pos returns the current input position.
func (scan *Scanner) Pos() Position {
	return scan.pos
}

// Reset moves the scanner back to a position previously obtained
// from .Pos() or .MarkPos().
func (scan *Scanner) Reset(p Position) {
	if p.Offset < 0 || p.Offset > len(scan.buf) {
		panic(scan.MakeError("invalid position " + strconv.Itoa(p.Offset)))
	}
	scan.pos = p
}

// SetMark remembers the current position as the start of a
// speculative scan.
func (scan *Scanner) SetMark() {
	scan.mark = scan.pos
	scan.marked = true
}

// ClearMark commits the current speculative scan.
func (scan *Scanner) ClearMark() {
	scan.marked = false
}

// Marked checks whether a speculative scan is in progress.
func (scan *Scanner) Marked() bool {
	return scan.marked
}

// MarkPos returns the position where the current speculative scan
// started.  If no mark is set, the current position is returned.
func (scan *Scanner) MarkPos() Position {
	if !scan.marked {
		return scan.pos
	}
	return scan.mark
}

// Rollback abandons the current speculative scan and moves the
// scanner back to the marked position.
func (scan *Scanner) Rollback() {
	if scan.marked {
		scan.pos = scan.mark
		scan.marked = false
	}
}

// SwapMarkAndPoint exchanges the current position and the mark.  The
// mark stays active.
func (scan *Scanner) SwapMarkAndPoint() {
	if !scan.marked {
		panic(scan.MakeError("no mark set"))
	}
	scan.pos, scan.mark = scan.mark, scan.pos
}

// Consumed returns the part of the input between the mark and the
// current position.
func (scan *Scanner) Consumed() string {
	start := scan.MarkPos().Offset
	if start > scan.pos.Offset {
		return ""
	}
	return string(scan.buf[start:scan.pos.Offset])
}

// Slice returns the input bytes between the given offsets.  The
// offsets are clamped to the input.
func (scan *Scanner) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(scan.buf) {
		to = len(scan.buf)
	}
	if from >= to {
		return ""
	}
	return string(scan.buf[from:to])
}

// Len returns the total length of the input in bytes.
func (scan *Scanner) Len() int {
	return len(scan.buf)
}

// MakeError returns an error object which includes the given message
// together with human-readable information about the current input
// position.
func (scan *Scanner) MakeError(message string) *ParseError {
	rest := scan.buf[scan.pos.Offset:]
	var context string
	if len(rest) > 20 {
		context = string(rest[:17]) + "..."
	} else {
		context = string(rest)
	}
	return &ParseError{
		Message: message,
		Name:    scan.Name,
		Line:    scan.pos.Line,
		Column:  scan.pos.Column,
		Context: context,
	}
}

// ParseError describes an unrecoverable problem with the input.
type ParseError struct {
	Message string
	Name    string
	Line    int
	Column  int
	Context string
}

func (err *ParseError) Error() string {
	res := []string{err.Message}
	name := err.Name
	if name == "" {
		name = "<input>"
	}
	res = append(res, "\n    ",
		name, ", line ", strconv.Itoa(err.Line),
		", column ", strconv.Itoa(err.Column))
	if err.Context != "" {
		res = append(res, fmt.Sprintf(", before %q", err.Context))
	}
	return strings.Join(res, "")
}
