// render.go - arrange tokens into HTML lines and spans
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

package html

import (
	"flag"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/seehuhn/cl2html/lisp/tokenizer"
)

const (
	baseNameSpaceURL = "http://cl2html.seehuhn.de/"

	// DepthColors is the number of different colours used for
	// parentheses at different nesting depths.
	DepthColors = 7
)

var stylesheet = flag.String("stylesheet", "syntax.css",
	"location of the style sheet referenced by HTML pages")

var nameSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(baseNameSpaceURL))

// Page describes an HTML page showing a highlighted Lisp file.
type Page struct {
	Name       string
	ID         uuid.UUID
	Stylesheet string
	Lines      []*Line
}

// Line holds the spans making up one line of source code.
type Line struct {
	Number int
	Spans  []*Span
}

// Span is a piece of highlighted source text.  Tokens which extend
// over several lines are split into one span per line.
type Span struct {
	Class  string
	Depth  string
	Text   string
	Hidden string
	Break  bool
}

// token types which increase the parenthesis depth
var openers = []tokenizer.TokenType{
	tokenizer.TokenLeftParen,
	tokenizer.TokenVector,
}

// NewPage arranges the tokens into lines and spans.  The argument
// `name` is the file name shown in the page header.
func NewPage(name string, toks tokenizer.TokenList) *Page {
	page := &Page{
		Name:       name,
		ID:         uuid.NewSHA1(nameSpace, []byte(name)),
		Stylesheet: *stylesheet,
	}

	var cur *Line
	newLine := func(no int) {
		cur = &Line{Number: no}
		page.Lines = append(page.Lines, cur)
	}
	newLine(1)

	depth := -1
	afterOpenParen := false
	for _, tok := range toks {
		var span *Span
		switch {
		case tok.Type == tokenizer.TokenEOF:
			continue
		case tok.Type == tokenizer.TokenNewline:
			cur.Spans = append(cur.Spans, &Span{Break: true})
			newLine(cur.Number + 1)
			afterOpenParen = false
			continue
		case slices.Contains(openers, tok.Type):
			depth++
			span = &Span{
				Class: parenClass(tok.Type),
				Depth: depthAttr(depth),
			}
			afterOpenParen = true
		case tok.Type == tokenizer.TokenRightParen:
			span = &Span{
				Class: parenClass(tok.Type),
				Depth: depthAttr(depth),
			}
			depth--
			afterOpenParen = false
		case tok.Type == tokenizer.TokenSymbol:
			span = &Span{Class: symbolClass(tok.Text, afterOpenParen)}
			afterOpenParen = false
		case tok.Type == tokenizer.TokenError:
			span = &Span{Class: "error"}
			_, span.Hidden = tokenizer.SplitErrorLexeme(tok.Lexeme())
		case tok.Type == tokenizer.TokenWhitespace,
			tok.Type == tokenizer.TokenComment:
			// Whitespace and comments do not end the head position.
			span = &Span{Class: tok.Type.String()}
		default:
			span = &Span{Class: tok.Type.String()}
			afterOpenParen = false
		}

		for i, part := range splitLines(tok.Display()) {
			if i > 0 {
				newLine(cur.Number + 1)
			}
			s := *span
			s.Text = part
			cur.Spans = append(cur.Spans, &s)
		}
	}
	return page
}

// Render writes a complete HTML page for the given tokens to w.
func Render(w io.Writer, name string, toks tokenizer.TokenList) error {
	return pageTmpl.Execute(w, NewPage(name, toks))
}

func parenClass(tt tokenizer.TokenType) string {
	if tt == tokenizer.TokenVector {
		return "parenthesis Vector"
	}
	return "parenthesis"
}

func depthAttr(depth int) string {
	if depth < 0 {
		return "error"
	}
	return strconv.Itoa(depth % DepthColors)
}

// symbolClass returns the CSS class for a symbol.  Keywords and lambda
// list keywords are recognised by their first character, and the
// symbol directly after an opening parenthesis is shown as a function
// call.
func symbolClass(name string, afterOpenParen bool) string {
	switch {
	case strings.HasPrefix(name, ":"):
		return "property"
	case strings.HasPrefix(name, "&"):
		return "key"
	case afterOpenParen:
		return "funcall"
	default:
		return tokenizer.TokenSymbol.String()
	}
}

// splitLines splits s at line terminators.  The terminators are
// dropped.
func splitLines(s string) []string {
	var res []string
	for {
		idx := strings.IndexAny(s, "\r\n")
		if idx < 0 {
			break
		}
		res = append(res, s[:idx])
		if s[idx] == '\r' && idx+1 < len(s) && s[idx+1] == '\n' {
			idx++
		}
		s = s[idx+1:]
	}
	return append(res, s)
}
