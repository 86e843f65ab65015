// render.go - terminal output using lipgloss
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

// Package ansi renders tokenized Common Lisp source for display in a
// terminal.
package ansi

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/seehuhn/cl2html/lisp/tokenizer"
)

var depthColors = []lipgloss.Color{
	"244", "136", "61", "37", "125", "64", "33",
}

// Renderer holds the styles used for terminal output.
type Renderer struct {
	kinds  map[tokenizer.TokenType]lipgloss.Style
	parens []lipgloss.Style
	err    lipgloss.Style
	diag   lipgloss.Style
}

// NewRenderer creates a Renderer for output to w.  The colour profile
// is detected from w.
func NewRenderer(w io.Writer) *Renderer {
	return newRenderer(lipgloss.NewRenderer(w))
}

// NewProfileRenderer creates a Renderer which always uses the given
// colour profile.  This is used when the output is not written to a
// terminal directly, for example in HTTP responses.
func NewProfileRenderer(profile termenv.Profile) *Renderer {
	re := lipgloss.NewRenderer(io.Discard)
	re.SetColorProfile(profile)
	return newRenderer(re)
}

func newRenderer(re *lipgloss.Renderer) *Renderer {
	style := func(color string) lipgloss.Style {
		return re.NewStyle().
			TabWidth(lipgloss.NoTabConversion).
			Foreground(lipgloss.Color(color))
	}

	number := style("20")
	str := style("124")
	macro := style("90")
	reader := style("94")
	r := &Renderer{
		kinds: map[tokenizer.TokenType]lipgloss.Style{
			tokenizer.TokenInteger:         number,
			tokenizer.TokenFloat:           number,
			tokenizer.TokenSharpB:          number,
			tokenizer.TokenSharpO:          number,
			tokenizer.TokenSharpX:          number,
			tokenizer.TokenSharpR:          number,
			tokenizer.TokenBitVector:       number,
			tokenizer.TokenString:          str,
			tokenizer.TokenCharacter:       str,
			tokenizer.TokenComment:         style("28").Italic(true),
			tokenizer.TokenQuote:           macro,
			tokenizer.TokenBackquote:       macro,
			tokenizer.TokenComma:           macro,
			tokenizer.TokenCommaAt:         macro,
			tokenizer.TokenCommaDot:        macro,
			tokenizer.TokenSharpQuote:      macro,
			tokenizer.TokenSharpDot:        macro,
			tokenizer.TokenSharpColon:      reader,
			tokenizer.TokenSharpA:          reader,
			tokenizer.TokenSharpC:          reader,
			tokenizer.TokenSharpP:          reader,
			tokenizer.TokenSharpS:          reader,
			tokenizer.TokenSharpPlus:       reader,
			tokenizer.TokenSharpMinus:      reader,
			tokenizer.TokenSharpEqual:      reader,
			tokenizer.TokenSharpSharp:      reader,
			tokenizer.TokenSharpRightParen: style("196"),
		},
		err: re.NewStyle().
			TabWidth(lipgloss.NoTabConversion).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")),
		diag: style("160").Faint(true),
	}
	for _, c := range depthColors {
		r.parens = append(r.parens, re.NewStyle().Foreground(c).Bold(true))
	}
	return r
}

// Render writes the tokens to w, using the styles of r.  Apart from
// the escape sequences and the messages shown after error tokens, the
// output equals the tokenizer input.
func (r *Renderer) Render(w io.Writer, toks tokenizer.TokenList) error {
	out := bufio.NewWriter(w)
	depth := -1
	for _, tok := range toks {
		var styled string
		switch tok.Type {
		case tokenizer.TokenEOF:
			continue
		case tokenizer.TokenWhitespace, tokenizer.TokenNewline:
			styled = tok.Text
		case tokenizer.TokenLeftParen, tokenizer.TokenVector:
			depth++
			styled = r.paren(depth).Render(tok.Text)
		case tokenizer.TokenRightParen:
			styled = r.paren(depth).Render(tok.Text)
			depth--
		case tokenizer.TokenError:
			styled = renderLines(r.err, tok.Text)
			if tok.Diag != nil {
				styled += r.diag.Render(" [" + tok.Diag.Message() + "]")
			}
		default:
			style, ok := r.kinds[tok.Type]
			if ok {
				styled = renderLines(style, tok.Text)
			} else {
				styled = tok.Text
			}
		}
		_, err := out.WriteString(styled)
		if err != nil {
			return err
		}
	}
	return out.Flush()
}

func (r *Renderer) paren(depth int) lipgloss.Style {
	if depth < 0 {
		return r.err
	}
	return r.parens[depth%len(r.parens)]
}

// Render writes the tokens to w, with colours chosen for w.
func Render(w io.Writer, toks tokenizer.TokenList) error {
	return NewRenderer(w).Render(w, toks)
}

// renderLines applies style to every line of s separately, keeping
// the line terminators unchanged.
func renderLines(style lipgloss.Style, s string) string {
	var res []string
	for {
		idx := strings.IndexAny(s, "\r\n")
		if idx < 0 {
			break
		}
		end := idx + 1
		if s[idx] == '\r' && end < len(s) && s[end] == '\n' {
			end++
		}
		if idx > 0 {
			res = append(res, style.Render(s[:idx]))
		}
		res = append(res, s[idx:end])
		s = s[end:]
	}
	if s != "" {
		res = append(res, style.Render(s))
	}
	return strings.Join(res, "")
}
