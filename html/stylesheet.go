// stylesheet.go -
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
	"io"

	"github.com/seehuhn/cl2html/lisp/tokenizer"
)

// tokenColors gives the text colour for each token type.  Types not
// listed here use the default text colour.
var tokenColors = map[tokenizer.TokenType]string{
	tokenizer.TokenInteger:         "#1c00cf",
	tokenizer.TokenFloat:           "#1c00cf",
	tokenizer.TokenSharpB:          "#1c00cf",
	tokenizer.TokenSharpO:          "#1c00cf",
	tokenizer.TokenSharpX:          "#1c00cf",
	tokenizer.TokenSharpR:          "#1c00cf",
	tokenizer.TokenString:          "#c41a16",
	tokenizer.TokenCharacter:       "#c41a16",
	tokenizer.TokenComment:         "#007400",
	tokenizer.TokenQuote:           "#aa0d91",
	tokenizer.TokenBackquote:       "#aa0d91",
	tokenizer.TokenComma:           "#aa0d91",
	tokenizer.TokenCommaAt:         "#aa0d91",
	tokenizer.TokenCommaDot:        "#aa0d91",
	tokenizer.TokenSharpQuote:      "#aa0d91",
	tokenizer.TokenSharpColon:      "#5c2699",
	tokenizer.TokenSharpDot:        "#aa0d91",
	tokenizer.TokenSharpPlus:       "#643820",
	tokenizer.TokenSharpMinus:      "#643820",
	tokenizer.TokenSharpEqual:      "#643820",
	tokenizer.TokenSharpSharp:      "#643820",
	tokenizer.TokenBitVector:       "#1c00cf",
	tokenizer.TokenSharpA:          "#5c2699",
	tokenizer.TokenSharpC:          "#5c2699",
	tokenizer.TokenSharpP:          "#5c2699",
	tokenizer.TokenSharpS:          "#5c2699",
	tokenizer.TokenSharpRightParen: "#cc0000",
	tokenizer.TokenDot:             "#000000",
}

type colorRule struct {
	Class string
	Color string
}

// symbolColors are used for the classes assigned by symbolClass.
var symbolColors = []colorRule{
	{"property", "#3f6e74"},
	{"key", "#aa0d91"},
	{"funcall", "#2e0d6e"},
}

// depthColors are used for parentheses, cycling with nesting depth.
var depthColors = [DepthColors]string{
	"#707070",
	"#b58900",
	"#6c71c4",
	"#2aa198",
	"#d33682",
	"#859900",
	"#268bd2",
}

// colorRules lists the colour of every CSS class, with the token
// types in their natural order.
func colorRules() []colorRule {
	var rules []colorRule
	for _, tt := range tokenizer.AllTypes() {
		if color, ok := tokenColors[tt]; ok {
			rules = append(rules, colorRule{tt.String(), color})
		}
	}
	return append(rules, symbolColors...)
}

// WriteStylesheet writes the CSS style sheet used by the HTML pages.
func WriteStylesheet(w io.Writer) error {
	return stylesheetTmpl.Execute(w, map[string]interface{}{
		"Colors": colorRules(),
		"Depths": depthColors[:],
	})
}
