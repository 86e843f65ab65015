// convert.go -
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

// Package lisp converts Common Lisp source files into highlighted HTML
// pages or terminal output.
package lisp

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"

	"golang.org/x/exp/slices"

	"github.com/seehuhn/cl2html/ansi"
	"github.com/seehuhn/cl2html/html"
	"github.com/seehuhn/cl2html/lisp/cache"
	"github.com/seehuhn/cl2html/lisp/tokenizer"
)

// Formats lists the supported output formats.
var Formats = []string{"html", "ansi"}

// ErrUnknownFormat is returned when an output format is requested
// which is not listed in Formats.
var ErrUnknownFormat = errors.New("unknown output format")

// A Converter turns Common Lisp source into highlighted output.
type Converter struct {
	// Cache, if not nil, is used to store rendered HTML pages.
	Cache *cache.Cache

	// Terminal, if not nil, renders the "ansi" format.  Otherwise
	// the colour profile is detected from the output writer.
	Terminal *ansi.Renderer
}

// Convert reads the given Common Lisp input file, highlights the
// contents and writes the result in the given format to `w`.
func Convert(w io.Writer, inputFileName, format string) error {
	conv := &Converter{}
	return conv.Convert(w, inputFileName, format)
}

// Convert reads the given input file, highlights the contents and
// writes the result in the given format to `w`.
func (conv *Converter) Convert(w io.Writer, inputFileName, format string) error {
	if !slices.Contains(Formats, format) {
		return ErrUnknownFormat
	}
	data, err := os.ReadFile(inputFileName)
	if err != nil {
		return err
	}
	return conv.Highlight(w, inputFileName, data, format)
}

// Highlight writes a highlighted version of the Lisp source `data` to
// `w`.  The argument `name` is used in error messages and page
// headers.
func (conv *Converter) Highlight(w io.Writer, name string, data []byte, format string) error {
	var key string
	switch format {
	case "html":
		key = format + "\x00" + name + "\x00" + string(data)
		if conv.Cache != nil && conv.Cache.Has(key) {
			page, err := conv.Cache.Get(key)
			if err == nil {
				_, err = w.Write(page)
				return err
			}
			log.Printf("cache lookup for %s failed: %s", name, err)
		}
	case "ansi":
		// pass
	default:
		return ErrUnknownFormat
	}

	log.Println("tokenizing", name, "...")
	toks, err := tokenizer.Tokenize(data, name)
	if err != nil {
		return err
	}
	for _, diag := range toks.Errors() {
		log.Println(diag)
	}

	if format == "ansi" {
		// The colour profile depends on w, so terminal output is not
		// cached.
		if conv.Terminal != nil {
			return conv.Terminal.Render(w, toks)
		}
		return ansi.Render(w, toks)
	}

	buf := &bytes.Buffer{}
	err = html.Render(buf, name, toks)
	if err != nil {
		return err
	}
	if conv.Cache != nil {
		err = conv.Cache.Put(key, buf.Bytes())
		if err != nil {
			log.Printf("cannot cache %s: %s", name, err)
		}
	}
	_, err = w.Write(buf.Bytes())
	return err
}
