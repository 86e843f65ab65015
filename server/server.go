// server.go - HTTP highlighting service
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

// Package server implements an HTTP service which highlights Common
// Lisp source code.
package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path"

	"github.com/muesli/termenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/seehuhn/cl2html/ansi"
	"github.com/seehuhn/cl2html/html"
	"github.com/seehuhn/cl2html/lisp"
	"github.com/seehuhn/cl2html/lisp/cache"
	"github.com/seehuhn/cl2html/lisp/scanner"
)

// MaxSourceSize is the largest request body accepted by the
// highlighting endpoint.
const MaxSourceSize = 4 << 20

var contentTypes = map[string]string{
	"html": "text/html; charset=utf-8",
	"ansi": "text/plain; charset=utf-8",
}

type server struct {
	conv *lisp.Converter
	css  []byte
}

// New returns the handler for the highlighting service.  The cache
// may be nil.  Terminal output uses the 256 colour palette.
//
//	POST /highlight?format=html&name=file.lisp   source in the request body
//	GET  /syntax.css                             the style sheet
func New(c *cache.Cache) (http.Handler, error) {
	css := &bytes.Buffer{}
	err := html.WriteStylesheet(css)
	if err != nil {
		return nil, err
	}
	s := &server{
		conv: &lisp.Converter{
			Cache:    c,
			Terminal: ansi.NewProfileRenderer(termenv.ANSI256),
		},
		css:  css.Bytes(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/highlight", s.highlight)
	mux.HandleFunc("/syntax.css", s.stylesheet)
	return cors.Default().Handler(mux), nil
}

func (s *server) highlight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "html"
	}
	contentType, ok := contentTypes[format]
	if !ok {
		http.Error(w, lisp.ErrUnknownFormat.Error(), http.StatusBadRequest)
		return
	}
	name := path.Base(r.URL.Query().Get("name"))
	if name == "." || name == "/" {
		name = "input.lisp"
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxSourceSize))
	if err != nil {
		zap.S().Warnw("reading request failed", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	out := &bytes.Buffer{}
	err = s.conv.Highlight(out, name, data, format)
	var parseErr *scanner.ParseError
	if errors.As(err, &parseErr) {
		zap.S().Errorw("tokenizing failed", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	} else if err != nil {
		zap.S().Errorw("highlighting failed", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	zap.S().Infow("highlighted", "name", name, "format", format,
		"in", len(data), "out", out.Len())
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(out.Bytes())
}

func (s *server) stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(s.css)
}
