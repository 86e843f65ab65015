// convert_test.go -
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

package lisp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/seehuhn/cl2html/ansi"
	"github.com/seehuhn/cl2html/lisp/cache"
)

const sample = "(defun square (x)\n  (* x x))\n"

func writeSample(t *testing.T, dir, name, contents string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	err := os.WriteFile(fname, []byte(contents), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestConvert(t *testing.T) {
	fname := writeSample(t, t.TempDir(), "square.lisp", sample)

	buf := &bytes.Buffer{}
	err := Convert(buf, fname, "html")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `<span class="funcall">defun</span>`) {
		t.Error("HTML output lacks highlighted function name")
	}

	buf.Reset()
	err = Convert(buf, fname, "ansi")
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != sample {
		t.Errorf("wrong terminal output %q", buf.String())
	}

	err = Convert(buf, fname, "pdf")
	if err != ErrUnknownFormat {
		t.Errorf("wrong error %v", err)
	}
	err = Convert(buf, filepath.Join(t.TempDir(), "missing.lisp"), "html")
	if !os.IsNotExist(err) {
		t.Errorf("wrong error %v", err)
	}
}

func TestHighlightCached(t *testing.T) {
	t.Setenv("CL2HTML_CACHE", t.TempDir())
	c, err := cache.NewCache("test")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close(-1)

	conv := &Converter{Cache: c}
	first := &bytes.Buffer{}
	err = conv.Highlight(first, "a.lisp", []byte(sample), "html")
	if err != nil {
		t.Fatal(err)
	}
	key := "html\x00a.lisp\x00" + sample
	if !c.Has(key) {
		t.Fatal("page not cached")
	}
	err = c.Put(key, []byte("cached"))
	if err != nil {
		t.Fatal(err)
	}

	second := &bytes.Buffer{}
	err = conv.Highlight(second, "a.lisp", []byte(sample), "html")
	if err != nil {
		t.Fatal(err)
	}
	if second.String() != "cached" {
		t.Error("cache not used")
	}
}

func TestHighlightSoftErrors(t *testing.T) {
	conv := &Converter{}
	buf := &bytes.Buffer{}
	err := conv.Highlight(buf, "x.lisp", []byte("(\"unterminated"), "html")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `class="hidden-error">Unterminated string.`) {
		t.Error("error token not rendered")
	}
}

func TestHighlightTerminal(t *testing.T) {
	conv := &Converter{Terminal: ansi.NewProfileRenderer(termenv.ANSI256)}
	buf := &bytes.Buffer{}
	err := conv.Highlight(buf, "x.lisp", []byte(sample), "ansi")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no colours in %q", buf.String())
	}
}
