// server_test.go -
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

package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServer(t *testing.T) {
	handler, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(handler)
	defer ts.Close()

	testCases := []struct {
		method, url, body string
		status            int
		contains          string
	}{
		{"POST", "/highlight?name=src/a.lisp", "(car x)", 200,
			`<li class="file">a.lisp</li>`},
		{"POST", "/highlight?format=ansi", "(car 42 \"s\")", 200, "\x1b["},
		{"POST", "/highlight?format=ansi", "(car x)", 200, "car"},
		{"POST", "/highlight", "(foo \"bar", 200, "hidden-error"},
		{"POST", "/highlight?format=pdf", "(car x)", 400, "unknown output format"},
		{"GET", "/highlight", "", 405, "method not allowed"},
		{"GET", "/syntax.css", "", 200, ".hidden-error"},
	}
	for _, testCase := range testCases {
		req, err := http.NewRequest(testCase.method, ts.URL+testCase.url,
			strings.NewReader(testCase.body))
		if err != nil {
			t.Fatal(err)
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		if err != nil {
			t.Fatal(err)
		}

		if res.StatusCode != testCase.status {
			t.Errorf("%s %s: wrong status %d", testCase.method, testCase.url,
				res.StatusCode)
		}
		if !strings.Contains(string(body), testCase.contains) {
			t.Errorf("%s %s: body does not contain %q", testCase.method,
				testCase.url, testCase.contains)
		}
	}
}

func TestCORS(t *testing.T) {
	handler, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/highlight", strings.NewReader("x"))
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("wrong CORS header %q", got)
	}
}
