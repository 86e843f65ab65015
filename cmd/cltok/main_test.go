package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/seehuhn/cl2html/lisp/tokenizer"
)

func TestIncomplete(t *testing.T) {
	testCases := []struct {
		in   string
		more bool
	}{
		{"", false},
		{"(car x)", false},
		{"(format t \"hello", true},
		{"#| comment", true},
		{"#| comment |#", false},
		{"#z", false},
	}
	for _, testCase := range testCases {
		toks, err := tokenizer.Tokenize([]byte(testCase.in), "test")
		if err != nil {
			t.Fatal(err)
		}
		if more := incomplete(toks); more != testCase.more {
			t.Errorf("%q: got %t, expected %t", testCase.in, more, testCase.more)
		}
	}
}

func TestPrintTokens(t *testing.T) {
	toks, err := tokenizer.Tokenize([]byte("(a #z)"), "test")
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	printTokens(buf, toks)
	want := `1:0 LParen "("
1:1 Symbol "a"
1:3 Error "#z"
    Unexpected character while parsing reader macro, expected one of ( * R A = # + -.
1:5 RParen ")"
1:6 EOF ""
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("wrong output (-want +got):\n%s", d)
	}
}
