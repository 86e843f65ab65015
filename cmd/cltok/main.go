// main.go - interactive token inspector
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

// Cltok shows the tokens the cl2html tokenizer finds in Common Lisp
// source code.  Files given on the command line are tokenized and
// printed; without arguments, an interactive session is started.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/seehuhn/cl2html/lisp/tokenizer"
)

const (
	historyFile = ".cltok_history"
	promptMain  = "cl> "
	promptCont  = "... "
)

var showAll = flag.Bool("a", false,
	"also show whitespace and newline tokens")

func main() {
	flag.Parse()

	if flag.NArg() > 0 {
		for _, fileName := range flag.Args() {
			toks, err := tokenizer.TokenizeFile(fileName)
			if err != nil {
				log.Fatal(err)
			}
			printTokens(os.Stdout, toks)
		}
		return
	}

	err := repl()
	if err != nil {
		log.Fatal(err)
	}
}

func repl() error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	entry := 0
	for {
		var input []string
		prompt := promptMain
		var toks tokenizer.TokenList
		for {
			line, err := ln.Prompt(prompt)
			if err == liner.ErrPromptAborted {
				input = nil
				break
			} else if err == io.EOF {
				fmt.Println()
				return saveHistory(ln, histPath)
			} else if err != nil {
				return err
			}
			input = append(input, line)

			name := fmt.Sprintf("<input %d>", entry+1)
			toks, err = tokenizer.Tokenize([]byte(strings.Join(input, "\n")), name)
			if err != nil {
				fmt.Println(err)
				input = nil
				break
			}
			if !incomplete(toks) {
				break
			}
			prompt = promptCont
		}
		if strings.TrimSpace(strings.Join(input, "")) == "" {
			continue
		}

		entry++
		printTokens(os.Stdout, toks)
		ln.AppendHistory(strings.Join(input, " "))
	}
}

func saveHistory(ln *liner.State, histPath string) (err error) {
	f, err := os.Create(histPath)
	if err != nil {
		return err
	}
	defer func() {
		e2 := f.Close()
		if err == nil {
			err = e2
		}
	}()
	_, err = ln.WriteHistory(f)
	return err
}

// incomplete checks whether the input ends inside a string or a block
// comment, so that more lines need to be read.
func incomplete(toks tokenizer.TokenList) bool {
	if len(toks) < 2 {
		return false
	}
	last := toks[len(toks)-2]
	if last.Type != tokenizer.TokenError || last.Diag == nil {
		return false
	}
	switch last.Diag.Kind {
	case tokenizer.ErrUnterminatedString, tokenizer.ErrUnterminatedComment:
		return true
	}
	return false
}

func printTokens(w io.Writer, toks tokenizer.TokenList) {
	for _, tok := range toks {
		switch tok.Type {
		case tokenizer.TokenWhitespace, tokenizer.TokenNewline:
			if !*showAll {
				continue
			}
		case tokenizer.TokenError:
			if tok.Diag != nil {
				fmt.Fprintf(w, "%d:%d %s %q\n    %s\n",
					tok.Line, tok.Column, tok.Type, tok.Text, tok.Diag.Message())
				continue
			}
		}
		fmt.Fprintln(w, tok)
	}
}
