// main.go - highlight Common Lisp source code
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

package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/seehuhn/cl2html/html"
	"github.com/seehuhn/cl2html/lisp"
	"github.com/seehuhn/cl2html/lisp/cache"
	"github.com/seehuhn/cl2html/server"
)

var (
	output = flag.String("output", "",
		"the output file name, or the output directory for several inputs")
	format   = flag.String("format", "html", "output format (html or ansi)")
	writeCSS = flag.Bool("css", false, "also write the style sheet syntax.css")
	useCache = flag.Bool("cache", true, "cache rendered HTML pages")
	serve    = flag.String("serve", "",
		"run the highlighting service on the given address, e.g. :8080")
	jobs     = flag.Int("j", runtime.NumCPU(), "number of files to convert in parallel")
	logLevel = zap.LevelFlag("log-level", zap.InfoLevel,
		"log level of the highlighting service")
)

const cssName = "syntax.css"

var errUsage = errors.New("usage: cl2html [options] <input.lisp>...")

func main() {
	log.Println("start")
	flag.Parse()

	err := run()
	if err != nil {
		log.Fatal(err)
	}
	log.Println("done")
}

// run does the work of main.  The cache is closed before run returns,
// so that pending writes reach the disk even if an error occurred.
func run() (err error) {
	var c *cache.Cache
	if *useCache && (*format == "html" || *serve != "") {
		c, err = cache.NewCache("pages")
		if err != nil {
			return err
		}
		defer func() {
			e2 := c.Close(64 * 1024 * 1024)
			if err == nil {
				err = e2
			}
		}()
	}

	switch {
	case *serve != "":
		return runServer(c)
	case flag.NArg() == 0:
		return errUsage
	case *format == "ansi":
		conv := &lisp.Converter{}
		for _, inputName := range flag.Args() {
			err = conv.Convert(os.Stdout, inputName, *format)
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return convertFiles(&lisp.Converter{Cache: c}, flag.Args())
	}
}

func convertFiles(conv *lisp.Converter, inputNames []string) error {
	outDir := "."
	var outNames []string
	if len(inputNames) == 1 && *output != "" {
		outDir = filepath.Dir(*output)
		outNames = append(outNames, *output)
	} else {
		if *output != "" {
			outDir = *output
			err := os.MkdirAll(outDir, 0755)
			if err != nil {
				return err
			}
		}
		for _, inputName := range inputNames {
			base := filepath.Base(inputName)
			base = strings.TrimSuffix(base, filepath.Ext(base))
			outNames = append(outNames, filepath.Join(outDir, base+".html"))
		}
	}

	if *writeCSS {
		err := writeStylesheet(filepath.Join(outDir, cssName))
		if err != nil {
			return err
		}
	}

	queue := lisp.NewQueue(conv, *jobs)
	var results []<-chan error
	for i, inputName := range inputNames {
		log.Println("writing", outNames[i])
		results = append(results, queue.Submit(inputName, outNames[i], *format))
	}
	queue.Finish()

	var firstErr error
	for _, c := range results {
		err := <-c
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func writeStylesheet(fileName string) (err error) {
	out, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		e2 := out.Close()
		if err == nil {
			err = e2
		}
	}()
	return html.WriteStylesheet(out)
}

func runServer(c *cache.Cache) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*logLevel)
	dev, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(dev)
	defer zap.S().Sync()

	handler, err := server.New(c)
	if err != nil {
		return err
	}
	zap.S().Infof("listening on %s", *serve)
	return http.ListenAndServe(*serve, handler)
}
