// This file is part of sparrow-lisp.
//
// Copyright 2026 The Sparrow Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/TianpingHsu/sparrow-lisp/eval"
	"github.com/TianpingHsu/sparrow-lisp/prim"
	"github.com/TianpingHsu/sparrow-lisp/reader"
	"github.com/TianpingHsu/sparrow-lisp/repl"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var (
	debug   bool
	noRawIO bool
)

// defaultLib is the conventional bootstrap library path, loaded silently if
// present before the REPL starts — the same role the teacher's cmd/retro
// gives its default "retroImage" path.
const defaultLib = "res/lib.scm"

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	dumpEnvironment(os.Stderr)
	os.Exit(1)
}

func setupIO() (raw bool, tearDown func()) {
	if noRawIO {
		return false, nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}

func main() {
	var loadFiles fileList
	flag.Var(&loadFiles, "load", "evaluate `filename` before entering the REPL (can be specified multiple times)")
	flag.BoolVar(&debug, "debug", false, "on a fatal error, dump the global environment to stderr")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.Parse()

	var err error
	defer func() { atExit(err) }()

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	g := eval.Global

	rawtty, tearDown := setupIO()
	if tearDown != nil {
		defer tearDown()
	}

	var in io.Reader = os.Stdin
	if rawtty {
		in = newRawLineReader(os.Stdin)
	} else {
		in = bufio.NewReader(os.Stdin)
	}
	rd := reader.New("<stdin>", in)

	prim.Register(g, &prim.Context{Stdout: stdout, In: rd, Global: g})

	if _, statErr := os.Stat(defaultLib); statErr == nil {
		if err = eval.LoadFile(defaultLib, g); err != nil {
			return
		}
	}

	if err = repl.LoadFiles(loadFiles, g); err != nil {
		return
	}

	prompt := ""
	if fi, statErr := os.Stdin.Stat(); statErr == nil && (fi.Mode()&os.ModeCharDevice) != 0 {
		prompt = "> "
	}

	if replErr := repl.Run(rd, g, repl.Options{Prompt: prompt, Out: stdout}); replErr != nil {
		if errors.Cause(replErr) != io.EOF {
			err = replErr
		}
	}
}
