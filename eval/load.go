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

package eval

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/TianpingHsu/sparrow-lisp/reader"
	"github.com/TianpingHsu/sparrow-lisp/value"
)

// LoadFile opens path, reads and evaluates every top-level form in order
// against e, and closes the handle on every exit path — the shared
// implementation behind both the (load "path") primitive and the CLI's
// repeatable -load flag (SPEC_FULL.md §6, §7).
func LoadFile(path string, e *value.Environment) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	defer f.Close()
	return LoadReader(path, f, e)
}

// LoadReader evaluates every top-level form read from r against e. name
// tags reader diagnostics only.
func LoadReader(name string, r io.Reader, e *value.Environment) error {
	rd := reader.New(name, r)
	for {
		v, err := rd.Read()
		if err != nil {
			return errors.Wrapf(err, "load %s", name)
		}
		if v == value.Sentinel {
			return nil
		}
		if _, err := Eval(v, e); err != nil {
			return errors.Wrapf(err, "load %s", name)
		}
	}
}
