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

package repl

import (
	"github.com/TianpingHsu/sparrow-lisp/eval"
	"github.com/TianpingHsu/sparrow-lisp/value"
)

// LoadFiles evaluates each named file in order against g, stopping at the
// first error. This backs the CLI's repeatable -load flag.
func LoadFiles(paths []string, g *value.Environment) error {
	for _, p := range paths {
		if err := eval.LoadFile(p, g); err != nil {
			return err
		}
	}
	return nil
}
