//  Copyright (c) 2023 Uber Technologies, Inc.
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

package engine

import "github.com/runestone-lang/runestone/cst"

// ParseFunc is the shape of the external collaborator that turns source
// text into a CST. The engine core takes it as a parameter rather than
// importing a concrete parser package, keeping the parser an external
// collaborator per this repository's scoping (see package parse for the
// one this repository ships and wires by default via FormatString).
type ParseFunc func(src string) (cst.Node, error)

// FormatString is the convenience wrapper mentioned in the engine API:
// parse src with parseFn, run the engine, and return the formatted
// text. It is idempotent: FormatString(FormatString(s)) == FormatString(s)
// for any s that parses, by construction of the rule contract (§4.4).
func FormatString(src string, parseFn ParseFunc, pipeline Pipeline, flags Flags) (string, error) {
	tree, err := parseFn(src)
	if err != nil {
		return "", err
	}
	ctx := NewContext(src, tree, pipeline, flags)
	if err := FormatTree(ctx); err != nil {
		return "", err
	}
	return string(ctx.Out.Bytes()), nil
}
