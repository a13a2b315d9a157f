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

package rules

import (
	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
)

// TrimTrailingWhitespace deletes a run of horizontal whitespace that sits
// at the end of a line: either immediately before a newline, or at the
// very end of the file. It decides this from the output bytes that follow
// the run, so indentation that is merely the last child of its parent
// (e.g. before a block's closing "end") is kept. It never touches
// whitespace that separates two tokens on the same line.
func TrimTrailingWhitespace() engine.Rule {
	return engine.RuleFunc{
		RuleName: "trim-trailing-whitespace",
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			if node.Head.Kind != cst.KindWhitespace || len(node.Text) == 0 {
				return accept()
			}
			buf := ctx.Out.Bytes()
			end := ctx.Out.Pos() + node.Span
			trailing := end >= len(buf) || buf[end] == '\n' || buf[end] == '\r'
			if !trailing {
				return accept()
			}
			return replaceLeaf(ctx, node, []byte{}, cst.KindWhitespace, node.Head.Flags)
		},
	}
}
