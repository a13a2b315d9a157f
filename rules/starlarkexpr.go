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
	"go.starlark.net/syntax"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
)

// StarlarkExprRule reformats a cmdstring literal marked `#!starlark` by
// validating it parses as a Starlark expression. go.starlark.net/syntax
// does not expose an unparser (see analyzer/starlark/ast_equivalence.go
// for the same observation in the teacher's own equivalence checker),
// so -- like protobuftext and thriftidl -- the actual text rewrite is
// this package's conservative whitespace normalization, gated on a
// successful parse.
func StarlarkExprRule() engine.Rule {
	return engine.RuleFunc{
		RuleName: "starlarkexpr",
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			content, ok := literalContent(node, cst.KindCmdString)
			if !ok {
				return accept()
			}
			lang, payload, ok := cmdMarker(content.Text)
			if !ok || lang != "starlark" {
				return accept()
			}
			if _, err := syntax.ParseExpr("embedded.star", payload, 0); err != nil {
				return accept()
			}
			normalized := normalizeLineWhitespace(payload)
			rebuilt := append([]byte("#!starlark\n"), normalized...)
			if string(rebuilt) == string(content.Text) {
				return accept()
			}
			return replaceLiteralContent(ctx, node, content, rebuilt)
		},
	}
}
