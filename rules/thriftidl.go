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
	"go.uber.org/thriftrw/idl"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
)

// ThriftIDLRule reformats a cmdstring literal marked `#!thrift` as
// embedded Thrift IDL: it validates the payload with thriftrw's parser
// (which, like go-protoparser, has no printer) and applies the
// package's conservative whitespace normalization to the validated
// text.
func ThriftIDLRule() engine.Rule {
	return engine.RuleFunc{
		RuleName: "thriftidl",
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			content, ok := literalContent(node, cst.KindCmdString)
			if !ok {
				return accept()
			}
			lang, payload, ok := cmdMarker(content.Text)
			if !ok || lang != "thrift" {
				return accept()
			}
			if _, err := idl.Parse(payload); err != nil {
				return accept()
			}
			normalized := normalizeLineWhitespace(payload)
			rebuilt := append([]byte("#!thrift\n"), normalized...)
			if string(rebuilt) == string(content.Text) {
				return accept()
			}
			return replaceLiteralContent(ctx, node, content, rebuilt)
		},
	}
}
