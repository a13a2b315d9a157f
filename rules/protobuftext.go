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
	"strings"

	protoparser "github.com/yoheimuta/go-protoparser/v4"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
)

// ProtobufTextRule reformats a cmdstring literal marked `#!proto` as
// embedded protobuf text: it validates the payload with go-protoparser
// (which has no printer of its own, so a malformed payload simply
// leaves the literal untouched) and applies the package's conservative
// whitespace normalization to the validated text.
func ProtobufTextRule() engine.Rule {
	return engine.RuleFunc{
		RuleName: "protobuftext",
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			content, ok := literalContent(node, cst.KindCmdString)
			if !ok {
				return accept()
			}
			lang, payload, ok := cmdMarker(content.Text)
			if !ok || lang != "proto" {
				return accept()
			}
			if _, err := protoparser.Parse(strings.NewReader(string(payload))); err != nil {
				return accept()
			}
			normalized := normalizeLineWhitespace(payload)
			rebuilt := append([]byte("#!proto\n"), normalized...)
			if string(rebuilt) == string(content.Text) {
				return accept()
			}
			return replaceLiteralContent(ctx, node, content, rebuilt)
		},
	}
}
