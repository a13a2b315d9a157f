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
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
)

// YAMLBlockRule reformats a cmdstring literal marked `#!yaml` by
// round-tripping it through a yaml.Node: unlike the protobuf/Thrift/
// Starlark libraries, yaml.v3 both parses and re-emits, preserving key
// order, so this rule does a genuine structural reformat rather than
// the package's line-based fallback.
func YAMLBlockRule() engine.Rule {
	return engine.RuleFunc{
		RuleName: "yamlblock",
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			content, ok := literalContent(node, cst.KindCmdString)
			if !ok {
				return accept()
			}
			lang, payload, ok := cmdMarker(content.Text)
			if !ok || lang != "yaml" {
				return accept()
			}
			var doc yaml.Node
			if err := yaml.Unmarshal(payload, &doc); err != nil {
				return accept()
			}
			var buf bytes.Buffer
			enc := yaml.NewEncoder(&buf)
			enc.SetIndent(2)
			if err := enc.Encode(&doc); err != nil {
				return accept()
			}
			_ = enc.Close()
			rebuilt := append([]byte("#!yaml\n"), buf.Bytes()...)
			if string(rebuilt) == string(content.Text) {
				return accept()
			}
			return replaceLiteralContent(ctx, node, content, rebuilt)
		},
	}
}
