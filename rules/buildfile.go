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
	"github.com/bazelbuild/buildtools/build"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
)

// BuildFileRule reformats a cmdstring literal marked `#!build` as an
// embedded BUILD-file-shaped module manifest, parsing it with
// build.Parse and re-emitting it with build.Format. Unlike the protobuf,
// Thrift and Starlark marker rules, buildtools/build genuinely
// round-trips -- its
// parse/format pair is the direct model this whole engine's
// splice/accept loop generalizes (see SPEC_FULL.md §D.5.6).
func BuildFileRule() engine.Rule {
	return engine.RuleFunc{
		RuleName: "buildfile",
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			content, ok := literalContent(node, cst.KindCmdString)
			if !ok {
				return accept()
			}
			lang, payload, ok := cmdMarker(content.Text)
			if !ok || lang != "build" {
				return accept()
			}
			f, err := build.Parse("embedded.BUILD", payload)
			if err != nil {
				return accept()
			}
			formatted := build.Format(f)
			rebuilt := append([]byte("#!build\n"), formatted...)
			if string(rebuilt) == string(content.Text) {
				return accept()
			}
			return replaceLiteralContent(ctx, node, content, rebuilt)
		},
	}
}
