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

// Package rules implements the rewrite rules run by the engine's
// Pipeline: the eight canonical whitespace/literal rules every pipeline
// carries, plus the domain-extension rules (in this same package) that
// reformat embedded foreign-language literals.
package rules

import (
	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
)

// DefaultPipeline returns the eight canonical rules in their canonical
// order: later rules see the effect of earlier ones within the same
// pass, and the whole pipeline re-runs on any rule's Replaced output
// until every rule returns Accepted (see engine.Pipeline.Run and
// engine.formatNodeWithKids).
func DefaultPipeline() engine.Pipeline {
	return engine.Pipeline{
		TrimTrailingWhitespace(),
		NormalizeIntLiteral(),
		NormalizeFloatLiteral(),
		SpaceAroundBinaryOperator(),
		SpaceAroundComparison(),
		SpaceAroundAssignment(),
		SpaceAroundColon(),
		NormalizeForIn(),
	}
}

// ExtendedPipeline returns DefaultPipeline's rules followed by the
// domain rules passed in, in the order given; with no arguments it is
// just DefaultPipeline (see AllDomainRules for the full set, defined in
// sqlstring.go, protobuftext.go, thriftidl.go, yamlblock.go,
// starlarkexpr.go, and buildfile.go). CLI callers who want embedded foreign-literal
// reformatting ask for this pipeline explicitly; DefaultPipeline alone
// never reaches into a string literal's content.
func ExtendedPipeline(domain ...engine.Rule) engine.Pipeline {
	p := DefaultPipeline()
	p = append(p, domain...)
	return p
}

// AllDomainRules returns every marker/probe-driven domain-extension
// rule this package ships, in the order listed in SPEC_FULL.md §D.5.
// CLI callers pass this to ExtendedPipeline to get the full pipeline.
func AllDomainRules() []engine.Rule {
	return []engine.Rule{
		SQLStringRule(),
		ProtobufTextRule(),
		ThriftIDLRule(),
		YAMLBlockRule(),
		StarlarkExprRule(),
		BuildFileRule(),
	}
}

// accept is the shorthand most rules end with: "this node is fine as
// Node already stands, look at the next one."
func accept() engine.Outcome { return engine.AcceptedOutcome() }

// replaceLeaf splices newText over node's current span at the cursor and
// returns a Replaced outcome carrying the updated leaf, per the Rule
// contract (ctx.Out already holds exactly span(node) bytes at the
// cursor; see fmtio.Buffer.ReplaceBytes).
func replaceLeaf(ctx *engine.Context, node cst.Node, newText []byte, kind cst.Kind, flags cst.Flags) engine.Outcome {
	ctx.Out.ReplaceBytes(newText, node.Span)
	return engine.ReplacedOutcome(cst.NewLeaf(kind, flags, newText))
}
