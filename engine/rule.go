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

// Rule is the contract every rewrite rule (the "runestone" rules) must
// satisfy: a pure function of (Context, Node) returning one of the three
// outcomes. A rule may read ctx.PrevSibling/ctx.NextSibling and the user
// flags, but must not mutate them. On Accepted it must not have written
// to ctx.Out. On Replaced(n) it must have spliced exactly span(n) bytes
// at the entry cursor position via ctx.Out.ReplaceBytes and left the
// cursor at its entry position. Applying a rule to its own output must
// return Accepted (idempotence); this is the crux of fixed-point
// termination (see Pipeline.Run).
type Rule interface {
	// Name identifies the rule for diagnostics; it plays no role in the
	// engine's own logic.
	Name() string
	// Apply runs the rule once on node in the given Context.
	Apply(ctx *Context, node cst.Node) Outcome
}

// RuleFunc adapts a plain function to the Rule interface, the way a
// single-method interface is commonly satisfied in this codebase's
// style without a dedicated named type per rule.
type RuleFunc struct {
	RuleName string
	Fn       func(ctx *Context, node cst.Node) Outcome
}

func (r RuleFunc) Name() string { return r.RuleName }

func (r RuleFunc) Apply(ctx *Context, node cst.Node) Outcome { return r.Fn(ctx, node) }

// Pipeline is an ordered sequence of rules. The engine has no built-in
// knowledge of any particular rule; it only knows how to run the
// sequence and act on the first non-Accepted outcome.
type Pipeline []Rule

// Run executes each rule in order on (ctx, node). The first rule to
// return a non-Accepted outcome wins; its outcome is returned
// immediately without running the remaining rules. If every rule
// returns Accepted, Run returns Accepted.
func (p Pipeline) Run(ctx *Context, node cst.Node) Outcome {
	for _, r := range p {
		out := r.Apply(ctx, node)
		if out.Kind != Accepted {
			return out
		}
	}
	return AcceptedOutcome()
}
