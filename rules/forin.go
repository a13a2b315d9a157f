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

// NormalizeForIn rewrites a for-loop header written with the "=" form
// (`for i = iter`) into the "in" form (`for i in iter`), the
// canonical spelling this pipeline converges on. A header already
// spelled with "in" is left alone.
func NormalizeForIn() engine.Rule {
	return engine.RuleFunc{
		RuleName: "normalize-for-in",
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			if node.Head.Kind != cst.KindFor {
				return accept()
			}
			kids := cst.VerifiedKids(node)

			// kids[0] is "for"; find the first non-trivia child after
			// it (the loop identifier), then the next non-trivia child
			// after that (the "in"/"=" marker).
			identIdx := nextSignificant(kids, 1)
			if identIdx < 0 {
				return accept()
			}
			opIdx := nextSignificant(kids, identIdx+1)
			if opIdx < 0 || kids[opIdx].Head.Kind != cst.KindOperatorLeaf || string(kids[opIdx].Text) != "=" {
				return accept()
			}

			newKids, ok := rewriteInfixPadding(kids, opIdx, " ")
			if !ok {
				// padding already single-space; still need to swap the
				// operator spelling below, so fall through with the
				// original slice.
				newKids = append([]cst.Node(nil), kids...)
			}
			// locate the operator again in newKids: rewriteInfixPadding
			// preserves relative order and never removes the operator
			// itself, so its index shifts by at most the net change in
			// padding on its left.
			newOpIdx := nextSignificant(newKids, identIdx+1)
			newKids[newOpIdx] = cst.NewLeaf(cst.KindKeyword, 0, []byte("in"))

			newNode := cst.MakeNode(node, newKids, node.Tags)
			ctx.Out.ReplaceBytes(renderBytes(newNode), node.Span)
			return engine.ReplacedOutcome(newNode)
		},
	}
}

func nextSignificant(kids []cst.Node, from int) int {
	for i := from; i < len(kids); i++ {
		if !cst.IsTrivia(kids[i]) {
			return i
		}
	}
	return -1
}
