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

// findOperatorIndex locates the operator child of an infix call, the
// same way cst.InfixOpCallOp does, but returns its index in kids rather
// than the node itself, since spacing rules need to rewrite the trivia
// runs on either side of it.
func findOperatorIndex(kids []cst.Node) int {
	seenLeftOperand := false
	for i, k := range kids {
		if k.Head.Kind == cst.KindWhitespace || k.Head.Kind == cst.KindNewlineWs {
			continue
		}
		if !seenLeftOperand {
			seenLeftOperand = true
			continue
		}
		if cst.IsOperatorLeaf(k) || k.Head.Kind == cst.KindOperator {
			return i
		}
	}
	return -1
}

// rewriteInfixPadding rebuilds an infix call's kids so that exactly
// `pad` sits between the operator and its neighboring operand on each
// side, leaving everything else (including the operands themselves)
// untouched. The trivia run on either side may be absent entirely (a
// tightly-written `a+b`), in which case it is inserted. It declines
// (returns ok=false) if either run contains a newline or a comment,
// since those carry intent this rule does not try to interpret.
func rewriteInfixPadding(kids []cst.Node, opIdx int, pad string) ([]cst.Node, bool) {
	if opIdx <= 0 || opIdx >= len(kids)-1 {
		return nil, false
	}

	preStart := opIdx
	for preStart > 0 && isPad(kids[preStart-1]) {
		preStart--
	}
	if preStart > 0 && isNewlineOrComment(kids[preStart-1]) {
		return nil, false
	}

	postEnd := opIdx + 1
	for postEnd < len(kids) && isPad(kids[postEnd]) {
		postEnd++
	}
	if postEnd < len(kids) && isNewlineOrComment(kids[postEnd]) {
		return nil, false
	}

	curBefore := concatText(kids[preStart:opIdx])
	curAfter := concatText(kids[opIdx+1 : postEnd])
	if curBefore == pad && curAfter == pad {
		return nil, false
	}

	out := make([]cst.Node, 0, len(kids)+2)
	out = append(out, kids[:preStart]...)
	if pad != "" {
		out = append(out, whitespaceLeaf(pad))
	}
	out = append(out, kids[opIdx])
	if pad != "" {
		out = append(out, whitespaceLeaf(pad))
	}
	out = append(out, kids[postEnd:]...)
	return out, true
}

func concatText(kids []cst.Node) string {
	var out []byte
	for _, k := range kids {
		out = append(out, k.Text...)
	}
	return string(out)
}

// infixSpacingRule builds a Rule that enforces `pad` spacing around the
// operator of every infix Call node for which match reports true.
func infixSpacingRule(name string, pad string, match func(cst.Node) bool) engine.Rule {
	return engine.RuleFunc{
		RuleName: name,
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			if !cst.IsInfixOpCall(node) || !match(node) {
				return accept()
			}
			kids := cst.VerifiedKids(node)
			opIdx := findOperatorIndex(kids)
			if opIdx < 0 {
				return accept()
			}
			newKids, ok := rewriteInfixPadding(kids, opIdx, pad)
			if !ok {
				return accept()
			}
			newNode := cst.MakeNode(node, newKids, node.Tags)
			ctx.Out.ReplaceBytes(renderBytes(newNode), node.Span)
			return engine.ReplacedOutcome(newNode)
		},
	}
}

// SpaceAroundAssignment ensures exactly one space on each side of an
// assignment operator (=, +=, -=, ...).
func SpaceAroundAssignment() engine.Rule {
	return infixSpacingRule("space-around-assignment", " ", cst.IsAssignment)
}

// SpaceAroundComparison ensures exactly one space on each side of a
// comparison operator (==, !=, <, <=, >, >=).
func SpaceAroundComparison() engine.Rule {
	return infixSpacingRule("space-around-comparison", " ", func(n cst.Node) bool {
		kids := cst.VerifiedKids(n)
		opIdx := findOperatorIndex(kids)
		return opIdx >= 0 && cst.IsComparisonLeaf(kids[opIdx])
	})
}

// isRangeOperatorText reports whether text is one of the operators
// SpaceAroundColon owns instead, excluded from SpaceAroundBinaryOperator's
// match so the two rules never fight over the same operator (see
// SpaceAroundColon).
func isRangeOperatorText(text string) bool {
	return text == ":" || text == ".."
}

// SpaceAroundBinaryOperator ensures exactly one space on each side of
// every other infix operator call (arithmetic, logical) not already
// covered by assignment, comparison, or range spacing.
func SpaceAroundBinaryOperator() engine.Rule {
	return infixSpacingRule("space-around-binary-operator", " ", func(n cst.Node) bool {
		if cst.IsAssignment(n) {
			return false
		}
		kids := cst.VerifiedKids(n)
		opIdx := findOperatorIndex(kids)
		if opIdx < 0 || cst.IsComparisonLeaf(kids[opIdx]) {
			return false
		}
		return !isRangeOperatorText(string(kids[opIdx].Text))
	})
}

// SpaceAroundColon removes padding around the ":" and ".." range
// operators (written tight, e.g. 1:10, by convention in this language).
func SpaceAroundColon() engine.Rule {
	return infixSpacingRule("space-around-colon", "", func(n cst.Node) bool {
		kids := cst.VerifiedKids(n)
		opIdx := findOperatorIndex(kids)
		return opIdx >= 0 && kids[opIdx].Head.Kind == cst.KindOperatorLeaf && isRangeOperatorText(string(kids[opIdx].Text))
	})
}
