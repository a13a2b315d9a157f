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

// Package engine implements the tree-rewriting formatting engine: a
// fixed-point traversal over a cst.Node tree that applies a Pipeline of
// rewrite rules while a mirrored fmtio.Buffer is kept byte-aligned with
// the tree.
package engine

import (
	"github.com/runestone-lang/runestone/cst"
)

const (
	_childIterationLimit = 1000
	_rootIterationLimit  = 2
)

// isAlwaysRecursiveComposite reports whether n's kind always recurses
// into its children once the rule pipeline accepts it (data model class
// (a): block, call, tuple, array, string, cmdstring, keyword statement).
func isAlwaysRecursiveComposite(k cst.Kind) bool {
	switch k {
	case cst.KindBlock, cst.KindCall, cst.KindTuple, cst.KindArray, cst.KindString, cst.KindCmdString, cst.KindKeywordStmt:
		return true
	default:
		return false
	}
}

// isConditionallyRecursiveComposite reports whether n's kind recurses
// into its children only when not marked trivia (data model class (b)).
func isConditionallyRecursiveComposite(k cst.Kind) bool {
	switch k {
	case cst.KindFunction, cst.KindIf, cst.KindElse, cst.KindWhile, cst.KindFor,
		cst.KindStruct, cst.KindModule, cst.KindMacroCall, cst.KindGenerator,
		cst.KindComprehension, cst.KindQuote:
		return true
	default:
		return false
	}
}

// formatNode is format_node!: it dispatches node to the rule pipeline,
// then (for composite kinds) recurses via formatNodeWithKids.
func formatNode(ctx *Context, node cst.Node) (Outcome, error) {
	out := ctx.Pipeline.Run(ctx, node)
	if out.Kind != Accepted {
		return out, nil
	}

	k := node.Head.Kind
	switch {
	case isAlwaysRecursiveComposite(k):
		return formatNodeWithKids(ctx, node)
	case isConditionallyRecursiveComposite(k):
		if node.Head.Flags.Has(cst.FlagTrivia) {
			return acceptVerbatim(ctx, node)
		}
		return formatNodeWithKids(ctx, node)
	case k == cst.KindOperator:
		return formatNodeWithKids(ctx, node)
	case k == cst.KindWhitespace, k == cst.KindNewlineWs, k == cst.KindComment:
		return acceptVerbatim(ctx, node)
	case k == cst.KindIdent, k == cst.KindInt, k == cst.KindFloat, k == cst.KindStringContent,
		k == cst.KindKeyword, k == cst.KindPunct, k == cst.KindOperatorLeaf:
		return acceptVerbatim(ctx, node)
	default:
		return Outcome{}, &UnhandledKindError{Kind: k, PartialOutput: append([]byte(nil), ctx.Out.Bytes()...)}
	}
}

// acceptVerbatim advances the output cursor by span(node) and returns
// Accepted, per the contract that Accepted means "the bytes already at
// the cursor are final for this subtree".
func acceptVerbatim(ctx *Context, node cst.Node) (Outcome, error) {
	ctx.Out.Advance(node.Span)
	return AcceptedOutcome(), nil
}

// formatNodeWithKids is format_node_with_kids!: it iterates node's
// children with sibling context, re-running formatNode on each child to
// a fixed point, and produces a new parent node if any child changed.
func formatNodeWithKids(ctx *Context, node cst.Node) (Outcome, error) {
	kids := cst.VerifiedKids(node)

	savedPrev, savedNext := ctx.PrevSibling, ctx.NextSibling
	defer func() { ctx.PrevSibling, ctx.NextSibling = savedPrev, savedNext }()

	var newKids []cst.Node // nil until the first child actually changes
	changed := false

	for i := 0; i < len(kids); i++ {
		if i > 0 {
			var prev cst.Node
			if changed {
				prev = newKids[i-1]
			} else {
				prev = kids[i-1]
			}
			ctx.PrevSibling = &prev
		} else {
			ctx.PrevSibling = nil
		}
		if i+1 < len(kids) {
			next := kids[i+1]
			ctx.NextSibling = &next
		} else {
			ctx.NextSibling = nil
		}

		kid := kids[i]
		iterations := 0
		for {
			fmtPos := ctx.Out.Pos()
			out, err := formatNode(ctx, kid)
			if err != nil {
				return Outcome{}, err
			}
			switch out.Kind {
			case Accepted:
				if ctx.Flags.Assert && ctx.Out.Pos() != fmtPos+kid.Span {
					return Outcome{}, &AssertionError{
						Pos: ctx.Out.Pos(),
						Msg: "cursor did not advance by span(node) on Accepted",
					}
				}
			case Replaced:
				ctx.Out.Seek(fmtPos)
				kid = out.Node
				iterations++
				if iterations >= _childIterationLimit {
					return Outcome{}, &ConvergenceError{Scope: "child", Limit: _childIterationLimit}
				}
				continue
			case Deleted:
				return Outcome{}, &DeletedVariantError{}
			}
			break
		}

		if !changed && kidChanged(kids[i], kid) {
			changed = true
			newKids = make([]cst.Node, i, len(kids))
			copy(newKids, kids[:i])
		}
		if changed {
			newKids = append(newKids, kid)
		}
	}

	if changed {
		return ReplacedOutcome(cst.MakeNode(node, newKids, node.Tags)), nil
	}
	return AcceptedOutcome(), nil
}

// kidChanged reports whether a child was actually rewritten, by
// comparing the post-loop kid with the original structurally: head,
// span, tags, and (via sameLeafBytes) every leaf's bytes throughout the
// subtree. A rewrite deep inside a composite child that keeps the
// child's span unchanged is therefore still detected.
func kidChanged(orig, after cst.Node) bool {
	return orig.Span != after.Span ||
		orig.Head != after.Head ||
		orig.Tags != after.Tags ||
		!sameLeafBytes(orig, after)
}

func sameLeafBytes(a, b cst.Node) bool {
	if cst.IsLeaf(a) != cst.IsLeaf(b) {
		return false
	}
	if !cst.IsLeaf(a) {
		ak, bk := cst.VerifiedKids(a), cst.VerifiedKids(b)
		if len(ak) != len(bk) {
			return false
		}
		for i := range ak {
			if kidChanged(ak[i], bk[i]) {
				return false
			}
		}
		return true
	}
	if len(a.Text) != len(b.Text) {
		return false
	}
	for i := range a.Text {
		if a.Text[i] != b.Text[i] {
			return false
		}
	}
	return true
}

// FormatTree is format_tree!: starting from ctx.Out as NewContext seeded
// it (a copy of the source), it rewinds the cursor to 0, runs formatNode
// on the root to a fixed point (at most once successfully replaced),
// truncates the output to the final span, and sets ctx.FmtTree.
func FormatTree(ctx *Context) error {
	ctx.Out.Seek(0)
	root := ctx.SrcTree

	for {
		out, err := formatNode(ctx, root)
		if err != nil {
			return err
		}
		switch out.Kind {
		case Accepted:
			if ctx.Flags.Assert && ctx.Out.Pos() != root.Span {
				return &AssertionError{Pos: ctx.Out.Pos(), Msg: "root cursor did not advance by span(root) on Accepted"}
			}
			ctx.Out.Truncate(root.Span)
			ctx.FmtTree = root
			return nil
		case Replaced:
			ctx.rootRewriteCount++
			if ctx.rootRewriteCount >= _rootIterationLimit {
				return &ConvergenceError{Scope: "root", Limit: _rootIterationLimit}
			}
			ctx.Out.Seek(0)
			root = out.Node
			continue
		case Deleted:
			return &RootDeletionError{}
		}
	}
}
