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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runestone-lang/runestone/cst"
)

// emptyPipeline accepts every node verbatim, exercising the
// "already formatted" fast path with no rules at all.
func emptyPipeline() Pipeline { return Pipeline{} }

func TestFormatTreeRoundTripsWhenNoRuleChangesAnything(t *testing.T) {
	src := "a + b"
	tree := cst.NewInner(cst.KindBlock, 0, []cst.Node{
		cst.NewLeaf(cst.KindIdent, 0, []byte("a")),
		cst.NewLeaf(cst.KindWhitespace, 0, []byte(" ")),
		cst.NewLeaf(cst.KindOperatorLeaf, 0, []byte("+")),
		cst.NewLeaf(cst.KindWhitespace, 0, []byte(" ")),
		cst.NewLeaf(cst.KindIdent, 0, []byte("b")),
	}, 0)

	ctx := NewContext(src, tree, emptyPipeline(), Flags{Assert: true})
	require.NoError(t, FormatTree(ctx))
	require.Equal(t, src, string(ctx.Out.Bytes()))
}

// upcaseIdentRule replaces every Ident leaf whose text is not already
// upper-case with its upper-cased form, so applying it to its own
// output is a no-op (idempotence), and it is used below to exercise the
// Replaced path through formatNodeWithKids.
func upcaseIdentRule() Rule {
	return RuleFunc{
		RuleName: "upcase-ident",
		Fn: func(ctx *Context, node cst.Node) Outcome {
			if node.Head.Kind != cst.KindIdent {
				return AcceptedOutcome()
			}
			up := []byte(upperASCII(string(node.Text)))
			if string(up) == string(node.Text) {
				return AcceptedOutcome()
			}
			ctx.Out.ReplaceBytes(up, node.Span)
			return ReplacedOutcome(cst.NewLeaf(cst.KindIdent, node.Head.Flags, up))
		},
	}
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func TestFormatTreeAppliesRuleToEveryLeaf(t *testing.T) {
	src := "foo bar"
	tree := cst.NewInner(cst.KindBlock, 0, []cst.Node{
		cst.NewLeaf(cst.KindIdent, 0, []byte("foo")),
		cst.NewLeaf(cst.KindWhitespace, 0, []byte(" ")),
		cst.NewLeaf(cst.KindIdent, 0, []byte("bar")),
	}, 0)

	ctx := NewContext(src, tree, Pipeline{upcaseIdentRule()}, Flags{Assert: true})
	require.NoError(t, FormatTree(ctx))
	require.Equal(t, "FOO BAR", string(ctx.Out.Bytes()))
}

// rootAlwaysReplacesRule never converges at the root, so FormatTree must
// report a ConvergenceError rather than looping forever.
func rootAlwaysReplacesRule() Rule {
	return RuleFunc{
		RuleName: "always-replace",
		Fn: func(ctx *Context, node cst.Node) Outcome {
			if node.Head.Kind != cst.KindBlock {
				return AcceptedOutcome()
			}
			ctx.Out.ReplaceBytes(ctx.Out.Bytes()[ctx.Out.Pos():ctx.Out.Pos()+node.Span], node.Span)
			return ReplacedOutcome(node)
		},
	}
}

func TestFormatTreeRootConvergenceBound(t *testing.T) {
	src := "x"
	tree := cst.NewInner(cst.KindBlock, 0, []cst.Node{
		cst.NewLeaf(cst.KindIdent, 0, []byte("x")),
	}, 0)
	ctx := NewContext(src, tree, Pipeline{rootAlwaysReplacesRule()}, Flags{})
	err := FormatTree(ctx)
	require.Error(t, err)
	var convErr *ConvergenceError
	require.ErrorAs(t, err, &convErr)
}

func TestFormatTreeUnhandledKindError(t *testing.T) {
	tree := cst.NewLeaf(cst.Kind(9999), 0, []byte("?"))
	ctx := NewContext("?", tree, emptyPipeline(), Flags{})
	err := FormatTree(ctx)
	require.Error(t, err)
	var unhandled *UnhandledKindError
	require.ErrorAs(t, err, &unhandled)
}
