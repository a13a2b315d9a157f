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

package cst

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// kindVisitor records the pre-order sequence of Kinds Walk visits.
type kindVisitor struct {
	pre []Kind
}

func (v *kindVisitor) Pre(n Node) error {
	v.pre = append(v.pre, n.Head.Kind)
	return nil
}

func (v *kindVisitor) Post(Node) error { return nil }

func TestWalkVisitsPreOrder(t *testing.T) {
	a := NewLeaf(KindIdent, 0, []byte("a"))
	ws := NewLeaf(KindWhitespace, 0, []byte(" "))
	b := NewLeaf(KindIdent, 0, []byte("b"))
	tree := NewInner(KindBlock, 0, []Node{a, ws, b}, 0)

	v := &kindVisitor{}
	require.NoError(t, Walk(v, tree))

	want := []Kind{KindBlock, KindIdent, KindWhitespace, KindIdent}
	// cmp.Diff gives a readable element-by-element diff on mismatch,
	// which require.Equal's reflect-based comparison doesn't for slices
	// of this size.
	if diff := cmp.Diff(want, v.pre); diff != "" {
		t.Fatalf("pre-order kind sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkOnLeafVisitsOnlyItself(t *testing.T) {
	leaf := NewLeaf(KindInt, 0, []byte("1"))
	v := &kindVisitor{}
	require.NoError(t, Walk(v, leaf))
	require.Equal(t, []Kind{KindInt}, v.pre)
}

func TestDumpIncludesKindNamesAndSpans(t *testing.T) {
	a := NewLeaf(KindIdent, 0, []byte("ab"))
	b := NewLeaf(KindInt, 0, []byte("1"))
	tree := NewInner(KindBlock, 0, []Node{a, b}, 0)

	got := Dump(tree)
	require.Contains(t, got, "[0..3)")
	require.Contains(t, got, "  "+KindIdent.String()+" [0..2)")
	require.Contains(t, got, "  "+KindInt.String()+" [2..3)")
}
