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

package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runestone-lang/runestone/cst"
)

// renderBytes is duplicated (tiny, test-only) rather than imported from
// package rules: parse's tests have no other reason to depend on rules
// (whose own tests import parse), so the helper is copied instead.
func renderBytes(n cst.Node) []byte {
	if cst.IsLeaf(n) {
		return n.Text
	}
	var out []byte
	for _, k := range cst.VerifiedKids(n) {
		out = append(out, renderBytes(k)...)
	}
	return out
}

func TestParseRoundTripsSourceBytesExactly(t *testing.T) {
	tests := []string{
		"",
		"x = 1",
		"x = 1 + 2 * 3\n",
		"if a\n  b = 1\nelse\n  b = 2\nend\n",
		"while i < 10\n  i = i + 1\nend\n",
		"for i in 1:10\n  print(i)\nend\n",
		"for i = range\n  print(i)\nend\n",
		"function add(a, b)\n  return a + b\nend\n",
		"struct Point\n  x\n  y\nend\n",
		"[1, 2, 3]\n",
		"[x for x in xs]\n",
		"\"hello $(name) world\"\n",
		"`#!build\nhi\n`\n",
		"# just a comment\n",
	}
	for _, src := range tests {
		tree, err := Parse(src)
		require.NoError(t, err, "src=%q", src)
		require.Equal(t, src, string(renderBytes(tree)), "src=%q", src)
		require.Equal(t, len(src), tree.Span, "src=%q", src)
	}
}

func TestParseRejectsUnterminatedString(t *testing.T) {
	_, err := Parse(`"unterminated`)
	require.Error(t, err)
}

func TestParseRejectsMismatchedBlockEnd(t *testing.T) {
	_, err := Parse("if x\n  y = 1\n")
	require.Error(t, err)
}

func TestParseKeywordStmt(t *testing.T) {
	tree, err := Parse("function f()\n  return 1\nend\n")
	require.NoError(t, err)
	require.Equal(t, "function f()\n  return 1\nend\n", string(renderBytes(tree)))
}
