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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runestone-lang/runestone/engine"
	"github.com/runestone-lang/runestone/parse"
)

func format(t *testing.T, src string, pipeline engine.Pipeline) string {
	t.Helper()
	tree, err := parse.Parse(src)
	require.NoError(t, err)
	ctx := engine.NewContext(src, tree, pipeline, engine.Flags{Assert: true})
	require.NoError(t, engine.FormatTree(ctx))
	return string(ctx.Out.Bytes())
}

func TestTrimTrailingWhitespace(t *testing.T) {
	got := format(t, "x = 1   \ny = 2\n", engine.Pipeline{TrimTrailingWhitespace()})
	require.Equal(t, "x = 1\ny = 2\n", got)
}

func TestTrimTrailingWhitespaceIsIdempotent(t *testing.T) {
	once := format(t, "x = 1   \n", engine.Pipeline{TrimTrailingWhitespace()})
	twice := format(t, once, engine.Pipeline{TrimTrailingWhitespace()})
	require.Equal(t, once, twice)
}

func TestNormalizeIntLiteral(t *testing.T) {
	got := format(t, "x = 0XFF\n", engine.Pipeline{NormalizeIntLiteral()})
	require.Equal(t, "x = 0xff\n", got)
}

func TestNormalizeFloatLiteral(t *testing.T) {
	got := format(t, "x = 1E10\n", engine.Pipeline{NormalizeFloatLiteral()})
	require.Equal(t, "x = 1e10\n", got)
}

func TestSpaceAroundAssignmentInsertsMissingSpace(t *testing.T) {
	got := format(t, "x=1\n", engine.Pipeline{SpaceAroundAssignment()})
	require.Equal(t, "x = 1\n", got)
}

func TestSpaceAroundAssignmentCollapsesExtraSpace(t *testing.T) {
	got := format(t, "x   =   1\n", engine.Pipeline{SpaceAroundAssignment()})
	require.Equal(t, "x = 1\n", got)
}

func TestSpaceAroundComparison(t *testing.T) {
	got := format(t, "while a<b\nend\n", engine.Pipeline{SpaceAroundComparison()})
	require.Equal(t, "while a < b\nend\n", got)
}

func TestSpaceAroundColonRemovesPadding(t *testing.T) {
	got := format(t, "x = 1 : 10\n", engine.Pipeline{SpaceAroundColon()})
	require.Equal(t, "x = 1:10\n", got)
}

func TestNormalizeForInRewritesEqualsForm(t *testing.T) {
	got := format(t, "for i=range\n  print(i)\nend\n", engine.Pipeline{NormalizeForIn()})
	require.Equal(t, "for i in range\n  print(i)\nend\n", got)
}

func TestDefaultPipelineConvergesOnMixedInput(t *testing.T) {
	got := format(t, "x=0XAB   \nfor i=1:10\n  y   =   i\nend\n", DefaultPipeline())
	require.Equal(t, "x = 0xab\nfor i in 1:10\n  y = i\nend\n", got)
}

// SpaceAroundBinaryOperator and SpaceAroundColon must not both claim the
// range operator: one rule inserting padding the other rule removes,
// forever, is exactly the oscillation the pipeline's convergence bound
// exists to catch.
func TestSpaceAroundBinaryOperatorDoesNotFightColonSpacing(t *testing.T) {
	got := format(t, "x = 1:10\n", engine.Pipeline{SpaceAroundBinaryOperator(), SpaceAroundColon()})
	require.Equal(t, "x = 1:10\n", got)

	got = format(t, "x = 1 : 10\n", engine.Pipeline{SpaceAroundBinaryOperator(), SpaceAroundColon()})
	require.Equal(t, "x = 1:10\n", got)
}
