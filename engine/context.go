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
	"bytes"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/fmtio"
)

// Flags are the user-visible knobs the caller can set on a Context.
// The engine itself only interprets Assert and Debug (which widens
// Assert and Verbose); the rest are visible to rules and to the CLI
// driver but do not change engine behavior.
type Flags struct {
	Quiet   bool
	Verbose bool
	Assert  bool
	Debug   bool
	Check   bool
	Diff    bool
}

// resolve applies the one-way widening Debug implies Assert+Verbose.
func (f Flags) resolve() Flags {
	if f.Debug {
		f.Assert = true
		f.Verbose = true
	}
	return f
}

// Context is the mutable traversal state threaded through a single
// formatting run. It is single-use: construct one with NewContext, pass
// it to FormatTree once, then read Out/FmtTree for the result.
type Context struct {
	// SrcStr is the original source text, constant after construction.
	SrcStr string
	// SrcTree is the parsed input CST, constant after construction.
	SrcTree cst.Node
	// SrcIO is a read cursor over the source bytes, constant after
	// construction; rules may use it to inspect raw source context that
	// fell outside their own node (e.g. lookahead past a span).
	SrcIO *bytes.Reader

	// Out is the mutable output buffer; its cursor moves with the
	// traversal and is the only thing a rule is allowed to write
	// through (via Out.ReplaceBytes).
	Out *fmtio.Buffer

	// FmtTree is the final rewritten root. It is the zero Node until
	// FormatTree completes.
	FmtTree cst.Node

	// PrevSibling/NextSibling hold per-node sibling context during
	// recursion; both are nil at the top level. PrevSibling reflects
	// the already-formatted (possibly rewritten) predecessor;
	// NextSibling reflects the pre-formatted original successor. This
	// asymmetry is intentional: a rule can inspect what was actually
	// emitted to its left, but its right neighbor hasn't been formatted
	// yet. Only the children driver mutates these fields.
	PrevSibling *cst.Node
	NextSibling *cst.Node

	// Flags are the user-visible knobs (see Flags).
	Flags Flags

	// Pipeline is the ordered rule sequence run on every node.
	Pipeline Pipeline

	rootRewriteCount int
}

// NewContext constructs a Context from already-parsed source: src is the
// original text, tree is its CST (parsing happens in the caller, per
// this package's scope -- the concrete parser is an external
// collaborator from the engine's perspective; see package parse for the
// one this repository ships). Parsing warnings, if the caller collected
// any, are intentionally not threaded through here.
func NewContext(src string, tree cst.Node, pipeline Pipeline, flags Flags) *Context {
	flags = flags.resolve()
	return &Context{
		SrcStr:   src,
		SrcTree:  tree,
		SrcIO:    bytes.NewReader([]byte(src)),
		Out:      fmtio.New([]byte(src)),
		Flags:    flags,
		Pipeline: pipeline,
	}
}
