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
	"bytes"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
)

// cmdMarker is the leading "#!<lang>\n" marker a cmdstring's content may
// carry (see SPEC_FULL.md §D.6). It is recognized here, in the rules
// package, rather than by the lexer: the lexer only ever hands back raw
// KindStringContent bytes, and a domain rule is the natural place to
// decide what those bytes mean.
func cmdMarker(content []byte) (lang string, payload []byte, ok bool) {
	if !bytes.HasPrefix(content, []byte("#!")) {
		return "", nil, false
	}
	rest := content[2:]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 {
		return "", nil, false
	}
	return string(rest[:nl]), rest[nl+1:], true
}

// literalContent reports whether node is a single-segment string or
// cmdstring literal (no interpolation) and returns its content leaf and
// bytes. Literals containing interpolated expressions are left to the
// ordinary per-child traversal; a domain rule only ever touches a
// literal whose entire body is one contiguous run of raw bytes.
func literalContent(node cst.Node, wantKind cst.Kind) (content cst.Node, ok bool) {
	if node.Head.Kind != wantKind {
		return cst.Node{}, false
	}
	kids := cst.VerifiedKids(node)
	if len(kids) != 3 {
		return cst.Node{}, false
	}
	if kids[1].Head.Kind != cst.KindStringContent {
		return cst.Node{}, false
	}
	return kids[1], true
}

// replaceLiteralContent replaces the literal's content leaf (kids[1])
// with newContentText, keeping the surrounding quote leaves, splices the
// re-rendered literal over the whole node's span, and returns the
// Replaced outcome for the whole literal node. The content leaf includes
// any "#!<lang>\n" marker, so newContentText must carry it too.
func replaceLiteralContent(ctx *engine.Context, node cst.Node, content cst.Node, newContentText []byte) engine.Outcome {
	kids := cst.VerifiedKids(node)
	newContent := cst.NewLeaf(cst.KindStringContent, 0, newContentText)
	newKids := []cst.Node{kids[0], newContent, kids[2]}
	newNode := cst.MakeNode(node, newKids, node.Tags)
	ctx.Out.ReplaceBytes(renderBytes(newNode), node.Span)
	return engine.ReplacedOutcome(newNode)
}

// normalizeLineWhitespace is the conservative, library-free fallback
// this package uses for embedded languages whose Go libraries parse but
// do not offer a printer (protobuf, Thrift IDL, Starlark expressions --
// see SPEC_FULL.md §D.5): it trims trailing horizontal whitespace from
// every line and collapses runs of more than one blank line down to
// one, without touching anything a real pretty-printer would decide
// (indentation width, token spacing). This is the stdlib-only piece of
// each of those three rules; DESIGN.md records why no library fills
// the gap.
func normalizeLineWhitespace(src []byte) []byte {
	lines := bytes.Split(src, []byte("\n"))
	out := make([][]byte, 0, len(lines))
	blank := false
	for _, line := range lines {
		trimmed := bytes.TrimRight(line, " \t")
		if len(trimmed) == 0 {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, trimmed)
	}
	return bytes.Join(out, []byte("\n"))
}
