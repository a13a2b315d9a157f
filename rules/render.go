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

import "github.com/runestone-lang/runestone/cst"

// renderBytes concatenates the bytes a node currently stands for. Rules
// that rewrite a composite node's internal trivia layout (rather than a
// single leaf) need this to build the replacement bytes they splice
// over the node's full span.
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

func whitespaceLeaf(text string) cst.Node {
	if text == "" {
		return cst.NewLeaf(cst.KindWhitespace, 0, []byte{})
	}
	return cst.NewLeaf(cst.KindWhitespace, 0, []byte(text))
}

// isPad reports whether n is ordinary (non-newline, non-comment)
// horizontal whitespace -- the only kind of trivia run this package's
// spacing rules will collapse or insert. A run touching a newline or a
// comment is left untouched, since comments and line breaks around an
// operator usually carry intent a formatter should not collapse.
func isPad(n cst.Node) bool {
	return n.Head.Kind == cst.KindWhitespace
}

func isNewlineOrComment(n cst.Node) bool {
	return n.Head.Kind == cst.KindNewlineWs || n.Head.Kind == cst.KindComment
}
