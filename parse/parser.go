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

// Package parse is the concrete-parser external collaborator the
// engine's spec treats as out of core scope: a hand-written
// recursive-descent parser that turns source text into a cst.Node tree
// rich enough to exercise every rule in package rules. It is not a
// complete grammar for the language described at the repository root --
// see SPEC_FULL.md §D.7.
package parse

import (
	"fmt"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/lex"
)

// ErrSyntax is returned (wrapped with position/detail) when the token
// stream cannot be parsed. The engine never sees this: formatting
// unparseable input is out of scope (see spec §1 Non-goals).
type ErrSyntax struct {
	Pos int
	Msg string
}

func (e *ErrSyntax) Error() string {
	return fmt.Sprintf("parse: syntax error at byte %d: %s", e.Pos, e.Msg)
}

// cursor drives the lexer directly rather than pre-tokenizing the whole
// input, because string/cmdstring bodies need raw byte access at
// exactly the position the generic token stream left off at (see
// parseStringLike). It buffers a small run of ordinary tokens so
// productions can look past trivia without losing them.
type cursor struct {
	lx   *lex.Lexer
	buf  []lex.Token
	head int // index of the next unconsumed token in buf
}

func newCursor(src string) *cursor {
	return &cursor{lx: lex.New([]byte(src))}
}

// fill ensures at least n tokens are buffered from head.
func (c *cursor) fill(n int) {
	for len(c.buf)-c.head < n {
		c.buf = append(c.buf, c.lx.NextToken())
	}
}

// peek returns the i-th unconsumed token without consuming it (i=0 is next).
func (c *cursor) peek(i int) lex.Token {
	c.fill(i + 1)
	return c.buf[c.head+i]
}

// advance consumes and returns the next token, significant or not.
func (c *cursor) advance() lex.Token {
	t := c.peek(0)
	c.head++
	// Keep the buffer from growing unboundedly across a long file: once
	// a token is consumed it is never looked at again.
	if c.head > 64 {
		c.buf = append([]lex.Token(nil), c.buf[c.head:]...)
		c.head = 0
	}
	return t
}

func isTrivia(k lex.Kind) bool {
	return k == lex.Whitespace || k == lex.Newline || k == lex.Comment
}

// takeTrivia consumes and converts a run of trivia tokens into cst leaves.
func (c *cursor) takeTrivia() []cst.Node {
	var out []cst.Node
	for isTrivia(c.peek(0).Kind) {
		out = append(out, triviaLeaf(c.advance()))
	}
	return out
}

// sig returns the next significant (non-trivia) token without consuming
// anything; it is safe to call freely since a Quote token is never
// trivia, so this never looks inside a string/cmdstring body.
func (c *cursor) sig() lex.Token {
	i := 0
	for isTrivia(c.peek(i).Kind) {
		i++
	}
	return c.peek(i)
}

func triviaLeaf(t lex.Token) cst.Node {
	switch t.Kind {
	case lex.Whitespace:
		return cst.NewLeaf(cst.KindWhitespace, 0, t.Text)
	case lex.Newline:
		return cst.NewLeaf(cst.KindNewlineWs, 0, t.Text)
	case lex.Comment:
		return cst.NewLeaf(cst.KindComment, 0, t.Text)
	default:
		panic("parse: triviaLeaf called on a non-trivia token")
	}
}

func tokenLeaf(t lex.Token, k cst.Kind, f cst.Flags) cst.Node {
	return cst.NewLeaf(k, f, t.Text)
}

func isOperatorText(t lex.Token, texts ...string) bool {
	if t.Kind != lex.Operator {
		return false
	}
	s := string(t.Text)
	for _, want := range texts {
		if s == want {
			return true
		}
	}
	return false
}

func isKeyword(t lex.Token, word string) bool {
	return t.Kind == lex.Keyword && string(t.Text) == word
}

func isPunctText(t lex.Token, s string) bool {
	return t.Kind == lex.Punct && string(t.Text) == s
}

func syntaxErrorf(pos int, format string, args ...interface{}) error {
	return &ErrSyntax{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
