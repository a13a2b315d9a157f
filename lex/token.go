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

// Package lex implements the hand-written lexer for the concrete
// language parse (package parse) turns into a cst.Node tree. It is a
// deliberately small, non-table-driven lexer -- unlike the DFA-based
// lexer in the nihei9/vartan pack member this module's layout otherwise
// borrows from, the language surface here is fixed and small enough that
// a direct-style scanner is clearer. It covers exactly the token classes
// package parse and package rules need; it is not a general-purpose
// tokenizer for the language described in the top-level spec.
package lex

// Kind is the lexical category of a Token.
type Kind int

const (
	EOF Kind = iota
	Ident
	Int
	Float
	Keyword
	StringContent // the literal text between string/cmdstring delimiters
	Quote         // " or ` delimiter
	Punct         // ( ) [ ] { } , ; @
	Operator      // + - * / etc., including := : and the comparison/assignment families
	Whitespace    // run of spaces/tabs
	Newline       // run of '\n'/'\r' bytes only; following spaces are a separate Whitespace token
	Comment       // # to end of line, not including the newline
	Invalid
)

// Token is one lexeme: its kind, the exact source bytes it covers
// (including whitespace/comment tokens -- nothing is discarded), and its
// byte offset in the source.
type Token struct {
	Kind Kind
	Text []byte
	Pos  int
}

// Keywords is the closed set of reserved words.
var Keywords = map[string]bool{
	"if": true, "elseif": true, "else": true, "end": true,
	"while": true, "for": true, "in": true, "function": true,
	"struct": true, "module": true, "macro": true, "return": true,
	"break": true, "continue": true, "quote": true, "true": true,
	"false": true, "nothing": true, "begin": true, "let": true,
	"const": true, "global": true, "local": true, "do": true,
}
