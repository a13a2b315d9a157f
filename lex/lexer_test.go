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

package lex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allTokens(src string) []Token {
	l := New([]byte(src))
	var toks []Token
	for {
		tk := l.NextToken()
		toks = append(toks, tk)
		if tk.Kind == EOF {
			return toks
		}
	}
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestNextTokenEmptySourceIsEOF(t *testing.T) {
	toks := allTokens("")
	require.Equal(t, []Kind{EOF}, kinds(toks))
}

func TestNextTokenIdentVsKeyword(t *testing.T) {
	toks := allTokens("foo if")
	require.Equal(t, []Kind{Ident, Whitespace, Keyword, EOF}, kinds(toks))
	require.Equal(t, "foo", string(toks[0].Text))
	require.Equal(t, "if", string(toks[2].Text))
}

func TestNextTokenNumbers(t *testing.T) {
	cases := map[string]Kind{
		"123":     Int,
		"0xFF":    Int,
		"0o17":    Int,
		"3.14":    Float,
		"1e10":    Float,
		"1.5e-3":  Float,
		"1_000":   Int,
	}
	for src, want := range cases {
		toks := allTokens(src)
		require.Equal(t, want, toks[0].Kind, "src=%q", src)
		require.Equal(t, src, string(toks[0].Text), "src=%q", src)
	}
}

func TestNextTokenMultiCharOperatorsPreferLongestMatch(t *testing.T) {
	toks := allTokens("a->b")
	require.Equal(t, []Kind{Ident, Operator, Ident, EOF}, kinds(toks))
	require.Equal(t, "->", string(toks[1].Text))
}

func TestNextTokenDoesNotMisSplitGreaterEqual(t *testing.T) {
	toks := allTokens(">=")
	require.Equal(t, Operator, toks[0].Kind)
	require.Equal(t, ">=", string(toks[0].Text))
}

func TestNextTokenComment(t *testing.T) {
	toks := allTokens("# hi\nx")
	require.Equal(t, []Kind{Comment, Newline, Ident, EOF}, kinds(toks))
	require.Equal(t, "# hi", string(toks[0].Text))
}

func TestNextTokenQuoteIsSingleByte(t *testing.T) {
	toks := allTokens(`"x`)
	require.Equal(t, Quote, toks[0].Kind)
	require.Equal(t, `"`, string(toks[0].Text))
}

func TestNextTokenPunct(t *testing.T) {
	toks := allTokens("(a,b)")
	require.Equal(t, []Kind{Punct, Ident, Punct, Ident, Punct, EOF}, kinds(toks))
}

func TestScanStringBodyStopsAtClosingDelim(t *testing.T) {
	l := New([]byte(`hello"rest`))
	tk, hasInterp := l.ScanStringBody('"')
	require.False(t, hasInterp)
	require.Equal(t, "hello", string(tk.Text))
	require.Equal(t, byte('"'), l.ConsumeByte())
	require.Equal(t, "rest", string(l.Src()[l.Pos():]))
}

func TestScanStringBodyStopsAtInterpolationOpener(t *testing.T) {
	l := New([]byte(`a $(b) c"`))
	tk, hasInterp := l.ScanStringBody('"')
	require.True(t, hasInterp)
	require.Equal(t, "a ", string(tk.Text))
	require.Equal(t, byte('$'), l.ConsumeByte())
	require.Equal(t, byte('('), l.ConsumeByte())
}

func TestScanStringBodyHandlesEscapedDelim(t *testing.T) {
	l := New([]byte(`a\"b"`))
	tk, hasInterp := l.ScanStringBody('"')
	require.False(t, hasInterp)
	require.Equal(t, `a\"b`, string(tk.Text))
}

func TestScanStringBodyUnterminatedReturnsRestOfInput(t *testing.T) {
	l := New([]byte(`abc`))
	tk, hasInterp := l.ScanStringBody('"')
	require.False(t, hasInterp)
	require.Equal(t, "abc", string(tk.Text))
	require.Equal(t, len("abc"), l.Pos())
}

func TestConsumeByteAtEOFIsNoop(t *testing.T) {
	l := New([]byte(""))
	require.Equal(t, byte(0), l.ConsumeByte())
	require.Equal(t, 0, l.Pos())
}
