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

package fmtio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferSeedAndBytes(t *testing.T) {
	b := New([]byte("hello"))
	require.Equal(t, 5, b.Len())
	require.Equal(t, 0, b.Pos())
	require.Equal(t, []byte("hello"), b.Bytes())
}

func TestBufferAdvance(t *testing.T) {
	b := New([]byte("hello world"))
	b.Advance(5)
	require.Equal(t, 5, b.Pos())
}

func TestBufferReplaceBytesSameLength(t *testing.T) {
	b := New([]byte("hello world"))
	b.Seek(6)
	n := b.ReplaceBytes([]byte("WORLD"), 5)
	require.Equal(t, 5, n)
	require.Equal(t, "hello WORLD", string(b.Bytes()))
	require.Equal(t, 6, b.Pos(), "cursor must not move")
}

func TestBufferReplaceBytesShrink(t *testing.T) {
	b := New([]byte("hello    world"))
	b.Seek(5)
	b.ReplaceBytes([]byte(" "), 4)
	require.Equal(t, "hello world", string(b.Bytes()))
	require.Equal(t, 5, b.Pos())
}

func TestBufferReplaceBytesGrow(t *testing.T) {
	b := New([]byte("a=b"))
	b.Seek(1)
	b.ReplaceBytes([]byte(" = "), 1)
	require.Equal(t, "a = b", string(b.Bytes()))
}

func TestBufferTruncate(t *testing.T) {
	b := New([]byte("hello world"))
	b.Truncate(5)
	require.Equal(t, "hello", string(b.Bytes()))
	require.Equal(t, 5, b.Len())
}

func TestBufferTruncateMovesCursorBack(t *testing.T) {
	b := New([]byte("hello world"))
	b.Seek(10)
	b.Truncate(5)
	require.Equal(t, 5, b.Pos())
}

func TestBufferSeekOutOfRangePanics(t *testing.T) {
	b := New([]byte("hi"))
	require.Panics(t, func() { b.Seek(99) })
}
