// Copyright 2025 TimeWtr
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package buffer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_LengthInvariant(t *testing.T) {
	l := NewList()
	l.AppendBytes([]byte("hello"))
	l.AppendBytes([]byte(" world"))

	v := NewHeapView(4)
	copy(v.Bytes(), []byte("abcd"))
	l.AppendView(v)

	other := NewList()
	other.AppendBytes([]byte("xyz"))
	l.AppendList(other)

	claimed := NewList()
	claimed.AppendBytes([]byte("!!"))
	l.ClaimAppend(claimed)
	assert.Equal(t, 0, claimed.Length())
	assert.True(t, claimed.IsEmpty())

	assert.Equal(t, "hello world"+"abcd"+"xyz"+"!!", string(l.Copy()))
	assert.Equal(t, len(l.Copy()), l.Length())

	c := l.Splice(2, 3)
	assert.Equal(t, l.Length()+c.Length(), 11+4+3+2)

	l.Clear()
	assert.Equal(t, 0, l.Length())
}

func TestList_SpliceIsSubstrPlusComplement(t *testing.T) {
	original := []byte("the quick brown fox jumps")
	l := NewList()
	l.AppendBytes(original)

	off, length := 4, 5 // "quick"
	expectMiddle := append([]byte{}, original[off:off+length]...)
	expectRest := append(append([]byte{}, original[:off]...), original[off+length:]...)

	c := l.Splice(off, length)
	assert.Equal(t, expectMiddle, c.Copy())
	assert.Equal(t, expectRest, l.Copy())
	assert.Equal(t, len(original), l.Length()+c.Length())
}

func TestList_SubstrRoundTrip(t *testing.T) {
	original := []byte("0123456789")
	l := NewList()
	l.AppendBytes(original)

	for _, tc := range []struct{ off, length int }{
		{0, 0}, {0, 10}, {3, 4}, {9, 1}, {0, 1},
	} {
		sub := l.SubstrOf(tc.off, tc.length)
		want := original[tc.off : tc.off+tc.length]
		require.Equal(t, len(want), sub.Length())
		assert.True(t, bytes.Equal(want, sub.Copy()), "off=%d len=%d", tc.off, tc.length)
	}
}

func TestList_CStrIdempotent(t *testing.T) {
	l := NewList()
	l.AppendBytes([]byte("part1"))
	l.AppendBytes([]byte("part2"))
	l.AppendBytes([]byte("part3"))

	first := l.CStr()
	assert.Equal(t, "part1part2part3", string(first))
	assert.Len(t, l.views, 1)

	second := l.CStr()
	assert.Equal(t, &first[0], &second[0])
}

func TestList_AppendArenaIsPageAligned(t *testing.T) {
	l := NewList()
	l.AppendBytes(make([]byte, 10))
	require.Len(t, l.views, 1)
	assert.True(t, l.views[0].IsPageAligned())
	assert.Equal(t, PageSize, l.views[0].raw.len())
}

func TestList_ClaimAppendEmptiesSource(t *testing.T) {
	src := NewList()
	src.AppendBytes([]byte("data"))
	dst := NewList()
	dst.ClaimAppend(src)

	assert.Equal(t, "data", string(dst.Copy()))
	assert.Equal(t, 0, src.Length())
	assert.Empty(t, src.views)
}

func TestList_SpliceRemovesEverything(t *testing.T) {
	l := NewList()
	l.AppendBytes([]byte("all of it"))
	c := l.Splice(0, l.Length())
	assert.Equal(t, 0, l.Length())
	assert.Equal(t, "all of it", string(c.Copy()))
}
