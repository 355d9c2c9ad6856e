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

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimeWtr/metastream/buffer"
)

func TestCodec_PrimitiveRoundTrip(t *testing.T) {
	l := buffer.NewList()
	require.NoError(t, Encode[int32](-42, l))
	require.NoError(t, Encode[uint64](9999999999, l))
	require.NoError(t, Encode[bool](true, l))
	require.NoError(t, Encode[float64](3.5, l))

	cursor := 0
	var i32 int32
	var u64 uint64
	var b bool
	var f float64
	require.NoError(t, Decode(&i32, l, &cursor))
	require.NoError(t, Decode(&u64, l, &cursor))
	require.NoError(t, Decode(&b, l, &cursor))
	require.NoError(t, Decode(&f, l, &cursor))

	assert.Equal(t, int32(-42), i32)
	assert.Equal(t, uint64(9999999999), u64)
	assert.True(t, b)
	assert.Equal(t, 3.5, f)
	assert.Equal(t, l.Length(), cursor)
}

func TestCodec_StringRoundTrip(t *testing.T) {
	l := buffer.NewList()
	require.NoError(t, Encode[string]("hello, mds", l))

	// self-describing length: first 4 bytes equal the byte count.
	var n int32
	cursor := 0
	require.NoError(t, Decode(&n, l, &cursor))
	assert.Equal(t, int32(len("hello, mds")), n)

	cursor = 0
	var out string
	require.NoError(t, Decode(&out, l, &cursor))
	assert.Equal(t, "hello, mds", out)
}

func TestCodec_SequenceRoundTrip(t *testing.T) {
	l := buffer.NewList()
	in := []int32{1, 2, 3, 4, 5}
	require.NoError(t, Encode(in, l))

	var n int32
	cursor := 0
	require.NoError(t, Decode(&n, l, &cursor))
	assert.Equal(t, int32(len(in)), n)

	cursor = 0
	var out []int32
	require.NoError(t, Decode(&out, l, &cursor))
	assert.Equal(t, in, out)
}

func TestCodec_MapRoundTrip(t *testing.T) {
	l := buffer.NewList()
	in := map[int32]string{1: "a", 2: "b", 3: "c"}
	require.NoError(t, Encode(in, l))

	cursor := 0
	var out map[int32]string
	require.NoError(t, Decode(&out, l, &cursor))
	assert.Equal(t, in, out)
}

func TestCodec_NestedListRoundTrip(t *testing.T) {
	inner := buffer.NewList()
	inner.AppendBytes([]byte("nested payload"))

	outer := buffer.NewList()
	require.NoError(t, Encode(inner, outer))

	cursor := 0
	var decoded *buffer.List
	require.NoError(t, Decode(&decoded, outer, &cursor))
	assert.Equal(t, "nested payload", string(decoded.Copy()))
}
