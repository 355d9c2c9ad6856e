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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_RefcountReleasesExactlyOnce(t *testing.T) {
	before := TotalAlloc()
	v := NewHeapView(128)
	clones := make([]*View, 0, 8)
	for i := 0; i < 8; i++ {
		clones = append(clones, v.Clone())
	}
	for _, c := range clones {
		c.Release()
	}
	assert.NotEqual(t, before, TotalAlloc())
	v.Release()
	assert.Equal(t, before, TotalAlloc())
}

func TestView_RefcountConcurrentCloneDrop(t *testing.T) {
	before := TotalAlloc()
	v := NewHeapView(64)

	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			c := v.Clone()
			c.Release()
		}()
	}
	wg.Wait()
	v.Release()
	assert.Equal(t, before, TotalAlloc())
}

func TestView_SubViewSharesRaw(t *testing.T) {
	v := NewHeapView(16)
	copy(v.Bytes(), []byte("0123456789abcdef"))

	sub := v.SubView(4, 4)
	require.Equal(t, "4567", string(sub.Bytes()))
	sub.Release()
	v.Release()
}

func TestView_OutOfBoundsIsFatal(t *testing.T) {
	v := NewHeapView(4)
	defer v.Release()
	assert.Panics(t, func() {
		v.ByteAt(10)
	})
}

// TestView_TotalAllocRoundTripsForNonClassSize guards against double-
// counting between a pooled raw's requested size and its size-class
// capacity: 100 falls between the 64 and 128 size classes, so the pool
// hands back a cap-128 buffer for a len-100 request.
func TestView_TotalAllocRoundTripsForNonClassSize(t *testing.T) {
	before := TotalAlloc()
	v := NewHeapView(100)
	v.Release()
	assert.Equal(t, before, TotalAlloc())
}

func TestView_OffsetAndEdgePredicates(t *testing.T) {
	v := NewHeapView(16)
	defer v.Release()

	assert.Equal(t, 0, v.Offset())
	assert.True(t, v.AtHead())
	assert.True(t, v.AtTail())
	assert.Equal(t, 0, v.UnusedTailLength())

	v.SetLength(10)
	assert.False(t, v.AtTail())
	assert.Equal(t, 6, v.UnusedTailLength())

	v.SetOffset(2)
	assert.False(t, v.AtHead())
	assert.Equal(t, 2, v.Offset())
}

func TestView_AppendCopyInCopyOutZero(t *testing.T) {
	v := NewHeapView(16)
	defer v.Release()
	v.SetLength(0)

	v.Append([]byte("hello"), 5)
	require.Equal(t, "hello", string(v.Bytes()))
	assert.Equal(t, 11, v.UnusedTailLength())

	v.CopyIn(0, 5, []byte("HELLO"))
	require.Equal(t, "HELLO", string(v.Bytes()))

	dst := make([]byte, 5)
	v.CopyOut(0, 5, dst)
	require.Equal(t, "HELLO", string(dst))

	v.Zero()
	require.Equal(t, []byte{0, 0, 0, 0, 0}, v.Bytes())
}

func TestView_AppendBeyondUnusedTailIsFatal(t *testing.T) {
	v := NewHeapView(4)
	defer v.Release()
	v.SetLength(0)
	assert.Panics(t, func() {
		v.Append([]byte("toolong"), 7)
	})
}
