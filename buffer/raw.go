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
	"fmt"
	"sync/atomic"

	"github.com/TimeWtr/metastream/errorx"
)

// RawKind identifies the allocation strategy behind a rawSegment.
type RawKind int32

const (
	RawHeap RawKind = iota
	RawStatic
	RawPageAligned
)

func (k RawKind) String() string {
	switch k {
	case RawHeap:
		return "heap"
	case RawStatic:
		return "static"
	case RawPageAligned:
		return "page_aligned"
	default:
		return "unknown"
	}
}

func (k RawKind) Validate() error {
	switch k {
	case RawHeap, RawStatic, RawPageAligned:
		return nil
	default:
		return fmt.Errorf("buffer: invalid raw kind %d", int32(k))
	}
}

// rawSegment is the backing memory for one or more Views. It is never
// addressed directly by callers; a View is the only handle that reaches it.
// Each constructor sets refs to one, the reference owned by whoever created
// the raw (the View wrapping it, or the append arena); it then rises by one
// for every further View that comes to share it - the raw is destroyed the
// instant refs drops back to zero.
type rawSegment struct {
	kind RawKind
	data []byte
	refs atomic.Int64

	// unmapper is non-nil only for RawPageAligned segments, where release
	// must munmap instead of letting the GC reclaim a plain slice.
	unmapper memoryMapper
}

func newHeapRaw(size int) *rawSegment {
	buf := heapPool.alloc(size)
	if buf != nil {
		buf = buf[:size]
	} else {
		buf = make([]byte, size)
	}
	r := &rawSegment{kind: RawHeap, data: buf}
	r.refs.Store(1)
	addAlloc(RawHeap, int64(cap(buf)))
	return r
}

// newStaticRaw wraps caller-owned memory without copying it. The raw never
// grows and release never frees the slice; the caller retains ownership of
// the underlying array for as long as any View might still read it.
func newStaticRaw(data []byte) *rawSegment {
	r := &rawSegment{kind: RawStatic, data: data}
	r.refs.Store(1)
	return r
}

func newPageAlignedRaw(size int) (*rawSegment, error) {
	aligned := ((size + PageSize - 1) / PageSize) * PageSize
	mem, err := defaultMapper.Map(aligned)
	if err != nil {
		return nil, fmt.Errorf("buffer: page-aligned allocation of %d bytes: %w: %w", aligned, errorx.ErrAllocFailed, err)
	}
	r := &rawSegment{kind: RawPageAligned, data: mem[:size:aligned], unmapper: defaultMapper}
	r.refs.Store(1)
	addAlloc(RawPageAligned, int64(aligned))
	return r, nil
}

func (r *rawSegment) retain() {
	if r.refs.Add(1) <= 1 {
		errorx.Fatal(fmt.Errorf("buffer: retain on a raw segment with no live reference"))
	}
}

func (r *rawSegment) release() {
	if v := r.refs.Add(-1); v == 0 {
		r.destroy()
	} else if v < 0 {
		errorx.Fatal(fmt.Errorf("buffer: raw segment refcount underflow"))
	}
}

func (r *rawSegment) destroy() {
	switch r.kind {
	case RawHeap:
		subAlloc(RawHeap, int64(cap(r.data)))
		heapPool.free(r.data)
	case RawPageAligned:
		subAlloc(RawPageAligned, int64(cap(r.data)))
		if err := r.unmapper.Unmap(r.data[:cap(r.data)]); err != nil {
			errorx.Fatal(fmt.Errorf("buffer: munmap page-aligned raw: %w", err))
		}
	case RawStatic:
		// caller-owned memory, nothing to release.
	}
	r.data = nil
}

func (r *rawSegment) len() int {
	return len(r.data)
}
