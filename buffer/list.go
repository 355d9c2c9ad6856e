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

	"github.com/TimeWtr/metastream/errorx"
)

// List is an ordered sequence of Views, the zero-copy analogue of a
// scatter-gather byte string. Appending, splicing and substring-ing a List
// never copies the underlying bytes; only AppendBytes (via the append
// arena), Copy/CopyIn, and the rebuilds done by CStr and
// RebuildPageAligned ever touch memory byte-by-byte.
type List struct {
	views []*View
	size  int
	arena appendArena
}

// NewList returns an empty List.
func NewList() *List {
	return &List{}
}

// Length is the total number of bytes across all views in the list.
func (l *List) Length() int {
	return l.size
}

// IsEmpty reports whether the list holds zero bytes.
func (l *List) IsEmpty() bool {
	return l.size == 0
}

// AppendView appends v to the list, taking ownership of the reference the
// caller passes in; the caller must not release v afterward. Pass
// v.Clone() if the caller also wants to keep using v.
func (l *List) AppendView(v *View) {
	if v.Len() == 0 {
		v.Release()
		return
	}
	l.views = append(l.views, v)
	l.size += v.Len()
}

// AppendBytes copies p into the list's append arena, amortizing many small
// appends over a handful of raw allocations instead of one raw per call.
func (l *List) AppendBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	if !l.arena.fits(len(p)) {
		l.arena.reset(len(p))
	}
	v := l.arena.carve(len(p))
	copy(v.Bytes(), p)
	l.views = append(l.views, v)
	l.size += len(p)
	bufSink.ObserveAppend(int64(len(p)))
}

// AppendList appends every view of other onto l, retaining each one; other
// itself is left intact and still owns its own references.
func (l *List) AppendList(other *List) {
	for _, v := range other.views {
		l.views = append(l.views, v.Clone())
	}
	l.size += other.size
}

// ClaimAppend is AppendList's zero-retain sibling: it transfers ownership of
// other's views directly into l and empties other. Used when the caller
// will never touch other again, e.g. moving a just-decoded List straight
// into a larger buffer.
func (l *List) ClaimAppend(other *List) {
	l.views = append(l.views, other.views...)
	l.size += other.size
	other.views = nil
	other.size = 0
	if other.arena.raw != nil {
		other.arena.raw.release()
	}
	other.arena = appendArena{}
}

// ByteAt returns the byte at the given list-relative offset by walking the
// view chain. It is O(n) in the number of views and is meant for
// spot-checks, not bulk reads.
func (l *List) ByteAt(i int) byte {
	if i < 0 || i >= l.size {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	for _, v := range l.views {
		if i < v.Len() {
			return v.ByteAt(i)
		}
		i -= v.Len()
	}
	errorx.Fatal(errorx.ErrOutOfBounds)
	return 0
}

// SubstrOf returns a new List covering [off, off+length) of l without
// copying any bytes: views fully inside the range are cloned whole, and the
// views at the two edges are narrowed via SubView.
func (l *List) SubstrOf(off, length int) *List {
	if off < 0 || length < 0 || off+length > l.size {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	out := NewList()
	if length == 0 {
		return out
	}

	pos := 0
	remaining := length
	for _, v := range l.views {
		vlen := v.Len()
		if pos+vlen <= off {
			pos += vlen
			continue
		}
		start := 0
		if off > pos {
			start = off - pos
		}
		avail := vlen - start
		take := avail
		if take > remaining {
			take = remaining
		}
		out.AppendView(v.SubView(start, take))
		remaining -= take
		pos += vlen
		if remaining == 0 {
			break
		}
	}
	bufSink.ObserveSubstr()
	return out
}

// Splice removes [off, off+length) from l and returns it as a new List.
// Views wholly inside the range have their references transferred (not
// retained) to the returned List. A view only partially covered is
// replaced: the covered part goes to the returned List and the uncovered
// head and/or tail stay in l, each as a new SubView, and the original
// handle is released. Views outside the range keep their handles.
func (l *List) Splice(off, length int) *List {
	if off < 0 || length < 0 || off+length > l.size {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	out := NewList()
	if length == 0 {
		return out
	}

	var kept []*View
	pos := 0
	remaining := length
	for _, v := range l.views {
		vlen := v.Len()
		switch {
		case pos+vlen <= off || remaining == 0:
			kept = append(kept, v)
		case pos >= off && pos+vlen <= off+length:
			out.AppendView(v)
			remaining -= vlen
		default:
			start := 0
			if off > pos {
				start = off - pos
			}
			avail := vlen - start
			take := avail
			if take > remaining {
				take = remaining
			}
			spliced := v.SubView(start, take)
			out.AppendView(spliced)
			remaining -= take

			if start > 0 {
				left := v.SubView(0, start)
				kept = append(kept, left)
			}
			tailStart := start + take
			if tailStart < vlen {
				right := v.SubView(tailStart, vlen-tailStart)
				kept = append(kept, right)
			}
			v.Release()
		}
		pos += vlen
	}

	l.views = kept
	l.size -= length
	bufSink.ObserveSplice()
	return out
}

// Copy materializes the entire list into a freshly allocated contiguous
// byte slice. This is the one List operation that always copies.
func (l *List) Copy() []byte {
	out := make([]byte, l.size)
	l.CopyIn(out)
	return out
}

// CopyIn copies the full contents of the list into dst, which must be at
// least Length() bytes.
func (l *List) CopyIn(dst []byte) {
	if len(dst) < l.size {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	pos := 0
	for _, v := range l.views {
		n := copy(dst[pos:], v.Bytes())
		pos += n
	}
}

// IsPageAligned reports whether every view in the list starts on a page
// boundary of a page-aligned raw - the precondition for direct I/O paths.
func (l *List) IsPageAligned() bool {
	for _, v := range l.views {
		if !v.IsPageAligned() {
			return false
		}
	}
	return true
}

// IsNPageSized reports whether the list's total length is an exact
// multiple of the page size.
func (l *List) IsNPageSized() bool {
	return l.size%PageSize == 0
}

// Clear releases every view held by the list and empties it.
func (l *List) Clear() {
	for _, v := range l.views {
		v.Release()
	}
	l.views = nil
	l.size = 0
	if l.arena.raw != nil {
		l.arena.raw.release()
		l.arena = appendArena{}
	}
}

func (l *List) String() string {
	return fmt.Sprintf("List{len=%d, views=%d}", l.size, len(l.views))
}
