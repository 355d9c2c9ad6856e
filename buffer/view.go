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

// View is a window into a rawSegment: [off, off+length) of raw.data. Many
// Views may share one raw; the raw is only destroyed once every View over
// it has been released. A View never copies the bytes it windows - reading
// it, slicing it (SubView), or moving it into a List is always an offset
// adjustment plus a refcount bump.
type View struct {
	raw    *rawSegment
	off    int
	length int

	// released guards against double-release, which would otherwise
	// underflow the shared raw's refcount.
	released bool
}

// NewHeapView allocates size bytes of fresh heap memory and wraps the whole
// thing in a View.
func NewHeapView(size int) *View {
	r := newHeapRaw(size)
	return &View{raw: r, off: 0, length: size}
}

// NewStaticView wraps caller-owned memory without copying it. The caller
// must keep data alive for as long as the returned View (or any View
// derived from it) is alive.
func NewStaticView(data []byte) *View {
	r := newStaticRaw(data)
	return &View{raw: r, off: 0, length: len(data)}
}

// NewPageAlignedView allocates a page-aligned heap region, used for
// O_DIRECT-style I/O paths where the original spec calls for the raw buffer
// itself to start on a page boundary.
func NewPageAlignedView(size int) (*View, error) {
	r, err := newPageAlignedRaw(size)
	if err != nil {
		return nil, err
	}
	return &View{raw: r, off: 0, length: size}, nil
}

func (v *View) checkLive() {
	if v.released {
		errorx.Fatal(fmt.Errorf("buffer: use of a released view"))
	}
}

// Len is the number of bytes this View windows.
func (v *View) Len() int {
	v.checkLive()
	return v.length
}

// Bytes exposes the windowed bytes directly, with no copy. Callers must not
// retain the slice past the View's Release, since release may munmap or
// otherwise invalidate the backing raw.
func (v *View) Bytes() []byte {
	v.checkLive()
	return v.raw.data[v.off : v.off+v.length]
}

// ByteAt returns the byte at the given view-relative offset.
func (v *View) ByteAt(i int) byte {
	v.checkLive()
	if i < 0 || i >= v.length {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	return v.raw.data[v.off+i]
}

// Clone returns a new View sharing the same raw over the same window,
// retaining the raw so both Views must be released independently before the
// backing memory is freed. This is the "coexisting handle" case: the caller
// keeps using v while also handing out the clone.
func (v *View) Clone() *View {
	v.checkLive()
	v.raw.retain()
	return &View{raw: v.raw, off: v.off, length: v.length}
}

// SubView returns a new View over [off, off+length) of v's own window,
// sharing and retaining the same raw. It does not consume v; both remain
// independently valid and must each be released.
func (v *View) SubView(off, length int) *View {
	v.checkLive()
	if off < 0 || length < 0 || off+length > v.length {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	v.raw.retain()
	return &View{raw: v.raw, off: v.off + off, length: length}
}

// Shrink narrows v in place to [off, off+length) of its current window. No
// new handle is created and no retain is needed, since v is the only handle
// being adjusted.
func (v *View) Shrink(off, length int) {
	v.checkLive()
	if off < 0 || length < 0 || off+length > v.length {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	v.off += off
	v.length = length
}

// IsPageAligned reports whether the window starts on a page boundary inside
// a raw that is itself page-aligned.
func (v *View) IsPageAligned() bool {
	v.checkLive()
	return v.raw.kind == RawPageAligned && (v.raw.off0()+v.off)%PageSize == 0
}

// Offset is this View's starting position inside its raw.
func (v *View) Offset() int {
	v.checkLive()
	return v.off
}

// AtHead reports whether the window starts at the beginning of its raw.
func (v *View) AtHead() bool {
	v.checkLive()
	return v.off == 0
}

// AtTail reports whether the window runs to the end of its raw.
func (v *View) AtTail() bool {
	v.checkLive()
	return v.off+v.length == v.raw.len()
}

// UnusedTailLength is the room left in the raw past this View's window,
// the amount Append may still add without reallocating.
func (v *View) UnusedTailLength() int {
	v.checkLive()
	return v.raw.len() - (v.off + v.length)
}

// Append writes n bytes from p onto the end of the window and extends the
// window to cover them. n must not exceed UnusedTailLength: Append never
// grows the underlying raw, it only publishes more of what is already
// there.
func (v *View) Append(p []byte, n int) {
	v.checkLive()
	if n < 0 || n > len(p) || n > v.UnusedTailLength() {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	copy(v.raw.data[v.off+v.length:v.off+v.length+n], p[:n])
	v.length += n
}

// CopyIn overwrites n bytes of the window starting at off with src.
func (v *View) CopyIn(off, n int, src []byte) {
	v.checkLive()
	if off < 0 || n < 0 || off+n > v.length || n > len(src) {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	copy(v.raw.data[v.off+off:v.off+off+n], src[:n])
}

// CopyOut reads n bytes of the window starting at off into dst.
func (v *View) CopyOut(off, n int, dst []byte) {
	v.checkLive()
	if off < 0 || n < 0 || off+n > v.length || n > len(dst) {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	copy(dst[:n], v.raw.data[v.off+off:v.off+off+n])
}

// Zero overwrites the entire window with zero bytes.
func (v *View) Zero() {
	v.checkLive()
	clear(v.raw.data[v.off : v.off+v.length])
}

// SetOffset repositions the window to start at off within the same raw,
// keeping the current length. It is one of the two escapes from View's
// otherwise-immutable (raw, offset, length) identity.
func (v *View) SetOffset(off int) {
	v.checkLive()
	if off < 0 || off+v.length > v.raw.len() {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	v.off = off
}

// SetLength resizes the window in place within the same raw, keeping the
// current offset.
func (v *View) SetLength(length int) {
	v.checkLive()
	if length < 0 || v.off+length > v.raw.len() {
		errorx.Fatal(errorx.ErrOutOfBounds)
	}
	v.length = length
}

// off0 exists only so IsPageAligned can be written without assuming the raw
// itself always starts at offset zero in its allocation; today it always
// does, so this is always zero. Kept as a named method rather than a
// literal 0 so a future raw variant with a non-zero base is a one-line
// change.
func (r *rawSegment) off0() int { return 0 }

// Release drops this View's hold on its raw. After Release, the View must
// not be used again.
func (v *View) Release() {
	if v.released {
		return
	}
	v.released = true
	v.raw.release()
}
