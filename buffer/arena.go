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

import "github.com/TimeWtr/metastream/errorx"

// appendArena is the tail-growth allocator behind List.AppendBytes: small
// appends share one page-aligned raw instead of minting a new raw per call.
// When the current arena's unused tail can't hold the next append, a fresh
// arena of size ceil(n/PageSize)*PageSize is allocated and filling
// continues there.
type appendArena struct {
	raw  *rawSegment
	used int
}

func ceilToPage(n int) int {
	return ((n + PageSize - 1) / PageSize) * PageSize
}

// fits reports whether n more bytes can be carved from the arena's
// remaining capacity.
func (a *appendArena) fits(n int) bool {
	return a.raw != nil && a.used+n <= a.raw.len()
}

// carve returns a View over the next n bytes of the arena, retaining the
// arena's raw so the View and the arena can each be released independently.
func (a *appendArena) carve(n int) *View {
	a.raw.retain()
	v := &View{raw: a.raw, off: a.used, length: n}
	a.used += n
	return v
}

// reset points the arena at a freshly allocated page-aligned raw sized to
// hold at least want bytes, releasing the old raw's arena-held reference
// first.
func (a *appendArena) reset(want int) {
	if a.raw != nil {
		a.raw.release()
	}
	r, err := newPageAlignedRaw(ceilToPage(want))
	if err != nil {
		errorx.Fatal(err)
	}
	a.raw = r
	a.used = 0
}
