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

// CStr returns the list's contents as one contiguous slice, rebuilding the
// list into a single view first if it is currently fragmented across more
// than one view. A single-view list is returned with no copy.
func (l *List) CStr() []byte {
	rebuilt := len(l.views) > 1
	if rebuilt {
		l.rebuild()
	}
	if len(l.views) == 0 {
		bufSink.ObserveCStr(false)
		return nil
	}
	bufSink.ObserveCStr(rebuilt)
	return l.views[0].Bytes()
}

// rebuild collapses every view in the list into one freshly allocated
// contiguous view, releasing the old fragmented views.
func (l *List) rebuild() {
	flat := l.Copy()
	l.Clear()
	if len(flat) == 0 {
		return
	}
	v := NewHeapView(len(flat))
	copy(v.Bytes(), flat)
	l.views = []*View{v}
	l.size = len(flat)
}

// RebuildPageAligned collapses the list into one contiguous view whose
// backing raw is page-aligned, for callers about to hand the bytes to a
// direct I/O path. It always rebuilds, even if the list already has a
// single view, unless that view is already page-aligned and exactly covers
// its raw.
func (l *List) RebuildPageAligned() error {
	if len(l.views) == 1 && l.views[0].IsPageAligned() && l.views[0].Len() == l.views[0].raw.len() {
		return nil
	}
	flat := l.Copy()
	l.Clear()
	if len(flat) == 0 {
		return nil
	}
	v, err := NewPageAlignedView(len(flat))
	if err != nil {
		return err
	}
	copy(v.Bytes(), flat)
	l.views = []*View{v}
	l.size = len(flat)
	bufSink.ObserveCStr(true)
	return nil
}
