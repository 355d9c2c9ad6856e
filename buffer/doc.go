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

// Package buffer is the zero-copy segmented byte-buffer library: raw
// backing memory (rawSegment), ref-counted windows into it (View), and
// ordered sequences of views with an amortized append arena (List).
//
// Ownership is native to Go here instead of hand-rolled: a rawSegment's
// lifetime is governed by an atomic refcount incremented by every View
// that wraps it and decremented on View.Release, destroying the raw the
// instant the count reaches zero - the same invariant the original C++
// intrusive_ptr gave for free, reproduced explicitly because Go has no
// shared-ownership smart pointer of its own.
package buffer

const PageSize = 4096
