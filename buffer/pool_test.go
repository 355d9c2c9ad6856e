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

import "testing"

func TestSmallHeapPool_RecyclesMatchingClass(t *testing.T) {
	p := newSmallHeapPool()

	first := p.alloc(100)
	if cap(first) != int(_128Bytes) {
		t.Fatalf("expected class-aligned capacity 128, got %d", cap(first))
	}
	p.free(first[:100])

	second := p.alloc(120)
	if &second[:1:1][0] != &first[:1:1][0] {
		t.Fatalf("expected recycled backing array, got a fresh allocation")
	}
}

func TestSmallHeapPool_OversizeBypassesPool(t *testing.T) {
	p := newSmallHeapPool()
	if buf := p.alloc(4096); buf != nil {
		t.Fatalf("expected nil for an oversize request, got len %d", len(buf))
	}
}

func TestHeapRaw_ReusesPooledBacking(t *testing.T) {
	r1 := newHeapRaw(200)
	ptr1 := &r1.data[:1:1][0]
	r1.release()

	r2 := newHeapRaw(200)
	ptr2 := &r2.data[:1:1][0]
	r2.release()

	if ptr1 != ptr2 {
		t.Fatalf("expected the second heap raw to reuse the first's backing array")
	}
}
