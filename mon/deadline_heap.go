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

package mon

import (
	"container/heap"
	"time"
)

// deadlineItem is one id's next beacon-grace expiry.
type deadlineItem struct {
	id       int
	deadline time.Time
	index    int
}

// deadlineHeap orders ids by next expiry so the failure detector's tick
// can pop only the ids that are actually due. Tick still walks every up id
// once per call to refresh its deadline before popping.
type deadlineHeap []*deadlineItem

func (h deadlineHeap) Len() int { return len(h) }

func (h deadlineHeap) Less(i, j int) bool {
	return h[i].deadline.Before(h[j].deadline)
}

func (h deadlineHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *deadlineHeap) Push(x interface{}) {
	item, _ := x.(*deadlineItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *deadlineHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	item.index = -1
	*h = old[:n-1]
	return item
}

// deadlineTracker maintains one deadlineItem per tracked id, allowing O(1)
// lookup for update-in-place and O(log n) pop of the earliest deadline.
type deadlineTracker struct {
	h     deadlineHeap
	byID  map[int]*deadlineItem
}

func newDeadlineTracker() *deadlineTracker {
	return &deadlineTracker{byID: make(map[int]*deadlineItem)}
}

// Set records/updates id's deadline.
func (t *deadlineTracker) Set(id int, deadline time.Time) {
	if item, ok := t.byID[id]; ok {
		item.deadline = deadline
		heap.Fix(&t.h, item.index)
		return
	}
	item := &deadlineItem{id: id, deadline: deadline}
	t.byID[id] = item
	heap.Push(&t.h, item)
}

// Remove drops id from tracking, e.g. once it is no longer up.
func (t *deadlineTracker) Remove(id int) {
	item, ok := t.byID[id]
	if !ok {
		return
	}
	heap.Remove(&t.h, item.index)
	delete(t.byID, id)
}

// Due returns every id whose deadline is at or before cutoff, removing
// them from the tracker; callers re-Set them after handling.
func (t *deadlineTracker) Due(cutoff time.Time) []int {
	var due []int
	for t.h.Len() > 0 && !t.h[0].deadline.After(cutoff) {
		item := heap.Pop(&t.h).(*deadlineItem)
		delete(t.byID, item.id)
		due = append(due, item.id)
	}
	return due
}
