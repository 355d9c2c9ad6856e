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
	"container/list"
	"sync"

	"github.com/TimeWtr/metastream/transport"
)

// waitQueue holds destinations awaiting the next readable Paxos commit. It
// is drained in full every time a new map commits; nothing survives across
// commits because once a destination has been told the latest map it has
// no further reason to wait.
type waitQueue struct {
	q  *list.List
	mu sync.Mutex
}

func newWaitQueue() *waitQueue {
	return &waitQueue{q: list.New()}
}

// Push enqueues dest to receive the next committed map.
func (w *waitQueue) Push(dest transport.Destination) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.q.PushBack(dest)
}

// Len reports how many destinations are currently queued.
func (w *waitQueue) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.q.Len()
}

// drain removes and returns every queued destination.
func (w *waitQueue) drain() []transport.Destination {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]transport.Destination, 0, w.q.Len())
	for e := w.q.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(transport.Destination))
	}
	w.q.Init()
	return out
}
