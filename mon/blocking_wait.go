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
	"context"
	"sync"

	"github.com/TimeWtr/metastream/mdsmap"
)

// localWaiters lets an in-process caller block for the next committed map
// without going through the network transport, a convenience the wire
// protocol (waitQueue) does not need but a library embedder of this
// monitor does.
type localWaiters struct {
	mu        sync.Mutex
	ws        map[int]chan *mdsmap.Map
	pool      sync.Pool
	currentID int
	closed    bool
}

func newLocalWaiters() *localWaiters {
	return &localWaiters{
		ws: make(map[int]chan *mdsmap.Map),
		pool: sync.Pool{
			New: func() interface{} {
				return make(chan *mdsmap.Map, 1)
			},
		},
	}
}

func (l *localWaiters) register() (id int, ch <-chan *mdsmap.Map) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentID++
	id = l.currentID
	notify, _ := l.pool.Get().(chan *mdsmap.Map)
	l.ws[id] = notify
	return id, notify
}

func (l *localWaiters) unregister(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.ws[id]
	if !ok {
		return
	}
	delete(l.ws, id)
	l.pool.Put(ch)
}

func (l *localWaiters) notifyAll(m *mdsmap.Map) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	for _, ch := range l.ws {
		select {
		case ch <- m:
		default:
		}
	}
}

func (l *localWaiters) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}

// WaitForNextMap blocks until the next map commits, or ctx is done.
func (m *Monitor) WaitForNextMap(ctx context.Context) (*mdsmap.Map, error) {
	id, ch := m.local.register()
	defer m.local.unregister(id)

	select {
	case next := <-ch:
		return next, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
