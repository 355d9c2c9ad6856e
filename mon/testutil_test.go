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
	"sync"
	"time"

	"github.com/TimeWtr/metastream/clock"
	"github.com/TimeWtr/metastream/transport"
)

// fakeClock is a settable clock for deterministic tick/beacon-grace tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) NewTicker(time.Duration) clock.Ticker {
	return nil
}

// fakeSender records every message handed to it instead of sending
// anything over a network.
type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
}

type sentMessage struct {
	msg  any
	dest transport.Destination
}

func (f *fakeSender) SendMessage(msg any, dest transport.Destination) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{msg: msg, dest: dest})
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// fakePaxos is a minimal in-memory Paxos façade: Propose immediately
// commits and runs every registered WaitForCommit callback synchronously,
// which is enough to drive the monitor's continuation-style logic in
// tests without a real consensus engine.
type fakePaxos struct {
	mu       sync.Mutex
	active   bool
	version  int64
	versions map[int64][]byte
	waiters  []func()
}

func newFakePaxos() *fakePaxos {
	return &fakePaxos{active: true, versions: make(map[int64][]byte)}
}

func (f *fakePaxos) IsActive() bool   { return f.active }
func (f *fakePaxos) IsReadable() bool { return f.active }

func (f *fakePaxos) GetVersion() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version
}

func (f *fakePaxos) Read(version int64) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.versions[version]
	return b, ok
}

func (f *fakePaxos) WaitForCommit(cb func()) {
	f.mu.Lock()
	f.waiters = append(f.waiters, cb)
	f.mu.Unlock()
}

func (f *fakePaxos) Propose(pending []byte) error {
	f.mu.Lock()
	f.version++
	f.versions[f.version] = pending
	waiters := f.waiters
	f.waiters = nil
	f.mu.Unlock()

	for _, cb := range waiters {
		cb()
	}
	return nil
}
