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

package metrics

import (
	"sync/atomic"
	"time"
)

// BatchCollector accumulates counters locally and flushes them into the
// underlying Collector on a timer, so the allocation, append, splice,
// substr and proposal paths do not pay a Prometheus call per operation.
// RecordBeacon is the exception: it forwards every beacon to the Collector
// immediately, and its local beacon counters are only reset on flush.
type BatchCollector interface {
	Controller
	Recorder
}

// Recorder is the interface provided to callers on the hot path.
type Recorder interface {
	RecordAlloc(kind string, bytes int64)
	RecordFree(kind string, bytes int64)
	RecordAppend(bytes int64)
	RecordSplice()
	RecordSubstr()
	RecordBeacon(state string, dropped bool)
	RecordProposal()
}

// Controller is the batch update lifecycle.
type Controller interface {
	Start()
	Stop()
	Flush()
}

type allocCounters struct {
	counts int64
	bytes  int64
}

type bufferCounters struct {
	appendBytes  int64
	spliceCounts int64
	substrCounts int64
}

type monitorCounters struct {
	beaconCounts  int64
	beaconDropped int64
	proposals     int64
}

var _ Recorder = (*BatchCollectImpl)(nil)

// BatchCollectImpl wraps an underlying Collector and periodically flushes
// accumulated counters into it.
type BatchCollectImpl struct {
	allocByKind map[string]*allocCounters
	freeByKind  map[string]*allocCounters
	buf         bufferCounters
	mon         monitorCounters

	mc  Collector
	t   *time.Ticker
	sem chan struct{}
}

func NewBatchCollector(mc Collector) *BatchCollectImpl {
	const period = 5 * time.Second
	b := &BatchCollectImpl{
		allocByKind: make(map[string]*allocCounters),
		freeByKind:  make(map[string]*allocCounters),
		mc:          mc,
		t:           time.NewTicker(period),
		sem:         make(chan struct{}),
	}
	b.mc.CollectSwitcher(true)
	return b
}

func (b *BatchCollectImpl) counterFor(m map[string]*allocCounters, kind string) *allocCounters {
	c, ok := m[kind]
	if !ok {
		c = &allocCounters{}
		m[kind] = c
	}
	return c
}

func (b *BatchCollectImpl) RecordAlloc(kind string, bytes int64) {
	c := b.counterFor(b.allocByKind, kind)
	atomic.AddInt64(&c.counts, 1)
	atomic.AddInt64(&c.bytes, bytes)
}

func (b *BatchCollectImpl) RecordFree(kind string, bytes int64) {
	c := b.counterFor(b.freeByKind, kind)
	atomic.AddInt64(&c.counts, 1)
	atomic.AddInt64(&c.bytes, bytes)
}

func (b *BatchCollectImpl) RecordAppend(bytes int64) {
	atomic.AddInt64(&b.buf.appendBytes, bytes)
}

func (b *BatchCollectImpl) RecordSplice() {
	atomic.AddInt64(&b.buf.spliceCounts, 1)
}

func (b *BatchCollectImpl) RecordSubstr() {
	atomic.AddInt64(&b.buf.substrCounts, 1)
}

func (b *BatchCollectImpl) RecordBeacon(state string, dropped bool) {
	atomic.AddInt64(&b.mon.beaconCounts, 1)
	if dropped {
		atomic.AddInt64(&b.mon.beaconDropped, 1)
	}
	b.mc.ObserveBeacon(state, dropped)
}

func (b *BatchCollectImpl) RecordProposal() {
	atomic.AddInt64(&b.mon.proposals, 1)
}

func (b *BatchCollectImpl) Start() {
	go b.asyncWorker()
}

func (b *BatchCollectImpl) Stop() {
	close(b.sem)
}

func (b *BatchCollectImpl) Flush() {
	b.report()
}

func (b *BatchCollectImpl) asyncWorker() {
	for {
		select {
		case <-b.sem:
			return
		case <-b.t.C:
			b.report()
		}
	}
}

func (b *BatchCollectImpl) report() {
	for kind, c := range b.allocByKind {
		bytes := atomic.SwapInt64(&c.bytes, 0)
		counts := atomic.SwapInt64(&c.counts, 0)
		if counts > 0 {
			b.mc.ObserveAlloc(kind, counts, bytes)
		}
	}
	for kind, c := range b.freeByKind {
		bytes := atomic.SwapInt64(&c.bytes, 0)
		counts := atomic.SwapInt64(&c.counts, 0)
		if counts > 0 {
			b.mc.ObserveFree(kind, counts, bytes)
		}
	}

	if n := atomic.SwapInt64(&b.buf.appendBytes, 0); n > 0 {
		b.mc.ObserveAppend(n)
	}
	for i, n := int64(0), atomic.SwapInt64(&b.buf.spliceCounts, 0); i < n; i++ {
		b.mc.ObserveSplice()
	}
	for i, n := int64(0), atomic.SwapInt64(&b.buf.substrCounts, 0); i < n; i++ {
		b.mc.ObserveSubstr()
	}
	for i, n := int64(0), atomic.SwapInt64(&b.mon.proposals, 0); i < n; i++ {
		b.mc.ObserveProposal()
	}
	atomic.SwapInt64(&b.mon.beaconCounts, 0)
	atomic.SwapInt64(&b.mon.beaconDropped, 0)
}
