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

// Package mon is the MDS membership monitor: a single-threaded state
// machine driven by beacons, ticks and admin commands, which stages
// mutations into a pending map and drives them to commitment through a
// Paxos façade.
package mon

import (
	"sync"
	"time"

	"github.com/TimeWtr/metastream/clock"
	"github.com/TimeWtr/metastream/config"
	"github.com/TimeWtr/metastream/mdsmap"
	"github.com/TimeWtr/metastream/metrics"
	"github.com/TimeWtr/metastream/paxos"
	"github.com/TimeWtr/metastream/transport"
)

// Monitor holds all runtime state for one monitor replica. It is not
// goroutine-safe on its own; callers must serialize access the way the
// Paxos façade serializes delivery of PreprocessQuery/PrepareUpdate/tick
// calls in the original design.
type Monitor struct {
	mu sync.Mutex

	mdsmap        *mdsmap.Map
	pendingMdsmap *mdsmap.Map
	pendingDirty  bool

	lastBeacon    map[int]time.Time
	deadlines     *deadlineTracker
	waitingForMap *waitQueue
	local         *localWaiters

	cfg    config.MonitorConfig
	cfgSub <-chan struct{}

	paxos     paxos.Facade
	transport transport.Sender
	clock     clock.Clock
	metrics   metrics.MonitorMetrics

	rank int

	shutdown      chan struct{}
	shutdownFired bool
}

// New constructs a Monitor for replica rank, wired to the given Paxos
// façade and message transport.
func New(rank int, cond *config.Condition, px paxos.Facade, tp transport.Sender, ck clock.Clock, mm metrics.MonitorMetrics) *Monitor {
	if ck == nil {
		ck = clock.Real{}
	}
	if mm == nil {
		mm = noopMonitorMetrics{}
	}
	m := &Monitor{
		lastBeacon:    make(map[int]time.Time),
		deadlines:     newDeadlineTracker(),
		waitingForMap: newWaitQueue(),
		local:         newLocalWaiters(),
		cfg:           cond.GetConfig(),
		cfgSub:        cond.Register(),
		paxos:         px,
		transport:     tp,
		clock:         ck,
		metrics:       mm,
		rank:          rank,
		shutdown:      make(chan struct{}),
	}
	return m
}

// refreshConfig pulls the latest config snapshot if Condition has signaled
// a change since the last check, mirroring the teacher's SwitchCondition
// hot-reload poll.
func (m *Monitor) refreshConfig(cond *config.Condition) {
	select {
	case <-m.cfgSub:
		m.cfg = cond.GetConfig()
	default:
	}
}

// IsLeader reports whether this replica is the current Paxos leader.
func (m *Monitor) IsLeader() bool {
	return m.paxos.IsActive()
}

// Committed returns the authoritative committed map.
func (m *Monitor) Committed() *mdsmap.Map {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mdsmap
}

type noopMonitorMetrics struct{}

func (noopMonitorMetrics) ObserveBeacon(string, bool)     {}
func (noopMonitorMetrics) ObserveProposal()               {}
func (noopMonitorMetrics) ObserveTick(int)                {}
func (noopMonitorMetrics) ObserveCommand(string, int32)   {}
