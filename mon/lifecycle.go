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
	"fmt"

	"github.com/TimeWtr/metastream/buffer"
	"github.com/TimeWtr/metastream/errorx"
	"github.com/TimeWtr/metastream/mdsmap"
)

// CreateInitial populates pendingMdsmap with TargetNum from configuration
// and Created = now(). Invoked by the Paxos façade the first time this
// monitor becomes active with no prior committed map.
func (m *Monitor) CreateInitial() {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending := mdsmap.New()
	pending.TargetNum = m.cfg.NumMDS
	pending.Created = m.clock.Now()
	pending.Epoch = 1
	m.pendingMdsmap = pending
	m.pendingDirty = true
}

// CreatePending copies the committed map into pending and increments its
// epoch, the normal path for starting a new round once a map already
// exists.
func (m *Monitor) CreatePending() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createPendingLocked()
}

func (m *Monitor) createPendingLocked() {
	m.pendingMdsmap = m.mdsmap.Clone()
	m.pendingMdsmap.Epoch = m.mdsmap.Epoch + 1
	m.pendingDirty = false
}

// EncodePending writes the pending map into out. Precondition:
// paxos.GetVersion()+1 == pendingMdsmap.Epoch.
func (m *Monitor) EncodePending(out *buffer.List) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if got, want := m.paxos.GetVersion()+1, m.pendingMdsmap.Epoch; got != want {
		errorx.Fatal(fmt.Errorf("mon: encode_pending precondition violated: paxos version+1=%d pending epoch=%d", got, want))
	}
	return m.pendingMdsmap.Encode(out)
}

// UpdateFromPaxos reads the committed bytes for the latest Paxos version,
// decodes them into mdsmap, broadcasts the new map to every up MDS if this
// replica is leader, and drains anyone waiting on waitingForMap.
func (m *Monitor) UpdateFromPaxos() error {
	m.mu.Lock()

	raw, ok := m.paxos.Read(m.paxos.GetVersion())
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("mon: no committed bytes at version %d", m.paxos.GetVersion())
	}
	l := buffer.NewList()
	l.AppendBytes(raw)
	cursor := 0
	decoded, err := mdsmap.Decode(l, &cursor)
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("mon: decode committed map: %w", err)
	}
	m.mdsmap = decoded
	leader := m.paxos.IsActive()
	waiters := m.waitingForMap.drain()
	m.mu.Unlock()

	m.local.notifyAll(decoded)

	if leader {
		m.broadcastMap(decoded)
	}
	for _, dest := range waiters {
		m.sendMap(dest, decoded)
	}
	return nil
}

// ShouldProposeNow always returns true: this monitor proposes eagerly
// rather than batching rounds.
func (m *Monitor) ShouldProposeNow() bool {
	return true
}

func (m *Monitor) propose() error {
	l := buffer.NewList()
	if err := m.EncodePending(l); err != nil {
		return err
	}
	m.metrics.ObserveProposal()
	return m.paxos.Propose(l.Copy())
}
