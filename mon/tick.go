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

import "github.com/TimeWtr/metastream/mdsmap"

// nextOnTimeout is the failure-detector transition table: what a
// committed state becomes once its beacon grace period has elapsed.
func nextOnTimeout(committed mdsmap.State, hasCreated bool) (mdsmap.State, bool) {
	switch committed {
	case mdsmap.STANDBY:
		if hasCreated {
			return mdsmap.STOPPED, true
		}
		return mdsmap.DNE, true
	case mdsmap.CREATING:
		return mdsmap.DNE, true
	case mdsmap.STARTING:
		return mdsmap.STOPPED, true
	case mdsmap.REPLAY, mdsmap.RESOLVE, mdsmap.REJOIN, mdsmap.ACTIVE, mdsmap.STOPPING:
		return mdsmap.FAILED, true
	default:
		return committed, false
	}
}

// Tick runs the periodic failure detector. It only acts when this replica
// is leader with an active Paxos; otherwise it is a no-op so a scheduler
// can call it unconditionally on every replica.
func (m *Monitor) Tick() error {
	m.mu.Lock()
	if !m.paxos.IsActive() {
		m.mu.Unlock()
		return nil
	}

	now := m.clock.Now()

	if m.pendingMdsmap == nil || m.pendingDirty {
		m.createPendingLocked()
	}
	pending := m.pendingMdsmap

	for id := range m.mdsmap.MDSState {
		if !m.mdsmap.IsUp(id) {
			m.deadlines.Remove(id)
			continue
		}
		last, ok := m.lastBeacon[id]
		if !ok {
			last = now
			m.lastBeacon[id] = now
		}
		m.deadlines.Set(id, last.Add(m.cfg.BeaconGrace))
	}

	transitions := 0
	for _, id := range m.deadlines.Due(now) {
		next, changed := nextOnTimeout(m.mdsmap.MDSState[id], m.mdsmap.HasCreated(id))
		if !changed {
			continue
		}
		pending.MDSState[id] = next
		delete(pending.MDSStateSeq, id)
		m.pendingDirty = true
		transitions++
	}
	m.metrics.ObserveTick(transitions)
	m.mu.Unlock()

	if transitions > 0 {
		return m.propose()
	}
	return nil
}
