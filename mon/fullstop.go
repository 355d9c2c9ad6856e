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

// FullStop is the operator-initiated shutdown of the entire MDS cluster:
// it writes every committed id's terminal transition into pending and
// proposes once.
func (m *Monitor) FullStop() error {
	m.mu.Lock()
	if m.pendingMdsmap == nil || m.pendingDirty {
		m.createPendingLocked()
	}
	pending := m.pendingMdsmap

	for id, state := range m.mdsmap.MDSState {
		switch state {
		case mdsmap.ACTIVE, mdsmap.STOPPING:
			pending.MDSState[id] = mdsmap.STOPPING
		case mdsmap.CREATING, mdsmap.STANDBY:
			pending.MDSState[id] = mdsmap.DNE
		case mdsmap.STARTING:
			pending.MDSState[id] = mdsmap.STOPPED
		case mdsmap.REPLAY, mdsmap.RESOLVE, mdsmap.RECONNECT, mdsmap.REJOIN:
			pending.MDSState[id] = mdsmap.FAILED
		}
	}
	m.pendingDirty = true
	m.mu.Unlock()

	return m.propose()
}

// triggerShutdown fires once, the first time the last-MDS-stopped policy
// condition is met; repeated calls are no-ops so the host process only
// ever observes one signal.
func (m *Monitor) triggerShutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shutdownFired {
		return
	}
	m.shutdownFired = true
	close(m.shutdown)
	m.local.close()
}

// ShutdownRequested returns a channel that is closed when the monitor has
// self-signaled shutdown (mon_stop_with_last_mds policy after the last MDS
// stops).
func (m *Monitor) ShutdownRequested() <-chan struct{} {
	return m.shutdown
}
