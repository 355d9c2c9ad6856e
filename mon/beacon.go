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
	"log"

	"github.com/TimeWtr/metastream/errorx"
	"github.com/TimeWtr/metastream/mdsmap"
	"github.com/TimeWtr/metastream/transport"
)

// QueryVerdict is the outcome of PreprocessQuery.
type QueryVerdict int

const (
	// ForwardToLeader means this replica is not the leader; the caller
	// must resend the beacon to whichever replica is.
	ForwardToLeader QueryVerdict = iota
	// Drop means the beacon requires no further action: stale, illegal,
	// or a duplicate that changes nothing.
	Drop
	// Accepted means the beacon was recorded (last_beacon, echo reply)
	// and requires no mutation.
	Accepted
	// NeedsUpdate means PrepareUpdate must run for this beacon.
	NeedsUpdate
)

// QueryResult is everything PreprocessQuery computes: the verdict, the
// resolved sender id (which may differ from the beacon's own From field
// once a BOOT beacon is matched to a known address), and an optional echo
// reply to send back immediately.
type QueryResult struct {
	Verdict QueryVerdict
	From    int
	Reply   *transport.Beacon
}

// PreprocessQuery answers reads and short-circuits beacons that do not
// require a state change, per the six-step algorithm of the monitor
// design.
func (m *Monitor) PreprocessQuery(b transport.Beacon) QueryResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.IsLeader() {
		return QueryResult{Verdict: ForwardToLeader, From: b.From}
	}

	from := int(b.From)
	if b.State == int32(mdsmap.BOOT) {
		already := m.mdsmap.GetAddrRank(b.MDSInst.Addr)
		if already < 0 {
			return QueryResult{Verdict: NeedsUpdate, From: from}
		}
		from = already
	}

	if seq, ok := m.mdsmap.MDSStateSeq[from]; ok && seq > b.Seq {
		log.Printf("mon: dropping beacon from mds.%d seq %d (last %d): %v", from, b.Seq, seq, errorx.ErrStaleBeacon)
		m.metrics.ObserveBeacon(mdsmap.GetStateName(mdsmap.State(b.State)), true)
		return QueryResult{Verdict: Drop, From: from}
	}

	var reply *transport.Beacon
	if b.State != int32(mdsmap.STOPPED) {
		m.lastBeacon[from] = m.clock.Now()
		reply = &transport.Beacon{
			ID:    transport.NewCorrelationID(),
			Epoch: m.mdsmap.Epoch,
			State: b.State,
			Seq:   b.Seq,
		}
	}

	if _, exists := m.mdsmap.MDSState[from]; !exists && b.State != int32(mdsmap.BOOT) {
		log.Printf("mon: dropping beacon from mds.%d: %v", from, errorx.ErrUnknownSender)
		m.metrics.ObserveBeacon(mdsmap.GetStateName(mdsmap.State(b.State)), true)
		return QueryResult{Verdict: Drop, From: from, Reply: reply}
	}

	observed := mdsmap.State(b.State)
	committed := m.mdsmap.MDSState[from]
	if observed != committed && b.LastEpochSeen == m.mdsmap.Epoch {
		return QueryResult{Verdict: NeedsUpdate, From: from, Reply: reply}
	}

	m.metrics.ObserveBeacon(mdsmap.GetStateName(observed), false)
	return QueryResult{Verdict: Accepted, From: from, Reply: reply}
}

// PrepareUpdate runs the boot-assignment decision tree and degradation
// gate for a beacon PreprocessQuery marked NeedsUpdate, mutates
// pendingMdsmap, stages a proposal, and registers a commit continuation
// that performs the post-commit side effects (OSD-map-equivalent push on
// BOOT, explicit map send on STOPPED, self-shutdown on last-MDS-stopped).
func (m *Monitor) PrepareUpdate(from int, b transport.Beacon) error {
	m.mu.Lock()

	if m.pendingMdsmap == nil || m.pendingDirty {
		m.createPendingLocked()
	}
	pending := m.pendingMdsmap

	observedRaw := mdsmap.State(b.State)
	var next mdsmap.State
	var resolvedFrom int
	if observedRaw == mdsmap.BOOT {
		inst := mdsmap.Inst{Name: b.MDSInst.Name, Addr: b.MDSInst.Addr}
		next, resolvedFrom = m.resolveBootAssignment(pending, from, inst, observedRaw)
		if resolvedFrom < 0 {
			// Duplicate boot for an address already pending, or no free id
			// to assign: drop silently, nothing staged.
			m.mu.Unlock()
			return nil
		}
	} else {
		// Ordinary state progression from an already-known id: the
		// decision tree only governs (re)assignment of an identity, so
		// the daemon's own reported state is taken as-is.
		next, resolvedFrom = observedRaw, from
	}
	from = resolvedFrom

	joiningActiveSet := next == mdsmap.STARTING || next == mdsmap.CREATING ||
		m.mdsmap.IsStarting(from) || m.mdsmap.IsCreating(from)
	if joiningActiveSet && (pending.IsDegraded() || pending.IsFull()) {
		next = mdsmap.STANDBY
	}

	committedState := m.mdsmap.MDSState[from]
	pending.MDSState[from] = next
	if pending.IsUp(from) {
		pending.MDSStateSeq[from] = b.Seq
	} else {
		delete(pending.MDSStateSeq, from)
	}
	switch next {
	case mdsmap.REPLAY, mdsmap.ACTIVE, mdsmap.STOPPED:
		pending.SameInSetSince = pending.Epoch
	}
	if next == mdsmap.ACTIVE && committedState == mdsmap.CREATING {
		pending.MDSCreated[from] = struct{}{}
	}

	m.pendingDirty = true
	m.mu.Unlock()

	if err := m.propose(); err != nil {
		return err
	}
	m.paxos.WaitForCommit(func() {
		m.onBeaconCommitted(from, observedRaw)
	})
	return nil
}

// resolveBootAssignment implements steps 1-4 of the boot-assignment
// decision tree. It returns the derived next state and the id the
// assignment ultimately applies to (which may change from the input
// from when bully-mode protection rejects a named id).
func (m *Monitor) resolveBootAssignment(pending *mdsmap.Map, from int, inst mdsmap.Inst, observed mdsmap.State) (mdsmap.State, int) {
	if from >= 0 {
		existing, ok := m.mdsmap.HaveInst(from)
		if (!ok || existing.Addr != inst.Addr) && !m.cfg.AllowBully {
			from = -1
		} else {
			pending.MDSInst[from] = inst
			pending.MDSInc[from]++
			m.lastBeacon[from] = m.clock.Now()
			return nextFromCommitted(m.mdsmap.MDSState[from]), from
		}
	}

	if from < 0 {
		for _, existing := range pending.MDSInst {
			if existing.Addr == inst.Addr {
				return mdsmap.DNE, -1 // duplicate boot: caller must treat this as a drop
			}
		}
		priority := NewDefaultBootPriority()
		if id, next, ok := priority.Pick(pending); ok {
			from = id
			pending.MDSInst[from] = inst
			pending.MDSInc[from]++
			m.lastBeacon[from] = m.clock.Now()
			return next, from
		}
		return mdsmap.DNE, -1
	}

	pending.MDSInst[from] = inst
	pending.MDSInc[from]++
	m.lastBeacon[from] = m.clock.Now()
	return observed, from
}

// nextFromCommitted derives the next state for a beacon naming a specific
// existing id, from that id's committed state.
func nextFromCommitted(committed mdsmap.State) mdsmap.State {
	switch committed {
	case mdsmap.STOPPED, mdsmap.STARTING, mdsmap.STANDBY:
		return mdsmap.STARTING
	case mdsmap.DNE, mdsmap.CREATING:
		return mdsmap.CREATING
	default:
		return mdsmap.REPLAY
	}
}

func (m *Monitor) onBeaconCommitted(from int, beaconState mdsmap.State) {
	m.mu.Lock()
	committed := m.mdsmap
	m.mu.Unlock()

	switch beaconState {
	case mdsmap.BOOT:
		if inst, ok := committed.HaveInst(from); ok {
			m.sendMap(transport.Destination{Rank: from, Addr: inst.Addr}, committed)
		}
	case mdsmap.STOPPED:
		if inst, ok := committed.HaveInst(from); ok {
			m.sendMap(transport.Destination{Rank: from, Addr: inst.Addr}, committed)
		}
	}

	if committed.IsStopped() && m.cfg.StopWithLastMDS && committed.Epoch > 1 {
		log.Printf("mon: last MDS stopped, self-signaling shutdown")
		m.triggerShutdown()
	}
}
