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

package mdsmap

import "time"

// Inst names one metadata server daemon instance.
type Inst struct {
	Name string
	Addr string
}

// Map is the immutable per-epoch snapshot of MDS cluster membership.
// Every mutation happens through Clone, never in place, so a committed Map
// handed out to callers can never be observed changing underneath them.
type Map struct {
	Epoch     int64
	Created   time.Time
	TargetNum int

	MDSState    map[int]State
	MDSInc      map[int]int64
	MDSInst     map[int]Inst
	MDSStateSeq map[int]int64
	MDSCreated  map[int]struct{}

	SameInSetSince int64
}

// New returns an empty map at epoch 0, the value create_initial starts
// from before populating TargetNum and Created.
func New() *Map {
	return &Map{
		MDSState:    make(map[int]State),
		MDSInc:      make(map[int]int64),
		MDSInst:     make(map[int]Inst),
		MDSStateSeq: make(map[int]int64),
		MDSCreated:  make(map[int]struct{}),
	}
}

// Clone returns a deep copy of m so the caller can mutate the copy (e.g.
// into a pending map) without aliasing m's internal maps.
func (m *Map) Clone() *Map {
	out := &Map{
		Epoch:          m.Epoch,
		Created:        m.Created,
		TargetNum:      m.TargetNum,
		MDSState:       make(map[int]State, len(m.MDSState)),
		MDSInc:         make(map[int]int64, len(m.MDSInc)),
		MDSInst:        make(map[int]Inst, len(m.MDSInst)),
		MDSStateSeq:    make(map[int]int64, len(m.MDSStateSeq)),
		MDSCreated:     make(map[int]struct{}, len(m.MDSCreated)),
		SameInSetSince: m.SameInSetSince,
	}
	for k, v := range m.MDSState {
		out.MDSState[k] = v
	}
	for k, v := range m.MDSInc {
		out.MDSInc[k] = v
	}
	for k, v := range m.MDSInst {
		out.MDSInst[k] = v
	}
	for k, v := range m.MDSStateSeq {
		out.MDSStateSeq[k] = v
	}
	for k := range m.MDSCreated {
		out.MDSCreated[k] = struct{}{}
	}
	return out
}

// IsUp reports whether id currently occupies an "up" state.
func (m *Map) IsUp(id int) bool {
	s, ok := m.MDSState[id]
	return ok && isUpState(s)
}

// IsDegraded is true iff some id is in REPLAY/RESOLVE/RECONNECT/REJOIN/FAILED.
func (m *Map) IsDegraded() bool {
	for _, s := range m.MDSState {
		if isDegradedState(s) {
			return true
		}
	}
	return false
}

// IsFull reports whether the count of ACTIVE ids has reached TargetNum.
func (m *Map) IsFull() bool {
	return m.activeCount() >= m.TargetNum
}

func (m *Map) activeCount() int {
	n := 0
	for _, s := range m.MDSState {
		if s == ACTIVE {
			n++
		}
	}
	return n
}

// IsStopped reports whether no id is up.
func (m *Map) IsStopped() bool {
	for id := range m.MDSState {
		if m.IsUp(id) {
			return false
		}
	}
	return true
}

func (m *Map) IsDNE(id int) bool {
	s, ok := m.MDSState[id]
	return !ok || s == DNE
}

func (m *Map) IsStoppedState(id int) bool {
	return m.MDSState[id] == STOPPED
}

func (m *Map) IsCreating(id int) bool {
	return m.MDSState[id] == CREATING
}

func (m *Map) IsStarting(id int) bool {
	return m.MDSState[id] == STARTING
}

func (m *Map) IsActive(id int) bool {
	return m.MDSState[id] == ACTIVE
}

func (m *Map) HasCreated(id int) bool {
	_, ok := m.MDSCreated[id]
	return ok
}

// HaveInst reports whether id has a recorded instance address at all.
func (m *Map) HaveInst(id int) (Inst, bool) {
	inst, ok := m.MDSInst[id]
	return inst, ok
}

// GetAddrRank returns the id whose instance address matches addr, or -1 if
// none does.
func (m *Map) GetAddrRank(addr string) int {
	for id, inst := range m.MDSInst {
		if inst.Addr == addr {
			return id
		}
	}
	return -1
}
