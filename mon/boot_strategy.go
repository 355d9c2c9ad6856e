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

// BootPriority picks which existing id an unnamed boot beacon should take
// over, and what state it should land in.
type BootPriority interface {
	Pick(pending *mdsmap.Map) (id int, next mdsmap.State, ok bool)
}

// DefaultBootPriority implements the FAILED > DNE > STOPPED priority order:
// a booting daemon with no named rank prefers to resume a FAILED id
// (replaying its journal) over claiming a brand new DNE id, and only falls
// back to reviving a STOPPED id if nothing else is available.
type DefaultBootPriority struct{}

func NewDefaultBootPriority() BootPriority {
	return DefaultBootPriority{}
}

func (DefaultBootPriority) Pick(pending *mdsmap.Map) (int, mdsmap.State, bool) {
	if id, ok := firstWithState(pending, mdsmap.FAILED); ok {
		return id, mdsmap.REPLAY, true
	}
	if id, ok := firstDNE(pending); ok {
		return id, mdsmap.CREATING, true
	}
	if id, ok := firstWithState(pending, mdsmap.STOPPED); ok {
		return id, mdsmap.STARTING, true
	}
	return 0, mdsmap.DNE, false
}

func firstWithState(m *mdsmap.Map, want mdsmap.State) (int, bool) {
	ids := sortedIDs(m)
	for _, id := range ids {
		if m.MDSState[id] == want {
			return id, true
		}
	}
	return 0, false
}

// firstDNE picks the smallest id below TargetNum that is either absent from
// MDSState or recorded there as DNE, the natural next-rank slot. Ids at or
// above TargetNum are never picked.
func firstDNE(m *mdsmap.Map) (int, bool) {
	if m.TargetNum <= 0 {
		return 0, false
	}
	for id := 0; id < m.TargetNum; id++ {
		if _, exists := m.MDSState[id]; !exists || m.MDSState[id] == mdsmap.DNE {
			return id, true
		}
	}
	return 0, false
}

func sortedIDs(m *mdsmap.Map) []int {
	ids := make([]int, 0, len(m.MDSState))
	for id := range m.MDSState {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
