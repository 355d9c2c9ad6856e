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

import (
	"fmt"
	"io"
	"sort"
)

// DumpText writes a human-readable table of the map to w, for the admin
// command handler's "dump" verb.
func (m *Map) DumpText(w io.Writer) error {
	ids := make([]int, 0, len(m.MDSState))
	for id := range m.MDSState {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	if _, err := fmt.Fprintf(w, "epoch %d created %s target_num %d\n", m.Epoch, m.Created.Format("2006-01-02T15:04:05Z"), m.TargetNum); err != nil {
		return err
	}
	for _, id := range ids {
		inst := m.MDSInst[id]
		if _, err := fmt.Fprintf(w, "  mds.%d\t%s\t%s\tstate=%s\tinc=%d\n",
			id, inst.Name, inst.Addr, GetStateName(m.MDSState[id]), m.MDSInc[id]); err != nil {
			return err
		}
	}
	return nil
}
