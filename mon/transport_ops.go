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

	"github.com/TimeWtr/metastream/buffer"
	"github.com/TimeWtr/metastream/mdsmap"
	"github.com/TimeWtr/metastream/transport"
)

// broadcastMap sends the newly committed map to every up MDS.
func (m *Monitor) broadcastMap(mm *mdsmap.Map) {
	blob, err := encodeMapBlob(mm)
	if err != nil {
		log.Printf("mon: broadcastMap encode: %v", err)
		return
	}
	for id, inst := range mm.MDSInst {
		if !mm.IsUp(id) {
			continue
		}
		m.sendMapBlob(transport.Destination{Rank: id, Addr: inst.Addr}, blob)
	}
}

// sendMap explicitly delivers the latest map to a single destination,
// e.g. a departing STOPPED daemon that would not receive a broadcast.
func (m *Monitor) sendMap(dest transport.Destination, mm *mdsmap.Map) {
	blob, err := encodeMapBlob(mm)
	if err != nil {
		log.Printf("mon: sendMap encode: %v", err)
		return
	}
	m.sendMapBlob(dest, blob)
}

func (m *Monitor) sendMapBlob(dest transport.Destination, blob []byte) {
	msg := transport.MapPush{ID: transport.NewCorrelationID(), Blob: blob}
	if err := m.transport.SendMessage(msg, dest); err != nil {
		log.Printf("mon: send map to rank %d: %v", dest.Rank, err)
	}
}

func encodeMapBlob(mm *mdsmap.Map) ([]byte, error) {
	l := buffer.NewList()
	if err := mm.Encode(l); err != nil {
		return nil, err
	}
	return l.Copy(), nil
}

// HandleGetMapRequest answers a GetMapRequest: if the Paxos log already has
// a readable commit, the requester gets the latest map immediately;
// otherwise it is queued on waitingForMap and picked up by the next
// UpdateFromPaxos, the way a replica that asks before the first map exists
// is expected to wait rather than be told to retry.
func (m *Monitor) HandleGetMapRequest(req transport.GetMapRequest) {
	m.mu.Lock()
	dest := transport.Destination{Rank: m.mdsmap.GetAddrRank(req.From.Addr), Addr: req.From.Addr}
	if !m.paxos.IsReadable() {
		m.waitingForMap.Push(dest)
		m.mu.Unlock()
		return
	}
	mm := m.mdsmap
	m.mu.Unlock()

	m.sendMap(dest, mm)
}
