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
	"time"

	"github.com/TimeWtr/metastream/buffer"
	"github.com/TimeWtr/metastream/codec"
)

// Encode serializes every attribute of m via the typed codec, appending the
// encoding onto out. Maps keyed by int are encoded as int32 keys since no
// cluster is expected to exceed that range.
func (m *Map) Encode(out *buffer.List) error {
	if err := codec.Encode(m.Epoch, out); err != nil {
		return err
	}
	if err := codec.Encode(m.Created.UnixNano(), out); err != nil {
		return err
	}
	if err := codec.Encode(int32(m.TargetNum), out); err != nil {
		return err
	}
	if err := codec.Encode(toInt32StateMap(m.MDSState), out); err != nil {
		return err
	}
	if err := codec.Encode(toInt32Int64Map(m.MDSInc), out); err != nil {
		return err
	}
	names, addrs := splitInstMap(m.MDSInst)
	if err := codec.Encode(names, out); err != nil {
		return err
	}
	if err := codec.Encode(addrs, out); err != nil {
		return err
	}
	if err := codec.Encode(toInt32Int64Map(m.MDSStateSeq), out); err != nil {
		return err
	}
	if err := codec.Encode(toInt32Set(m.MDSCreated), out); err != nil {
		return err
	}
	return codec.Encode(m.SameInSetSince, out)
}

// Decode reads a Map from in starting at *cursor, advancing the cursor past
// everything consumed.
func Decode(in *buffer.List, cursor *int) (*Map, error) {
	m := New()

	if err := codec.Decode(&m.Epoch, in, cursor); err != nil {
		return nil, err
	}
	var createdNanos int64
	if err := codec.Decode(&createdNanos, in, cursor); err != nil {
		return nil, err
	}
	m.Created = time.Unix(0, createdNanos).UTC()

	var target int32
	if err := codec.Decode(&target, in, cursor); err != nil {
		return nil, err
	}
	m.TargetNum = int(target)

	var states map[int32]int32
	if err := codec.Decode(&states, in, cursor); err != nil {
		return nil, err
	}
	m.MDSState = fromInt32StateMap(states)

	var inc map[int32]int64
	if err := codec.Decode(&inc, in, cursor); err != nil {
		return nil, err
	}
	m.MDSInc = fromInt32Int64Map(inc)

	var names map[int32]string
	if err := codec.Decode(&names, in, cursor); err != nil {
		return nil, err
	}
	var addrs map[int32]string
	if err := codec.Decode(&addrs, in, cursor); err != nil {
		return nil, err
	}
	m.MDSInst = joinInstMap(names, addrs)

	var seq map[int32]int64
	if err := codec.Decode(&seq, in, cursor); err != nil {
		return nil, err
	}
	m.MDSStateSeq = fromInt32Int64Map(seq)

	var created map[int32]int32
	if err := codec.Decode(&created, in, cursor); err != nil {
		return nil, err
	}
	m.MDSCreated = fromInt32Set(created)

	if err := codec.Decode(&m.SameInSetSince, in, cursor); err != nil {
		return nil, err
	}
	return m, nil
}

func toInt32StateMap(in map[int]State) map[int32]int32 {
	out := make(map[int32]int32, len(in))
	for k, v := range in {
		out[int32(k)] = int32(v)
	}
	return out
}

func fromInt32StateMap(in map[int32]int32) map[int]State {
	out := make(map[int]State, len(in))
	for k, v := range in {
		out[int(k)] = State(v)
	}
	return out
}

func toInt32Int64Map(in map[int]int64) map[int32]int64 {
	out := make(map[int32]int64, len(in))
	for k, v := range in {
		out[int32(k)] = v
	}
	return out
}

func fromInt32Int64Map(in map[int32]int64) map[int]int64 {
	out := make(map[int]int64, len(in))
	for k, v := range in {
		out[int(k)] = v
	}
	return out
}

func splitInstMap(in map[int]Inst) (names, addrs map[int32]string) {
	names = make(map[int32]string, len(in))
	addrs = make(map[int32]string, len(in))
	for k, v := range in {
		names[int32(k)] = v.Name
		addrs[int32(k)] = v.Addr
	}
	return names, addrs
}

func joinInstMap(names, addrs map[int32]string) map[int]Inst {
	out := make(map[int]Inst, len(names))
	for k, name := range names {
		out[int(k)] = Inst{Name: name, Addr: addrs[k]}
	}
	return out
}

func toInt32Set(in map[int]struct{}) map[int32]int32 {
	out := make(map[int32]int32, len(in))
	for k := range in {
		out[int32(k)] = 1
	}
	return out
}

func fromInt32Set(in map[int32]int32) map[int]struct{} {
	out := make(map[int]struct{}, len(in))
	for k := range in {
		out[int(k)] = struct{}{}
	}
	return out
}
