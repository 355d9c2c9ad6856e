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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimeWtr/metastream/buffer"
)

func sampleMap() *Map {
	m := New()
	m.Epoch = 3
	m.Created = time.Unix(1700000000, 0).UTC()
	m.TargetNum = 2
	m.MDSState[0] = ACTIVE
	m.MDSState[1] = FAILED
	m.MDSInc[0] = 1
	m.MDSInst[0] = Inst{Name: "mds.0", Addr: "10.0.0.1:6800"}
	m.MDSStateSeq[0] = 7
	m.MDSCreated[0] = struct{}{}
	m.SameInSetSince = 2
	return m
}

func TestMap_Predicates(t *testing.T) {
	m := sampleMap()
	assert.True(t, m.IsUp(0))
	assert.False(t, m.IsUp(1))
	assert.True(t, m.IsDegraded())
	assert.False(t, m.IsFull())
	assert.True(t, m.IsActive(0))
	assert.True(t, m.HasCreated(0))
	assert.False(t, m.HasCreated(1))
	assert.Equal(t, 0, m.GetAddrRank("10.0.0.1:6800"))
	assert.Equal(t, -1, m.GetAddrRank("nope"))
}

func TestMap_CloneIsIndependent(t *testing.T) {
	m := sampleMap()
	c := m.Clone()
	c.MDSState[0] = STOPPED
	assert.Equal(t, ACTIVE, m.MDSState[0])
	assert.Equal(t, STOPPED, c.MDSState[0])
}

func TestMap_EncodeDecodeRoundTrip(t *testing.T) {
	m := sampleMap()
	l := buffer.NewList()
	require.NoError(t, m.Encode(l))

	cursor := 0
	decoded, err := Decode(l, &cursor)
	require.NoError(t, err)

	assert.Equal(t, m.Epoch, decoded.Epoch)
	assert.Equal(t, m.TargetNum, decoded.TargetNum)
	assert.Equal(t, m.MDSState, decoded.MDSState)
	assert.Equal(t, m.MDSInc, decoded.MDSInc)
	assert.Equal(t, m.MDSInst, decoded.MDSInst)
	assert.Equal(t, m.MDSStateSeq, decoded.MDSStateSeq)
	assert.Equal(t, m.MDSCreated, decoded.MDSCreated)
	assert.Equal(t, m.SameInSetSince, decoded.SameInSetSince)
	assert.True(t, m.Created.Equal(decoded.Created))
	assert.Equal(t, l.Length(), cursor)
}

func TestMap_DumpText(t *testing.T) {
	m := sampleMap()
	var sb strings.Builder
	require.NoError(t, m.DumpText(&sb))
	assert.Contains(t, sb.String(), "mds.0")
	assert.Contains(t, sb.String(), "state=active")
}
