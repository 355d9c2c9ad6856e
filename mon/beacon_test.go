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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimeWtr/metastream/config"
	"github.com/TimeWtr/metastream/mdsmap"
	"github.com/TimeWtr/metastream/transport"
)

func newTestMonitor(t *testing.T, cfg config.MonitorConfig) (*Monitor, *fakePaxos, *fakeSender, *fakeClock) {
	t.Helper()
	cond := config.NewCondition(cfg)
	px := newFakePaxos()
	sender := &fakeSender{}
	ck := newFakeClock(time.Unix(1700000000, 0))

	m := New(0, cond, px, sender, ck, nil)
	m.CreateInitial()
	require.NoError(t, m.propose())
	require.NoError(t, m.UpdateFromPaxos())
	return m, px, sender, ck
}

func TestScenario_BootNew(t *testing.T) {
	cfg := config.DefaultMonitorConfig()
	cfg.NumMDS = 1
	m, _, _, _ := newTestMonitor(t, cfg)

	b := transport.Beacon{
		MDSInst: transport.Inst{Name: "mds.0", Addr: "A"},
		From:    -1,
		State:   int32(mdsmap.BOOT),
		Seq:     1,
	}
	res := m.PreprocessQuery(b)
	require.Equal(t, NeedsUpdate, res.Verdict)

	require.NoError(t, m.PrepareUpdate(res.From, b))
	require.NoError(t, m.UpdateFromPaxos())

	committed := m.Committed()
	assert.Equal(t, mdsmap.CREATING, committed.MDSState[0])
	assert.Equal(t, int64(1), committed.MDSInc[0])
	assert.Equal(t, transport.Inst{Name: "mds.0", Addr: "A"}, transport.Inst(committed.MDSInst[0]))
}

func TestScenario_BootTakeFailed(t *testing.T) {
	cfg := config.DefaultMonitorConfig()
	cfg.NumMDS = 2
	m, _, _, _ := newTestMonitor(t, cfg)

	m.mu.Lock()
	m.mdsmap.MDSState[1] = mdsmap.FAILED
	m.mu.Unlock()

	b := transport.Beacon{
		MDSInst: transport.Inst{Name: "mds.?", Addr: "B"},
		From:    -1,
		State:   int32(mdsmap.BOOT),
		Seq:     1,
	}
	res := m.PreprocessQuery(b)
	require.Equal(t, NeedsUpdate, res.Verdict)
	require.NoError(t, m.PrepareUpdate(res.From, b))
	require.NoError(t, m.UpdateFromPaxos())

	assert.Equal(t, mdsmap.REPLAY, m.Committed().MDSState[1])
}

func TestScenario_CreateToActive(t *testing.T) {
	cfg := config.DefaultMonitorConfig()
	cfg.NumMDS = 1
	m, _, _, ck := newTestMonitor(t, cfg)

	// Boot mds 0 into CREATING first.
	boot := transport.Beacon{MDSInst: transport.Inst{Name: "mds.0", Addr: "A"}, From: -1, State: int32(mdsmap.BOOT), Seq: 1}
	res := m.PreprocessQuery(boot)
	require.NoError(t, m.PrepareUpdate(res.From, boot))
	require.NoError(t, m.UpdateFromPaxos())
	require.Equal(t, mdsmap.CREATING, m.Committed().MDSState[0])

	ck.Advance(time.Second)
	active := transport.Beacon{MDSInst: transport.Inst{Name: "mds.0", Addr: "A"}, From: 0, State: int32(mdsmap.ACTIVE), Seq: 5, LastEpochSeen: m.Committed().Epoch}
	res2 := m.PreprocessQuery(active)
	require.Equal(t, NeedsUpdate, res2.Verdict)
	require.NoError(t, m.PrepareUpdate(res2.From, active))
	require.NoError(t, m.UpdateFromPaxos())

	committed := m.Committed()
	assert.Equal(t, mdsmap.ACTIVE, committed.MDSState[0])
	assert.True(t, committed.HasCreated(0))
	assert.Equal(t, committed.Epoch, committed.SameInSetSince)
}

func TestScenario_DegradationDemotesStartingToStandby(t *testing.T) {
	cfg := config.DefaultMonitorConfig()
	cfg.NumMDS = 2
	m, _, _, _ := newTestMonitor(t, cfg)

	m.mu.Lock()
	m.mdsmap.MDSState[0] = mdsmap.FAILED
	m.mdsmap.MDSState[1] = mdsmap.STOPPED
	m.mu.Unlock()

	b := transport.Beacon{MDSInst: transport.Inst{Name: "mds.1", Addr: "C"}, From: 1, State: int32(mdsmap.STARTING), Seq: 1, LastEpochSeen: m.Committed().Epoch}
	res := m.PreprocessQuery(b)
	require.Equal(t, NeedsUpdate, res.Verdict)
	require.NoError(t, m.PrepareUpdate(res.From, b))
	require.NoError(t, m.UpdateFromPaxos())

	assert.Equal(t, mdsmap.STANDBY, m.Committed().MDSState[1])
}

func TestScenario_TimeoutToFailed(t *testing.T) {
	cfg := config.DefaultMonitorConfig()
	cfg.NumMDS = 1
	m, _, _, ck := newTestMonitor(t, cfg)

	boot := transport.Beacon{MDSInst: transport.Inst{Name: "mds.0", Addr: "A"}, From: -1, State: int32(mdsmap.BOOT), Seq: 1}
	res := m.PreprocessQuery(boot)
	require.NoError(t, m.PrepareUpdate(res.From, boot))
	require.NoError(t, m.UpdateFromPaxos())

	active := transport.Beacon{MDSInst: transport.Inst{Name: "mds.0", Addr: "A"}, From: 0, State: int32(mdsmap.ACTIVE), Seq: 2, LastEpochSeen: m.Committed().Epoch}
	res2 := m.PreprocessQuery(active)
	require.NoError(t, m.PrepareUpdate(res2.From, active))
	require.NoError(t, m.UpdateFromPaxos())
	require.Equal(t, mdsmap.ACTIVE, m.Committed().MDSState[0])

	ck.Advance(cfg.BeaconGrace + time.Second)
	require.NoError(t, m.Tick())
	require.NoError(t, m.UpdateFromPaxos())

	committed := m.Committed()
	assert.Equal(t, mdsmap.FAILED, committed.MDSState[0])
	_, hasSeq := committed.MDSStateSeq[0]
	assert.False(t, hasSeq)
}

func TestScenario_AdminStopActive(t *testing.T) {
	cfg := config.DefaultMonitorConfig()
	m, _, _, _ := newTestMonitor(t, cfg)
	cond := config.NewCondition(cfg)

	m.mu.Lock()
	m.mdsmap.MDSState[2] = mdsmap.ACTIVE
	m.mu.Unlock()

	ack := m.HandleCommand([]string{"stop", "2"}, cond)
	assert.Equal(t, int32(0), ack.RC)
	require.NoError(t, m.UpdateFromPaxos())
	assert.Equal(t, mdsmap.STOPPING, m.Committed().MDSState[2])

	m.mu.Lock()
	m.mdsmap.MDSState[2] = mdsmap.STOPPED
	m.mu.Unlock()
	ack2 := m.HandleCommand([]string{"stop", "2"}, cond)
	assert.NotEqual(t, int32(0), ack2.RC)
}
