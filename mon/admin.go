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
	"strconv"
	"strings"
	"syscall"

	"github.com/TimeWtr/metastream/config"
	"github.com/TimeWtr/metastream/mdsmap"
	"github.com/TimeWtr/metastream/transport"
)

// HandleCommand dispatches an admin command and returns the ack to send
// back. It never panics on malformed input: an unrecognized shape always
// produces EINVAL, never a dropped connection.
func (m *Monitor) HandleCommand(cmd []string, cond *config.Condition) transport.AdminCommandAck {
	if len(cmd) == 0 {
		return m.reject("empty command")
	}

	var ack transport.AdminCommandAck
	switch cmd[0] {
	case "stop":
		ack = m.cmdStop(cmd)
	case "set_target_num":
		ack = m.cmdSetTargetNum(cmd, cond)
	case "dump":
		ack = m.cmdDump()
	default:
		ack = m.reject("unrecognized command: " + cmd[0])
	}
	m.metrics.ObserveCommand(cmd[0], ack.RC)
	return ack
}

func (m *Monitor) reject(msg string) transport.AdminCommandAck {
	return transport.AdminCommandAck{ID: transport.NewCorrelationID(), RC: -int32(syscall.EINVAL), Msg: msg}
}

func (m *Monitor) cmdStop(cmd []string) transport.AdminCommandAck {
	if len(cmd) != 2 {
		return m.reject("usage: stop <id>")
	}
	id, err := strconv.Atoi(cmd[1])
	if err != nil {
		return m.reject("invalid id: " + cmd[1])
	}

	m.mu.Lock()
	if m.mdsmap.MDSState[id] != mdsmap.ACTIVE {
		m.mu.Unlock()
		return transport.AdminCommandAck{
			ID: transport.NewCorrelationID(), RC: -int32(syscall.EEXIST),
			Msg: "mds." + cmd[1] + " is not active",
		}
	}

	if m.pendingMdsmap == nil || m.pendingDirty {
		m.createPendingLocked()
	}
	m.pendingMdsmap.MDSState[id] = mdsmap.STOPPING
	m.pendingDirty = true
	m.mu.Unlock()

	if err := m.propose(); err != nil {
		return m.reject("propose failed: " + err.Error())
	}
	return transport.AdminCommandAck{ID: transport.NewCorrelationID(), RC: 0, Msg: "mds." + cmd[1] + " marked stopping"}
}

func (m *Monitor) cmdSetTargetNum(cmd []string, _ *config.Condition) transport.AdminCommandAck {
	if len(cmd) != 2 {
		return m.reject("usage: set_target_num <n>")
	}
	n, err := strconv.Atoi(cmd[1])
	if err != nil || n < 0 {
		return m.reject("invalid target_num: " + cmd[1])
	}

	m.mu.Lock()
	if m.pendingMdsmap == nil || m.pendingDirty {
		m.createPendingLocked()
	}
	m.pendingMdsmap.TargetNum = n
	m.pendingDirty = true
	m.mu.Unlock()

	if err := m.propose(); err != nil {
		return m.reject("propose failed: " + err.Error())
	}
	return transport.AdminCommandAck{ID: transport.NewCorrelationID(), RC: 0, Msg: "target_num set to " + cmd[1]}
}

func (m *Monitor) cmdDump() transport.AdminCommandAck {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sb strings.Builder
	if err := m.mdsmap.DumpText(&sb); err != nil {
		return m.reject("dump failed: " + err.Error())
	}
	return transport.AdminCommandAck{ID: transport.NewCorrelationID(), RC: 0, Msg: sb.String()}
}
