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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimeWtr/metastream/config"
)

func TestScenario_AdminSetTargetNum(t *testing.T) {
	cfg := config.DefaultMonitorConfig()
	m, _, _, _ := newTestMonitor(t, cfg)
	cond := config.NewCondition(cfg)

	ack := m.HandleCommand([]string{"set_target_num", "5"}, cond)
	assert.Equal(t, int32(0), ack.RC)
	require.NoError(t, m.UpdateFromPaxos())
	assert.Equal(t, 5, m.Committed().TargetNum)
}

func TestScenario_AdminSetTargetNum_Invalid(t *testing.T) {
	cfg := config.DefaultMonitorConfig()
	m, _, _, _ := newTestMonitor(t, cfg)
	cond := config.NewCondition(cfg)

	ack := m.HandleCommand([]string{"set_target_num", "-1"}, cond)
	assert.NotEqual(t, int32(0), ack.RC)

	ack2 := m.HandleCommand([]string{"set_target_num", "not-a-number"}, cond)
	assert.NotEqual(t, int32(0), ack2.RC)
}
