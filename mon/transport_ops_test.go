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
	"github.com/TimeWtr/metastream/transport"
)

func TestGetMapRequest_ReadableAnswersImmediately(t *testing.T) {
	cfg := config.DefaultMonitorConfig()
	m, _, sender, _ := newTestMonitor(t, cfg)

	m.HandleGetMapRequest(transport.GetMapRequest{From: transport.Inst{Name: "mds.0", Addr: "A"}})
	assert.Equal(t, 1, sender.count())
	assert.Equal(t, 0, m.waitingForMap.Len())
}

func TestGetMapRequest_UnreadableQueuesAndDrainsOnCommit(t *testing.T) {
	cfg := config.DefaultMonitorConfig()
	m, px, sender, _ := newTestMonitor(t, cfg)

	px.mu.Lock()
	px.active = false
	px.mu.Unlock()

	m.HandleGetMapRequest(transport.GetMapRequest{From: transport.Inst{Name: "mds.0", Addr: "A"}})
	assert.Equal(t, 0, sender.count())
	require.Equal(t, 1, m.waitingForMap.Len())

	px.mu.Lock()
	px.active = true
	px.mu.Unlock()

	require.NoError(t, m.UpdateFromPaxos())
	assert.Equal(t, 1, sender.count())
	assert.Equal(t, 0, m.waitingForMap.Len())
}
