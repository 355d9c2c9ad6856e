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

package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TimeWtr/metastream/buffer"
	"github.com/TimeWtr/metastream/config"
	"github.com/TimeWtr/metastream/metrics"
	"github.com/TimeWtr/metastream/mon"
	paxos_mocks "github.com/TimeWtr/metastream/paxos/mocks"
	transport_mocks "github.com/TimeWtr/metastream/transport/mocks"
	"go.uber.org/mock/gomock"
)

// TestPrometheus_SatisfiesBufferSinks exercises *metrics.Prometheus through
// buffer's duck-typed sink installers and through mon's metrics.MonitorMetrics
// parameter, the same single collector backing all three surfaces the way a
// real deployment wires one registry to every subsystem.
func TestPrometheus_SatisfiesBufferSinks(t *testing.T) {
	p := metrics.NewPrometheus()
	p.CollectSwitcher(true)

	buffer.SetAccountingSink(p)
	buffer.SetBufferSink(p)
	t.Cleanup(func() {
		buffer.SetAccountingSink(nil)
		buffer.SetBufferSink(nil)
	})

	l := buffer.NewList()
	l.AppendBytes([]byte("hello"))
	sub := l.SubstrOf(0, 2)
	sub.Clear()
	l.Clear()

	require.Equal(t, int64(0), buffer.TotalAlloc())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	px := paxos_mocks.NewMockFacade(ctrl)
	px.EXPECT().IsActive().Return(true).AnyTimes()
	tp := transport_mocks.NewMockSender(ctrl)

	cond := config.NewCondition(config.DefaultMonitorConfig())
	m := mon.New(0, cond, px, tp, nil, p)
	require.True(t, m.IsLeader())
}
