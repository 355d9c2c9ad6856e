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

// Package metrics is the observability surface for the buffer allocator
// and the monitor, grounded on the teacher's metrics package: the shape of
// Collector is kept, retargeted from double-buffer channel switching to
// raw allocation and beacon handling.
package metrics

// Collector is the indicator monitoring interface.
type Collector interface {
	CollectSwitcher(enable bool) // collector on/off switch
	AllocMetrics
	BufferMetrics
	MonitorMetrics
}

// AllocMetrics covers the raw segment allocator (B1) and total_alloc.
type AllocMetrics interface {
	// ObserveAlloc records count raw allocations of the given kind
	// totaling bytes.
	ObserveAlloc(kind string, count, bytes int64)
	// ObserveFree records count raw destructions totaling bytes.
	ObserveFree(kind string, count, bytes int64)
	// SetTotalAlloc publishes the current process-wide total_alloc value.
	SetTotalAlloc(bytes int64)
}

// BufferMetrics covers the buffer list (B3) gather/splice/substr operations.
type BufferMetrics interface {
	ObserveAppend(bytes int64)
	ObserveSplice()
	ObserveSubstr()
	ObserveCStr(rebuilt bool)
}

// MonitorMetrics covers the MDS monitor (M2).
type MonitorMetrics interface {
	ObserveBeacon(state string, dropped bool)
	ObserveProposal()
	ObserveTick(transitions int)
	ObserveCommand(cmd string, rc int32)
}
