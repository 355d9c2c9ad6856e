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

package buffer

import "sync/atomic"

// AccountingSink receives allocation/free observations. Its method set is
// duck-type compatible with metrics.AllocMetrics so a *metrics.Prometheus
// can be installed directly with SetAccountingSink without buffer
// importing metrics - this is the "injected accounting sink" global-state
// substitute called for in the design notes, instead of a process-wide
// singleton.
type AccountingSink interface {
	ObserveAlloc(kind string, count, bytes int64)
	ObserveFree(kind string, count, bytes int64)
	SetTotalAlloc(bytes int64)
}

type noopSink struct{}

func (noopSink) ObserveAlloc(string, int64, int64) {}
func (noopSink) ObserveFree(string, int64, int64)  {}
func (noopSink) SetTotalAlloc(int64)               {}

// BufferSink receives List/View operation observations. Its method set is
// duck-type compatible with metrics.BufferMetrics.
type BufferSink interface {
	ObserveAppend(bytes int64)
	ObserveSplice()
	ObserveSubstr()
	ObserveCStr(rebuilt bool)
}

type noopBufferSink struct{}

func (noopBufferSink) ObserveAppend(int64)    {}
func (noopBufferSink) ObserveSplice()         {}
func (noopBufferSink) ObserveSubstr()         {}
func (noopBufferSink) ObserveCStr(bool)       {}

var (
	totalAlloc atomic.Int64
	sink       AccountingSink = noopSink{}
	bufSink    BufferSink     = noopBufferSink{}
)

// SetAccountingSink installs the diagnostics sink. Passing nil restores the
// no-op sink.
func SetAccountingSink(s AccountingSink) {
	if s == nil {
		s = noopSink{}
	}
	sink = s
}

// SetBufferSink installs the List/View operation sink. Passing nil restores
// the no-op sink.
func SetBufferSink(s BufferSink) {
	if s == nil {
		s = noopBufferSink{}
	}
	bufSink = s
}

// TotalAlloc returns the cumulative bytes currently held by all
// heap/page-aligned raws.
func TotalAlloc() int64 {
	return totalAlloc.Load()
}

func addAlloc(kind RawKind, n int64) {
	v := totalAlloc.Add(n)
	sink.ObserveAlloc(kind.String(), 1, n)
	sink.SetTotalAlloc(v)
}

func subAlloc(kind RawKind, n int64) {
	v := totalAlloc.Add(-n)
	sink.ObserveFree(kind.String(), 1, n)
	sink.SetTotalAlloc(v)
}
