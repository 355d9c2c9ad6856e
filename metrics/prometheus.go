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

package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	mc       *Prometheus
	registry *prometheus.Registry
)

// GetHandler returns the HTTP handler for docking with whatever framework
// is serving /metrics.
func GetHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

var _ Collector = (*Prometheus)(nil)

type Prometheus struct {
	enabled bool

	allocCounts  *prometheus.CounterVec // raw allocations by kind
	allocBytes   *prometheus.CounterVec // bytes allocated by kind
	freeCounts   *prometheus.CounterVec // raw frees by kind
	freeBytes    *prometheus.CounterVec
	totalAlloc   prometheus.Gauge // process-wide total_alloc
	appendBytes  prometheus.Counter
	spliceCounts prometheus.Counter
	substrCounts prometheus.Counter
	cstrRebuilds prometheus.Counter
	cstrCalls    prometheus.Counter
	beaconCounts *prometheus.CounterVec // by state
	beaconDrops  prometheus.Counter
	proposals    prometheus.Counter
	tickDrift    *prometheus.HistogramVec
	commandAcks  *prometheus.CounterVec // by command, rc
}

func NewPrometheus() *Prometheus {
	mc = &Prometheus{}
	registry = prometheus.NewRegistry()
	return mc.register()
}

func (p *Prometheus) register() *Prometheus {
	const namespace = "metastream"

	p.allocCounts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "raw_alloc_total", Help: "Raw segment allocations.",
	}, []string{"kind"})
	registry.MustRegister(p.allocCounts)

	p.allocBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "raw_alloc_bytes_total", Help: "Bytes allocated by raw segments.",
	}, []string{"kind"})
	registry.MustRegister(p.allocBytes)

	p.freeCounts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "raw_free_total", Help: "Raw segment frees.",
	}, []string{"kind"})
	registry.MustRegister(p.freeCounts)

	p.freeBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "raw_free_bytes_total", Help: "Bytes released by raw segments.",
	}, []string{"kind"})
	registry.MustRegister(p.freeBytes)

	p.totalAlloc = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "total_alloc_bytes", Help: "Process-wide live raw bytes.",
	})
	registry.MustRegister(p.totalAlloc)

	p.appendBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "append_bytes_total", Help: "Bytes appended to buffer lists.",
	})
	registry.MustRegister(p.appendBytes)

	p.spliceCounts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "splice_total", Help: "Number of splice operations.",
	})
	registry.MustRegister(p.spliceCounts)

	p.substrCounts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "substr_total", Help: "Number of substr_of operations.",
	})
	registry.MustRegister(p.substrCounts)

	p.cstrRebuilds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "cstr_rebuild_total", Help: "Number of c_str calls that rebuilt the list.",
	})
	registry.MustRegister(p.cstrRebuilds)

	p.cstrCalls = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "cstr_total", Help: "Number of c_str calls.",
	})
	registry.MustRegister(p.cstrCalls)

	p.beaconCounts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "beacon_total", Help: "Beacons processed by state.",
	}, []string{"state"})
	registry.MustRegister(p.beaconCounts)

	p.beaconDrops = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "beacon_dropped_total", Help: "Beacons dropped.",
	})
	registry.MustRegister(p.beaconDrops)

	p.proposals = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "proposals_total", Help: "Paxos proposals issued.",
	})
	registry.MustRegister(p.proposals)

	p.tickDrift = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Name: "tick_transitions", Help: "Failure-detector transitions per tick.",
	}, []string{"outcome"})
	registry.MustRegister(p.tickDrift)

	p.commandAcks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "admin_command_total", Help: "Admin commands handled.",
	}, []string{"cmd", "rc"})
	registry.MustRegister(p.commandAcks)

	return p
}

func (p *Prometheus) CollectSwitcher(enable bool) { p.enabled = enable }

func (p *Prometheus) ObserveAlloc(kind string, count, bytes int64) {
	if !p.enabled {
		return
	}
	p.allocCounts.With(prometheus.Labels{"kind": kind}).Add(float64(count))
	p.allocBytes.With(prometheus.Labels{"kind": kind}).Add(float64(bytes))
}

func (p *Prometheus) ObserveFree(kind string, count, bytes int64) {
	if !p.enabled {
		return
	}
	p.freeCounts.With(prometheus.Labels{"kind": kind}).Add(float64(count))
	p.freeBytes.With(prometheus.Labels{"kind": kind}).Add(float64(bytes))
}

func (p *Prometheus) SetTotalAlloc(bytes int64) {
	if !p.enabled {
		return
	}
	p.totalAlloc.Set(float64(bytes))
}

func (p *Prometheus) ObserveAppend(bytes int64) {
	if !p.enabled {
		return
	}
	p.appendBytes.Add(float64(bytes))
}

func (p *Prometheus) ObserveSplice() {
	if !p.enabled {
		return
	}
	p.spliceCounts.Inc()
}

func (p *Prometheus) ObserveSubstr() {
	if !p.enabled {
		return
	}
	p.substrCounts.Inc()
}

func (p *Prometheus) ObserveCStr(rebuilt bool) {
	if !p.enabled {
		return
	}
	p.cstrCalls.Inc()
	if rebuilt {
		p.cstrRebuilds.Inc()
	}
}

func (p *Prometheus) ObserveBeacon(state string, dropped bool) {
	if !p.enabled {
		return
	}
	p.beaconCounts.With(prometheus.Labels{"state": state}).Inc()
	if dropped {
		p.beaconDrops.Inc()
	}
}

func (p *Prometheus) ObserveProposal() {
	if !p.enabled {
		return
	}
	p.proposals.Inc()
}

func (p *Prometheus) ObserveTick(transitions int) {
	if !p.enabled {
		return
	}
	outcome := "idle"
	if transitions > 0 {
		outcome = "transitioned"
	}
	p.tickDrift.With(prometheus.Labels{"outcome": outcome}).Observe(float64(transitions))
}

func (p *Prometheus) ObserveCommand(cmd string, rc int32) {
	if !p.enabled {
		return
	}
	p.commandAcks.With(prometheus.Labels{"cmd": cmd, "rc": strconv.Itoa(int(rc))}).Inc()
}
