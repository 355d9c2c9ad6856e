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

// Package config holds the monitor's recognized options and a hot-reload
// primitive (Condition) that publishes changed options to subscribers. The
// monitor reads its snapshot once, in mon.New.
package config

import (
	"sync"
	"time"
)

// MonitorConfig is the snapshot of every option in spec section 6.
type MonitorConfig struct {
	// NumMDS seeds target_num at create_initial.
	NumMDS int
	// BeaconGrace is the failure-detection threshold.
	BeaconGrace time.Duration
	// AllowBully permits a booting MDS to evict an existing same-id
	// instance at a different address.
	AllowBully bool
	// StopWithLastMDS shuts the monitor down after the last MDS stops.
	StopWithLastMDS bool
}

// DefaultMonitorConfig mirrors ceph's historical defaults.
func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		NumMDS:          1,
		BeaconGrace:     15 * time.Second,
		AllowBully:      false,
		StopWithLastMDS: false,
	}
}

// Condition is a hot-reloadable MonitorConfig, grounded on the teacher's
// config.SwitchCondition: GetConfig returns the current snapshot, Register
// returns a channel that receives a notification every time Update is
// called so long-lived readers can pick up the new snapshot.
type Condition struct {
	mu   sync.RWMutex
	cfg  MonitorConfig
	subs []chan struct{}
}

func NewCondition(cfg MonitorConfig) *Condition {
	return &Condition{cfg: cfg}
}

func (c *Condition) GetConfig() MonitorConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// Register returns a notification channel. The channel receives a value
// (non-blocking, dropped if the reader is behind) every time Update runs.
func (c *Condition) Register() <-chan struct{} {
	ch := make(chan struct{}, 1)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}

func (c *Condition) Update(cfg MonitorConfig) {
	c.mu.Lock()
	c.cfg = cfg
	subs := c.subs
	c.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
