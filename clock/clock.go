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

// Package clock is the monitor's timer/clock collaborator: a monotonic
// now() plus a way to schedule tick(). Injectable so the failure detector
// is deterministically testable, the way the teacher injects nothing and
// instead hides time.NewTicker inside swapMonitor/asyncRecycleWorker -
// here the ticker lives behind an interface instead.
package clock

import "time"

// Clock is the external collaborator described in spec section 6.
type Clock interface {
	Now() time.Time
	// NewTicker starts a periodic tick at the given period. Stop() must be
	// idempotent.
	NewTicker(period time.Duration) Ticker
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Real is the production Clock, a thin wrapper over time.Now/time.NewTicker.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

func (Real) NewTicker(period time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(period)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }
