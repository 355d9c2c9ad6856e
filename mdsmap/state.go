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

// Package mdsmap holds the immutable, per-epoch snapshot of metadata-server
// membership that the monitor commits through Paxos: which ids exist, what
// state each is in, and the derived predicates the monitor's state machine
// consults on every beacon and tick.
package mdsmap

// State is one of the lifecycle states an id can occupy in a map.
type State int32

const (
	DNE State = iota
	BOOT
	CREATING
	STARTING
	REPLAY
	RESOLVE
	RECONNECT
	REJOIN
	ACTIVE
	STOPPING
	STOPPED
	FAILED
	STANDBY
)

var stateNames = map[State]string{
	DNE:       "dne",
	BOOT:      "boot",
	CREATING:  "creating",
	STARTING:  "starting",
	REPLAY:    "replay",
	RESOLVE:   "resolve",
	RECONNECT: "reconnect",
	REJOIN:    "rejoin",
	ACTIVE:    "active",
	STOPPING:  "stopping",
	STOPPED:   "stopped",
	FAILED:    "failed",
	STANDBY:   "standby",
}

// GetStateName returns a human-readable name for s, or "unknown" for any
// value outside the defined set.
func GetStateName(s State) string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

func (s State) String() string { return GetStateName(s) }

// isDegradedState reports whether an id sitting in s makes the map
// degraded.
func isDegradedState(s State) bool {
	switch s {
	case REPLAY, RESOLVE, RECONNECT, REJOIN, FAILED:
		return true
	default:
		return false
	}
}

// isUpState reports whether an id in s counts as "up" for beacon sequence
// tracking and broadcast purposes.
func isUpState(s State) bool {
	switch s {
	case DNE, STOPPED, FAILED:
		return false
	default:
		return true
	}
}
