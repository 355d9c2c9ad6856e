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

// Package paxos fixes the contract the monitor consumes from the
// replicated log. The Paxos engine's internals are out of scope (spec
// section 1): this package only names the six operations the monitor
// calls.
package paxos

//go:generate mockgen -destination=./mocks/facade_mock.go -package paxos_mocks github.com/TimeWtr/metastream/paxos Facade

// Facade is the replicated-log collaborator described in spec section 6.
type Facade interface {
	// IsActive reports whether this replica can propose right now.
	IsActive() bool
	// IsReadable reports whether the latest committed value can be read.
	IsReadable() bool
	// GetVersion returns the version number of the latest committed value.
	GetVersion() int64
	// Read fetches the committed bytes for version into out. Returns false
	// if that version is not available.
	Read(version int64) (out []byte, ok bool)
	// WaitForCommit registers cb to run on this goroutine once the
	// in-flight proposal commits (or is superseded by a leadership change,
	// in which case cb still runs so it can be idempotent and no-op).
	WaitForCommit(cb func())
	// Propose stages pending for replication. should_propose_now in the
	// monitor always returns true, so Propose is called eagerly whenever
	// the pending map changes.
	Propose(pending []byte) error
}
