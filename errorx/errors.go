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

// Package errorx collects the sentinel errors shared by the buffer and
// monitor packages.
package errorx

import "errors"

var (
	// ErrAllocFailed is returned when a raw segment cannot acquire backing
	// memory. Fatal: callers that cannot recover should pass it to Fatal.
	ErrAllocFailed = errors.New("metastream: allocation failed")
	// ErrOutOfBounds marks a programmer error in view or list indexing.
	// Fatal: callers that cannot recover should pass it to Fatal.
	ErrOutOfBounds = errors.New("metastream: index out of bounds")
	// ErrStaleBeacon is logged by beacon preprocessing when it drops a
	// beacon whose sequence number is lower than the last observed one.
	ErrStaleBeacon = errors.New("metastream: stale beacon sequence")
	// ErrUnknownSender is logged by beacon preprocessing when it drops a
	// non-BOOT beacon naming an id the committed map has never heard of.
	ErrUnknownSender = errors.New("metastream: unknown sender")
	// ErrUnknownCommand names the failure for an admin command shape that
	// is not recognized. The admin handler does not return it; it replies
	// with an EINVAL ack.
	ErrUnknownCommand = errors.New("metastream: unknown admin command")
	// ErrNotActive names the failure of "stop" for an id that is not
	// ACTIVE. The admin handler does not return it; it replies with an
	// EEXIST ack.
	ErrNotActive = errors.New("metastream: mds is not active")
	// ErrBufferClosed marks an operation on a closed buffer. buffer.List
	// has no Close method and nothing in this module returns it.
	ErrBufferClosed = errors.New("metastream: buffer closed")
	// ErrQueueClosed mirrors the teacher's queue.go sentinel for a push/pop
	// against a closed queue. The monitor's wait queue cannot be closed and
	// nothing in this module returns it.
	ErrQueueClosed = errors.New("metastream: queue closed")
	// ErrQueueEmpty marks a pop from an empty queue. The monitor's wait
	// queue only drains, and nothing in this module returns it.
	ErrQueueEmpty = errors.New("metastream: queue empty")
)

// Fatal panics with err. Invariant breaches in the buffer layer (negative
// lengths, appends past the arena, allocation failure) are programmer
// errors: they abort in test and release alike, per spec.
func Fatal(err error) {
	if err == nil {
		return
	}
	panic(err)
}
