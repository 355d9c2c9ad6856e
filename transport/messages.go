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

// Package transport carries the message surfaces the monitor produces and
// consumes (spec section 6), and the Sender contract it sends them through.
// The wire transport itself - framing, connection management - is an
// external collaborator; this package only fixes the shapes.
package transport

import (
	"github.com/google/uuid"
)

// Inst is an MDS instance identity: a name plus a network address.
type Inst struct {
	Name string
	Addr string
}

// Beacon is the periodic liveness+state message from an MDS to the monitor.
type Beacon struct {
	ID            uuid.UUID
	MDSInst       Inst
	From          int
	Epoch         int64
	State         int32
	Seq           int64
	LastEpochSeen int64
}

// MapPush carries a full MDS map to a destination.
type MapPush struct {
	ID   uuid.UUID
	Blob []byte
}

// GetMapRequest asks the monitor for the latest committed map.
type GetMapRequest struct {
	ID   uuid.UUID
	From Inst
}

// AdminCommand is an operator-issued command, e.g. {"stop", "2"}.
type AdminCommand struct {
	ID  uuid.UUID
	Cmd []string
}

// AdminCommandAck acknowledges an AdminCommand.
type AdminCommandAck struct {
	ID  uuid.UUID
	RC  int32
	Msg string
}

// Shutdown is the generic shutdown signal message. The monitor does not send
// it when the "stop with last mds" policy fires; it closes the channel
// returned by Monitor.ShutdownRequested instead.
type Shutdown struct {
	ID     uuid.UUID
	Reason string
}

// Destination identifies where a message is delivered.
type Destination struct {
	Rank int
	Addr string
}

// NewCorrelationID stamps a fresh correlation id for an outbound message,
// used for tracing across the transport boundary where no span type is
// available in this contract.
func NewCorrelationID() uuid.UUID {
	return uuid.New()
}
