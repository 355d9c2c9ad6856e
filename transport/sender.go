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

package transport

//go:generate mockgen -destination=./mocks/sender_mock.go -package transport_mocks github.com/TimeWtr/metastream/transport Sender

// Sender is the transport collaborator the monitor consumes. SendMessage
// never blocks the monitor: the monitor never waits on it.
type Sender interface {
	SendMessage(msg any, dest Destination) error
}
