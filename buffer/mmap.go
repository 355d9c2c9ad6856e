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

import "golang.org/x/sys/unix"

// memoryMapper is the page-aligned allocation primitive: anonymous mmap
// always returns memory aligned to the system page size, which is strategy
// (i) of spec section 3.1 for the page-aligned raw variant.
type memoryMapper interface {
	Map(length int) ([]byte, error)
	Unmap(p []byte) error
}

type linuxMemoryMapper struct{}

func (linuxMemoryMapper) Map(length int) ([]byte, error) {
	return unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func (linuxMemoryMapper) Unmap(p []byte) error {
	return unix.Munmap(p)
}

var defaultMapper memoryMapper = linuxMemoryMapper{}
