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

package codec

import (
	"reflect"

	"github.com/TimeWtr/metastream/buffer"
)

// encodeMap handles the unordered key/value mapping shape: a 32-bit count
// followed by key,value pairs in Go's randomized map iteration order. Any
// stable-at-encode-time order is acceptable per the contract; decode must
// not assume a particular order.
func encodeMap(rv reflect.Value, out *buffer.List) error {
	writeCount(rv.Len(), out)
	iter := rv.MapRange()
	for iter.Next() {
		if err := encodeValue(iter.Key(), out); err != nil {
			return err
		}
		if err := encodeValue(iter.Value(), out); err != nil {
			return err
		}
	}
	return nil
}

// decodeMap reads the count and inserts that many key/value pairs into a
// freshly allocated map, discarding whatever the target previously held.
func decodeMap(rv reflect.Value, in *buffer.List, cursor *int) error {
	n, err := readCount(in, cursor)
	if err != nil {
		return err
	}
	t := rv.Type()
	m := reflect.MakeMapWithSize(t, n)
	for i := 0; i < n; i++ {
		k := reflect.New(t.Key()).Elem()
		if err := decodeValue(k, in, cursor); err != nil {
			return err
		}
		v := reflect.New(t.Elem()).Elem()
		if err := decodeValue(v, in, cursor); err != nil {
			return err
		}
		m.SetMapIndex(k, v)
	}
	rv.Set(m)
	return nil
}
