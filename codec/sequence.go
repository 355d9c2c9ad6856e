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

// encodeSequence handles the ordered-sequence-of-T shape: a 32-bit count
// followed by each element's own encoding.
func encodeSequence(rv reflect.Value, out *buffer.List) error {
	n := rv.Len()
	writeCount(n, out)
	for i := 0; i < n; i++ {
		if err := encodeValue(rv.Index(i), out); err != nil {
			return err
		}
	}
	return nil
}

// decodeSequence reads the count, resizes the target (for a slice;
// array targets must already have matching length), and decodes each
// element in place.
func decodeSequence(rv reflect.Value, in *buffer.List, cursor *int) error {
	n, err := readCount(in, cursor)
	if err != nil {
		return err
	}
	if rv.Kind() == reflect.Slice {
		rv.Set(reflect.MakeSlice(rv.Type(), n, n))
	}
	for i := 0; i < n; i++ {
		if err := decodeValue(rv.Index(i), in, cursor); err != nil {
			return err
		}
	}
	return nil
}
