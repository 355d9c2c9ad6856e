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

// Package codec is the typed marshalling layer over buffer.List: a pair of
// polymorphic Encode/Decode operations that dispatch on the shape of the
// value (fixed-width primitive, ordered sequence, unordered set/map,
// byte-addressed string, nested view/list) rather than on a fixed wire
// schema. It is an in-process marshalling layer, not a wire protocol - byte
// order is a fixed internal choice, not a negotiated one.
package codec

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/TimeWtr/metastream/buffer"
)

var byteOrder = binary.LittleEndian

// Encode appends v's encoding onto out.
func Encode[T any](v T, out *buffer.List) error {
	return encodeValue(reflect.ValueOf(v), out)
}

// Decode reads a value of type T out of in starting at *cursor, advancing
// the cursor past what it consumed.
func Decode[T any](v *T, in *buffer.List, cursor *int) error {
	rv := reflect.ValueOf(v).Elem()
	return decodeValue(rv, in, cursor)
}

func encodeValue(rv reflect.Value, out *buffer.List) error {
	switch rv.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return encodePrimitive(rv, out)
	case reflect.String:
		return encodeString(rv.String(), out)
	case reflect.Slice, reflect.Array:
		return encodeSequence(rv, out)
	case reflect.Map:
		return encodeMap(rv, out)
	case reflect.Ptr:
		return encodeNested(rv, out)
	default:
		return fmt.Errorf("codec: unsupported encode shape %s", rv.Kind())
	}
}

func decodeValue(rv reflect.Value, in *buffer.List, cursor *int) error {
	switch rv.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return decodePrimitive(rv, in, cursor)
	case reflect.String:
		s, err := decodeString(in, cursor)
		if err != nil {
			return err
		}
		rv.SetString(s)
		return nil
	case reflect.Slice, reflect.Array:
		return decodeSequence(rv, in, cursor)
	case reflect.Map:
		return decodeMap(rv, in, cursor)
	case reflect.Ptr:
		return decodeNested(rv, in, cursor)
	default:
		return fmt.Errorf("codec: unsupported decode shape %s", rv.Kind())
	}
}

func readCount(in *buffer.List, cursor *int) (int, error) {
	if *cursor+4 > in.Length() {
		return 0, fmt.Errorf("codec: short read for count at cursor %d", *cursor)
	}
	var buf [4]byte
	for i := 0; i < 4; i++ {
		buf[i] = in.ByteAt(*cursor + i)
	}
	*cursor += 4
	return int(byteOrder.Uint32(buf[:])), nil
}

func writeCount(n int, out *buffer.List) {
	var buf [4]byte
	byteOrder.PutUint32(buf[:], uint32(n))
	out.AppendBytes(buf[:])
}
