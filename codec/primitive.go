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
	"fmt"
	"math"
	"reflect"

	"github.com/TimeWtr/metastream/buffer"
)

// primitiveWidth returns sizeof(T) for every fixed-width scalar kind this
// codec supports. int/uint are treated as 64-bit, matching Go's runtime
// representation on every platform this module targets.
func primitiveWidth(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Int, reflect.Uint, reflect.Float64:
		return 8
	default:
		return 0
	}
}

func encodePrimitive(rv reflect.Value, out *buffer.List) error {
	width := primitiveWidth(rv.Kind())
	if width == 0 {
		return fmt.Errorf("codec: unsupported primitive kind %s", rv.Kind())
	}
	buf := make([]byte, width)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			buf[0] = 1
		}
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		putInt(buf, rv.Int())
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		putUint(buf, rv.Uint())
	case reflect.Float32:
		byteOrder.PutUint32(buf, math.Float32bits(float32(rv.Float())))
	case reflect.Float64:
		byteOrder.PutUint64(buf, math.Float64bits(rv.Float()))
	}
	out.AppendBytes(buf)
	return nil
}

func decodePrimitive(rv reflect.Value, in *buffer.List, cursor *int) error {
	width := primitiveWidth(rv.Kind())
	if width == 0 {
		return fmt.Errorf("codec: unsupported primitive kind %s", rv.Kind())
	}
	if *cursor+width > in.Length() {
		return fmt.Errorf("codec: short read for %s at cursor %d", rv.Kind(), *cursor)
	}
	buf := make([]byte, width)
	for i := 0; i < width; i++ {
		buf[i] = in.ByteAt(*cursor + i)
	}
	*cursor += width

	switch rv.Kind() {
	case reflect.Bool:
		rv.SetBool(buf[0] != 0)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		rv.SetInt(getInt(buf))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		rv.SetUint(getUint(buf))
	case reflect.Float32:
		rv.SetFloat(float64(math.Float32frombits(byteOrder.Uint32(buf))))
	case reflect.Float64:
		rv.SetFloat(math.Float64frombits(byteOrder.Uint64(buf)))
	}
	return nil
}

func putInt(buf []byte, v int64) {
	switch len(buf) {
	case 1:
		buf[0] = byte(v)
	case 2:
		byteOrder.PutUint16(buf, uint16(v))
	case 4:
		byteOrder.PutUint32(buf, uint32(v))
	case 8:
		byteOrder.PutUint64(buf, uint64(v))
	}
}

func putUint(buf []byte, v uint64) {
	switch len(buf) {
	case 1:
		buf[0] = byte(v)
	case 2:
		byteOrder.PutUint16(buf, uint16(v))
	case 4:
		byteOrder.PutUint32(buf, uint32(v))
	case 8:
		byteOrder.PutUint64(buf, v)
	}
}

func getInt(buf []byte) int64 {
	switch len(buf) {
	case 1:
		return int64(int8(buf[0]))
	case 2:
		return int64(int16(byteOrder.Uint16(buf)))
	case 4:
		return int64(int32(byteOrder.Uint32(buf)))
	default:
		return int64(byteOrder.Uint64(buf))
	}
}

func getUint(buf []byte) uint64 {
	switch len(buf) {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(byteOrder.Uint16(buf))
	case 4:
		return uint64(byteOrder.Uint32(buf))
	default:
		return byteOrder.Uint64(buf)
	}
}
