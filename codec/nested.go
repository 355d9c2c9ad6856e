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
	"reflect"

	"github.com/TimeWtr/metastream/buffer"
)

// encodeNested handles the nested view/list shape: *buffer.List and
// *buffer.View are the only pointer types this codec accepts, since they
// are the only ones with a well-defined reference-append into another
// list. It writes the nested value's length and then reference-appends it
// onto out with no byte copy.
func encodeNested(rv reflect.Value, out *buffer.List) error {
	switch val := rv.Interface().(type) {
	case *buffer.List:
		writeCount(val.Length(), out)
		out.AppendList(val)
		return nil
	case *buffer.View:
		writeCount(val.Len(), out)
		out.AppendView(val.Clone())
		return nil
	default:
		return fmt.Errorf("codec: unsupported nested pointer type %s", rv.Type())
	}
}

// decodeNested reads the length and takes a zero-copy substring view of
// that many bytes as the nested value, advancing the cursor past it.
func decodeNested(rv reflect.Value, in *buffer.List, cursor *int) error {
	n, err := readCount(in, cursor)
	if err != nil {
		return err
	}
	sub := in.SubstrOf(*cursor, n)
	*cursor += n

	switch rv.Type() {
	case reflect.TypeOf(&buffer.List{}):
		rv.Set(reflect.ValueOf(sub))
		return nil
	case reflect.TypeOf(&buffer.View{}):
		return fmt.Errorf("codec: decoding directly into *buffer.View is not supported; decode into *buffer.List")
	default:
		return fmt.Errorf("codec: unsupported nested pointer type %s", rv.Type())
	}
}
