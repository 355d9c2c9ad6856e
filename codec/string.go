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

	"github.com/TimeWtr/metastream/buffer"
)

// encodeString writes the length (excluding the terminator) followed by
// length+1 bytes, the last of which is a NUL terminator - the byte
// addressed string shape.
func encodeString(s string, out *buffer.List) error {
	writeCount(len(s), out)
	out.AppendBytes([]byte(s))
	out.AppendBytes([]byte{0})
	return nil
}

func decodeString(in *buffer.List, cursor *int) (string, error) {
	n, err := readCount(in, cursor)
	if err != nil {
		return "", err
	}
	if *cursor+n+1 > in.Length() {
		return "", fmt.Errorf("codec: short read for string of length %d at cursor %d", n, *cursor)
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = in.ByteAt(*cursor + i)
	}
	*cursor += n + 1 // skip the trailing NUL
	return string(buf), nil
}
