// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package outputprefix computes the prefix placed in front of signatures made
// with keys that carry an ID requirement.
package outputprefix

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Size is the length of a non-empty prefix: a start byte and a 4-byte key ID.
const Size = 5

// tinkStartByte is the first byte of the prefix of TINK keys.
const tinkStartByte = byte(1)

// Tink returns the output prefix bytes from keyID for TINK keys.
func Tink(keyID uint32) []byte {
	return binary.BigEndian.AppendUint32([]byte{tinkStartByte}, keyID)
}

// Strip removes prefix from the start of output.
func Strip(output, prefix []byte) ([]byte, error) {
	if !bytes.HasPrefix(output, prefix) {
		return nil, errors.New("the output does not have the expected prefix")
	}
	return output[len(prefix):], nil
}
