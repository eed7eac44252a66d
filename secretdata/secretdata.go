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

// Package secretdata provides access-controlled structs to wrap sensitive
// data such as SLH-DSA secret keys.
//
// This package and build restrictions on insecuresecretdataaccess may be used
// together to restrict access to secret key bytes.
package secretdata

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"io"

	"github.com/KaganCanSit/sphincsplus-go/insecuresecretdataaccess"
)

// Bytes is a wrapper around []byte that requires a secret key access token to
// access a copy of the data.
//
// Copies of a Bytes value share the wrapped bytes, which are never modified
// except by Wipe.
type Bytes struct {
	data []byte
}

// NewBytesFromRand returns a Bytes value wrapping size bytes of
// cryptographically strong random data.
func NewBytesFromRand(size uint32) (Bytes, error) {
	return NewBytesFromReader(rand.Reader, size)
}

// NewBytesFromReader returns a Bytes value wrapping exactly size bytes read
// from r.
func NewBytesFromReader(r io.Reader, size uint32) (Bytes, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		clear(data)
		return Bytes{}, err
	}
	return Bytes{data: data}, nil
}

// NewBytesFromData creates a new Bytes populated with a copy of data.
//
// It requires an [insecuresecretdataaccess.Token] value.
func NewBytesFromData(data []byte, token insecuresecretdataaccess.Token) Bytes {
	return Bytes{data: bytes.Clone(data)}
}

// Data returns a copy of the wrapped bytes.
//
// It requires an [insecuresecretdataaccess.Token] value to access the data.
func (b Bytes) Data(token insecuresecretdataaccess.Token) []byte { return bytes.Clone(b.data) }

// Len returns the size of the wrapped bytes.
func (b Bytes) Len() int { return len(b.data) }

// Equal reports whether the two Bytes objects wrap the same data.
//
// The time taken depends on the lengths of the wrapped bytes but not on their
// contents.
func (b Bytes) Equal(other Bytes) bool {
	return subtle.ConstantTimeCompare(b.data, other.data) == 1
}

// Wipe overwrites the wrapped bytes with zeroes. Every copy of b observes the
// change.
func (b Bytes) Wipe() { clear(b.data) }
