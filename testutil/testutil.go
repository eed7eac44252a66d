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

// Package testutil provides helpers shared by the tests of this module.
package testutil

import (
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

// HexBytes is a helper type for unmarshalling a byte sequence represented as a
// hex encoded string.
type HexBytes []byte

// UnmarshalText converts a hex encoded string into a sequence of bytes.
func (a *HexBytes) UnmarshalText(text []byte) error {
	decoded, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}

// ErrFailingReader is returned by every read of a FailingReader.
var ErrFailingReader = errors.New("testutil: failing reader")

// FailingReader is an io.Reader that always fails.
type FailingReader struct{}

func (FailingReader) Read([]byte) (int, error) { return 0, ErrFailingReader }

// NewSeededReader returns an endless deterministic byte stream derived from
// seed, for tests that need reproducible randomness.
func NewSeededReader(seed string) io.Reader {
	xof := sha3.NewShake128()
	xof.Write([]byte(seed))
	return xof
}
