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

package slhdsa

import "encoding/binary"

type addressType uint32

// Address types, see Section 4.2 of FIPS 205.
const (
	addressWOTSHash addressType = iota
	addressWOTSPk
	addressTree
	addressFORSTree
	addressFORSRoots
	addressWOTSPrf
	addressFORSPrf
)

const (
	addressLength           = 32
	compressedAddressLength = 22
)

// address locates a hash invocation inside the construction. Its fields map
// onto the 32-byte layout of Table 1 of FIPS 205:
//
//	| layer (4) | tree (12) | type (4) | keyPair (4) | height (4) | index (4) |
//
// height holds the chain address for WOTS+ types and the tree height for tree
// types; index holds the hash address for WOTS+ types and the tree index for
// tree types. The tree field supports at most 64 bits, which covers every
// parameter set.
//
// Addresses are plain values: copying one forks it.
type address struct {
	layer   uint32
	tree    uint64
	typ     addressType
	keyPair uint32
	height  uint32
	index   uint32
}

// withType returns a copy of a with its type replaced and its type-specific
// words cleared, keeping the key pair address.
func (a address) withType(t addressType) address {
	return address{layer: a.layer, tree: a.tree, typ: t, keyPair: a.keyPair}
}

// setType replaces the type and clears every type-specific word.
func (a *address) setType(t addressType) {
	a.typ = t
	a.keyPair = 0
	a.height = 0
	a.index = 0
}

// appendTo appends the byte form of a to b. The compressed form (Table 3 of
// FIPS 205) is used by the SHA2 hash functions:
//
//	| layer (1) | tree (8) | type (1) | keyPair (4) | height (4) | index (4) |
func (a *address) appendTo(b []byte, compressed bool) []byte {
	if compressed {
		b = append(b, byte(a.layer))
		b = binary.BigEndian.AppendUint64(b, a.tree)
		b = append(b, byte(a.typ))
	} else {
		b = binary.BigEndian.AppendUint32(b, a.layer)
		b = binary.BigEndian.AppendUint32(b, 0)
		b = binary.BigEndian.AppendUint64(b, a.tree)
		b = binary.BigEndian.AppendUint32(b, uint32(a.typ))
	}
	b = binary.BigEndian.AppendUint32(b, a.keyPair)
	b = binary.BigEndian.AppendUint32(b, a.height)
	return binary.BigEndian.AppendUint32(b, a.index)
}
