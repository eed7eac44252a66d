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

// Algorithm 2 (toInt).
func toInt(x []byte, n uint32) uint64 {
	if len(x) < int(n) || n > 8 {
		panic("unreachable")
	}
	total := uint64(0)
	for i := range n {
		total = total<<8 | uint64(x[i])
	}
	return total
}

// Algorithm 3 (toByte).
func toByte(x uint32, n uint32) []byte {
	s := make([]byte, n)
	for i := range n {
		s[n-1-i] = byte(x)
		x >>= 8
	}
	return s
}

// Algorithm 4 (base_2^b). Digits are read most significant bit first.
func base2b(x []byte, b uint32, outLen uint32) []uint32 {
	if len(x) < int((outLen*b+7)/8) {
		panic("unreachable")
	}
	in := 0
	bits := uint32(0)
	total := uint32(0)
	digits := make([]uint32, outLen)
	for out := range outLen {
		for bits < b {
			total = total<<8 | uint32(x[in])
			in++
			bits += 8
		}
		bits -= b
		digits[out] = (total >> bits) & (1<<b - 1)
	}
	return digits
}

// base2bLSB splits x into outLen b-bit digits, taking bits least significant
// first from each byte and placing them least significant first in the digit.
// This is how SPHINCS+ round 3.1 derives FORS indices.
func base2bLSB(x []byte, b uint32, outLen uint32) []uint32 {
	if len(x) < int((outLen*b+7)/8) {
		panic("unreachable")
	}
	digits := make([]uint32, outLen)
	offset := uint32(0)
	for i := range outLen {
		for j := range b {
			digits[i] |= uint32(x[offset>>3]>>(offset&7)&1) << j
			offset++
		}
	}
	return digits
}

// wipe overwrites secret material that is no longer needed.
func wipe(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
}
