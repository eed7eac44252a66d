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

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"slices"
	"testing"

	"golang.org/x/crypto/sha3"
)

func testBytes(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}

func digest(newHash func() hash.Hash, parts ...[]byte) []byte {
	h := newHash()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// TestSHA2MatchesDirectComputation checks the midstate based SHA2 functions
// against the plain definitions of Section 11.2 of FIPS 205.
func TestSHA2MatchesDirectComputation(t *testing.T) {
	for _, tc := range []struct {
		name      string
		paramName string
		// Hash used by h and tl, and its block size.
		large     func() hash.Hash
		largeSize int
	}{
		{"category 1", "SLH-DSA-SHA2-128f", sha256.New, 64},
		{"category 3", "SLH-DSA-SHA2-192f", sha512.New, 128},
		{"category 5", "SLH-DSA-SHA2-256f", sha512.New, 128},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := mustParameters(t, tc.paramName)
			n := int(p.n)
			pkSeed := testBytes(n, 1)
			skSeed := testBytes(n, 2)
			left := testBytes(n, 3)
			right := testBytes(n, 4)
			adrs := address{layer: 2, tree: 77, typ: addressTree, height: 3, index: 9}
			adrsC := adrs.appendTo(nil, true)
			th := p.newHash(pkSeed)

			smallPad := make([]byte, 64-n)
			largePad := make([]byte, tc.largeSize-n)

			if got, want := th.prf(skSeed, &adrs), digest(sha256.New, pkSeed, smallPad, adrsC, skSeed)[:n]; !bytes.Equal(got, want) {
				t.Errorf("prf() = %x, want %x", got, want)
			}
			if got, want := th.f(&adrs, left), digest(sha256.New, pkSeed, smallPad, adrsC, left)[:n]; !bytes.Equal(got, want) {
				t.Errorf("f() = %x, want %x", got, want)
			}
			if got, want := th.h(&adrs, left, right), digest(tc.large, pkSeed, largePad, adrsC, left, right)[:n]; !bytes.Equal(got, want) {
				t.Errorf("h() = %x, want %x", got, want)
			}
			roots := slices.Concat(left, right, left)
			if got, want := th.tl(&adrs, roots), digest(tc.large, pkSeed, largePad, adrsC, roots)[:n]; !bytes.Equal(got, want) {
				t.Errorf("tl() = %x, want %x", got, want)
			}

			// Calls must not disturb each other's state.
			if got, want := th.f(&adrs, left), digest(sha256.New, pkSeed, smallPad, adrsC, left)[:n]; !bytes.Equal(got, want) {
				t.Errorf("second f() = %x, want %x", got, want)
			}

			skPrf := testBytes(n, 5)
			optRand := testBytes(n, 6)
			msg := []byte("message")
			mac := hmac.New(tc.large, skPrf)
			mac.Write(optRand)
			mac.Write(msg)
			if got, want := th.prfMsg(skPrf, optRand, msg), mac.Sum(nil)[:n]; !bytes.Equal(got, want) {
				t.Errorf("prfMsg() = %x, want %x", got, want)
			}

			r := testBytes(n, 7)
			pkRoot := testBytes(n, 8)
			seed := slices.Concat(r, pkSeed, digest(tc.large, r, pkSeed, pkRoot, msg))
			if got, want := th.hMsg(r, pkRoot, msg), mgf1(tc.large, seed, int(p.m)); !bytes.Equal(got, want) {
				t.Errorf("hMsg() = %x, want %x", got, want)
			}
		})
	}
}

func TestSHAKEMatchesDirectComputation(t *testing.T) {
	p := mustParameters(t, "SLH-DSA-SHAKE-192s")
	n := int(p.n)
	pkSeed := testBytes(n, 1)
	skSeed := testBytes(n, 2)
	left := testBytes(n, 3)
	right := testBytes(n, 4)
	adrs := address{layer: 1, tree: 5, typ: addressWOTSHash, keyPair: 2, height: 3, index: 4}
	adrsFull := adrs.appendTo(nil, false)
	th := p.newHash(pkSeed)

	shake := func(size int, parts ...[]byte) []byte {
		out := make([]byte, size)
		sha3.ShakeSum256(out, slices.Concat(parts...))
		return out
	}

	for _, tc := range []struct {
		name string
		got  []byte
		want []byte
	}{
		{"prf", th.prf(skSeed, &adrs), shake(n, pkSeed, adrsFull, skSeed)},
		{"f", th.f(&adrs, left), shake(n, pkSeed, adrsFull, left)},
		{"h", th.h(&adrs, left, right), shake(n, pkSeed, adrsFull, left, right)},
		{"tl", th.tl(&adrs, slices.Concat(left, right)), shake(n, pkSeed, adrsFull, left, right)},
		{"prfMsg", th.prfMsg(skSeed, left, []byte("msg")), shake(n, skSeed, left, []byte("msg"))},
		{"hMsg", th.hMsg(left, right, []byte("msg")), shake(int(p.m), left, pkSeed, right, []byte("msg"))},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if !bytes.Equal(tc.got, tc.want) {
				t.Errorf("%s() = %x, want %x", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestMGF1(t *testing.T) {
	seed := []byte("seed")
	block0 := digest(sha256.New, seed, []byte{0, 0, 0, 0})
	block1 := digest(sha256.New, seed, []byte{0, 0, 0, 1})
	for _, length := range []int{0, 1, 31, 32, 33, 64} {
		want := slices.Concat(block0, block1)[:length]
		if got := mgf1(sha256.New, seed, length); !bytes.Equal(got, want) {
			t.Errorf("mgf1(%d) = %x, want %x", length, got, want)
		}
	}
}
