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
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding"
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"
)

// tweakableHash is the set of hash functions of Section 4.1 of FIPS 205, bound
// to a single PK.seed. Every output of prf, f, h and tl is n bytes long.
type tweakableHash interface {
	// prfMsg derives the randomizer R from SK.prf, opt_rand and the message.
	prfMsg(skPrf, optRand, msg []byte) []byte
	// hMsg derives the m-byte message digest.
	hMsg(r, pkRoot, msg []byte) []byte
	// prf derives a secret value from SK.seed at adrs.
	prf(skSeed []byte, adrs *address) []byte
	// f is the chain function.
	f(adrs *address, msg []byte) []byte
	// h compresses two sibling nodes.
	h(adrs *address, left, right []byte) []byte
	// tl compresses len n-byte values.
	tl(adrs *address, msg []byte) []byte
}

func (p *Parameters) newHash(pkSeed []byte) tweakableHash {
	switch p.family {
	case SHAKE:
		return newShakeHash(p, pkSeed)
	case SHA2:
		return newSHA2Hash(p, pkSeed)
	default:
		panic("unreachable")
	}
}

// SHAKE instantiation, see Section 11.1 of FIPS 205. PK.seed is always the
// first input, so it is absorbed once and the sponge is cloned per call.
type shakeHash struct {
	n      int
	m      int
	pkSeed []byte
	seeded sha3.ShakeHash
}

func newShakeHash(p *Parameters, pkSeed []byte) *shakeHash {
	seeded := sha3.NewShake256()
	seeded.Write(pkSeed)
	return &shakeHash{n: int(p.n), m: int(p.m), pkSeed: pkSeed, seeded: seeded}
}

func (s *shakeHash) tweak(adrs *address, msgs ...[]byte) []byte {
	state := s.seeded.Clone()
	var buf [addressLength]byte
	state.Write(adrs.appendTo(buf[:0], false))
	for _, msg := range msgs {
		state.Write(msg)
	}
	out := make([]byte, s.n)
	state.Read(out)
	return out
}

func (s *shakeHash) prfMsg(skPrf, optRand, msg []byte) []byte {
	state := sha3.NewShake256()
	state.Write(skPrf)
	state.Write(optRand)
	state.Write(msg)
	out := make([]byte, s.n)
	state.Read(out)
	return out
}

func (s *shakeHash) hMsg(r, pkRoot, msg []byte) []byte {
	state := sha3.NewShake256()
	state.Write(r)
	state.Write(s.pkSeed)
	state.Write(pkRoot)
	state.Write(msg)
	out := make([]byte, s.m)
	state.Read(out)
	return out
}

func (s *shakeHash) prf(skSeed []byte, adrs *address) []byte { return s.tweak(adrs, skSeed) }

func (s *shakeHash) f(adrs *address, msg []byte) []byte { return s.tweak(adrs, msg) }

func (s *shakeHash) h(adrs *address, left, right []byte) []byte {
	return s.tweak(adrs, left, right)
}

func (s *shakeHash) tl(adrs *address, msg []byte) []byte { return s.tweak(adrs, msg) }

// midstate is the marshaled state of a block hash after absorbing exactly one
// block. Resuming from it skips recompressing the PK.seed block on every call.
type midstate struct {
	newHash func() hash.Hash
	state   []byte
}

func newMidstate(newHash func() hash.Hash, pkSeed []byte) midstate {
	hh := newHash()
	hh.Write(pkSeed)
	// Pad PK.seed with zeroes to a full block.
	hh.Write(make([]byte, hh.BlockSize()-len(pkSeed)))
	state, err := hh.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		panic("unreachable")
	}
	return midstate{newHash: newHash, state: state}
}

func (ms midstate) resume() hash.Hash {
	hh := ms.newHash()
	if err := hh.(encoding.BinaryUnmarshaler).UnmarshalBinary(ms.state); err != nil {
		panic("unreachable")
	}
	return hh
}

// SHA2 instantiation, see Section 11.2 of FIPS 205. Security category 1 uses
// SHA-256 throughout; categories 3 and 5 use SHA-512 for h, tl, hMsg and prfMsg.
type sha2Hash struct {
	n      int
	m      int
	pkSeed []byte
	// small serves prf and f, large serves h and tl.
	small midstate
	large midstate
	// msgHash instantiates hMsg, MGF1 and the HMAC of prfMsg.
	msgHash func() hash.Hash
}

func newSHA2Hash(p *Parameters, pkSeed []byte) *sha2Hash {
	s := &sha2Hash{
		n:       int(p.n),
		m:       int(p.m),
		pkSeed:  pkSeed,
		small:   newMidstate(sha256.New, pkSeed),
		msgHash: sha256.New,
	}
	s.large = s.small
	if p.n > 16 {
		s.large = newMidstate(sha512.New, pkSeed)
		s.msgHash = sha512.New
	}
	return s
}

func (s *sha2Hash) tweak(ms midstate, adrs *address, msgs ...[]byte) []byte {
	hh := ms.resume()
	var buf [compressedAddressLength]byte
	hh.Write(adrs.appendTo(buf[:0], true))
	for _, msg := range msgs {
		hh.Write(msg)
	}
	return hh.Sum(nil)[:s.n:s.n]
}

func (s *sha2Hash) prfMsg(skPrf, optRand, msg []byte) []byte {
	mac := hmac.New(s.msgHash, skPrf)
	mac.Write(optRand)
	mac.Write(msg)
	return mac.Sum(nil)[:s.n:s.n]
}

func (s *sha2Hash) hMsg(r, pkRoot, msg []byte) []byte {
	hh := s.msgHash()
	hh.Write(r)
	hh.Write(s.pkSeed)
	hh.Write(pkRoot)
	hh.Write(msg)
	inner := hh.Sum(nil)
	seed := make([]byte, 0, len(r)+len(s.pkSeed)+len(inner))
	seed = append(append(append(seed, r...), s.pkSeed...), inner...)
	return mgf1(s.msgHash, seed, s.m)
}

func (s *sha2Hash) prf(skSeed []byte, adrs *address) []byte {
	return s.tweak(s.small, adrs, skSeed)
}

func (s *sha2Hash) f(adrs *address, msg []byte) []byte { return s.tweak(s.small, adrs, msg) }

func (s *sha2Hash) h(adrs *address, left, right []byte) []byte {
	return s.tweak(s.large, adrs, left, right)
}

func (s *sha2Hash) tl(adrs *address, msg []byte) []byte { return s.tweak(s.large, adrs, msg) }

// mgf1 is the mask generation function of RFC 8017, Appendix B.2.1.
func mgf1(newHash func() hash.Hash, seed []byte, length int) []byte {
	hh := newHash()
	out := make([]byte, 0, length+hh.Size())
	var ctr [4]byte
	for i := uint32(0); len(out) < length; i++ {
		binary.BigEndian.PutUint32(ctr[:], i)
		hh.Reset()
		hh.Write(seed)
		hh.Write(ctr[:])
		out = hh.Sum(out)
	}
	return out[:length:length]
}
