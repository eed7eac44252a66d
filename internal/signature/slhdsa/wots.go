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

// instance binds a parameter set to the hash functions keyed by one PK.seed.
// skSeed is only set for operations that need secret material.
type instance struct {
	p      *Parameters
	hash   tweakableHash
	skSeed []byte
}

func (p *Parameters) newInstance(pkSeed, skSeed []byte) *instance {
	return &instance{p: p, hash: p.newHash(pkSeed), skSeed: skSeed}
}

// Algorithm 5 (chain). Zero steps return x unchanged.
func (in *instance) chain(x []byte, start, steps uint32, adrs *address) []byte {
	tmp := x
	for j := start; j < start+steps; j++ {
		adrs.index = j
		tmp = in.hash.f(adrs, tmp)
	}
	return tmp
}

// wotsDigits converts an n-byte message to len base-w digits, the last len2
// of which encode the checksum.
func (in *instance) wotsDigits(msg []byte) []uint32 {
	p := in.p
	digits := base2b(msg, p.lgw, p.len1)
	csum := uint32(0)
	for _, d := range digits {
		csum += p.w - 1 - d
	}
	csum <<= (8 - ((p.len2 * p.lgw) & 7)) & 7
	return append(digits, base2b(toByte(csum, (p.len2*p.lgw+7)/8), p.lgw, p.len2)...)
}

// Algorithm 6 (wots_pkGen). adrs must be a WOTS_HASH address with the key pair
// address set.
func (in *instance) wotsPkGen(adrs address) []byte {
	p := in.p
	skAdrs := adrs.withType(addressWOTSPrf)
	tmp := make([]byte, 0, p.len*p.n)
	for i := range p.len {
		skAdrs.height = i
		sk := in.hash.prf(in.skSeed, &skAdrs)
		adrs.height = i
		tmp = append(tmp, in.chain(sk, 0, p.w-1, &adrs)...)
		wipe(sk)
	}
	pkAdrs := adrs.withType(addressWOTSPk)
	return in.hash.tl(&pkAdrs, tmp)
}

// Algorithm 7 (wots_sign).
func (in *instance) wotsSign(msg []byte, adrs address) []byte {
	p := in.p
	digits := in.wotsDigits(msg)
	skAdrs := adrs.withType(addressWOTSPrf)
	sig := make([]byte, 0, p.len*p.n)
	for i := range p.len {
		skAdrs.height = i
		sk := in.hash.prf(in.skSeed, &skAdrs)
		adrs.height = i
		sig = append(sig, in.chain(sk, 0, digits[i], &adrs)...)
		wipe(sk)
	}
	return sig
}

// Algorithm 8 (wots_pkFromSig). sig is len concatenated n-byte chain values.
func (in *instance) wotsPkFromSig(sig, msg []byte, adrs address) []byte {
	p := in.p
	if len(sig) != int(p.len*p.n) {
		panic("unreachable")
	}
	digits := in.wotsDigits(msg)
	tmp := make([]byte, 0, p.len*p.n)
	for i := range p.len {
		adrs.height = i
		tmp = append(tmp, in.chain(sig[i*p.n:(i+1)*p.n], digits[i], p.w-1-digits[i], &adrs)...)
	}
	pkAdrs := adrs.withType(addressWOTSPk)
	return in.hash.tl(&pkAdrs, tmp)
}
