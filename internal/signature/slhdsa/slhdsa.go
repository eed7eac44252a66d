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

// Package slhdsa implements the stateless hash-based signature scheme SLH-DSA
// as specified in NIST FIPS 205 (https://doi.org/10.6028/NIST.FIPS.205), and
// its predecessor SPHINCS+ as submitted to round 3.1 of the NIST process.
//
// The implementation is constant time assuming that the underlying hashing
// primitives are constant time.
package slhdsa

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"slices"
)

// maxContextLength is the longest context string that can be encoded in the
// single length byte of the message prefix.
const maxContextLength = 255

// PublicKey is an SLH-DSA public key.
type PublicKey struct {
	pkSeed []byte
	pkRoot []byte
	p      *Parameters
}

// SecretKey is an SLH-DSA secret key. It embeds the public key.
type SecretKey struct {
	skSeed []byte
	skPrf  []byte
	pkSeed []byte
	pkRoot []byte
	p      *Parameters
}

// Algorithm 18 (slh_keygen_internal).
func (p *Parameters) keygenInternal(skSeed, skPrf, pkSeed []byte) (*SecretKey, *PublicKey) {
	in := p.newInstance(pkSeed, skSeed)
	pkRoot := in.xmssTree(address{layer: p.d - 1}).treehash(0, p.hp, 0, nil)
	sk := &SecretKey{skSeed: skSeed, skPrf: skPrf, pkSeed: pkSeed, pkRoot: pkRoot, p: p}
	return sk, sk.PublicKey()
}

// KeyGen generates a key pair reading 3n bytes from rand. If rand is nil,
// crypto/rand.Reader is used. Algorithm 21 (slh_keygen).
func (p *Parameters) KeyGen(rand io.Reader) (*SecretKey, *PublicKey, error) {
	seed := make([]byte, p.SeedLength())
	defer wipe(seed)
	if _, err := io.ReadFull(orDefault(rand), seed); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrRandomnessSource, err)
	}
	return p.KeyGenFromSeed(seed)
}

// KeyGenFromSeed deterministically derives a key pair from
// SK.seed || SK.prf || PK.seed. The seed is not retained.
func (p *Parameters) KeyGenFromSeed(seed []byte) (*SecretKey, *PublicKey, error) {
	if len(seed) != p.SeedLength() {
		return nil, nil, fmt.Errorf("seed: %w: got %d, want %d", ErrInvalidEncodingLength, len(seed), p.SeedLength())
	}
	skSeed := slices.Clone(seed[:p.n])
	skPrf := slices.Clone(seed[p.n : 2*p.n])
	pkSeed := slices.Clone(seed[2*p.n:])
	sk, pk := p.keygenInternal(skSeed, skPrf, pkSeed)
	return sk, pk, nil
}

func orDefault(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}

// splitDigest splits the output of hMsg into the FORS message and the
// hypertree leaf selected to sign it.
func (p *Parameters) splitDigest(digest []byte) (md []byte, idxTree uint64, idxLeaf uint32) {
	r := (p.k*p.a + 7) / 8
	s := (p.h - p.hp + 7) / 8
	t := (p.hp + 7) / 8
	md = digest[:r]
	if p.h-p.hp > 64 {
		panic("unreachable")
	}
	idxTree = toInt(digest[r:r+s], s)
	// For the 256f sets h - hp = 64 and the whole word is used.
	if p.h-p.hp != 64 {
		idxTree &= 1<<(p.h-p.hp) - 1
	}
	idxLeaf = uint32(toInt(digest[r+s:r+s+t], t)) & (1<<p.hp - 1)
	return md, idxTree, idxLeaf
}

// Algorithm 19 (slh_sign_internal). The signature is R || SIG_FORS || SIG_HT.
// addrnd is either fresh randomness (hedged) or PK.seed (deterministic).
func (sk *SecretKey) signInternal(msg, addrnd []byte) []byte {
	p := sk.p
	in := p.newInstance(sk.pkSeed, sk.skSeed)
	r := in.hash.prfMsg(sk.skPrf, addrnd, msg)
	md, idxTree, idxLeaf := p.splitDigest(in.hash.hMsg(r, sk.pkRoot, msg))
	adrs := address{tree: idxTree, typ: addressFORSTree, keyPair: idxLeaf}
	sigFors, pkFors := in.forsSign(md, adrs)
	sig := make([]byte, 0, p.SignatureLength())
	sig = append(sig, r...)
	sig = append(sig, sigFors...)
	return append(sig, in.htSign(pkFors, idxTree, idxLeaf)...)
}

// Algorithm 20 (slh_verify_internal).
func (pk *PublicKey) verifyInternal(msg, sig []byte) bool {
	p := pk.p
	s, ok := p.splitSignature(sig)
	if !ok {
		return false
	}
	in := p.newInstance(pk.pkSeed, nil)
	md, idxTree, idxLeaf := p.splitDigest(in.hash.hMsg(s.R, pk.pkRoot, msg))
	adrs := address{tree: idxTree, typ: addressFORSTree, keyPair: idxLeaf}
	pkFors := in.forsPkFromSig(s.FORS, md, adrs)
	return in.htVerify(pkFors, s, idxTree, idxLeaf, pk.pkRoot)
}

// SignInternal signs msg without any message prefix, using addrnd as the
// additional randomness. addrnd must be n bytes long.
func (sk *SecretKey) SignInternal(msg, addrnd []byte) ([]byte, error) {
	if len(addrnd) != int(sk.p.n) {
		return nil, fmt.Errorf("additional randomness: %w: got %d, want %d", ErrInvalidEncodingLength, len(addrnd), sk.p.n)
	}
	return sk.signInternal(msg, addrnd), nil
}

// VerifyInternal verifies a signature produced by SignInternal.
func (pk *PublicKey) VerifyInternal(msg, sig []byte) bool {
	return pk.verifyInternal(msg, sig)
}

// encodeMessage returns the message that is actually signed. FIPS 205 binds
// the context string through the prefix 0 || len(ctx) || ctx; round 3.1 signs
// the raw message and has no context.
func (p *Parameters) encodeMessage(msg, ctx []byte) ([]byte, error) {
	if p.revision == Round3 {
		if len(ctx) != 0 {
			return nil, fmt.Errorf("%s: %w", p.name, ErrContextNotSupported)
		}
		return msg, nil
	}
	if len(ctx) > maxContextLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrContextTooLong, len(ctx))
	}
	return slices.Concat([]byte{0, byte(len(ctx))}, ctx, msg), nil
}

// Sign signs msg under the context string ctx. Algorithm 22 (slh_sign).
//
// For hedged parameter sets n bytes of additional randomness are read from
// rand, or from crypto/rand.Reader if rand is nil. Deterministic parameter sets
// never read from rand.
func (sk *SecretKey) Sign(rand io.Reader, msg, ctx []byte) ([]byte, error) {
	m, err := sk.p.encodeMessage(msg, ctx)
	if err != nil {
		return nil, err
	}
	addrnd := sk.pkSeed
	if sk.p.hedged {
		addrnd = make([]byte, sk.p.n)
		if _, err := io.ReadFull(orDefault(rand), addrnd); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRandomnessSource, err)
		}
	}
	return sk.signInternal(m, addrnd), nil
}

// Verify reports whether sig is a valid signature of msg under the context
// string ctx. Algorithm 24 (slh_verify).
func (pk *PublicKey) Verify(msg, sig, ctx []byte) bool {
	m, err := pk.p.encodeMessage(msg, ctx)
	if err != nil {
		return false
	}
	return pk.verifyInternal(m, sig)
}

// Parameters returns the parameter set of the key.
func (pk *PublicKey) Parameters() *Parameters { return pk.p }

// Encode returns PK.seed || PK.root.
func (pk *PublicKey) Encode() []byte {
	return slices.Concat(pk.pkSeed, pk.pkRoot)
}

// Equal reports whether pk and other are the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && pk.p.name == other.p.name &&
		subtle.ConstantTimeCompare(pk.Encode(), other.Encode()) == 1
}

// DecodePublicKey decodes PK.seed || PK.root.
func (p *Parameters) DecodePublicKey(b []byte) (*PublicKey, error) {
	if len(b) != p.PublicKeyLength() {
		return nil, fmt.Errorf("public key: %w: got %d, want %d", ErrInvalidEncodingLength, len(b), p.PublicKeyLength())
	}
	b = slices.Clone(b)
	return &PublicKey{pkSeed: b[:p.n:p.n], pkRoot: b[p.n:], p: p}, nil
}

// Parameters returns the parameter set of the key.
func (sk *SecretKey) Parameters() *Parameters { return sk.p }

// PublicKey returns the public half of sk.
func (sk *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{pkSeed: slices.Clone(sk.pkSeed), pkRoot: slices.Clone(sk.pkRoot), p: sk.p}
}

// Encode returns SK.seed || SK.prf || PK.seed || PK.root.
func (sk *SecretKey) Encode() []byte {
	return slices.Concat(sk.skSeed, sk.skPrf, sk.pkSeed, sk.pkRoot)
}

// Equal reports in constant time whether sk and other are the same key.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	if other == nil || sk.p.name != other.p.name {
		return false
	}
	a, b := sk.Encode(), other.Encode()
	defer wipe(a, b)
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Destroy overwrites the secret parts of sk. The key must not be used
// afterwards.
func (sk *SecretKey) Destroy() {
	wipe(sk.skSeed, sk.skPrf)
}

// DecodeSecretKey decodes SK.seed || SK.prf || PK.seed || PK.root. The root is
// not recomputed, so a key whose halves do not match produces signatures that
// do not verify.
func (p *Parameters) DecodeSecretKey(b []byte) (*SecretKey, error) {
	if len(b) != p.SecretKeyLength() {
		return nil, fmt.Errorf("secret key: %w: got %d, want %d", ErrInvalidEncodingLength, len(b), p.SecretKeyLength())
	}
	b = slices.Clone(b)
	n := p.n
	return &SecretKey{
		skSeed: b[:n:n],
		skPrf:  b[n : 2*n : 2*n],
		pkSeed: b[2*n : 3*n : 3*n],
		pkRoot: b[3*n:],
		p:      p,
	}, nil
}
