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
	"encoding/asn1"
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// HashFamily selects the hash primitive that instantiates the tweakable hash
// functions of a parameter set.
type HashFamily int

const (
	// UnknownHashFamily is the zero value of HashFamily.
	UnknownHashFamily HashFamily = iota
	// SHA2 instantiates the hash functions with SHA-256 and SHA-512.
	SHA2
	// SHAKE instantiates the hash functions with SHAKE256.
	SHAKE
)

func (f HashFamily) String() string {
	switch f {
	case SHA2:
		return "SHA2"
	case SHAKE:
		return "SHAKE"
	default:
		return "UNKNOWN"
	}
}

// Revision identifies which published version of the construction a parameter
// set follows.
type Revision int

const (
	// UnknownRevision is the zero value of Revision.
	UnknownRevision Revision = iota
	// FIPS205 is SLH-DSA as standardized in FIPS 205.
	FIPS205
	// Round3 is SPHINCS+ as submitted in round 3.1 of the NIST process. It reads
	// FORS indices least significant bit first and signs the raw message.
	Round3
)

func (r Revision) String() string {
	switch r {
	case FIPS205:
		return "FIPS205"
	case Round3:
		return "r3.1"
	default:
		return "UNKNOWN"
	}
}

// Parameters is an immutable parameter set (see Table 2 of FIPS 205) together
// with its derived constants. Values are shared read-only by every operation.
type Parameters struct {
	name     string
	oid      asn1.ObjectIdentifier
	family   HashFamily
	revision Revision
	fast     bool
	// hedged selects randomized signing; deterministic signing uses PK.seed as
	// the additional randomness.
	hedged bool

	n uint32
	// Note that h = d * hp.
	h   uint32
	d   uint32
	hp  uint32
	a   uint32
	k   uint32
	lgw uint32
	m   uint32

	// Derived by Algorithm 1 and Equations 5.1 to 5.4 of FIPS 205.
	w    uint32
	len1 uint32
	len2 uint32
	len  uint32
}

type geometry struct {
	n   uint32
	h   uint32
	d   uint32
	a   uint32
	k   uint32
	lgw uint32
	m   uint32
}

var (
	geometry128s = geometry{n: 16, h: 63, d: 7, a: 12, k: 14, lgw: 4, m: 30}
	geometry128f = geometry{n: 16, h: 66, d: 22, a: 6, k: 33, lgw: 4, m: 34}
	geometry192s = geometry{n: 24, h: 63, d: 7, a: 14, k: 17, lgw: 4, m: 39}
	geometry192f = geometry{n: 24, h: 66, d: 22, a: 8, k: 33, lgw: 4, m: 42}
	geometry256s = geometry{n: 32, h: 64, d: 8, a: 14, k: 22, lgw: 4, m: 47}
	geometry256f = geometry{n: 32, h: 68, d: 17, a: 9, k: 35, lgw: 4, m: 49}
)

func newParameters(name string, oid asn1.ObjectIdentifier, g geometry, family HashFamily, revision Revision, fast bool) *Parameters {
	if g.h%g.d != 0 {
		panic(fmt.Sprintf("slhdsa: %s: h = %d is not a multiple of d = %d", name, g.h, g.d))
	}
	w := uint32(1) << g.lgw
	len1 := (8*g.n + g.lgw - 1) / g.lgw
	log2 := func(x uint32) uint32 { return uint32(bits.Len32(x) - 1) }
	len2 := log2(len1*(w-1))/g.lgw + 1
	return &Parameters{
		name:     name,
		oid:      oid,
		family:   family,
		revision: revision,
		fast:     fast,
		hedged:   true,
		n:        g.n,
		h:        g.h,
		d:        g.d,
		hp:       g.h / g.d,
		a:        g.a,
		k:        g.k,
		lgw:      g.lgw,
		m:        g.m,
		w:        w,
		len1:     len1,
		len2:     len2,
		len:      len1 + len2,
	}
}

var (
	fips205OID = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3}
	round3OID  = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 25258, 1, 12}
)

func oid(base asn1.ObjectIdentifier, arcs ...int) asn1.ObjectIdentifier {
	return append(slices.Clone(base), arcs...)
}

var all = []*Parameters{
	newParameters("SLH-DSA-SHA2-128s", oid(fips205OID, 20), geometry128s, SHA2, FIPS205, false),
	newParameters("SLH-DSA-SHA2-128f", oid(fips205OID, 21), geometry128f, SHA2, FIPS205, true),
	newParameters("SLH-DSA-SHA2-192s", oid(fips205OID, 22), geometry192s, SHA2, FIPS205, false),
	newParameters("SLH-DSA-SHA2-192f", oid(fips205OID, 23), geometry192f, SHA2, FIPS205, true),
	newParameters("SLH-DSA-SHA2-256s", oid(fips205OID, 24), geometry256s, SHA2, FIPS205, false),
	newParameters("SLH-DSA-SHA2-256f", oid(fips205OID, 25), geometry256f, SHA2, FIPS205, true),
	newParameters("SLH-DSA-SHAKE-128s", oid(fips205OID, 26), geometry128s, SHAKE, FIPS205, false),
	newParameters("SLH-DSA-SHAKE-128f", oid(fips205OID, 27), geometry128f, SHAKE, FIPS205, true),
	newParameters("SLH-DSA-SHAKE-192s", oid(fips205OID, 28), geometry192s, SHAKE, FIPS205, false),
	newParameters("SLH-DSA-SHAKE-192f", oid(fips205OID, 29), geometry192f, SHAKE, FIPS205, true),
	newParameters("SLH-DSA-SHAKE-256s", oid(fips205OID, 30), geometry256s, SHAKE, FIPS205, false),
	newParameters("SLH-DSA-SHAKE-256f", oid(fips205OID, 31), geometry256f, SHAKE, FIPS205, true),

	newParameters("SphincsPlus-shake-128s-r3.1", oid(round3OID, 1, 1), geometry128s, SHAKE, Round3, false),
	newParameters("SphincsPlus-shake-128f-r3.1", oid(round3OID, 1, 2), geometry128f, SHAKE, Round3, true),
	newParameters("SphincsPlus-shake-192s-r3.1", oid(round3OID, 1, 3), geometry192s, SHAKE, Round3, false),
	newParameters("SphincsPlus-shake-192f-r3.1", oid(round3OID, 1, 4), geometry192f, SHAKE, Round3, true),
	newParameters("SphincsPlus-shake-256s-r3.1", oid(round3OID, 1, 5), geometry256s, SHAKE, Round3, false),
	newParameters("SphincsPlus-shake-256f-r3.1", oid(round3OID, 1, 6), geometry256f, SHAKE, Round3, true),
	newParameters("SphincsPlus-sha2-128s-r3.1", oid(round3OID, 2, 1), geometry128s, SHA2, Round3, false),
	newParameters("SphincsPlus-sha2-128f-r3.1", oid(round3OID, 2, 2), geometry128f, SHA2, Round3, true),
	newParameters("SphincsPlus-sha2-192s-r3.1", oid(round3OID, 2, 3), geometry192s, SHA2, Round3, false),
	newParameters("SphincsPlus-sha2-192f-r3.1", oid(round3OID, 2, 4), geometry192f, SHA2, Round3, true),
	newParameters("SphincsPlus-sha2-256s-r3.1", oid(round3OID, 2, 5), geometry256s, SHA2, Round3, false),
	newParameters("SphincsPlus-sha2-256f-r3.1", oid(round3OID, 2, 6), geometry256f, SHA2, Round3, true),
}

var byName = func() map[string]*Parameters {
	m := make(map[string]*Parameters, len(all))
	for _, p := range all {
		m[p.name] = p
	}
	return m
}()

// ParametersByName resolves a parameter set name such as "SLH-DSA-SHAKE-128s"
// or "SphincsPlus-sha2-128f-r3.1". The returned parameters sign in hedged mode.
func ParametersByName(name string) (*Parameters, error) {
	if p, ok := byName[name]; ok {
		return p, nil
	}
	if strings.HasPrefix(name, "SphincsPlus-haraka-") {
		return nil, fmt.Errorf("%w: %q (Haraka is not supported)", ErrUnknownParameterSet, name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownParameterSet, name)
}

// Names lists the names of all supported parameter sets in sorted order.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, p := range all {
		names = append(names, p.name)
	}
	slices.Sort(names)
	return names
}

// Deterministic returns a copy of p that signs deterministically.
func (p *Parameters) Deterministic() *Parameters {
	cp := *p
	cp.hedged = false
	return &cp
}

// Hedged returns a copy of p that mixes fresh randomness into every signature.
func (p *Parameters) Hedged() *Parameters {
	cp := *p
	cp.hedged = true
	return &cp
}

// Name returns the name of the parameter set.
func (p *Parameters) Name() string { return p.name }

// OID returns the object identifier registered for the parameter set.
func (p *Parameters) OID() asn1.ObjectIdentifier { return slices.Clone(p.oid) }

// HashFamily returns the hash family of the parameter set.
func (p *Parameters) HashFamily() HashFamily { return p.family }

// Revision returns the revision of the construction the parameter set follows.
func (p *Parameters) Revision() Revision { return p.revision }

// IsFast reports whether this is a "fast" (f) rather than "small" (s) set.
func (p *Parameters) IsFast() bool { return p.fast }

// IsHedged reports whether signing mixes in fresh randomness.
func (p *Parameters) IsHedged() bool { return p.hedged }

// N returns the security parameter in bytes.
func (p *Parameters) N() int { return int(p.n) }

// PublicKeyLength returns the length of an encoded public key.
func (p *Parameters) PublicKeyLength() int { return int(2 * p.n) }

// SecretKeyLength returns the length of an encoded secret key.
func (p *Parameters) SecretKeyLength() int { return int(4 * p.n) }

// SeedLength returns the length of the seed consumed by KeyGenFromSeed.
func (p *Parameters) SeedLength() int { return int(3 * p.n) }

// SignatureLength returns the length of an encoded signature.
func (p *Parameters) SignatureLength() int {
	return int((1 + p.k*(p.a+1) + p.h + p.d*p.len) * p.n)
}

func (p *Parameters) forsSignatureLength() int { return int(p.k * (p.a + 1) * p.n) }

func (p *Parameters) xmssSignatureLength() int { return int((p.len + p.hp) * p.n) }

// Equal reports whether p and other describe the same parameter set and
// signing mode.
func (p *Parameters) Equal(other *Parameters) bool {
	return other != nil && p.name == other.name && p.hedged == other.hedged
}

func (p *Parameters) String() string {
	if p.hedged {
		return p.name
	}
	return p.name + " (deterministic)"
}
