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
	"crypto"
	"encoding/asn1"
	"errors"
	"io"
	"runtime"

	"github.com/KaganCanSit/sphincsplus-go/internal/signature/slhdsa"
	"github.com/cloudflare/circl/pki"
	"github.com/cloudflare/circl/sign"
)

type scheme struct {
	p *slhdsa.Parameters
}

var (
	_ sign.Scheme           = (*scheme)(nil)
	_ pki.CertificateScheme = (*scheme)(nil)
	_ sign.PublicKey        = (*schemePublicKey)(nil)
	_ sign.PrivateKey       = (*schemePrivateKey)(nil)
)

// Scheme returns the parameter set of params as a [sign.Scheme], for callers
// built on github.com/cloudflare/circl. The variant of params is ignored:
// signatures produced through the scheme never carry an output prefix.
//
// Key generation reads from crypto/rand. Hedged signing reads from the
// reader passed to the private key's Sign method, or from crypto/rand.
func Scheme(params *Parameters) sign.Scheme {
	return &scheme{p: params.paramSet}
}

func (s *scheme) Name() string { return s.p.Name() }

func (s *scheme) Oid() asn1.ObjectIdentifier { return s.p.OID() }

func (s *scheme) PublicKeySize() int { return s.p.PublicKeyLength() }

func (s *scheme) PrivateKeySize() int { return s.p.SecretKeyLength() }

func (s *scheme) SignatureSize() int { return s.p.SignatureLength() }

func (s *scheme) SeedSize() int { return s.p.SeedLength() }

func (s *scheme) SupportsContext() bool { return s.p.Revision() == FIPS205 }

func (s *scheme) GenerateKey() (sign.PublicKey, sign.PrivateKey, error) {
	sk, pk, err := s.p.KeyGen(nil)
	if err != nil {
		return nil, nil, err
	}
	return &schemePublicKey{pk: pk, s: s}, newSchemePrivateKey(sk, s), nil
}

func (s *scheme) DeriveKey(seed []byte) (sign.PublicKey, sign.PrivateKey) {
	if len(seed) != s.SeedSize() {
		panic(sign.ErrSeedSize)
	}
	sk, pk, err := s.p.KeyGenFromSeed(seed)
	if err != nil {
		panic(err)
	}
	return &schemePublicKey{pk: pk, s: s}, newSchemePrivateKey(sk, s)
}

func (s *scheme) Sign(sk sign.PrivateKey, message []byte, opts *sign.SignatureOpts) []byte {
	priv, ok := sk.(*schemePrivateKey)
	if !ok || priv.s.p.Name() != s.p.Name() {
		panic(sign.ErrTypeMismatch)
	}
	sig, err := priv.sign(nil, message, opts)
	if err != nil {
		panic(err)
	}
	return sig
}

func (s *scheme) Verify(pk sign.PublicKey, message, signature []byte, opts *sign.SignatureOpts) bool {
	pub, ok := pk.(*schemePublicKey)
	if !ok || pub.s.p.Name() != s.p.Name() {
		panic(sign.ErrTypeMismatch)
	}
	var ctx []byte
	if opts != nil {
		ctx = []byte(opts.Context)
	}
	return pub.pk.Verify(message, signature, ctx)
}

func (s *scheme) UnmarshalBinaryPublicKey(b []byte) (sign.PublicKey, error) {
	pk, err := s.p.DecodePublicKey(b)
	if err != nil {
		return nil, sign.ErrPubKeySize
	}
	return &schemePublicKey{pk: pk, s: s}, nil
}

func (s *scheme) UnmarshalBinaryPrivateKey(b []byte) (sign.PrivateKey, error) {
	sk, err := s.p.DecodeSecretKey(b)
	if err != nil {
		return nil, sign.ErrPrivKeySize
	}
	return newSchemePrivateKey(sk, s), nil
}

type schemePublicKey struct {
	pk *slhdsa.PublicKey
	s  *scheme
}

func (k *schemePublicKey) Scheme() sign.Scheme { return k.s }

func (k *schemePublicKey) Equal(other crypto.PublicKey) bool {
	that, ok := other.(*schemePublicKey)
	return ok && k.pk.Equal(that.pk)
}

func (k *schemePublicKey) MarshalBinary() ([]byte, error) { return k.pk.Encode(), nil }

type schemePrivateKey struct {
	sk *slhdsa.SecretKey
	s  *scheme
}

// newSchemePrivateKey wraps sk and wipes it once the wrapper is unreachable.
func newSchemePrivateKey(sk *slhdsa.SecretKey, s *scheme) *schemePrivateKey {
	k := &schemePrivateKey{sk: sk, s: s}
	runtime.AddCleanup(k, (*slhdsa.SecretKey).Destroy, sk)
	return k
}

func (k *schemePrivateKey) Scheme() sign.Scheme { return k.s }

func (k *schemePrivateKey) Equal(other crypto.PrivateKey) bool {
	that, ok := other.(*schemePrivateKey)
	if !ok {
		return false
	}
	defer runtime.KeepAlive(that)
	defer runtime.KeepAlive(k)
	return k.sk.Equal(that.sk)
}

func (k *schemePrivateKey) Public() crypto.PublicKey {
	return &schemePublicKey{pk: k.sk.PublicKey(), s: k.s}
}

func (k *schemePrivateKey) MarshalBinary() ([]byte, error) {
	defer runtime.KeepAlive(k)
	return k.sk.Encode(), nil
}

// Sign implements [crypto.Signer]. msg is signed as is; pre-hashed messages
// are rejected. A context string can be passed as a *[sign.SignatureOpts].
func (k *schemePrivateKey) Sign(rand io.Reader, msg []byte, opts crypto.SignerOpts) ([]byte, error) {
	var sigOpts *sign.SignatureOpts
	if o, ok := any(opts).(*sign.SignatureOpts); ok {
		sigOpts = o
	} else if opts != nil && opts.HashFunc() != crypto.Hash(0) {
		return nil, errors.New("slhdsa: cannot sign a pre-hashed message")
	}
	return k.sign(rand, msg, sigOpts)
}

func (k *schemePrivateKey) sign(rand io.Reader, msg []byte, opts *sign.SignatureOpts) ([]byte, error) {
	var ctx []byte
	if opts != nil {
		ctx = []byte(opts.Context)
	}
	// The cleanup must not wipe sk while it is signing.
	defer runtime.KeepAlive(k)
	return k.sk.Sign(rand, msg, ctx)
}
