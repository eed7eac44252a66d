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
	"fmt"
	"io"

	"github.com/KaganCanSit/sphincsplus-go/insecuresecretdataaccess"
	"github.com/KaganCanSit/sphincsplus-go/internal/outputprefix"
	"github.com/KaganCanSit/sphincsplus-go/internal/signature/slhdsa"
	"github.com/KaganCanSit/sphincsplus-go/key"
	"github.com/KaganCanSit/sphincsplus-go/secretdata"
)

// PublicKey represents a SLH-DSA public key.
type PublicKey struct {
	keyBytes      []byte
	idRequirement uint32
	params        *Parameters
	outputPrefix  []byte
}

var _ key.Key = (*PublicKey)(nil)

func calculateOutputPrefix(variant Variant, keyID uint32) ([]byte, error) {
	switch variant {
	case VariantTink:
		return outputprefix.Tink(keyID), nil
	case VariantNoPrefix:
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid output prefix variant: %v", variant)
	}
}

// NewPublicKey creates a new SLH-DSA public key from PK.seed || PK.root.
//
// idRequirement is the ID of the key in the keyset. It must be zero if params
// doesn't have an ID requirement.
func NewPublicKey(keyBytes []byte, idRequirement uint32, params *Parameters) (*PublicKey, error) {
	if params == nil {
		return nil, fmt.Errorf("slhdsa.NewPublicKey: params must not be nil")
	}
	if !params.HasIDRequirement() && idRequirement != 0 {
		return nil, fmt.Errorf("slhdsa.NewPublicKey: idRequirement must be zero if params doesn't have an ID requirement")
	}
	if _, err := params.paramSet.DecodePublicKey(keyBytes); err != nil {
		return nil, fmt.Errorf("slhdsa.NewPublicKey: %w", err)
	}
	outputPrefix, err := calculateOutputPrefix(params.variant, idRequirement)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewPublicKey: %w", err)
	}
	return &PublicKey{
		keyBytes:      bytes.Clone(keyBytes),
		idRequirement: idRequirement,
		params:        params,
		outputPrefix:  outputPrefix,
	}, nil
}

// KeyBytes returns the public key bytes.
func (k *PublicKey) KeyBytes() []byte { return bytes.Clone(k.keyBytes) }

// OutputPrefix returns the output prefix of this key.
func (k *PublicKey) OutputPrefix() []byte { return bytes.Clone(k.outputPrefix) }

// Parameters returns the parameters of the key.
func (k *PublicKey) Parameters() key.Parameters { return k.params }

// IDRequirement returns the ID requirement of the key, and whether it is
// required.
func (k *PublicKey) IDRequirement() (uint32, bool) {
	return k.idRequirement, k.params.HasIDRequirement()
}

// Equal returns true if this key is equal to other.
func (k *PublicKey) Equal(other key.Key) bool {
	if k == other {
		return true
	}
	that, ok := other.(*PublicKey)
	return ok && k.params.Equal(that.Parameters()) &&
		bytes.Equal(k.keyBytes, that.keyBytes) &&
		k.idRequirement == that.idRequirement
}

func (k *PublicKey) engineKey() (*slhdsa.PublicKey, error) {
	return k.params.paramSet.DecodePublicKey(k.keyBytes)
}

// PrivateKey represents a SLH-DSA private key.
type PrivateKey struct {
	publicKey *PublicKey
	// keyBytes is SK.seed || SK.prf || PK.seed || PK.root.
	keyBytes secretdata.Bytes
}

var _ key.Key = (*PrivateKey)(nil)

// publicKeyBytes extracts the public half of privateKeyBytes, which must be
// an encoded secret key for params.
func publicKeyBytes(privateKeyBytes secretdata.Bytes, params *Parameters) ([]byte, error) {
	b := privateKeyBytes.Data(insecuresecretdataaccess.Token{})
	defer clear(b)
	sk, err := params.paramSet.DecodeSecretKey(b)
	if err != nil {
		return nil, err
	}
	defer sk.Destroy()
	return sk.PublicKey().Encode(), nil
}

// NewPrivateKey creates a new SLH-DSA private key from privateKeyBytes, with
// idRequirement and params.
//
// privateKeyBytes is SK.seed || SK.prf || PK.seed || PK.root. The root is
// taken as is; a key whose root does not match its seeds produces signatures
// that do not verify.
func NewPrivateKey(privateKeyBytes secretdata.Bytes, idRequirement uint32, params *Parameters) (*PrivateKey, error) {
	if params == nil {
		return nil, fmt.Errorf("slhdsa.NewPrivateKey: params must not be nil")
	}
	pubKeyBytes, err := publicKeyBytes(privateKeyBytes, params)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewPrivateKey: %w", err)
	}
	pubKey, err := NewPublicKey(pubKeyBytes, idRequirement, params)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewPrivateKey: %w", err)
	}
	return &PrivateKey{
		publicKey: pubKey,
		keyBytes:  privateKeyBytes,
	}, nil
}

// NewPrivateKeyWithPublicKey creates a new SLH-DSA private key from
// privateKeyBytes and a [PublicKey].
func NewPrivateKeyWithPublicKey(privateKeyBytes secretdata.Bytes, pubKey *PublicKey) (*PrivateKey, error) {
	if pubKey == nil {
		return nil, fmt.Errorf("slhdsa.NewPrivateKeyWithPublicKey: pubKey must not be nil")
	}
	if pubKey.params == nil {
		return nil, fmt.Errorf("slhdsa.NewPrivateKeyWithPublicKey: pubKey.params must not be nil")
	}
	pubKeyBytes, err := publicKeyBytes(privateKeyBytes, pubKey.params)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewPrivateKeyWithPublicKey: %w", err)
	}
	if !bytes.Equal(pubKeyBytes, pubKey.keyBytes) {
		return nil, fmt.Errorf("slhdsa.NewPrivateKeyWithPublicKey: public key does not match private key")
	}
	return &PrivateKey{
		publicKey: pubKey,
		keyBytes:  privateKeyBytes,
	}, nil
}

func privateKeyFromEngine(sk *slhdsa.SecretKey, idRequirement uint32, params *Parameters) (*PrivateKey, error) {
	encoded := sk.Encode()
	defer clear(encoded)
	pubKey, err := NewPublicKey(sk.PublicKey().Encode(), idRequirement, params)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		publicKey: pubKey,
		keyBytes:  secretdata.NewBytesFromData(encoded, insecuresecretdataaccess.Token{}),
	}, nil
}

// NewPrivateKeyFromSeed derives a SLH-DSA private key from seed, which is
// SK.seed || SK.prf || PK.seed and [Parameters.SeedSize] bytes long.
func NewPrivateKeyFromSeed(seed secretdata.Bytes, idRequirement uint32, params *Parameters) (*PrivateKey, error) {
	if params == nil {
		return nil, fmt.Errorf("slhdsa.NewPrivateKeyFromSeed: params must not be nil")
	}
	seedBytes := seed.Data(insecuresecretdataaccess.Token{})
	defer clear(seedBytes)
	sk, _, err := params.paramSet.KeyGenFromSeed(seedBytes)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewPrivateKeyFromSeed: %w", err)
	}
	defer sk.Destroy()
	priv, err := privateKeyFromEngine(sk, idRequirement, params)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewPrivateKeyFromSeed: %w", err)
	}
	return priv, nil
}

// GenerateKey generates a new SLH-DSA private key for params.
//
// The key seed is read from rand, or from crypto/rand.Reader if rand is nil.
func GenerateKey(params *Parameters, idRequirement uint32, rand io.Reader) (*PrivateKey, error) {
	if params == nil {
		return nil, fmt.Errorf("slhdsa.GenerateKey: params must not be nil")
	}
	sk, _, err := params.paramSet.KeyGen(rand)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.GenerateKey: %w", err)
	}
	defer sk.Destroy()
	priv, err := privateKeyFromEngine(sk, idRequirement, params)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.GenerateKey: %w", err)
	}
	return priv, nil
}

// PrivateKeyBytes returns the encoded private key.
func (k *PrivateKey) PrivateKeyBytes() secretdata.Bytes { return k.keyBytes }

// PublicKey returns the public key of the key.
func (k *PrivateKey) PublicKey() *PublicKey { return k.publicKey }

// Parameters returns the parameters of the key.
func (k *PrivateKey) Parameters() key.Parameters { return k.publicKey.params }

// IDRequirement returns the ID requirement of the key, and whether it is
// required.
func (k *PrivateKey) IDRequirement() (uint32, bool) { return k.publicKey.IDRequirement() }

// OutputPrefix returns the output prefix of this key.
func (k *PrivateKey) OutputPrefix() []byte { return bytes.Clone(k.publicKey.outputPrefix) }

// Equal returns true if this key is equal to other.
func (k *PrivateKey) Equal(other key.Key) bool {
	if k == other {
		return true
	}
	that, ok := other.(*PrivateKey)
	return ok && k.publicKey.Equal(that.publicKey) &&
		k.keyBytes.Equal(that.keyBytes)
}

// Destroy overwrites the private key bytes with zeroes. Signers created from
// k before the call hold their own copy, released by [Signer.Destroy]. The key
// must not be used afterwards.
func (k *PrivateKey) Destroy() { k.keyBytes.Wipe() }

func (k *PrivateKey) engineKey() (*slhdsa.SecretKey, error) {
	b := k.keyBytes.Data(insecuresecretdataaccess.Token{})
	defer clear(b)
	return k.publicKey.params.paramSet.DecodeSecretKey(b)
}
