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

	"github.com/KaganCanSit/sphincsplus-go/internal/outputprefix"
	"github.com/KaganCanSit/sphincsplus-go/internal/signature/slhdsa"
	"github.com/KaganCanSit/sphincsplus-go/key"
)

// Variant is the prefix variant of a SLH-DSA key.
//
// It describes the format of the signature. For SLH-DSA, there are two options:
//
//   - TINK: prepends '0x01<big endian key id>' to the signature.
//   - NO_PREFIX: adds no prefix to the signature.
type Variant int

const (
	// VariantUnknown is the default value of Variant.
	VariantUnknown Variant = iota
	// VariantTink prefixes '0x01<big endian key id>' to the signature.
	VariantTink
	// VariantNoPrefix does not prefix the signature with the key id.
	VariantNoPrefix
)

func (variant Variant) String() string {
	switch variant {
	case VariantTink:
		return "TINK"
	case VariantNoPrefix:
		return "NO_PREFIX"
	default:
		return "UNKNOWN"
	}
}

// HashType is the hash family that instantiates the tweakable hash functions.
type HashType int

const (
	// UnknownHashType is the default value of HashType.
	UnknownHashType HashType = iota
	// SHA2 hashing.
	SHA2
	// SHAKE hashing.
	SHAKE
)

func (h HashType) String() string {
	switch h {
	case SHA2:
		return "SHA2"
	case SHAKE:
		return "SHAKE"
	default:
		return "UNKNOWN"
	}
}

// SignatureType is the signature type of the SLH-DSA key.
type SignatureType int

const (
	// UnknownSignatureType is the default value of SignatureType.
	UnknownSignatureType SignatureType = iota
	// FastSigning selects fast signing.
	FastSigning
	// SmallSignature selects small signatures.
	SmallSignature
)

func (s SignatureType) String() string {
	switch s {
	case FastSigning:
		return "FAST_SIGNING"
	case SmallSignature:
		return "SMALL_SIGNATURE"
	default:
		return "UNKNOWN"
	}
}

// Revision identifies the published version of the construction.
type Revision = slhdsa.Revision

const (
	// FIPS205 is SLH-DSA as standardized in FIPS 205.
	FIPS205 = slhdsa.FIPS205
	// Round3 is SPHINCS+ as submitted in round 3.1 of the NIST process.
	Round3 = slhdsa.Round3
)

// Parameters represents the parameters of a SLH-DSA key: a parameter set, the
// signing mode and the signature prefix variant.
type Parameters struct {
	paramSet *slhdsa.Parameters
	variant  Variant
}

var _ key.Parameters = (*Parameters)(nil)

// NewParameters creates the parameters of a FIPS 205 parameter set.
//
// keySize is the length of the private key in bytes: 64, 96 or 128 for the
// 128, 192 and 256 bit security categories. Signing is hedged; use
// [Parameters.Deterministic] for deterministic signatures.
func NewParameters(hashType HashType, keySize int, sigType SignatureType, variant Variant) (*Parameters, error) {
	if hashType != SHA2 && hashType != SHAKE {
		return nil, fmt.Errorf("slhdsa.NewParameters: unsupported hash type %v", hashType)
	}
	if keySize != 64 && keySize != 96 && keySize != 128 {
		return nil, fmt.Errorf("slhdsa.NewParameters: keySize must be 64, 96 or 128, got %d", keySize)
	}
	suffix := ""
	switch sigType {
	case SmallSignature:
		suffix = "s"
	case FastSigning:
		suffix = "f"
	default:
		return nil, fmt.Errorf("slhdsa.NewParameters: unsupported signature type %v", sigType)
	}
	// The security level in bits is 8n, and the private key is 4n bytes.
	name := fmt.Sprintf("SLH-DSA-%s-%d%s", hashType, 2*keySize, suffix)
	params, err := ParametersByName(name, variant)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewParameters: %w", err)
	}
	return params, nil
}

// ParametersByName creates the parameters of the parameter set called name,
// for example "SLH-DSA-SHA2-128s" or "SphincsPlus-shake-256f-r3.1". Signing is
// hedged.
func ParametersByName(name string, variant Variant) (*Parameters, error) {
	if variant != VariantTink && variant != VariantNoPrefix {
		return nil, fmt.Errorf("slhdsa.ParametersByName: variant must not be %v", variant)
	}
	paramSet, err := slhdsa.ParametersByName(name)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.ParametersByName: %w", err)
	}
	return &Parameters{paramSet: paramSet, variant: variant}, nil
}

// Names lists the names accepted by [ParametersByName].
func Names() []string { return slhdsa.Names() }

// Deterministic returns a copy of p whose keys sign deterministically: the
// same key and message always produce the same signature.
func (p *Parameters) Deterministic() *Parameters {
	return &Parameters{paramSet: p.paramSet.Deterministic(), variant: p.variant}
}

// Name returns the name of the parameter set.
func (p *Parameters) Name() string { return p.paramSet.Name() }

// OID returns the object identifier of the parameter set.
func (p *Parameters) OID() asn1.ObjectIdentifier { return p.paramSet.OID() }

// Revision returns the revision of the construction the parameter set follows.
func (p *Parameters) Revision() Revision { return p.paramSet.Revision() }

// HashType returns the hash type.
func (p *Parameters) HashType() HashType {
	if p.paramSet.HashFamily() == slhdsa.SHAKE {
		return SHAKE
	}
	return SHA2
}

// KeySize returns the private key size in bytes.
func (p *Parameters) KeySize() int { return p.paramSet.SecretKeyLength() }

// SignatureType returns the signature type.
func (p *Parameters) SignatureType() SignatureType {
	if p.paramSet.IsFast() {
		return FastSigning
	}
	return SmallSignature
}

// IsDeterministic reports whether signing is deterministic.
func (p *Parameters) IsDeterministic() bool { return !p.paramSet.IsHedged() }

// Variant returns the prefix variant of the parameters.
func (p *Parameters) Variant() Variant { return p.variant }

// HasIDRequirement returns true if the key has an ID requirement.
func (p *Parameters) HasIDRequirement() bool { return p.variant != VariantNoPrefix }

// PublicKeySize returns the length of the public key bytes.
func (p *Parameters) PublicKeySize() int { return p.paramSet.PublicKeyLength() }

// SeedSize returns the length of the seed accepted by [NewPrivateKeyFromSeed].
func (p *Parameters) SeedSize() int { return p.paramSet.SeedLength() }

// SignatureSize returns the length of a signature, including the output
// prefix of the variant.
func (p *Parameters) SignatureSize() int {
	if p.variant == VariantTink {
		return p.paramSet.SignatureLength() + outputprefix.Size
	}
	return p.paramSet.SignatureLength()
}

// Equal returns true if this parameters object is equal to other.
func (p *Parameters) Equal(other key.Parameters) bool {
	that, ok := other.(*Parameters)
	return ok && p.variant == that.variant && p.paramSet.Equal(that.paramSet)
}

func (p *Parameters) String() string {
	return fmt.Sprintf("%v-%v", p.paramSet, p.variant)
}
