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
	"fmt"
	"math"

	"github.com/KaganCanSit/sphincsplus-go/insecuresecretdataaccess"
	"github.com/KaganCanSit/sphincsplus-go/secretdata"
	"google.golang.org/protobuf/encoding/protowire"
)

// Keys and parameters are serialized as a single protocol buffer message:
//
//	message SlhDsaKey {
//	  uint32 version = 1;
//	  string parameter_set = 2;
//	  bytes key_value = 3;
//	  bool deterministic = 4;
//	  KeyMaterialType key_material_type = 5;
//	  uint32 id_requirement = 6;
//	  OutputPrefixType output_prefix_type = 7;
//	}
//
// The enum values follow tink.proto.
const (
	versionField          protowire.Number = 1
	parameterSetField     protowire.Number = 2
	keyValueField         protowire.Number = 3
	deterministicField    protowire.Number = 4
	keyMaterialTypeField  protowire.Number = 5
	idRequirementField    protowire.Number = 6
	outputPrefixTypeField protowire.Number = 7

	// serializationVersion is the accepted message version.
	//
	// Currently, only version 0 is supported; other versions are rejected.
	serializationVersion = 0
)

type keyMaterialType uint64

const (
	unknownKeyMaterial keyMaterialType = 0
	asymmetricPrivate  keyMaterialType = 2
	asymmetricPublic   keyMaterialType = 3
)

type outputPrefixType uint64

const (
	unknownPrefix outputPrefixType = 0
	tinkPrefix    outputPrefixType = 1
	rawPrefix     outputPrefixType = 3
)

func outputPrefixTypeFromVariant(variant Variant) (outputPrefixType, error) {
	switch variant {
	case VariantTink:
		return tinkPrefix, nil
	case VariantNoPrefix:
		return rawPrefix, nil
	default:
		return unknownPrefix, fmt.Errorf("unknown output prefix variant: %v", variant)
	}
}

func variantFromOutputPrefixType(prefixType outputPrefixType) (Variant, error) {
	switch prefixType {
	case tinkPrefix:
		return VariantTink, nil
	case rawPrefix:
		return VariantNoPrefix, nil
	default:
		return VariantUnknown, fmt.Errorf("unsupported output prefix type: %d", prefixType)
	}
}

type serializedKey struct {
	version          uint64
	parameterSet     string
	keyValue         []byte
	deterministic    bool
	keyMaterialType  keyMaterialType
	idRequirement    uint32
	outputPrefixType outputPrefixType
}

func newSerializedKey(params *Parameters, material keyMaterialType, idRequirement uint32, keyValue []byte) (*serializedKey, error) {
	if params == nil {
		return nil, fmt.Errorf("invalid key: parameters are nil")
	}
	prefixType, err := outputPrefixTypeFromVariant(params.Variant())
	if err != nil {
		return nil, err
	}
	return &serializedKey{
		version:          serializationVersion,
		parameterSet:     params.Name(),
		keyValue:         keyValue,
		deterministic:    params.IsDeterministic(),
		keyMaterialType:  material,
		idRequirement:    idRequirement,
		outputPrefixType: prefixType,
	}, nil
}

// marshal encodes s. Zero values are omitted, as in proto3.
func (s *serializedKey) marshal() []byte {
	var b []byte
	appendVarint := func(num protowire.Number, v uint64) {
		if v != 0 {
			b = protowire.AppendTag(b, num, protowire.VarintType)
			b = protowire.AppendVarint(b, v)
		}
	}
	appendVarint(versionField, s.version)
	b = protowire.AppendTag(b, parameterSetField, protowire.BytesType)
	b = protowire.AppendString(b, s.parameterSet)
	if len(s.keyValue) > 0 {
		b = protowire.AppendTag(b, keyValueField, protowire.BytesType)
		b = protowire.AppendBytes(b, s.keyValue)
	}
	appendVarint(deterministicField, protowire.EncodeBool(s.deterministic))
	appendVarint(keyMaterialTypeField, uint64(s.keyMaterialType))
	appendVarint(idRequirementField, uint64(s.idRequirement))
	appendVarint(outputPrefixTypeField, uint64(s.outputPrefixType))
	return b
}

func consumeVarint(b []byte, typ protowire.Type) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, fmt.Errorf("unexpected wire type %d, want varint", typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBytes(b []byte, typ protowire.Type) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, fmt.Errorf("unexpected wire type %d, want bytes", typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

// unmarshalKey decodes b. Unknown fields are skipped. keyValue aliases b.
func unmarshalKey(b []byte) (*serializedKey, error) {
	s := &serializedKey{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		var (
			v   uint64
			err error
		)
		switch num {
		case versionField:
			s.version, n, err = consumeVarint(b, typ)
		case parameterSetField:
			var name []byte
			name, n, err = consumeBytes(b, typ)
			s.parameterSet = string(name)
		case keyValueField:
			s.keyValue, n, err = consumeBytes(b, typ)
		case deterministicField:
			v, n, err = consumeVarint(b, typ)
			s.deterministic = protowire.DecodeBool(v)
		case keyMaterialTypeField:
			v, n, err = consumeVarint(b, typ)
			s.keyMaterialType = keyMaterialType(v)
		case idRequirementField:
			v, n, err = consumeVarint(b, typ)
			if err == nil && v > math.MaxUint32 {
				err = fmt.Errorf("id requirement %d out of range", v)
			}
			s.idRequirement = uint32(v)
		case outputPrefixTypeField:
			v, n, err = consumeVarint(b, typ)
			s.outputPrefixType = outputPrefixType(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				err = protowire.ParseError(n)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", num, err)
		}
		b = b[n:]
	}
	return s, nil
}

func (s *serializedKey) parameters() (*Parameters, error) {
	if s.version != serializationVersion {
		return nil, fmt.Errorf("unsupported version %d", s.version)
	}
	variant, err := variantFromOutputPrefixType(s.outputPrefixType)
	if err != nil {
		return nil, err
	}
	params, err := ParametersByName(s.parameterSet, variant)
	if err != nil {
		return nil, err
	}
	if s.deterministic {
		params = params.Deterministic()
	}
	return params, nil
}

// SerializeParameters serializes params.
func SerializeParameters(params *Parameters) ([]byte, error) {
	s, err := newSerializedKey(params, unknownKeyMaterial, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.SerializeParameters: %w", err)
	}
	return s.marshal(), nil
}

// ParseParameters parses parameters serialized by [SerializeParameters].
func ParseParameters(b []byte) (*Parameters, error) {
	s, err := unmarshalKey(b)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.ParseParameters: %w", err)
	}
	if s.keyMaterialType != unknownKeyMaterial || len(s.keyValue) > 0 {
		return nil, fmt.Errorf("slhdsa.ParseParameters: serialization contains key material")
	}
	params, err := s.parameters()
	if err != nil {
		return nil, fmt.Errorf("slhdsa.ParseParameters: %w", err)
	}
	return params, nil
}

// SerializePublicKey serializes key.
func SerializePublicKey(key *PublicKey) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("slhdsa.SerializePublicKey: key must not be nil")
	}
	// idRequirement is zero if the key doesn't have a key requirement.
	idRequirement, _ := key.IDRequirement()
	s, err := newSerializedKey(key.params, asymmetricPublic, idRequirement, key.keyBytes)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.SerializePublicKey: %w", err)
	}
	return s.marshal(), nil
}

// ParsePublicKey parses a public key serialized by [SerializePublicKey].
func ParsePublicKey(b []byte) (*PublicKey, error) {
	s, err := unmarshalKey(b)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.ParsePublicKey: %w", err)
	}
	if s.keyMaterialType != asymmetricPublic {
		return nil, fmt.Errorf("slhdsa.ParsePublicKey: key material type is %d, want %d", s.keyMaterialType, asymmetricPublic)
	}
	params, err := s.parameters()
	if err != nil {
		return nil, fmt.Errorf("slhdsa.ParsePublicKey: %w", err)
	}
	key, err := NewPublicKey(s.keyValue, s.idRequirement, params)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.ParsePublicKey: %w", err)
	}
	return key, nil
}

// SerializePrivateKey serializes key. The output contains the secret key
// bytes.
func SerializePrivateKey(key *PrivateKey, token insecuresecretdataaccess.Token) ([]byte, error) {
	if key == nil || key.publicKey == nil {
		return nil, fmt.Errorf("slhdsa.SerializePrivateKey: key must not be nil")
	}
	keyValue := key.keyBytes.Data(token)
	defer clear(keyValue)
	idRequirement, _ := key.IDRequirement()
	s, err := newSerializedKey(key.publicKey.params, asymmetricPrivate, idRequirement, keyValue)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.SerializePrivateKey: %w", err)
	}
	return s.marshal(), nil
}

// ParsePrivateKey parses a private key serialized by [SerializePrivateKey].
func ParsePrivateKey(b []byte, token insecuresecretdataaccess.Token) (*PrivateKey, error) {
	s, err := unmarshalKey(b)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.ParsePrivateKey: %w", err)
	}
	if s.keyMaterialType != asymmetricPrivate {
		return nil, fmt.Errorf("slhdsa.ParsePrivateKey: key material type is %d, want %d", s.keyMaterialType, asymmetricPrivate)
	}
	params, err := s.parameters()
	if err != nil {
		return nil, fmt.Errorf("slhdsa.ParsePrivateKey: %w", err)
	}
	key, err := NewPrivateKey(secretdata.NewBytesFromData(s.keyValue, token), s.idRequirement, params)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.ParsePrivateKey: %w", err)
	}
	return key, nil
}
