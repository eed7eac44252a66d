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
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"sync/atomic"

	"github.com/KaganCanSit/sphincsplus-go/internal/monitoringutil"
	"github.com/KaganCanSit/sphincsplus-go/internal/signature/slhdsa"
	"github.com/KaganCanSit/sphincsplus-go/monitoring"
	"github.com/KaganCanSit/sphincsplus-go/signature"
)

const (
	signPrimitive   = "public_key_sign"
	verifyPrimitive = "public_key_verify"
)

func keyInfo(params *Parameters, keyID uint32) *monitoring.KeyInfo {
	return &monitoring.KeyInfo{
		KeyID:         keyID,
		ParameterSet:  params.Name(),
		Deterministic: params.IsDeterministic(),
	}
}

// Signer is an implementation of [signature.Signer] for SLH-DSA.
//
// A Signer holds its own copy of the secret key and is safe for concurrent
// use. The copy is wiped by Destroy, or when the Signer is garbage collected.
type Signer struct {
	secretKey *slhdsa.SecretKey
	destroyed atomic.Bool
	prefix    []byte
	keyID     uint32
	rand      io.Reader
	context   []byte
	logger    monitoring.Logger
}

var _ signature.Signer = (*Signer)(nil)

// NewSigner creates a new [Signer] for privateKey.
func NewSigner(privateKey *PrivateKey, opts ...Option) (*Signer, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("slhdsa.NewSigner: privateKey must not be nil")
	}
	params := privateKey.publicKey.params
	o, err := newOptions(params, opts)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewSigner: %w", err)
	}
	secretKey, err := privateKey.engineKey()
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewSigner: %w", err)
	}
	keyID, _ := privateKey.IDRequirement()
	logger, err := monitoringutil.NewLogger(o.client, monitoring.NewContext(signPrimitive, "sign", keyInfo(params, keyID)))
	if err != nil {
		secretKey.Destroy()
		return nil, fmt.Errorf("slhdsa.NewSigner: %w", err)
	}
	s := &Signer{
		secretKey: secretKey,
		prefix:    privateKey.OutputPrefix(),
		keyID:     keyID,
		rand:      o.rand,
		context:   o.context,
		logger:    logger,
	}
	runtime.AddCleanup(s, (*slhdsa.SecretKey).Destroy, secretKey)
	return s, nil
}

var errSignerDestroyed = errors.New("slhdsa: signer has been destroyed")

// Sign computes a signature for the given data.
//
// If the key has a prefix, the signature will be prefixed with the output
// prefix.
func (s *Signer) Sign(data []byte) ([]byte, error) {
	if s.destroyed.Load() {
		s.logger.LogFailure()
		return nil, errSignerDestroyed
	}
	sig, err := s.secretKey.Sign(s.rand, data, s.context)
	if err != nil {
		s.logger.LogFailure()
		return nil, fmt.Errorf("slhdsa: %w", err)
	}
	s.logger.Log(s.keyID, len(data))
	return slices.Concat(s.prefix, sig), nil
}

// Destroy wipes the signer's copy of the secret key. Sign fails afterwards.
// Destroy must not be called concurrently with Sign.
func (s *Signer) Destroy() {
	s.destroyed.Store(true)
	s.secretKey.Destroy()
}
