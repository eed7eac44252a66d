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

	"github.com/KaganCanSit/sphincsplus-go/internal/monitoringutil"
	"github.com/KaganCanSit/sphincsplus-go/internal/outputprefix"
	"github.com/KaganCanSit/sphincsplus-go/internal/signature/slhdsa"
	"github.com/KaganCanSit/sphincsplus-go/monitoring"
	"github.com/KaganCanSit/sphincsplus-go/signature"
)

// Verifier is an implementation of [signature.Verifier] for SLH-DSA. It is
// safe for concurrent use.
type Verifier struct {
	publicKey *slhdsa.PublicKey
	prefix    []byte
	keyID     uint32
	context   []byte
	logger    monitoring.Logger
}

var _ signature.Verifier = (*Verifier)(nil)

// NewVerifier creates a new [Verifier] for publicKey.
func NewVerifier(publicKey *PublicKey, opts ...Option) (*Verifier, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("slhdsa.NewVerifier: publicKey must not be nil")
	}
	o, err := newOptions(publicKey.params, opts)
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewVerifier: %w", err)
	}
	pk, err := publicKey.engineKey()
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewVerifier: %w", err)
	}
	keyID, _ := publicKey.IDRequirement()
	logger, err := monitoringutil.NewLogger(o.client, monitoring.NewContext(verifyPrimitive, "verify", keyInfo(publicKey.params, keyID)))
	if err != nil {
		return nil, fmt.Errorf("slhdsa.NewVerifier: %w", err)
	}
	return &Verifier{
		publicKey: pk,
		prefix:    publicKey.OutputPrefix(),
		keyID:     keyID,
		context:   o.context,
		logger:    logger,
	}, nil
}

// Verify verifies whether the given signature is valid for the given data.
//
// It returns an error if the prefix is not valid or the signature is not
// valid.
func (v *Verifier) Verify(sig, data []byte) error {
	rawSig, err := outputprefix.Strip(sig, v.prefix)
	if err != nil {
		v.logger.LogFailure()
		return fmt.Errorf("slhdsa: %w", err)
	}
	if !v.publicKey.Verify(data, rawSig, v.context) {
		v.logger.LogFailure()
		return ErrInvalidSignature
	}
	v.logger.Log(v.keyID, len(data))
	return nil
}
