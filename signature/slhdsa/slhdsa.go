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

// Package slhdsa provides SLH-DSA (FIPS 205) and SPHINCS+ round 3.1 keys,
// parameters, signers and verifiers.
//
// Keys are generated or decoded for a [Parameters] value, which names one of
// the standardized parameter sets and the [Variant] of its signatures:
//
//	params, err := slhdsa.NewParameters(slhdsa.SHAKE, 64, slhdsa.SmallSignature, slhdsa.VariantNoPrefix)
//	if err != nil {
//		// handle error
//	}
//	priv, err := slhdsa.GenerateKey(params, 0, nil)
//	if err != nil {
//		// handle error
//	}
//	signer, err := slhdsa.NewSigner(priv)
//	if err != nil {
//		// handle error
//	}
//	sig, err := signer.Sign(msg)
//
// The [Scheme] adapter exposes the same parameter sets through the
// github.com/cloudflare/circl/sign interfaces.
package slhdsa

import (
	"errors"

	"github.com/KaganCanSit/sphincsplus-go/internal/signature/slhdsa"
)

var (
	// ErrUnknownParameterSet is returned for names and parameter combinations
	// that do not identify a supported parameter set.
	ErrUnknownParameterSet = slhdsa.ErrUnknownParameterSet
	// ErrInvalidEncodingLength is returned when key, seed or signature bytes
	// have the wrong length for their parameter set.
	ErrInvalidEncodingLength = slhdsa.ErrInvalidEncodingLength
	// ErrRandomnessSource wraps read failures of a caller supplied random
	// source.
	ErrRandomnessSource = slhdsa.ErrRandomnessSource
	// ErrContextTooLong is returned for context strings longer than 255 bytes.
	ErrContextTooLong = slhdsa.ErrContextTooLong
	// ErrContextNotSupported is returned when a context string is used with a
	// SPHINCS+ round 3.1 parameter set.
	ErrContextNotSupported = slhdsa.ErrContextNotSupported
	// ErrInvalidSignature is returned by [Verifier.Verify] for signatures that
	// do not verify.
	ErrInvalidSignature = errors.New("slhdsa: invalid signature")
)
