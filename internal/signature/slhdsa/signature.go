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
	"slices"
)

// Signature is a decoded signature: the randomizer R, the FORS signature and
// the d concatenated XMSS signatures of the hypertree.
type Signature struct {
	R    []byte
	FORS []byte
	HT   []byte
}

// DecodeSignature splits an encoded signature into its parts. The parts alias
// a private copy of b.
func (p *Parameters) DecodeSignature(b []byte) (*Signature, error) {
	sig, ok := p.splitSignature(slices.Clone(b))
	if !ok {
		return nil, fmt.Errorf("signature: %w: got %d, want %d", ErrInvalidEncodingLength, len(b), p.SignatureLength())
	}
	return sig, nil
}

// splitSignature is DecodeSignature without the copy: the parts alias b.
func (p *Parameters) splitSignature(b []byte) (*Signature, bool) {
	if len(b) != p.SignatureLength() {
		return nil, false
	}
	forsEnd := int(p.n) + p.forsSignatureLength()
	return &Signature{
		R:    b[:p.n:p.n],
		FORS: b[p.n:forsEnd:forsEnd],
		HT:   b[forsEnd:],
	}, true
}

// Encode returns R || SIG_FORS || SIG_HT.
func (s *Signature) Encode() []byte {
	return slices.Concat(s.R, s.FORS, s.HT)
}

// Layer returns the XMSS signature of hypertree layer j, which is a WOTS+
// signature followed by an authentication path.
func (s *Signature) Layer(p *Parameters, j int) []byte {
	l := p.xmssSignatureLength()
	return s.HT[j*l : (j+1)*l]
}
