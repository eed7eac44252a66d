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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParameters(t testing.TB, name string) *Parameters {
	t.Helper()
	p, err := ParametersByName(name)
	if err != nil {
		t.Fatalf("ParametersByName(%q) err = %v, want nil", name, err)
	}
	return p
}

func TestDerivedParameters(t *testing.T) {
	for _, tc := range []struct {
		name     string
		wantHp   uint32
		wantW    uint32
		wantLen1 uint32
		wantLen2 uint32
		wantLen  uint32
	}{
		{"SLH-DSA-SHA2-128s", 9, 16, 32, 3, 35},
		{"SLH-DSA-SHAKE-128f", 3, 16, 32, 3, 35},
		{"SLH-DSA-SHA2-192s", 9, 16, 48, 3, 51},
		{"SLH-DSA-SHAKE-192f", 3, 16, 48, 3, 51},
		{"SLH-DSA-SHA2-256s", 8, 16, 64, 3, 67},
		{"SLH-DSA-SHAKE-256f", 4, 16, 64, 3, 67},
		{"SphincsPlus-sha2-128f-r3.1", 3, 16, 32, 3, 35},
		{"SphincsPlus-shake-256s-r3.1", 8, 16, 64, 3, 67},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := mustParameters(t, tc.name)
			if p.hp != tc.wantHp {
				t.Errorf("hp = %v, want %v", p.hp, tc.wantHp)
			}
			if p.w != tc.wantW {
				t.Errorf("w = %v, want %v", p.w, tc.wantW)
			}
			if p.len1 != tc.wantLen1 {
				t.Errorf("len1 = %v, want %v", p.len1, tc.wantLen1)
			}
			if p.len2 != tc.wantLen2 {
				t.Errorf("len2 = %v, want %v", p.len2, tc.wantLen2)
			}
			if p.len != tc.wantLen {
				t.Errorf("len = %v, want %v", p.len, tc.wantLen)
			}
		})
	}
}

func TestEncodingLengths(t *testing.T) {
	for _, tc := range []struct {
		names  []string
		pk     int
		sk     int
		sig    int
		family HashFamily
	}{
		{[]string{"SLH-DSA-SHA2-128s", "SphincsPlus-sha2-128s-r3.1"}, 32, 64, 7856, SHA2},
		{[]string{"SLH-DSA-SHAKE-128s", "SphincsPlus-shake-128s-r3.1"}, 32, 64, 7856, SHAKE},
		{[]string{"SLH-DSA-SHA2-128f", "SphincsPlus-sha2-128f-r3.1"}, 32, 64, 17088, SHA2},
		{[]string{"SLH-DSA-SHAKE-128f", "SphincsPlus-shake-128f-r3.1"}, 32, 64, 17088, SHAKE},
		{[]string{"SLH-DSA-SHA2-192s", "SphincsPlus-sha2-192s-r3.1"}, 48, 96, 16224, SHA2},
		{[]string{"SLH-DSA-SHAKE-192s", "SphincsPlus-shake-192s-r3.1"}, 48, 96, 16224, SHAKE},
		{[]string{"SLH-DSA-SHA2-192f", "SphincsPlus-sha2-192f-r3.1"}, 48, 96, 35664, SHA2},
		{[]string{"SLH-DSA-SHAKE-192f", "SphincsPlus-shake-192f-r3.1"}, 48, 96, 35664, SHAKE},
		{[]string{"SLH-DSA-SHA2-256s", "SphincsPlus-sha2-256s-r3.1"}, 64, 128, 29792, SHA2},
		{[]string{"SLH-DSA-SHAKE-256s", "SphincsPlus-shake-256s-r3.1"}, 64, 128, 29792, SHAKE},
		{[]string{"SLH-DSA-SHA2-256f", "SphincsPlus-sha2-256f-r3.1"}, 64, 128, 49856, SHA2},
		{[]string{"SLH-DSA-SHAKE-256f", "SphincsPlus-shake-256f-r3.1"}, 64, 128, 49856, SHAKE},
	} {
		for _, name := range tc.names {
			t.Run(name, func(t *testing.T) {
				p := mustParameters(t, name)
				if got := p.PublicKeyLength(); got != tc.pk {
					t.Errorf("PublicKeyLength() = %v, want %v", got, tc.pk)
				}
				if got := p.SecretKeyLength(); got != tc.sk {
					t.Errorf("SecretKeyLength() = %v, want %v", got, tc.sk)
				}
				if got := p.SignatureLength(); got != tc.sig {
					t.Errorf("SignatureLength() = %v, want %v", got, tc.sig)
				}
				if got := p.HashFamily(); got != tc.family {
					t.Errorf("HashFamily() = %v, want %v", got, tc.family)
				}
			})
		}
	}
}

func TestParametersByNameUnknown(t *testing.T) {
	for _, name := range []string{
		"",
		"SLH-DSA-SHA2-128",
		"slh-dsa-sha2-128s",
		"SphincsPlus-haraka-128s-r3.1",
		"SphincsPlus-sha2-128s",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParametersByName(name); !errors.Is(err, ErrUnknownParameterSet) {
				t.Errorf("ParametersByName(%q) err = %v, want %v", name, err, ErrUnknownParameterSet)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 24 {
		t.Errorf("len(Names()) = %d, want 24", len(names))
	}
	for _, name := range names {
		p := mustParameters(t, name)
		if p.Name() != name {
			t.Errorf("ParametersByName(%q).Name() = %q", name, p.Name())
		}
		if !p.IsHedged() {
			t.Errorf("ParametersByName(%q).IsHedged() = false, want true", name)
		}
	}
}

func TestOID(t *testing.T) {
	for _, tc := range []struct {
		name string
		want asn1.ObjectIdentifier
	}{
		{"SLH-DSA-SHA2-128s", asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 20}},
		{"SLH-DSA-SHA2-256f", asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 25}},
		{"SLH-DSA-SHAKE-128s", asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 26}},
		{"SLH-DSA-SHAKE-256f", asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 31}},
		{"SphincsPlus-shake-128s-r3.1", asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 25258, 1, 12, 1, 1}},
		{"SphincsPlus-sha2-256f-r3.1", asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 25258, 1, 12, 2, 6}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := mustParameters(t, tc.name).OID()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("OID() mismatch (-want +got):\n%s", diff)
			}
			// The returned OID must not alias the parameter set.
			got[0] = 99
			if again := mustParameters(t, tc.name).OID(); again[0] == 99 {
				t.Errorf("OID() returned an alias of internal state")
			}
		})
	}
}

func TestDeterministicVariant(t *testing.T) {
	p := mustParameters(t, "SLH-DSA-SHA2-128f")
	det := p.Deterministic()
	if det.IsHedged() {
		t.Errorf("Deterministic().IsHedged() = true, want false")
	}
	if !p.IsHedged() {
		t.Errorf("Deterministic() modified the receiver")
	}
	if p.Equal(det) {
		t.Errorf("p.Equal(p.Deterministic()) = true, want false")
	}
	if !p.Equal(det.Hedged()) {
		t.Errorf("p.Equal(p.Deterministic().Hedged()) = false, want true")
	}
	if got, want := det.String(), "SLH-DSA-SHA2-128f (deterministic)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
