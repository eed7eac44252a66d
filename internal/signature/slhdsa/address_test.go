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
	"encoding/hex"
	"testing"
)

func TestAddressEncoding(t *testing.T) {
	adrs := address{
		layer:   1,
		tree:    0x0102030405060708,
		typ:     addressFORSTree,
		keyPair: 5,
		height:  6,
		index:   7,
	}
	for _, tc := range []struct {
		name       string
		compressed bool
		want       string
	}{
		{"full", false, "00000001" + "00000000" + "0102030405060708" + "00000003" + "00000005" + "00000006" + "00000007"},
		{"compressed", true, "01" + "0102030405060708" + "03" + "00000005" + "00000006" + "00000007"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := hex.EncodeToString(adrs.appendTo(nil, tc.compressed))
			if got != tc.want {
				t.Errorf("appendTo(%v) = %s, want %s", tc.compressed, got, tc.want)
			}
		})
	}
	if got := len(adrs.appendTo(nil, false)); got != addressLength {
		t.Errorf("len(full address) = %d, want %d", got, addressLength)
	}
	if got := len(adrs.appendTo(nil, true)); got != compressedAddressLength {
		t.Errorf("len(compressed address) = %d, want %d", got, compressedAddressLength)
	}
}

func TestAddressTypeChanges(t *testing.T) {
	adrs := address{layer: 3, tree: 11, typ: addressWOTSHash, keyPair: 5, height: 6, index: 7}

	kept := adrs.withType(addressWOTSPk)
	if want := (address{layer: 3, tree: 11, typ: addressWOTSPk, keyPair: 5}); kept != want {
		t.Errorf("withType() = %+v, want %+v", kept, want)
	}
	if adrs.typ != addressWOTSHash {
		t.Errorf("withType() modified the receiver")
	}

	cleared := adrs
	cleared.setType(addressTree)
	if want := (address{layer: 3, tree: 11, typ: addressTree}); cleared != want {
		t.Errorf("setType() = %+v, want %+v", cleared, want)
	}
}
