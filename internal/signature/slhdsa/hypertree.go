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

import "crypto/subtle"

// Algorithm 12 (ht_sign).
func (in *instance) htSign(msg []byte, idxTree uint64, idxLeaf uint32) []byte {
	p := in.p
	sig := make([]byte, 0, int(p.d)*p.xmssSignatureLength())
	root := msg
	for j := range p.d {
		if j > 0 {
			idxLeaf = uint32(idxTree & (1<<p.hp - 1))
			idxTree >>= p.hp
		}
		var layerSig []byte
		layerSig, root = in.xmssSign(root, idxLeaf, address{layer: j, tree: idxTree})
		sig = append(sig, layerSig...)
	}
	return sig
}

// Algorithm 13 (ht_verify).
func (in *instance) htVerify(msg []byte, sig *Signature, idxTree uint64, idxLeaf uint32, pkRoot []byte) bool {
	p := in.p
	node := msg
	for j := range p.d {
		if j > 0 {
			idxLeaf = uint32(idxTree & (1<<p.hp - 1))
			idxTree >>= p.hp
		}
		node = in.xmssPkFromSig(idxLeaf, sig.Layer(p, int(j)), node, address{layer: j, tree: idxTree})
	}
	return subtle.ConstantTimeCompare(node, pkRoot) == 1
}
