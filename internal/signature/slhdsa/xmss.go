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

// xmssTree is the XMSS tree at the layer and tree address of adrs. Its leaves
// are compressed WOTS+ public keys.
func (in *instance) xmssTree(adrs address) *merkleTree {
	return &merkleTree{
		n:      in.p.n,
		height: in.p.hp,
		// Algorithm 9 (xmss_node).
		leaf: func(i uint32) []byte {
			leafAdrs := adrs
			leafAdrs.setType(addressWOTSHash)
			leafAdrs.keyPair = i
			return in.wotsPkGen(leafAdrs)
		},
		node: func(z, i uint32, left, right []byte) []byte {
			nodeAdrs := adrs
			nodeAdrs.setType(addressTree)
			nodeAdrs.height = z
			nodeAdrs.index = i
			return in.hash.h(&nodeAdrs, left, right)
		},
	}
}

func wotsAddress(adrs address, idx uint32) address {
	adrs.setType(addressWOTSHash)
	adrs.keyPair = idx
	return adrs
}

// Algorithm 10 (xmss_sign). Returns the WOTS+ signature of msg followed by the
// authentication path of leaf idx, and the root of the tree.
func (in *instance) xmssSign(msg []byte, idx uint32, adrs address) (sig, root []byte) {
	auth, root := in.xmssTree(adrs).sign(idx)
	sig = in.wotsSign(msg, wotsAddress(adrs, idx))
	return append(sig, auth...), root
}

// Algorithm 11 (xmss_pkFromSig).
func (in *instance) xmssPkFromSig(idx uint32, sig, msg []byte, adrs address) []byte {
	p := in.p
	if len(sig) != p.xmssSignatureLength() {
		panic("unreachable")
	}
	wotsSig, auth := sig[:p.len*p.n], sig[p.len*p.n:]
	node := in.wotsPkFromSig(wotsSig, msg, wotsAddress(adrs, idx))
	return in.xmssTree(adrs).rootFromPath(idx, node, auth)
}
