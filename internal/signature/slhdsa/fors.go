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

// forsIndices splits the message digest into k a-bit leaf indices.
func (in *instance) forsIndices(md []byte) []uint32 {
	if in.p.revision == Round3 {
		return base2bLSB(md, in.p.a, in.p.k)
	}
	return base2b(md, in.p.a, in.p.k)
}

// Algorithm 14 (fors_skGen). idx is the leaf index across all k trees.
func (in *instance) forsSkGen(adrs address, idx uint32) []byte {
	skAdrs := adrs.withType(addressFORSPrf)
	skAdrs.index = idx
	return in.hash.prf(in.skSeed, &skAdrs)
}

// forsTree is FORS tree number tree of the key pair addressed by adrs, which
// must be a FORS_TREE address.
func (in *instance) forsTree(adrs address, tree uint32) *merkleTree {
	a := in.p.a
	return &merkleTree{
		n:      in.p.n,
		height: a,
		// Algorithm 15 (fors_node).
		leaf: func(i uint32) []byte {
			sk := in.forsSkGen(adrs, tree<<a+i)
			defer wipe(sk)
			return in.forsLeaf(adrs, tree<<a+i, sk)
		},
		node: func(z, i uint32, left, right []byte) []byte {
			nodeAdrs := adrs
			nodeAdrs.height = z
			nodeAdrs.index = tree<<(a-z) + i
			return in.hash.h(&nodeAdrs, left, right)
		},
	}
}

func (in *instance) forsLeaf(adrs address, idx uint32, sk []byte) []byte {
	adrs.height = 0
	adrs.index = idx
	return in.hash.f(&adrs, sk)
}

func (in *instance) forsPk(adrs address, roots []byte) []byte {
	pkAdrs := adrs.withType(addressFORSRoots)
	return in.hash.tl(&pkAdrs, roots)
}

// Algorithm 16 (fors_sign). The FORS public key is computed along the way and
// returned with the signature.
func (in *instance) forsSign(md []byte, adrs address) (sig, pk []byte) {
	p := in.p
	indices := in.forsIndices(md)
	sig = make([]byte, 0, p.forsSignatureLength())
	roots := make([]byte, 0, p.k*p.n)
	for i := range p.k {
		sk := in.forsSkGen(adrs, i<<p.a+indices[i])
		sig = append(sig, sk...)
		wipe(sk)
		auth, root := in.forsTree(adrs, i).sign(indices[i])
		sig = append(sig, auth...)
		roots = append(roots, root...)
	}
	return sig, in.forsPk(adrs, roots)
}

// Algorithm 17 (fors_pkFromSig). sig holds k chunks of one secret value
// followed by an a-node authentication path.
func (in *instance) forsPkFromSig(sig, md []byte, adrs address) []byte {
	p := in.p
	if len(sig) != p.forsSignatureLength() {
		panic("unreachable")
	}
	indices := in.forsIndices(md)
	chunk := (p.a + 1) * p.n
	roots := make([]byte, 0, p.k*p.n)
	for i := range p.k {
		c := sig[i*chunk : (i+1)*chunk]
		node := in.forsLeaf(adrs, i<<p.a+indices[i], c[:p.n])
		roots = append(roots, in.forsTree(adrs, i).rootFromPath(indices[i], node, c[p.n:])...)
	}
	return in.forsPk(adrs, roots)
}
