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

// merkleTree is a binary hash tree of the given height whose leaves and inner
// nodes are computed on demand. Indices are local to the tree; leaf and node
// translate them into addresses.
type merkleTree struct {
	n      uint32
	height uint32
	leaf   func(i uint32) []byte
	// node compresses two children into the node at height z and index i.
	node func(z, i uint32, left, right []byte) []byte
}

// treehash returns the node at height z and index i. When auth is non-nil,
// every sibling on the path from leaf target to the root that lies inside
// this subtree is stored into auth, indexed by height.
//
// The left subtree is always evaluated before the right one.
func (t *merkleTree) treehash(i, z, target uint32, auth [][]byte) []byte {
	var node []byte
	if z == 0 {
		node = t.leaf(i)
	} else {
		left := t.treehash(2*i, z-1, target, auth)
		right := t.treehash(2*i+1, z-1, target, auth)
		node = t.node(z, i, left, right)
	}
	if auth != nil && z < t.height && i == (target>>z)^1 {
		auth[z] = node
	}
	return node
}

// sign returns the flattened authentication path of leaf idx and the root.
func (t *merkleTree) sign(idx uint32) (path, root []byte) {
	auth := make([][]byte, t.height)
	root = t.treehash(0, t.height, idx, auth)
	path = make([]byte, 0, t.height*t.n)
	for _, node := range auth {
		path = append(path, node...)
	}
	return path, root
}

// rootFromPath climbs from the leaf value node at index idx to the root using
// the flattened authentication path auth.
func (t *merkleTree) rootFromPath(idx uint32, node, auth []byte) []byte {
	if len(auth) != int(t.height*t.n) {
		panic("unreachable")
	}
	for z := range t.height {
		sibling := auth[z*t.n : (z+1)*t.n]
		parent := idx >> (z + 1)
		if (idx>>z)&1 == 0 {
			node = t.node(z+1, parent, node, sibling)
		} else {
			node = t.node(z+1, parent, sibling, node)
		}
	}
	return node
}
