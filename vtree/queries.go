// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package vtree

// VarSubset reports whether Variables(a) ⊆ Variables(b).
func VarSubset(a, b *Node) bool {
	return a.variables.Subset(b.variables)
}

// VarSubsetLeft reports whether Variables(a) ⊆ Variables(b.Left()).
// It is false when b is a leaf.
func VarSubsetLeft(a, b *Node) bool {
	if b.IsLeaf() {
		return false
	}
	return a.variables.Subset(b.left.variables)
}

// VarSubsetRight reports whether Variables(a) ⊆ Variables(b.Right()).
// It is false when b is a leaf.
func VarSubsetRight(a, b *Node) bool {
	if b.IsLeaf() {
		return false
	}
	return a.variables.Subset(b.right.variables)
}

// ParentLCA returns the lowest common ancestor, in the vtree, of the nodes
// respected by s and t. "Lowest common ancestor of the two vtree nodes in
// the vtree" is the intended semantics (§9): any deviation from that is a
// bug, not a feature.
func ParentLCA(s, t *Node) *Node {
	if s == t {
		return s
	}
	ancestors := make(map[*Node]bool)
	for n := s; n != nil; n = n.parent {
		ancestors[n] = true
	}
	for n := t; n != nil; n = n.parent {
		if ancestors[n] {
			return n
		}
	}
	return nil
}
