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

import "github.com/vtreekit/boolcirc/lit"

// Builder assigns indices to vtree nodes in children-before-parents order
// as they are constructed, matching the convention §6 requires of the
// textual vtree format.
type Builder struct {
	next int
}

// NewBuilder constructs an empty vtree builder.
func NewBuilder() *Builder { return &Builder{} }

// Leaf constructs a vtree leaf for variable v.
func (b *Builder) Leaf(v lit.Var) *Node {
	n := NewLeaf(b.next, v)
	b.next++
	return n
}

// Inner constructs a vtree inner node over left and right.
func (b *Builder) Inner(left, right *Node) *Node {
	n := NewInner(b.next, left, right)
	b.next++
	return n
}

// Balanced builds a balanced binary vtree over vars, in the given order,
// returning its root. It is a convenience used by tests to stand up a
// vtree without hand-authoring a .vtree file; the SDD layer
// itself is agnostic to how a vtree was shaped.
func (b *Builder) Balanced(vars []lit.Var) *Node {
	leaves := make([]*Node, len(vars))
	for i, v := range vars {
		leaves[i] = b.Leaf(v)
	}
	return b.balance(leaves)
}

func (b *Builder) balance(nodes []*Node) *Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	mid := len(nodes) / 2
	left := b.balance(nodes[:mid])
	right := b.balance(nodes[mid:])
	return b.Inner(left, right)
}

// Right builds a right-leaning (degenerate) vtree over vars: every inner
// node's left child is a leaf. This mirrors the common "linear" vtree shape
// used by SDD compilers that have not run a vtree-search optimization.
func (b *Builder) Right(vars []lit.Var) *Node {
	if len(vars) == 0 {
		panic("vtree: cannot build over zero variables")
	}
	leaves := make([]*Node, len(vars))
	for i, v := range vars {
		leaves[i] = b.Leaf(v)
	}
	n := leaves[len(leaves)-1]
	for i := len(leaves) - 2; i >= 0; i-- {
		n = b.Inner(leaves[i], n)
	}
	return n
}

// Linearize returns every vtree node reachable from root in
// children-before-parents post-order (left subtree, right subtree, node).
// This order need not follow the nodes' indices.
func Linearize(root *Node) []*Node {
	var order []*Node
	var visit func(n *Node)
	visit = func(n *Node) {
		if n.IsLeaf() {
			order = append(order, n)
			return
		}
		visit(n.left)
		visit(n.right)
		order = append(order, n)
	}
	visit(root)
	return order
}
