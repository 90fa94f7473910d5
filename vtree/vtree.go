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

// Package vtree implements the binary variable-partition tree the SDD apply
// engine indexes its canonical nodes and caches against: leaves carry a
// single variable, inner nodes carry the precomputed union of their
// children's variables, and every node keeps a parent pointer so that
// lowest-common-ancestor queries don't need to re-walk the whole tree.
package vtree

import "github.com/vtreekit/boolcirc/lit"

// Node is one vertex of a vtree. Once built it is immutable: a fresh Node
// is created rather than mutating Left/Right/Variables in place.
type Node struct {
	index     int
	variable  lit.Var // leaf only
	left      *Node   // inner only
	right     *Node   // inner only
	parent    *Node
	variables lit.VarSet
	count     uint
}

// NewLeaf constructs a vtree leaf carrying a single variable.
func NewLeaf(index int, v lit.Var) *Node {
	return &Node{
		index:     index,
		variable:  v,
		variables: lit.NewVarSet(v),
		count:     1,
	}
}

// NewInner constructs a vtree inner node over left and right, computing its
// variable set as their union and wiring both children's parent pointers
// to the new node.
func NewInner(index int, left, right *Node) *Node {
	n := &Node{
		index:     index,
		left:      left,
		right:     right,
		variables: left.variables.Union(right.variables),
	}
	n.count = uint(len(n.variables))
	left.parent = n
	right.parent = n
	return n
}

// IsLeaf reports whether n is a leaf vtree node.
func (n *Node) IsLeaf() bool { return n.left == nil }

// Index returns n's 0-based position in a children-before-parents
// linearization of the owning vtree.
func (n *Node) Index() int { return n.index }

// Variable returns the single variable of a leaf; it panics on an inner
// node.
func (n *Node) Variable() lit.Var {
	if !n.IsLeaf() {
		panic("vtree: Variable called on an inner node")
	}
	return n.variable
}

// Left returns the left child of an inner node; it panics on a leaf.
func (n *Node) Left() *Node {
	if n.IsLeaf() {
		panic("vtree: Left called on a leaf")
	}
	return n.left
}

// Right returns the right child of an inner node; it panics on a leaf.
func (n *Node) Right() *Node {
	if n.IsLeaf() {
		panic("vtree: Right called on a leaf")
	}
	return n.right
}

// Parent returns n's parent, or nil if n is the vtree root.
func (n *Node) Parent() *Node { return n.parent }

// Variables returns the set of variables in n's subtree.
func (n *Node) Variables() lit.VarSet { return n.variables }

// VarCount returns |Variables(n)|.
func (n *Node) VarCount() uint { return n.count }
