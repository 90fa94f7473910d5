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

package dag

import (
	"github.com/vtreekit/boolcirc/internal/hashset"
	"github.com/vtreekit/boolcirc/lit"
)

// Builder hash-conses logical-DAG nodes: constructing the same shape twice
// returns the same *Node, which is what lets rewrites be idempotent under
// pointer identity (§8.2) rather than merely semantic equality. A Builder is
// not safe for concurrent use (§5: single-threaded core).
type Builder struct {
	nextID    uint64
	trueNode  *Node
	falseNode *Node
	literals  map[lit.Lit]*Node
	inner     *hashset.Table[innerKey, *Node]
}

// NewBuilder constructs an empty builder, with its True/False singletons
// pre-allocated.
func NewBuilder() *Builder {
	b := &Builder{
		literals: make(map[lit.Lit]*Node),
		inner:    hashset.New[innerKey, *Node](),
	}
	b.trueNode = &Node{id: b.allocID(), kind: KindConstant, value: true}
	b.falseNode = &Node{id: b.allocID(), kind: KindConstant, value: false}
	return b
}

func (b *Builder) allocID() uint64 {
	id := b.nextID
	b.nextID++
	return id
}

// Const returns the canonical True or False node.
func (b *Builder) Const(v bool) *Node {
	if v {
		return b.trueNode
	}
	return b.falseNode
}

// True returns the canonical ⊤ node.
func (b *Builder) True() *Node { return b.trueNode }

// False returns the canonical ⊥ node.
func (b *Builder) False() *Node { return b.falseNode }

// Literal returns the canonical node for l, fabricating it on first use.
func (b *Builder) Literal(l lit.Lit) *Node {
	if n, ok := b.literals[l]; ok {
		return n
	}
	n := &Node{id: b.allocID(), kind: KindLiteral, literal: l}
	b.literals[l] = n
	return n
}

// innerKey fingerprints an And/Or node by kind and the identity sequence of
// its children: order is structurally significant (§3), so two And nodes
// with the same children in different orders are distinct shapes.
type innerKey struct {
	kind Kind
	ids  []uint64
}

func (k innerKey) Hash() uint64 {
	h := uint64(14695981039346656037)
	const prime = uint64(1099511628211)
	h ^= uint64(k.kind)
	h *= prime
	for _, id := range k.ids {
		h ^= id
		h *= prime
	}
	return h
}

func (k innerKey) Equals(o innerKey) bool {
	if k.kind != o.kind || len(k.ids) != len(o.ids) {
		return false
	}
	for i := range k.ids {
		if k.ids[i] != o.ids[i] {
			return false
		}
	}
	return true
}

func keyOf(kind Kind, children []*Node) innerKey {
	ids := make([]uint64, len(children))
	for i, c := range children {
		ids[i] = c.id
	}
	return innerKey{kind, ids}
}

// And returns the canonical conjunction of children, in the given order.
// An empty child list yields True (the identity of conjunction).
func (b *Builder) And(children ...*Node) *Node {
	if len(children) == 0 {
		return b.trueNode
	}
	if len(children) == 1 {
		return children[0]
	}
	cs := append([]*Node(nil), children...)
	k := keyOf(KindAnd, cs)
	return b.inner.GetOrInsert(k, func() *Node {
		return &Node{id: b.allocID(), kind: KindAnd, children: cs}
	})
}

// Or returns the canonical disjunction of children, in the given order. An
// empty child list yields False (the identity of disjunction).
func (b *Builder) Or(children ...*Node) *Node {
	if len(children) == 0 {
		return b.falseNode
	}
	if len(children) == 1 {
		return children[0]
	}
	cs := append([]*Node(nil), children...)
	k := keyOf(KindOr, cs)
	return b.inner.GetOrInsert(k, func() *Node {
		return &Node{id: b.allocID(), kind: KindOr, children: cs}
	})
}

// ConjoinLike is the conjoin_like primitive §4.3 names: it conjoins children
// using And's own arity conventions (empty -> True, single child -> that
// child unwrapped). Rewrites that build a fresh conjunction — e.g. smooth's
// padding of an Or child with missing-variable tautologies — go through
// this rather than inlining the arity cases themselves.
func (b *Builder) ConjoinLike(children ...*Node) *Node {
	return b.And(children...)
}

// DisjoinLike is the disjoin_like counterpart, used when rebuilding a node
// that must stay a disjunction under the same arity conventions.
func (b *Builder) DisjoinLike(children ...*Node) *Node {
	return b.Or(children...)
}
