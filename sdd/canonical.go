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

package sdd

import (
	"slices"

	"github.com/vtreekit/boolcirc/boolerr"
	"github.com/vtreekit/boolcirc/vtree"
)

// partitionKey fingerprints an XY-partition by the ordered sequence of its
// (prime.ID, sub.ID) pairs, after the caller has sorted elements by prime ID
// so that the same partition always produces the same key regardless of
// the order elements were discovered in.
type partitionKey struct {
	ids []uint64
}

func newPartitionKey(elements []Element) partitionKey {
	ids := make([]uint64, 0, len(elements)*2)
	for _, e := range elements {
		ids = append(ids, e.Prime.id, e.Sub.id)
	}
	return partitionKey{ids}
}

func (k partitionKey) Hash() uint64 {
	h := uint64(14695981039346656037)
	const prime = uint64(1099511628211)
	for _, id := range k.ids {
		h ^= id
		h *= prime
	}
	return h
}

func (k partitionKey) Equals(o partitionKey) bool {
	if len(k.ids) != len(o.ids) {
		return false
	}
	for i := range k.ids {
		if k.ids[i] != o.ids[i] {
			return false
		}
	}
	return true
}

// compress merges elements sharing the same sub by disjoining their primes,
// per §4.5.1 step 1. It is the only place canonicalization touches apply
// (Disjoin), and the recursion always terminates: subs being merged are
// themselves results of earlier, smaller apply calls.
func compress(mgr *Manager, elements []Element) []Element {
	groups := make(map[uint64][]Element)
	order := make([]uint64, 0, len(elements))
	for _, e := range elements {
		key := e.Sub.id
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e)
	}
	out := make([]Element, 0, len(order))
	for _, key := range order {
		group := groups[key]
		prime := group[0].Prime
		for _, e := range group[1:] {
			prime = Disjoin(mgr, prime, e.Prime)
		}
		out = append(out, Element{Prime: prime, Sub: group[0].Sub})
	}
	return out
}

// trim detects the two degenerate decision shapes that must never survive
// canonicalization (§4.5.1 step 2) and reports the node they collapse to.
func trim(mgr *Manager, elements []Element) (*Node, bool) {
	if len(elements) == 1 {
		if elements[0].Prime == mgr.trueNode {
			return elements[0].Sub, true
		}
		return nil, false
	}
	if len(elements) == 2 {
		a, b := elements[0], elements[1]
		if a.Sub == mgr.trueNode && b.Sub == mgr.falseNode && a.Prime == Negate(mgr, b.Prime) {
			return a.Prime, true
		}
		if b.Sub == mgr.trueNode && a.Sub == mgr.falseNode && b.Prime == Negate(mgr, a.Prime) {
			return b.Prime, true
		}
	}
	return nil, false
}

// Decision canonicalizes and interns the XY-partition elements at the
// vtree node vt, returning the canonical node for that partition. This is
// the entry point a format compiler uses to build a decision node directly
// from already-compiled (prime, sub) children, without going through
// apply: the compiled input is not itself the result of a conjoin/disjoin
// call, but canonicity (§3) must hold for it exactly the same way.
func Decision(mgr *Manager, vt *vtree.Node, elements []Element) *Node {
	return canonicalize(mgr, vt, elements)
}

// canonicalize compresses, trims, and interns an XY-partition at vt's
// unique table, returning the same node for semantically identical
// partitions regardless of construction order (§4.5.1, §3 Canonicity).
func canonicalize(mgr *Manager, vt *vtree.Node, elements []Element) *Node {
	compressed := compress(mgr, elements)
	if len(compressed) == 0 {
		panic(&boolerr.CanonicalityViolation{Reason: "XY-partition has no elements; primes cannot partition ⊤"})
	}
	if node, ok := trim(mgr, compressed); ok {
		return node
	}
	slices.SortFunc(compressed, func(a, b Element) int {
		switch {
		case a.Prime.id < b.Prime.id:
			return -1
		case a.Prime.id > b.Prime.id:
			return 1
		default:
			return 0
		}
	})
	key := newPartitionKey(compressed)
	return mgr.table(vt).GetOrInsert(key, func() *Node {
		return &Node{id: mgr.allocID(), kind: KindDecision, vtreeNode: vt, elements: compressed}
	})
}
