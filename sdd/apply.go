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

import "github.com/vtreekit/boolcirc/vtree"

// Conjoin computes s ∧ t, dispatching on the relationship between s's and
// t's vtree nodes (§4.5). It is the sole entry point into the apply engine;
// Disjoin is defined from it via De Morgan.
func Conjoin(mgr *Manager, s, t *Node) *Node {
	switch {
	case s.kind == KindTrue:
		return t
	case t.kind == KindTrue:
		return s
	case s.kind == KindFalse, t.kind == KindFalse:
		return mgr.falseNode
	}

	if s.kind == KindLiteral && t.kind == KindLiteral && s.vtreeNode == t.vtreeNode {
		if s.literal == t.literal {
			return s
		}
		return mgr.falseNode
	}

	switch {
	case s.vtreeNode == t.vtreeNode:
		return cartesian(mgr, s, t)
	case vtree.VarSubset(s.vtreeNode, t.vtreeNode):
		return descend(mgr, s, t)
	case vtree.VarSubset(t.vtreeNode, s.vtreeNode):
		return descend(mgr, t, s)
	default:
		return independent(mgr, s, t)
	}
}

// Disjoin computes s ∨ t as ¬(¬s ∧ ¬t), the De Morgan dual of Conjoin.
func Disjoin(mgr *Manager, s, t *Node) *Node {
	return Negate(mgr, Conjoin(mgr, Negate(mgr, s), Negate(mgr, t)))
}

// cartesian handles two decision nodes respecting the same vtree node
// (§4.5, "Same vtree node" case): it builds a new XY-partition of size at
// most |E1|·|E2| via a cheap same/negated-prime pass followed by a fully
// general pairwise pass.
func cartesian(mgr *Manager, s, t *Node) *Node {
	if s == t {
		return s
	}
	if s == Negate(mgr, t) {
		return mgr.falseNode
	}

	lhs, rhs := pointerSort(s, t)
	vt := lhs.vtreeNode
	if cached, ok := mgr.cacheGet(vt, lhs, rhs); ok {
		return cached
	}

	e1, e2 := lhs.elements, rhs.elements
	used1 := make([]bool, len(e1))
	used2 := make([]bool, len(e2))
	var out []Element

	for i := range e1 {
		if used1[i] {
			continue
		}
		for j := range e2 {
			if used2[j] {
				continue
			}
			switch {
			case e1[i].Prime == e2[j].Prime:
				out = append(out, Element{Prime: e1[i].Prime, Sub: Conjoin(mgr, e1[i].Sub, e2[j].Sub)})
				used1[i], used2[j] = true, true
			case e1[i].Prime == Negate(mgr, e2[j].Prime):
				for k := range e1 {
					if k == i || used1[k] {
						continue
					}
					out = append(out, Element{Prime: e1[k].Prime, Sub: Conjoin(mgr, e2[j].Sub, e1[k].Sub)})
				}
				for k := range e2 {
					if k == j || used2[k] {
						continue
					}
					out = append(out, Element{Prime: e2[k].Prime, Sub: Conjoin(mgr, e1[i].Sub, e2[k].Sub)})
				}
				used1[i], used2[j] = true, true
			}
			if used1[i] {
				break
			}
		}
	}

	for i := range e1 {
		if used1[i] {
			continue
		}
		for j := range e2 {
			if used2[j] {
				continue
			}
			p := Conjoin(mgr, e1[i].Prime, e2[j].Prime)
			if p == mgr.falseNode {
				continue
			}
			out = append(out, Element{Prime: p, Sub: Conjoin(mgr, e1[i].Sub, e2[j].Sub)})
			if p == e2[j].Prime {
				used2[j] = true
			}
			if p == e1[i].Prime {
				used1[i] = true
				break
			}
		}
	}

	result := canonicalize(mgr, vt, out)
	mgr.cachePut(vt, lhs, rhs, result)
	return result
}

// descend handles the case where d's vtree is strictly contained in n's
// (§4.5, "Descendent left/right"): n must be a decision node, since a
// literal's vtree leaf cannot strictly contain anything. The cache is keyed
// on tmgr(n), the larger vtree node.
func descend(mgr *Manager, d, n *Node) *Node {
	vt := n.vtreeNode
	lhs, rhs := pointerSort(d, n)
	if cached, ok := mgr.cacheGet(vt, lhs, rhs); ok {
		return cached
	}

	var result *Node
	if vtree.VarSubsetLeft(d.vtreeNode, vt) {
		result = descendLeft(mgr, d, n)
	} else {
		result = descendRight(mgr, d, n)
	}

	mgr.cachePut(vt, lhs, rhs, result)
	return result
}

func descendLeft(mgr *Manager, d, n *Node) *Node {
	elements := n.Elements()
	negD := Negate(mgr, d)

	for _, e := range elements {
		if e.Prime == d {
			switch {
			case e.Sub == mgr.falseNode:
				return mgr.falseNode
			case e.Sub == mgr.trueNode:
				return d
			default:
				return canonicalize(mgr, n.vtreeNode, []Element{
					{Prime: d, Sub: e.Sub},
					{Prime: negD, Sub: mgr.falseNode},
				})
			}
		}
	}

	for _, e := range elements {
		if e.Prime == negD {
			out := make([]Element, 0, len(elements))
			for _, other := range elements {
				if other.Prime != negD {
					out = append(out, other)
				}
			}
			out = append(out, Element{Prime: negD, Sub: mgr.falseNode})
			return canonicalize(mgr, n.vtreeNode, out)
		}
	}

	out := make([]Element, 0, len(elements)+1)
	for _, e := range elements {
		p := Conjoin(mgr, e.Prime, d)
		if p == mgr.falseNode {
			continue
		}
		out = append(out, Element{Prime: p, Sub: e.Sub})
		if p == d {
			break
		}
	}
	out = append(out, Element{Prime: negD, Sub: mgr.falseNode})
	return canonicalize(mgr, n.vtreeNode, out)
}

func descendRight(mgr *Manager, d, n *Node) *Node {
	elements := n.Elements()
	out := make([]Element, len(elements))
	for i, e := range elements {
		out[i] = Element{Prime: e.Prime, Sub: Conjoin(mgr, e.Sub, d)}
	}
	return canonicalize(mgr, n.vtreeNode, out)
}

// independent handles two operands whose vtrees are disjoint (§4.5,
// "Independent" case): the result is the two-element decision
// {(a,b),(¬a,⊥)} at the pair's vtree lowest common ancestor, with a chosen
// as whichever operand falls under the LCA's left subtree.
func independent(mgr *Manager, s, t *Node) *Node {
	lca := vtree.ParentLCA(s.vtreeNode, t.vtreeNode)
	var a, b *Node
	if vtree.VarSubsetLeft(s.vtreeNode, lca) {
		a, b = s, t
	} else {
		a, b = t, s
	}
	return canonicalize(mgr, lca, []Element{
		{Prime: a, Sub: b},
		{Prime: Negate(mgr, a), Sub: mgr.falseNode},
	})
}
