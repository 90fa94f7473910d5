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

// Package sdd implements the canonical, trimmed, compressed Sentential
// Decision Diagram node layer and its apply (conjoin/disjoin) engine
// (§4.5). Every node is produced exclusively by a Manager's interning
// tables; there is no public constructor that bypasses canonicalization.
package sdd

import (
	"fmt"
	"strings"

	"github.com/vtreekit/boolcirc/lit"
	"github.com/vtreekit/boolcirc/vtree"
)

// Kind discriminates the four SDD node shapes.
type Kind uint8

const (
	// KindTrue is the unique ⊤ node.
	KindTrue Kind = iota
	// KindFalse is the unique ⊥ node.
	KindFalse
	// KindLiteral is a leaf respecting a vtree leaf.
	KindLiteral
	// KindDecision is an inner node respecting a vtree inner node,
	// holding an XY-partition of (prime, sub) elements.
	KindDecision
)

// Element is one (prime, sub) pair of a decision node's XY-partition.
type Element struct {
	Prime *Node
	Sub   *Node
}

// Node is one canonical SDD node. Every Node reachable from a Manager's
// tables is immutable and, for nodes respecting the same vtree node,
// semantic equivalence holds iff pointer equality holds (§3, Canonicity).
type Node struct {
	id        uint64
	kind      Kind
	literal   lit.Lit     // KindLiteral
	vtreeNode *vtree.Node // KindLiteral, KindDecision; nil for True/False
	elements  []Element   // KindDecision
}

// ID returns a stable, manager-lifetime identifier assigned in construction
// order; it gives the total pointer order the apply cache keys on (§9).
func (n *Node) ID() uint64 { return n.id }

// Kind reports this node's tag.
func (n *Node) Kind() Kind { return n.kind }

// Literal returns the literal of a KindLiteral node; it panics otherwise.
func (n *Node) Literal() lit.Lit {
	if n.kind != KindLiteral {
		panic("sdd: Literal called on a non-literal node")
	}
	return n.literal
}

// Vtree returns the vtree node n respects. It is nil for True/False, which
// respect every vtree node vacuously.
func (n *Node) Vtree() *vtree.Node { return n.vtreeNode }

// Elements returns the XY-partition of a KindDecision node; it panics
// otherwise. The slice is owned by the node and must not be mutated.
func (n *Node) Elements() []Element {
	if n.kind != KindDecision {
		panic("sdd: Elements called on a non-decision node")
	}
	return n.elements
}

// IsConstant reports whether n is the True or False singleton.
func (n *Node) IsConstant() bool {
	return n.kind == KindTrue || n.kind == KindFalse
}

// String renders a one-line, non-recursive summary of n for diagnostics.
func (n *Node) String() string {
	switch n.kind {
	case KindTrue:
		return "⊤"
	case KindFalse:
		return "⊥"
	case KindLiteral:
		return n.literal.String()
	case KindDecision:
		parts := make([]string, len(n.elements))
		for i, e := range n.elements {
			parts[i] = fmt.Sprintf("(#%d,#%d)", e.Prime.id, e.Sub.id)
		}
		return fmt.Sprintf("#%d = {%s}", n.id, strings.Join(parts, ", "))
	default:
		return "?"
	}
}
