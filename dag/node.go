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
	"fmt"
	"strings"

	"github.com/vtreekit/boolcirc/lit"
)

// Node is one immutable vertex of the logical DAG.  Once returned from a
// Builder it is never mutated; rewrites always produce new nodes rather than
// editing in place.  Ids are assigned from 0 upwards; a Builder's True node
// always has id 0.
type Node struct {
	id       uint64
	kind     Kind
	value    bool     // KindConstant
	literal  lit.Lit  // KindLiteral
	children []*Node  // KindAnd, KindOr
}

// Kind reports this node's tag.
func (n *Node) Kind() Kind { return n.kind }

// ID returns a stable, per-builder-lifetime identifier, monotonically
// increasing in construction order.  It gives a total order over nodes
// independent of memory address; the Builder's hash-consing keys and the
// traversal memos are keyed on it.
func (n *Node) ID() uint64 { return n.id }

// Value returns the truth value of a KindConstant node; it panics on any
// other kind.
func (n *Node) Value() bool {
	if n.kind != KindConstant {
		panic("dag: Value called on non-constant node")
	}
	return n.value
}

// Literal returns the literal of a KindLiteral node; it panics on any other
// kind.
func (n *Node) Literal() lit.Lit {
	if n.kind != KindLiteral {
		panic("dag: Literal called on non-literal node")
	}
	return n.literal
}

// Children returns the ordered child sequence of an And/Or node. It panics
// on a leaf.  The slice is owned by the node and must not be mutated.
func (n *Node) Children() []*Node {
	if n.kind != KindAnd && n.kind != KindOr {
		panic("dag: Children called on a leaf node")
	}
	return n.children
}

// Arity returns the number of children (0 for leaves).
func (n *Node) Arity() int {
	return len(n.children)
}

// String renders a one-line, non-recursive summary of the node, suitable for
// logging; it does not attempt to print the whole subtree.
func (n *Node) String() string {
	switch n.kind {
	case KindConstant:
		if n.value {
			return "⊤"
		}
		return "⊥"
	case KindLiteral:
		return n.literal.String()
	case KindAnd, KindOr:
		op := "∧"
		if n.kind == KindOr {
			op = "∨"
		}
		ids := make([]string, len(n.children))
		for i, c := range n.children {
			ids[i] = fmt.Sprintf("#%d", c.id)
		}
		return fmt.Sprintf("#%d = %s(%s)", n.id, op, strings.Join(ids, op))
	default:
		return "?"
	}
}
