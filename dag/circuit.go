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

import "github.com/vtreekit/boolcirc/boolerr"

// Circuit is an ordered sequence of nodes in children-before-parents order;
// its last element is the root. Every node reachable from the root appears
// exactly once (§3, Linearization law).
type Circuit struct {
	nodes []*Node
}

// Linearize walks root and returns the children-before-parents ordering of
// every reachable node, deduplicated by identity.  This is the canonical way
// to turn a freshly-built (or rewritten) node into a publishable Circuit. It
// walks with an explicit work stack rather than native recursion, for the
// same reason topoOrder does (§9: circuits deeper than the native stack must
// not overflow it) — this is on the same publish path for deep circuits.
func Linearize(root *Node) *Circuit {
	type frame struct {
		n *Node
		i int
	}

	visited := make(map[uint64]bool)
	order := make([]*Node, 0)
	stack := []frame{{root, 0}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i == 0 && visited[top.n.id] {
			stack = stack[:len(stack)-1]
			continue
		}
		if top.i < len(top.n.children) {
			child := top.n.children[top.i]
			top.i++
			if !visited[child.id] {
				stack = append(stack, frame{child, 0})
			}
			continue
		}
		visited[top.n.id] = true
		order = append(order, top.n)
		stack = stack[:len(stack)-1]
	}
	return &Circuit{nodes: order}
}

// Nodes returns the children-before-parents node sequence.
func (c *Circuit) Nodes() []*Node {
	return c.nodes
}

// Root returns the final (last) element of the linearization.
func (c *Circuit) Root() *Node {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[len(c.nodes)-1]
}

// NumNodes returns the number of distinct reachable nodes.
func (c *Circuit) NumNodes() int {
	return len(c.nodes)
}

// CheckLinearization verifies the Linearization law (§8.1): every inner
// node's children must appear earlier in the sequence.
func CheckLinearization(c *Circuit) error {
	seen := make(map[uint64]bool, len(c.nodes))
	for _, n := range c.nodes {
		for _, ch := range n.children {
			if !seen[ch.id] {
				return &boolerr.StructuralViolation{
					Reason: "child appears after (or is missing from) its parent in the linearization",
				}
			}
		}
		seen[n.id] = true
	}
	return nil
}

// HasUniqueLiteralNodes reports whether no literal value is represented by
// more than one node in c.
func HasUniqueLiteralNodes(c *Circuit) bool {
	seen := make(map[interface{}]bool)
	for _, n := range c.nodes {
		if n.kind == KindLiteral {
			if seen[n.literal] {
				return false
			}
			seen[n.literal] = true
		}
	}
	return true
}

// HasUniqueConstantNodes reports whether c contains at most one True node
// and at most one False node.
func HasUniqueConstantNodes(c *Circuit) bool {
	var trueSeen, falseSeen bool
	for _, n := range c.nodes {
		if n.kind != KindConstant {
			continue
		}
		if n.value {
			if trueSeen {
				return false
			}
			trueSeen = true
		} else {
			if falseSeen {
				return false
			}
			falseSeen = true
		}
	}
	return true
}

// Validate runs every structural check from §3/§8.1 and reports the first
// violation found, if any.  The circuit is always returned to the caller
// regardless (§7: StructuralViolation does not withhold the circuit).
func Validate(c *Circuit) error {
	if err := CheckLinearization(c); err != nil {
		return err
	}
	if !HasUniqueLiteralNodes(c) {
		return &boolerr.StructuralViolation{Reason: "duplicate literal node"}
	}
	if !HasUniqueConstantNodes(c) {
		return &boolerr.StructuralViolation{Reason: "duplicate constant node"}
	}
	return nil
}
