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

// Negate returns ¬n, memoized per manager so repeated negation of the same
// node is O(1) after the first call (§9: negation must be O(size) with
// memoization since Disjoin is defined via De Morgan on top of it). The
// canonical table naturally dedups ¬¬x back to x.
func Negate(mgr *Manager, n *Node) *Node {
	if cached, ok := mgr.negCache[n.id]; ok {
		return cached
	}
	var result *Node
	switch n.kind {
	case KindTrue:
		result = mgr.falseNode
	case KindFalse:
		result = mgr.trueNode
	case KindLiteral:
		result = mgr.Literal(n.literal.Negate())
	case KindDecision:
		negated := make([]Element, len(n.elements))
		for i, e := range n.elements {
			negated[i] = Element{Prime: e.Prime, Sub: Negate(mgr, e.Sub)}
		}
		result = canonicalize(mgr, n.vtreeNode, negated)
	default:
		panic("sdd: Negate called on a node of unknown kind")
	}
	mgr.negCache[n.id] = result
	mgr.negCache[result.id] = n
	return result
}
