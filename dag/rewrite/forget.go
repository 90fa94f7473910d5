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

package rewrite

import (
	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/lit"
)

// Forget substitutes True for every literal whose variable satisfies
// predicate, then rebuilds inner nodes with their mapped children (§4.3).
// This does not preserve determinism of the input; it is idempotent under
// pointer identity when applied twice with the same predicate on the same
// builder.
func Forget(b *dag.Builder, root *dag.Node, predicate func(lit.Var) bool) *dag.Node {
	return dag.Foldup(root, dag.Visitors[*dag.Node]{
		Const: func(n *dag.Node) *dag.Node { return n },
		Lit: func(n *dag.Node) *dag.Node {
			if predicate(n.Literal().Var()) {
				return b.True()
			}
			return n
		},
		And: func(n *dag.Node, call func(*dag.Node) *dag.Node) *dag.Node {
			children := make([]*dag.Node, len(n.Children()))
			for i, c := range n.Children() {
				children[i] = call(c)
			}
			return b.And(children...)
		},
		Or: func(n *dag.Node, call func(*dag.Node) *dag.Node) *dag.Node {
			children := make([]*dag.Node, len(n.Children()))
			for i, c := range n.Children() {
				children[i] = call(c)
			}
			return b.Or(children...)
		},
	})
}
