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
	"github.com/vtreekit/boolcirc/dag/query"
	"github.com/vtreekit/boolcirc/lit"
)

// Smooth makes every Or in root locally smooth by padding each child that
// is missing variables from its parent's scope with a conjunction of
// "lit(v) ∨ ¬lit(v)" tautologies, one per missing variable (§4.3). The
// input's own scope computation (one VariableScopes pass) drives which
// padding is needed; the rebuilt tree is decomposable whenever the input
// is, and is idempotent under pointer identity once already smooth.
func Smooth(b *dag.Builder, root *dag.Node) *dag.Node {
	scopes := query.VariableScopes(root)

	return dag.Foldup(root, dag.Visitors[*dag.Node]{
		Const: func(n *dag.Node) *dag.Node { return n },
		Lit:   func(n *dag.Node) *dag.Node { return n },
		And: func(n *dag.Node, call func(*dag.Node) *dag.Node) *dag.Node {
			children := make([]*dag.Node, len(n.Children()))
			for i, c := range n.Children() {
				children[i] = call(c)
			}
			return b.ConjoinLike(children...)
		},
		Or: func(n *dag.Node, call func(*dag.Node) *dag.Node) *dag.Node {
			parent := scopes[n]
			padded := make([]*dag.Node, len(n.Children()))
			for i, c := range n.Children() {
				smoothedChild := call(c)
				missing := parent.Sorted()
				childScope := scopes[c]
				terms := []*dag.Node{smoothedChild}
				for _, v := range missing {
					if childScope.Contains(v) {
						continue
					}
					terms = append(terms, tautology(b, v))
				}
				padded[i] = b.ConjoinLike(terms...)
			}
			return b.DisjoinLike(padded...)
		},
	})
}

// tautology builds (and interns) lit(v) ∨ ¬lit(v), the padding disjunction
// used to smooth a child missing variable v.
func tautology(b *dag.Builder, v lit.Var) *dag.Node {
	pos := b.Literal(lit.NewLit(v, true))
	neg := b.Literal(lit.NewLit(v, false))
	return b.Or(pos, neg)
}
