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

package query

import (
	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/lit"
)

// scopedResult pairs a node's variable scope with a sticky "ok so far" flag,
// which is how IsDecomposable/IsSmooth implement the "set to false on first
// violation and never flip back" check in a single FoldupAggregate pass.
type scopedResult struct {
	scope lit.VarSet
	ok    bool
}

// IsDecomposable reports whether every And in root's DAG has children with
// pairwise-disjoint variable scopes.
func IsDecomposable(root *dag.Node) bool {
	result := dag.FoldupAggregate(root, dag.AggregateVisitors[scopedResult]{
		Const: func(n *dag.Node) scopedResult { return scopedResult{lit.NewVarSet(), true} },
		Lit: func(n *dag.Node) scopedResult {
			return scopedResult{lit.NewVarSet(n.Literal().Var()), true}
		},
		And: func(n *dag.Node, children []scopedResult) scopedResult {
			ok := true
			seen := lit.NewVarSet()
			scope := lit.NewVarSet()
			for _, c := range children {
				if !c.ok {
					ok = false
				}
				if !seen.Disjoint(c.scope) {
					ok = false
				}
				seen = seen.Union(c.scope)
				scope = scope.Union(c.scope)
			}
			return scopedResult{scope, ok}
		},
		Or: func(n *dag.Node, children []scopedResult) scopedResult {
			ok := true
			scope := lit.NewVarSet()
			for _, c := range children {
				if !c.ok {
					ok = false
				}
				scope = scope.Union(c.scope)
			}
			return scopedResult{scope, ok}
		},
	})
	return result.ok
}

// IsSmooth reports whether every Or in root's DAG has children that all
// share its own variable scope.
func IsSmooth(root *dag.Node) bool {
	result := dag.FoldupAggregate(root, dag.AggregateVisitors[scopedResult]{
		Const: func(n *dag.Node) scopedResult { return scopedResult{lit.NewVarSet(), true} },
		Lit: func(n *dag.Node) scopedResult {
			return scopedResult{lit.NewVarSet(n.Literal().Var()), true}
		},
		And: func(n *dag.Node, children []scopedResult) scopedResult {
			ok := true
			scope := lit.NewVarSet()
			for _, c := range children {
				if !c.ok {
					ok = false
				}
				scope = scope.Union(c.scope)
			}
			return scopedResult{scope, ok}
		},
		Or: func(n *dag.Node, children []scopedResult) scopedResult {
			ok := true
			scope := lit.NewVarSet()
			for _, c := range children {
				if !c.ok {
					ok = false
				}
				scope = scope.Union(c.scope)
			}
			for _, c := range children {
				if !c.scope.Equals(scope) {
					ok = false
				}
			}
			return scopedResult{scope, ok}
		},
	})
	return result.ok
}
