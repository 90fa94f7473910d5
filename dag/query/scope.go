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

// Package query implements the read-only structural and numeric queries
// over a logical DAG: variable scopes, decomposability/smoothness checks,
// satisfaction probability, model counting, probabilistic-equivalence
// signatures, and dataset evaluation. Every query is built from Foldup/
// FoldupAggregate passes (§4.2); ModelCount and ProbEquivSignature run a
// VariableScope pass first.
package query

import (
	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/lit"
)

// VariableScope returns the set of variables reachable from root.
func VariableScope(root *dag.Node) lit.VarSet {
	return dag.FoldupAggregate(root, dag.AggregateVisitors[lit.VarSet]{
		Const: func(n *dag.Node) lit.VarSet { return lit.NewVarSet() },
		Lit:   func(n *dag.Node) lit.VarSet { return lit.NewVarSet(n.Literal().Var()) },
		And:   unionAll,
		Or:    unionAll,
	})
}

func unionAll(_ *dag.Node, children []lit.VarSet) lit.VarSet {
	result := lit.NewVarSet()
	for _, c := range children {
		result = result.Union(c)
	}
	return result
}

// VariableScopes returns the variable scope of every node reachable from
// root, retaining the per-node results of the single underlying fold.
func VariableScopes(root *dag.Node) map[*dag.Node]lit.VarSet {
	_, byNode := dag.FoldupAll(root, dag.Visitors[lit.VarSet]{
		Const: func(n *dag.Node) lit.VarSet { return lit.NewVarSet() },
		Lit:   func(n *dag.Node) lit.VarSet { return lit.NewVarSet(n.Literal().Var()) },
		And: func(n *dag.Node, call func(*dag.Node) lit.VarSet) lit.VarSet {
			return scopeOfChildren(n, call)
		},
		Or: func(n *dag.Node, call func(*dag.Node) lit.VarSet) lit.VarSet {
			return scopeOfChildren(n, call)
		},
	})
	return byNode
}

func scopeOfChildren(n *dag.Node, call func(*dag.Node) lit.VarSet) lit.VarSet {
	result := lit.NewVarSet()
	for _, c := range n.Children() {
		result = result.Union(call(c))
	}
	return result
}
