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

// Package rewrite implements the structural rewrites that produce a fresh
// logical DAG (returned as its root node; dag.Linearize turns it into a
// Circuit) while preserving decomposability: constant
// propagation, variable forgetting, and smoothing (§4.3). Each rewrite
// shares a single Builder with its input so unchanged sub-DAGs are retained
// by pointer identity rather than rebuilt.
package rewrite

import "github.com/vtreekit/boolcirc/dag"

// PropagateConstants removes constants from root wherever a gate's
// semantics make them removable: an And with a False child collapses to
// False and drops True children; an Or with a True child collapses to True
// and drops False children. Running it again on its own output returns the
// same root identity (§4.3, idempotence).
func PropagateConstants(b *dag.Builder, root *dag.Node) *dag.Node {
	return dag.Foldup(root, dag.Visitors[*dag.Node]{
		Const: func(n *dag.Node) *dag.Node { return n },
		Lit:   func(n *dag.Node) *dag.Node { return n },
		And: func(n *dag.Node, call func(*dag.Node) *dag.Node) *dag.Node {
			kept := make([]*dag.Node, 0, len(n.Children()))
			for _, c := range n.Children() {
				rc := call(c)
				if rc.Kind() == dag.KindConstant {
					if !rc.Value() {
						return b.False()
					}
					continue // drop True children
				}
				kept = append(kept, rc)
			}
			if len(kept) == 0 {
				return b.True()
			}
			return b.And(kept...)
		},
		Or: func(n *dag.Node, call func(*dag.Node) *dag.Node) *dag.Node {
			kept := make([]*dag.Node, 0, len(n.Children()))
			for _, c := range n.Children() {
				rc := call(c)
				if rc.Kind() == dag.KindConstant {
					if rc.Value() {
						return b.True()
					}
					continue // drop False children
				}
				kept = append(kept, rc)
			}
			if len(kept) == 0 {
				return b.False()
			}
			return b.Or(kept...)
		},
	})
}
