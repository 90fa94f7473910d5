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

package format

import (
	"fmt"

	"github.com/vtreekit/boolcirc/boolerr"
	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/lit"
	"github.com/vtreekit/boolcirc/sdd"
	"github.com/vtreekit/boolcirc/vtree"
)

// CompileVtree walks a decoded ".vtree" line sequence and builds the
// vtree it describes, resolving child ids to already-compiled nodes in
// order, exactly as §4.6 describes. It returns the root together with the
// id→node map a subsequent CompileSDD call needs to resolve each SDD
// line's VtreeID.
func CompileVtree(lines []CircuitFormatLine) (*vtree.Node, map[int]*vtree.Node, error) {
	byID := make(map[int]*vtree.Node)
	var root *vtree.Node

	for _, l := range lines {
		switch l.Kind {
		case LineHeader, LineComment:
			continue
		case LineVtreeLeaf:
			if l.Var <= 0 {
				return nil, nil, &boolerr.ParseError{Reason: fmt.Sprintf("vtree leaf %d has non-positive variable %d", l.ID, l.Var)}
			}
			n := vtree.NewLeaf(l.ID, lit.Var(l.Var))
			byID[l.ID] = n
			root = n
		case LineVtreeInner:
			left, ok := byID[l.Left]
			if !ok {
				return nil, nil, &boolerr.ParseError{Reason: fmt.Sprintf("vtree inner node %d references unresolved left child %d", l.ID, l.Left)}
			}
			right, ok := byID[l.Right]
			if !ok {
				return nil, nil, &boolerr.ParseError{Reason: fmt.Sprintf("vtree inner node %d references unresolved right child %d", l.ID, l.Right)}
			}
			n := vtree.NewInner(l.ID, left, right)
			byID[l.ID] = n
			root = n
		default:
			return nil, nil, &boolerr.Unsupported{Operation: "CompileVtree", Reason: "line kind not valid in a vtree sequence"}
		}
	}
	if root == nil {
		return nil, nil, &boolerr.ParseError{Reason: "vtree sequence contains no nodes"}
	}
	return root, byID, nil
}

// CompileSDD walks a decoded ".sdd" line sequence and builds the SDD it
// describes against mgr, resolving node ids to already-compiled nodes in
// order (§4.6). vtreeByID must be the id→node map CompileVtree returned
// for the vtree mgr is rooted at.
func CompileSDD(mgr *sdd.Manager, vtreeByID map[int]*vtree.Node, lines []CircuitFormatLine) (*sdd.Node, error) {
	byID := make(map[int]*sdd.Node)
	var root *sdd.Node

	for _, l := range lines {
		switch l.Kind {
		case LineHeader, LineComment:
			continue
		case LineConstant:
			n := mgr.False()
			if l.Value {
				n = mgr.True()
			}
			byID[l.ID] = n
			root = n
		case LineLiteral:
			if _, ok := vtreeByID[l.VtreeID]; !ok {
				return nil, &boolerr.ParseError{Reason: fmt.Sprintf("literal node %d references unresolved vtree id %d", l.ID, l.VtreeID)}
			}
			n := mgr.Literal(lit.Dimacs2Lit(l.Lit))
			byID[l.ID] = n
			root = n
		case LineDecision:
			vt, ok := vtreeByID[l.VtreeID]
			if !ok {
				return nil, &boolerr.ParseError{Reason: fmt.Sprintf("decision node %d references unresolved vtree id %d", l.ID, l.VtreeID)}
			}
			elements := make([]sdd.Element, len(l.Elements))
			for i, e := range l.Elements {
				prime, ok := byID[e.Prime]
				if !ok {
					return nil, &boolerr.ParseError{Reason: fmt.Sprintf("decision node %d references unresolved prime id %d", l.ID, e.Prime)}
				}
				sub, ok := byID[e.Sub]
				if !ok {
					return nil, &boolerr.ParseError{Reason: fmt.Sprintf("decision node %d references unresolved sub id %d", l.ID, e.Sub)}
				}
				elements[i] = sdd.Element{Prime: prime, Sub: sub}
			}
			n := sdd.Decision(mgr, vt, elements)
			byID[l.ID] = n
			root = n
		default:
			return nil, &boolerr.Unsupported{Operation: "CompileSDD", Reason: "line kind not valid in an SDD sequence"}
		}
	}
	if root == nil {
		return nil, &boolerr.ParseError{Reason: "SDD sequence contains no nodes"}
	}
	return root, nil
}

// CompileCNF walks a decoded ".cnf" line sequence and builds the logical
// DAG conjunction of clauses it describes: every clause becomes a
// disjunction of literals, and the whole formula is the conjunction of
// clauses (§6). An empty clause list compiles to True, the identity of
// conjunction.
func CompileCNF(b *dag.Builder, lines []CircuitFormatLine) (*dag.Node, error) {
	var clauses []*dag.Node
	for _, l := range lines {
		if l.Kind != LineClause {
			continue
		}
		clause, err := compileClause(b, l.Clause, b.Or)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	return b.And(clauses...), nil
}

// CompileDNF is the dual of CompileCNF: every clause becomes a conjunction
// of literals, and the whole formula is the disjunction of clauses.
func CompileDNF(b *dag.Builder, lines []CircuitFormatLine) (*dag.Node, error) {
	var clauses []*dag.Node
	for _, l := range lines {
		if l.Kind != LineClause {
			continue
		}
		clause, err := compileClause(b, l.Clause, b.And)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	return b.Or(clauses...), nil
}

func compileClause(b *dag.Builder, ints []int, combine func(...*dag.Node) *dag.Node) (*dag.Node, error) {
	if len(ints) == 0 {
		return nil, &boolerr.ParseError{Reason: "empty clause"}
	}
	lits := make([]*dag.Node, len(ints))
	for i, d := range ints {
		if d == 0 {
			return nil, &boolerr.ParseError{Reason: "literal 0 is reserved"}
		}
		lits[i] = b.Literal(lit.Dimacs2Lit(d))
	}
	return combine(lits...), nil
}
