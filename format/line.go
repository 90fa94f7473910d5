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

// Package format implements the collaborator contract spec.md §4.6 and §6
// describe but place outside the core: decoding and encoding the textual
// SDD/PSDD/Logistic-Circuit/CNF/DNF/vtree file formats into an ordered
// sequence of CircuitFormatLine records, and compiling that same sequence
// into a *dag.Node, *vtree.Node or *sdd.Node by resolving ids to already-compiled
// nodes in source order. Nothing in this package is part of the core: the
// core's only contract with it is the CircuitFormatLine shape.
package format

// LineKind discriminates the handful of line shapes the supported formats
// share. Not every field of CircuitFormatLine is meaningful for every kind;
// which fields apply is documented per kind below, the same way go-corset's
// BinaryFileHeader reuses one struct shape across format revisions.
type LineKind uint8

const (
	// LineHeader is the leading "sdd <n>" / "psdd <n>" / "vtree <n>" /
	// "Logistic Circuit" / "p cnf <nvars> <nclauses>" line.  Text carries
	// the format name, Count the declared node count; a DIMACS header
	// carries its sizes in NumVars/NumClauses instead.
	LineHeader LineKind = iota
	// LineComment is a "c ..." line; Text carries the comment body.
	LineComment
	// LineConstant is a "T <id>" / "F <id>" constant leaf.  Value carries
	// which constant.  In the PSDD dialect, a T line may additionally
	// carry VtreeID, Var and Weight for a weighted true leaf.
	LineConstant
	// LineLiteral is an "L <id> <vtree-id> <lit>" literal leaf.  Lit is
	// the signed DIMACS-style integer.  In the Logistic Circuit dialect,
	// Var, Negative and Weights replace Lit.
	LineLiteral
	// LineDecision is a "D <id> <vtree-id> <n> p1 s1 p2 s2 ..." decision
	// node.  Elements carries the (prime, sub[, weight]) tuples.
	LineDecision
	// LineBias is a Logistic Circuit "B <weights...>" bias line.
	LineBias
	// LineClause is one DIMACS clause: a sequence of signed literals
	// terminated by a trailing 0, which is not itself stored in Clause.
	LineClause
	// LineVtreeLeaf is a vtree "L <id> <var>" line.  Distinct from
	// LineLiteral: a vtree leaf has no polarity.
	LineVtreeLeaf
	// LineVtreeInner is a vtree "I <id> <left-id> <right-id>" line.
	LineVtreeInner
)

// Element is one (prime, sub[, weight]) tuple of a decision line's
// XY-partition payload.  Weight is only meaningful for the PSDD dialect;
// it is zero for plain SDD decisions.
type Element struct {
	Prime, Sub int
	Weight     float64
}

// CircuitFormatLine is one decoded line of a textual circuit or vtree file,
// in source order, with ids preserved exactly (§6). A parser's only
// obligation is to emit these in order and reject any line whose first
// token is unrecognized (§4.6); everything past that is this struct's job.
type CircuitFormatLine struct {
	Kind LineKind

	// Text carries the header's format name (LineHeader) or a comment's
	// body (LineComment).
	Text string

	// ID is the 0-based node id this line assigns (absent for
	// LineHeader, LineComment, LineBias, LineClause).
	ID int
	// VtreeID is the vtree node this SDD node respects; -1 when absent
	// (constants, and every vtree-format line).
	VtreeID int

	// Value holds the boolean for a LineConstant line (true selects T,
	// false selects F).
	Value bool
	// Lit holds the signed DIMACS literal of a LineLiteral line.
	Lit int
	// Var holds the bare variable id of a LineVtreeLeaf line, or of a
	// PSDD weighted-true LineConstant / a Logistic Circuit LineLiteral
	// leaf.
	Var int
	// Negative marks a Logistic Circuit "F"-prefixed (negative) literal
	// leaf; meaningless outside that dialect.
	Negative bool
	// Weight carries a PSDD weighted-true leaf's single weight.
	Weight float64
	// Weights carries a Logistic Circuit leaf/decision/bias line's
	// weight vector.
	Weights []float64

	// Elements carries a LineDecision line's XY-partition.
	Elements []Element

	// Left, Right carry a LineVtreeInner line's child ids.
	Left, Right int

	// Count carries an sdd/psdd/vtree LineHeader line's declared node
	// count.
	Count int
	// NumVars, NumClauses carry a DIMACS "p cnf <nvars> <nclauses>"
	// header's declared sizes.
	NumVars, NumClauses int

	// Clause carries a LineClause's signed literals, trailing 0 removed.
	Clause []int
}
