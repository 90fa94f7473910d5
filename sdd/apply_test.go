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

import (
	"testing"

	"github.com/vtreekit/boolcirc/lit"
	"github.com/vtreekit/boolcirc/vtree"
)

func newTestManager(vars ...lit.Var) (*Manager, *vtree.Node) {
	root := vtree.NewBuilder().Balanced(vars)
	return NewManager(root), root
}

func Test_Conjoin_WithTrueIsIdentity(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))

	if Conjoin(mgr, a, mgr.True()) != a {
		t.Fatalf("x ∧ ⊤ must equal x")
	}
	if Conjoin(mgr, mgr.True(), a) != a {
		t.Fatalf("⊤ ∧ x must equal x")
	}
}

func Test_Conjoin_WithFalseIsFalse(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))

	if Conjoin(mgr, a, mgr.False()) != mgr.False() {
		t.Fatalf("x ∧ ⊥ must equal ⊥")
	}
}

func Test_Conjoin_SameLiteralSameVtreeLeaf(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))

	if Conjoin(mgr, a, a) != a {
		t.Fatalf("x ∧ x must equal x")
	}
}

func Test_Conjoin_OppositeLiteralSameVtreeLeaf(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))
	notA := mgr.Literal(lit.NewLit(1, false))

	if Conjoin(mgr, a, notA) != mgr.False() {
		t.Fatalf("x ∧ ¬x must equal ⊥")
	}
}

func Test_Conjoin_IsCommutative(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))
	b := mgr.Literal(lit.NewLit(2, true))

	if Conjoin(mgr, a, b) != Conjoin(mgr, b, a) {
		t.Fatalf("conjoin must be commutative")
	}
}

func Test_Conjoin_IsAssociative(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))
	b := mgr.Literal(lit.NewLit(2, true))
	c := mgr.Literal(lit.NewLit(3, true))

	left := Conjoin(mgr, Conjoin(mgr, a, b), c)
	right := Conjoin(mgr, a, Conjoin(mgr, b, c))
	if left != right {
		t.Fatalf("conjoin must be associative")
	}
}

func Test_Conjoin_IsIdempotent(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))
	b := mgr.Literal(lit.NewLit(2, true))

	ab := Conjoin(mgr, a, b)
	if Conjoin(mgr, ab, ab) != ab {
		t.Fatalf("conjoin must be idempotent")
	}
}

func Test_Disjoin_DeMorganWithConjoin(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))
	b := mgr.Literal(lit.NewLit(2, true))

	disjoined := Disjoin(mgr, a, b)
	expected := Negate(mgr, Conjoin(mgr, Negate(mgr, a), Negate(mgr, b)))
	if disjoined != expected {
		t.Fatalf("disjoin must equal its De Morgan expansion")
	}
}

func Test_Disjoin_WithNegationIsTrue(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))
	notA := mgr.Literal(lit.NewLit(1, false))

	if Disjoin(mgr, a, notA) != mgr.True() {
		t.Fatalf("x ∨ ¬x must equal ⊤")
	}
}

func Test_Conjoin_IndependentVariablesProducesDecisionNode(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))
	c := mgr.Literal(lit.NewLit(3, true))

	result := Conjoin(mgr, a, c)
	if result.Kind() != KindDecision {
		t.Fatalf("conjoin of independent literals must yield a decision node, got %v", result.Kind())
	}
}

func Test_Conjoin_IndependentSubtreesProducesDecomposableResult(t *testing.T) {
	mgr, root := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))
	b := mgr.Literal(lit.NewLit(2, true))
	c := mgr.Literal(lit.NewLit(3, true))
	d := mgr.Literal(lit.NewLit(4, true))

	left := Conjoin(mgr, a, b)  // respects root.Left()
	right := Conjoin(mgr, c, d) // respects root.Right()
	result := Conjoin(mgr, left, right)

	if result.Vtree() != root {
		t.Fatalf("conjoin of left-only and right-only operands must respect the root")
	}
	for _, e := range result.Elements() {
		if e.Prime.Vtree() == nil {
			continue
		}
		if !vtree.VarSubsetLeft(e.Prime.Vtree(), root) {
			t.Fatalf("every prime must respect the left vtree child")
		}
	}
}

func Test_Negate_IsInvolutive(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3, 4)
	a := mgr.Literal(lit.NewLit(1, true))
	b := mgr.Literal(lit.NewLit(2, true))
	ab := Conjoin(mgr, a, b)

	if Negate(mgr, Negate(mgr, ab)) != ab {
		t.Fatalf("¬¬x must equal x")
	}
}

func Test_Negate_ConstantsSwap(t *testing.T) {
	mgr, _ := newTestManager(1, 2)

	if Negate(mgr, mgr.True()) != mgr.False() {
		t.Fatalf("¬⊤ must equal ⊥")
	}
	if Negate(mgr, mgr.False()) != mgr.True() {
		t.Fatalf("¬⊥ must equal ⊤")
	}
}

func Test_Canonicity_EquivalentFormulasShareOneNode(t *testing.T) {
	mgr, _ := newTestManager(1, 2, 3)
	a := mgr.Literal(lit.NewLit(1, true))
	b := mgr.Literal(lit.NewLit(2, true))
	c := mgr.Literal(lit.NewLit(3, true))

	lhs := Conjoin(mgr, Conjoin(mgr, a, b), c)
	rhs := Conjoin(mgr, a, Conjoin(mgr, c, b))
	if lhs != rhs {
		t.Fatalf("semantically equal formulas built in different orders must canonicalize to the same node")
	}
}

func Test_Conjoin_AbsorptionWithDisjoin(t *testing.T) {
	mgr, _ := newTestManager(1, 2)
	a := mgr.Literal(lit.NewLit(1, true))
	b := mgr.Literal(lit.NewLit(2, true))

	or := Disjoin(mgr, a, b)
	if Conjoin(mgr, a, or) != a {
		t.Fatalf("x ∧ (x ∨ y) must equal x")
	}
}
