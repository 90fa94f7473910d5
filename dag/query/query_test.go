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
	"math/big"
	"testing"

	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/lit"
)

func Test_VariableScope(t *testing.T) {
	b := dag.NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, false))
	root := b.And(x, b.Or(y, b.True()))

	scope := VariableScope(root)
	if len(scope) != 2 || !scope.Contains(1) || !scope.Contains(2) {
		t.Fatalf("expected scope {1,2}, got %v", scope)
	}
}

func Test_IsDecomposable(t *testing.T) {
	b := dag.NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))

	good := b.And(x, y)
	if !IsDecomposable(good) {
		t.Fatalf("x ∧ y over disjoint scopes must be decomposable")
	}

	bad := b.And(x, b.Or(x, y))
	if IsDecomposable(bad) {
		t.Fatalf("x ∧ (x ∨ y) shares variable 1 between And-children and must not be decomposable")
	}
}

func Test_IsSmooth(t *testing.T) {
	b := dag.NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))

	notSmooth := b.Or(x, y)
	if IsSmooth(notSmooth) {
		t.Fatalf("x ∨ y has children with different scopes and must not be smooth")
	}

	notX := b.Literal(lit.NewLit(1, false))
	smooth := b.Or(b.And(x, y), b.And(notX, y))
	if !IsSmooth(smooth) {
		t.Fatalf("(x∧y) ∨ (¬x∧y) has equal-scope children and must be smooth")
	}
}

func Test_SatProb_DefaultHalf(t *testing.T) {
	b := dag.NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))
	root := b.And(x, y)

	p := SatProb(root, nil)
	want := big.NewRat(1, 4)
	if p.Cmp(want) != 0 {
		t.Fatalf("P(x∧y) under uniform prior = 1/4, got %v", p)
	}
}

func Test_ModelCount(t *testing.T) {
	b := dag.NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))
	notX := b.Literal(lit.NewLit(1, false))
	// (x∧y) ∨ (¬x∧y): decomposable and smooth (Test_IsSmooth), so the sum/
	// product recursion agrees with brute-force enumeration (spec invariant
	// 10). Satisfying assignments: x=T,y=T and x=F,y=T — 2 out of 4.
	root := b.Or(b.And(x, y), b.And(notX, y))

	count := ModelCount(root)
	want := big.NewRat(2, 1)
	if count.Cmp(want) != 0 {
		t.Fatalf("model count of (x∧y)∨(¬x∧y) over 2 vars = 2, got %v", count)
	}
}

func Test_ModelCount_AgreesWithBruteForce(t *testing.T) {
	b := dag.NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))
	notX := b.Literal(lit.NewLit(1, false))
	root := b.Or(b.And(x, y), b.And(notX, y))

	if !IsDecomposable(root) || !IsSmooth(root) {
		t.Fatalf("fixture must be decomposable and smooth for model_count invariant 10 to apply")
	}

	rows := [][]bool{
		{false, false},
		{false, true},
		{true, false},
		{true, true},
	}
	ds := NewDataset(rows)
	results := Evaluate(root, ds)

	var brute uint
	for i := uint(0); i < ds.NumExamples; i++ {
		if results.Test(i) {
			brute++
		}
	}

	count := ModelCount(root)
	want := big.NewRat(int64(brute), 1)
	if count.Cmp(want) != 0 {
		t.Fatalf("model_count must agree with brute-force enumeration over all 2^n assignments on a decomposable+smooth circuit: got %v, brute-force found %d", count, brute)
	}
}

func Test_ProbEquivSignature_DetectsEquivalence(t *testing.T) {
	b := dag.NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))

	a := b.And(x, y)
	c := b.And(y, x) // structurally distinct (order matters) but semantically equal

	_, sigA := ProbEquivSignature(a, 12, 42)
	_, sigC := ProbEquivSignature(c, 12, 42)

	// Both calls share the seed and the scope {1,2}, so they draw the same
	// per-variable vectors; the component-wise products then agree.
	if !SignaturesEqual(sigA[a], sigC[c]) {
		t.Fatalf("x∧y and y∧x must get equal signatures under the same seed")
	}

	// The same root also reproduces the same signature for a fixed seed.
	_, sigA2 := ProbEquivSignature(a, 12, 42)
	if !SignaturesEqual(sigA[a], sigA2[a]) {
		t.Fatalf("ProbEquivSignature must be deterministic for a fixed seed")
	}
}

func Test_Evaluate(t *testing.T) {
	b := dag.NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	notY := b.Literal(lit.NewLit(2, false))
	root := b.And(x, notY)

	ds := NewDataset([][]bool{
		{true, false},  // x ∧ ¬y = true
		{true, true},   // x ∧ ¬y = false
		{false, false}, // x ∧ ¬y = false
	})

	result := Evaluate(root, ds)
	if !result.Test(0) {
		t.Fatalf("example 0 should satisfy x ∧ ¬y")
	}
	if result.Test(1) || result.Test(2) {
		t.Fatalf("examples 1 and 2 should not satisfy x ∧ ¬y")
	}
}
