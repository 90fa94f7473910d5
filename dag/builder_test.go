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

package dag

import (
	"testing"

	"github.com/vtreekit/boolcirc/lit"
)

func Test_Builder_LiteralsAreInterned(t *testing.T) {
	b := NewBuilder()
	l := lit.NewLit(1, true)

	a := b.Literal(l)
	c := b.Literal(l)

	if a != c {
		t.Fatalf("expected the same literal node to be returned on repeated construction")
	}
}

func Test_Builder_ConstantsAreSingletons(t *testing.T) {
	b := NewBuilder()
	if b.Const(true) != b.True() {
		t.Fatalf("Const(true) must equal True()")
	}
	if b.Const(false) != b.False() {
		t.Fatalf("Const(false) must equal False()")
	}
	if b.True() == b.False() {
		t.Fatalf("True and False must be distinct nodes")
	}
}

func Test_Builder_AndOrderMatters(t *testing.T) {
	b := NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))

	xy := b.And(x, y)
	yx := b.And(y, x)

	if xy == yx {
		t.Fatalf("And(x,y) and And(y,x) are structurally distinct and must not be interned together")
	}
}

func Test_Builder_AndDedups(t *testing.T) {
	b := NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))

	a1 := b.And(x, y)
	a2 := b.And(x, y)

	if a1 != a2 {
		t.Fatalf("And(x,y) built twice must yield the same node")
	}
}

func Test_Builder_UnaryAndOrIsIdentity(t *testing.T) {
	b := NewBuilder()
	x := b.Literal(lit.NewLit(1, true))

	if b.And(x) != x {
		t.Fatalf("unary And must return the child unchanged")
	}
	if b.Or(x) != x {
		t.Fatalf("unary Or must return the child unchanged")
	}
}

func Test_Builder_EmptyAndOrIsIdentityElement(t *testing.T) {
	b := NewBuilder()
	if b.And() != b.True() {
		t.Fatalf("empty And must be True")
	}
	if b.Or() != b.False() {
		t.Fatalf("empty Or must be False")
	}
}
