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

func Test_Linearize_ChildrenBeforeParents(t *testing.T) {
	b := NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))
	root := b.And(x, b.Or(x, y))

	c := Linearize(root)
	if err := CheckLinearization(c); err != nil {
		t.Fatalf("unexpected linearization error: %v", err)
	}
	if c.Root() != root {
		t.Fatalf("root of linearization must be the last element")
	}
}

func Test_Linearize_DedupsSharedSubDAG(t *testing.T) {
	b := NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	shared := b.And(x, x)
	root := b.Or(shared, shared)

	c := Linearize(root)
	count := 0
	for _, n := range c.Nodes() {
		if n == shared {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("shared sub-DAG must appear exactly once in the linearization, got %d", count)
	}
}

func Test_HasUniqueLiteralAndConstantNodes(t *testing.T) {
	b := NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	root := b.And(x, b.True())
	c := Linearize(root)

	if !HasUniqueLiteralNodes(c) {
		t.Fatalf("expected unique literal nodes")
	}
	if !HasUniqueConstantNodes(c) {
		t.Fatalf("expected unique constant nodes")
	}
	if err := Validate(c); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
