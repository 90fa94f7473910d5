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

package vtree

import (
	"testing"

	"github.com/vtreekit/boolcirc/lit"
)

func Test_Balanced_VariablesUnionCorrectly(t *testing.T) {
	b := NewBuilder()
	root := b.Balanced([]lit.Var{1, 2, 3, 4})

	if root.VarCount() != 4 {
		t.Fatalf("expected 4 variables in root, got %d", root.VarCount())
	}
	for _, v := range []lit.Var{1, 2, 3, 4} {
		if !root.Variables().Contains(v) {
			t.Fatalf("expected root to contain variable %d", v)
		}
	}
}

func Test_VarSubset(t *testing.T) {
	b := NewBuilder()
	root := b.Balanced([]lit.Var{1, 2, 3, 4})
	left := root.Left()

	if !VarSubset(left, root) {
		t.Fatalf("left subtree's variables must be a subset of the root's")
	}
	if VarSubset(root, left) {
		t.Fatalf("root's variables must not be a subset of a proper subtree's")
	}
}

func Test_VarSubsetLeftRight(t *testing.T) {
	b := NewBuilder()
	root := b.Right([]lit.Var{1, 2, 3})
	leaf1 := root.Left()

	if !VarSubsetLeft(leaf1, root) {
		t.Fatalf("leaf for variable 1 must respect root.Left()")
	}
	if VarSubsetRight(leaf1, root) {
		t.Fatalf("leaf for variable 1 must not respect root.Right()")
	}
}

func Test_ParentLCA(t *testing.T) {
	b := NewBuilder()
	root := b.Balanced([]lit.Var{1, 2, 3, 4})
	left := root.Left()
	right := root.Right()

	if ParentLCA(left, right) != root {
		t.Fatalf("LCA of the two children of root must be root")
	}
	if ParentLCA(left, left) != left {
		t.Fatalf("LCA of a node with itself must be itself")
	}
	if ParentLCA(left.Left(), left.Right()) != left {
		t.Fatalf("LCA within a subtree must stay within that subtree")
	}
}

func Test_Linearize_ChildrenBeforeParents(t *testing.T) {
	b := NewBuilder()
	root := b.Balanced([]lit.Var{1, 2, 3, 4, 5})
	order := Linearize(root)

	seen := make(map[*Node]bool)
	for _, n := range order {
		if !n.IsLeaf() {
			if !seen[n.left] || !seen[n.right] {
				t.Fatalf("node at index %d has a child not yet linearized", n.index)
			}
		}
		seen[n] = true
	}
	if order[len(order)-1] != root {
		t.Fatalf("root must be the last element of the linearization")
	}
}
