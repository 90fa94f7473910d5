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

func countingVisitors(visits map[uint64]int) Visitors[int] {
	mark := func(n *Node) {
		visits[n.id]++
	}
	return Visitors[int]{
		Const: func(n *Node) int { mark(n); return 0 },
		Lit:   func(n *Node) int { mark(n); return 1 },
		And: func(n *Node, call func(*Node) int) int {
			mark(n)
			sum := 0
			for _, c := range n.children {
				sum += call(c)
			}
			return sum
		},
		Or: func(n *Node, call func(*Node) int) int {
			mark(n)
			sum := 0
			for _, c := range n.children {
				sum += call(c)
			}
			return sum
		},
	}
}

func Test_Foldup_VisitsEachSharedNodeOnce(t *testing.T) {
	b := NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))
	shared := b.And(x, y)
	root := b.Or(shared, shared, shared)

	visits := make(map[uint64]int)
	Foldup(root, countingVisitors(visits))

	for id, count := range visits {
		if count != 1 {
			t.Fatalf("node %d visited %d times, want exactly 1", id, count)
		}
	}
	if visits[shared.id] != 1 {
		t.Fatalf("shared child must be visited exactly once despite three references")
	}
}

func Test_FoldupAggregate_MatchesFoldup(t *testing.T) {
	b := NewBuilder()
	x := b.Literal(lit.NewLit(1, true))
	y := b.Literal(lit.NewLit(2, true))
	root := b.And(x, b.Or(x, y))

	sum1 := Foldup(root, Visitors[int]{
		Const: func(n *Node) int { return 0 },
		Lit:   func(n *Node) int { return 1 },
		And: func(n *Node, call func(*Node) int) int {
			t := 0
			for _, c := range n.children {
				t += call(c)
			}
			return t
		},
		Or: func(n *Node, call func(*Node) int) int {
			t := 0
			for _, c := range n.children {
				t += call(c)
			}
			return t
		},
	})

	sum2 := FoldupAggregate(root, AggregateVisitors[int]{
		Const: func(n *Node) int { return 0 },
		Lit:   func(n *Node) int { return 1 },
		And: func(n *Node, children []int) int {
			t := 0
			for _, c := range children {
				t += c
			}
			return t
		},
		Or: func(n *Node, children []int) int {
			t := 0
			for _, c := range children {
				t += c
			}
			return t
		},
	})

	if sum1 != sum2 {
		t.Fatalf("foldup and foldup_aggregate disagree: %d vs %d", sum1, sum2)
	}
}

func Test_Foldup_DeepChainDoesNotOverflowNativeStack(t *testing.T) {
	b := NewBuilder()
	var n *Node = b.Literal(lit.NewLit(1, true))
	for i := 0; i < 50000; i++ {
		n = b.And(n, b.Literal(lit.NewLit(lit.Var(2+i%3), true)))
	}

	result := Foldup(n, Visitors[int]{
		Const: func(n *Node) int { return 0 },
		Lit:   func(n *Node) int { return 1 },
		And: func(n *Node, call func(*Node) int) int {
			t := 0
			for _, c := range n.children {
				t += call(c)
			}
			return t
		},
		Or: func(n *Node, call func(*Node) int) int {
			t := 0
			for _, c := range n.children {
				t += call(c)
			}
			return t
		},
	})
	if result <= 0 {
		t.Fatalf("expected a positive literal count, got %d", result)
	}
}
