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
	"github.com/bits-and-blooms/bitset"

	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/lit"
)

// Dataset is a matrix of Boolean features: one column per variable, one bit
// per example. A column absent from Columns is treated as all-false.
type Dataset struct {
	NumExamples uint
	Columns     map[lit.Var]*bitset.BitSet
}

// NewDataset builds a Dataset from a row-major matrix of per-example,
// per-variable truth values, one column per 1-based variable index.
func NewDataset(rows [][]bool) *Dataset {
	n := uint(len(rows))
	ds := &Dataset{NumExamples: n, Columns: make(map[lit.Var]*bitset.BitSet)}
	if n == 0 {
		return ds
	}
	numVars := len(rows[0])
	for col := 0; col < numVars; col++ {
		bs := bitset.New(n)
		for row := uint(0); row < n; row++ {
			if rows[row][col] {
				bs.Set(row)
			}
		}
		ds.Columns[lit.Var(col+1)] = bs
	}
	return ds
}

func (d *Dataset) column(v lit.Var) *bitset.BitSet {
	if bs, ok := d.Columns[v]; ok {
		return bs
	}
	return bitset.New(d.NumExamples)
}

func allTrue(n uint) *bitset.BitSet {
	return bitset.New(n).Complement()
}

// Evaluate returns, for root, a bitvector with one bit per example: bit i is
// set iff the circuit evaluates to true on example i of data. Literals
// index (and, if negative, complement) a dataset column; And is
// bitwise-AND over children; Or is bitwise-OR (§4.2).
func Evaluate(root *dag.Node, data *Dataset) *bitset.BitSet {
	n := data.NumExamples
	return dag.FoldupAggregate(root, dag.AggregateVisitors[*bitset.BitSet]{
		Const: func(node *dag.Node) *bitset.BitSet {
			if node.Value() {
				return allTrue(n)
			}
			return bitset.New(n)
		},
		Lit: func(node *dag.Node) *bitset.BitSet {
			l := node.Literal()
			col := data.column(l.Var())
			if l.IsPositive() {
				return col.Clone()
			}
			return col.Clone().Complement()
		},
		And: func(node *dag.Node, children []*bitset.BitSet) *bitset.BitSet {
			result := allTrue(n)
			for _, c := range children {
				result = result.Intersection(c)
			}
			return result
		},
		Or: func(node *dag.Node, children []*bitset.BitSet) *bitset.BitSet {
			result := bitset.New(n)
			for _, c := range children {
				result = result.Union(c)
			}
			return result
		},
	})
}
