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

	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/lit"
)

// VarProb gives the prior probability that variable v is true, under an
// independent-variable model. A nil VarProb defaults every variable to ½.
type VarProb func(v lit.Var) *big.Rat

func (p VarProb) of(v lit.Var) *big.Rat {
	if p == nil {
		return big.NewRat(1, 2)
	}
	return p(v)
}

// SatProb computes the exact satisfying-assignment probability of root
// under the independent-variable prior varprob (§4.2). Arithmetic is exact
// rational, so results compose without rounding error across deep circuits.
func SatProb(root *dag.Node, varprob VarProb) *big.Rat {
	return dag.FoldupAggregate(root, dag.AggregateVisitors[*big.Rat]{
		Const: func(n *dag.Node) *big.Rat {
			if n.Value() {
				return big.NewRat(1, 1)
			}
			return big.NewRat(0, 1)
		},
		Lit: func(n *dag.Node) *big.Rat {
			l := n.Literal()
			p := new(big.Rat).Set(varprob.of(l.Var()))
			if l.IsPositive() {
				return p
			}
			return new(big.Rat).Sub(big.NewRat(1, 1), p)
		},
		And: func(n *dag.Node, children []*big.Rat) *big.Rat {
			prod := big.NewRat(1, 1)
			for _, c := range children {
				prod = new(big.Rat).Mul(prod, c)
			}
			return prod
		},
		Or: func(n *dag.Node, children []*big.Rat) *big.Rat {
			sum := big.NewRat(0, 1)
			for _, c := range children {
				sum = new(big.Rat).Add(sum, c)
			}
			return sum
		},
	})
}

// ModelCount returns sat_prob(root) · 2^n, where n defaults to
// |variable_scope(root)| and may be given larger to count over a wider
// variable universe (§4.2).
func ModelCount(root *dag.Node, n ...uint) *big.Rat {
	var scopeSize uint
	if len(n) > 0 {
		scopeSize = n[0]
	} else {
		scopeSize = uint(len(VariableScope(root)))
	}
	prob := SatProb(root, nil)
	pow := new(big.Int).Lsh(big.NewInt(1), scopeSize)
	return new(big.Rat).Mul(prob, new(big.Rat).SetInt(pow))
}
