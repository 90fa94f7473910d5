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
	"math/rand"

	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/lit"
)

// signaturePrime is the prime bounding u when drawing the "1/u" entries of a
// probabilistic-equivalence signature (§4.2 requires a prime ≥ 7919).
const signaturePrime = 7919

// Signature is one node's (or variable's) probabilistic-equivalence vector.
type Signature []*big.Rat

// newEntry draws a fresh "1/u" entry for u uniform in [1, signaturePrime].
func newEntry(rng *rand.Rand) *big.Rat {
	u := int64(rng.Intn(signaturePrime) + 1)
	return big.NewRat(1, u)
}

func onesVector(k int) Signature {
	s := make(Signature, k)
	for i := range s {
		s[i] = big.NewRat(1, 1)
	}
	return s
}

func zerosVector(k int) Signature {
	s := make(Signature, k)
	for i := range s {
		s[i] = big.NewRat(0, 1)
	}
	return s
}

func negateVector(v Signature) Signature {
	out := make(Signature, len(v))
	one := big.NewRat(1, 1)
	for i, x := range v {
		out[i] = new(big.Rat).Sub(one, x)
	}
	return out
}

func productVector(k int, vs []Signature) Signature {
	out := onesVector(k)
	for _, v := range vs {
		for i := range out {
			out[i] = new(big.Rat).Mul(out[i], v[i])
		}
	}
	return out
}

func sumVector(k int, vs []Signature) Signature {
	out := zerosVector(k)
	for _, v := range vs {
		for i := range out {
			out[i] = new(big.Rat).Add(out[i], v[i])
		}
	}
	return out
}

// ProbEquivSignature assigns each variable in root's scope a fresh random
// vector in (0,1]^k (entries 1/u, u uniform in [1, prime]) seeded from seed,
// then propagates it through the DAG: component-wise product through And,
// component-wise sum through Or, negation via entrywise (1 − v) (§4.2). Two
// semantically-equivalent nodes get equal signatures with probability → 1 as
// k grows; a collision remains possible but is exponentially rare.
//
// It returns both the per-variable vectors drawn and the resulting
// per-node signatures, since equivalence testing reuses the same draw for
// every node being compared.
func ProbEquivSignature(root *dag.Node, k int, seed int64) (map[lit.Var]Signature, map[*dag.Node]Signature) {
	rng := rand.New(rand.NewSource(seed))
	scope := VariableScope(root)
	varSig := make(map[lit.Var]Signature, len(scope))
	for _, v := range scope.Sorted() {
		entry := make(Signature, k)
		for i := range entry {
			entry[i] = newEntry(rng)
		}
		varSig[v] = entry
	}

	_, nodeSig := dag.FoldupAll(root, dag.Visitors[Signature]{
		Const: func(n *dag.Node) Signature {
			if n.Value() {
				return onesVector(k)
			}
			return zerosVector(k)
		},
		Lit: func(n *dag.Node) Signature {
			l := n.Literal()
			v := varSig[l.Var()]
			if l.IsPositive() {
				return v
			}
			return negateVector(v)
		},
		And: func(n *dag.Node, call func(*dag.Node) Signature) Signature {
			vs := make([]Signature, len(n.Children()))
			for i, c := range n.Children() {
				vs[i] = call(c)
			}
			return productVector(k, vs)
		},
		Or: func(n *dag.Node, call func(*dag.Node) Signature) Signature {
			vs := make([]Signature, len(n.Children()))
			for i, c := range n.Children() {
				vs[i] = call(c)
			}
			return sumVector(k, vs)
		},
	})
	return varSig, nodeSig
}

// SignaturesEqual reports whether two signatures are entrywise equal.
func SignaturesEqual(a, b Signature) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}
