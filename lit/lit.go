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

// Package lit provides the signed-literal and unsigned-variable primitives
// shared by the logical DAG and SDD layers.
package lit

import (
	"fmt"
)

// Var is an unsigned variable identifier.  Variable 0 is reserved and never
// assigned to a literal.
type Var uint32

// Lit is a signed literal over a Var: the sign carries the polarity and the
// absolute value identifies the variable.  Lit(0) is reserved and never
// constructed by NewLit.
type Lit int32

// NewLit builds the literal for variable v with the given polarity.
// Positive==true yields v, positive==false yields ¬v.
func NewLit(v Var, positive bool) Lit {
	if v == 0 {
		panic("lit: variable 0 is reserved")
	}
	if positive {
		return Lit(v)
	}
	return -Lit(v)
}

// Var returns the variable underlying this literal.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// IsPositive is true when this literal asserts its variable (rather than its
// negation).
func (l Lit) IsPositive() bool {
	return l > 0
}

// Negate returns the complementary literal, i.e. ¬l.
func (l Lit) Negate() Lit {
	return -l
}

// Dimacs2Lit converts a DIMACS-style signed integer into a Lit.  The integer
// must be non-zero.
func Dimacs2Lit(d int) Lit {
	if d == 0 {
		panic("lit: dimacs literal 0 is reserved")
	}
	if d > 0 {
		return NewLit(Var(d), true)
	}
	return NewLit(Var(-d), false)
}

// Dimacs returns the DIMACS-style signed integer encoding of this literal.
func (l Lit) Dimacs() int {
	if l.IsPositive() {
		return int(l.Var())
	}
	return -int(l.Var())
}

// String renders the literal the way a DIMACS clause would: "3" or "-3".
func (l Lit) String() string {
	return fmt.Sprintf("%d", l.Dimacs())
}

// String renders the variable as its bare unsigned identifier.
func (v Var) String() string {
	return fmt.Sprintf("%d", uint32(v))
}

// VarSet is a minimal unordered set of variables, used by scope queries.
type VarSet map[Var]struct{}

// NewVarSet builds a VarSet from the given variables.
func NewVarSet(vs ...Var) VarSet {
	s := make(VarSet, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is a member of this set.
func (s VarSet) Contains(v Var) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v into this set, returning the (mutated) set for chaining.
func (s VarSet) Add(v Var) VarSet {
	s[v] = struct{}{}
	return s
}

// Union returns a fresh set containing every variable in s or o.
func (s VarSet) Union(o VarSet) VarSet {
	r := make(VarSet, len(s)+len(o))
	for v := range s {
		r[v] = struct{}{}
	}
	for v := range o {
		r[v] = struct{}{}
	}
	return r
}

// Equals reports whether s and o contain exactly the same variables.
func (s VarSet) Equals(o VarSet) bool {
	if len(s) != len(o) {
		return false
	}
	for v := range s {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// Disjoint reports whether s and o share no variable.
func (s VarSet) Disjoint(o VarSet) bool {
	for v := range s {
		if o.Contains(v) {
			return false
		}
	}
	return true
}

// Subset reports whether every variable of s is also in o.
func (s VarSet) Subset(o VarSet) bool {
	for v := range s {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// Sorted returns the set's members as an ascending slice.
func (s VarSet) Sorted() []Var {
	out := make([]Var, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	// simple insertion sort; variable sets are small in practice.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
