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
	"github.com/vtreekit/boolcirc/internal/hashset"
	"github.com/vtreekit/boolcirc/lit"
	"github.com/vtreekit/boolcirc/vtree"
)

// Manager owns a vtree and every canonical SDD node interned against it:
// the unique table and apply cache of every inner vtree node, the True/False
// singletons, and the per-variable literal cache. Canonical decision nodes
// live as long as their owning Manager (§3, Lifecycle); a Manager is not
// safe for concurrent use (§5).
type Manager struct {
	nextID    uint64
	root      *vtree.Node
	trueNode  *Node
	falseNode *Node
	leafOf    map[lit.Var]*vtree.Node
	literals  map[lit.Lit]*Node
	tables    map[*vtree.Node]*hashset.Table[partitionKey, *Node]
	applyCach map[*vtree.Node]map[cacheKey]*Node
	negCache  map[uint64]*Node
}

type cacheKey struct {
	a, b uint64
}

// NewManager builds a fresh Manager rooted at vt.
func NewManager(vt *vtree.Node) *Manager {
	mgr := &Manager{
		root:      vt,
		leafOf:    make(map[lit.Var]*vtree.Node),
		literals:  make(map[lit.Lit]*Node),
		tables:    make(map[*vtree.Node]*hashset.Table[partitionKey, *Node]),
		applyCach: make(map[*vtree.Node]map[cacheKey]*Node),
		negCache:  make(map[uint64]*Node),
	}
	for _, n := range vtree.Linearize(vt) {
		if n.IsLeaf() {
			mgr.leafOf[n.Variable()] = n
		}
	}
	mgr.trueNode = &Node{id: mgr.allocID(), kind: KindTrue}
	mgr.falseNode = &Node{id: mgr.allocID(), kind: KindFalse}
	return mgr
}

func (mgr *Manager) allocID() uint64 {
	id := mgr.nextID
	mgr.nextID++
	return id
}

// Vtree returns the vtree this manager is rooted at.
func (mgr *Manager) Vtree() *vtree.Node { return mgr.root }

// True returns the unique ⊤ node.
func (mgr *Manager) True() *Node { return mgr.trueNode }

// False returns the unique ⊥ node.
func (mgr *Manager) False() *Node { return mgr.falseNode }

// Literal returns the canonical node for literal l, fabricating it on first
// use against the vtree leaf for l's variable.
func (mgr *Manager) Literal(l lit.Lit) *Node {
	if n, ok := mgr.literals[l]; ok {
		return n
	}
	leaf, ok := mgr.leafOf[l.Var()]
	if !ok {
		panic("sdd: literal's variable is not present in this manager's vtree")
	}
	n := &Node{id: mgr.allocID(), kind: KindLiteral, literal: l, vtreeNode: leaf}
	mgr.literals[l] = n
	return n
}

func (mgr *Manager) table(vt *vtree.Node) *hashset.Table[partitionKey, *Node] {
	t, ok := mgr.tables[vt]
	if !ok {
		t = hashset.New[partitionKey, *Node]()
		mgr.tables[vt] = t
	}
	return t
}

func (mgr *Manager) cacheGet(vt *vtree.Node, a, b *Node) (*Node, bool) {
	tbl, ok := mgr.applyCach[vt]
	if !ok {
		return nil, false
	}
	v, ok := tbl[cacheKey{a.id, b.id}]
	return v, ok
}

func (mgr *Manager) cachePut(vt *vtree.Node, a, b *Node, result *Node) {
	tbl, ok := mgr.applyCach[vt]
	if !ok {
		tbl = make(map[cacheKey]*Node)
		mgr.applyCach[vt] = tbl
	}
	tbl[cacheKey{a.id, b.id}] = result
}
