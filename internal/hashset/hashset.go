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

// Package hashset provides a collision-tolerant hash table used for
// value-based interning: the logical DAG's And/Or structural sharing and the
// SDD layer's per-vtree-node unique tables both need "does a node with this
// exact shape already exist" lookups keyed by content, not identity.
//
// Unlike a plain map keyed on a comparable struct, Table does not assume the
// hash function is collision-free: every bucket is scanned with Equals
// before a match is reported, which is what lets keys be arbitrarily large
// (e.g. an XY-partition's full element list) without risking a silent
// false-positive merge of two distinct nodes.
package hashset

// Key is anything that can be hash-consed: it can report its own 64-bit
// fingerprint and compare itself for exact equality against a peer.
type Key[T any] interface {
	Hash() uint64
	Equals(T) bool
}

// Table maps Key values to an owning handle V, tolerating hash collisions.
type Table[K Key[K], V any] struct {
	buckets map[uint64][]entry[K, V]
	size    int
}

type entry[K Key[K], V any] struct {
	key K
	val V
}

// New constructs an empty table.
func New[K Key[K], V any]() *Table[K, V] {
	return &Table[K, V]{buckets: make(map[uint64][]entry[K, V])}
}

// Len returns the number of distinct keys currently interned.
func (t *Table[K, V]) Len() int {
	return t.size
}

// Get looks up the value interned for a key equal to k.
func (t *Table[K, V]) Get(k K) (V, bool) {
	for _, e := range t.buckets[k.Hash()] {
		if e.key.Equals(k) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// GetOrInsert returns the value already interned for k, or calls make to
// build one, inserts it, and returns it.  This is the canonical
// hash-consing operation: construction only happens on a genuine miss.
func (t *Table[K, V]) GetOrInsert(k K, make func() V) V {
	h := k.Hash()
	bucket := t.buckets[h]
	for _, e := range bucket {
		if e.key.Equals(k) {
			return e.val
		}
	}
	v := make()
	t.buckets[h] = append(bucket, entry[K, V]{k, v})
	t.size++
	return v
}
