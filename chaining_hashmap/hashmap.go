// Package chaining_hashmap implements a fixed-capacity hash table that
// resolves collisions by chaining: each slot holds an association list of
// the pairs whose hash lands there. Buckets grow without bound, so a Store
// never fails; the trade-off is that operations on a bucket cost time
// proportional to its length.
//
// A Map is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own exclusion.
package chaining_hashmap

import (
	"hashtables/assoc_list"
	"hashtables/hashfn"
)

type Map[K, V any] struct {
	buckets []*assoc_list.Node[K, V]
	hasher  hashfn.Hasher[K]
}

// New returns a table with capacity empty buckets. The bucket count is
// fixed for the life of the table; there is no resizing.
func New[K, V any](capacity uint64, hasher hashfn.Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		buckets: make([]*assoc_list.Node[K, V], capacity),
		hasher:  hasher,
	}
}

// bucketIdx maps a key's hash into [0, capacity). The hash may be negative.
func (m *Map[K, V]) bucketIdx(key K) uint64 {
	return uint64(hashfn.Mod(m.hasher.Hash(key), int64(len(m.buckets))))
}

// Load returns the value stored for key.
func (m *Map[K, V]) Load(key K) (V, bool) {
	if len(m.buckets) == 0 {
		var zero V
		return zero, false
	}
	return m.buckets[m.bucketIdx(key)].Lookup(key, m.hasher.Equal)
}

// Store maps key to val and reports whether the key was already present. A
// present key has its value replaced without disturbing bucket order; a new
// key is prepended to its bucket. A zero-capacity table has no bucket to
// store into, so Store on one is a no-op.
func (m *Map[K, V]) Store(key K, val V) bool {
	if len(m.buckets) == 0 {
		return false
	}
	i := m.bucketIdx(key)
	b := m.buckets[i]
	if _, ok := b.Lookup(key, m.hasher.Equal); ok {
		m.buckets[i] = b.Replace(key, val, m.hasher.Equal)
		return true
	}
	m.buckets[i] = b.Insert(key, val)
	return false
}

// Delete removes key's pair by rebuilding its bucket without it. It reports
// whether a pair was removed.
func (m *Map[K, V]) Delete(key K) bool {
	if len(m.buckets) == 0 {
		return false
	}
	i := m.bucketIdx(key)
	b := m.buckets[i]
	if _, ok := b.Lookup(key, m.hasher.Equal); !ok {
		return false
	}
	m.buckets[i] = b.Filter(func(k K, _ V) bool {
		return !m.hasher.Equal(k, key)
	})
	return true
}

// Keys returns every key in the table, bucket by bucket in index order.
// Within a bucket the most recently inserted key comes first. Only the set
// of keys is a stable contract; callers must not rely on the overall order.
func (m *Map[K, V]) Keys() []K {
	var keys = []K{}
	for _, b := range m.buckets {
		keys = b.Keys(keys)
	}
	return keys
}

// Len returns the number of pairs in the table.
func (m *Map[K, V]) Len() uint64 {
	var count = uint64(0)
	for _, b := range m.buckets {
		count += b.Len()
	}
	return count
}
