// Package probing_hashmap implements a fixed-capacity open-addressing hash
// table with linear probing. A delete leaves a tombstone rather than an
// empty slot so probe sequences still reach pairs stored beyond it; an
// insert reuses a tombstone only after confirming the key is not occupied
// further along the same sequence.
//
// A Map is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own exclusion.
package probing_hashmap

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"

	"hashtables/hashfn"
)

// Per-slot state. A slot starts empty; a delete turns an occupied slot into
// a tombstone rather than back to empty, and an insert may occupy either.
// Only an empty slot proves a key absent from a probe sequence.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

type Map[K, V any] struct {
	states []slotState
	keys   []K
	values []V
	hasher hashfn.Hasher[K]
	count  uint64
}

// New returns a table with capacity slots, all empty. The capacity is
// fixed: once no free slot remains along a key's probe sequence, inserts of
// new keys fail rather than resize.
func New[K, V any](capacity uint64, hasher hashfn.Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		states: make([]slotState, capacity),
		keys:   make([]K, capacity),
		values: make([]V, capacity),
		hasher: hasher,
	}
}

func (m *Map[K, V]) capacity() uint64 {
	return uint64(len(m.states))
}

// startIdx maps a key's hash into [0, capacity), normalizing a negative
// hash the same way the chaining table normalizes bucket indexes.
func (m *Map[K, V]) startIdx(key K) uint64 {
	return uint64(hashfn.Mod(m.hasher.Hash(key), int64(m.capacity())))
}

// probe scans up to capacity slots from start, wrapping around, and returns
// the first index holding key, the first empty index, or (unless
// skipTombstones is set) the first tombstone. It reports false when a full
// sweep finds none, meaning the table is full along this probe sequence.
func (m *Map[K, V]) probe(key K, start uint64, skipTombstones bool) (uint64, bool) {
	n := m.capacity()
	for i := uint64(0); i < n; i++ {
		idx := (start + i) % n
		state := m.states[idx]
		if state == slotOccupied {
			if m.hasher.Equal(m.keys[idx], key) {
				return idx, true
			}
		} else if state == slotEmpty {
			return idx, true
		} else if !skipTombstones {
			return idx, true
		}
	}
	return 0, false
}

// Load returns the value stored for key. Tombstones are skipped, so a pair
// stored past a deleted slot is still found.
func (m *Map[K, V]) Load(key K) (V, bool) {
	var zero V
	if m.capacity() == 0 {
		return zero, false
	}
	idx, ok := m.probe(key, m.startIdx(key), true)
	if !ok || m.states[idx] != slotOccupied {
		return zero, false
	}
	return m.values[idx], true
}

// Store maps key to val and reports whether it succeeded. It fails only for
// a new key with no slot left: either count has reached capacity or every
// slot along the key's probe sequence is occupied by other keys. A failed
// Store leaves the table unchanged; failure is an ordinary outcome, not a
// fault.
func (m *Map[K, V]) Store(key K, val V) bool {
	if m.capacity() == 0 {
		return false
	}
	// Stop at the first tombstone to keep the write near the start of the
	// probe sequence.
	idx, ok := m.probe(key, m.startIdx(key), false)
	if !ok {
		return false
	}
	if m.states[idx] == slotTombstone {
		// The key could still be occupied past this tombstone; re-probe
		// through tombstones before treating it as new, or this Store
		// would create a duplicate.
		confirmIdx, confirmOk := m.probe(key, idx, true)
		if confirmOk && m.states[confirmIdx] == slotOccupied {
			idx = confirmIdx
		}
	}
	if m.states[idx] == slotOccupied {
		// probe only stops on an occupied slot when the key matches
		m.values[idx] = val
		return true
	}
	if m.count == m.capacity() {
		return false
	}
	m.keys[idx] = key
	m.values[idx] = val
	m.states[idx] = slotOccupied
	m.count = std.SumAssumeNoOverflow(m.count, 1)
	return true
}

// Delete removes key's pair and returns the removed value. The slot becomes
// a tombstone, not empty, so later probes keep scanning past it.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	var zero V
	if m.capacity() == 0 {
		return zero, false
	}
	idx, ok := m.probe(key, m.startIdx(key), true)
	if !ok || m.states[idx] != slotOccupied {
		return zero, false
	}
	primitive.Assert(m.count > 0)
	val := m.values[idx]
	var zeroK K
	m.keys[idx] = zeroK
	m.values[idx] = zero
	m.states[idx] = slotTombstone
	m.count = m.count - 1
	return val, true
}

// Keys returns the keys of all occupied slots in array-index order.
func (m *Map[K, V]) Keys() []K {
	var keys = []K{}
	for i, state := range m.states {
		if state == slotOccupied {
			keys = append(keys, m.keys[i])
		}
	}
	return keys
}

// Len returns the number of occupied slots.
func (m *Map[K, V]) Len() uint64 {
	return m.count
}
