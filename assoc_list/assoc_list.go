// Package assoc_list implements an immutable association list: a singly
// linked list of (key, value) pairs where every update returns a new head
// and never modifies an existing node, so old heads stay valid snapshots.
// The chaining hash table uses one list per bucket.
package assoc_list

// A Node is one pair in the list. The nil pointer is the empty list.
type Node[K, V any] struct {
	key  K
	val  V
	next *Node[K, V]
}

// New returns the empty list.
func New[K, V any]() *Node[K, V] {
	var l *Node[K, V]
	return l
}

// Insert prepends a pair and returns the new head.
func (l *Node[K, V]) Insert(key K, val V) *Node[K, V] {
	return &Node[K, V]{key: key, val: val, next: l}
}

// Lookup scans head-first and returns the value of the first pair whose key
// matches under eq.
func (l *Node[K, V]) Lookup(key K, eq func(K, K) bool) (V, bool) {
	var n = l
	for n != nil {
		if eq(n.key, key) {
			return n.val, true
		}
		n = n.next
	}
	var zero V
	return zero, false
}

// Replace rebuilds the list with the value of the first pair matching key
// swapped for val, preserving relative order. The unmatched tail is shared,
// not copied. A list with no match is returned unchanged.
func (l *Node[K, V]) Replace(key K, val V, eq func(K, K) bool) *Node[K, V] {
	if l == nil {
		return l
	}
	if eq(l.key, key) {
		return &Node[K, V]{key: l.key, val: val, next: l.next}
	}
	return &Node[K, V]{key: l.key, val: l.val, next: l.next.Replace(key, val, eq)}
}

// Filter rebuilds the list keeping only the pairs keep accepts, in order.
func (l *Node[K, V]) Filter(keep func(K, V) bool) *Node[K, V] {
	if l == nil {
		return l
	}
	if keep(l.key, l.val) {
		return &Node[K, V]{key: l.key, val: l.val, next: l.next.Filter(keep)}
	}
	return l.next.Filter(keep)
}

// Keys appends every key to acc in list order and returns it.
func (l *Node[K, V]) Keys(acc []K) []K {
	var n = l
	for n != nil {
		acc = append(acc, n.key)
		n = n.next
	}
	return acc
}

// Len returns the number of pairs.
func (l *Node[K, V]) Len() uint64 {
	var count = uint64(0)
	var n = l
	for n != nil {
		count++
		n = n.next
	}
	return count
}
