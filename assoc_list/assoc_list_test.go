package assoc_list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func eqInt(a, b int) bool { return a == b }

func TestInsertLookup(t *testing.T) {
	assert := assert.New(t)

	l := New[int, string]()
	_, ok := l.Lookup(1, eqInt)
	assert.False(ok)

	l = l.Insert(1, "a")
	v, ok := l.Lookup(1, eqInt)
	assert.True(ok)
	assert.Equal("a", v)

	l = l.Insert(2, "b")
	v, _ = l.Lookup(1, eqInt)
	assert.Equal("a", v)
	v, _ = l.Lookup(2, eqInt)
	assert.Equal("b", v)
}

func TestLookupFindsHeadFirst(t *testing.T) {
	assert := assert.New(t)

	l := New[int, string]()
	l = l.Insert(1, "old")
	l = l.Insert(1, "new")
	v, ok := l.Lookup(1, eqInt)
	assert.True(ok)
	assert.Equal("new", v, "most recently prepended pair wins")
}

func TestReplacePreservesOrder(t *testing.T) {
	assert := assert.New(t)

	l := New[int, string]()
	l = l.Insert(1, "a")
	l = l.Insert(2, "b")
	l = l.Insert(3, "c")

	l2 := l.Replace(2, "B", eqInt)
	assert.Equal([]int{3, 2, 1}, l2.Keys([]int{}))
	v, _ := l2.Lookup(2, eqInt)
	assert.Equal("B", v)

	// original head is an unchanged snapshot
	v, _ = l.Lookup(2, eqInt)
	assert.Equal("b", v)
}

func TestReplaceMissingKey(t *testing.T) {
	assert := assert.New(t)

	l := New[int, string]().Insert(1, "a")
	l2 := l.Replace(9, "x", eqInt)
	assert.Equal([]int{1}, l2.Keys([]int{}))
	_, ok := l2.Lookup(9, eqInt)
	assert.False(ok)
}

func TestFilter(t *testing.T) {
	assert := assert.New(t)

	l := New[int, string]()
	l = l.Insert(1, "a")
	l = l.Insert(2, "b")
	l = l.Insert(3, "c")

	l2 := l.Filter(func(k int, _ string) bool { return k != 2 })
	assert.Equal([]int{3, 1}, l2.Keys([]int{}))
	assert.Equal(uint64(2), l2.Len())

	// filtering everything leaves the empty list
	l3 := l.Filter(func(int, string) bool { return false })
	assert.Equal(uint64(0), l3.Len())
	assert.Equal([]int{}, l3.Keys([]int{}))
}

func TestKeysAppendsToAccumulator(t *testing.T) {
	assert := assert.New(t)

	l := New[int, string]().Insert(1, "a").Insert(2, "b")
	keys := l.Keys([]int{99})
	assert.Equal([]int{99, 2, 1}, keys)
}
