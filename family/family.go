// Package family is a small genealogy index built entirely on the probing
// hash table's public surface: one record per person keyed by an integer
// id, with parent and child links stored as ids and resolved by lookup.
package family

import (
	"github.com/goose-lang/primitive"

	"hashtables/hashfn"
	"hashtables/probing_hashmap"
)

// A Person is one record in the index. Parents and Children hold the ids of
// linked records; an unlinked person simply has empty slices.
type Person struct {
	ID       uint64
	Name     string
	Parents  []uint64
	Children []uint64
}

type Index struct {
	people *probing_hashmap.Map[uint64, Person]
}

// NewIndex returns an index with room for at most capacity people.
func NewIndex(capacity uint64) *Index {
	return &Index{
		people: probing_hashmap.New[uint64, Person](capacity, hashfn.Identity[uint64]()),
	}
}

// Add records a new person under id. It reports whether the person was
// stored; it fails when the id is already taken or the index is full.
func (ix *Index) Add(id uint64, name string) bool {
	if _, ok := ix.people.Load(id); ok {
		return false
	}
	return ix.people.Store(id, Person{ID: id, Name: name})
}

// Lookup returns the record stored under id.
func (ix *Index) Lookup(id uint64) (Person, bool) {
	return ix.people.Load(id)
}

// SetParent links child to parent in both directions. Both records must
// already be in the index; SetParent reports whether the link was made.
func (ix *Index) SetParent(childID uint64, parentID uint64) bool {
	child, ok := ix.people.Load(childID)
	if !ok {
		return false
	}
	parent, ok := ix.people.Load(parentID)
	if !ok {
		return false
	}
	child.Parents = append(child.Parents, parentID)
	parent.Children = append(parent.Children, childID)
	// storing back under an existing key cannot fail
	existed := ix.people.Store(childID, child)
	primitive.Assert(existed)
	existed = ix.people.Store(parentID, parent)
	primitive.Assert(existed)
	return true
}

// Parents returns the records of id's linked parents, skipping ids that are
// no longer in the index.
func (ix *Index) Parents(id uint64) []Person {
	p, ok := ix.people.Load(id)
	if !ok {
		return []Person{}
	}
	return ix.resolve(p.Parents)
}

// Children returns the records of id's linked children.
func (ix *Index) Children(id uint64) []Person {
	p, ok := ix.people.Load(id)
	if !ok {
		return []Person{}
	}
	return ix.resolve(p.Children)
}

func (ix *Index) resolve(ids []uint64) []Person {
	var people = []Person{}
	for _, id := range ids {
		p, ok := ix.people.Load(id)
		if ok {
			people = append(people, p)
		}
	}
	return people
}

// IDs returns the ids of everyone in the index.
func (ix *Index) IDs() []uint64 {
	return ix.people.Keys()
}

// Len returns the number of people in the index.
func (ix *Index) Len() uint64 {
	return ix.people.Len()
}
