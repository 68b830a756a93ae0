// Package ordmap is a uniqueness-enforcing map built directly on
// bptree.Tree: every public operation here is a thin adapter over Get,
// Insert (with an InsertReplace/InsertReject mode), Remove, and the core
// iterator. It adds nothing a generic tree doesn't already provide except
// the guarantee that every key appears at most once.
package ordmap

import (
	"fmt"

	"github.com/mjm918/bptree/bptree"
)

// Map is an ordered, unique-key associative collection.
type Map[K any, V any] struct {
	tree *bptree.Tree[K, V]
}

// New constructs an empty Map ordered by cmp.
func New[K any, V any](cmp bptree.CompareFunc[K], opts ...bptree.Option) (*Map[K, V], error) {
	tr, err := bptree.New[K, V](cmp, opts...)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tr}, nil
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.tree.Count() }

// Get returns the value stored for k and reports whether k is present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	return m.tree.Get(k)
}

// Contains reports whether k is present in the map.
func (m *Map[K, V]) Contains(k K) bool {
	return m.tree.Contains(k)
}

// Insert stores v for k, overwriting any existing value. It always
// succeeds.
func (m *Map[K, V]) Insert(k K, v V) {
	m.tree.Insert(k, v, bptree.InsertReplace)
}

// TryInsert stores v for k only if k is not already present, reporting
// whether it did so.
func (m *Map[K, V]) TryInsert(k K, v V) bool {
	return m.tree.Insert(k, v, bptree.InsertReject)
}

// MustInsert stores v for k like TryInsert, returning ErrDuplicateKey
// wrapped with k's identity if the key was already present.
func (m *Map[K, V]) MustInsert(k K, v V) error {
	if !m.TryInsert(k, v) {
		return fmt.Errorf("%w: %v", bptree.ErrDuplicateKey, k)
	}
	return nil
}

// Remove deletes the entry for k, reporting whether one was present.
func (m *Map[K, V]) Remove(k K) bool {
	return m.tree.Remove(k)
}

// Clear removes every entry from the map.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Range calls fn for every entry in ascending key order, stopping early
// if fn returns false.
func (m *Map[K, V]) Range(fn func(k K, v V) bool) {
	it := m.tree.IterBegin()
	defer it.Close()
	for it.MoveNext() {
		k, v, err := it.Current()
		if err != nil {
			return
		}
		if !fn(k, v) {
			return
		}
	}
}

// Keys returns a view over the map's keys in ascending order. The slice
// is a snapshot taken at call time; it does not track later mutations.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns a view over the map's values in ascending key order. The
// slice is a snapshot taken at call time; it does not track later
// mutations.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	m.Range(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// CopyTo bulk-copies every entry of m into dst, overwriting any existing
// entries for the same keys.
func (m *Map[K, V]) CopyTo(dst *Map[K, V]) {
	m.Range(func(k K, v V) bool {
		dst.Insert(k, v)
		return true
	})
}

// Tree exposes the underlying core engine for callers that need direct
// iterator access (e.g. FindBound range queries) beyond what Map offers.
func (m *Map[K, V]) Tree() *bptree.Tree[K, V] {
	return m.tree
}
