// Package ordset is an ordered set built on bptree.Tree[K, struct{}]. Its
// set-algebra operations (UnionWith, IntersectWith, ExceptWith,
// SymmetricExceptWith, and the subset/superset/overlap predicates) are
// implemented as sorted dual-iterator merges over two bptree.Iterator
// cursors, advancing whichever side holds the smaller current key at
// each step — the standard merge-join shape for two sorted sequences.
package ordset

import "github.com/mjm918/bptree/bptree"

var present = struct{}{}

// Set is an ordered collection of unique keys.
type Set[K any] struct {
	tree *bptree.Tree[K, struct{}]
	cmp  bptree.CompareFunc[K]
}

// New constructs an empty Set ordered by cmp.
func New[K any](cmp bptree.CompareFunc[K], opts ...bptree.Option) (*Set[K], error) {
	tr, err := bptree.New[K, struct{}](cmp, opts...)
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: tr, cmp: cmp}, nil
}

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int { return s.tree.Count() }

// Contains reports whether k is a member of the set.
func (s *Set[K]) Contains(k K) bool { return s.tree.Contains(k) }

// Add inserts k into the set, reporting whether it was newly added.
func (s *Set[K]) Add(k K) bool {
	return s.tree.Insert(k, present, bptree.InsertReject)
}

// Remove deletes k from the set, reporting whether it was present.
func (s *Set[K]) Remove(k K) bool {
	return s.tree.Remove(k)
}

// Clear removes every element from the set.
func (s *Set[K]) Clear() { s.tree.Clear() }

// Range calls fn for every element in ascending order, stopping early if
// fn returns false.
func (s *Set[K]) Range(fn func(k K) bool) {
	it := s.tree.IterBegin()
	defer it.Close()
	for it.MoveNext() {
		k, _, err := it.Current()
		if err != nil {
			return
		}
		if !fn(k) {
			return
		}
	}
}

// Elements returns a snapshot of the set's members in ascending order.
func (s *Set[K]) Elements() []K {
	out := make([]K, 0, s.Len())
	s.Range(func(k K) bool {
		out = append(out, k)
		return true
	})
	return out
}

// merge walks a and b's sorted iterators in lockstep, calling:
//   - onlyA(k) for a key present only in a
//   - onlyB(k) for a key present only in b
//   - both(k) for a key present in both
//
// Any callback may be nil to skip that case. Each callback returns
// whether the walk should continue.
func merge[K any](a, b *Set[K], onlyA, onlyB, both func(k K) bool) {
	ia := a.tree.IterBegin()
	defer ia.Close()
	ib := b.tree.IterBegin()
	defer ib.Close()

	hasA := ia.MoveNext()
	hasB := ib.MoveNext()
	for hasA && hasB {
		ka, _, _ := ia.Current()
		kb, _, _ := ib.Current()
		c := a.cmp(ka, kb)
		switch {
		case c < 0:
			if onlyA != nil && !onlyA(ka) {
				return
			}
			hasA = ia.MoveNext()
		case c > 0:
			if onlyB != nil && !onlyB(kb) {
				return
			}
			hasB = ib.MoveNext()
		default:
			if both != nil && !both(ka) {
				return
			}
			hasA = ia.MoveNext()
			hasB = ib.MoveNext()
		}
	}
	for hasA {
		ka, _, _ := ia.Current()
		if onlyA != nil && !onlyA(ka) {
			return
		}
		hasA = ia.MoveNext()
	}
	for hasB {
		kb, _, _ := ib.Current()
		if onlyB != nil && !onlyB(kb) {
			return
		}
		hasB = ib.MoveNext()
	}
}

// UnionWith adds every element of other to s.
func (s *Set[K]) UnionWith(other *Set[K]) {
	var toAdd []K
	merge(s, other, nil, func(k K) bool { toAdd = append(toAdd, k); return true }, nil)
	for _, k := range toAdd {
		s.Add(k)
	}
}

// IntersectWith removes every element of s that is not also in other.
func (s *Set[K]) IntersectWith(other *Set[K]) {
	var toRemove []K
	merge(s, other, func(k K) bool { toRemove = append(toRemove, k); return true }, nil, nil)
	for _, k := range toRemove {
		s.Remove(k)
	}
}

// ExceptWith removes every element of s that is also in other.
func (s *Set[K]) ExceptWith(other *Set[K]) {
	var toRemove []K
	merge(s, other, nil, nil, func(k K) bool { toRemove = append(toRemove, k); return true })
	for _, k := range toRemove {
		s.Remove(k)
	}
}

// SymmetricExceptWith leaves s holding exactly the elements present in
// precisely one of s and other.
func (s *Set[K]) SymmetricExceptWith(other *Set[K]) {
	var toAdd, toRemove []K
	merge(s, other,
		nil,
		func(k K) bool { toAdd = append(toAdd, k); return true },
		func(k K) bool { toRemove = append(toRemove, k); return true },
	)
	for _, k := range toRemove {
		s.Remove(k)
	}
	for _, k := range toAdd {
		s.Add(k)
	}
}

// IsSubsetOf reports whether every element of s is also in other.
func (s *Set[K]) IsSubsetOf(other *Set[K]) bool {
	ok := true
	merge(s, other, func(K) bool { ok = false; return false }, nil, nil)
	return ok
}

// IsSupersetOf reports whether every element of other is also in s.
func (s *Set[K]) IsSupersetOf(other *Set[K]) bool {
	return other.IsSubsetOf(s)
}

// IsProperSubsetOf reports whether s is a subset of other and smaller
// than it.
func (s *Set[K]) IsProperSubsetOf(other *Set[K]) bool {
	return s.Len() < other.Len() && s.IsSubsetOf(other)
}

// IsProperSupersetOf reports whether s is a superset of other and larger
// than it.
func (s *Set[K]) IsProperSupersetOf(other *Set[K]) bool {
	return s.Len() > other.Len() && s.IsSupersetOf(other)
}

// Overlaps reports whether s and other share at least one element.
func (s *Set[K]) Overlaps(other *Set[K]) bool {
	found := false
	merge(s, other, nil, nil, func(K) bool { found = true; return false })
	return found
}

// SetEquals reports whether s and other contain exactly the same
// elements.
func (s *Set[K]) SetEquals(other *Set[K]) bool {
	if s.Len() != other.Len() {
		return false
	}
	equal := true
	merge(s, other,
		func(K) bool { equal = false; return false },
		func(K) bool { equal = false; return false },
		nil,
	)
	return equal
}
