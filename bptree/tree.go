package bptree

import (
	"fmt"
	"sync"
)

// Tree is an in-memory, ordered, associative B+Tree container keyed by K
// with values V. The zero value is not usable; construct one with New.
//
// A Tree is not safe for concurrent use. Callers sharing a Tree across
// goroutines must serialize access, including iteration.
type Tree[K any, V any] struct {
	cmp   CompareFunc[K]
	order int

	root      node[K, V]
	rootCount int
	depth     int
	count     int
	version   uint64

	pathPool sync.Pool
}

// New constructs an empty Tree ordered by cmp. cmp must not be nil. The
// Order option sets the tree's branching factor; it defaults to 64.
func New[K any, V any](cmp CompareFunc[K], opts ...Option) (*Tree[K, V], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: cmp must not be nil", ErrInvalidArgument)
	}
	cfg := treeConfig{order: defaultOrder}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.order < 2 || cfg.order%2 != 0 || cfg.order > maxOrder {
		return nil, fmt.Errorf("%w: order must be an even integer in [2, %d], got %d", ErrInvalidArgument, maxOrder, cfg.order)
	}

	t := &Tree[K, V]{
		cmp:   cmp,
		order: cfg.order,
		root:  newLeafNode[K, V](cfg.order),
	}
	tracer().Debugf("new tree: order=%d", cfg.order)
	return t, nil
}

// Count returns the number of entries currently held by the tree.
func (t *Tree[K, V]) Count() int { return t.count }

// Depth returns the tree's height: 0 when the root is a leaf, otherwise
// the number of interior levels above the leaves.
func (t *Tree[K, V]) Depth() int { return t.depth }

// Order returns the branching factor the tree was constructed with.
func (t *Tree[K, V]) Order() int { return t.order }

// Version returns the tree's current mutation counter, used by iterators
// to detect structural changes made after they were positioned.
func (t *Tree[K, V]) Version() uint64 { return t.version }

// Get returns the value associated with k and reports whether k was found.
// When duplicate keys have been inserted (InsertAllow), Get returns the
// first (leftmost) one.
func (t *Tree[K, V]) Get(k K) (V, bool) {
	n, cnt := t.root, t.rootCount
	for {
		switch x := n.(type) {
		case *leafNode[K, V]:
			idx := boundIndex(x.keys, cnt, 0, k, t.cmp, false)
			if idx < cnt && t.cmp(x.keys[idx], k) == 0 {
				return x.values[idx], true
			}
			var zero V
			return zero, false
		case *interiorNode[K, V]:
			idx := boundIndex(x.keys, cnt, 1, k, t.cmp, false)
			link := x.children[idx]
			n, cnt = link.child, link.entriesCount
		}
	}
}

// Contains reports whether k is present in the tree.
func (t *Tree[K, V]) Contains(k K) bool {
	_, ok := t.Get(k)
	return ok
}

// Clear removes every entry from the tree, resetting it to a single empty
// leaf root.
func (t *Tree[K, V]) Clear() {
	t.root = newLeafNode[K, V](t.order)
	t.rootCount = 0
	t.depth = 0
	t.count = 0
	t.version++
}

func (t *Tree[K, V]) acquirePath() *path[K, V] {
	if p, ok := t.pathPool.Get().(*path[K, V]); ok && p != nil {
		p.steps = p.steps[:0]
		return p
	}
	return &path[K, V]{steps: make([]pathStep[K, V], 0, t.depth+1)}
}

func (t *Tree[K, V]) releasePath(p *path[K, V]) {
	for i := range p.steps {
		p.steps[i] = pathStep[K, V]{}
	}
	p.steps = p.steps[:0]
	t.pathPool.Put(p)
}
