package bptree

// pathStep records, for one level of a root-to-leaf descent, the node
// visited, its live entry count at the time of descent, and the slot
// index taken at that level (a child slot for every level but the last,
// a key/value slot for the leaf at the bottom).
type pathStep[K any, V any] struct {
	n    node[K, V]
	cnt  int
	slot int
}

// path is a rented, reusable root-to-leaf step stack. Iterators acquire
// one from Tree.pathPool and release it back on Close, so repeated
// iteration does not allocate a fresh stack per pass — the same
// acquire/release-and-reset shape as a sync.Pool-backed result buffer.
type path[K any, V any] struct {
	steps []pathStep[K, V]
}

// Iterator is a bidirectional cursor over a Tree's entries in key order.
// It is positioned either "before the first" entry, "after the last"
// entry, or directly on an entry; MoveNext/MovePrev step between these
// states. An Iterator becomes invalid if the tree is mutated after the
// iterator was created or last repositioned; Current and IsValid report
// this via the tree's version counter.
type Iterator[K any, V any] struct {
	tree    *Tree[K, V]
	p       *path[K, V]
	version uint64
	valid   bool
	ended   bool
	curKey  K
	curVal  V
}

// IterBegin returns an iterator positioned before the first entry.
func (t *Tree[K, V]) IterBegin() *Iterator[K, V] {
	it := &Iterator[K, V]{tree: t}
	it.reset(true)
	return it
}

// IterEnd returns an iterator positioned after the last entry.
func (t *Tree[K, V]) IterEnd() *Iterator[K, V] {
	it := &Iterator[K, V]{tree: t}
	it.reset(false)
	return it
}

// FindBound returns an iterator positioned at the first entry with a key
// >= k (upper == false) or > k (upper == true). If no such entry exists,
// the iterator is positioned after the last entry.
func (t *Tree[K, V]) FindBound(k K, upper bool) *Iterator[K, V] {
	it := &Iterator[K, V]{tree: t}
	it.p = t.acquirePath()
	it.version = t.version

	n, cnt := t.root, t.rootCount
	for {
		switch x := n.(type) {
		case *leafNode[K, V]:
			idx := boundIndex(x.keys, cnt, 0, k, t.cmp, upper)
			it.p.steps = append(it.p.steps, pathStep[K, V]{n: n, cnt: cnt, slot: idx})
			if idx < cnt {
				it.loadCurrent()
				it.valid, it.ended = true, false
			} else if it.climbToNextLeaf() {
				it.loadCurrent()
				it.valid, it.ended = true, false
			} else {
				it.reset(false)
			}
			return it
		case *interiorNode[K, V]:
			idx := boundIndex(x.keys, cnt, 1, k, t.cmp, false)
			it.p.steps = append(it.p.steps, pathStep[K, V]{n: n, cnt: cnt, slot: idx})
			link := x.children[idx]
			n, cnt = link.child, link.entriesCount
		}
	}
}

// reset repositions the iterator to before-the-first (toBeginning) or
// after-the-last, taking the leftmost or rightmost slot at every level.
func (it *Iterator[K, V]) reset(toBeginning bool) {
	if it.p != nil {
		it.tree.releasePath(it.p)
	}
	it.p = it.tree.acquirePath()
	it.version = it.tree.version
	it.valid = false
	it.ended = !toBeginning

	n, cnt := it.tree.root, it.tree.rootCount
	for {
		switch x := n.(type) {
		case *leafNode[K, V]:
			slot := 0
			if !toBeginning {
				slot = cnt
			}
			it.p.steps = append(it.p.steps, pathStep[K, V]{n: n, cnt: cnt, slot: slot})
			return
		case *interiorNode[K, V]:
			idx := 0
			if !toBeginning {
				idx = cnt - 1
			}
			it.p.steps = append(it.p.steps, pathStep[K, V]{n: n, cnt: cnt, slot: idx})
			link := x.children[idx]
			n, cnt = link.child, link.entriesCount
		}
	}
}

// Reset repositions an already-constructed iterator without allocating a
// new one, reusing its rented path.
func (it *Iterator[K, V]) Reset(toBeginning bool) {
	it.reset(toBeginning)
}

// Close releases the iterator's rented path back to the tree's pool.
// After Close the iterator must not be used.
func (it *Iterator[K, V]) Close() {
	if it.p != nil {
		it.tree.releasePath(it.p)
		it.p = nil
	}
}

// IsValid reports whether the iterator is currently positioned on an
// entry and the tree has not been mutated since.
func (it *Iterator[K, V]) IsValid() bool {
	return it.valid && it.version == it.tree.version
}

// Current returns the key and value the iterator is positioned on. It
// returns ErrIteratorInvalid if the iterator is before-the-first,
// after-the-last, or stale relative to the tree's current version.
func (it *Iterator[K, V]) Current() (K, V, error) {
	if !it.IsValid() {
		var zk K
		var zv V
		return zk, zv, ErrIteratorInvalid
	}
	return it.curKey, it.curVal, nil
}

// MoveNext advances the iterator to the next entry in key order,
// reporting whether one exists. Calling MoveNext on a fresh before-the-
// first iterator positions it on the first entry.
func (it *Iterator[K, V]) MoveNext() bool {
	if it.version != it.tree.version {
		return false
	}
	if it.valid {
		it.p.steps[len(it.p.steps)-1].slot++
	} else if it.ended {
		return false
	}

	leafStep := &it.p.steps[len(it.p.steps)-1]
	if leafStep.slot >= leafStep.cnt {
		if !it.climbToNextLeaf() {
			// Reposition after-the-last so a later MovePrev starts from
			// the last entry.
			it.reset(false)
			return false
		}
	}
	it.loadCurrent()
	it.valid, it.ended = true, false
	return true
}

// MovePrev retreats the iterator to the previous entry in key order,
// reporting whether one exists. Calling MovePrev on a fresh after-the-
// last iterator positions it on the last entry.
func (it *Iterator[K, V]) MovePrev() bool {
	if it.version != it.tree.version {
		return false
	}
	if !it.valid && !it.ended {
		return false
	}
	it.p.steps[len(it.p.steps)-1].slot--

	leafStep := &it.p.steps[len(it.p.steps)-1]
	if leafStep.slot < 0 {
		if !it.climbToPrevLeaf() {
			// Reposition before-the-first so a later MoveNext starts from
			// the first entry.
			it.reset(true)
			return false
		}
	}
	it.loadCurrent()
	it.valid, it.ended = true, false
	return true
}

func (it *Iterator[K, V]) loadCurrent() {
	step := &it.p.steps[len(it.p.steps)-1]
	leaf := step.n.(*leafNode[K, V])
	it.curKey = leaf.keys[step.slot]
	it.curVal = leaf.values[step.slot]
}

// climbToNextLeaf walks the path upward from the current leaf until it
// finds a level with an unvisited right sibling, then descends leftmost
// from there. It reports false if the walk reaches the root without
// finding one (the iterator was on the last leaf).
func (it *Iterator[K, V]) climbToNextLeaf() bool {
	steps := it.p.steps
	for i := len(steps) - 2; i >= 0; i-- {
		steps[i].slot++
		if steps[i].slot < steps[i].cnt {
			in := steps[i].n.(*interiorNode[K, V])
			link := in.children[steps[i].slot]
			it.p.steps = steps[:i+1]
			it.descendLeftmost(link.child, link.entriesCount)
			return true
		}
	}
	return false
}

// climbToPrevLeaf is the mirror image of climbToNextLeaf, descending
// rightmost once it finds a level with an unvisited left sibling.
func (it *Iterator[K, V]) climbToPrevLeaf() bool {
	steps := it.p.steps
	for i := len(steps) - 2; i >= 0; i-- {
		steps[i].slot--
		if steps[i].slot >= 0 {
			in := steps[i].n.(*interiorNode[K, V])
			link := in.children[steps[i].slot]
			it.p.steps = steps[:i+1]
			it.descendRightmost(link.child, link.entriesCount)
			return true
		}
	}
	return false
}

func (it *Iterator[K, V]) descendLeftmost(n node[K, V], cnt int) {
	for {
		switch x := n.(type) {
		case *leafNode[K, V]:
			it.p.steps = append(it.p.steps, pathStep[K, V]{n: n, cnt: cnt, slot: 0})
			return
		case *interiorNode[K, V]:
			it.p.steps = append(it.p.steps, pathStep[K, V]{n: n, cnt: cnt, slot: 0})
			link := x.children[0]
			n, cnt = link.child, link.entriesCount
		}
	}
}

func (it *Iterator[K, V]) descendRightmost(n node[K, V], cnt int) {
	for {
		switch x := n.(type) {
		case *leafNode[K, V]:
			it.p.steps = append(it.p.steps, pathStep[K, V]{n: n, cnt: cnt, slot: cnt - 1})
			return
		case *interiorNode[K, V]:
			it.p.steps = append(it.p.steps, pathStep[K, V]{n: n, cnt: cnt, slot: cnt - 1})
			link := x.children[cnt-1]
			n, cnt = link.child, link.entriesCount
		}
	}
}
