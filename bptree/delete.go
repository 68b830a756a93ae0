package bptree

// Remove deletes the first entry equal to k, reporting whether one was
// found. Deletion is two-phase: the exact slot is removed first, then if
// the owning node now holds fewer than its minimum live count, it borrows
// from or merges with a sibling within its own parent. Every non-root
// node always has at least one sibling (its parent never drops below two
// children), so sibling-local rebalancing is always sufficient to restore
// the minimum-occupancy invariant without having to search further afield
// for a richer neighbor across an ancestor boundary.
func (t *Tree[K, V]) Remove(k K) bool {
	newCount, found := t.removeFrom(t.root, t.rootCount, k)
	t.rootCount = newCount
	if !found {
		return false
	}
	t.count--
	t.version++

	if t.depth > 0 {
		if in, ok := t.root.(*interiorNode[K, V]); ok && t.rootCount == 1 {
			t.root = in.children[0].child
			t.rootCount = in.children[0].entriesCount
			t.depth--
			tracer().Debugf("root collapsed: new depth=%d", t.depth)
		}
	}
	return true
}

// removeFrom deletes k from the subtree rooted at n (count live entries),
// returning n's updated live count and whether k was found. When the
// recursive call into a child leaves it under minLive, removeFrom
// rebalances that child against a sibling before returning.
func (t *Tree[K, V]) removeFrom(n node[K, V], count int, k K) (int, bool) {
	if leaf, ok := n.(*leafNode[K, V]); ok {
		idx := boundIndex(leaf.keys, count, 0, k, t.cmp, false)
		if idx >= count || t.cmp(leaf.keys[idx], k) != 0 {
			return count, false
		}
		deleteSlot(leaf.keys, leaf.values, count, idx)
		return count - 1, true
	}

	in := n.(*interiorNode[K, V])
	childIdx := boundIndex(in.keys, count, 1, k, t.cmp, false)
	link := in.children[childIdx]

	newChildCount, found := t.removeFrom(link.child, link.entriesCount, k)
	if !found {
		return count, false
	}
	in.children[childIdx].entriesCount = newChildCount

	if newChildCount >= minLive[K, V](link.child) {
		return count, true
	}
	return t.rebalanceChild(in, count, childIdx), true
}

// rebalanceChild restores the minimum live count of in.children[childIdx],
// which has just dropped below its minimum. It prefers borrowing a single
// entry from a sibling that has more than its own minimum (left sibling
// first), falling back to a merge (left sibling preferred) when neither
// sibling can spare an entry.
func (t *Tree[K, V]) rebalanceChild(in *interiorNode[K, V], count, childIdx int) int {
	child := in.children[childIdx]
	_, childIsLeaf := child.child.(*leafNode[K, V])

	if childIdx > 0 {
		left := in.children[childIdx-1]
		if left.entriesCount > minLive[K, V](left.child) {
			if childIsLeaf {
				t.leafBorrowLeft(in, childIdx)
			} else {
				t.interiorBorrowLeft(in, childIdx)
			}
			return count
		}
	}
	if childIdx+1 < count {
		right := in.children[childIdx+1]
		if right.entriesCount > minLive[K, V](right.child) {
			if childIsLeaf {
				t.leafBorrowRight(in, childIdx)
			} else {
				t.interiorBorrowRight(in, childIdx)
			}
			return count
		}
	}

	if childIdx > 0 {
		if childIsLeaf {
			return t.leafMergeIntoLeft(in, count, childIdx)
		}
		return t.interiorMergeIntoLeft(in, count, childIdx)
	}
	if childIsLeaf {
		return t.leafMergeIntoRight(in, count, childIdx)
	}
	return t.interiorMergeIntoRight(in, count, childIdx)
}

// --- leaf borrow/merge ---

func (t *Tree[K, V]) leafBorrowLeft(in *interiorNode[K, V], childIdx int) {
	left := in.children[childIdx-1]
	child := in.children[childIdx]
	l := left.child.(*leafNode[K, V])
	c := child.child.(*leafNode[K, V])
	lc, cc := left.entriesCount, child.entriesCount

	borrowedKey, borrowedVal := l.keys[lc-1], l.values[lc-1]
	insertSlot(c.keys, c.values, cc, 0, borrowedKey, borrowedVal)

	var zeroK K
	var zeroV V
	l.keys[lc-1] = zeroK
	l.values[lc-1] = zeroV

	in.children[childIdx-1].entriesCount = lc - 1
	in.children[childIdx].entriesCount = cc + 1
	in.keys[childIdx] = l.keys[lc-2]
}

func (t *Tree[K, V]) leafBorrowRight(in *interiorNode[K, V], childIdx int) {
	child := in.children[childIdx]
	right := in.children[childIdx+1]
	c := child.child.(*leafNode[K, V])
	r := right.child.(*leafNode[K, V])
	cc, rc := child.entriesCount, right.entriesCount

	borrowedKey, borrowedVal := r.keys[0], r.values[0]
	c.keys[cc], c.values[cc] = borrowedKey, borrowedVal
	deleteSlot(r.keys, r.values, rc, 0)

	in.children[childIdx].entriesCount = cc + 1
	in.children[childIdx+1].entriesCount = rc - 1
	in.keys[childIdx+1] = borrowedKey
}

func (t *Tree[K, V]) leafMergeIntoLeft(in *interiorNode[K, V], count, childIdx int) int {
	left := in.children[childIdx-1]
	child := in.children[childIdx]
	l := left.child.(*leafNode[K, V])
	c := child.child.(*leafNode[K, V])
	lc, cc := left.entriesCount, child.entriesCount

	copy(l.keys[lc:lc+cc], c.keys[0:cc])
	copy(l.values[lc:lc+cc], c.values[0:cc])
	in.children[childIdx-1].entriesCount = lc + cc

	deleteSlot(in.keys, in.children, count, childIdx)
	return count - 1
}

func (t *Tree[K, V]) leafMergeIntoRight(in *interiorNode[K, V], count, childIdx int) int {
	child := in.children[childIdx]
	right := in.children[childIdx+1]
	c := child.child.(*leafNode[K, V])
	r := right.child.(*leafNode[K, V])
	cc, rc := child.entriesCount, right.entriesCount

	copy(r.keys[cc:cc+rc], r.keys[0:rc])
	copy(r.values[cc:cc+rc], r.values[0:rc])
	copy(r.keys[0:cc], c.keys[0:cc])
	copy(r.values[0:cc], c.values[0:cc])
	in.children[childIdx+1].entriesCount = cc + rc

	deleteSlot(in.keys, in.children, count, childIdx)
	return count - 1
}

// --- interior borrow/merge ---
//
// An interior node's slot 0 never carries a key (see node.go). Borrowing
// or merging a child pointer across the slot-0 boundary therefore always
// "rotates" a key through the parent: the parent's separating pivot is
// demoted to become the key attached to whichever side received the
// moved child pointer, and a new pivot is promoted from whichever slot's
// key is left without a purpose by the move.

func (t *Tree[K, V]) interiorBorrowLeft(in *interiorNode[K, V], childIdx int) {
	left := in.children[childIdx-1]
	child := in.children[childIdx]
	l := left.child.(*interiorNode[K, V])
	c := child.child.(*interiorNode[K, V])
	lc, cc := left.entriesCount, child.entriesCount

	borrowedChild := l.children[lc-1]
	promotedKey := l.keys[lc-1]
	demotedPivot := in.keys[childIdx]

	copy(c.keys[1:cc+1], c.keys[0:cc])
	copy(c.children[1:cc+1], c.children[0:cc])
	c.keys[1] = demotedPivot
	var zeroK K
	c.keys[0] = zeroK
	c.children[0] = borrowedChild

	var zeroLink childLink[K, V]
	l.keys[lc-1] = zeroK
	l.children[lc-1] = zeroLink

	in.children[childIdx-1].entriesCount = lc - 1
	in.children[childIdx].entriesCount = cc + 1
	in.keys[childIdx] = promotedKey
}

func (t *Tree[K, V]) interiorBorrowRight(in *interiorNode[K, V], childIdx int) {
	child := in.children[childIdx]
	right := in.children[childIdx+1]
	c := child.child.(*interiorNode[K, V])
	r := right.child.(*interiorNode[K, V])
	cc, rc := child.entriesCount, right.entriesCount

	borrowedChild := r.children[0]
	demotedPivot := in.keys[childIdx+1]
	promotedKey := r.keys[1]

	c.keys[cc] = demotedPivot
	c.children[cc] = borrowedChild

	copy(r.keys[0:rc-1], r.keys[1:rc])
	copy(r.children[0:rc-1], r.children[1:rc])
	var zeroK K
	var zeroLink childLink[K, V]
	r.keys[0] = zeroK
	r.keys[rc-1] = zeroK
	r.children[rc-1] = zeroLink

	in.children[childIdx].entriesCount = cc + 1
	in.children[childIdx+1].entriesCount = rc - 1
	in.keys[childIdx+1] = promotedKey
}

func (t *Tree[K, V]) interiorMergeIntoLeft(in *interiorNode[K, V], count, childIdx int) int {
	left := in.children[childIdx-1]
	child := in.children[childIdx]
	l := left.child.(*interiorNode[K, V])
	c := child.child.(*interiorNode[K, V])
	lc, cc := left.entriesCount, child.entriesCount
	demotedPivot := in.keys[childIdx]

	l.keys[lc] = demotedPivot
	l.children[lc] = c.children[0]
	copy(l.keys[lc+1:lc+cc], c.keys[1:cc])
	copy(l.children[lc+1:lc+cc], c.children[1:cc])
	in.children[childIdx-1].entriesCount = lc + cc

	deleteSlot(in.keys, in.children, count, childIdx)
	return count - 1
}

func (t *Tree[K, V]) interiorMergeIntoRight(in *interiorNode[K, V], count, childIdx int) int {
	child := in.children[childIdx]
	right := in.children[childIdx+1]
	c := child.child.(*interiorNode[K, V])
	r := right.child.(*interiorNode[K, V])
	cc, rc := child.entriesCount, right.entriesCount
	demotedPivot := in.keys[childIdx+1]

	copy(r.keys[cc:cc+rc], r.keys[0:rc])
	copy(r.children[cc:cc+rc], r.children[0:rc])
	copy(r.keys[0:cc], c.keys[0:cc])
	copy(r.children[0:cc], c.children[0:cc])
	r.keys[cc] = demotedPivot
	in.children[childIdx+1].entriesCount = cc + rc

	deleteSlot(in.keys, in.children, count, childIdx)
	return count - 1
}
