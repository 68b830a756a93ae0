package bptree

// InsertMode selects how Insert behaves when an equal key is already
// present in the tree.
type InsertMode int

const (
	// InsertAllow always inserts a new entry, even when an equal key
	// already exists — the structural invariants tolerate duplicate keys
	// (Get/Contains report the leftmost one). Core engine default.
	InsertAllow InsertMode = iota

	// InsertReplace overwrites the value of an existing equal key in
	// place, or inserts a new entry if none exists. Used by ordmap.
	InsertReplace

	// InsertReject leaves the tree untouched and reports false if an
	// equal key already exists. Used by ordmap.TryInsert and ordset.Add.
	InsertReject
)

type insertOutcome int

const (
	outcomeRejected insertOutcome = iota
	outcomeReplaced
	outcomeAdded
)

// splitInfo is returned up the recursion when a node had to split to make
// room for an insertion: the caller (the node's parent, or Insert itself
// for a root split) must weave (pivot, right) into its own slot array as
// a new (key, childLink) pair.
type splitInfo[K any, V any] struct {
	pivot      K
	right      node[K, V]
	rightCount int
}

// Insert adds or updates the entry for k according to mode. It reports
// whether the tree's effective contents changed: for InsertAllow and
// InsertReplace this is always true; for InsertReject it is true only
// when no equal key was already present.
func (t *Tree[K, V]) Insert(k K, v V, mode InsertMode) bool {
	newCount, split, outcome := t.insertInto(t.root, t.rootCount, k, v, mode)
	t.rootCount = newCount

	if split != nil {
		newRoot := newInteriorNode[K, V](t.order)
		newRoot.children[0] = childLink[K, V]{child: t.root, entriesCount: newCount}
		newRoot.children[1] = childLink[K, V]{child: split.right, entriesCount: split.rightCount}
		newRoot.keys[1] = split.pivot
		t.root = newRoot
		t.rootCount = 2
		t.depth++
		tracer().Debugf("root split: new depth=%d", t.depth)
	}

	switch outcome {
	case outcomeRejected:
		return false
	case outcomeReplaced:
		t.version++
		return true
	case outcomeAdded:
		t.count++
		t.version++
		return true
	default:
		return false
	}
}

// insertInto inserts (k, v) into the subtree rooted at n, which currently
// holds count live entries. It returns n's updated live count, split
// information if n had to split to accommodate the insertion, and the
// outcome of the insertion (rejected/replaced/added).
func (t *Tree[K, V]) insertInto(n node[K, V], count int, k K, v V, mode InsertMode) (int, *splitInfo[K, V], insertOutcome) {
	if leaf, ok := n.(*leafNode[K, V]); ok {
		idx := boundIndex(leaf.keys, count, 0, k, t.cmp, false)
		if idx < count && t.cmp(leaf.keys[idx], k) == 0 {
			switch mode {
			case InsertReject:
				return count, nil, outcomeRejected
			case InsertReplace:
				leaf.values[idx] = v
				return count, nil, outcomeReplaced
			}
			// InsertAllow falls through: a duplicate is inserted at the
			// lower-bound position, ahead of the existing equal run.
		}

		if nodeInsert(leaf.keys, leaf.values, count, idx, k, v) {
			return count + 1, nil, outcomeAdded
		}

		rightKeys, rightVals, leftCount, rightCount := nodeSplitInsert(leaf.keys, leaf.values, idx, k, v)
		pivot := leaf.keys[leftCount-1]
		right := &leafNode[K, V]{keys: rightKeys, values: rightVals}
		tracer().Debugf("leaf split: idx=%d leftCount=%d rightCount=%d", idx, leftCount, rightCount)
		return leftCount, &splitInfo[K, V]{pivot: pivot, right: right, rightCount: rightCount}, outcomeAdded
	}

	in := n.(*interiorNode[K, V])
	childIdx := boundIndex(in.keys, count, 1, k, t.cmp, false)
	link := in.children[childIdx]

	newChildCount, childSplit, outcome := t.insertInto(link.child, link.entriesCount, k, v, mode)
	in.children[childIdx].entriesCount = newChildCount
	if childSplit == nil {
		return count, nil, outcome
	}

	insertAt := childIdx + 1
	newLink := childLink[K, V]{child: childSplit.right, entriesCount: childSplit.rightCount}
	if nodeInsert(in.keys, in.children, count, insertAt, childSplit.pivot, newLink) {
		return count + 1, nil, outcome
	}

	rightKeys, rightChildren, leftCount, rightCount := nodeSplitInsert(in.keys, in.children, insertAt, childSplit.pivot, newLink)
	pivot := rightKeys[0]
	var zeroKey K
	rightKeys[0] = zeroKey
	right := &interiorNode[K, V]{keys: rightKeys, children: rightChildren}
	tracer().Debugf("interior split: insertAt=%d leftCount=%d rightCount=%d", insertAt, leftCount, rightCount)
	return leftCount, &splitInfo[K, V]{pivot: pivot, right: right, rightCount: rightCount}, outcome
}
