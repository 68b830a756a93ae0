package bptree

// CompareFunc reports the relative order of a and b: negative if a < b,
// zero if a == b, positive if a > b. It is the ternary comparator used
// throughout the package in place of a Less-only predicate, matching the
// convention of Go's cmp.Compare / slices.SortFunc.
type CompareFunc[K any] func(a, b K) int

// node is the tagged sum of the two node kinds a tree is built from. Go has
// no native sum type, so the two concrete implementations (leafNode,
// interiorNode) are dispatched on via a type switch at every call site that
// needs to tell them apart, rather than through virtual dispatch.
type node[K any, V any] interface {
	isLeaf() bool
}

// leafNode holds live entries directly: keys[i]/values[i] for i in
// [0, count), where count is tracked by the leaf's parent child-link (or,
// for a leaf that is also the root, by the owning Tree).
type leafNode[K any, V any] struct {
	keys   []K
	values []V
}

func (*leafNode[K, V]) isLeaf() bool { return true }

// childLink is a single slot of an interior node: a pointer to a child
// subtree plus that subtree's live entry count. The count is kept in the
// parent rather than the child so a node never needs to know who its
// parent is, or walk its own contents to answer "how many entries do I
// hold" during a split or merge one level up.
type childLink[K any, V any] struct {
	child        node[K, V]
	entriesCount int
}

// interiorNode holds order+1 slots of (key, childLink) pairs. Slot 0 has no
// meaningful key — children[0] is reached without comparing against any
// pivot — so keys[0] is left at its zero value and never read by search or
// descent, which always bisect the range [1, count).
type interiorNode[K any, V any] struct {
	keys     []K
	children []childLink[K, V]
}

func (*interiorNode[K, V]) isLeaf() bool { return false }

func newLeafNode[K any, V any](order int) *leafNode[K, V] {
	return &leafNode[K, V]{
		keys:   make([]K, order),
		values: make([]V, order),
	}
}

func newInteriorNode[K any, V any](order int) *interiorNode[K, V] {
	return &interiorNode[K, V]{
		keys:     make([]K, order+1),
		children: make([]childLink[K, V], order+1),
	}
}

// nodeCap returns a node's slot capacity: order for a leaf, order+1 for an
// interior node.
func nodeCap[K any, V any](n node[K, V]) int {
	switch x := n.(type) {
	case *leafNode[K, V]:
		return len(x.keys)
	case *interiorNode[K, V]:
		return len(x.keys)
	default:
		return 0
	}
}

// minLive returns the minimum live entry count a non-root node of this
// capacity must carry after any public operation completes.
func minLive[K any, V any](n node[K, V]) int {
	return (nodeCap[K, V](n) + 1) / 2
}
