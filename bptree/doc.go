// Package bptree implements an in-memory, ordered, associative container
// built on a B+Tree: a generalization of a binary search tree with a
// configurable branching factor (its order).
//
// The package exposes the core engine only: node storage, the root-to-leaf
// descent, insertion with splitting, deletion with borrowing and merging,
// and a bidirectional iterator. Map- and set-shaped surfaces live in the
// sibling ordmap and ordset packages, built entirely on top of Get,
// Insert, Remove, and the iterator.
//
// Trees are not safe for concurrent use; callers must serialize access.
package bptree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bptree'.
func tracer() tracing.Trace {
	return tracing.Select("bptree")
}
