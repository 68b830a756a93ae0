package bptree

import "errors"

// Sentinel errors returned (possibly wrapped with fmt.Errorf("%w: ...")) by
// Tree and its map/set wrappers.
var (
	// ErrInvalidArgument is returned when a constructor or option receives
	// an out-of-range or nil argument.
	ErrInvalidArgument = errors.New("bptree: invalid argument")

	// ErrNotFound identifies a key that is not present in the tree. Get and
	// Remove report a missing key through their boolean results and do not
	// return this error.
	ErrNotFound = errors.New("bptree: key not found")

	// ErrDuplicateKey is returned (wrapped) by ordmap's MustInsert when the
	// key is already present. ordset's Add reports a collision through its
	// boolean result instead.
	ErrDuplicateKey = errors.New("bptree: duplicate key")

	// ErrCapacityExceeded identifies an operation that would exceed a size
	// limit. No collection in this module has such a limit, so none of them
	// returns it.
	ErrCapacityExceeded = errors.New("bptree: capacity exceeded")

	// ErrIteratorInvalid is returned by Iterator.Current when the iterator
	// is positioned before the first or after the last entry, or when the
	// tree has been mutated since the iterator was created.
	ErrIteratorInvalid = errors.New("bptree: iterator invalid")
)
