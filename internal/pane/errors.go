package pane

import "errors"

// Sentinel errors for the pane package.
var (
	// ErrSurfaceNotMounted is returned when an operation references a
	// surface that is not anchored anywhere in the tree.
	ErrSurfaceNotMounted = errors.New("surface is not mounted in the tree")

	// ErrLastPane is returned when removal would leave a root with no
	// surface at all.
	ErrLastPane = errors.New("cannot remove the last pane")

	// ErrSurfaceAllocation wraps failures from the surface allocator.
	// Split creation aborts before any tree mutation when allocation fails.
	ErrSurfaceAllocation = errors.New("surface allocation failed")
)
