// Package pane implements the recursive split layout of terminal panes.
//
// The layout is a binary tree. Leaves are Surfaces (terminal views owned
// by the surrounding application) and interior nodes are Splits, each
// holding exactly two child Elements separated by a movable divider.
//
// # Architecture
//
// The package is organized around these core types:
//
//   - Element: tagged value occupying a split slot, a Surface or a *Split
//   - Container: back-reference describing where a node is anchored
//     (window root, tab root, or a named slot of a parent Split)
//   - Split: the binary tree node with orientation and divider position
//   - Tree: tracks every mounted Surface and performs split creation
//   - Root: the top-level anchor for a window or tab
//
// Containers form a zipper: any node can rewrite its own position in the
// tree in O(1) without a root-down traversal. The Tree keeps the single
// authoritative Container for every mounted Surface; Splits keep their own.
//
// # Usage
//
//	tree := pane.NewTree(alloc)
//	root := tree.NewRoot(pane.WindowRoot, win)
//	root.Mount(surface)
//
//	// Split the surface, placing a new surface to its right.
//	split, err := tree.SplitSurface(surface, pane.DirRight)
//	if err != nil {
//	    return err
//	}
//
//	// Directional focus queries.
//	n := tree.Neighbors(surface)
//	if n.Right != nil {
//	    n.Right.GrabFocus()
//	}
//
// # Thread Safety
//
// The tree is not safe for concurrent use. All mutations are expected to
// run on the single UI event loop; operations complete synchronously and
// never suspend mid-mutation.
package pane
