package pane

// Surface is a leaf terminal view. Surfaces are owned by the surrounding
// application; the tree only rewires which Container references them.
type Surface interface {
	// Destroy releases the surface and its underlying resources.
	Destroy()

	// GrabFocus gives the surface input focus.
	GrabFocus()

	// DisplayHandle returns the surface's toolkit handle, attachable as a
	// child of a splitter widget or a window root.
	DisplayHandle() Handle
}

// Splitter is the host toolkit widget that physically renders two
// children separated by a divider. One instance backs each Split.
//
// Reattaching a child resets the divider position as a side effect; the
// tree reads the position before any re-sync and restores it after.
type Splitter interface {
	// SetFirst attaches a child to the top/left side. A nil handle
	// detaches the current child.
	SetFirst(Handle)

	// SetSecond attaches a child to the bottom/right side. A nil handle
	// detaches the current child.
	SetSecond(Handle)

	// Divider returns the current divider position.
	Divider() int

	// SetDivider moves the divider.
	SetDivider(int)

	// Handle returns the splitter's own display handle so it can be
	// attached where one of its children used to be.
	Handle() Handle
}

// Window is the host window or tab content area that displays the root
// element of a pane tree.
type Window interface {
	// SetRootChild attaches the given handle as the window's sole child.
	SetRootChild(Handle)
}

// Allocator creates surfaces and splitter widgets on behalf of the tree.
// The concrete implementation lives with the application wiring: surfaces
// come from the terminal layer, splitters from the renderer.
type Allocator interface {
	// NewSurface allocates a surface as a logical child of parent.
	// Errors abort split creation before any tree mutation.
	NewSurface(parent Surface) (Surface, error)

	// NewSplitter creates a host splitter widget for the orientation.
	NewSplitter(Orientation) Splitter

	// ReleaseSplitter destroys a splitter widget after tree contraction.
	ReleaseSplitter(Splitter)
}
