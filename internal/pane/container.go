package pane

// RootKind distinguishes the two kinds of top-level anchors.
type RootKind uint8

const (
	// WindowRoot anchors the tree directly in a window.
	WindowRoot RootKind = iota
	// TabRoot anchors the tree in one tab of a window.
	TabRoot
)

// Root is the top-level anchor of a pane tree: the window itself or one
// of its tabs. It holds the current root element and the host window that
// displays it.
type Root struct {
	kind    RootKind
	tree    *Tree
	win     Window
	element Element
}

// Kind returns whether this root is a window or tab anchor.
func (r *Root) Kind() RootKind { return r.kind }

// Window returns the host window displaying this root.
func (r *Root) Window() Window { return r.win }

// Element returns the current root element.
func (r *Root) Element() Element { return r.element }

// Container returns a container referencing this root anchor.
func (r *Root) Container() Container { return Container{root: r} }

// Mount installs a surface as the root element. The surface receives
// focus. Mount is only valid on an empty root.
func (r *Root) Mount(s Surface) {
	if !r.element.IsZero() {
		panic("pane: mount on occupied root")
	}
	r.setElement(SurfaceElement(s))
	s.GrabFocus()
}

// Surfaces returns every surface under this root in layout order.
func (r *Root) Surfaces() []Surface {
	return r.element.appendSurfaces(nil)
}

// setElement writes the root element and reattaches the host child.
func (r *Root) setElement(e Element) {
	r.element = e
	r.tree.install(e, Container{root: r})
	r.win.SetRootChild(e.Handle())
}

// Container is a back-reference describing where an element is anchored:
// the window root, a tab root, or a named slot of a parent Split. The
// zero Container is detached.
//
// Following a slot container back to its split and reading the named slot
// always yields the element the container was issued for; this is the
// zipper property that lets any node rewrite its own position in O(1).
type Container struct {
	root  *Root
	split *Split
	slot  SlotName
}

// IsDetached reports whether the container references nothing.
func (c Container) IsDetached() bool {
	return c.root == nil && c.split == nil
}

// Root returns the root anchor, if this container is one.
func (c Container) Root() (*Root, bool) {
	return c.root, c.root != nil
}

// Split returns the owning split, if this container is a slot anchor.
func (c Container) Split() (*Split, bool) {
	return c.split, c.split != nil
}

// Slot returns the slot name for slot anchors.
func (c Container) Slot() SlotName { return c.slot }

// Element returns the element currently stored at the anchor.
func (c Container) Element() Element {
	switch {
	case c.root != nil:
		return c.root.element
	case c.split != nil:
		return c.split.Element(c.slot)
	}
	return Element{}
}

// Window climbs to the host window owning this anchor. Returns nil when
// detached.
func (c Container) Window() Window {
	switch {
	case c.root != nil:
		return c.root.win
	case c.split != nil:
		return c.split.container.Window()
	}
	return nil
}

// Replace writes e into the anchor position, substituting whatever was
// stored there. The host re-attachment is handled by the anchor owner.
func (c Container) Replace(e Element) {
	switch {
	case c.root != nil:
		c.root.setElement(e)
	case c.split != nil:
		c.split.Replace(c.slot, e)
	}
}

// GrabFocus focuses the element stored at the anchor.
func (c Container) GrabFocus() {
	c.Element().GrabFocus()
}
