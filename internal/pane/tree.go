package pane

import "fmt"

// Tree owns the split layout bookkeeping for one window: the allocator
// used to create surfaces and splitter widgets, and the single
// authoritative Container for every mounted surface.
type Tree struct {
	alloc Allocator
	loc   map[Surface]Container
	roots []*Root
}

// NewTree creates an empty tree backed by the given allocator.
func NewTree(alloc Allocator) *Tree {
	return &Tree{
		alloc: alloc,
		loc:   make(map[Surface]Container),
	}
}

// NewRoot creates a new top-level anchor displayed by win.
func (t *Tree) NewRoot(kind RootKind, win Window) *Root {
	r := &Root{kind: kind, tree: t, win: win}
	t.roots = append(t.roots, r)
	return r
}

// Roots returns the tree's top-level anchors in creation order.
func (t *Tree) Roots() []*Root { return t.roots }

// ContainerOf returns the container anchoring a mounted surface.
func (t *Tree) ContainerOf(s Surface) (Container, bool) {
	c, ok := t.loc[s]
	return c, ok
}

// SplitSurface splits an existing surface in the given direction. A new
// surface is allocated as the sibling's child; a new Split takes over the
// sibling's anchor, holding the sibling in one slot and the new surface
// in the other. The new surface receives input focus.
//
// Allocation failure aborts before any tree mutation.
func (t *Tree) SplitSurface(sibling Surface, dir Direction) (*Split, error) {
	c, ok := t.loc[sibling]
	if !ok {
		return nil, ErrSurfaceNotMounted
	}

	next, err := t.alloc.NewSurface(sibling)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceAllocation, err)
	}

	sp := &Split{
		tree:   t,
		orient: dir.Orientation(),
		widget: t.alloc.NewSplitter(dir.Orientation()),
	}

	sp.first, sp.second = SurfaceElement(sibling), SurfaceElement(next)
	if dir.leading() {
		sp.first, sp.second = sp.second, sp.first
	}
	t.install(sp.first, Container{split: sp, slot: SlotFirst})
	t.install(sp.second, Container{split: sp, slot: SlotSecond})
	sp.syncChildren()

	// The split takes over the sibling's old anchor point.
	c.Replace(SplitElement(sp))

	next.GrabFocus()
	return sp, nil
}

// Neighbors resolves the directional focus targets for a surface. A
// surface mounted alone at a root has no neighbors.
func (t *Tree) Neighbors(s Surface) Neighbors {
	c, ok := t.loc[s]
	if !ok {
		return Neighbors{}
	}
	sp, ok := c.Split()
	if !ok {
		return Neighbors{}
	}
	return sp.DirectionMap(c.Slot())
}

// RemoveSurface removes a surface from the tree, contracting its owning
// split. Removing the sole surface of a root returns ErrLastPane; the
// surrounding application decides what that means.
func (t *Tree) RemoveSurface(s Surface) error {
	c, ok := t.loc[s]
	if !ok {
		return ErrSurfaceNotMounted
	}
	sp, ok := c.Split()
	if !ok {
		return ErrLastPane
	}
	remove := sp.Element(c.Slot())
	keep := sp.Element(c.Slot().Other())
	sp.RemoveChild(remove, keep)
	return nil
}

// DestroyRoot tears down everything under a root and forgets the root
// itself. Used when a whole tab is closed.
func (t *Tree) DestroyRoot(r *Root) {
	if !r.element.IsZero() {
		e := r.element
		r.element = Element{}
		t.destroyElement(e)
	}
	for i, root := range t.roots {
		if root == r {
			t.roots = append(t.roots[:i], t.roots[i+1:]...)
			break
		}
	}
}

// install records the container anchoring an element: surfaces in the
// location index, splits on the node itself.
func (t *Tree) install(e Element, c Container) {
	switch {
	case e.surface != nil:
		t.loc[e.surface] = c
	case e.split != nil:
		e.split.container = c
	}
}

// destroyElement recursively tears down an element: nested splits first,
// then the surfaces themselves.
func (t *Tree) destroyElement(e Element) {
	switch {
	case e.surface != nil:
		delete(t.loc, e.surface)
		e.surface.Destroy()
	case e.split != nil:
		sp := e.split
		sp.container = Container{}
		first, second := sp.first, sp.second
		sp.first, sp.second = Element{}, Element{}
		t.destroyElement(first)
		t.destroyElement(second)
		t.alloc.ReleaseSplitter(sp.widget)
	}
}
