package pane

// Element is the tagged value occupying a split slot or a root: either a
// Surface or a nested *Split. The zero Element is empty and only appears
// transiently during tree mutation; a live Split always has both slots
// occupied.
type Element struct {
	surface Surface
	split   *Split
}

// SurfaceElement wraps a surface as an element.
func SurfaceElement(s Surface) Element {
	return Element{surface: s}
}

// SplitElement wraps a split as an element.
func SplitElement(sp *Split) Element {
	return Element{split: sp}
}

// IsZero reports whether the element holds nothing.
func (e Element) IsZero() bool {
	return e.surface == nil && e.split == nil
}

// Surface returns the wrapped surface, if any.
func (e Element) Surface() (Surface, bool) {
	return e.surface, e.surface != nil
}

// Split returns the wrapped split, if any.
func (e Element) Split() (*Split, bool) {
	return e.split, e.split != nil
}

// Handle returns the display handle of the element's payload.
func (e Element) Handle() Handle {
	switch {
	case e.surface != nil:
		return e.surface.DisplayHandle()
	case e.split != nil:
		return e.split.widget.Handle()
	}
	return nil
}

// GrabFocus gives focus to the element: a surface directly, a split via
// its deepest first surface.
func (e Element) GrabFocus() {
	switch {
	case e.surface != nil:
		e.surface.GrabFocus()
	case e.split != nil:
		e.split.GrabFocus()
	}
}

// DeepestSurface returns the surface reached by recursively following
// side through nested splits. Returns nil for an empty element.
func (e Element) DeepestSurface(side SlotName) Surface {
	switch {
	case e.surface != nil:
		return e.surface
	case e.split != nil:
		return e.split.Element(side).DeepestSurface(side)
	}
	return nil
}

// appendSurfaces appends the element's surfaces to dst in layout order.
func (e Element) appendSurfaces(dst []Surface) []Surface {
	switch {
	case e.surface != nil:
		return append(dst, e.surface)
	case e.split != nil:
		dst = e.split.first.appendSurfaces(dst)
		return e.split.second.appendSurfaces(dst)
	}
	return dst
}
