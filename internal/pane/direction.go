package pane

// Neighbors holds the resolved focus target for each logical direction.
// A nil entry means the direction has no target from the queried pane.
type Neighbors struct {
	Previous Surface
	Next     Surface
	Top      Surface
	Bottom   Surface
	Left     Surface
	Right    Surface
}

// Get returns the neighbor for a navigation direction.
func (n Neighbors) Get(d Direction) Surface {
	switch d {
	case DirLeft:
		return n.Left
	case DirRight:
		return n.Right
	case DirUp:
		return n.Top
	default:
		return n.Bottom
	}
}

// DirectionMap resolves the six logical directions for the pane in the
// given slot of this split. Six directions collapse onto two structural
// axes because splits are binary:
//
//   - previous, top and left all resolve to the deepest surface on the
//     other side of the nearest ancestor split. This means left from a
//     second-slot pane can skip past its own sibling; the coarseness is
//     inherited behavior and is kept rather than corrected.
//   - next/bottom/right resolve within this split's own other slot, to
//     that subtree's deepest surface on its first side.
func (sp *Split) DirectionMap(from SlotName) Neighbors {
	var n Neighbors

	if prev := sp.ancestorNeighbor(); prev != nil {
		n.Previous, n.Top, n.Left = prev, prev, prev
	}

	if next := sp.Element(from.Other()).DeepestSurface(SlotFirst); next != nil {
		n.Next, n.Bottom, n.Right = next, next, next
	}

	return n
}

// ancestorNeighbor climbs one level and descends into the slot of the
// parent split this split does not occupy, always staying on that side.
// Returns nil when the split is anchored at a root.
func (sp *Split) ancestorNeighbor() Surface {
	parent, side, ok := sp.parentSlot()
	if !ok {
		return nil
	}
	other := side.Other()
	return parent.Element(other).DeepestSurface(other)
}
