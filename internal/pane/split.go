package pane

import "fmt"

// Split is an interior node of the layout tree: two child elements
// sharing a divider. A split is created only by splitting an existing
// surface and is destroyed exactly when one of its children is removed.
type Split struct {
	tree      *Tree
	widget    Splitter
	orient    Orientation
	container Container
	first     Element
	second    Element
}

// Orientation returns the split axis.
func (sp *Split) Orientation() Orientation { return sp.orient }

// Container returns where this split is anchored.
func (sp *Split) Container() Container { return sp.container }

// First returns the top/left element.
func (sp *Split) First() Element { return sp.first }

// Second returns the bottom/right element.
func (sp *Split) Second() Element { return sp.second }

// Widget returns the host splitter backing this split.
func (sp *Split) Widget() Splitter { return sp.widget }

// Element returns the element in the named slot.
func (sp *Split) Element(slot SlotName) Element {
	switch slot {
	case SlotFirst:
		return sp.first
	case SlotSecond:
		return sp.second
	}
	panic(fmt.Sprintf("pane: invalid slot %d", slot))
}

// Replace writes e into the named slot and re-synchronizes the host
// widget's children. The divider position survives the re-sync: the host
// resets it whenever a child is reattached, so it is read before and
// restored after.
func (sp *Split) Replace(slot SlotName, e Element) {
	pos := sp.widget.Divider()
	switch slot {
	case SlotFirst:
		sp.first = e
	case SlotSecond:
		sp.second = e
	default:
		panic(fmt.Sprintf("pane: invalid slot %d", slot))
	}
	sp.tree.install(e, Container{split: sp, slot: slot})
	sp.syncChildren()
	sp.widget.SetDivider(pos)
}

// RemoveChild removes one child and contracts the tree: the surviving
// child takes over this split's anchor and the split is destroyed. The
// removed element is torn down recursively. Calling this on a split with
// no resolvable container is a no-op (the node is already detached).
//
// remove and keep must be this split's two children; anything else is a
// programming error.
func (sp *Split) RemoveChild(remove, keep Element) {
	if sp.container.IsDetached() {
		return
	}

	rs, rok := sp.slotOf(remove)
	ks, kok := sp.slotOf(keep)
	if !rok || !kok || rs == ks {
		panic("pane: RemoveChild elements do not belong to this split")
	}

	// Both children must be detached before the survivor is reattached
	// elsewhere; the host toolkit corrupts its render target otherwise.
	sp.widget.SetFirst(nil)
	sp.widget.SetSecond(nil)

	anchor := sp.container
	sp.container = Container{}
	sp.first, sp.second = Element{}, Element{}

	anchor.Replace(keep)
	keep.GrabFocus()

	sp.tree.destroyElement(remove)
	sp.tree.alloc.ReleaseSplitter(sp.widget)
}

// GrabFocus delegates focus to the first slot's deepest surface. This is
// the default focus target whenever a split becomes newly visible.
func (sp *Split) GrabFocus() {
	if s := sp.DeepestSurface(SlotFirst); s != nil {
		s.GrabFocus()
	}
}

// DeepestSurface returns the surface reached by recursively following
// side through nested splits.
func (sp *Split) DeepestSurface(side SlotName) Surface {
	return sp.Element(side).DeepestSurface(side)
}

// syncChildren re-attaches both host children from the current slots.
// Both are cleared before either is attached; this ordering is a hard
// correctness requirement of the host toolkit, not an optimization.
func (sp *Split) syncChildren() {
	sp.widget.SetFirst(nil)
	sp.widget.SetSecond(nil)
	sp.widget.SetFirst(sp.first.Handle())
	sp.widget.SetSecond(sp.second.Handle())
}

// slotOf reports which slot holds e.
func (sp *Split) slotOf(e Element) (SlotName, bool) {
	switch {
	case !e.IsZero() && e == sp.first:
		return SlotFirst, true
	case !e.IsZero() && e == sp.second:
		return SlotSecond, true
	}
	return 0, false
}

// parentSlot returns the parent split and the slot this split occupies
// in it, when this split is not anchored at a root.
func (sp *Split) parentSlot() (*Split, SlotName, bool) {
	parent, ok := sp.container.Split()
	if !ok {
		return nil, 0, false
	}
	return parent, sp.container.Slot(), true
}
