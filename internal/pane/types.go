package pane

// Handle is an opaque display handle understood by the host toolkit.
// Surfaces and splitter widgets expose one so they can be attached as
// children of other widgets.
type Handle any

// Orientation is the axis of a split.
type Orientation uint8

const (
	// Horizontal places the two children side by side.
	Horizontal Orientation = iota
	// Vertical stacks the two children.
	Vertical
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}

// SlotName identifies one of the two positions within a Split. The first
// slot is the one nearer the window origin (top or left).
type SlotName uint8

const (
	// SlotFirst is the top/left slot of a split.
	SlotFirst SlotName = iota
	// SlotSecond is the bottom/right slot of a split.
	SlotSecond
)

// Other returns the opposite slot.
func (s SlotName) Other() SlotName {
	if s == SlotFirst {
		return SlotSecond
	}
	return SlotFirst
}

// String returns a human-readable slot name.
func (s SlotName) String() string {
	switch s {
	case SlotFirst:
		return "first"
	case SlotSecond:
		return "second"
	}
	return "unknown"
}

// Direction is a split or navigation direction.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Orientation returns the split axis implied by the direction:
// left/right produce side-by-side children, up/down stacked ones.
func (d Direction) Orientation() Orientation {
	switch d {
	case DirLeft, DirRight:
		return Horizontal
	default:
		return Vertical
	}
}

// leading reports whether a split in this direction places the new
// surface in the first slot (before the sibling).
func (d Direction) leading() bool {
	return d == DirLeft || d == DirUp
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "unknown"
}
