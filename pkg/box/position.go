package box

import "fmt"

// PositionMode controls whether a container participates in normal flow.
type PositionMode int

const (
	// PositionStatic is normal flow.
	PositionStatic PositionMode = iota
	// PositionRelative is normal flow, and additionally anchors absolute
	// descendants to this container's content box.
	PositionRelative
	// PositionAbsolute removes the container from flow; it is placed
	// against the nearest PositionRelative ancestor's content box.
	PositionAbsolute
	// PositionFixed removes the container from flow; it is placed against
	// the root viewport box, ignoring intervening ancestors.
	PositionFixed
)

// String returns a human-readable representation of the position mode.
func (p PositionMode) String() string {
	switch p {
	case PositionStatic:
		return "static"
	case PositionRelative:
		return "relative"
	case PositionAbsolute:
		return "absolute"
	case PositionFixed:
		return "fixed"
	default:
		return fmt.Sprintf("PositionMode(%d)", int(p))
	}
}

// InFlow returns true if children with this mode consume flow space.
func (p PositionMode) InFlow() bool {
	return p == PositionStatic || p == PositionRelative
}

// Placement records which wrap line a child was placed on.
//
// The zero value is the default placement (no wrapping). Under a Wrap
// overflow policy the engine assigns Row and Col line indices; siblings
// sharing the same Row (row direction) or Col (column direction) were
// placed on the same line.
type Placement struct {
	Wrapped bool
	Row     int
	Col     int
}

// DefaultPlacement is the non-wrapped placement.
var DefaultPlacement = Placement{}

// WrapAt returns a wrapped placement with the given line coordinates.
func WrapAt(row, col int) Placement {
	return Placement{Wrapped: true, Row: row, Col: col}
}

// String returns a human-readable representation of the placement.
func (p Placement) String() string {
	if !p.Wrapped {
		return "default"
	}
	return fmt.Sprintf("wrap(%d,%d)", p.Row, p.Col)
}
