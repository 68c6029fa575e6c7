package box

import "fmt"

// Overflow controls what happens when a container's content exceeds its
// resolved size on one axis.
//
// OverflowExpand is the zero value: content is never clipped and an
// auto-sized container grows to fit it. The remaining policies either
// reserve room for a scrollbar (Scroll always, Auto only when content
// actually overflows), shrink unsized children to fit (Squash), or break
// children into wrap lines (Wrap).
type Overflow int

const (
	// OverflowExpand lets content overflow freely; an auto-sized container
	// grows to its contained size.
	OverflowExpand Overflow = iota
	// OverflowSquash shrinks unsized children so content fits.
	OverflowSquash
	// OverflowScroll always reserves scrollbar thickness on this axis.
	OverflowScroll
	// OverflowAuto reserves scrollbar thickness only when content overflows.
	OverflowAuto
	// OverflowWrap breaks children into wrap lines along this axis.
	OverflowWrap
)

// String returns a human-readable representation of the overflow policy.
func (o Overflow) String() string {
	switch o {
	case OverflowExpand:
		return "expand"
	case OverflowSquash:
		return "squash"
	case OverflowScroll:
		return "scroll"
	case OverflowAuto:
		return "auto"
	case OverflowWrap:
		return "wrap"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// Direction defines a container's main axis.
type Direction int

const (
	// DirectionRow lays out children left to right; the main axis is horizontal.
	DirectionRow Direction = iota
	// DirectionColumn lays out children top to bottom; the main axis is vertical.
	DirectionColumn
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionRow:
		return "row"
	case DirectionColumn:
		return "column"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Justify controls how free main-axis space is distributed within a line.
type Justify int

const (
	// JustifyStart packs children at the start of the line.
	JustifyStart Justify = iota
	// JustifyCenter centers the line's children as a group.
	JustifyCenter
	// JustifySpaceBetween inserts equal space between consecutive children.
	// A single child behaves as JustifyStart.
	JustifySpaceBetween
	// JustifySpaceEvenly inserts equal space before, between and after children.
	JustifySpaceEvenly
)

// String returns a human-readable representation of the justification.
func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space_between"
	case JustifySpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("Justify(%d)", int(j))
	}
}
