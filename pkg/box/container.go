// Package box defines the container tree consumed by the layout engine.
//
// A Container carries two groups of fields: the specification set by the
// tree builder (element kind, size dimensions, direction, overflow and
// position policies, spacing) and the calculated geometry populated in
// place by the engine on every calculation. The tree is strictly
// parent-owns-children with no back-pointers; it is acyclic by construction.
package box

import (
	"github.com/go-strut/strut/pkg/geometry"
)

// Container is one node of the layout tree.
type Container struct {
	// Element identifies the semantic kind of this node.
	Element Element
	// Children are laid out inside this container's content box.
	// The parent exclusively owns its children.
	Children []*Container

	// Width and Height are the size specifications; nil means auto.
	Width  Dimension
	Height Dimension

	// Direction selects the main axis for child flow.
	Direction Direction
	// OverflowX and OverflowY are the per-axis overflow policies.
	OverflowX Overflow
	OverflowY Overflow

	// Position controls flow participation; Left/Right/Top/Bottom are the
	// offsets for absolute and fixed placement (nil means unset).
	Position PositionMode
	Left     Dimension
	Right    Dimension
	Top      Dimension
	Bottom   Dimension

	Padding geometry.EdgeInsets
	Margin  geometry.EdgeInsets

	// JustifyContent distributes free main-axis space within each line.
	JustifyContent Justify
	// ColumnGap is the horizontal gap between adjacent items or columns;
	// RowGap is the vertical gap between adjacent items or rows.
	ColumnGap float64
	RowGap    float64

	// FontSize is the text size for Raw and Heading content; 0 means the
	// engine default.
	FontSize float64

	// Hidden nodes keep their place in the tree but consume no space and
	// receive no position.
	Hidden bool

	// Calc holds the geometry computed by the engine. It is absent
	// (zero with presence flags unset) before the first calculation.
	Calc Calculated
}

// Calculated is the resolved geometry of a container.
//
// Width and Height must be set before the container's children are laid
// out; X and Y are written by the position assigner. Placement records the
// wrap line the node was assigned to, and the scrollbar fields record
// reserved thickness added to the right/bottom padding by the resizer.
type Calculated struct {
	Width     float64
	Height    float64
	HasWidth  bool
	HasHeight bool

	X    float64
	Y    float64
	HasX bool
	HasY bool

	Placement Placement

	ScrollbarRight  float64
	ScrollbarBottom float64

	// WidthSquashed and HeightSquashed record that a squash pass assigned
	// the size on that axis; the resizer must not grow it back.
	WidthSquashed  bool
	HeightSquashed bool
}

// SetWidth records a resolved width.
func (c *Calculated) SetWidth(v float64) {
	c.Width = v
	c.HasWidth = true
}

// SetHeight records a resolved height.
func (c *Calculated) SetHeight(v float64) {
	c.Height = v
	c.HasHeight = true
}

// SetOrigin records the resolved top-left corner.
func (c *Calculated) SetOrigin(x, y float64) {
	c.X = x
	c.Y = y
	c.HasX = true
	c.HasY = true
}

// HasSize returns true once both width and height are resolved.
func (c *Calculated) HasSize() bool {
	return c.HasWidth && c.HasHeight
}

// Size returns the resolved size. Both dimensions must be set.
func (c *Calculated) Size() geometry.Size {
	return geometry.Size{Width: c.Width, Height: c.Height}
}

// ResolvedPadding returns the container's padding plus any scrollbar
// reservation applied by the resizer.
func (c *Container) ResolvedPadding() geometry.EdgeInsets {
	p := c.Padding
	p.Right += c.Calc.ScrollbarRight
	p.Bottom += c.Calc.ScrollbarBottom
	return p
}

// ContentSize returns the calculated size minus resolved padding, clamped
// to zero. The container's size must already be resolved.
func (c *Container) ContentSize() geometry.Size {
	return c.ResolvedPadding().Deflate(c.Calc.Size())
}

// ContentOrigin returns the top-left corner of the content box in the same
// coordinate space as Calc.X/Calc.Y.
func (c *Container) ContentOrigin() geometry.Offset {
	p := c.ResolvedPadding()
	return geometry.Offset{X: c.Calc.X + p.Left, Y: c.Calc.Y + p.Top}
}

// MainGap returns the gap between adjacent items along the main axis.
func (c *Container) MainGap() float64 {
	if c.Direction == DirectionRow {
		return c.ColumnGap
	}
	return c.RowGap
}

// CrossGap returns the gap between adjacent wrap lines.
func (c *Container) CrossGap() float64 {
	if c.Direction == DirectionRow {
		return c.RowGap
	}
	return c.ColumnGap
}

// Reset clears all calculated geometry on this container and its
// descendants, returning the tree to its pre-layout state.
func (c *Container) Reset() {
	c.Calc = Calculated{}
	for _, child := range c.Children {
		child.Reset()
	}
}

// Walk visits this container and all descendants depth-first in tree
// order. Returning false from the visitor stops the walk.
func (c *Container) Walk(visit func(*Container) bool) bool {
	if !visit(c) {
		return false
	}
	for _, child := range c.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}
