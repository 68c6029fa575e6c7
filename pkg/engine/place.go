package engine

import (
	"github.com/go-strut/strut/pkg/box"
)

// placeNode converts the size pass's wrap-line assignments into final
// coordinates for c's children, then recurses. Coordinates are
// viewport-global: the cursor starts at c's own content-box origin.
func (e *Engine) placeNode(c *box.Container, fr frame) {
	fr = fr.childFrame(c)
	if c.Element.Kind == box.KindTable {
		e.placeTable(c, fr)
		return
	}

	flow := flowChildren(c)
	d := c.Direction
	origin := c.ContentOrigin()
	avail := mainOf(d, c.ContentSize())
	gap := c.MainGap()

	mainStart := origin.X
	crossCursor := origin.Y
	if d == box.DirectionColumn {
		mainStart = origin.Y
		crossCursor = origin.X
	}

	for _, line := range groupLines(d, flow) {
		if len(line) == 0 {
			continue
		}
		used := 0.0
		for i, child := range line {
			if i > 0 {
				used += gap
			}
			used += mainExtent(d, child)
		}
		lead, between := justifySpacing(c.JustifyContent, clampZero(avail-used), len(line))

		cursor := mainStart + lead
		lineCross := 0.0
		for i, child := range line {
			if i > 0 {
				cursor += gap + between
			}
			mainPos := cursor
			crossPos := crossCursor
			if d == box.DirectionRow {
				child.Calc.SetOrigin(mainPos+child.Margin.Left, crossPos+child.Margin.Top)
			} else {
				child.Calc.SetOrigin(crossPos+child.Margin.Left, mainPos+child.Margin.Top)
			}
			cursor += mainExtent(d, child)
			if ce := crossExtent(d, child); ce > lineCross {
				lineCross = ce
			}
		}
		crossCursor += lineCross + c.CrossGap()
	}

	e.placeAnchored(c, fr)
	for _, child := range flow {
		e.placeNode(child, fr)
	}
}

// justifySpacing returns the leading offset and the extra space inserted
// between consecutive items for the given free main-axis space.
func justifySpacing(j box.Justify, free float64, count int) (lead, between float64) {
	if count == 0 {
		return 0, 0
	}
	switch j {
	case box.JustifyCenter:
		lead = free / 2
	case box.JustifySpaceBetween:
		if count > 1 {
			between = free / float64(count-1)
		}
	case box.JustifySpaceEvenly:
		between = free / float64(count+1)
		lead = between
	}
	return lead, between
}

// placeAnchored lays out absolute- and fixed-positioned children. They
// consume no flow space; an absolute child resolves against the nearest
// relative ancestor's content box, a fixed child against the root
// viewport. An unresolvable size collapses to a 0x0 box at the offset
// origin.
func (e *Engine) placeAnchored(c *box.Container, fr frame) {
	for _, child := range anchoredChildren(c) {
		anchor := fr.anchor
		if child.Position == box.PositionFixed {
			anchor = fr.root
		}
		basis := anchor.ContentSize()
		origin := anchor.ContentOrigin()

		width := 0.0
		if child.Width != nil {
			width = clampZero(child.Width.Resolve(basis.Width))
		}
		height := 0.0
		if child.Height != nil {
			height = clampZero(child.Height.Resolve(basis.Height))
		}
		child.Calc.SetWidth(width)
		child.Calc.SetHeight(height)

		x := origin.X
		switch {
		case child.Left != nil:
			x = origin.X + child.Left.Resolve(basis.Width)
		case child.Right != nil:
			x = origin.X + basis.Width - child.Right.Resolve(basis.Width) - width
		}
		y := origin.Y
		switch {
		case child.Top != nil:
			y = origin.Y + child.Top.Resolve(basis.Height)
		case child.Bottom != nil:
			y = origin.Y + basis.Height - child.Bottom.Resolve(basis.Height) - height
		}
		child.Calc.SetOrigin(x, y)
		child.Calc.Placement = box.DefaultPlacement

		e.sizeNode(child, fr)
		e.placeNode(child, fr)
	}
}
