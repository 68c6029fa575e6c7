package engine

import (
	"math"

	"github.com/go-strut/strut/pkg/box"
	"github.com/go-strut/strut/pkg/geometry"
)

// handleOverflow runs one overflow/resize pass over c's subtree and
// reports whether anything shifted. The caller repeats it until it
// returns false: wrap assignments and size reservations feed back into
// each other (a reserved scrollbar narrows the content box, which can
// move a wrap break, which changes the contained size), so a single pass
// is not enough.
func (e *Engine) handleOverflow(c *box.Container) bool {
	changed := false
	for _, child := range flowChildren(c) {
		if e.handleOverflow(child) {
			changed = true
		}
	}
	if e.assignWrapLines(c) {
		changed = true
	}
	if e.reconcileSize(c) {
		changed = true
	}
	return changed
}

// wrapsMain returns true if c breaks children into lines along its main axis.
func wrapsMain(c *box.Container) bool {
	if c.Direction == box.DirectionRow {
		return c.OverflowX == box.OverflowWrap
	}
	return c.OverflowY == box.OverflowWrap
}

// assignWrapLines classifies flow children into wrap lines and reports
// whether any placement changed. A placement is only overwritten when it
// differs from the recorded one; that signal drives the outer fixed-point
// loop.
func (e *Engine) assignWrapLines(c *box.Container) bool {
	flow := flowChildren(c)
	changed := false

	if !wrapsMain(c) {
		for _, child := range flow {
			if child.Calc.Placement != box.DefaultPlacement {
				child.Calc.Placement = box.DefaultPlacement
				changed = true
			}
		}
		return changed
	}

	d := c.Direction
	limit := mainOf(d, c.ContentSize())
	gap := c.MainGap()

	cursor := 0.0
	line := 0
	index := 0
	for _, child := range flow {
		extent := mainExtent(d, child)
		lead := 0.0
		if cursor > 0 {
			lead = gap
		}
		if cursor > 0 && cursor+lead+extent > limit {
			line++
			index = 0
			cursor = 0
			lead = 0
		}

		var placement box.Placement
		if d == box.DirectionRow {
			placement = box.WrapAt(line, index)
		} else {
			placement = box.WrapAt(index, line)
		}
		if child.Calc.Placement != placement {
			child.Calc.Placement = placement
			changed = true
		}

		cursor += lead + extent
		index++
	}
	return changed
}

// reconcileSize compares c's contained content size against its available
// content box and reacts per the overflow policy table: reserve scrollbar
// thickness (Scroll always, Auto on overflow), grow an auto-sized Expand
// container, or shrink unsized children to fit (Squash, and the wrap
// cross axis). Reports whether anything changed.
func (e *Engine) reconcileSize(c *box.Container) bool {
	changed := false
	content := c.ContentSize()
	contained := e.containedSize(c, content)
	sb := e.scrollbar()

	// Vertical content overflow reserves a vertical scrollbar on the right.
	switch c.OverflowY {
	case box.OverflowScroll:
		if e.reserveScrollbar(&c.Calc.ScrollbarRight, sb) {
			changed = true
		}
	case box.OverflowAuto:
		if contained.Height > content.Height+geometry.Epsilon {
			if e.reserveScrollbar(&c.Calc.ScrollbarRight, sb) {
				changed = true
			}
		}
	case box.OverflowExpand:
		if c.Height == nil && !c.Calc.HeightSquashed {
			want := contained.Height + c.ResolvedPadding().Vertical()
			if want > c.Calc.Height+geometry.Epsilon {
				c.Calc.SetHeight(want)
				changed = true
			}
		}
	}

	// Horizontal content overflow reserves a horizontal scrollbar at the bottom.
	switch c.OverflowX {
	case box.OverflowScroll:
		if e.reserveScrollbar(&c.Calc.ScrollbarBottom, sb) {
			changed = true
		}
	case box.OverflowAuto:
		if contained.Width > content.Width+geometry.Epsilon {
			if e.reserveScrollbar(&c.Calc.ScrollbarBottom, sb) {
				changed = true
			}
		}
	case box.OverflowExpand:
		if c.Width == nil && !c.Calc.WidthSquashed {
			want := contained.Width + c.ResolvedPadding().Horizontal()
			if want > c.Calc.Width+geometry.Epsilon {
				c.Calc.SetWidth(want)
				changed = true
			}
		}
	}

	if e.squashToFit(c, contained) {
		changed = true
	}
	return changed
}

// reserveScrollbar applies a scrollbar reservation once. Re-applying the
// same thickness within tolerance is a no-op; that equality guard keeps
// the fixed point from oscillating.
func (e *Engine) reserveScrollbar(slot *float64, thickness float64) bool {
	if math.Abs(*slot-thickness) <= scrollbarTolerance {
		return false
	}
	*slot = thickness
	return true
}

// squashToFit redistributes unsized children when content exceeds the
// available box under a Squash policy, or on the cross axis of a wrapping
// container (each unsized child gets an even share of the cross space per
// wrap line).
func (e *Engine) squashToFit(c *box.Container, contained geometry.Size) bool {
	d := c.Direction
	flow := flowChildren(c)
	if len(flow) == 0 {
		return false
	}
	content := c.ContentSize()
	lines := groupLines(d, flow)
	changed := false

	crossPolicy := c.OverflowY
	mainPolicy := c.OverflowX
	if d == box.DirectionColumn {
		crossPolicy = c.OverflowX
		mainPolicy = c.OverflowY
	}

	crossAvail := crossOf(d, content)
	crossContained := crossOf(d, contained)
	if (crossPolicy == box.OverflowSquash || wrapsMain(c)) &&
		crossAvail < crossContained-geometry.Epsilon {
		lineCount := len(lines)
		if lineCount > 0 {
			usable := crossAvail - c.CrossGap()*float64(lineCount-1)
			share := clampZero(usable) / float64(lineCount)
			for _, child := range flow {
				if crossDim(d, child) != nil {
					continue
				}
				margin := child.Margin.Vertical()
				if d == box.DirectionColumn {
					margin = child.Margin.Horizontal()
				}
				target := clampZero(share - margin)
				if d == box.DirectionRow {
					child.Calc.HeightSquashed = true
				} else {
					child.Calc.WidthSquashed = true
				}
				current := crossOf(d, child.Calc.Size())
				if !geometry.FloatEqual(current, target) {
					setCrossSize(d, child, target)
					changed = true
					e.reconcileSize(child)
				}
			}
		}
	}

	mainAvail := mainOf(d, content)
	mainContained := mainOf(d, contained)
	if mainPolicy == box.OverflowSquash && mainAvail < mainContained-geometry.Epsilon {
		remainder := mainAvail
		if n := len(flow); n > 1 {
			remainder -= c.MainGap() * float64(n-1)
		}
		var unsized []*box.Container
		for _, child := range flow {
			if d == box.DirectionRow {
				remainder -= child.Margin.Horizontal()
			} else {
				remainder -= child.Margin.Vertical()
			}
			if mainDim(d, child) != nil {
				remainder -= mainOf(d, child.Calc.Size())
			} else {
				unsized = append(unsized, child)
			}
		}
		if len(unsized) > 0 {
			share := clampZero(remainder) / float64(len(unsized))
			for _, child := range unsized {
				if d == box.DirectionRow {
					child.Calc.WidthSquashed = true
				} else {
					child.Calc.HeightSquashed = true
				}
				current := mainOf(d, child.Calc.Size())
				if !geometry.FloatEqual(current, share) {
					setMainSize(d, child, share)
					changed = true
					e.reconcileSize(child)
				}
			}
		}
	}

	return changed
}

// containedSize computes the extent of c's content: per wrap line, the sum
// of main-axis extents (with gaps) and the line's max cross extent; lines
// then sum on the cross axis. Text leaves measure their content against
// the available width.
func (e *Engine) containedSize(c *box.Container, content geometry.Size) geometry.Size {
	flow := flowChildren(c)
	if len(flow) == 0 {
		if c.Element.IsText() {
			return e.textSize(c, content.Width)
		}
		return geometry.Size{}
	}

	d := c.Direction
	mainMax := 0.0
	crossTotal := 0.0
	counted := 0
	for _, line := range groupLines(d, flow) {
		if len(line) == 0 {
			continue
		}
		lineMain := 0.0
		lineCross := 0.0
		for i, child := range line {
			if i > 0 {
				lineMain += c.MainGap()
			}
			lineMain += mainExtent(d, child)
			if ce := crossExtent(d, child); ce > lineCross {
				lineCross = ce
			}
		}
		if lineMain > mainMax {
			mainMax = lineMain
		}
		if counted > 0 {
			crossTotal += c.CrossGap()
		}
		crossTotal += lineCross
		counted++
	}

	if d == box.DirectionRow {
		return geometry.Size{Width: mainMax, Height: crossTotal}
	}
	return geometry.Size{Width: crossTotal, Height: mainMax}
}

// textSize measures a text leaf wrapped to the given width.
func (e *Engine) textSize(c *box.Container, wrapWidth float64) geometry.Size {
	lines := e.opts.Measurer.MeasureText(c.Element.Text, e.fontSizeOf(c), wrapWidth)
	var out geometry.Size
	for _, line := range lines {
		if line.Width > out.Width {
			out.Width = line.Width
		}
		out.Height += line.Height
	}
	return out
}
