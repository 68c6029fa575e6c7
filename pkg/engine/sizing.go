package engine

import (
	"github.com/go-strut/strut/pkg/box"
	"github.com/go-strut/strut/pkg/errors"
	"github.com/go-strut/strut/pkg/geometry"
)

// sizeNode resolves the sizes and wrap placements of c's subtree. The
// container's own size must already be resolved; positions are written by
// the subsequent place pass.
func (e *Engine) sizeNode(c *box.Container, fr frame) {
	if !c.Calc.HasSize() {
		panic(errors.New("engine.sizeNode", errors.KindPrecondition,
			"%s entered the sizing pass without a resolved size", c.Element.Kind))
	}

	// Scrollbar reservations are add-only within one convergence loop;
	// start each calculation from a clean slate so repeated Calc calls are
	// idempotent.
	c.Calc.ScrollbarRight = 0
	c.Calc.ScrollbarBottom = 0
	c.Calc.WidthSquashed = false
	c.Calc.HeightSquashed = false

	if c.Element.Kind == box.KindTable {
		e.sizeTable(c, fr)
		return
	}

	fr = fr.childFrame(c)
	e.resolveFixedSizes(c)
	e.distribute(c, fr)

	passes := 0
	for e.handleOverflow(c) {
		passes++
		if passes >= maxOverflowPasses {
			panic(errors.New("engine.sizeNode", errors.KindInternal,
				"overflow resolution did not converge after %d passes on %s",
				maxOverflowPasses, c.Element.Kind))
		}
	}
}

// resolveFixedSizes is the top-down sizing pass: fixed-number dimensions
// are written to the calculated size directly, overwriting any prior
// value. Percentage and calc-expression specs need a resolved container
// basis and are resolved during distribution instead.
func (e *Engine) resolveFixedSizes(c *box.Container) {
	for _, child := range c.Children {
		if w, ok := box.FixedValue(child.Width); ok {
			child.Calc.SetWidth(clampZero(w))
		}
		if h, ok := box.FixedValue(child.Height); ok {
			child.Calc.SetHeight(clampZero(h))
		}
	}
}

// naturalSize computes a node's content-driven size before remainder
// distribution: explicit specs resolve against the given basis, text
// leaves measure their content unwrapped, and containers combine child
// natural sizes along their direction. Only sizing recurses here, never
// full layout.
func (e *Engine) naturalSize(c *box.Container, basis geometry.Size) geometry.Size {
	var out geometry.Size

	switch {
	case c.Element.IsText():
		lines := e.opts.Measurer.MeasureText(c.Element.Text, e.fontSizeOf(c), 0)
		for _, line := range lines {
			if line.Width > out.Width {
				out.Width = line.Width
			}
			out.Height += line.Height
		}
	default:
		flow := flowChildren(c)
		inner := geometry.Size{}
		for i, child := range flow {
			childSize := e.naturalSize(child, basis)
			if c.Direction == box.DirectionRow {
				inner.Width += childSize.Width + child.Margin.Horizontal()
				if i > 0 {
					inner.Width += c.MainGap()
				}
				if h := childSize.Height + child.Margin.Vertical(); h > inner.Height {
					inner.Height = h
				}
			} else {
				inner.Height += childSize.Height + child.Margin.Vertical()
				if i > 0 {
					inner.Height += c.MainGap()
				}
				if w := childSize.Width + child.Margin.Horizontal(); w > inner.Width {
					inner.Width = w
				}
			}
		}
		out = inner
	}

	out.Width = clampZero(out.Width + c.Padding.Horizontal())
	out.Height = clampZero(out.Height + c.Padding.Vertical())

	if w := c.Width; w != nil {
		out.Width = clampZero(w.Resolve(basis.Width))
	}
	if h := c.Height; h != nil {
		out.Height = clampZero(h.Resolve(basis.Height))
	}
	return out
}
