package engine

import (
	"github.com/go-strut/strut/pkg/box"
)

// distribute splits c's content box among its flow children along the
// main axis.
//
// Children with a main-axis specification resolve it against the content
// box and are subtracted from the remainder; the remainder (after gaps and
// margins) is divided evenly across the auto children. The cross-axis size
// defaults to the container's cross content size unless the child
// specifies its own. Each child's subtree is sized once its box is
// established. Hidden and absolute/fixed children consume no flow space.
func (e *Engine) distribute(c *box.Container, fr frame) {
	flow := flowChildren(c)
	if len(flow) == 0 {
		return
	}

	d := c.Direction
	content := c.ContentSize()
	mainBasis := mainOf(d, content)
	crossBasis := crossOf(d, content)

	remainder := mainBasis
	if n := len(flow); n > 1 {
		remainder -= c.MainGap() * float64(n-1)
	}

	var auto []*box.Container
	for _, child := range flow {
		if d == box.DirectionRow {
			remainder -= child.Margin.Horizontal()
		} else {
			remainder -= child.Margin.Vertical()
		}

		if spec := mainDim(d, child); spec != nil {
			size := clampZero(spec.Resolve(mainBasis))
			setMainSize(d, child, size)
			remainder -= size
		} else {
			auto = append(auto, child)
		}

		if spec := crossDim(d, child); spec != nil {
			setCrossSize(d, child, clampZero(spec.Resolve(crossBasis)))
		} else {
			margin := child.Margin.Vertical()
			if d == box.DirectionColumn {
				margin = child.Margin.Horizontal()
			}
			setCrossSize(d, child, clampZero(crossBasis-margin))
		}
	}

	if len(auto) > 0 {
		share := clampZero(remainder) / float64(len(auto))
		for _, child := range auto {
			setMainSize(d, child, share)
		}
	}

	for _, child := range flow {
		e.sizeNode(child, fr)
	}
}
