package engine

import (
	"fmt"
	"strings"

	"github.com/go-strut/strut/pkg/box"
)

// Dump renders the calculated geometry of a tree as an indented text
// outline, one node per line. It is a debugging aid for backends and the
// inspector CLI; the format is not a stable interface.
func Dump(root *box.Container) string {
	var sb strings.Builder
	dumpNode(&sb, root, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, c *box.Container, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(c.Element.Kind.String())
	if c.Calc.HasSize() {
		fmt.Fprintf(sb, " %gx%g", c.Calc.Width, c.Calc.Height)
	} else {
		sb.WriteString(" (unsized)")
	}
	if c.Calc.HasX && c.Calc.HasY {
		fmt.Fprintf(sb, " @(%g,%g)", c.Calc.X, c.Calc.Y)
	}
	if p := c.Calc.Placement; p.Wrapped {
		sb.WriteString(" " + p.String())
	}
	if c.Calc.ScrollbarRight > 0 || c.Calc.ScrollbarBottom > 0 {
		fmt.Fprintf(sb, " scrollbar(r=%g,b=%g)", c.Calc.ScrollbarRight, c.Calc.ScrollbarBottom)
	}
	if c.Hidden {
		sb.WriteString(" hidden")
	}
	sb.WriteString("\n")
	for _, child := range c.Children {
		dumpNode(sb, child, depth+1)
	}
}
