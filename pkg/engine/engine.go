package engine

import (
	"math"
	"sync/atomic"

	"github.com/go-strut/strut/pkg/box"
	"github.com/go-strut/strut/pkg/errors"
	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/text"
)

const (
	// DefaultScrollbarSize is the process-wide scrollbar thickness default.
	DefaultScrollbarSize = 16.0
	// DefaultFontSize is the text size used when a container specifies none.
	DefaultFontSize = 16.0
	// DefaultRowHeight is the table row height used when no cell reports one.
	DefaultRowHeight = 25.0

	// scrollbarTolerance detects an already-applied scrollbar reservation.
	// The exact threshold is not load-bearing; it only has to treat
	// re-applying the same thickness as a no-op.
	scrollbarTolerance = 0.001

	// maxOverflowPasses caps the overflow/resize convergence loop. Every
	// valid step either fixes a wrap boundary or strictly narrows available
	// space, so hitting the cap means a broken invariant, not a big tree.
	maxOverflowPasses = 64
)

// scrollbarBits holds the process-wide scrollbar thickness as float64 bits.
var scrollbarBits atomic.Uint64

func init() {
	scrollbarBits.Store(math.Float64bits(DefaultScrollbarSize))
}

// ScrollbarSize returns the process-wide scrollbar thickness.
func ScrollbarSize() float64 {
	return math.Float64frombits(scrollbarBits.Load())
}

// SetScrollbarSize updates the process-wide scrollbar thickness.
// Callers must not change it while a calculation is running.
func SetScrollbarSize(size float64) {
	scrollbarBits.Store(math.Float64bits(size))
}

// Options configures an Engine. The zero value uses the process-wide
// scrollbar setting, a basicfont-backed measurer and the package defaults
// for font size and table row height.
type Options struct {
	// ScrollbarSize overrides the process-wide scrollbar thickness when
	// positive.
	ScrollbarSize float64
	// Measurer provides text metrics for Raw and Heading leaves.
	Measurer text.Measurer
	// FontSize is the base text size; 0 means DefaultFontSize.
	FontSize float64
	// RowHeight is the fallback table row height; 0 means DefaultRowHeight.
	RowHeight float64
}

// Engine computes box geometry for a container tree. It holds no per-tree
// state: a single Engine may lay out many trees, one call at a time.
// Concurrent calls against the same tree are unsupported.
type Engine struct {
	opts Options
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	if opts.Measurer == nil {
		opts.Measurer = text.NewFaceMeasurer(nil)
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultFontSize
	}
	if opts.RowHeight <= 0 {
		opts.RowHeight = DefaultRowHeight
	}
	return &Engine{opts: opts}
}

// Calc computes geometry for the whole tree rooted at root, mutating the
// tree's calculated fields in place.
//
// The caller must seed root.Calc with the viewport size before the first
// call; the root origin defaults to (0, 0) unless pre-seeded. Calc panics
// with a *errors.LayoutError on precondition violations and malformed
// trees; use Calculate for an error-returning wrapper.
func (e *Engine) Calc(root *box.Container) {
	if root == nil {
		panic(errors.New("engine.Calc", errors.KindPrecondition, "root container is nil"))
	}
	if !root.Calc.HasSize() {
		panic(errors.New("engine.Calc", errors.KindPrecondition,
			"root has no calculated size; seed root.Calc with the viewport "+
				"size (SetWidth/SetHeight) before calling Calc"))
	}
	if !root.Calc.HasX || !root.Calc.HasY {
		root.Calc.SetOrigin(0, 0)
	}
	fr := frame{root: root, anchor: root}
	e.sizeNode(root, fr)
	e.placeNode(root, fr)
}

// Calculate is like Calc but recovers fatal conditions into a structured
// error, reporting it to the global error handler.
func (e *Engine) Calculate(root *box.Container) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		lerr, ok := r.(*errors.LayoutError)
		if !ok {
			lerr = errors.New("engine.Calculate", errors.KindPanic, "%v", r)
			lerr.StackTrace = errors.CaptureStack()
		}
		errors.Report(lerr)
		err = lerr
	}()
	e.Calc(root)
	return nil
}

// scrollbar returns the effective scrollbar thickness for this engine.
func (e *Engine) scrollbar() float64 {
	if e.opts.ScrollbarSize > 0 {
		return e.opts.ScrollbarSize
	}
	return ScrollbarSize()
}

// fontSizeOf returns the effective text size for a container, applying the
// heading scale for heading elements.
func (e *Engine) fontSizeOf(c *box.Container) float64 {
	size := c.FontSize
	if size <= 0 {
		size = e.opts.FontSize
	}
	if c.Element.Kind == box.KindHeading {
		size *= box.HeadingScale(c.Element.Level)
	}
	return size
}

// frame carries per-calculation references down the recursion: the root
// viewport (basis for fixed positioning) and the nearest relative ancestor
// (basis for absolute positioning).
type frame struct {
	root   *box.Container
	anchor *box.Container
}

// childFrame returns the frame for c's children.
func (fr frame) childFrame(c *box.Container) frame {
	if c.Position == box.PositionRelative {
		fr.anchor = c
	}
	return fr
}

// flowChildren returns the children that consume flow space: visible nodes
// whose position mode keeps them in flow.
func flowChildren(c *box.Container) []*box.Container {
	out := make([]*box.Container, 0, len(c.Children))
	for _, child := range c.Children {
		if child.Hidden || !child.Position.InFlow() {
			continue
		}
		out = append(out, child)
	}
	return out
}

// anchoredChildren returns visible absolute- and fixed-positioned children.
func anchoredChildren(c *box.Container) []*box.Container {
	var out []*box.Container
	for _, child := range c.Children {
		if child.Hidden || child.Position.InFlow() {
			continue
		}
		out = append(out, child)
	}
	return out
}

// mainOf returns the component of s along the main axis of direction d.
func mainOf(d box.Direction, s geometry.Size) float64 {
	if d == box.DirectionRow {
		return s.Width
	}
	return s.Height
}

// crossOf returns the component of s along the cross axis of direction d.
func crossOf(d box.Direction, s geometry.Size) float64 {
	if d == box.DirectionRow {
		return s.Height
	}
	return s.Width
}

// mainExtent returns the flow space a child consumes along the main axis,
// including its margins.
func mainExtent(d box.Direction, c *box.Container) float64 {
	if d == box.DirectionRow {
		return c.Calc.Width + c.Margin.Horizontal()
	}
	return c.Calc.Height + c.Margin.Vertical()
}

// crossExtent returns the flow space a child consumes along the cross axis,
// including its margins.
func crossExtent(d box.Direction, c *box.Container) float64 {
	if d == box.DirectionRow {
		return c.Calc.Height + c.Margin.Vertical()
	}
	return c.Calc.Width + c.Margin.Horizontal()
}

// mainDim returns the child's size specification on the main axis of d.
func mainDim(d box.Direction, c *box.Container) box.Dimension {
	if d == box.DirectionRow {
		return c.Width
	}
	return c.Height
}

// crossDim returns the child's size specification on the cross axis of d.
func crossDim(d box.Direction, c *box.Container) box.Dimension {
	if d == box.DirectionRow {
		return c.Height
	}
	return c.Width
}

// setMainSize writes a child's resolved main-axis size.
func setMainSize(d box.Direction, c *box.Container, v float64) {
	if d == box.DirectionRow {
		c.Calc.SetWidth(v)
	} else {
		c.Calc.SetHeight(v)
	}
}

// setCrossSize writes a child's resolved cross-axis size.
func setCrossSize(d box.Direction, c *box.Container, v float64) {
	if d == box.DirectionRow {
		c.Calc.SetHeight(v)
	} else {
		c.Calc.SetWidth(v)
	}
}

// lineIndex returns the wrap line a child was assigned to: the row index
// in row direction, the column index in column direction, 0 for the
// default placement.
func lineIndex(d box.Direction, p box.Placement) int {
	if !p.Wrapped {
		return 0
	}
	if d == box.DirectionRow {
		return p.Row
	}
	return p.Col
}

// groupLines partitions flow children into wrap lines in placement order.
// Children with the default placement form a single line.
func groupLines(d box.Direction, children []*box.Container) [][]*box.Container {
	if len(children) == 0 {
		return nil
	}
	var lines [][]*box.Container
	for _, child := range children {
		idx := lineIndex(d, child.Calc.Placement)
		for len(lines) <= idx {
			lines = append(lines, nil)
		}
		lines[idx] = append(lines[idx], child)
	}
	return lines
}

func clampZero(v float64) float64 {
	return math.Max(0, v)
}
