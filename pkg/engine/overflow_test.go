package engine

import (
	"testing"

	"github.com/go-strut/strut/pkg/box"
	"github.com/go-strut/strut/pkg/geometry"
)

func checkPlacement(t *testing.T, name string, c *box.Container, want box.Placement) {
	t.Helper()
	if c.Calc.Placement != want {
		t.Errorf("%s: placement = %s, want %s", name, c.Calc.Placement, want)
	}
}

// TestWrap_BreaksAndRedistributesCrossSpace exercises the full wrap
// pipeline: three 25-wide children in a 50-wide, 40-tall row break into
// two lines, and the fixed cross space is split evenly between them.
func TestWrap_BreaksAndRedistributesCrossSpace(t *testing.T) {
	a := &box.Container{Width: box.Fixed(25)}
	b := &box.Container{Width: box.Fixed(25)}
	c := &box.Container{Width: box.Fixed(25)}
	root := viewport(50, 40, a, b, c)
	root.Height = box.Fixed(40)
	root.OverflowX = box.OverflowWrap

	testEngine().Calc(root)

	checkPlacement(t, "first", a, box.WrapAt(0, 0))
	checkPlacement(t, "second", b, box.WrapAt(0, 1))
	checkPlacement(t, "third", c, box.WrapAt(1, 0))

	checkGeometry(t, "first", a, 25, 20, 0, 0)
	checkGeometry(t, "second", b, 25, 20, 25, 0)
	checkGeometry(t, "third", c, 25, 20, 0, 20)
}

func TestWrap_ExactFitDoesNotBreak(t *testing.T) {
	a := &box.Container{Width: box.Fixed(25), Height: box.Fixed(10)}
	b := &box.Container{Width: box.Fixed(25), Height: box.Fixed(10)}
	root := viewport(50, 10, a, b)
	root.Height = box.Fixed(10)
	root.OverflowX = box.OverflowWrap

	testEngine().Calc(root)

	checkPlacement(t, "first", a, box.WrapAt(0, 0))
	checkPlacement(t, "second", b, box.WrapAt(0, 1))
}

func TestWrap_OversizedChildGetsItsOwnLine(t *testing.T) {
	big := &box.Container{Width: box.Fixed(80), Height: box.Fixed(10)}
	small := &box.Container{Width: box.Fixed(30), Height: box.Fixed(10)}
	root := viewport(50, 20, big, small)
	root.Height = box.Fixed(20)
	root.OverflowX = box.OverflowWrap

	testEngine().Calc(root)

	// The first child never breaks, even when wider than the line.
	checkPlacement(t, "big", big, box.WrapAt(0, 0))
	checkPlacement(t, "small", small, box.WrapAt(1, 0))
}

func TestWrap_LineAssignments(t *testing.T) {
	var children []*box.Container
	for i := 0; i < 9; i++ {
		children = append(children, fixedBox(30, 10))
	}
	root := viewport(100, 30, children...)
	root.Height = box.Fixed(30)
	root.OverflowX = box.OverflowWrap

	testEngine().Calc(root)

	for i, child := range children {
		want := box.WrapAt(i/3, i%3)
		checkPlacement(t, "child", child, want)
		x := float64(i%3) * 30
		y := float64(i/3) * 10
		checkGeometry(t, "child", child, 30, 10, x, y)
	}
}

func TestWrap_ColumnDirection(t *testing.T) {
	a := fixedBox(20, 40)
	b := fixedBox(20, 40)
	c := fixedBox(20, 40)
	root := viewport(40, 100, a, b, c)
	root.Width = box.Fixed(40)
	root.Direction = box.DirectionColumn
	root.OverflowY = box.OverflowWrap

	testEngine().Calc(root)

	checkPlacement(t, "first", a, box.WrapAt(0, 0))
	checkPlacement(t, "second", b, box.WrapAt(1, 0))
	checkPlacement(t, "third", c, box.WrapAt(0, 1))

	checkGeometry(t, "first", a, 20, 40, 0, 0)
	checkGeometry(t, "second", b, 20, 40, 0, 40)
	checkGeometry(t, "third", c, 20, 40, 20, 0)
}

func TestWrap_GapBetweenLines(t *testing.T) {
	a := &box.Container{Width: box.Fixed(30), Height: box.Fixed(10)}
	b := &box.Container{Width: box.Fixed(30), Height: box.Fixed(10)}
	root := viewport(50, 30, a, b)
	root.Height = box.Fixed(30)
	root.OverflowX = box.OverflowWrap
	root.RowGap = 5

	testEngine().Calc(root)

	checkGeometry(t, "first", a, 30, 10, 0, 0)
	checkGeometry(t, "second", b, 30, 10, 0, 15)
}

func TestOverflow_ExpandGrowsAutoContainer(t *testing.T) {
	inner := fixedBox(10, 120)
	child := &box.Container{Width: box.Fixed(50), Children: []*box.Container{inner}}
	root := viewport(100, 80, child)
	root.Height = box.Fixed(80)

	testEngine().Calc(root)

	// The auto-height child grows to contain its content, overflowing
	// the fixed-height root.
	if !geometry.FloatEqual(child.Calc.Height, 120) {
		t.Errorf("child height = %g, want 120", child.Calc.Height)
	}
	if !geometry.FloatEqual(root.Calc.Height, 80) {
		t.Errorf("root height = %g, want the fixed 80", root.Calc.Height)
	}
}

func TestOverflow_WrapGrowsUnconstrainedCross(t *testing.T) {
	a := &box.Container{Width: box.Fixed(25), Height: box.Fixed(30)}
	b := &box.Container{Width: box.Fixed(25), Height: box.Fixed(30)}
	c := &box.Container{Width: box.Fixed(25), Height: box.Fixed(30)}
	wrap := &box.Container{
		Width:     box.Fixed(50),
		OverflowX: box.OverflowWrap,
		Children:  []*box.Container{a, b, c},
	}
	root := viewport(200, 50, wrap)
	root.Height = box.Fixed(50)

	testEngine().Calc(root)

	// Two lines of fixed 30-tall children exceed the distributed height;
	// the auto-height container expands to hold both instead of squashing
	// them.
	if !geometry.FloatEqual(wrap.Calc.Height, 60) {
		t.Errorf("wrap height = %g, want 60", wrap.Calc.Height)
	}
	checkGeometry(t, "third", c, 25, 30, 0, 30)
}

func TestOverflow_ScrollAlwaysReserves(t *testing.T) {
	child := &box.Container{Width: box.Fixed(80), Height: box.Fixed(80), OverflowY: box.OverflowScroll}
	root := viewport(100, 100, child)

	testEngine().Calc(root)

	if !geometry.FloatEqual(child.Calc.ScrollbarRight, 16) {
		t.Errorf("ScrollbarRight = %g, want 16", child.Calc.ScrollbarRight)
	}
	if got := child.ContentSize().Width; !geometry.FloatEqual(got, 64) {
		t.Errorf("content width = %g, want 64", got)
	}
}

func TestOverflow_AutoReservesOnlyOnOverflow(t *testing.T) {
	tall := fixedBox(10, 200)
	overflowing := &box.Container{Width: box.Fixed(80), Height: box.Fixed(80), OverflowY: box.OverflowAuto, Children: []*box.Container{tall}}
	short := fixedBox(10, 10)
	fitting := &box.Container{Width: box.Fixed(80), Height: box.Fixed(80), OverflowY: box.OverflowAuto, Children: []*box.Container{short}}
	root := viewport(200, 100, overflowing, fitting)

	testEngine().Calc(root)

	if !geometry.FloatEqual(overflowing.Calc.ScrollbarRight, 16) {
		t.Errorf("overflowing container reserved %g, want 16", overflowing.Calc.ScrollbarRight)
	}
	if fitting.Calc.ScrollbarRight != 0 {
		t.Errorf("fitting container reserved %g, want 0", fitting.Calc.ScrollbarRight)
	}
}

func TestOverflow_HorizontalScrollReservesBottom(t *testing.T) {
	child := &box.Container{Width: box.Fixed(80), Height: box.Fixed(80), OverflowX: box.OverflowScroll}
	root := viewport(100, 100, child)

	testEngine().Calc(root)

	if !geometry.FloatEqual(child.Calc.ScrollbarBottom, 16) {
		t.Errorf("ScrollbarBottom = %g, want 16", child.Calc.ScrollbarBottom)
	}
	if got := child.ContentSize().Height; !geometry.FloatEqual(got, 64) {
		t.Errorf("content height = %g, want 64", got)
	}
}

// TestOverflow_ScrollbarShiftsWrapBreaks drives the scrollbar/wrap feedback
// loop: reserving the vertical scrollbar narrows the content box, which
// moves a wrap break that fit before the reservation.
func TestOverflow_ScrollbarShiftsWrapBreaks(t *testing.T) {
	a := fixedBox(50, 10)
	b := fixedBox(50, 10)
	c := fixedBox(50, 10)
	child := &box.Container{
		Width:     box.Fixed(100),
		Height:    box.Fixed(40),
		OverflowX: box.OverflowWrap,
		OverflowY: box.OverflowScroll,
		Children:  []*box.Container{a, b, c},
	}
	root := viewport(200, 200, child)

	testEngine().Calc(root)

	// 50+50 fits in 100 but not in 100-16; every child lands on its own line.
	checkPlacement(t, "first", a, box.WrapAt(0, 0))
	checkPlacement(t, "second", b, box.WrapAt(1, 0))
	checkPlacement(t, "third", c, box.WrapAt(2, 0))
}

func TestSquash_MainAxisRedistributesUnsized(t *testing.T) {
	grand := &box.Container{Height: box.Fixed(30)}
	sized := &box.Container{Height: box.Fixed(90)}
	auto := &box.Container{Children: []*box.Container{grand}}
	root := viewport(100, 100, sized, auto)
	root.Direction = box.DirectionColumn
	root.OverflowY = box.OverflowSquash

	testEngine().Calc(root)

	// The auto child first expands to its content, then squashes back to
	// the remainder; its content keeps overflowing it.
	if !geometry.FloatEqual(auto.Calc.Height, 10) {
		t.Errorf("auto height = %g, want 10", auto.Calc.Height)
	}
	if !geometry.FloatEqual(auto.Calc.Y, 90) {
		t.Errorf("auto y = %g, want 90", auto.Calc.Y)
	}
	if !geometry.FloatEqual(grand.Calc.Height, 30) {
		t.Errorf("grandchild height = %g, want 30", grand.Calc.Height)
	}
}

func TestSquash_CrossAxisShrinksUnsized(t *testing.T) {
	inner := fixedBox(10, 60)
	child := &box.Container{Width: box.Fixed(100), Children: []*box.Container{inner}}
	root := viewport(100, 40, child)
	root.Height = box.Fixed(40)
	root.OverflowY = box.OverflowSquash

	testEngine().Calc(root)

	if !geometry.FloatEqual(child.Calc.Height, 40) {
		t.Errorf("child height = %g, want 40", child.Calc.Height)
	}
}

func TestSquash_SizedChildrenAreNotShrunk(t *testing.T) {
	sized := &box.Container{Height: box.Fixed(80)}
	auto := &box.Container{}
	root := viewport(100, 100, sized, auto)
	root.Direction = box.DirectionColumn
	root.OverflowY = box.OverflowSquash

	testEngine().Calc(root)

	if !geometry.FloatEqual(sized.Calc.Height, 80) {
		t.Errorf("sized height = %g, want 80", sized.Calc.Height)
	}
	if !geometry.FloatEqual(auto.Calc.Height, 20) {
		t.Errorf("auto height = %g, want 20", auto.Calc.Height)
	}
}
