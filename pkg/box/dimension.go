package box

import (
	"fmt"
	"math"
)

// Dimension specifies a width or height. A nil Dimension means auto: the
// size is content-based and decided by the engine.
//
// Fixed values resolve immediately; Percent and calc expressions need a
// resolved container size (the basis) and are resolved during remainder
// distribution, not in the top-down sizing pass.
type Dimension interface {
	// Resolve computes the concrete size against the given basis
	// (the containing content-box dimension on the same axis).
	Resolve(basis float64) float64
	// String renders the specification in source form (for dumps and errors).
	String() string
}

// Fixed is an absolute size in layout units.
type Fixed float64

// Resolve returns the fixed value regardless of basis.
func (f Fixed) Resolve(basis float64) float64 {
	return float64(f)
}

func (f Fixed) String() string {
	return trimFloat(float64(f))
}

// Percent is a size relative to the basis, expressed as 0-100.
type Percent float64

// Resolve returns the given fraction of the basis.
func (p Percent) Resolve(basis float64) float64 {
	return basis * float64(p) / 100
}

func (p Percent) String() string {
	return trimFloat(float64(p)) + "%"
}

// FixedValue reports whether d is a fixed size and returns it if so.
// Only fixed dimensions are assigned by the top-down sizing pass.
func FixedValue(d Dimension) (float64, bool) {
	f, ok := d.(Fixed)
	return float64(f), ok
}

type calcOp int

const (
	opMin calcOp = iota
	opMax
	opAdd
	opSub
)

// calcDim is a binary calc expression over two dimensions.
type calcDim struct {
	op   calcOp
	a, b Dimension
}

// Min returns a dimension resolving to the smaller of a and b.
func Min(a, b Dimension) Dimension {
	return calcDim{op: opMin, a: a, b: b}
}

// Max returns a dimension resolving to the larger of a and b.
func Max(a, b Dimension) Dimension {
	return calcDim{op: opMax, a: a, b: b}
}

// Add returns a dimension resolving to the sum of a and b.
func Add(a, b Dimension) Dimension {
	return calcDim{op: opAdd, a: a, b: b}
}

// Sub returns a dimension resolving to a minus b, clamped at zero.
func Sub(a, b Dimension) Dimension {
	return calcDim{op: opSub, a: a, b: b}
}

func (c calcDim) Resolve(basis float64) float64 {
	av := c.a.Resolve(basis)
	bv := c.b.Resolve(basis)
	switch c.op {
	case opMin:
		return math.Min(av, bv)
	case opMax:
		return math.Max(av, bv)
	case opAdd:
		return av + bv
	default:
		return math.Max(0, av-bv)
	}
}

func (c calcDim) String() string {
	switch c.op {
	case opMin:
		return fmt.Sprintf("min(%s, %s)", c.a, c.b)
	case opMax:
		return fmt.Sprintf("max(%s, %s)", c.a, c.b)
	case opAdd:
		return fmt.Sprintf("calc(%s + %s)", c.a, c.b)
	default:
		return fmt.Sprintf("calc(%s - %s)", c.a, c.b)
	}
}

// trimFloat formats a float without trailing zeros.
func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
