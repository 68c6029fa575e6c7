package box

import "fmt"

// ElementKind identifies the semantic kind of a container.
//
// The kind constrains how the engine traverses a node: Table-family kinds
// are laid out by the table sizer, Raw and Heading leaves derive their
// natural size from text measurement, everything else follows the general
// flow algorithm.
type ElementKind int

const (
	// KindDiv is a generic flow container.
	KindDiv ElementKind = iota
	// KindTable is a table container; its direct children must be
	// KindTableRow, KindTableHead or KindTableBody.
	KindTable
	// KindTableHead groups header rows inside a table.
	KindTableHead
	// KindTableBody groups body rows inside a table.
	KindTableBody
	// KindTableRow is a single table row; its children are cells.
	KindTableRow
	// KindTableHeaderCell is a header cell (TH).
	KindTableHeaderCell
	// KindTableCell is a data cell (TD).
	KindTableCell
	// KindHeading is a text heading; Element.Level selects the scale.
	KindHeading
	// KindRaw is a raw text leaf; Element.Text holds the content.
	KindRaw
)

// String returns a human-readable representation of the element kind.
func (k ElementKind) String() string {
	switch k {
	case KindDiv:
		return "div"
	case KindTable:
		return "table"
	case KindTableHead:
		return "thead"
	case KindTableBody:
		return "tbody"
	case KindTableRow:
		return "tr"
	case KindTableHeaderCell:
		return "th"
	case KindTableCell:
		return "td"
	case KindHeading:
		return "heading"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// Element is the tagged variant stored on every container.
type Element struct {
	Kind ElementKind
	// Text is the content for KindRaw and KindHeading elements.
	Text string
	// Level is the heading level (1-6) for KindHeading elements.
	Level int
}

// IsTableSection returns true for row-grouping wrappers (thead, tbody).
func (e Element) IsTableSection() bool {
	return e.Kind == KindTableHead || e.Kind == KindTableBody
}

// IsTableCell returns true for th and td elements.
func (e Element) IsTableCell() bool {
	return e.Kind == KindTableHeaderCell || e.Kind == KindTableCell
}

// IsText returns true for elements whose natural size comes from text
// measurement.
func (e Element) IsText() bool {
	return e.Kind == KindRaw || e.Kind == KindHeading
}

// HeadingScale returns the font-size multiplier for a heading level.
// Levels outside 1-6 use the level-4 scale of 1.0.
func HeadingScale(level int) float64 {
	switch level {
	case 1:
		return 2.0
	case 2:
		return 1.5
	case 3:
		return 1.17
	case 5:
		return 0.83
	case 6:
		return 0.67
	default:
		return 1.0
	}
}
