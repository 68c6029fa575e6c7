package engine

import (
	"github.com/go-strut/strut/pkg/box"
	"github.com/go-strut/strut/pkg/errors"
)

// tableRow pairs a row node with its visible cells.
type tableRow struct {
	node  *box.Container
	cells []*box.Container
}

// sizeTable runs the two-phase table sizing algorithm.
//
// Phase one iterates header rows then body rows in lockstep by column
// index, tracking each column's max resolved or natural width and each
// row's max height (falling back to the default row height). Phase two
// splits the leftover width evenly across unsized columns - or, when all
// columns carry a size, spreads the surplus across every column so the
// table fills its container - then propagates the resolved column width
// to every cell in that column and the row height to every cell in that
// row, including the thead/tbody/tr wrappers. Cell contents then get a
// full layout inside their now-fixed boxes.
func (e *Engine) sizeTable(c *box.Container, fr frame) {
	fr = fr.childFrame(c)
	rows := e.collectRows(c)
	content := c.ContentSize()

	columns := 0
	for _, row := range rows {
		if len(row.cells) > columns {
			columns = len(row.cells)
		}
	}

	colWidth := make([]float64, columns)
	colSized := make([]bool, columns)
	rowHeight := make([]float64, len(rows))

	for r, row := range rows {
		height := 0.0
		for i, cell := range row.cells {
			if cell.Width != nil {
				w := clampZero(cell.Width.Resolve(content.Width))
				if w > colWidth[i] {
					colWidth[i] = w
				}
				colSized[i] = true
			} else if !colSized[i] {
				if w := e.naturalSize(cell, content).Width; w > colWidth[i] {
					colWidth[i] = w
				}
			}

			if cell.Height != nil {
				if h := clampZero(cell.Height.Resolve(content.Height)); h > height {
					height = h
				}
			} else if h := e.naturalSize(cell, content).Height; h > height {
				height = h
			}
		}
		if height <= 0 {
			height = e.opts.RowHeight
		}
		rowHeight[r] = height
	}

	sizedTotal := 0.0
	unsized := 0
	for i := range colWidth {
		if colSized[i] {
			sizedTotal += colWidth[i]
		} else {
			unsized++
		}
	}
	if unsized > 0 {
		share := clampZero(content.Width-sizedTotal) / float64(unsized)
		for i := range colWidth {
			if colSized[i] {
				continue
			}
			// The even share fills the container; the natural width acts
			// as a min-content floor when space is short.
			if share > colWidth[i] {
				colWidth[i] = share
			}
		}
	} else if columns > 0 {
		if surplus := (content.Width - sizedTotal) / float64(columns); surplus > 0 {
			for i := range colWidth {
				colWidth[i] += surplus
			}
		}
	}

	totalWidth := 0.0
	for _, w := range colWidth {
		totalWidth += w
	}

	for r, row := range rows {
		for i, cell := range row.cells {
			cell.Calc.SetWidth(colWidth[i])
			cell.Calc.SetHeight(rowHeight[r])
		}
		row.node.Calc.SetWidth(totalWidth)
		row.node.Calc.SetHeight(rowHeight[r])
	}

	totalHeight := 0.0
	for _, h := range rowHeight {
		totalHeight += h
	}
	for _, child := range c.Children {
		if child.Hidden || !child.Element.IsTableSection() {
			continue
		}
		sectionHeight := 0.0
		for _, row := range child.Children {
			if row.Hidden {
				continue
			}
			sectionHeight += row.Calc.Height
		}
		child.Calc.SetWidth(totalWidth)
		child.Calc.SetHeight(sectionHeight)
	}

	if c.Height == nil {
		c.Calc.SetHeight(totalHeight + c.ResolvedPadding().Vertical())
	}

	for _, row := range rows {
		for _, cell := range row.cells {
			e.sizeNode(cell, fr)
		}
	}
}

// collectRows gathers the table's rows: header sections first, then body
// sections and bare rows in document order. Any direct child that is not
// a row or row section is a tree-construction error and fatal.
func (e *Engine) collectRows(c *box.Container) []tableRow {
	var rows []tableRow
	appendRow := func(node *box.Container) {
		row := tableRow{node: node}
		for _, cell := range node.Children {
			if cell.Hidden {
				continue
			}
			row.cells = append(row.cells, cell)
		}
		rows = append(rows, row)
	}

	for pass := 0; pass < 2; pass++ {
		for _, child := range c.Children {
			if child.Hidden {
				continue
			}
			head := child.Element.Kind == box.KindTableHead
			if (pass == 0) != head {
				continue
			}
			switch child.Element.Kind {
			case box.KindTableHead, box.KindTableBody:
				for _, row := range child.Children {
					if row.Hidden {
						continue
					}
					if row.Element.Kind != box.KindTableRow {
						panic(errors.New("engine.sizeTable", errors.KindTreeShape,
							"%s child must be tr, got %s", child.Element.Kind, row.Element.Kind))
					}
					appendRow(row)
				}
			case box.KindTableRow:
				appendRow(child)
			default:
				panic(errors.New("engine.sizeTable", errors.KindTreeShape,
					"table child must be tr, thead or tbody, got %s", child.Element.Kind))
			}
		}
	}
	return rows
}

// placeTable stacks sections and rows vertically from the table's content
// origin and lays cells side by side at their resolved column widths,
// then recurses into each cell's contents.
func (e *Engine) placeTable(c *box.Container, fr frame) {
	origin := c.ContentOrigin()
	y := origin.Y
	for _, child := range c.Children {
		if child.Hidden {
			continue
		}
		switch child.Element.Kind {
		case box.KindTableHead, box.KindTableBody:
			child.Calc.SetOrigin(origin.X, y)
			rowY := y
			for _, row := range child.Children {
				if row.Hidden {
					continue
				}
				e.placeRow(row, origin.X, rowY, fr)
				rowY += row.Calc.Height
			}
			y += child.Calc.Height
		case box.KindTableRow:
			e.placeRow(child, origin.X, y, fr)
			y += child.Calc.Height
		}
	}
	e.placeAnchored(c, fr)
}

// placeRow positions one row and its cells, recursing into cell contents.
func (e *Engine) placeRow(row *box.Container, x, y float64, fr frame) {
	row.Calc.SetOrigin(x, y)
	cellX := x
	for _, cell := range row.Children {
		if cell.Hidden {
			continue
		}
		cell.Calc.SetOrigin(cellX, y)
		cellX += cell.Calc.Width
		e.placeNode(cell, fr)
	}
}
