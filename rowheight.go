package datagrid

import "strings"

// RowHeightCalculator grows rows so that wrapped cell text fits.
//
// Heights only change for the cells handed to Recalculate, which the grid
// limits to the visible window. A row takes the height of its tallest visible
// cell and never drops below DefaultHeight.
type RowHeightCalculator struct {
	Measurer      TextMeasurer
	DefaultHeight float32
	Padding       float32 // Applied on each side, horizontally and vertically
	CheckboxInset float32 // Subtracted from the text width of checkbox columns
}

// CellTextFunc returns the display text for a cell.
type CellTextFunc func(row, col int) string

// Recalculate re-measures the rows in rowSpans across the columns in colSpans
// and reports whether any row height changed. Row offsets are refreshed when it did.
func (c RowHeightCalculator) Recalculate(g *Geometry, columns []ColumnSpec, text CellTextFunc, rowSpans, colSpans []Range) bool {
	changed := false
	for _, rs := range rowSpans {
		for row := rs.First; row < rs.End; row++ {
			want := float32(0)
			for _, cs := range colSpans {
				for col := cs.First; col < cs.End; col++ {
					want = maxf(want, c.MeasureCell(g.ColumnWidths[col], hasCheckbox(columns, col), text(row, col)))
				}
			}
			if next := c.nextHeight(want); next != g.RowHeights[row] {
				g.RowHeights[row] = next
				changed = true
			}
		}
	}
	if changed {
		g.updateRowOffsets()
	}
	return changed
}

// MeasureCell returns the height a cell of the given column width needs for text.
func (c RowHeightCalculator) MeasureCell(colWidth float32, checkbox bool, text string) float32 {
	width := colWidth - 2*c.Padding
	if checkbox {
		width -= c.CheckboxInset
	}
	size := MeasureWrappedText(c.Measurer, strings.TrimSpace(text), width, WrapModeAuto)
	return size.Y + 2*c.Padding
}

// nextHeight clamps a measured height to the default floor.
func (c RowHeightCalculator) nextHeight(measured float32) float32 {
	return maxf(measured, c.DefaultHeight)
}

func hasCheckbox(columns []ColumnSpec, col int) bool {
	return col < len(columns) && columns[col].HasCheckbox()
}

// spans returns the pinned prefix [0, pinned) followed by the visible body range.
func spans(pinned int, body Range) []Range {
	out := make([]Range, 0, 2)
	if pinned > 0 {
		out = append(out, Range{First: 0, End: pinned})
	}
	if body.Len() > 0 {
		out = append(out, body)
	}
	return out
}
