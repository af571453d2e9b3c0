package datagrid

// ComputeColumnWidths derives column widths and their prefix-sum offsets.
//
//   - WidthFixed: every column gets cellWidth.
//   - WidthPixels: widths is used verbatim.
//   - WidthRatio: each entry is a fraction of viewportWidth.
//
// Pixel and ratio policies require exactly one entry per column.
func ComputeColumnWidths(cols int, policy WidthPolicy, widths []float32, cellWidth, viewportWidth float32) ([]float32, []float32, error) {
	if cols <= 0 {
		return nil, nil, configErrorf("Columns", "column count must be positive, got %d", cols)
	}

	result := make([]float32, cols)
	switch policy {
	case WidthFixed:
		if cellWidth <= 0 {
			return nil, nil, configErrorf("CellSize", "fixed policy needs a positive cell width")
		}
		for i := range result {
			result[i] = cellWidth
		}
	case WidthPixels:
		if len(widths) != cols {
			return nil, nil, configErrorf("ColumnWidths", "%d pixel widths for %d columns", len(widths), cols)
		}
		copy(result, widths)
	case WidthRatio:
		if widths == nil {
			return nil, nil, configErrorf("ColumnWidths", "ratio policy selected without ratios")
		}
		if len(widths) != cols {
			return nil, nil, configErrorf("ColumnWidths", "%d ratios for %d columns", len(widths), cols)
		}
		for i, ratio := range widths {
			result[i] = ratio * viewportWidth
		}
	default:
		return nil, nil, configErrorf("WidthPolicy", "unknown policy %d", policy)
	}

	return result, PrefixSums(result), nil
}

// PrefixSums returns n+1 offsets for n sizes: offsets[0] is 0 and
// offsets[i+1]-offsets[i] is sizes[i]. The last entry is the total extent.
func PrefixSums(sizes []float32) []float32 {
	offsets := make([]float32, len(sizes)+1)
	for i, s := range sizes {
		offsets[i+1] = offsets[i] + s
	}
	return offsets
}

// Geometry is the derived layout cache of a grid.
type Geometry struct {
	ColumnWidths  []float32
	ColumnOffsets []float32 // len(ColumnWidths)+1
	RowHeights    []float32
	RowOffsets    []float32 // len(RowHeights)+1

	PinnedRows int
	PinnedCols int
}

// Rows returns the row count.
func (g *Geometry) Rows() int { return len(g.RowHeights) }

// Cols returns the column count.
func (g *Geometry) Cols() int { return len(g.ColumnWidths) }

// TotalWidth returns the width of all columns.
func (g *Geometry) TotalWidth() float32 { return last(g.ColumnOffsets) }

// TotalHeight returns the height of all rows.
func (g *Geometry) TotalHeight() float32 { return last(g.RowOffsets) }

// PinnedWidth returns the width of the pinned column band.
func (g *Geometry) PinnedWidth() float32 {
	return g.ColumnOffsets[minInt(g.PinnedCols, g.Cols())]
}

// PinnedHeight returns the height of the pinned header band.
func (g *Geometry) PinnedHeight() float32 {
	return g.RowOffsets[minInt(g.PinnedRows, g.Rows())]
}

// ScrollableWidth returns the content width of the non-pinned columns.
func (g *Geometry) ScrollableWidth() float32 { return g.TotalWidth() - g.PinnedWidth() }

// ScrollableHeight returns the content height of the non-pinned rows.
func (g *Geometry) ScrollableHeight() float32 { return g.TotalHeight() - g.PinnedHeight() }

// SetColumnWidths replaces the column widths and recomputes offsets.
func (g *Geometry) SetColumnWidths(widths []float32) {
	g.ColumnWidths = widths
	g.ColumnOffsets = PrefixSums(widths)
}

// ResizeRows adapts the row cache to a new row count. Existing heights are kept
// per index; new rows start at defaultHeight.
func (g *Geometry) ResizeRows(rows int, defaultHeight float32) {
	if rows == len(g.RowHeights) && g.RowOffsets != nil {
		return
	}
	heights := make([]float32, rows)
	n := copy(heights, g.RowHeights)
	for i := n; i < rows; i++ {
		heights[i] = defaultHeight
	}
	g.RowHeights = heights
	g.RowOffsets = PrefixSums(heights)
}

// ResetRows sets every row back to defaultHeight.
func (g *Geometry) ResetRows(rows int, defaultHeight float32) {
	g.RowHeights = nil
	g.RowOffsets = nil
	g.ResizeRows(rows, defaultHeight)
}

// updateRowOffsets recomputes row offsets after heights changed.
func (g *Geometry) updateRowOffsets() {
	g.RowOffsets = PrefixSums(g.RowHeights)
}

// CellRect returns the cell rectangle in content coordinates (no scrolling applied).
func (g *Geometry) CellRect(row, col int) Rect {
	return Rect{
		X: g.ColumnOffsets[col],
		Y: g.RowOffsets[row],
		W: g.ColumnWidths[col],
		H: g.RowHeights[row],
	}
}

func last(s []float32) float32 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
