package datagrid

// locateAxis maps a viewport-relative position on one axis to an index.
//
// Positions inside the pinned band [0, pinnedExtent) resolve among the pinned
// indices; positions past it are shifted by scroll and resolve among the
// scrollable ones. The result is the first index whose span contains the
// content position, so a point on a shared edge belongs to the later cell.
func locateAxis(pos float32, sizes, offsets []float32, pinned int, scroll float32) (int, bool) {
	n := len(sizes)
	if n == 0 || pos < 0 {
		return -1, false
	}
	pinned = minInt(pinned, n)
	pinnedExtent := offsets[pinned]

	start, limit := 0, pinned
	content := pos
	if pos >= pinnedExtent {
		start, limit = pinned, n
		content = pos - pinnedExtent + scroll + offsets[pinned]
	}
	if start >= limit || content >= offsets[limit] {
		return -1, false
	}

	idx := LocateIndex(content-offsets[start], sizes, start)
	for idx < limit-1 && content >= offsets[idx+1] {
		idx++
	}
	if idx >= limit {
		return -1, false
	}
	return idx, true
}

// toLocal converts a point in the grid's coordinate space to viewport-relative
// coordinates and reports whether it lies inside the viewport.
func (g *Grid) toLocal(p Vec2) (Vec2, bool) {
	if !g.bounds.Contains(p) {
		return Vec2{}, false
	}
	return Vec2{X: p.X - g.bounds.X, Y: p.Y - g.bounds.Y}, true
}

// LocateCellAt maps a point to the cell drawn under it. Points outside the
// viewport, past the last row or column, or inside overscan that is not on
// screen do not hit.
func (g *Grid) LocateCellAt(p Vec2) (CellIndex, bool) {
	local, ok := g.toLocal(p)
	if !ok {
		return CellIndex{}, false
	}
	pw, ph := g.geom.PinnedWidth(), g.geom.PinnedHeight()

	// The band decides which tracker scrolls the other axis.
	hScroll := g.hMain.Offset()
	if local.Y < ph {
		hScroll = g.hPinned.Offset()
	}
	vScroll := g.vMain.Offset()
	if local.X < pw {
		vScroll = g.vPinned.Offset()
	}

	col, ok := locateAxis(local.X, g.geom.ColumnWidths, g.geom.ColumnOffsets, g.cfg.PinnedCols, hScroll)
	if !ok {
		return CellIndex{}, false
	}
	row, ok := locateAxis(local.Y, g.geom.RowHeights, g.geom.RowOffsets, g.cfg.PinnedRows, vScroll)
	if !ok {
		return CellIndex{}, false
	}
	return CellIndex{Row: row, Col: col}, true
}

// LocateHeaderColumnAt maps a point in the pinned header band to a column.
// It only yields a column when that column is sortable.
func (g *Grid) LocateHeaderColumnAt(p Vec2) (int, bool) {
	local, ok := g.toLocal(p)
	if !ok || g.cfg.PinnedRows == 0 || local.Y >= g.geom.PinnedHeight() {
		return NoSortColumn, false
	}
	col, ok := locateAxis(local.X, g.geom.ColumnWidths, g.geom.ColumnOffsets, g.cfg.PinnedCols, g.hPinned.Offset())
	if !ok || !g.column(col).Sortable {
		return NoSortColumn, false
	}
	return col, true
}

// ScreenRect returns where the cell is drawn in the grid's coordinate space,
// taking the scroll offsets of the cell's band into account. The rectangle
// may lie partly or wholly outside the viewport.
func (g *Grid) ScreenRect(row, col int) Rect {
	r := g.geom.CellRect(row, col)
	pinnedRow := row < g.cfg.PinnedRows
	pinnedCol := col < g.cfg.PinnedCols
	if !pinnedCol {
		if pinnedRow {
			r.X -= g.hPinned.Offset()
		} else {
			r.X -= g.hMain.Offset()
		}
	}
	if !pinnedRow {
		if pinnedCol {
			r.Y -= g.vPinned.Offset()
		} else {
			r.Y -= g.vMain.Offset()
		}
	}
	r.X += g.bounds.X
	r.Y += g.bounds.Y
	return r
}

// checkboxRect is the tappable checkbox area of a cell: the left padding plus
// the checkbox inset, over the full cell height.
func (g *Grid) checkboxRect(cell Rect) Rect {
	return Rect{X: cell.X, Y: cell.Y, W: minf(cell.W, g.cfg.CellPadding+g.cfg.CheckboxInset), H: cell.H}
}

// regionClip returns the clip rectangle of the band a cell belongs to.
func (g *Grid) regionClip(region Region) Rect {
	pw := minf(g.geom.PinnedWidth(), g.bounds.W)
	ph := minf(g.geom.PinnedHeight(), g.bounds.H)
	x, y := g.bounds.X, g.bounds.Y
	switch region {
	case RegionCorner:
		return Rect{X: x, Y: y, W: pw, H: ph}
	case RegionPinnedRow:
		return Rect{X: x + pw, Y: y, W: g.bounds.W - pw, H: ph}
	case RegionPinnedColumn:
		return Rect{X: x, Y: y + ph, W: pw, H: g.bounds.H - ph}
	default:
		return Rect{X: x + pw, Y: y + ph, W: g.bounds.W - pw, H: g.bounds.H - ph}
	}
}
