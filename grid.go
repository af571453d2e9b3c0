package datagrid

import "strconv"

// wheelStep is the scroll distance of one mouse wheel notch, in pixels.
const wheelStep float32 = 30

// Grid is a virtualized, editable table over a caller-owned string matrix.
//
// The grid never mutates the matrix. Edits, sorts and selections are reported
// through the OnUpdate callback; the owner applies them and the next Render
// picks the result up. All methods must be called from one goroutine.
type Grid struct {
	cfg     Config
	data    [][]string
	columns []ColumnSpec
	rows    int
	cols    int

	geom    Geometry
	heights RowHeightCalculator
	bounds  Rect

	hMain   *ScrollTracker // body, horizontal
	vMain   *ScrollTracker // body, vertical
	hPinned *ScrollTracker // pinned header rows, horizontal
	vPinned *ScrollTracker // pinned columns, vertical
	sync    *Synchronizer

	bodyRows      Range
	bodyCols      Range
	pinnedRowCols Range // columns of the header band
	pinnedColRows Range // rows of the pinned column band

	selection CellIndex
	sort      SortState
	session   *EditSession
	editState EditState
}

// New creates a grid over data. columns may be nil for a read-only grid;
// otherwise it needs one spec per column. Malformed configuration is
// reported as a *ConfigError.
func New(data [][]string, columns []ColumnSpec, opts ...Option) (*Grid, error) {
	cfg := applyOptions(opts)
	rows, cols, err := validateData(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(rows, cols, columns); err != nil {
		return nil, err
	}

	g := &Grid{
		cfg:     cfg,
		data:    data,
		columns: columns,
		rows:    rows,
		cols:    cols,
		heights: RowHeightCalculator{
			Measurer:      cfg.Measurer,
			DefaultHeight: cfg.CellSize.Y,
			Padding:       cfg.CellPadding,
			CheckboxInset: cfg.CheckboxInset,
		},
		hMain:   NewScrollTracker("main-horizontal"),
		vMain:   NewScrollTracker("main-vertical"),
		hPinned: NewScrollTracker("pinned-row-horizontal"),
		vPinned: NewScrollTracker("pinned-column-vertical"),
		sort:    SortState{Column: NoSortColumn},
	}
	g.geom.PinnedRows = cfg.PinnedRows
	g.geom.PinnedCols = cfg.PinnedCols
	if err := g.computeColumns(); err != nil {
		return nil, err
	}
	g.geom.ResetRows(rows, cfg.CellSize.Y)
	g.sync = NewSynchronizer(
		ForwardRule{From: g.hMain, To: g.hPinned},
		ForwardRule{From: g.vMain, To: g.vPinned},
	)

	if cfg.Editable {
		g.selection = CellIndex{
			Row: minInt(cfg.PinnedRows, rows-1),
			Col: minInt(cfg.PinnedCols, cols-1),
		}
	}

	gridLogger.Debug("grid created", "rows", rows, "cols", cols,
		"pinnedRows", cfg.PinnedRows, "pinnedCols", cfg.PinnedCols, "editable", cfg.Editable)
	return g, nil
}

// computeColumns applies the width policy at the current viewport width.
func (g *Grid) computeColumns() error {
	widths, _, err := ComputeColumnWidths(g.cols, g.cfg.WidthPolicy, g.cfg.ColumnWidths, g.cfg.CellSize.X, g.bounds.W)
	if err != nil {
		return err
	}
	g.geom.SetColumnWidths(widths)
	return nil
}

// Rows returns the row count of the current matrix.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count of the current matrix.
func (g *Grid) Cols() int { return g.cols }

// Cell returns the raw value of a cell.
func (g *Grid) Cell(row, col int) (string, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return "", false
	}
	return g.data[row][col], true
}

// Selection returns the selected cell.
func (g *Grid) Selection() CellIndex { return g.selection }

// SortState returns the current sort state.
func (g *Grid) SortState() SortState { return g.sort }

// Geometry returns the layout cache. The slices are shared; treat them as read-only.
func (g *Grid) Geometry() Geometry { return g.geom }

// Bounds returns the viewport rectangle.
func (g *Grid) Bounds() Rect { return g.bounds }

// HorizontalScroller returns the body's horizontal tracker.
func (g *Grid) HorizontalScroller() *ScrollTracker { return g.hMain }

// VerticalScroller returns the body's vertical tracker.
func (g *Grid) VerticalScroller() *ScrollTracker { return g.vMain }

// PinnedRowScroller returns the tracker mirroring the body horizontally for the header band.
func (g *Grid) PinnedRowScroller() *ScrollTracker { return g.hPinned }

// PinnedColumnScroller returns the tracker mirroring the body vertically for the pinned columns.
func (g *Grid) PinnedColumnScroller() *ScrollTracker { return g.vPinned }

func (g *Grid) column(col int) ColumnSpec {
	if col >= 0 && col < len(g.columns) {
		return g.columns[col]
	}
	return ColumnSpec{}
}

func (g *Grid) displayText(row, col int) string {
	v := g.data[row][col]
	if r := g.column(col).Render; r != nil {
		return r(row, col, v)
	}
	return v
}

// SetBounds places the viewport. Ratio column widths follow its width.
func (g *Grid) SetBounds(r Rect) {
	widthChanged := r.W != g.bounds.W
	g.bounds = r
	if widthChanged && g.cfg.WidthPolicy == WidthRatio {
		// Widths were validated in New; the policy cannot fail here.
		_ = g.computeColumns()
	}
	g.updateExtents()
}

// Resize sets the viewport size, keeping its position.
func (g *Grid) Resize(w, h float32) {
	g.SetBounds(Rect{X: g.bounds.X, Y: g.bounds.Y, W: w, H: h})
}

// SetWidthPolicy switches the column width policy.
func (g *Grid) SetWidthPolicy(policy WidthPolicy, widths ...float32) error {
	next := g.cfg
	next.WidthPolicy = policy
	next.ColumnWidths = widths
	if err := next.validate(g.rows, g.cols, g.columns); err != nil {
		return err
	}
	g.cfg = next
	if err := g.computeColumns(); err != nil {
		return err
	}
	g.updateExtents()
	return nil
}

// SetData swaps in a new snapshot of the matrix with the same column count,
// typically after the owner applied an update, sort or row change. Row heights
// are kept per index; the selection is re-validated on the next Render.
func (g *Grid) SetData(data [][]string) error {
	rows, cols, err := validateData(data)
	if err != nil {
		return err
	}
	if cols != g.cols {
		return configErrorf("Data", "column count changed from %d to %d, use Replace", g.cols, cols)
	}
	if g.cfg.PinnedRows > rows {
		return configErrorf("Data", "%d rows cannot hold %d pinned rows", rows, g.cfg.PinnedRows)
	}
	g.data = data
	g.rows = rows
	g.geom.ResizeRows(rows, g.cfg.CellSize.Y)
	return nil
}

// Replace swaps both the matrix and the column specs. Layout starts over.
func (g *Grid) Replace(data [][]string, columns []ColumnSpec) error {
	rows, cols, err := validateData(data)
	if err != nil {
		return err
	}
	if err := g.cfg.validate(rows, cols, columns); err != nil {
		return err
	}
	g.Cancel()
	g.data = data
	g.columns = columns
	g.rows = rows
	g.cols = cols
	if err := g.computeColumns(); err != nil {
		return err
	}
	g.geom.ResetRows(rows, g.cfg.CellSize.Y)
	if g.sort.Column >= cols {
		g.sort = SortState{Column: NoSortColumn}
	}
	g.updateExtents()
	return nil
}

// Render runs one layout pass and returns the render model of the visible window.
func (g *Grid) Render() *RenderModel {
	g.layout()
	return g.materialize()
}

// layout re-validates the selection, sizes the visible rows to their content
// and derives the visible ranges.
func (g *Grid) layout() {
	g.clampSelection()
	g.geom.ResizeRows(g.rows, g.cfg.CellSize.Y)
	g.updateExtents()
	g.updateRanges()

	rowSpans := spans(minInt(g.cfg.PinnedRows, g.rows), g.bodyRows)
	colSpans := spans(minInt(g.cfg.PinnedCols, g.cols), g.bodyCols)
	if g.heights.Recalculate(&g.geom, g.columns, g.displayText, rowSpans, colSpans) {
		g.updateExtents()
		g.updateRanges()
	}
}

func (g *Grid) bodySize() (w, h float32) {
	return maxf(0, g.bounds.W-g.geom.PinnedWidth()), maxf(0, g.bounds.H-g.geom.PinnedHeight())
}

func (g *Grid) updateExtents() {
	bodyW, bodyH := g.bodySize()
	g.hMain.SetExtents(g.geom.ScrollableWidth(), bodyW)
	g.hPinned.SetExtents(g.geom.ScrollableWidth(), bodyW)
	g.vMain.SetExtents(g.geom.ScrollableHeight(), bodyH)
	g.vPinned.SetExtents(g.geom.ScrollableHeight(), bodyH)
	g.sync.Resync()
}

func (g *Grid) updateRanges() {
	bodyW, bodyH := g.bodySize()
	pr, pc := minInt(g.cfg.PinnedRows, g.rows), minInt(g.cfg.PinnedCols, g.cols)
	g.bodyRows = VisibleRange(g.geom.RowHeights, pr, g.vMain.Offset(), bodyH)
	g.bodyCols = VisibleRange(g.geom.ColumnWidths, pc, g.hMain.Offset(), bodyW)
	g.pinnedRowCols = VisibleRange(g.geom.ColumnWidths, pc, g.hPinned.Offset(), bodyW)
	g.pinnedColRows = VisibleRange(g.geom.RowHeights, pr, g.vPinned.Offset(), bodyH)
}

// clampSelection pulls the selection back inside the matrix after it shrank
// and tells the owner once, with refresh=false.
func (g *Grid) clampSelection() {
	if s := g.session; s != nil && (s.Row >= g.rows || s.Col >= g.cols) {
		gridLogger.Debug("edit dropped, cell removed", "row", s.Row, "col", s.Col)
		g.session = nil
		g.editState = EditCancelled
	}
	r := clampInt(g.selection.Row, 0, g.rows-1)
	c := clampInt(g.selection.Col, 0, g.cols-1)
	if r == g.selection.Row && c == g.selection.Col {
		return
	}
	gridLogger.Debug("selection clamped", "from", g.selection, "row", r, "col", c)
	g.selection = CellIndex{Row: r, Col: c}
	if g.cfg.OnSelectCell != nil {
		g.cfg.OnSelectCell(r, c, false)
	}
}

// selectCell moves the selection and notifies the owner when it changed.
func (g *Grid) selectCell(row, col int, refresh bool) {
	if g.selection.Row == row && g.selection.Col == col {
		return
	}
	g.selection = CellIndex{Row: row, Col: col}
	if g.cfg.OnSelectCell != nil {
		g.cfg.OnSelectCell(row, col, refresh)
	}
}

// Select moves the selection to a cell (clamped to the matrix) and scrolls it into view.
func (g *Grid) Select(row, col int) {
	row = clampInt(row, 0, g.rows-1)
	col = clampInt(col, 0, g.cols-1)
	g.selectCell(row, col, true)
	g.ScrollToCell(row, col)
}

// emit forwards an intent to the owner. Column-level actions pass row -1,
// row-level actions pass col -1.
func (g *Grid) emit(row, col int, value string, action Action) bool {
	if g.cfg.OnUpdate == nil {
		return false
	}
	gridLogger.Debug("owner callback", "row", row, "col", col, "value", value, "action", action)
	return g.cfg.OnUpdate(row, col, value, action)
}

// TapKind says what a tap did.
type TapKind int

const (
	TapNone      TapKind = iota // Missed the grid
	TapDismissed                // Closed the open edit surface
	TapCell                     // Selected a cell
	TapEdit                     // Selected a cell and opened its edit surface
	TapCheckbox                 // Toggled a row checkbox
	TapSelectAll                // Toggled the select-all checkbox
	TapSort                     // Advanced a column's sort state
	TapHeader                   // Hit a header cell that cannot sort
)

func (k TapKind) String() string {
	switch k {
	case TapDismissed:
		return "dismissed"
	case TapCell:
		return "cell"
	case TapEdit:
		return "edit"
	case TapCheckbox:
		return "checkbox"
	case TapSelectAll:
		return "select-all"
	case TapSort:
		return "sort"
	case TapHeader:
		return "header"
	default:
		return "none"
	}
}

// TapResult reports the effect of a tap.
type TapResult struct {
	Kind TapKind
	Cell CellIndex
}

// Tap handles a pointer tap at p in the grid's coordinate space.
//
// While an edit surface is open, any tap on the grid cancels it and does
// nothing else. Header taps sort or toggle select-all; body taps toggle row
// checkboxes, select cells and open edit surfaces.
func (g *Grid) Tap(p Vec2) TapResult {
	if g.session != nil {
		cell := g.session.Cell()
		g.Cancel()
		return TapResult{Kind: TapDismissed, Cell: cell}
	}

	cell, ok := g.LocateCellAt(p)
	if !ok {
		return TapResult{Kind: TapNone}
	}
	spec := g.column(cell.Col)
	onCheckbox := spec.HasCheckbox() && g.checkboxRect(g.ScreenRect(cell.Row, cell.Col)).Contains(p)

	if cell.Row < g.cfg.PinnedRows {
		if onCheckbox && cell.Row == 0 {
			g.toggleSelectAll(cell.Col, spec)
			return TapResult{Kind: TapSelectAll, Cell: cell}
		}
		col, ok := g.LocateHeaderColumnAt(p)
		if !ok {
			gridLogger.Debug("header not sortable", "col", cell.Col)
			g.sort = SortState{Column: NoSortColumn, Direction: SortNone}
			return TapResult{Kind: TapHeader, Cell: cell}
		}
		g.tapSort(col)
		return TapResult{Kind: TapSort, Cell: cell}
	}

	if onCheckbox {
		value := !spec.Selection.Selected(cell.Row)
		g.emit(cell.Row, cell.Col, strconv.FormatBool(value), ActionSelect)
		return TapResult{Kind: TapCheckbox, Cell: cell}
	}

	if _, ok := g.BeginEdit(cell.Row, cell.Col); ok {
		return TapResult{Kind: TapEdit, Cell: cell}
	}
	g.selectCell(cell.Row, cell.Col, true)
	return TapResult{Kind: TapCell, Cell: cell}
}

func (g *Grid) toggleSelectAll(col int, spec ColumnSpec) {
	state := SelectAllState(spec.Selection, g.cfg.PinnedRows, g.rows)
	g.emit(-1, col, strconv.FormatBool(state != Checked), ActionSelectAll)
}

// tapSort advances the sort state of col and announces it. Every change
// first clears the owner's row selection.
func (g *Grid) tapSort(col int) {
	next := NextSortState(g.sort, col, g.column(col).TriStateSort)
	gridLogger.Debug("sort", "col", col, "from", g.sort.Direction, "to", next.Direction)
	g.sort = next
	g.emit(-1, col, strconv.FormatBool(false), ActionSelectAll)
	g.emit(-1, col, "", next.Direction.action())
}

// ScrollBy scrolls the body. With PhysicsNeverScrollable the vertical delta
// goes to the outer scroller untouched; otherwise whatever the body cannot
// consume is forwarded as overscroll.
func (g *Grid) ScrollBy(dx, dy float32) {
	overX := g.hMain.ScrollBy(dx)
	overY := dy
	if g.cfg.Physics != PhysicsNeverScrollable {
		overY = g.vMain.ScrollBy(dy)
	}
	if g.cfg.Outer != nil && (overX != 0 || overY != 0) {
		gridLogger.Debug("overscroll", "dx", overX, "dy", overY)
		g.cfg.Outer.ScrollBy(overX, overY)
	}
}

// ScrollTo jumps the body to the given offsets.
func (g *Grid) ScrollTo(x, y float32) {
	g.hMain.JumpTo(x)
	g.vMain.JumpTo(y)
}

// ScrollToCell scrolls the minimum amount that brings the cell into the body
// viewport. Pinned axes do not scroll.
func (g *Grid) ScrollToCell(row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	if row >= g.cfg.PinnedRows {
		g.vMain.EnsureVisible(g.geom.RowOffsets[row]-g.geom.PinnedHeight(), g.geom.RowHeights[row])
	}
	if col >= g.cfg.PinnedCols {
		g.hMain.EnsureVisible(g.geom.ColumnOffsets[col]-g.geom.PinnedWidth(), g.geom.ColumnWidths[col])
	}
}

// RequestAddRow asks the owner to insert a row at row. The grid changes
// nothing itself; the owner calls SetData when it complied.
func (g *Grid) RequestAddRow(row int) bool {
	row = clampInt(row, g.cfg.PinnedRows, g.rows)
	return g.emit(row, -1, "", ActionAdd)
}

// RequestDeleteRow asks the owner to remove a body row. An edit open on that
// row is cancelled first.
func (g *Grid) RequestDeleteRow(row int) bool {
	if row < g.cfg.PinnedRows || row >= g.rows {
		return false
	}
	if g.session != nil && g.session.Row == row {
		g.Cancel()
	}
	return g.emit(row, -1, "", ActionDelete)
}
