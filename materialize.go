package datagrid

import (
	"strings"
	"time"
)

// Region is the band of the grid a cell is drawn in.
type Region int

const (
	RegionBody Region = iota
	RegionPinnedRow
	RegionPinnedColumn
	RegionCorner
)

func (r Region) String() string {
	switch r {
	case RegionPinnedRow:
		return "pinned-row"
	case RegionPinnedColumn:
		return "pinned-column"
	case RegionCorner:
		return "corner"
	default:
		return "body"
	}
}

func regionOf(row, col, pinnedRows, pinnedCols int) Region {
	switch {
	case row < pinnedRows && col < pinnedCols:
		return RegionCorner
	case row < pinnedRows:
		return RegionPinnedRow
	case col < pinnedCols:
		return RegionPinnedColumn
	default:
		return RegionBody
	}
}

// CellDescriptor is one positioned cell of a render model.
type CellDescriptor struct {
	Row, Col int
	Region   Region

	Text  string   // Display text (custom renderer applied)
	Lines []string // Text trimmed and wrapped to the text area

	Rect Rect // Screen rectangle; may extend past Clip
	Clip Rect // Band the cell must be clipped to

	Header     bool // Row is a pinned header row
	RowChecked bool // Body row checked in some selection column
	Selected   bool
	Editing    bool
	Custom     bool // Column has a custom renderer (read-only)
	Input      InputType

	Checkbox     bool
	Check        CheckState
	CheckboxRect Rect

	Sortable bool
	Sort     SortDirection // Direction shown on a header cell
}

// EditView is a snapshot of the open edit session for the painter.
type EditView struct {
	Cell     CellIndex
	Kind     SurfaceKind
	Input    InputType
	Text     string
	Message  string
	Matches  []string
	Date     time.Time
	Rect     Rect
	Original string
}

// RenderModel is the immutable result of a render pass: everything a painter
// needs, decoupled from the grid's mutable state.
type RenderModel struct {
	Bounds      Rect
	PinnedSize  Vec2
	ContentSize Vec2

	Scroll          Vec2 // Main tracker offsets
	PinnedRowScroll float32
	PinnedColScroll float32

	Rows, Cols Range // Visible scrollable ranges, overscan included

	Selection CellIndex
	Sort      SortState
	Edit      *EditView

	Style      Style
	Padding    float32
	LineHeight float32

	// Cells in paint order: body, pinned column, pinned row, corner.
	Cells []CellDescriptor
}

// Cell returns the descriptor of a materialized cell.
func (m *RenderModel) Cell(row, col int) (CellDescriptor, bool) {
	for _, c := range m.Cells {
		if c.Row == row && c.Col == col {
			return c, true
		}
	}
	return CellDescriptor{}, false
}

// materialize builds the render model from the current layout.
func (g *Grid) materialize() *RenderModel {
	pinnedRows := minInt(g.cfg.PinnedRows, g.rows)
	pinnedCols := minInt(g.cfg.PinnedCols, g.cols)
	header := Range{First: 0, End: pinnedRows}
	left := Range{First: 0, End: pinnedCols}

	m := &RenderModel{
		Bounds:          g.bounds,
		PinnedSize:      Vec2{X: g.geom.PinnedWidth(), Y: g.geom.PinnedHeight()},
		ContentSize:     Vec2{X: g.geom.TotalWidth(), Y: g.geom.TotalHeight()},
		Scroll:          Vec2{X: g.hMain.Offset(), Y: g.vMain.Offset()},
		PinnedRowScroll: g.hPinned.Offset(),
		PinnedColScroll: g.vPinned.Offset(),
		Rows:            g.bodyRows,
		Cols:            g.bodyCols,
		Selection:       g.selection,
		Sort:            g.sort,
		Style:           g.cfg.Style,
		Padding:         g.cfg.CellPadding,
		LineHeight:      g.cfg.Measurer.LineHeight(),
	}
	m.Cells = make([]CellDescriptor, 0,
		(g.bodyRows.Len()+pinnedRows)*(g.bodyCols.Len()+pinnedCols))

	g.appendBand(m, g.bodyRows, g.bodyCols)
	g.appendBand(m, g.pinnedColRows, left)
	g.appendBand(m, header, g.pinnedRowCols)
	g.appendBand(m, header, left)

	if s := g.session; s != nil {
		m.Edit = &EditView{
			Cell:     s.Cell(),
			Kind:     s.Kind,
			Input:    s.Input,
			Text:     s.Text,
			Message:  s.Message,
			Matches:  s.Matches(),
			Date:     s.Date,
			Rect:     g.ScreenRect(s.Row, s.Col),
			Original: s.Original,
		}
	}
	return m
}

func (g *Grid) appendBand(m *RenderModel, rows, cols Range) {
	for row := rows.First; row < rows.End; row++ {
		for col := cols.First; col < cols.End; col++ {
			m.Cells = append(m.Cells, g.describeCell(row, col))
		}
	}
}

// rowChecked reports whether any selection column has row checked.
func (g *Grid) rowChecked(row int) bool {
	for _, spec := range g.columns {
		if spec.HasCheckbox() && spec.Selection.Selected(row) {
			return true
		}
	}
	return false
}

func (g *Grid) describeCell(row, col int) CellDescriptor {
	spec := g.column(col)
	region := regionOf(row, col, g.cfg.PinnedRows, g.cfg.PinnedCols)
	isHeader := row < g.cfg.PinnedRows

	d := CellDescriptor{
		Row:        row,
		Col:        col,
		Region:     region,
		Text:       g.displayText(row, col),
		Rect:       g.ScreenRect(row, col),
		Clip:       g.regionClip(region),
		Header:     isHeader,
		RowChecked: !isHeader && g.rowChecked(row),
		Selected:   g.selection.Row == row && g.selection.Col == col,
		Editing:    g.session != nil && g.session.Row == row && g.session.Col == col,
		Custom:     spec.Render != nil,
		Input:      spec.Input,
		Checkbox:   spec.HasCheckbox() && (!isHeader || row == 0),
		Sortable:   isHeader && spec.Sortable,
	}

	textWidth := d.Rect.W - 2*g.cfg.CellPadding
	if d.Checkbox {
		textWidth -= g.cfg.CheckboxInset
		d.CheckboxRect = g.checkboxRect(d.Rect)
		if isHeader {
			d.Check = SelectAllState(spec.Selection, g.cfg.PinnedRows, g.rows)
		} else {
			d.Check = checkStateOf(spec.Selection.Selected(row))
		}
	}
	d.Lines = WrapText(g.cfg.Measurer, strings.TrimSpace(d.Text), textWidth, WrapModeAuto)

	if d.Sortable && g.sort.Column == col {
		d.Sort = g.sort.Direction
	}
	return d
}
