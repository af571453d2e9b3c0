// Package terminal draws datagrid render models on a tcell screen and feeds
// tcell events into a grid. One grid pixel is one terminal cell.
package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/datagrid"
)

// Checkbox glyphs. Their width is the checkbox inset used by Options.
const (
	boxUnchecked     = "[ ]"
	boxChecked       = "[x]"
	boxIndeterminate = "[-]"
	checkboxInset    = 4
)

// Options returns grid options that size cells in terminal cells.
func Options() []datagrid.Option {
	return []datagrid.Option{
		datagrid.WithMeasurer(datagrid.MonospaceMeasurer{CharWidth: 1, CharHeight: 1}),
		datagrid.WithCellSize(14, 1),
		datagrid.WithPadding(0, checkboxInset),
	}
}

// color converts a packed datagrid color. Fully transparent maps to the
// terminal default.
func color(c uint32) tcell.Color {
	r, g, b, a := datagrid.UnpackRGBA(c)
	if a == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// cellRect is a rectangle snapped to terminal cells, half-open.
type cellRect struct {
	x0, y0, x1, y1 int
}

func snap(r datagrid.Rect) cellRect {
	return cellRect{x0: int(r.X), y0: int(r.Y), x1: int(r.X + r.W), y1: int(r.Y + r.H)}
}

func (c cellRect) intersect(o cellRect) cellRect {
	return cellRect{
		x0: max(c.x0, o.x0), y0: max(c.y0, o.y0),
		x1: min(c.x1, o.x1), y1: min(c.y1, o.y1),
	}
}

func (c cellRect) contains(x, y int) bool {
	return x >= c.x0 && x < c.x1 && y >= c.y0 && y < c.y1
}

// Paint draws the model onto screen. It does not call Show.
func Paint(screen tcell.Screen, m *datagrid.RenderModel) {
	st := m.Style
	bounds := snap(m.Bounds)
	fill(screen, bounds, tcell.StyleDefault.Background(color(st.BodyBgColor)))

	for i := range m.Cells {
		paintCell(screen, m, &m.Cells[i], bounds)
	}
	if m.Edit != nil {
		paintEdit(screen, m, bounds)
	}
}

func cellStyle(st datagrid.Style, c *datagrid.CellDescriptor) tcell.Style {
	fg := st.TextColor
	switch {
	case c.Header:
		fg = st.HeaderText()
	case c.Custom:
		fg = st.TextDisabledColor
	}
	style := tcell.StyleDefault.Foreground(color(fg)).Background(color(st.CellBackground(c)))
	if c.Header {
		style = style.Bold(true)
	}
	if c.Selected {
		style = style.Reverse(true)
	}
	return style
}

func paintCell(screen tcell.Screen, m *datagrid.RenderModel, c *datagrid.CellDescriptor, bounds cellRect) {
	rect := snap(c.Rect)
	clip := rect.intersect(snap(c.Clip)).intersect(bounds)
	if clip.x0 >= clip.x1 || clip.y0 >= clip.y1 {
		return
	}
	style := cellStyle(m.Style, c)
	fill(screen, clip, style)
	if c.Editing {
		return
	}

	pad := int(m.Padding)
	x := rect.x0 + pad
	if c.Checkbox {
		box := boxUnchecked
		switch c.Check {
		case datagrid.Checked:
			box = boxChecked
		case datagrid.Indeterminate:
			box = boxIndeterminate
		}
		drawText(screen, x, rect.y0+pad, box, style.Foreground(color(m.Style.CheckboxColor)), clip)
		x += checkboxInset
	}
	for i, line := range c.Lines {
		drawText(screen, x, rect.y0+pad+i, line, style, clip)
	}

	if c.Sortable && c.Sort != datagrid.SortNone {
		arrow := "▲"
		if c.Sort == datagrid.SortDescending {
			arrow = "▼"
		}
		drawText(screen, rect.x1-1, rect.y0, arrow, style.Foreground(color(m.Style.SortArrowColor)), clip)
	}
}

func paintEdit(screen tcell.Screen, m *datagrid.RenderModel, bounds cellRect) {
	st := m.Style
	e := m.Edit
	rect := snap(e.Rect).intersect(bounds)
	style := tcell.StyleDefault.
		Foreground(color(st.TextColor)).
		Background(color(st.EditingBgColor)).
		Underline(true)
	fill(screen, rect, style)

	lines := strings.Split(e.Text, "\n")
	// Keep the end of the text (where the cursor is) in view.
	last := lines[len(lines)-1] + "_"
	if over := runewidth.StringWidth(last) - (rect.x1 - rect.x0); over > 0 {
		last = runewidth.TruncateLeft(last, over, "")
	}
	drawText(screen, rect.x0, rect.y0, last, style, rect)

	y := snap(e.Rect).y1
	below := cellRect{x0: rect.x0, y0: y, x1: rect.x1, y1: bounds.y1}
	if e.Message != "" {
		msgStyle := tcell.StyleDefault.Foreground(color(st.ErrorTextColor)).Background(color(st.DropdownBgColor))
		fill(screen, cellRect{x0: below.x0, y0: y, x1: below.x1, y1: y + 1}.intersect(bounds), msgStyle)
		drawText(screen, below.x0, y, e.Message, msgStyle, below)
		y++
	}
	if e.Kind != datagrid.SurfaceSuggestions {
		return
	}
	listStyle := tcell.StyleDefault.Foreground(color(st.TextColor)).Background(color(st.DropdownBgColor))
	for i, it := range e.Matches {
		if y >= bounds.y1 {
			break
		}
		s := listStyle
		if i == 0 {
			s = s.Background(color(st.MatchHighlightColor))
		}
		fill(screen, cellRect{x0: below.x0, y0: y, x1: below.x1, y1: y + 1}.intersect(bounds), s)
		drawText(screen, below.x0, y, it, s, below)
		y++
	}
}

func fill(screen tcell.Screen, r cellRect, style tcell.Style) {
	for y := r.y0; y < r.y1; y++ {
		for x := r.x0; x < r.x1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes s starting at (x, y), skipping cells outside clip. Wide
// runes take two cells and are dropped when only one cell is left.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style, clip cellRect) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= clip.x1 {
			return
		}
		if clip.contains(x, y) && (w == 1 || x+1 < clip.x1) {
			screen.SetContent(x, y, r, nil, style)
		}
		x += w
	}
}
