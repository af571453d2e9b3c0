package datagrid

import "strings"

// maxDropdownItems caps the suggestion list painted under an edit surface.
const maxDropdownItems = 6

// Paint appends a render model to dl. fontTexture is the backend's bitmap
// font texture; solid primitives use texture 0.
//
// Cells are painted band by band in model order, so pinned bands cover the
// body where they overlap. The edit surface is painted last, on top.
func Paint(dl *DrawList, m *RenderModel, fontTexture uint32) {
	st := m.Style
	dl.PushClip(m.Bounds)
	dl.SetTexture(0)
	dl.AddRect(m.Bounds.X, m.Bounds.Y, m.Bounds.W, m.Bounds.H, st.BodyBgColor)

	for start := 0; start < len(m.Cells); {
		end := start + 1
		for end < len(m.Cells) && m.Cells[end].Region == m.Cells[start].Region {
			end++
		}
		band := m.Cells[start:end]

		dl.PushClip(band[0].Clip.Intersect(m.Bounds))
		dl.SetTexture(0)
		for i := range band {
			paintCellChrome(dl, m, &band[i])
		}
		dl.SetTexture(fontTexture)
		for i := range band {
			paintCellText(dl, m, &band[i])
		}
		dl.PopClipRect()
		start = end
	}

	paintSeparators(dl, m)
	if m.Edit != nil {
		paintEditSurface(dl, m, fontTexture)
	}
	dl.PopClipRect()
}

func paintCellChrome(dl *DrawList, m *RenderModel, c *CellDescriptor) {
	st := m.Style
	r := c.Rect

	dl.AddRect(r.X, r.Y, r.W, r.H, st.CellBackground(c))

	// Right and bottom grid lines; neighbors draw the others.
	b := maxf(st.BorderSize, 1)
	dl.AddRect(r.X+r.W-b, r.Y, b, r.H, st.BorderColor)
	dl.AddRect(r.X, r.Y+r.H-b, r.W, b, st.BorderColor)

	if c.Checkbox {
		paintCheckbox(dl, m, c)
	}
	if c.Sortable && c.Sort != SortNone {
		paintSortArrow(dl, m, c)
	}
	if c.Selected {
		dl.AddRectOutline(r.X, r.Y, r.W, r.H, st.SelectedBorderColor, 2*b)
	}
}

func paintCheckbox(dl *DrawList, m *RenderModel, c *CellDescriptor) {
	st := m.Style
	box := minf(m.LineHeight, c.CheckboxRect.W-m.Padding)
	if box <= 2 {
		return
	}
	x := c.CheckboxRect.X + m.Padding
	y := c.Rect.Y + m.Padding

	dl.AddRectOutline(x, y, box, box, st.CheckboxColor, 1)
	switch c.Check {
	case Checked:
		dl.AddLine(x+box*0.2, y+box*0.5, x+box*0.45, y+box*0.75, st.CheckboxColor, 2)
		dl.AddLine(x+box*0.45, y+box*0.75, x+box*0.8, y+box*0.25, st.CheckboxColor, 2)
	case Indeterminate:
		dl.AddRect(x+box*0.2, y+box*0.45, box*0.6, box*0.1+1, st.CheckboxColor)
	}
}

func paintSortArrow(dl *DrawList, m *RenderModel, c *CellDescriptor) {
	const size float32 = 8
	x := c.Rect.X + c.Rect.W - m.Padding - size
	cy := c.Rect.Y + c.Rect.H/2
	color := m.Style.SortArrowColor
	if c.Sort == SortAscending {
		dl.AddTriangle(x, cy+size/2, x+size, cy+size/2, x+size/2, cy-size/2, color)
	} else {
		dl.AddTriangle(x, cy-size/2, x+size, cy-size/2, x+size/2, cy+size/2, color)
	}
}

func paintCellText(dl *DrawList, m *RenderModel, c *CellDescriptor) {
	if c.Editing {
		return
	}
	st := m.Style
	color := st.TextColor
	switch {
	case c.Header:
		color = st.HeaderText()
	case c.Custom:
		color = st.TextDisabledColor
	}

	x := c.Rect.X + m.Padding
	if c.Checkbox {
		x += c.CheckboxRect.W - m.Padding
	}
	y := c.Rect.Y + m.Padding
	for _, line := range c.Lines {
		if y >= c.Rect.Y+c.Rect.H {
			break
		}
		dl.AddText(x, y, line, color, st.FontScale, st.CharWidth, st.CharHeight)
		y += m.LineHeight
	}
}

// paintSeparators draws the edges of the pinned bands.
func paintSeparators(dl *DrawList, m *RenderModel) {
	dl.SetTexture(0)
	b := m.Bounds
	color := m.Style.BorderColor
	if m.PinnedSize.Y > 0 && m.PinnedSize.Y < b.H {
		dl.AddRect(b.X, b.Y+m.PinnedSize.Y-1, b.W, 2, color)
	}
	if m.PinnedSize.X > 0 && m.PinnedSize.X < b.W {
		dl.AddRect(b.X+m.PinnedSize.X-1, b.Y, 2, b.H, color)
	}
}

func paintEditSurface(dl *DrawList, m *RenderModel, fontTexture uint32) {
	st := m.Style
	e := m.Edit
	r := e.Rect
	rowH := m.LineHeight + 2*m.Padding

	dl.SetTexture(0)
	dl.AddRect(r.X, r.Y, r.W, r.H, st.EditingBgColor)
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, st.SelectedBorderColor, 2)

	below := r.Y + r.H
	if e.Message != "" {
		dl.AddRect(r.X, below, r.W, rowH, st.DropdownBgColor)
	}
	matches := e.Matches
	if len(matches) > maxDropdownItems {
		matches = matches[:maxDropdownItems]
	}
	listY := below
	if e.Message != "" {
		listY += rowH
	}
	if e.Kind == SurfaceSuggestions && len(matches) > 0 {
		dl.AddRect(r.X, listY, r.W, rowH*float32(len(matches)), st.DropdownBgColor)
		dl.AddRect(r.X, listY, r.W, rowH, st.MatchHighlightColor)
		dl.AddRectOutline(r.X, listY, r.W, rowH*float32(len(matches)), st.BorderColor, 1)
	}

	dl.SetTexture(fontTexture)
	x := r.X + m.Padding
	y := r.Y + m.Padding
	for _, line := range strings.Split(e.Text+"_", "\n") {
		dl.AddText(x, y, line, st.TextColor, st.FontScale, st.CharWidth, st.CharHeight)
		y += m.LineHeight
	}
	if e.Message != "" {
		dl.AddText(x, below+m.Padding, e.Message, st.ErrorTextColor, st.FontScale, st.CharWidth, st.CharHeight)
	}
	if e.Kind == SurfaceSuggestions {
		for i, it := range matches {
			dl.AddText(x, listY+float32(i)*rowH+m.Padding, it, st.TextColor, st.FontScale, st.CharWidth, st.CharHeight)
		}
	}
}
