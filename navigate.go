package datagrid

import "time"

// HandleInput applies one frame of input: a left click taps, the wheel
// scrolls (Shift turns vertical wheel motion horizontal) and keys either
// navigate the selection or edit the open session.
func (g *Grid) HandleInput(in *InputState) {
	if in == nil {
		return
	}
	if in.MouseClicked(MouseButtonLeft) {
		g.Tap(in.MousePos())
	}
	if (in.MouseWheelX != 0 || in.MouseWheelY != 0) && g.bounds.Contains(in.MousePos()) {
		dx, dy := -in.MouseWheelX*wheelStep, -in.MouseWheelY*wheelStep
		if in.ModShift && dx == 0 {
			dx, dy = dy, 0
		}
		g.ScrollBy(dx, dy)
	}

	if g.session != nil {
		g.handleEditKeys(in)
		return
	}
	g.handleNavigationKeys(in)
}

func (g *Grid) handleEditKeys(in *InputState) {
	s := g.session
	if in.KeyPressed(KeyEscape) {
		g.Cancel()
		return
	}

	text := s.Text
	if in.HasInputChars() {
		text += string(in.InputChars)
	}
	if in.KeyRepeated(KeyBackspace) {
		if r := []rune(text); len(r) > 0 {
			text = string(r[:len(r)-1])
		}
	}
	if in.KeyPressed(KeyTab) && s.Kind == SurfaceSuggestions {
		if m := s.Matches(); len(m) > 0 {
			text = m[0]
		}
	}
	if text != s.Text {
		s.SetText(text)
	}
	if in.KeyPressed(KeyPaste) {
		g.Paste()
	}

	if s.Kind == SurfaceDate && !s.Date.IsZero() {
		switch {
		case in.KeyRepeated(KeyUp):
			s.SetDate(s.Date.Add(-24 * time.Hour))
		case in.KeyRepeated(KeyDown):
			s.SetDate(s.Date.Add(24 * time.Hour))
		}
	}

	if in.KeyPressed(KeyEnter) {
		if in.ModShift && s.Input == InputMultiline {
			s.SetText(s.Text + "\n")
			return
		}
		// A rejection keeps the session open with its message set.
		_, _ = g.SubmitText()
	}
}

func (g *Grid) handleNavigationKeys(in *InputState) {
	row, col := g.selection.Row, g.selection.Col
	minRow, minCol := 0, 0
	if g.cfg.Editable {
		minRow = minInt(g.cfg.PinnedRows, g.rows-1)
		minCol = minInt(g.cfg.PinnedCols, g.cols-1)
	}

	switch {
	case in.KeyPressed(KeyEnter), in.KeyPressed(KeyF2):
		g.BeginEdit(row, col)
		return
	case in.KeyPressed(KeyTab):
		next, ok := g.nextEditableCell(row, col)
		if !ok {
			return
		}
		row, col = next.Row, next.Col
	case in.KeyRepeated(KeyUp):
		row--
	case in.KeyRepeated(KeyDown):
		row++
	case in.KeyRepeated(KeyLeft):
		col--
	case in.KeyRepeated(KeyRight):
		col++
	case in.KeyRepeated(KeyPageUp):
		row -= g.pageRows()
	case in.KeyRepeated(KeyPageDown):
		row += g.pageRows()
	case in.KeyPressed(KeyHome):
		col = minCol
	case in.KeyPressed(KeyEnd):
		col = g.cols - 1
	case in.KeyPressed(KeyInsert):
		g.RequestAddRow(row + 1)
		return
	case in.KeyPressed(KeyDelete):
		g.RequestDeleteRow(row)
		return
	case in.KeyPressed(KeyCopy):
		g.Copy()
		return
	case in.KeyPressed(KeyPaste):
		g.Paste()
		return
	default:
		return
	}

	g.Select(clampInt(row, minRow, g.rows-1), clampInt(col, minCol, g.cols-1))
}

// pageRows is the number of rows PageUp and PageDown move by.
func (g *Grid) pageRows() int {
	return maxInt(1, g.bodyRows.Len()-2)
}
