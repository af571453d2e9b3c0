package datagrid

// CheckState is the displayed state of a checkbox.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
	Indeterminate
)

func (s CheckState) String() string {
	switch s {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}

// CellIndex addresses one cell.
type CellIndex struct {
	Row, Col int
}

// SelectAllState derives the header checkbox from the owner's selection:
// checked when every row in [firstRow, rows) is selected, unchecked when none
// is, indeterminate otherwise. With no selectable rows it is unchecked.
func SelectAllState(sel RowSelection, firstRow, rows int) CheckState {
	if sel == nil || firstRow >= rows {
		return Unchecked
	}
	selected := 0
	for r := firstRow; r < rows; r++ {
		if sel.Selected(r) {
			selected++
		}
	}
	switch selected {
	case 0:
		return Unchecked
	case rows - firstRow:
		return Checked
	default:
		return Indeterminate
	}
}

func checkStateOf(v bool) CheckState {
	if v {
		return Checked
	}
	return Unchecked
}
