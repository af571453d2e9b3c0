package datagrid

// SortDirection is the direction of the active sort column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "none"
	}
}

// action maps the direction to the callback action announcing it.
func (d SortDirection) action() Action {
	switch d {
	case SortAscending:
		return ActionSortAscending
	case SortDescending:
		return ActionSortDescending
	default:
		return ActionSortNone
	}
}

// NoSortColumn marks a sort state without an active column. A tap on a
// non-sortable header also leaves the state here.
const NoSortColumn = -1

// SortState is the single active sort column and its direction.
type SortState struct {
	Column    int
	Direction SortDirection
}

// Active reports whether a column is sorted in some direction.
func (s SortState) Active() bool {
	return s.Column != NoSortColumn && s.Direction != SortNone
}

// NextSortState returns the state after a header tap on col.
//
// A different column always starts ascending. On the same column the cycle is
// none -> ascending -> descending -> none with triState, and
// ascending <-> descending without it.
func NextSortState(cur SortState, col int, triState bool) SortState {
	if cur.Column != col {
		return SortState{Column: col, Direction: SortAscending}
	}
	switch cur.Direction {
	case SortAscending:
		return SortState{Column: col, Direction: SortDescending}
	case SortDescending:
		if triState {
			return SortState{Column: col, Direction: SortNone}
		}
		return SortState{Column: col, Direction: SortAscending}
	default:
		return SortState{Column: col, Direction: SortAscending}
	}
}
