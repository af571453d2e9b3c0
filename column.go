package datagrid

import "reflect"

// WidthPolicy selects how column widths are derived.
type WidthPolicy int

const (
	// WidthFixed gives every column the configured cell width.
	WidthFixed WidthPolicy = iota
	// WidthPixels uses the configured width list verbatim (pixels).
	WidthPixels
	// WidthRatio treats each width entry as a fraction of the viewport width.
	WidthRatio
)

func (p WidthPolicy) String() string {
	switch p {
	case WidthFixed:
		return "fixed"
	case WidthPixels:
		return "pixels"
	case WidthRatio:
		return "ratio"
	default:
		return "unknown"
	}
}

// InputType is a hint for the edit surface (keyboard layout, picker).
type InputType int

const (
	InputText InputType = iota
	InputNumber
	InputDate
	InputMultiline
)

// SuggestionsAction decides what happens to free text that is not in a column's suggestion list.
type SuggestionsAction int

const (
	// SuggestionsKeep passes novel text through without touching the list.
	SuggestionsKeep SuggestionsAction = iota
	// SuggestionsRestrict rejects novel text and reverts the cell.
	SuggestionsRestrict
	// SuggestionsAdd passes novel text through and remembers it in the list.
	SuggestionsAdd
)

func (a SuggestionsAction) String() string {
	switch a {
	case SuggestionsKeep:
		return "keep"
	case SuggestionsRestrict:
		return "restrict"
	case SuggestionsAdd:
		return "add"
	default:
		return "unknown"
	}
}

// CellRenderer is a custom-render override. The core never edits cells of a
// column that has one; the returned value replaces the cell text in the render model.
type CellRenderer func(row, col int, value string) string

// RowSelection is the caller-owned selection state of a checkbox column.
// Rows beyond Len are treated as unselected.
type RowSelection interface {
	Len() int
	Selected(row int) bool
}

// SelectionFlags is a RowSelection over a plain slice. Pass a pointer so rows
// appended by the owner stay visible to the grid.
type SelectionFlags []bool

// Len returns the number of rows with a flag.
func (s *SelectionFlags) Len() int {
	if s == nil {
		return 0
	}
	return len(*s)
}

// Selected reports the flag for row.
func (s *SelectionFlags) Selected(row int) bool {
	if s == nil || row < 0 || row >= len(*s) {
		return false
	}
	return (*s)[row]
}

// Set stores the flag for row, growing the slice when needed.
func (s *SelectionFlags) Set(row int, v bool) {
	if row < 0 {
		return
	}
	for len(*s) <= row {
		*s = append(*s, false)
	}
	(*s)[row] = v
}

// ColumnSpec configures one column. Specs are indexed parallel to the data columns.
type ColumnSpec struct {
	Input InputType

	Sortable     bool
	TriStateSort bool // none -> asc -> desc -> none instead of asc <-> desc

	// Suggestions, when set, turns the edit surface into a filterable option list.
	// The list is shared across edit sessions and may grow under SuggestionsAdd.
	Suggestions       *SuggestionList
	SuggestionsAction SuggestionsAction

	// DateFormat, when set, turns the edit surface into a date picker.
	// It is a Go time layout such as "2006-01-02".
	DateFormat string

	// Validator rejects submitted values before the owner is asked.
	Validator func(value string) error

	// Selection, when set, renders a checkbox in every cell of the column.
	Selection RowSelection

	// Render overrides cell text and makes the column read-only.
	Render CellRenderer
}

// HasCheckbox reports whether the column renders a selection checkbox.
// A nil pointer stored in Selection counts as no selection.
func (c ColumnSpec) HasCheckbox() bool {
	if c.Selection == nil {
		return false
	}
	v := reflect.ValueOf(c.Selection)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !v.IsNil()
	}
	return true
}

// Editable reports whether cells of this column can open an edit surface.
func (c ColumnSpec) Editable() bool {
	return c.Render == nil
}
