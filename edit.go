package datagrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EditState is the state of a cell's edit state machine.
type EditState int

const (
	EditIdle EditState = iota
	EditEditing
	EditCommitted
	EditCancelled
)

func (s EditState) String() string {
	switch s {
	case EditEditing:
		return "editing"
	case EditCommitted:
		return "committed"
	case EditCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// SurfaceKind selects the edit surface a backend should present.
type SurfaceKind int

const (
	SurfaceText SurfaceKind = iota
	SurfaceSuggestions
	SurfaceDate
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceSuggestions:
		return "suggestions"
	case SurfaceDate:
		return "date"
	default:
		return "text"
	}
}

// EditOutcome is the result of Submit.
type EditOutcome int

const (
	// OutcomeCommitted means the owner accepted the value and the session closed.
	OutcomeCommitted EditOutcome = iota
	// OutcomeRejected means the value was refused and the session is still open.
	OutcomeRejected
	// OutcomeReverted means free text was refused by a restricted suggestion
	// column; the session closed and the cell keeps its previous value.
	OutcomeReverted
)

func (o EditOutcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// EditSession is the working state of the single open edit surface.
// Backends mutate it through SetText and SetDate and finish it with
// Grid.Submit or Grid.Cancel.
type EditSession struct {
	Row, Col int
	Kind     SurfaceKind
	Input    InputType

	Original string // Cell value when the session opened
	Text     string // Working text
	Message  string // Inline rejection message, empty when none

	// Date is the picker value of a date surface. It is seeded from Original
	// parsed with the column's layout and stays zero when that fails.
	Date time.Time

	layout      string
	suggestions *SuggestionList
}

func newEditSession(row, col int, value string, spec ColumnSpec) *EditSession {
	s := &EditSession{
		Row:         row,
		Col:         col,
		Input:       spec.Input,
		Original:    value,
		Text:        value,
		layout:      spec.DateFormat,
		suggestions: spec.Suggestions,
	}
	switch {
	case spec.Suggestions != nil:
		s.Kind = SurfaceSuggestions
	case spec.DateFormat != "":
		s.Kind = SurfaceDate
		if t, err := time.Parse(spec.DateFormat, strings.TrimSpace(value)); err == nil {
			s.Date = t
		}
	}
	return s
}

// Cell returns the cell being edited.
func (s *EditSession) Cell() CellIndex {
	return CellIndex{Row: s.Row, Col: s.Col}
}

// SetText replaces the working text and clears any rejection message.
func (s *EditSession) SetText(text string) {
	s.Text = text
	s.Message = ""
}

// SetDate sets the picker value and formats it into the working text.
func (s *EditSession) SetDate(t time.Time) {
	s.Date = t
	if s.layout != "" {
		s.Text = t.Format(s.layout)
	}
	s.Message = ""
}

// DateFormat returns the column's time layout, empty for non-date surfaces.
func (s *EditSession) DateFormat() string {
	return s.layout
}

// Matches returns the suggestions containing the working text, ignoring case.
func (s *EditSession) Matches() []string {
	return s.suggestions.Filter(s.Text)
}

// Dirty reports whether the working text differs from the original value.
func (s *EditSession) Dirty() bool {
	return s.Text != s.Original
}

// EditState returns where the edit state machine stands: Editing while a
// session is open, otherwise how the last session ended (Idle before any).
func (g *Grid) EditState() EditState {
	return g.editState
}

// EditSession returns the open edit session, or nil.
func (g *Grid) EditSession() *EditSession {
	return g.session
}

// Editing reports whether an edit surface is open.
func (g *Grid) Editing() bool {
	return g.session != nil
}

// CanEdit reports whether the cell may open an edit surface: the grid is
// editable, the row is not a header row and the column has no custom renderer.
func (g *Grid) CanEdit(row, col int) bool {
	if !g.cfg.Editable {
		return false
	}
	if row < g.cfg.PinnedRows || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return g.columns[col].Editable()
}

// BeginEdit opens an edit surface on the cell and selects it. Any open session
// is cancelled first so at most one session exists.
func (g *Grid) BeginEdit(row, col int) (*EditSession, bool) {
	if !g.CanEdit(row, col) {
		return nil, false
	}
	if g.session != nil {
		g.Cancel()
	}
	g.selectCell(row, col, true)
	g.session = newEditSession(row, col, g.data[row][col], g.columns[col])
	g.editState = EditEditing
	gridLogger.Debug("edit begin", "row", row, "col", col, "surface", g.session.Kind)
	return g.session, true
}

// Cancel discards the open session. Data is left untouched.
func (g *Grid) Cancel() {
	if g.session == nil {
		return
	}
	gridLogger.Debug("edit cancel", "row", g.session.Row, "col", g.session.Col)
	g.session = nil
	g.editState = EditCancelled
}

// Submit offers value for the open session's cell.
//
// The value goes through the column's validator, its date layout and its
// suggestion policy before the owner sees it. A refusal at any of these
// steps, or an owner returning false, keeps the session open with Message set
// and returns a *ValidationError. A restricted suggestion column closes the
// session without calling the owner when the value is not in the list.
func (g *Grid) Submit(value string) (EditOutcome, error) {
	s := g.session
	if s == nil {
		return OutcomeRejected, ErrNoEditSession
	}
	s.Text = value
	spec := g.columns[s.Col]

	if spec.Validator != nil {
		if err := spec.Validator(value); err != nil {
			return g.reject(s, err.Error(), err)
		}
	}

	if spec.DateFormat != "" {
		t, err := time.Parse(spec.DateFormat, strings.TrimSpace(value))
		if err != nil {
			return g.reject(s, fmt.Sprintf("expected a date like %s", spec.DateFormat), err)
		}
		s.Date = t
	}

	if spec.Suggestions != nil {
		if canonical, ok := spec.Suggestions.Lookup(value); ok {
			value = canonical
		} else if spec.SuggestionsAction == SuggestionsRestrict {
			gridLogger.Debug("edit reverted", "row", s.Row, "col", s.Col, "value", value)
			g.session = nil
			g.editState = EditCancelled
			return OutcomeReverted, nil
		}
	}

	if !g.cfg.OnUpdate(s.Row, s.Col, value, ActionUpdate) {
		return g.reject(s, "value was not accepted", nil)
	}

	if spec.Suggestions != nil && spec.SuggestionsAction == SuggestionsAdd {
		if spec.Suggestions.AddIfAbsent(value) {
			gridLogger.Debug("suggestion added", "col", s.Col, "value", value)
		}
	}

	gridLogger.Debug("edit commit", "row", s.Row, "col", s.Col, "value", value)
	g.session = nil
	g.editState = EditCommitted
	if g.cfg.MoveNextAfterEdit {
		if next, ok := g.nextEditableCell(s.Row, s.Col); ok {
			g.selectCell(next.Row, next.Col, true)
			g.ScrollToCell(next.Row, next.Col)
		}
	}
	return OutcomeCommitted, nil
}

// SubmitText submits the session's working text.
func (g *Grid) SubmitText() (EditOutcome, error) {
	if g.session == nil {
		return OutcomeRejected, ErrNoEditSession
	}
	return g.Submit(g.session.Text)
}

func (g *Grid) reject(s *EditSession, msg string, cause error) (EditOutcome, error) {
	s.Message = msg
	gridLogger.Debug("edit rejected", "row", s.Row, "col", s.Col, "value", s.Text, "reason", msg)
	return OutcomeRejected, &ValidationError{Row: s.Row, Col: s.Col, Value: s.Text, Message: msg, Err: cause}
}

// nextEditableCell walks row-major from (row, col). At the end of a row it
// wraps to the first non-pinned column of the next row; it never wraps past
// the last row.
func (g *Grid) nextEditableCell(row, col int) (CellIndex, bool) {
	firstCol := minInt(g.cfg.PinnedCols, g.cols-1)
	r, c := row, col+1
	for r < g.rows {
		for ; c < g.cols; c++ {
			if g.CanEdit(r, c) {
				return CellIndex{Row: r, Col: c}, true
			}
		}
		r++
		c = firstCol
	}
	return CellIndex{}, false
}

// NotBlank is a column validator that refuses empty or whitespace-only values.
func NotBlank(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value must not be empty")
	}
	return nil
}

// Numeric is a column validator that accepts values parsing as a float.
func Numeric(value string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return fmt.Errorf("%q is not a number", value)
	}
	return nil
}
