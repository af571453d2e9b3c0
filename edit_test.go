package datagrid

import (
	"errors"
	"testing"
	"time"
)

func TestCanEdit(t *testing.T) {
	columns := plainColumns(3)
	columns[2] = ColumnSpec{Render: func(row, col int, v string) string { return "*" + v }}
	rec := &recorder{}
	g := newTestGrid(t, matrix(4, 3), columns, rec)

	tests := []struct {
		row, col int
		want     bool
	}{
		{1, 0, true},
		{3, 1, true},
		{0, 0, false}, // header
		{1, 2, false}, // custom renderer
		{4, 0, false},
		{1, -1, false},
	}
	for _, tt := range tests {
		if got := g.CanEdit(tt.row, tt.col); got != tt.want {
			t.Errorf("CanEdit(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}

	ro, err := New(matrix(4, 3), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ro.CanEdit(1, 0) {
		t.Error("read-only grid reports an editable cell")
	}
	if _, ok := ro.BeginEdit(1, 0); ok {
		t.Error("read-only grid opened an edit session")
	}
}

func TestEditStateMachine(t *testing.T) {
	rec := &recorder{applyUpdates: true}
	g := newTestGrid(t, matrix(4, 3), plainColumns(3), rec)

	if g.EditState() != EditIdle {
		t.Fatalf("initial state = %v, want idle", g.EditState())
	}
	s, ok := g.BeginEdit(1, 1)
	if !ok || g.EditState() != EditEditing {
		t.Fatalf("BeginEdit: ok=%v state=%v", ok, g.EditState())
	}
	if s.Original != "r1c1" || s.Text != "r1c1" || s.Kind != SurfaceText {
		t.Errorf("session = %+v", s)
	}
	if sel := g.Selection(); sel != (CellIndex{Row: 1, Col: 1}) {
		t.Errorf("selection = %+v, want the edited cell", sel)
	}

	// A second session replaces the first; only one is ever open.
	g.BeginEdit(2, 0)
	if cell := g.EditSession().Cell(); cell != (CellIndex{Row: 2, Col: 0}) {
		t.Errorf("open session on %+v, want (2,0)", cell)
	}

	g.Cancel()
	if g.Editing() || g.EditState() != EditCancelled {
		t.Errorf("after Cancel: editing=%v state=%v", g.Editing(), g.EditState())
	}
	if v, _ := g.Cell(2, 0); v != "r2c0" {
		t.Errorf("cancel changed the cell to %q", v)
	}

	g.BeginEdit(2, 0)
	if out, err := g.Submit("x"); err != nil || out != OutcomeCommitted {
		t.Fatalf("Submit = %v, %v", out, err)
	}
	if g.EditState() != EditCommitted {
		t.Errorf("state = %v, want committed", g.EditState())
	}
	if len(rec.calls) != 1 {
		t.Errorf("calls = %+v, want one update", rec.calls)
	}
}

func TestSubmitRoundTrip(t *testing.T) {
	rec := &recorder{applyUpdates: true}
	g := newTestGrid(t, matrix(4, 3), plainColumns(3), rec)

	for _, v := range []string{"hello", "", "  spaced  ", "multi\nline"} {
		g.BeginEdit(2, 1)
		if _, err := g.Submit(v); err != nil {
			t.Fatalf("Submit(%q): %v", v, err)
		}
		if got, _ := g.Cell(2, 1); got != v {
			t.Errorf("Cell after Submit(%q) = %q", v, got)
		}
	}
	want := call{row: 2, col: 1, value: "multi\nline", action: ActionUpdate}
	if last := rec.calls[len(rec.calls)-1]; last != want {
		t.Errorf("last call = %+v, want %+v", last, want)
	}
}

func TestSubmitOwnerRejects(t *testing.T) {
	rec := &recorder{reject: true}
	g := newTestGrid(t, matrix(4, 3), plainColumns(3), rec)
	g.BeginEdit(1, 0)

	out, err := g.Submit("nope")
	if out != OutcomeRejected {
		t.Errorf("outcome = %v, want rejected", out)
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	s := g.EditSession()
	if s == nil {
		t.Fatal("rejected submit closed the session")
	}
	if s.Message == "" || s.Text != "nope" {
		t.Errorf("session = %+v, want message and the refused text", s)
	}
	if v, _ := g.Cell(1, 0); v != "r1c0" {
		t.Errorf("cell mutated to %q", v)
	}

	// Typing clears the message; a retry may succeed.
	s.SetText("yes")
	if s.Message != "" {
		t.Error("SetText kept the message")
	}
	rec.reject = false
	if out, _ := g.SubmitText(); out != OutcomeCommitted {
		t.Errorf("retry outcome = %v", out)
	}
}

func TestSubmitWithoutSession(t *testing.T) {
	rec := &recorder{}
	g := newTestGrid(t, matrix(3, 2), plainColumns(2), rec)
	if _, err := g.Submit("x"); !errors.Is(err, ErrNoEditSession) {
		t.Errorf("err = %v, want ErrNoEditSession", err)
	}
	if _, err := g.SubmitText(); !errors.Is(err, ErrNoEditSession) {
		t.Errorf("err = %v, want ErrNoEditSession", err)
	}
}

func TestValidatorRunsBeforeOwner(t *testing.T) {
	columns := plainColumns(2)
	columns[1] = ColumnSpec{Input: InputNumber, Validator: Numeric}
	rec := &recorder{}
	g := newTestGrid(t, matrix(3, 2), columns, rec)
	g.BeginEdit(1, 1)

	_, err := g.Submit("12x")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Row != 1 || verr.Col != 1 || verr.Value != "12x" {
		t.Errorf("ValidationError = %+v", verr)
	}
	if len(rec.calls) != 0 {
		t.Errorf("owner called for an invalid value: %+v", rec.calls)
	}
	if out, err := g.Submit(" 12.5 "); err != nil || out != OutcomeCommitted {
		t.Errorf("valid number: %v, %v", out, err)
	}
}

func TestDateColumn(t *testing.T) {
	columns := plainColumns(2)
	columns[1] = ColumnSpec{Input: InputDate, DateFormat: "2006-01-02"}
	data := matrix(3, 2)
	data[1][1] = "2024-02-28"
	rec := &recorder{applyUpdates: true}
	g := newTestGrid(t, data, columns, rec)

	s, _ := g.BeginEdit(1, 1)
	if s.Kind != SurfaceDate {
		t.Fatalf("kind = %v, want date", s.Kind)
	}
	if want := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC); !s.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", s.Date, want)
	}
	s.SetDate(s.Date.AddDate(0, 0, 1))
	if s.Text != "2024-02-29" {
		t.Errorf("Text = %q, want 2024-02-29", s.Text)
	}

	if out, _ := g.Submit("29/02/2024"); out != OutcomeRejected {
		t.Errorf("unparsable date outcome = %v", out)
	}
	if len(rec.calls) != 0 {
		t.Errorf("owner called for an unparsable date")
	}
	// SubmitText resubmits the refused text.
	if out, _ := g.SubmitText(); out != OutcomeRejected {
		t.Errorf("resubmitting refused text outcome = %v", out)
	}
	if out, err := g.Submit("2024-02-29"); err != nil || out != OutcomeCommitted {
		t.Fatalf("valid date: %v, %v", out, err)
	}
	if v, _ := g.Cell(1, 1); v != "2024-02-29" {
		t.Errorf("cell = %q", v)
	}

	// An unparsable cell still opens, with a zero picker value.
	data[2][1] = "someday"
	s, _ = g.BeginEdit(2, 1)
	if !s.Date.IsZero() {
		t.Errorf("Date = %v, want zero", s.Date)
	}
}

func suggestionGrid(t *testing.T, action SuggestionsAction, rec *recorder) (*Grid, *SuggestionList) {
	t.Helper()
	list := NewSuggestionList("Red", "Green", "Blue")
	columns := plainColumns(2)
	columns[1] = ColumnSpec{Suggestions: list, SuggestionsAction: action}
	return newTestGrid(t, matrix(3, 2), columns, rec), list
}

func TestSuggestionsRestrict(t *testing.T) {
	rec := &recorder{applyUpdates: true}
	g, list := suggestionGrid(t, SuggestionsRestrict, rec)

	s, _ := g.BeginEdit(1, 1)
	if s.Kind != SurfaceSuggestions {
		t.Fatalf("kind = %v, want suggestions", s.Kind)
	}
	out, err := g.Submit("Purple")
	if err != nil || out != OutcomeReverted {
		t.Fatalf("Submit = %v, %v, want reverted", out, err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("owner called for a restricted value: %+v", rec.calls)
	}
	if v, _ := g.Cell(1, 1); v != "r1c1" {
		t.Errorf("cell = %q, want unchanged", v)
	}
	if g.Editing() || list.Len() != 3 {
		t.Errorf("editing=%v len=%d", g.Editing(), list.Len())
	}

	// Case-insensitive match commits the list's spelling.
	g.BeginEdit(1, 1)
	if out, _ := g.Submit("gReEn"); out != OutcomeCommitted {
		t.Fatalf("known value outcome = %v", out)
	}
	if v, _ := g.Cell(1, 1); v != "Green" {
		t.Errorf("cell = %q, want Green", v)
	}
}

func TestSuggestionsAdd(t *testing.T) {
	rec := &recorder{applyUpdates: true}
	g, list := suggestionGrid(t, SuggestionsAdd, rec)

	rec.reject = true
	g.BeginEdit(1, 1)
	g.Submit("Purple")
	if list.Contains("Purple") {
		t.Error("refused value was added to the list")
	}
	g.Cancel()

	rec.reject = false
	g.BeginEdit(1, 1)
	if out, _ := g.Submit("Purple"); out != OutcomeCommitted {
		t.Fatalf("outcome = %v", out)
	}
	if !list.Contains("purple") || list.Len() != 4 {
		t.Errorf("list = %v, want Purple appended", list.Items())
	}

	g.BeginEdit(2, 1)
	g.Submit("PURPLE")
	if list.Len() != 4 {
		t.Errorf("case variant added: %v", list.Items())
	}
	if v, _ := g.Cell(2, 1); v != "Purple" {
		t.Errorf("cell = %q, want the stored spelling", v)
	}
}

func TestSuggestionsKeep(t *testing.T) {
	rec := &recorder{applyUpdates: true}
	g, list := suggestionGrid(t, SuggestionsKeep, rec)
	g.BeginEdit(1, 1)
	if out, _ := g.Submit("Purple"); out != OutcomeCommitted {
		t.Fatalf("outcome = %v", out)
	}
	if list.Len() != 3 {
		t.Errorf("keep grew the list: %v", list.Items())
	}
	if v, _ := g.Cell(1, 1); v != "Purple" {
		t.Errorf("cell = %q", v)
	}
}

func TestMoveNextAfterEdit(t *testing.T) {
	columns := plainColumns(4)
	columns[2] = ColumnSpec{Render: func(_, _ int, v string) string { return v }}
	rec := &recorder{applyUpdates: true}
	var selected []selectCall
	g := newTestGrid(t, matrix(4, 4), columns, rec,
		WithPinned(1, 1),
		WithMoveNextAfterEdit(true),
		WithOnSelectCell(func(row, col int, refresh bool) {
			selected = append(selected, selectCall{row, col, refresh})
		}))

	steps := []struct {
		from, want CellIndex
	}{
		{CellIndex{Row: 1, Col: 1}, CellIndex{Row: 1, Col: 3}}, // skips the custom column
		{CellIndex{Row: 1, Col: 3}, CellIndex{Row: 2, Col: 1}}, // wraps past the pinned column
		{CellIndex{Row: 3, Col: 3}, CellIndex{Row: 3, Col: 3}}, // no wrap past the last row
	}
	for _, s := range steps {
		g.BeginEdit(s.from.Row, s.from.Col)
		if _, err := g.Submit("v"); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if got := g.Selection(); got != s.want {
			t.Errorf("from %+v: selection %+v, want %+v", s.from, got, s.want)
		}
	}
	for _, c := range selected {
		if !c.refresh {
			t.Errorf("user-driven selection reported refresh=false: %+v", c)
		}
	}
}

func TestMoveNextScrollsIntoView(t *testing.T) {
	rec := &recorder{applyUpdates: true}
	g := newTestGrid(t, matrix(40, 2), plainColumns(2), rec, WithMoveNextAfterEdit(true))

	g.ScrollTo(0, 0)
	g.BeginEdit(9, 1)
	g.Submit("v")
	if sel := g.Selection(); sel != (CellIndex{Row: 10, Col: 0}) {
		t.Fatalf("selection = %+v", sel)
	}
	// Body viewport is 270 px below the 30 px header; row 10 ends at 300.
	if off := g.VerticalScroller().Offset(); off != 30 {
		t.Errorf("vertical offset = %v, want 30", off)
	}
}

func TestValidators(t *testing.T) {
	if NotBlank("  ") == nil || NotBlank("x") != nil {
		t.Error("NotBlank")
	}
	if Numeric("1e3") != nil || Numeric("-2.5") != nil || Numeric("ten") == nil {
		t.Error("Numeric")
	}
}
