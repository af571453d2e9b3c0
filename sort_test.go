package datagrid

import (
	"slices"
	"testing"
)

func TestNextSortStateCycles(t *testing.T) {
	tests := []struct {
		name     string
		triState bool
		want     []SortDirection
	}{
		{"two state", false, []SortDirection{SortAscending, SortDescending, SortAscending, SortDescending}},
		{"tri state", true, []SortDirection{SortAscending, SortDescending, SortNone, SortAscending}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SortState{Column: NoSortColumn}
			for i, want := range tt.want {
				s = NextSortState(s, 2, tt.triState)
				if s.Column != 2 || s.Direction != want {
					t.Errorf("tap %d: %+v, want column 2 %v", i+1, s, want)
				}
			}
		})
	}
}

func TestNextSortStateOtherColumnStartsAscending(t *testing.T) {
	s := SortState{Column: 1, Direction: SortDescending}
	if got := NextSortState(s, 3, true); got != (SortState{Column: 3, Direction: SortAscending}) {
		t.Errorf("NextSortState = %+v, want column 3 ascending", got)
	}
}

func sortGrid(t *testing.T, triState bool) (*Grid, *recorder) {
	t.Helper()
	columns := plainColumns(3)
	columns[1] = ColumnSpec{Sortable: true, TriStateSort: triState}
	rec := &recorder{}
	return newTestGrid(t, matrix(5, 3), columns, rec), rec
}

func TestHeaderTapSortScenario(t *testing.T) {
	tests := []struct {
		name     string
		triState bool
		want     []SortDirection
		actions  []Action
	}{
		{
			"two state", false,
			[]SortDirection{SortAscending, SortDescending, SortAscending},
			[]Action{ActionSortAscending, ActionSortDescending, ActionSortAscending},
		},
		{
			"tri state", true,
			[]SortDirection{SortAscending, SortDescending, SortNone},
			[]Action{ActionSortAscending, ActionSortDescending, ActionSortNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := sortGrid(t, tt.triState)
			var got []SortDirection
			for range 3 {
				if res := g.Tap(center(g, 0, 1)); res.Kind != TapSort {
					t.Fatalf("tap kind = %v, want sort", res.Kind)
				}
				got = append(got, g.SortState().Direction)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("directions = %v, want %v", got, tt.want)
			}

			// Every change clears the selection first, then announces the sort.
			if len(rec.calls) != 6 {
				t.Fatalf("calls = %+v, want 6", rec.calls)
			}
			for i, want := range tt.actions {
				reset, announce := rec.calls[2*i], rec.calls[2*i+1]
				if reset != (call{row: -1, col: 1, value: "false", action: ActionSelectAll}) {
					t.Errorf("tap %d: first call = %+v, want SELECT_ALL(false)", i+1, reset)
				}
				if announce.action != want || announce.row != -1 || announce.col != 1 {
					t.Errorf("tap %d: second call = %+v, want %v", i+1, announce, want)
				}
			}
		})
	}
}

func TestHeaderTapNonSortable(t *testing.T) {
	g, rec := sortGrid(t, false)
	g.Tap(center(g, 0, 1))

	res := g.Tap(center(g, 0, 2))
	if res.Kind != TapHeader {
		t.Errorf("tap kind = %v, want header", res.Kind)
	}
	if s := g.SortState(); s.Column != NoSortColumn || s.Direction != SortNone {
		t.Errorf("sort state = %+v, want none marker", s)
	}
	if len(rec.calls) != 2 {
		t.Errorf("non-sortable tap emitted callbacks: %+v", rec.calls[2:])
	}
	if _, ok := g.LocateHeaderColumnAt(center(g, 0, 2)); ok {
		t.Error("LocateHeaderColumnAt yielded a non-sortable column")
	}
	if col, ok := g.LocateHeaderColumnAt(center(g, 0, 1)); !ok || col != 1 {
		t.Errorf("LocateHeaderColumnAt = %d, %v, want 1, true", col, ok)
	}
	if _, ok := g.LocateHeaderColumnAt(center(g, 2, 1)); ok {
		t.Error("LocateHeaderColumnAt hit outside the header band")
	}
}

func TestSortArrowInRenderModel(t *testing.T) {
	g, _ := sortGrid(t, false)
	g.Tap(center(g, 0, 1))
	g.Tap(center(g, 0, 1))

	m := g.Render()
	c, ok := m.Cell(0, 1)
	if !ok {
		t.Fatal("header cell not materialized")
	}
	if !c.Sortable || c.Sort != SortDescending {
		t.Errorf("header cell sortable=%v sort=%v, want descending", c.Sortable, c.Sort)
	}
	if body, _ := m.Cell(1, 1); body.Sortable || body.Sort != SortNone {
		t.Errorf("body cell carries sort state: %+v", body)
	}
}
