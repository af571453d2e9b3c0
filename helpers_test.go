package datagrid

import (
	"fmt"
	"testing"
)

// call is one recorded onUpdate invocation.
type call struct {
	row, col int
	value    string
	action   Action
}

// recorder is a fake data owner. It records every callback and, when
// applyUpdates is set, writes UPDATE values into data.
type recorder struct {
	calls        []call
	reject       bool
	applyUpdates bool
	data         [][]string
}

func (r *recorder) update(row, col int, value string, action Action) bool {
	r.calls = append(r.calls, call{row, col, value, action})
	if r.reject {
		return false
	}
	if r.applyUpdates && action == ActionUpdate {
		r.data[row][col] = value
	}
	return true
}

func (r *recorder) actions() []Action {
	out := make([]Action, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.action
	}
	return out
}

// selectCall is one recorded onSelectCell invocation.
type selectCall struct {
	row, col int
	refresh  bool
}

// matrix builds a header row plus rows-1 body rows of "r<row>c<col>" cells.
func matrix(rows, cols int) [][]string {
	data := make([][]string, rows)
	for r := range data {
		data[r] = make([]string, cols)
		for c := range data[r] {
			if r == 0 {
				data[r][c] = fmt.Sprintf("H%d", c)
			} else {
				data[r][c] = fmt.Sprintf("r%dc%d", r, c)
			}
		}
	}
	return data
}

// plainColumns returns cols default column specs.
func plainColumns(cols int) []ColumnSpec {
	return make([]ColumnSpec, cols)
}

// newTestGrid creates an editable 100x30 cell grid over data, sized to a
// 400x300 viewport.
func newTestGrid(t *testing.T, data [][]string, columns []ColumnSpec, rec *recorder, opts ...Option) *Grid {
	t.Helper()
	rec.data = data
	base := []Option{
		WithCellSize(100, 30),
		WithPadding(4, 20),
		WithEditable(rec.update),
	}
	g, err := New(data, columns, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Resize(400, 300)
	g.Render()
	return g
}

// center returns the middle of a cell on screen.
func center(g *Grid, row, col int) Vec2 {
	r := g.ScreenRect(row, col)
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}
