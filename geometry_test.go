package datagrid

import (
	"errors"
	"testing"
)

func TestComputeColumnWidthsPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy WidthPolicy
		widths []float32
		want   []float32
	}{
		{"fixed", WidthFixed, nil, []float32{80, 80, 80}},
		{"pixels", WidthPixels, []float32{10, 20, 30}, []float32{10, 20, 30}},
		{"ratio", WidthRatio, []float32{0.5, 0.25, 0.25}, []float32{200, 100, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			widths, offsets, err := ComputeColumnWidths(3, tt.policy, tt.widths, 80, 400)
			if err != nil {
				t.Fatalf("ComputeColumnWidths: %v", err)
			}
			if len(offsets) != len(widths)+1 {
				t.Fatalf("len(offsets) = %d, want %d", len(offsets), len(widths)+1)
			}
			if offsets[0] != 0 {
				t.Errorf("offsets[0] = %v, want 0", offsets[0])
			}
			for i := range widths {
				if widths[i] != tt.want[i] {
					t.Errorf("widths[%d] = %v, want %v", i, widths[i], tt.want[i])
				}
				if offsets[i+1]-offsets[i] != widths[i] {
					t.Errorf("offset delta %d = %v, want %v", i, offsets[i+1]-offsets[i], widths[i])
				}
			}
		})
	}
}

func TestRatioWidthsFillViewport(t *testing.T) {
	ratios := []float32{0.1, 0.2, 0.3, 0.15, 0.25}
	for _, vw := range []float32{100, 333, 1024, 1919.5} {
		widths, offsets, err := ComputeColumnWidths(len(ratios), WidthRatio, ratios, 0, vw)
		if err != nil {
			t.Fatalf("ComputeColumnWidths: %v", err)
		}
		var sum float32
		for _, w := range widths {
			sum += w
		}
		if d := sum - vw; d > 0.01 || d < -0.01 {
			t.Errorf("viewport %v: widths sum to %v", vw, sum)
		}
		if d := offsets[len(offsets)-1] - sum; d > 0.01 || d < -0.01 {
			t.Errorf("viewport %v: last offset %v, sum %v", vw, offsets[len(offsets)-1], sum)
		}
	}
}

func TestComputeColumnWidthsErrors(t *testing.T) {
	tests := []struct {
		name   string
		cols   int
		policy WidthPolicy
		widths []float32
	}{
		{"pixel length mismatch", 3, WidthPixels, []float32{10, 20}},
		{"missing ratios", 2, WidthRatio, nil},
		{"ratio length mismatch", 2, WidthRatio, []float32{1}},
		{"no columns", 0, WidthFixed, nil},
		{"unknown policy", 1, WidthPolicy(9), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ComputeColumnWidths(tt.cols, tt.policy, tt.widths, 50, 500)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("err = %T, want *ConfigError", err)
			}
		})
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	data := matrix(3, 2)
	noop := func(int, int, string, Action) bool { return true }
	tests := []struct {
		name    string
		columns []ColumnSpec
		opts    []Option
		field   string
	}{
		{"column spec count", plainColumns(3), nil, "Columns"},
		{"editable without specs", nil, []Option{WithEditable(noop)}, "Columns"},
		{"editable without callback", plainColumns(2), []Option{WithEditable(nil)}, "OnUpdate"},
		{"too many pinned rows", nil, []Option{WithPinned(4, 0)}, "PinnedRows"},
		{"pixel widths mismatch", nil, []Option{WithPixelWidths(10)}, "ColumnWidths"},
		{"ratio policy without ratios", nil, []Option{WithRatioWidths()}, "ColumnWidths"},
		{"negative width", nil, []Option{WithPixelWidths(10, -1)}, "ColumnWidths"},
		{"restrict without list", []ColumnSpec{{SuggestionsAction: SuggestionsRestrict}, {}}, nil, "Columns"},
		{"zero cell size", nil, []Option{WithCellSize(0, 10)}, "CellSize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(data, tt.columns, tt.opts...)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestNewRejectsRaggedData(t *testing.T) {
	for _, data := range [][][]string{
		nil,
		{{}},
		{{"a", "b"}, {"c"}},
	} {
		if _, err := New(data, nil); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("New(%v) err = %v, want ErrInvalidConfig", data, err)
		}
	}
}

func TestGeometryResizeRowsKeepsHeights(t *testing.T) {
	var g Geometry
	g.ResetRows(3, 20)
	g.RowHeights[1] = 50
	g.updateRowOffsets()

	g.ResizeRows(5, 20)
	want := []float32{20, 50, 20, 20, 20}
	for i, h := range g.RowHeights {
		if h != want[i] {
			t.Errorf("RowHeights[%d] = %v, want %v", i, h, want[i])
		}
	}
	if g.TotalHeight() != 130 {
		t.Errorf("TotalHeight = %v, want 130", g.TotalHeight())
	}

	g.ResizeRows(2, 20)
	if g.Rows() != 2 || g.TotalHeight() != 70 {
		t.Errorf("after shrink: rows %d, height %v", g.Rows(), g.TotalHeight())
	}
}

func TestGeometryPinnedExtents(t *testing.T) {
	g := Geometry{PinnedRows: 1, PinnedCols: 2}
	g.SetColumnWidths([]float32{10, 20, 30})
	g.ResetRows(4, 5)

	if g.PinnedWidth() != 30 || g.ScrollableWidth() != 30 {
		t.Errorf("pinned/scrollable width = %v/%v, want 30/30", g.PinnedWidth(), g.ScrollableWidth())
	}
	if g.PinnedHeight() != 5 || g.ScrollableHeight() != 15 {
		t.Errorf("pinned/scrollable height = %v/%v, want 5/15", g.PinnedHeight(), g.ScrollableHeight())
	}
	if r := g.CellRect(2, 1); r != (Rect{X: 10, Y: 10, W: 20, H: 5}) {
		t.Errorf("CellRect(2,1) = %+v", r)
	}
}
