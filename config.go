package datagrid

// Action tells the owner what an onUpdate call is about.
type Action int

const (
	ActionUpdate Action = iota
	ActionAdd
	ActionDelete
	ActionSortAscending
	ActionSortDescending
	ActionSortNone
	ActionSelect
	ActionSelectAll
)

func (a Action) String() string {
	switch a {
	case ActionUpdate:
		return "UPDATE"
	case ActionAdd:
		return "ADD"
	case ActionDelete:
		return "DELETE"
	case ActionSortAscending:
		return "SORT_ASCENDING"
	case ActionSortDescending:
		return "SORT_DESCENDING"
	case ActionSortNone:
		return "SORT_NONE"
	case ActionSelect:
		return "SELECT"
	case ActionSelectAll:
		return "SELECT_ALL"
	default:
		return "UNKNOWN"
	}
}

// UpdateFunc is the owner's mutation hook. For ActionUpdate the return value
// commits (true) or keeps the edit surface open (false); it is ignored otherwise.
// Column-level actions (sort, select-all) pass row -1; row-level actions
// (add, delete) pass col -1. Boolean values are "true" or "false".
type UpdateFunc func(row, col int, value string, action Action) bool

// SelectCellFunc is called whenever the selected cell changes. refresh is false
// when the grid corrected an out-of-range selection on its own.
type SelectCellFunc func(row, col int, refresh bool)

// Config holds everything a Grid needs besides its data and column specs.
type Config struct {
	PinnedRows int
	PinnedCols int

	CellSize Vec2 // Default cell width (fixed policy) and default row height

	WidthPolicy  WidthPolicy
	ColumnWidths []float32 // Pixels or ratios, depending on WidthPolicy

	Editable          bool
	MoveNextAfterEdit bool

	CellPadding   float32 // Inner padding on each side of the cell text
	CheckboxInset float32 // Extra left inset in columns that render a checkbox

	Style    Style        // Passed through to the render model untouched
	Measurer TextMeasurer // Used by the row-height calculator

	Outer   OuterScroller // Enclosing scrollable, if embedded
	Physics ScrollPhysics

	Clipboard ClipboardProvider // Target of Copy and source of Paste, optional

	OnUpdate     UpdateFunc
	OnSelectCell SelectCellFunc
}

// Option configures a Grid.
type Option func(*Config)

// DefaultConfig returns the configuration used before options are applied.
func DefaultConfig() Config {
	return Config{
		PinnedRows:    1,
		CellSize:      Vec2{X: 120, Y: 32},
		WidthPolicy:   WidthFixed,
		CellPadding:   SpaceSM,
		CheckboxInset: 24,
		Style:         DefaultStyle(),
		Measurer:      MonospaceMeasurer{CharWidth: 8, CharHeight: 16},
		Physics:       PhysicsClamping,
	}
}

// WithPinned sets the number of pinned header rows and pinned columns.
func WithPinned(rows, cols int) Option {
	return func(c *Config) { c.PinnedRows, c.PinnedCols = rows, cols }
}

// WithCellSize sets the default cell width and row height.
func WithCellSize(w, h float32) Option {
	return func(c *Config) { c.CellSize = Vec2{X: w, Y: h} }
}

// WithWidthPolicy sets the column width policy and its width list.
func WithWidthPolicy(policy WidthPolicy, widths ...float32) Option {
	return func(c *Config) {
		c.WidthPolicy = policy
		c.ColumnWidths = widths
	}
}

// WithPixelWidths uses literal pixel widths, one per column.
func WithPixelWidths(widths ...float32) Option {
	return WithWidthPolicy(WidthPixels, widths...)
}

// WithRatioWidths sizes columns as fractions of the viewport width.
func WithRatioWidths(ratios ...float32) Option {
	return WithWidthPolicy(WidthRatio, ratios...)
}

// WithEditable makes the grid editable. onUpdate is required.
func WithEditable(onUpdate UpdateFunc) Option {
	return func(c *Config) {
		c.Editable = true
		c.OnUpdate = onUpdate
	}
}

// WithOnUpdate sets the owner callback without making cells editable,
// so sort and selection intents still reach a read-only grid's owner.
func WithOnUpdate(onUpdate UpdateFunc) Option {
	return func(c *Config) { c.OnUpdate = onUpdate }
}

// WithMoveNextAfterEdit advances the selection after every committed edit.
func WithMoveNextAfterEdit(v bool) Option {
	return func(c *Config) { c.MoveNextAfterEdit = v }
}

// WithOnSelectCell sets the selection-change callback.
func WithOnSelectCell(fn SelectCellFunc) Option {
	return func(c *Config) { c.OnSelectCell = fn }
}

// WithStyle sets the style tokens handed to the painter.
func WithStyle(style Style) Option {
	return func(c *Config) { c.Style = style }
}

// WithMeasurer sets the text measurer used for row heights.
func WithMeasurer(m TextMeasurer) Option {
	return func(c *Config) { c.Measurer = m }
}

// WithPadding sets the cell padding and the checkbox inset.
func WithPadding(padding, checkboxInset float32) Option {
	return func(c *Config) {
		c.CellPadding = padding
		c.CheckboxInset = checkboxInset
	}
}

// WithOuterScroll embeds the grid in a larger scrollable region.
func WithOuterScroll(outer OuterScroller, physics ScrollPhysics) Option {
	return func(c *Config) {
		c.Outer = outer
		c.Physics = physics
	}
}

// applyOptions applies all options on top of DefaultConfig.
func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// validate checks the configuration against the data shape.
func (c *Config) validate(rows, cols int, columns []ColumnSpec) error {
	if c.CellSize.X <= 0 || c.CellSize.Y <= 0 {
		return configErrorf("CellSize", "must be positive, got %vx%v", c.CellSize.X, c.CellSize.Y)
	}
	if c.PinnedRows < 0 || c.PinnedRows > rows {
		return configErrorf("PinnedRows", "%d outside [0,%d]", c.PinnedRows, rows)
	}
	if c.PinnedCols < 0 || c.PinnedCols > cols {
		return configErrorf("PinnedCols", "%d outside [0,%d]", c.PinnedCols, cols)
	}
	if c.CellPadding < 0 || c.CheckboxInset < 0 {
		return configErrorf("CellPadding", "padding and checkbox inset must not be negative")
	}
	if c.Measurer == nil {
		return configErrorf("Measurer", "a text measurer is required")
	}
	if len(columns) != 0 && len(columns) != cols {
		return configErrorf("Columns", "%d column specs for %d columns", len(columns), cols)
	}
	if c.Editable {
		if len(columns) == 0 {
			return configErrorf("Columns", "an editable grid needs one column spec per column")
		}
		if c.OnUpdate == nil {
			return configErrorf("OnUpdate", "required when the grid is editable")
		}
	}
	for i, col := range columns {
		if col.SuggestionsAction != SuggestionsKeep && col.Suggestions == nil {
			return configErrorf("Columns", "column %d sets %s without a suggestion list", i, col.SuggestionsAction)
		}
		if col.Suggestions != nil && col.DateFormat != "" {
			return configErrorf("Columns", "column %d declares both suggestions and a date format", i)
		}
	}
	switch c.WidthPolicy {
	case WidthFixed:
	case WidthPixels, WidthRatio:
		if len(c.ColumnWidths) == 0 {
			return configErrorf("ColumnWidths", "%s policy needs a width list", c.WidthPolicy)
		}
		if len(c.ColumnWidths) != cols {
			return configErrorf("ColumnWidths", "%d widths for %d columns", len(c.ColumnWidths), cols)
		}
		for i, w := range c.ColumnWidths {
			if w <= 0 {
				return configErrorf("ColumnWidths", "width %d is %v, must be positive", i, w)
			}
		}
	default:
		return configErrorf("WidthPolicy", "unknown policy %d", c.WidthPolicy)
	}
	return nil
}

// validateData checks the grid invariant: at least one row and column, all rows equal length.
func validateData(data [][]string) (rows, cols int, err error) {
	if len(data) == 0 {
		return 0, 0, configErrorf("Data", "at least one row is required")
	}
	cols = len(data[0])
	if cols == 0 {
		return 0, 0, configErrorf("Data", "at least one column is required")
	}
	for i, row := range data {
		if len(row) != cols {
			return 0, 0, configErrorf("Data", "row %d has %d cells, expected %d", i, len(row), cols)
		}
	}
	return len(data), cols, nil
}
