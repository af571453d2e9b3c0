// Package inventory is the demo data owner behind the example programs. It
// keeps a stock list, applies every intent a grid reports and hands the grid
// a fresh matrix afterwards.
package inventory

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-theft-auto/datagrid"
)

// DateLayout is the layout of the Restocked column.
const DateLayout = "2006-01-02"

// Column positions.
const (
	ColItem = iota
	ColCategory
	ColQty
	ColPrice
	ColRestocked
	ColValue
	numCols
)

var header = []string{"Item", "Category", "Qty", "Price", "Restocked", "Value"}

type record struct {
	seq      int // insertion order, restored by SORT_NONE
	cells    []string
	selected bool
}

// Inventory owns the rows shown by a grid.
type Inventory struct {
	records    []record
	nextSeq    int
	flags      datagrid.SelectionFlags
	categories *datagrid.SuggestionList
	collator   *collate.Collator
	printer    *message.Printer
	grid       *datagrid.Grid
}

// New returns an inventory seeded with sample stock.
func New() *Inventory {
	inv := &Inventory{
		categories: datagrid.NewSuggestionList("Fruit", "Vegetable", "Dairy", "Bakery", "Pantry"),
		collator:   collate.New(language.English, collate.IgnoreCase),
		printer:    message.NewPrinter(language.English),
	}
	for _, row := range [][]string{
		{"Apples", "Fruit", "120", "0.45", "2024-03-02"},
		{"Bananas", "Fruit", "80", "0.25", "2024-03-05"},
		{"Carrots", "Vegetable", "200", "0.10", "2024-02-27"},
		{"Whole milk", "Dairy", "36", "1.19", "2024-03-06"},
		{"Sourdough loaf with a long name that wraps", "Bakery", "12", "4.50", "2024-03-06"},
		{"Cheddar", "Dairy", "20", "6.75", "2024-02-20"},
		{"Rice", "Pantry", "55", "2.30", "2024-01-15"},
		{"Lentils", "Pantry", "40", "1.80", "2024-01-30"},
		{"Pears", "Fruit", "64", "0.55", "2024-03-01"},
		{"Onions", "Vegetable", "150", "0.08", "2024-02-25"},
		{"Butter", "Dairy", "30", "2.10", "2024-03-03"},
		{"Bagels", "Bakery", "48", "0.90", "2024-03-06"},
	} {
		inv.append(row)
	}
	return inv
}

func (inv *Inventory) append(cells []string) {
	c := make([]string, numCols)
	copy(c, cells)
	inv.records = append(inv.records, record{seq: inv.nextSeq, cells: c})
	inv.nextSeq++
}

// Columns returns the column specs matching Data.
func (inv *Inventory) Columns() []datagrid.ColumnSpec {
	return []datagrid.ColumnSpec{
		ColItem:      {Sortable: true, Selection: &inv.flags, Validator: datagrid.NotBlank},
		ColCategory:  {Sortable: true, Suggestions: inv.categories, SuggestionsAction: datagrid.SuggestionsAdd},
		ColQty:       {Sortable: true, TriStateSort: true, Input: datagrid.InputNumber, Validator: datagrid.Numeric},
		ColPrice:     {Sortable: true, TriStateSort: true, Input: datagrid.InputNumber, Validator: datagrid.Numeric},
		ColRestocked: {Sortable: true, Input: datagrid.InputDate, DateFormat: DateLayout},
		ColValue:     {Render: inv.renderValue},
	}
}

// Data builds the matrix: the header row followed by one row per record.
func (inv *Inventory) Data() [][]string {
	data := make([][]string, 0, len(inv.records)+1)
	data = append(data, slices.Clone(header))
	inv.flags = inv.flags[:0]
	inv.flags = append(inv.flags, false)
	for _, r := range inv.records {
		data = append(data, r.cells)
		inv.flags = append(inv.flags, r.selected)
	}
	return data
}

// Attach remembers the grid that Update refreshes.
func (inv *Inventory) Attach(g *datagrid.Grid) {
	inv.grid = g
}

// Len returns the number of records.
func (inv *Inventory) Len() int { return len(inv.records) }

// Selected returns the names of the checked items.
func (inv *Inventory) Selected() []string {
	var out []string
	for _, r := range inv.records {
		if r.selected {
			out = append(out, r.cells[ColItem])
		}
	}
	return out
}

// Update is the grid's onUpdate callback.
func (inv *Inventory) Update(row, col int, value string, action datagrid.Action) bool {
	ok := inv.apply(row, col, value, action)
	if ok && inv.grid != nil {
		if err := inv.grid.SetData(inv.Data()); err != nil {
			return false
		}
	}
	return ok
}

func (inv *Inventory) apply(row, col int, value string, action datagrid.Action) bool {
	switch action {
	case datagrid.ActionUpdate:
		r := inv.record(row)
		if r == nil {
			return false
		}
		normalized, ok := normalize(col, value)
		if !ok {
			return false
		}
		r.cells[col] = normalized
	case datagrid.ActionAdd:
		at := clamp(row-1, 0, len(inv.records))
		inv.records = slices.Insert(inv.records, at, record{seq: inv.nextSeq, cells: make([]string, numCols)})
		inv.nextSeq++
	case datagrid.ActionDelete:
		at := row - 1
		if at < 0 || at >= len(inv.records) {
			return false
		}
		inv.records = slices.Delete(inv.records, at, at+1)
	case datagrid.ActionSelect:
		r := inv.record(row)
		if r == nil {
			return false
		}
		r.selected = value == "true"
	case datagrid.ActionSelectAll:
		for i := range inv.records {
			inv.records[i].selected = value == "true"
		}
	case datagrid.ActionSortAscending, datagrid.ActionSortDescending:
		desc := action == datagrid.ActionSortDescending
		slices.SortStableFunc(inv.records, func(a, b record) int {
			c := inv.compare(col, a.cells[col], b.cells[col])
			if desc {
				return -c
			}
			return c
		})
	case datagrid.ActionSortNone:
		slices.SortFunc(inv.records, func(a, b record) int { return a.seq - b.seq })
	default:
		return false
	}
	return true
}

// record maps a grid row to its record; row 0 is the header.
func (inv *Inventory) record(row int) *record {
	if row < 1 || row > len(inv.records) {
		return nil
	}
	return &inv.records[row-1]
}

// compare orders two cells of col. Blank cells sort last.
func (inv *Inventory) compare(col int, a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	switch col {
	case ColQty, ColPrice:
		x, errA := strconv.ParseFloat(a, 64)
		y, errB := strconv.ParseFloat(b, 64)
		if errA == nil && errB == nil {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	case ColRestocked:
		x, errA := time.Parse(DateLayout, a)
		y, errB := time.Parse(DateLayout, b)
		if errA == nil && errB == nil {
			return x.Compare(y)
		}
	}
	return inv.collator.CompareString(a, b)
}

// normalize coerces a submitted value to the column's canonical form.
func normalize(col int, value string) (string, bool) {
	value = strings.TrimSpace(value)
	switch col {
	case ColQty:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n < 0 || n != float64(int64(n)) {
			return "", false
		}
		return strconv.FormatInt(int64(n), 10), true
	case ColPrice:
		p, err := strconv.ParseFloat(value, 64)
		if err != nil || p < 0 {
			return "", false
		}
		return strconv.FormatFloat(p, 'f', 2, 64), true
	}
	return value, true
}

// renderValue shows qty * price for body rows.
func (inv *Inventory) renderValue(row, col int, value string) string {
	r := inv.record(row)
	if r == nil {
		return value
	}
	qty, errQ := strconv.ParseFloat(r.cells[ColQty], 64)
	price, errP := strconv.ParseFloat(r.cells[ColPrice], 64)
	if errQ != nil || errP != nil {
		return ""
	}
	return inv.printer.Sprintf("%.2f", qty*price)
}

// Summary describes the inventory in one line.
func (inv *Inventory) Summary() string {
	return fmt.Sprintf("%d items, %d selected", len(inv.records), len(inv.Selected()))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
