package datagrid

import (
	"strings"

	"golang.org/x/text/cases"
)

// SuggestionList is the owned option list of a suggestion column.
// Entries are unique under Unicode case folding; the first spelling wins.
type SuggestionList struct {
	items []string
	index map[string]int // folded key -> position in items
}

// NewSuggestionList creates a list, dropping case-insensitive duplicates.
func NewSuggestionList(items ...string) *SuggestionList {
	l := &SuggestionList{index: make(map[string]int, len(items))}
	for _, it := range items {
		l.AddIfAbsent(it)
	}
	return l
}

func foldKey(s string) string {
	return cases.Fold().String(s)
}

// Len returns the number of entries.
func (l *SuggestionList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns a copy of the entries in insertion order.
func (l *SuggestionList) Items() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Lookup returns the stored spelling of value, matched case-insensitively.
func (l *SuggestionList) Lookup(value string) (string, bool) {
	if l == nil {
		return "", false
	}
	i, ok := l.index[foldKey(value)]
	if !ok {
		return "", false
	}
	return l.items[i], true
}

// Contains reports whether value is in the list, ignoring case.
func (l *SuggestionList) Contains(value string) bool {
	_, ok := l.Lookup(value)
	return ok
}

// AddIfAbsent appends value unless an entry with the same folded key exists.
// Empty values are ignored. It reports whether the list grew.
func (l *SuggestionList) AddIfAbsent(value string) bool {
	if value == "" {
		return false
	}
	if l.index == nil {
		l.index = make(map[string]int)
	}
	key := foldKey(value)
	if _, ok := l.index[key]; ok {
		return false
	}
	l.index[key] = len(l.items)
	l.items = append(l.items, value)
	return true
}

// Filter returns the entries containing query as a case-insensitive substring,
// in list order. An empty query matches everything.
func (l *SuggestionList) Filter(query string) []string {
	if l == nil {
		return nil
	}
	if query == "" {
		return l.Items()
	}
	q := foldKey(query)
	var out []string
	for _, it := range l.items {
		if strings.Contains(foldKey(it), q) {
			out = append(out, it)
		}
	}
	return out
}
