package datagrid

import (
	"slices"
	"testing"
)

func TestSuggestionListFoldsDuplicates(t *testing.T) {
	l := NewSuggestionList("Straße", "apple", "APPLE", "STRASSE", "Pear")

	if got := l.Items(); !slices.Equal(got, []string{"Straße", "apple", "Pear"}) {
		t.Errorf("Items = %v", got)
	}
	if got, ok := l.Lookup("strasse"); !ok || got != "Straße" {
		t.Errorf("Lookup(strasse) = %q, %v", got, ok)
	}
	if l.AddIfAbsent("pear") {
		t.Error("AddIfAbsent accepted a case variant")
	}
	if l.AddIfAbsent("") {
		t.Error("AddIfAbsent accepted an empty value")
	}
	if !l.AddIfAbsent("Plum") || l.Len() != 4 {
		t.Errorf("AddIfAbsent(Plum) did not grow the list: %v", l.Items())
	}
}

func TestSuggestionListFilter(t *testing.T) {
	l := NewSuggestionList("Fruit", "Vegetable", "Frozen", "Dairy")

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"Fruit", "Vegetable", "Frozen", "Dairy"}},
		{query: "fr", want: []string{"Fruit", "Frozen"}},
		{query: "AIR", want: []string{"Dairy"}},
		{query: "e", want: []string{"Vegetable", "Frozen"}},
		{query: "xyz", want: nil},
	}
	for _, tt := range tests {
		if got := l.Filter(tt.query); !slices.Equal(got, tt.want) {
			t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSuggestionListNil(t *testing.T) {
	var l *SuggestionList
	if l.Len() != 0 || l.Items() != nil || l.Filter("a") != nil || l.Contains("a") {
		t.Error("nil list is not empty")
	}
}

func TestSuggestionItemsIsACopy(t *testing.T) {
	l := NewSuggestionList("a", "b")
	items := l.Items()
	items[0] = "z"
	if got := l.Items(); got[0] != "a" {
		t.Errorf("Items shares storage: %v", got)
	}
}
