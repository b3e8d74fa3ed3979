package trivia

import (
	"reflect"
	"testing"
)

func TestCategoryIDsDeduplicates(t *testing.T) {
	// Every sport lives under the same API category; the request must
	// name it only once.
	got := CategoryIDs([]string{"Football", "Tennis", "MMA"})
	want := []string{"sport_and_leisure"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryIDs = %v, want %v", got, want)
	}
}

func TestCategoryIDsDropsUnknownLabels(t *testing.T) {
	got := CategoryIDs([]string{"Quidditch", "Golf"})
	want := []string{"sport_and_leisure"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryIDs = %v, want %v", got, want)
	}

	if ids := CategoryIDs(nil); len(ids) != 0 {
		t.Errorf("CategoryIDs(nil) = %v, want empty", ids)
	}
}

func TestCatalogIsConsistent(t *testing.T) {
	if len(CategoryLabels) == 0 {
		t.Fatal("catalog must offer at least one category")
	}
	for _, label := range CategoryLabels {
		id, ok := SportsCategories[label]
		if !ok {
			t.Errorf("label %q has no API identifier", label)
		}
		if id == "" {
			t.Errorf("label %q maps to an empty identifier", label)
		}
	}
	if len(CategoryLabels) != len(SportsCategories) {
		t.Errorf("display order lists %d labels, catalog has %d", len(CategoryLabels), len(SportsCategories))
	}
}
