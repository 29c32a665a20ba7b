package listview

import (
	"fmt"
	"reflect"
	"testing"
)

type item struct {
	Name       string
	Country    string
	Categories []string
}

func newTestController(pageSize int, items []item) *Controller[item] {
	c := NewController[item](pageSize, SearchFields(func(i item) string { return i.Name }))
	c.AddAxis("country", MatchField(func(i item) string { return i.Country }))
	c.AddAxis("category", MatchList(func(i item) []string { return i.Categories }))
	c.SetItems(items)
	return c
}

func makeItems(n int) []item {
	items := make([]item, n)
	for i := range items {
		items[i] = item{Name: fmt.Sprintf("Item %02d", i+1), Country: "uk"}
	}
	return items
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	c := newTestController(10, []item{
		{Name: "NEET Preparation Guide"},
		{Name: "IELTS Basics"},
	})

	c.SetSearch("neet")
	visible := c.Visible()
	if len(visible) != 1 || visible[0].Name != "NEET Preparation Guide" {
		t.Fatalf("expected NEET guide, got %+v", visible)
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	c := newTestController(10, makeItems(25))

	c.SetPage(3)
	if c.Page() != 3 {
		t.Fatalf("expected page 3, got %d", c.Page())
	}

	c.SetFilter("country", "uk")
	if c.Page() != 1 {
		t.Errorf("filter change did not reset page, got %d", c.Page())
	}

	c.SetPage(2)
	c.SetSearch("item")
	if c.Page() != 1 {
		t.Errorf("search change did not reset page, got %d", c.Page())
	}
}

func TestPaginationPartition(t *testing.T) {
	c := newTestController(10, makeItems(25))

	if got := c.TotalPages(); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}

	seen := 0
	for page := 1; page <= c.TotalPages(); page++ {
		c.SetPage(page)
		visible := c.Visible()
		if len(visible) > 10 {
			t.Errorf("page %d has %d items, want <= 10", page, len(visible))
		}
		seen += len(visible)
	}
	if seen != c.Total() {
		t.Errorf("pages sum to %d items, filtered total is %d", seen, c.Total())
	}
}

func TestPageBeyondEndIsImpossible(t *testing.T) {
	c := newTestController(10, makeItems(25))

	c.SetPage(3)
	if c.HasNext() {
		t.Error("next should be disabled on the last page")
	}

	c.SetPage(4)
	if c.Page() != 3 {
		t.Errorf("page 4 request should be ignored, got page %d", c.Page())
	}

	c.Next()
	if c.Page() != 3 {
		t.Errorf("Next on last page moved to %d", c.Page())
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		items    int
		page     int
		expected []int
	}{
		{25, 1, []int{1, 2, 3}},            // fewer pages than window
		{100, 1, []int{1, 2, 3, 4, 5}},     // clamped at the start
		{100, 5, []int{3, 4, 5, 6, 7}},     // centered mid-range
		{100, 10, []int{6, 7, 8, 9, 10}},   // clamped at the end
		{100, 9, []int{6, 7, 8, 9, 10}},    // near the end
		{5, 1, []int{1}},                   // single page
	}

	for _, tt := range tests {
		c := newTestController(10, makeItems(tt.items))
		c.SetPage(tt.page)
		got := c.PageWindow()
		if len(got) > 5 {
			t.Errorf("items=%d page=%d: window has %d buttons, want <= 5", tt.items, tt.page, len(got))
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("items=%d page=%d: window = %v, want %v", tt.items, tt.page, got, tt.expected)
		}
	}
}

func TestAllSentinelClearsAxis(t *testing.T) {
	c := newTestController(10, []item{
		{Name: "A", Country: "uk"},
		{Name: "B", Country: "us"},
	})

	c.SetFilter("country", "uk")
	if got := c.Total(); got != 1 {
		t.Fatalf("expected 1 item filtered, got %d", got)
	}

	c.SetFilter("country", FilterAll)
	if got := c.Total(); got != 2 {
		t.Errorf("'all' should clear the axis, got %d items", got)
	}
}

func TestMultiSelectMatchesAny(t *testing.T) {
	c := newTestController(10, []item{
		{Name: "A", Country: "uk", Categories: []string{"engineering"}},
		{Name: "B", Country: "us", Categories: []string{"medical"}},
		{Name: "C", Country: "ca", Categories: []string{"law"}},
	})

	c.SetFilter("category", "engineering", "medical")
	if got := c.Total(); got != 2 {
		t.Errorf("expected 2 items matching any selected category, got %d", got)
	}
}

func TestEmptyResultDistinctFromUnloaded(t *testing.T) {
	c := NewController[item](10, SearchFields(func(i item) string { return i.Name }))
	if c.Loaded() {
		t.Error("controller reports loaded before SetItems")
	}

	c.SetItems(nil)
	if !c.Loaded() {
		t.Error("controller reports unloaded after SetItems")
	}
	if got := c.Total(); got != 0 {
		t.Errorf("expected empty result, got %d", got)
	}
}
