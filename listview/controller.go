// Package listview is the one shared list-filter-paginate controller
// used by every listing page and admin table, generic over the item
// type, instead of re-implementing the same search/filter/page state
// per page.
package listview

import "strings"

// FilterAll is the sentinel filter value meaning "no filtering on this
// axis".
const FilterAll = "all"

// SearchFields builds a case-insensitive substring matcher over the
// given text extractors. An empty term matches everything.
func SearchFields[T any](fields ...func(T) string) func(T, string) bool {
	return func(item T, term string) bool {
		if term == "" {
			return true
		}
		needle := strings.ToLower(term)
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(item)), needle) {
				return true
			}
		}
		return false
	}
}

// MatchField builds an axis matcher over a single-valued field using
// exact-match-any-of-selected semantics.
func MatchField[T any](extract func(T) string) func(T, []string) bool {
	return func(item T, selected []string) bool {
		value := extract(item)
		for _, s := range selected {
			if value == s {
				return true
			}
		}
		return false
	}
}

// MatchList builds an axis matcher over a list-valued field: the item
// matches when any selected value is a member of the list.
func MatchList[T any](extract func(T) []string) func(T, []string) bool {
	return func(item T, selected []string) bool {
		for _, v := range extract(item) {
			for _, s := range selected {
				if v == s {
					return true
				}
			}
		}
		return false
	}
}

// Controller holds the search term, the selected filters and the
// current page for one collection, and derives the visible subset.
// All filtering and pagination happen over the in-memory collection;
// no network round-trip is needed when state changes.
type Controller[T any] struct {
	items    []T
	loaded   bool
	match    func(T, string) bool
	axes     map[string]func(T, []string) bool
	search   string
	selected map[string][]string
	page     int
	pageSize int
}

// NewController creates a controller with the given page size and
// search matcher. A nil matcher disables searching.
func NewController[T any](pageSize int, match func(T, string) bool) *Controller[T] {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Controller[T]{
		match:    match,
		axes:     make(map[string]func(T, []string) bool),
		selected: make(map[string][]string),
		page:     1,
		pageSize: pageSize,
	}
}

// AddAxis registers a named filter axis.
func (c *Controller[T]) AddAxis(name string, match func(T, []string) bool) {
	c.axes[name] = match
}

// SetItems replaces the backing collection and resets to page 1.
func (c *Controller[T]) SetItems(items []T) {
	c.items = items
	c.loaded = true
	c.page = 1
}

// Loaded reports whether a collection has been supplied, so callers
// can distinguish "not loaded yet" from an empty filtered result.
func (c *Controller[T]) Loaded() bool {
	return c.loaded
}

// SetSearch updates the search term. Any change resets the page to 1.
func (c *Controller[T]) SetSearch(term string) {
	c.search = term
	c.page = 1
}

// SetFilter updates one axis selection. Passing no values, or the
// "all" sentinel, clears the axis. Any change resets the page to 1.
func (c *Controller[T]) SetFilter(axis string, values ...string) {
	kept := values[:0]
	for _, v := range values {
		if v != FilterAll && v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		delete(c.selected, axis)
	} else {
		c.selected[axis] = kept
	}
	c.page = 1
}

// SetPage moves to the requested page. Requests outside 1..TotalPages
// are ignored; navigation past the end is prevented rather than
// clamped.
func (c *Controller[T]) SetPage(page int) {
	if page < 1 || page > c.totalPagesFor(len(c.filtered())) {
		return
	}
	c.page = page
}

// Next advances one page when there is one.
func (c *Controller[T]) Next() {
	if c.HasNext() {
		c.page++
	}
}

// Prev moves back one page when there is one.
func (c *Controller[T]) Prev() {
	if c.HasPrev() {
		c.page--
	}
}

func (c *Controller[T]) filtered() []T {
	var out []T
	for _, item := range c.items {
		if c.match != nil && !c.match(item, c.search) {
			continue
		}
		ok := true
		for axis, selected := range c.selected {
			matchAxis, known := c.axes[axis]
			if !known {
				continue
			}
			if !matchAxis(item, selected) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

// Visible returns the current page of the filtered collection.
func (c *Controller[T]) Visible() []T {
	filtered := c.filtered()
	start := (c.page - 1) * c.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Total returns the filtered collection size across all pages.
func (c *Controller[T]) Total() int {
	return len(c.filtered())
}

// Page returns the current page, 1-based.
func (c *Controller[T]) Page() int {
	return c.page
}

func (c *Controller[T]) totalPagesFor(total int) int {
	pages := total / c.pageSize
	if total%c.pageSize > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

// TotalPages returns the number of pages in the filtered collection,
// at least 1.
func (c *Controller[T]) TotalPages() int {
	return c.totalPagesFor(len(c.filtered()))
}

// HasNext reports whether a next page exists. The next control is
// disabled on the last page instead of clamping requests.
func (c *Controller[T]) HasNext() bool {
	return c.page < c.TotalPages()
}

// HasPrev reports whether a previous page exists.
func (c *Controller[T]) HasPrev() bool {
	return c.page > 1
}

// PageWindow returns the page numbers to render as buttons: at most 5,
// centered on the current page near the middle of the range and
// clamped at the ends.
func (c *Controller[T]) PageWindow() []int {
	const window = 5

	total := c.TotalPages()
	start := 1
	if total > window {
		start = c.page - window/2
		if start < 1 {
			start = 1
		}
		if start > total-window+1 {
			start = total - window + 1
		}
	}

	count := total - start + 1
	if count > window {
		count = window
	}

	pages := make([]int, count)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
