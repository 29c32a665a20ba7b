package response

import "testing"

func TestParsePageLimit(t *testing.T) {
	tests := []struct {
		name      string
		pageStr   string
		limitStr  string
		def       int
		wantPage  int
		wantLimit int
	}{
		{"both present", "3", "20", 9, 3, 20},
		{"both missing", "", "", 9, 1, 9},
		{"non-numeric limit", "1", "abc", 9, 1, 9},
		{"non-numeric page", "abc", "20", 9, 1, 20},
		{"zero limit", "1", "0", 9, 1, 9},
		{"negative page", "-2", "20", 9, 1, 20},
		{"limit above cap", "1", "500", 9, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ParsePageLimit(tt.pageStr, tt.limitStr, tt.def)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("ParsePageLimit(%q, %q, %d) = (%d, %d), want (%d, %d)",
					tt.pageStr, tt.limitStr, tt.def, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

// The parsed values must stay consistent with what the metadata
// reports, whatever the client sent.
func TestParsePageLimitAgreesWithPaginationMeta(t *testing.T) {
	inputs := [][2]string{
		{"", ""}, {"0", "abc"}, {"2", "500"}, {"-1", "-1"},
	}
	for _, in := range inputs {
		page, limit := ParsePageLimit(in[0], in[1], 9)
		meta := CalculatePagination(page, limit, 300)
		if meta.CurrentPage != page || meta.PerPage != limit {
			t.Errorf("page=%q limit=%q: query uses (%d, %d) but meta reports (%d, %d)",
				in[0], in[1], page, limit, meta.CurrentPage, meta.PerPage)
		}
	}
}

func TestCalculatePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
		wantPage  int
		wantLimit int
	}{
		{"exact division", 1, 10, 30, 3, 1, 10},
		{"remainder adds a page", 1, 10, 25, 3, 1, 10},
		{"single partial page", 1, 10, 4, 1, 1, 10},
		{"empty collection", 1, 10, 0, 0, 1, 10},
		{"page below 1 clamped", 0, 10, 30, 3, 1, 10},
		{"limit below 1 defaulted", 2, 0, 30, 3, 2, 10},
		{"limit above 100 capped", 1, 500, 300, 3, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := CalculatePagination(tt.page, tt.limit, tt.total)
			if meta.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if meta.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", meta.CurrentPage, tt.wantPage)
			}
			if meta.PerPage != tt.wantLimit {
				t.Errorf("PerPage = %d, want %d", meta.PerPage, tt.wantLimit)
			}
		})
	}
}
