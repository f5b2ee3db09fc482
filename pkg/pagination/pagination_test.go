package pagination

import "testing"

func TestParseParams(t *testing.T) {
	tests := []struct {
		name        string
		page, per   string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "", "", 1, DefaultPerPage},
		{"explicit", "3", "20", 3, 20},
		{"garbage", "x", "y", 1, DefaultPerPage},
		{"clamped", "-2", "1000", 1, MaxPerPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseParams(tt.page, tt.per)
			if p.Page != tt.wantPage || p.PerPage != tt.wantPerPage {
				t.Errorf("ParseParams(%q, %q) = %d/%d, want %d/%d", tt.page, tt.per, p.Page, p.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestPage(t *testing.T) {
	params := &PaginationParams{Page: 2, PerPage: 10}
	res := Page([]int{11, 12}, params, 22)
	if res.Pagination.TotalPages != 3 || !res.Pagination.HasNext || !res.Pagination.HasPrev {
		t.Errorf("pagination = %+v", res.Pagination)
	}
	if params.Offset() != 10 {
		t.Errorf("Offset() = %d, want 10", params.Offset())
	}

	empty := Page[int](nil, DefaultPagination(), 0)
	if empty.Items == nil {
		t.Error("Items should be an empty slice, not nil")
	}
	if empty.Pagination.HasNext {
		t.Error("empty result should not have a next page")
	}
}
