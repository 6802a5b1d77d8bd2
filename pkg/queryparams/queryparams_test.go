package queryparams

import "testing"

func TestValidateNormalizesOutOfRangeValues(t *testing.T) {
	p := ListParams{Page: -3, PerPage: 500, OrderBy: "yukarı"}
	p.Validate()

	if p.Page != DefaultPage {
		t.Errorf("sayfa %d olmalı, %d geldi", DefaultPage, p.Page)
	}
	if p.PerPage != MaxPerPage {
		t.Errorf("sayfa boyutu %d ile sınırlanmalı, %d geldi", MaxPerPage, p.PerPage)
	}
	if p.OrderBy != DefaultOrderBy {
		t.Errorf("sıralama yönü %q olmalı, %q geldi", DefaultOrderBy, p.OrderBy)
	}
}

func TestValidateKeepsValidValues(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 50, OrderBy: "desc"}
	p.Validate()

	if p.Page != 3 || p.PerPage != 50 || p.OrderBy != "desc" {
		t.Errorf("geçerli değerler korunmalı: %+v", p)
	}
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 20}
	if got := p.CalculateOffset(); got != 40 {
		t.Errorf("offset 40 olmalı, %d geldi", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	cases := []struct {
		totalItems int64
		perPage    int
		want       int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 20, 5},
	}
	for _, tc := range cases {
		if got := CalculateTotalPages(tc.totalItems, tc.perPage); got != tc.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, beklenen %d", tc.totalItems, tc.perPage, got, tc.want)
		}
	}
}

func TestPrevNextPageClamped(t *testing.T) {
	m := PaginationMeta{CurrentPage: 1, TotalPages: 3}
	if m.PrevPage() != 1 {
		t.Errorf("ilk sayfada PrevPage 1 olmalı, %d geldi", m.PrevPage())
	}
	if m.NextPage() != 2 {
		t.Errorf("NextPage 2 olmalı, %d geldi", m.NextPage())
	}

	m.CurrentPage = 3
	if m.NextPage() != 3 {
		t.Errorf("son sayfada NextPage 3 olmalı, %d geldi", m.NextPage())
	}
	if m.PrevPage() != 2 {
		t.Errorf("PrevPage 2 olmalı, %d geldi", m.PrevPage())
	}
}
