package queryparams

// Liste sorguları için varsayılanlar ve üst sınırlar.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "asc"
)

// ListParams liste/sayfalama sorgu parametrelerini taşır.
// Alan adları fiber'ın QueryParser'ı ile eşleşir.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
	Name    string `query:"name"`
	Status  string `query:"status"`
}

// DefaultListParams verilen sıralama sütunu ile varsayılan parametreleri üretir.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate parametreleri güvenli aralıklara çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// CalculateOffset sayfalama için OFFSET değerini hesaplar.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages toplam sayfa sayısını hesaplar.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / int64(perPage)
	if totalItems%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}

// PaginationMeta sayfalanmış sonuçların üst verisidir.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// PrevPage bir önceki sayfa numarasını döndürür (en az 1).
func (m PaginationMeta) PrevPage() int {
	if m.CurrentPage <= 1 {
		return 1
	}
	return m.CurrentPage - 1
}

// NextPage bir sonraki sayfa numarasını döndürür (son sayfayı aşmaz).
func (m PaginationMeta) NextPage() int {
	if m.CurrentPage >= m.TotalPages {
		return m.TotalPages
	}
	return m.CurrentPage + 1
}

// PaginatedResult veriyi üst verisiyle birlikte taşır.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}
