package queryparams

// Pagination bounds for panel listings.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams carries the common listing query parameters of the panel screens.
type ListParams struct {
	Name    string `query:"name"`
	Status  string `query:"status"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

// DefaultListParams returns params sorted by the given column, descending.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}
}

// Validate clamps page and per-page values into their allowed ranges.
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

// CalculateOffset converts page/per-page into a SQL offset.
func (p *ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// ProjectFilter carries the public project listing parameters. Empty fields
// mean "no filter".
type ProjectFilter struct {
	Search string `query:"search"`
	Tech   string `query:"tech"`
	Status string `query:"status"`
}

// IsZero reports whether no filter is active.
func (f ProjectFilter) IsZero() bool {
	return f.Search == "" && f.Tech == "" && f.Status == ""
}

// PaginationMeta describes one page of a listing.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// PaginatedResult bundles one page of rows with its meta.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResult builds a PaginatedResult from rows and counts.
func NewPaginatedResult(data interface{}, params ListParams, totalItems int64) *PaginatedResult {
	totalPages := int((totalItems + int64(params.PerPage) - 1) / int64(params.PerPage))
	return &PaginatedResult{
		Data: data,
		Meta: PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalItems,
			TotalPages:  totalPages,
		},
	}
}
