package models

// PaginationQuery carries the page/limit parameters of listing endpoints.
type PaginationQuery struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Normalize clamps the query to the documented defaults: page defaults to 1,
// limit to 20 with an upper bound of 100.
func (q *PaginationQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
}

// Offset returns the record offset of the requested page.
func (q PaginationQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PaginationResult describes one page of a listing.
type PaginationResult struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

// NewPaginationResult builds the result envelope, computing the page count as
// ceil(total/limit).
func NewPaginationResult(total int64, page, limit int) PaginationResult {
	pages := (total + int64(limit) - 1) / int64(limit)
	return PaginationResult{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
