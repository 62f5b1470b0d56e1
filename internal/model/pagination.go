package model

// PaginationParams selects a page of a list endpoint.
type PaginationParams struct {
	Page     int
	PageSize int
}

// OrDefaults fills unset fields with the backend defaults.
func (p PaginationParams) OrDefaults() PaginationParams {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
	return p
}

// PagedResult is the backend's pagination envelope.
type PagedResult[T any] struct {
	Items           []T   `json:"items"`
	TotalCount      int64 `json:"totalCount"`
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalPages      int   `json:"totalPages"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
}
