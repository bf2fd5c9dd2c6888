package domain

// Page is a bounded slice of a backend-held collection plus the totals needed
// for pagination controls. TotalPages = ceil(TotalElements/Size) is enforced
// by the backend and trusted here.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}
