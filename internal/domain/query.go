package domain

import (
	"math"

	"github.com/google/uuid"
)

// AccountQuery is the descriptor handed to listing overrides and to the
// repository's default search.
type AccountQuery struct {
	UserID  uuid.UUID
	SortBy  SortField
	Page    int
	PerPage int
	Search  string
	// Tags restricts the listing to accounts carrying any of them.
	// Empty means no tag filter.
	Tags []string
}

// Offset returns the row offset for Page and PerPage. It saturates at
// math.MaxInt so a far-out page yields an empty result instead of a
// wrapped negative offset.
func (q AccountQuery) Offset() int {
	if q.Page < 1 || q.PerPage < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.PerPage {
		return math.MaxInt
	}
	return (q.Page - 1) * q.PerPage
}

// AccountPage is one page of accounts plus the total number of matches.
type AccountPage struct {
	Accounts   []Account
	TotalCount int
}

// TotalPages returns ceil(total/perPage); zero matches yield zero pages.
func TotalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
