package api

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// SortDir is the ordering direction of a listing.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Valid reports whether d is asc or desc.
func (d SortDir) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// DefaultPageSize is used when a caller does not pick one of PageSizes.
const DefaultPageSize = 10

// PageSizes lists the allowed page sizes.
var PageSizes = []int{5, 10, 20, 50}

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// ListQuery holds the parameters of one page request. Page is 1-based.
type ListQuery struct {
	Page     int               `url:"page,omitempty"`
	PageSize int               `url:"pageSize,omitempty"`
	Search   string            `url:"search,omitempty"`
	SortBy   string            `url:"sortBy,omitempty"`
	SortDir  SortDir           `url:"sortDir,omitempty"`
	Filters  map[string]string `url:"-"`
}

// BuildParams flattens q and extra into request parameters. Zero numbers and
// empty strings are omitted, never sent as empty parameters. Non-empty extra
// filters override q.Filters on key collision.
func BuildParams(q ListQuery, extra map[string]string) url.Values {
	values, err := query.Values(q)
	if err != nil {
		values = url.Values{}
	}

	for _, filters := range []map[string]string{q.Filters, extra} {
		for k, v := range filters {
			if k != "" && v != "" {
				values.Set(k, v)
			}
		}
	}

	return values
}
