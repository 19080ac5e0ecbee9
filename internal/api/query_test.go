package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildParams(t *testing.T) {
	t.Run("first page omits empty search and sort", func(t *testing.T) {
		v := BuildParams(ListQuery{Page: 1, PageSize: 10}, nil)
		assert.Equal(t, "page=1&pageSize=10", v.Encode())
	})

	t.Run("zero numbers are never sent", func(t *testing.T) {
		v := BuildParams(ListQuery{Search: "jakarta"}, nil)
		assert.Equal(t, "search=jakarta", v.Encode())
	})

	t.Run("extra filters override query filters", func(t *testing.T) {
		q := ListQuery{
			Page:    2,
			SortBy:  "name",
			SortDir: SortAsc,
			Filters: map[string]string{"status": "PAID", "city": "Bandung"},
		}
		v := BuildParams(q, map[string]string{"status": "PENDING", "province": ""})

		assert.Equal(t, "2", v.Get("page"))
		assert.Equal(t, "name", v.Get("sortBy"))
		assert.Equal(t, "asc", v.Get("sortDir"))
		assert.Equal(t, "PENDING", v.Get("status"))
		assert.Equal(t, "Bandung", v.Get("city"))
		_, sent := v["province"]
		assert.False(t, sent)
	})

	t.Run("empty extra value keeps the query filter", func(t *testing.T) {
		q := ListQuery{Filters: map[string]string{"status": "PAID"}}
		v := BuildParams(q, map[string]string{"status": ""})
		assert.Equal(t, "PAID", v.Get("status"))
	})
}

func TestSortSpecResolve(t *testing.T) {
	spec := SortSpec{
		Allowed:    []string{"createdAt", "updatedAt", "name"},
		Default:    "createdAt",
		DefaultDir: SortDesc,
	}

	t.Run("allowed field keeps direction", func(t *testing.T) {
		field, dir := spec.Resolve("name", SortAsc)
		assert.Equal(t, "name", field)
		assert.Equal(t, SortAsc, dir)
	})

	t.Run("unknown field falls back to default field and direction", func(t *testing.T) {
		field, dir := spec.Resolve("bogus", SortAsc)
		assert.Equal(t, "createdAt", field)
		assert.Equal(t, SortDesc, dir)
	})

	t.Run("invalid direction uses the default direction", func(t *testing.T) {
		field, dir := spec.Resolve("name", SortDir("sideways"))
		assert.Equal(t, "name", field)
		assert.Equal(t, SortDesc, dir)
	})

	t.Run("apply rewrites the query", func(t *testing.T) {
		q := ListQuery{SortBy: "bogus", SortDir: SortAsc}
		spec.Apply(&q)
		assert.Equal(t, "sortBy=createdAt&sortDir=desc", BuildParams(q, nil).Encode())
	})
}

func TestValidPageSize(t *testing.T) {
	for _, n := range PageSizes {
		assert.True(t, ValidPageSize(n), n)
	}
	assert.False(t, ValidPageSize(0))
	assert.False(t, ValidPageSize(25))
}
