package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
)

func score(f float64) *float64 { return &f }

func str(s string) *string { return &s }

func TestSortBillboards(t *testing.T) {
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	rows := func() []models.Billboard {
		return []models.Billboard{
			{BaseModel: models.BaseModel{ID: "a", CreatedAt: base}, Location: "Sudirman", View: 10, Score: score(0.4)},
			{BaseModel: models.BaseModel{ID: "b", CreatedAt: base.Add(time.Hour)}, Location: "braga", View: 30},
			{BaseModel: models.BaseModel{ID: "c", CreatedAt: base.Add(2 * time.Hour)}, Location: "Malioboro", View: 20, Score: score(0.9)},
		}
	}
	ids := func(rs []models.Billboard) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.ID
		}
		return out
	}

	tests := []struct {
		field string
		dir   api.SortDir
		want  []string
	}{
		{"score", api.SortDesc, []string{"c", "a", "b"}},
		{"score", api.SortAsc, []string{"a", "c", "b"}},
		{"location", api.SortAsc, []string{"b", "c", "a"}},
		{"view", api.SortDesc, []string{"b", "c", "a"}},
		{"createdAt", api.SortAsc, []string{"a", "b", "c"}},
		{"createdAt", api.SortDesc, []string{"c", "b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.field+" "+string(tt.dir), func(t *testing.T) {
			rs := rows()
			SortBillboards(rs, tt.field, tt.dir)
			assert.Equal(t, tt.want, ids(rs))
		})
	}
}

func TestFilterBillboards(t *testing.T) {
	rows := []models.Billboard{
		{BaseModel: models.BaseModel{ID: "a"}, Location: "Jl. Sudirman", Description: "LED besar"},
		{BaseModel: models.BaseModel{ID: "b"}, Location: "Braga", Description: "Dekat sudirman"},
		{BaseModel: models.BaseModel{ID: "c"}, Location: "Malioboro"},
	}

	assert.Len(t, FilterBillboards(rows, ""), 3)
	assert.Len(t, FilterBillboards(rows, "  SUDIRMAN "), 2)
	assert.Empty(t, FilterBillboards(rows, "kuta"))
}

func TestLocationOptions(t *testing.T) {
	rows := []models.Billboard{
		{City: &models.City{Name: "Bandung", Province: &models.Ref{Name: "Jawa Barat"}}},
		{CityName: str("Bogor"), ProvinceName: str("Jawa Barat")},
		{CityName: str("Bandung"), ProvinceName: str("Jawa Barat")},
		{},
	}

	provinces, cities := LocationOptions(rows)
	assert.Equal(t, []string{"Jawa Barat"}, provinces)
	assert.Equal(t, []string{"Bandung", "Bogor"}, cities)
}

func TestRecommendationsDiagnostics(t *testing.T) {
	pages := []string{
		`{"data":[
			{"id":"a","location":"Sudirman","score":0.2,"category":{"id":"c2","name":"Neon"},"cityName":"Jakarta Pusat","provinceName":"DKI Jakarta"},
			{"id":"b","location":"Braga","score":0.8,"category":{"id":"c1","name":"LED"},"city":{"name":"Bandung","province":{"name":"Jawa Barat"}}}
		],"meta":{"total":4}}`,
		`{"data":[
			{"id":"c","location":"Sudirman Timur","score":0.5,"category":{"id":"c3","name":"Baliho"},"cityName":"Bekasi","provinceName":"Jawa Barat"}
		]}`,
	}
	var queries []url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/billboard/recommendations/diagnostics", r.URL.Path)
		queries = append(queries, r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, pages[len(queries)-1])
	}))
	defer srv.Close()

	reco := NewRecommendations(api.NewClient(srv.URL))
	fetch := reco.Fetcher()

	t.Run("filters go to the backend while search and sort stay local", func(t *testing.T) {
		res, err := fetch(context.Background(), api.ListQuery{
			Page:     1,
			PageSize: 10,
			Search:   "",
			SortBy:   "bogus",
			SortDir:  api.SortAsc,
			Filters:  map[string]string{"categoryId": "c1", "city": ""},
		})
		require.NoError(t, err)

		q := queries[0]
		assert.Equal(t, "c1", q.Get("categoryId"))
		assert.Equal(t, "1", q.Get("page"))
		assert.NotContains(t, q, "sortBy")
		assert.NotContains(t, q, "city")

		require.Len(t, res.Data, 2)
		assert.Equal(t, "b", res.Data[0].ID)
		assert.Equal(t, 4, res.Total)
	})

	t.Run("search narrows the page and category options accumulate", func(t *testing.T) {
		res, err := reco.Diagnostics(context.Background(), api.ListQuery{Page: 2, Search: "sudirman"}, RecommendationFilter{})
		require.NoError(t, err)

		assert.NotContains(t, queries[1], "search")
		require.Len(t, res.Data, 1)
		assert.Equal(t, 1, res.Total)

		assert.Equal(t, []models.Ref{
			{ID: "c3", Name: "Baliho"},
			{ID: "c1", Name: "LED"},
			{ID: "c2", Name: "Neon"},
		}, reco.CategoryOptions())

		provinces, cities := reco.Locations()
		assert.Equal(t, []string{"DKI Jakarta", "Jawa Barat"}, provinces)
		assert.Equal(t, []string{"Bandung", "Bekasi", "Jakarta Pusat"}, cities)
	})
}

func TestRecompute(t *testing.T) {
	t.Run("reports rescored billboards", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			_, _ = io.WriteString(w, `{"updated":17}`)
		}))
		defer srv.Close()

		out, err := NewRecommendations(api.NewClient(srv.URL)).Recompute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 17, out.Updated)
	})

	t.Run("malformed body is a shape error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[]`)
		}))
		defer srv.Close()

		_, err := NewRecommendations(api.NewClient(srv.URL)).Recompute(context.Background())
		var shape *api.ShapeError
		assert.ErrorAs(t, err, &shape)
	})
}
