package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
)

// RecommendationSort is applied locally; the diagnostics endpoint takes no
// sort parameters.
var RecommendationSort = api.SortSpec{
	Allowed:    []string{"score", "location", "createdAt", "view"},
	Default:    "score",
	DefaultDir: api.SortDesc,
	ClientSide: true,
}

// RecommendationFilter narrows the diagnostics list on the backend
type RecommendationFilter struct {
	CategoryID string
	Province   string
	City       string
}

func (f RecommendationFilter) params() map[string]string {
	return map[string]string{
		"categoryId": f.CategoryID,
		"province":   f.Province,
		"city":       f.City,
	}
}

// Recommendations exposes the scoring diagnostics of billboards. Category
// and location options seen on earlier pages are kept so paging does not
// shrink them.
type Recommendations struct {
	*api.Resource[models.Billboard, models.BillboardDetail]

	mu         sync.Mutex
	categories map[string]string
	provinces  map[string]bool
	cities     map[string]bool
}

// NewRecommendations creates the recommendations resource
func NewRecommendations(c *api.Client) *Recommendations {
	return &Recommendations{
		Resource: api.NewResource[models.Billboard, models.BillboardDetail](c, api.ResourceSpec{
			Name:       "recommendations",
			ListPath:   "/billboard/recommendations/diagnostics",
			DetailPath: "/billboard/detail/%s",
			Sort:       RecommendationSort,
		}),
		categories: map[string]string{},
		provinces:  map[string]bool{},
		cities:     map[string]bool{},
	}
}

// Diagnostics fetches a page of scored billboards. The search term filters
// the returned page on location and description; sorting happens locally.
func (r *Recommendations) Diagnostics(ctx context.Context, q api.ListQuery, f RecommendationFilter) (api.ListResult[models.Billboard], error) {
	search := strings.TrimSpace(q.Search)
	field, dir := RecommendationSort.Resolve(q.SortBy, q.SortDir)
	q.Search = ""

	res, err := r.List(ctx, q, f.params())
	if err != nil {
		return res, err
	}
	r.remember(res.Data)

	rows := FilterBillboards(res.Data, search)
	SortBillboards(rows, field, dir)

	res.Data = rows
	if res.Meta != nil {
		res.Total = res.Meta.Total
	} else {
		res.Total = len(rows)
	}
	return res, nil
}

// Fetcher adapts Diagnostics to a page controller. Filters staged on the
// controller under categoryId, province and city are honoured.
func (r *Recommendations) Fetcher() Fetcher[models.Billboard] {
	return func(ctx context.Context, q api.ListQuery) (api.ListResult[models.Billboard], error) {
		f := RecommendationFilter{
			CategoryID: q.Filters["categoryId"],
			Province:   q.Filters["province"],
			City:       q.Filters["city"],
		}
		q.Filters = nil
		return r.Diagnostics(ctx, q, f)
	}
}

// Recompute asks the backend to rescore every billboard
func (r *Recommendations) Recompute(ctx context.Context) (models.RecomputeResult, error) {
	var out models.RecomputeResult
	resp, err := r.Client().Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "/billboard/recommendations/recompute",
		Body:   map[string]interface{}{},
	})
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, &api.ShapeError{Field: "updated", Body: resp.Body}
	}
	return out, nil
}

// CategoryOptions returns every category seen so far, sorted by name
func (r *Recommendations) CategoryOptions() []models.Ref {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Ref, 0, len(r.categories))
	for id, name := range r.categories {
		out = append(out, models.Ref{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Locations returns every province and city seen so far, sorted
func (r *Recommendations) Locations() (provinces, cities []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedKeys(r.provinces), sortedKeys(r.cities)
}

func (r *Recommendations) remember(rows []models.Billboard) {
	provinces, cities := LocationOptions(rows)

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range rows {
		if b.Category != nil && b.Category.ID != "" && b.Category.Name != "" {
			r.categories[b.Category.ID] = b.Category.Name
		}
	}
	for _, p := range provinces {
		r.provinces[p] = true
	}
	for _, c := range cities {
		r.cities[c] = true
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LocationOptions returns the distinct provinces and cities of rows, sorted
func LocationOptions(rows []models.Billboard) (provinces, cities []string) {
	return distinct(rows, models.Billboard.ProvinceLabel), distinct(rows, models.Billboard.CityLabel)
}

func distinct(rows []models.Billboard, label func(models.Billboard) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, b := range rows {
		v := label(b)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FilterBillboards keeps rows whose location or description contains term,
// case-insensitively. An empty term keeps everything.
func FilterBillboards(rows []models.Billboard, term string) []models.Billboard {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return rows
	}
	out := make([]models.Billboard, 0, len(rows))
	for _, b := range rows {
		if strings.Contains(strings.ToLower(b.Location), term) ||
			strings.Contains(strings.ToLower(b.Description), term) {
			out = append(out, b)
		}
	}
	return out
}

// SortBillboards orders rows in place by one of the recommendation fields.
// Rows without a score sort after scored rows regardless of direction.
func SortBillboards(rows []models.Billboard, field string, dir api.SortDir) {
	desc := dir == api.SortDesc
	less := func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch field {
		case "score":
			if a.Score == nil || b.Score == nil {
				return a.Score != nil && b.Score == nil
			}
			if desc {
				return *a.Score > *b.Score
			}
			return *a.Score < *b.Score
		case "location":
			if desc {
				return strings.ToLower(a.Location) > strings.ToLower(b.Location)
			}
			return strings.ToLower(a.Location) < strings.ToLower(b.Location)
		case "view":
			if desc {
				return a.View > b.View
			}
			return a.View < b.View
		default:
			if desc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(rows, less)
}
