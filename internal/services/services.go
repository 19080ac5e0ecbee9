// Package services binds every backend collection of the marketplace to the
// generic resource client.
package services

import (
	"context"

	"github.com/billboardhub/bbadmin/internal/api"
)

// Services bundles every resource client of the admin backend
type Services struct {
	Users           *Users
	Sellers         *Sellers
	Merchants       *Merchants
	Categories      *Categories
	Designs         *Designs
	Billboards      *Billboards
	Recommendations *Recommendations
	Transactions    *Transactions
}

// New wires every resource to c
func New(c *api.Client) *Services {
	return &Services{
		Users:           NewUsers(c),
		Sellers:         NewSellers(c),
		Merchants:       NewMerchants(c),
		Categories:      NewCategories(c),
		Designs:         NewDesigns(c),
		Billboards:      NewBillboards(c),
		Recommendations: NewRecommendations(c),
		Transactions:    NewTransactions(c),
	}
}

// Fetcher loads one page for a page controller
type Fetcher[T any] func(ctx context.Context, q api.ListQuery) (api.ListResult[T], error)

// createdAtSort builds the usual allow-list, newest first by default.
func createdAtSort(fields ...string) api.SortSpec {
	return api.SortSpec{
		Allowed:    append([]string{"createdAt", "updatedAt"}, fields...),
		Default:    "createdAt",
		DefaultDir: api.SortDesc,
	}
}

func boolParam(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
