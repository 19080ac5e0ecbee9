package services

import (
	"context"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
)

// SellerSort is the sort contract of the sellers grid
var SellerSort = createdAtSort("fullname", "companyName")

// Sellers manages seller profiles
type Sellers struct {
	*api.Resource[models.Seller, models.SellerDetail]
}

// NewSellers creates the sellers resource
func NewSellers(c *api.Client) *Sellers {
	return &Sellers{api.NewResource[models.Seller, models.SellerDetail](c, api.ResourceSpec{
		Name:       "sellers",
		ListPath:   "/seller/all",
		DetailPath: "/seller/detail/%s",
		DeletePath: "/seller/id/%s",
		Sort:       SellerSort,
	})}
}

// Fetcher adapts List to a page controller
func (s *Sellers) Fetcher() Fetcher[models.Seller] {
	return func(ctx context.Context, q api.ListQuery) (api.ListResult[models.Seller], error) {
		return s.List(ctx, q, nil)
	}
}

// MerchantSort is the sort contract of the merchants grid
var MerchantSort = createdAtSort("companyName", "fullname")

// Merchants is the merchant view of sellers, with optional joins
type Merchants struct {
	*api.Resource[models.Merchant, models.Merchant]
}

// MerchantJoins selects the relations joined onto each merchant
type MerchantJoins struct {
	User       bool
	Billboards bool
}

// NewMerchants creates the merchants resource
func NewMerchants(c *api.Client) *Merchants {
	return &Merchants{api.NewResource[models.Merchant, models.Merchant](c, api.ResourceSpec{
		Name:       "merchants",
		ListPath:   "/merchant",
		DetailPath: "/merchant/detail/%s",
		Sort:       MerchantSort,
	})}
}

// ListMerchants fetches a page of merchants with the requested joins
func (m *Merchants) ListMerchants(ctx context.Context, q api.ListQuery, joins MerchantJoins) (api.ListResult[models.Merchant], error) {
	return m.List(ctx, q, map[string]string{
		"includeUser":       boolParam(joins.User),
		"includeBillboards": boolParam(joins.Billboards),
	})
}

// Fetcher adapts ListMerchants to a page controller
func (m *Merchants) Fetcher(joins MerchantJoins) Fetcher[models.Merchant] {
	return func(ctx context.Context, q api.ListQuery) (api.ListResult[models.Merchant], error) {
		return m.ListMerchants(ctx, q, joins)
	}
}
