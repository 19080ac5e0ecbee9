package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
)

// BillboardSort is the sort contract of the billboard grids
var BillboardSort = createdAtSort("location", "status", "mode", "view")

// Billboard list scopes
const (
	ScopeAll        = "all"
	ScopeRecycleBin = "recycle-bin"
	ScopeMine       = "mine"
)

var billboardScopes = map[string]string{
	ScopeAll:        "/billboard/all",
	ScopeRecycleBin: "/billboard/recycle-bin",
	ScopeMine:       "/billboard/myBillboards",
}

// Billboards manages billboard listings, including the recycle bin
type Billboards struct {
	*api.Resource[models.Billboard, models.BillboardDetail]
}

// NewBillboards creates the billboards resource
func NewBillboards(c *api.Client) *Billboards {
	return &Billboards{api.NewResource[models.Billboard, models.BillboardDetail](c, api.ResourceSpec{
		Name:       "billboards",
		ListPath:   billboardScopes[ScopeAll],
		DetailPath: "/billboard/detail/%s",
		CreatePath: "/billboard",
		ItemPath:   "/billboard/%s",
		Sort:       BillboardSort,
	})}
}

// ListScope fetches a page from one of the billboard scopes
func (b *Billboards) ListScope(ctx context.Context, scope string, q api.ListQuery) (api.ListResult[models.Billboard], error) {
	path, ok := billboardScopes[scope]
	if !ok {
		return api.ListResult[models.Billboard]{}, fmt.Errorf("unknown billboard scope %q", scope)
	}
	return b.ListAt(ctx, path, q, nil)
}

// Fetcher adapts ListScope to a page controller
func (b *Billboards) Fetcher(scope string) Fetcher[models.Billboard] {
	return func(ctx context.Context, q api.ListQuery) (api.ListResult[models.Billboard], error) {
		return b.ListScope(ctx, scope, q)
	}
}

// GetDetail fetches a billboard and folds the sibling averageRating into it
func (b *Billboards) GetDetail(ctx context.Context, id string) (models.BillboardDetail, error) {
	d, err := b.Get(ctx, id)
	if err != nil {
		return models.BillboardDetail{}, err
	}
	var rating float64
	if d.Extra("averageRating", &rating) {
		d.Data.AverageRating = &rating
	}
	return d.Data, nil
}

// CreateBillboard uploads a new billboard with its images
func (b *Billboards) CreateBillboard(ctx context.Context, in models.BillboardInput) (models.Billboard, error) {
	form, err := BillboardForm(in)
	if err != nil {
		return models.Billboard{}, err
	}
	return b.Create(ctx, form)
}

// UpdateBillboard sends the provided fields of a billboard
func (b *Billboards) UpdateBillboard(ctx context.Context, id string, in models.BillboardInput) (models.Billboard, error) {
	payload, err := BillboardPatch(in)
	if err != nil {
		return models.Billboard{}, err
	}
	return b.Update(ctx, id, payload)
}

// Restore moves a billboard out of the recycle bin
func (b *Billboards) Restore(ctx context.Context, id string) (*api.Status, error) {
	return b.Acknowledge(ctx, api.Request{
		Method: http.MethodPost,
		Path:   api.ItemPath("/billboard/%s/restore", id),
	}, "Restore failed")
}

// Purge deletes a billboard permanently
func (b *Billboards) Purge(ctx context.Context, id string) (*api.Status, error) {
	return b.Acknowledge(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   api.ItemPath("/billboard/%s/purge", id),
		Query:  url.Values{"confirm": {"true"}},
	}, "Purge failed")
}
