package services

import (
	"context"
	"strings"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/utils"
)

// CategorySort is the sort contract of the categories grid
var CategorySort = createdAtSort("name")

// Categories manages billboard categories
type Categories struct {
	*api.Resource[models.Category, models.Category]
}

// NewCategories creates the categories resource
func NewCategories(c *api.Client) *Categories {
	return &Categories{api.NewResource[models.Category, models.Category](c, api.ResourceSpec{
		Name:       "categories",
		ListPath:   "/category",
		DetailPath: "/category/detail/%s",
		CreatePath: "/category",
		ItemPath:   "/category/%s",
		Sort:       CategorySort,
	})}
}

// Fetcher adapts List to a page controller
func (c *Categories) Fetcher() Fetcher[models.Category] {
	return func(ctx context.Context, q api.ListQuery) (api.ListResult[models.Category], error) {
		return c.List(ctx, q, nil)
	}
}

// Save creates the category when id is empty and updates it otherwise
func (c *Categories) Save(ctx context.Context, id string, in models.CategoryInput) (models.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := utils.ValidateRequired(in.Name, "Name"); err != nil {
		return models.Category{}, err
	}
	if id == "" {
		return c.Create(ctx, in)
	}
	return c.Update(ctx, id, in)
}
