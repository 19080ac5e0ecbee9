package services

import (
	"context"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
)

// DesignSort is the sort contract of the designs grid
var DesignSort = createdAtSort("name", "price")

// Designs manages print designs
type Designs struct {
	*api.Resource[models.Design, models.Design]
}

// NewDesigns creates the designs resource
func NewDesigns(c *api.Client) *Designs {
	return &Designs{api.NewResource[models.Design, models.Design](c, api.ResourceSpec{
		Name:       "designs",
		ListPath:   "/design",
		DetailPath: "/design/detail/%s",
		CreatePath: "/design",
		ItemPath:   "/design/%s",
		Sort:       DesignSort,
	})}
}

// Fetcher adapts List to a page controller
func (d *Designs) Fetcher() Fetcher[models.Design] {
	return func(ctx context.Context, q api.ListQuery) (api.ListResult[models.Design], error) {
		return d.List(ctx, q, nil)
	}
}

// CreateDesign uploads a new design with its images
func (d *Designs) CreateDesign(ctx context.Context, in models.DesignInput) (models.Design, error) {
	form, err := DesignForm(in, false)
	if err != nil {
		return models.Design{}, err
	}
	return d.Create(ctx, form)
}

// UpdateDesign sends the changed fields of a design. Empty fields are left
// untouched on the backend.
func (d *Designs) UpdateDesign(ctx context.Context, id string, in models.DesignInput) (models.Design, error) {
	form, err := DesignForm(in, true)
	if err != nil {
		return models.Design{}, err
	}
	return d.Update(ctx, id, form)
}
