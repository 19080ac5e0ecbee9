package services

import (
	"context"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
)

// UserSort is the sort contract of the users grid
var UserSort = createdAtSort("email", "username", "level")

// Users manages user accounts
type Users struct {
	*api.Resource[models.User, models.User]
}

// NewUsers creates the users resource
func NewUsers(c *api.Client) *Users {
	return &Users{api.NewResource[models.User, models.User](c, api.ResourceSpec{
		Name:       "users",
		ListPath:   "/user",
		DetailPath: "/user/detail/%s",
		CreatePath: "/user",
		ItemPath:   "/user/%s",
		Sort:       UserSort,
	})}
}

// ListUsers fetches a page of users, optionally joining their merchant
func (u *Users) ListUsers(ctx context.Context, q api.ListQuery, includeMerchant bool) (api.ListResult[models.User], error) {
	return u.List(ctx, q, map[string]string{"includeMerchant": boolParam(includeMerchant)})
}

// Fetcher adapts ListUsers to a page controller
func (u *Users) Fetcher(includeMerchant bool) Fetcher[models.User] {
	return func(ctx context.Context, q api.ListQuery) (api.ListResult[models.User], error) {
		return u.ListUsers(ctx, q, includeMerchant)
	}
}

// CreateUser validates and submits a new account
func (u *Users) CreateUser(ctx context.Context, in models.UserInput) (models.User, error) {
	if err := ValidateUserForm(in, true, ""); err != nil {
		return models.User{}, err
	}
	return u.Create(ctx, in)
}

// UpdateUser validates and submits an edited account. current is the level
// the account has before the edit.
func (u *Users) UpdateUser(ctx context.Context, id string, in models.UserInput, current models.Level) (models.User, error) {
	if err := ValidateUserForm(in, false, current); err != nil {
		return models.User{}, err
	}
	return u.Update(ctx, id, in)
}
