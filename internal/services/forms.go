package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/utils"
)

// ValidateUserForm checks a user form. current is the level of the account
// being edited and is empty on create.
//
// On create the password is mandatory, at least 6 characters and confirmed.
// On edit it is optional and unchecked. MERCHANT can only be kept on an
// account that already is a merchant; it is never assigned here.
func ValidateUserForm(in models.UserInput, create bool, current models.Level) error {
	multi := utils.NewMultiError()
	for _, err := range flatten(utils.ValidateForm(in)) {
		multi.Add(err)
	}
	if create {
		multi.Add(utils.ValidatePassword(in.Password, in.ConfirmPassword))
	}
	if in.Level == models.LevelMerchant && (create || current != models.LevelMerchant) {
		multi.Add(utils.NewValidationError("Level", "Level must be one of ADMIN, BUYER"))
	}
	return multi.ErrorOrNil()
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	var multi *utils.MultiError
	if errors.As(err, &multi) {
		return multi.Errors
	}
	return []error{err}
}

// DesignForm validates a design form and builds its multipart body. Price is
// sent as whole rupiah.
func DesignForm(in models.DesignInput, partial bool) (*api.FormData, error) {
	if !partial {
		if err := utils.ValidateForm(in); err != nil {
			return nil, err
		}
	}

	fd := api.NewFormData()
	fd.Set("name", in.Name)
	fd.Set("description", in.Description)
	fd.Set("price", utils.CurrencyParam(in.Price))
	if err := attachImages(fd, in.Images); err != nil {
		return nil, err
	}
	return fd, nil
}

var billboardTextFields = []struct {
	key   string
	value func(models.BillboardInput) string
}{
	{"categoryId", func(in models.BillboardInput) string { return in.CategoryID }},
	{"description", func(in models.BillboardInput) string { return in.Description }},
	{"location", func(in models.BillboardInput) string { return in.Location }},
	{"cityId", func(in models.BillboardInput) string { return in.CityID }},
	{"provinceId", func(in models.BillboardInput) string { return in.ProvinceID }},
	{"status", func(in models.BillboardInput) string { return in.Status }},
	{"mode", func(in models.BillboardInput) string { return in.Mode }},
	{"size", func(in models.BillboardInput) string { return in.Size }},
	{"orientation", func(in models.BillboardInput) string { return in.Orientation }},
	{"display", func(in models.BillboardInput) string { return in.Display }},
	{"lighting", func(in models.BillboardInput) string { return in.Lighting }},
	{"tax", func(in models.BillboardInput) string { return in.Tax }},
	{"landOwnership", func(in models.BillboardInput) string { return in.LandOwnership }},
}

var billboardPriceFields = []struct {
	key   string
	value func(models.BillboardInput) string
}{
	{"rentPrice", func(in models.BillboardInput) string { return in.RentPrice }},
	{"sellPrice", func(in models.BillboardInput) string { return in.SellPrice }},
	{"servicePrice", func(in models.BillboardInput) string { return in.ServicePrice }},
}

// BillboardForm validates a new billboard and builds its multipart body.
func BillboardForm(in models.BillboardInput) (*api.FormData, error) {
	if err := utils.ValidateForm(in); err != nil {
		return nil, err
	}

	fd := api.NewFormData()
	for _, f := range billboardTextFields {
		fd.Set(f.key, f.value(in))
	}
	for _, f := range billboardPriceFields {
		fd.Set(f.key, utils.CurrencyParam(f.value(in)))
	}
	if err := attachImages(fd, in.Images); err != nil {
		return nil, err
	}
	return fd, nil
}

// BillboardPatch builds the body of a billboard edit: multipart when images
// are added or removed, JSON with only the provided fields otherwise.
func BillboardPatch(in models.BillboardInput) (interface{}, error) {
	if len(in.Images) > 0 || len(in.ImagesDeleteIDs) > 0 {
		fd := api.NewFormData()
		for _, f := range billboardTextFields {
			fd.Set(f.key, f.value(in))
		}
		for _, f := range billboardPriceFields {
			fd.Set(f.key, utils.CurrencyParam(f.value(in)))
		}
		if err := attachImages(fd, in.Images); err != nil {
			return nil, err
		}
		for _, id := range in.ImagesDeleteIDs {
			fd.Set("imagesDeleteIds[]", id)
		}
		return fd, nil
	}

	payload := map[string]interface{}{}
	for _, f := range billboardTextFields {
		if v := f.value(in); v != "" {
			payload[f.key] = v
		}
	}
	for _, f := range billboardPriceFields {
		if d, ok := utils.ParseCurrency(f.value(in)); ok {
			payload[f.key] = json.Number(d.String())
		}
	}
	return payload, nil
}

func attachImages(fd *api.FormData, paths []string) error {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return utils.NewValidationError("Images", fmt.Sprintf("cannot read image %s: %v", p, err))
		}
		fd.AddFile(api.File{Field: "images", Filename: filepath.Base(p), Content: data})
	}
	return nil
}
