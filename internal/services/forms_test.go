package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/utils"
)

func validUser() models.UserInput {
	return models.UserInput{
		Username: "dewi",
		Email:    "dewi@example.com",
		Phone:    "08123456789",
		Level:    models.LevelBuyer,
	}
}

func TestValidateUserForm(t *testing.T) {
	t.Run("edit without password is valid", func(t *testing.T) {
		assert.NoError(t, ValidateUserForm(validUser(), false, models.LevelBuyer))
	})

	t.Run("create requires a password", func(t *testing.T) {
		err := ValidateUserForm(validUser(), true, "")
		assert.EqualError(t, err, "Password must be at least 6 characters")
	})

	t.Run("create requires the confirmation", func(t *testing.T) {
		in := validUser()
		in.Password = "rahasia1"
		assert.EqualError(t, ValidateUserForm(in, true, ""), "Please confirm your password")
	})

	t.Run("confirmation must match on create", func(t *testing.T) {
		in := validUser()
		in.Password, in.ConfirmPassword = "rahasia1", "rahasia2"
		assert.EqualError(t, ValidateUserForm(in, true, ""), "Passwords do not match")
	})

	t.Run("new password on edit needs no confirmation", func(t *testing.T) {
		in := validUser()
		in.Password = "newsecret"
		assert.NoError(t, ValidateUserForm(in, false, models.LevelBuyer))
	})

	t.Run("password length is not checked on edit", func(t *testing.T) {
		in := validUser()
		in.Password = "abc"
		assert.NoError(t, ValidateUserForm(in, false, models.LevelAdmin))
	})

	t.Run("merchant level cannot be assigned on create", func(t *testing.T) {
		in := validUser()
		in.Level = models.LevelMerchant
		in.Password, in.ConfirmPassword = "rahasia1", "rahasia1"
		assert.EqualError(t, ValidateUserForm(in, true, ""), "Level must be one of ADMIN, BUYER")
	})

	t.Run("merchant level is kept on an existing merchant", func(t *testing.T) {
		in := validUser()
		in.Level = models.LevelMerchant
		assert.NoError(t, ValidateUserForm(in, false, models.LevelMerchant))
	})

	t.Run("buyer cannot be promoted to merchant", func(t *testing.T) {
		in := validUser()
		in.Level = models.LevelMerchant
		assert.EqualError(t, ValidateUserForm(in, false, models.LevelBuyer), "Level must be one of ADMIN, BUYER")
	})

	t.Run("every field violation is reported", func(t *testing.T) {
		in := models.UserInput{Email: "not-an-email", Level: "OWNER"}
		err := ValidateUserForm(in, false, models.LevelBuyer)

		var multi *utils.MultiError
		require.ErrorAs(t, err, &multi)
		msgs := make([]string, len(multi.Errors))
		for i, e := range multi.Errors {
			msgs[i] = e.Error()
		}
		assert.ElementsMatch(t, []string{
			"Username is required",
			"Invalid email",
			"Phone is required",
			"Level must be one of ADMIN, BUYER, MERCHANT",
		}, msgs)
	})

	t.Run("valid create", func(t *testing.T) {
		in := validUser()
		in.Password, in.ConfirmPassword = "rahasia1", "rahasia1"
		assert.NoError(t, ValidateUserForm(in, true, ""))
	})
}

func TestDesignForm(t *testing.T) {
	img := filepath.Join(t.TempDir(), "mockup.png")
	require.NoError(t, os.WriteFile(img, []byte("png"), 0o600))

	t.Run("price is sent as whole rupiah", func(t *testing.T) {
		fd, err := DesignForm(models.DesignInput{
			Name:        "Ramadan promo",
			Description: "Full color",
			Price:       "Rp1.500.000",
			Images:      []string{img},
		}, false)
		require.NoError(t, err)
		assert.Equal(t, "1500000", fd.Values().Get("price"))
		assert.True(t, fd.HasFiles())
	})

	t.Run("missing fields are rejected before any request", func(t *testing.T) {
		_, err := DesignForm(models.DesignInput{Name: "  ", Description: "x"}, false)
		var multi *utils.MultiError
		require.ErrorAs(t, err, &multi)
		assert.Len(t, multi.Errors, 2)
	})

	t.Run("missing image file", func(t *testing.T) {
		_, err := DesignForm(models.DesignInput{Images: []string{filepath.Join(t.TempDir(), "gone.png")}}, true)
		var ve *utils.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Images", ve.Field)
	})

	t.Run("partial edit sends only provided fields", func(t *testing.T) {
		fd, err := DesignForm(models.DesignInput{Name: "Renamed"}, true)
		require.NoError(t, err)
		assert.Equal(t, "name=Renamed", fd.Values().Encode())
	})
}

func TestBillboardPatch(t *testing.T) {
	t.Run("plain edits are JSON with provided fields only", func(t *testing.T) {
		body, err := BillboardPatch(models.BillboardInput{
			Location:  "Jl. Asia Afrika",
			RentPrice: "Rp12.000.000",
		})
		require.NoError(t, err)

		payload, ok := body.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, map[string]interface{}{
			"location":  "Jl. Asia Afrika",
			"rentPrice": json.Number("12000000"),
		}, payload)
	})

	t.Run("image removal switches to multipart", func(t *testing.T) {
		body, err := BillboardPatch(models.BillboardInput{
			Status:          models.BillboardNotAvailable,
			ImagesDeleteIDs: []string{"img-1", "img-2"},
		})
		require.NoError(t, err)

		fd, ok := body.(*api.FormData)
		require.True(t, ok)
		v := fd.Values()
		assert.Equal(t, []string{"img-1", "img-2"}, v["imagesDeleteIds[]"])
		assert.Equal(t, "NotAvailable", v.Get("status"))
		assert.False(t, fd.HasFiles())
	})
}

func TestBillboardForm(t *testing.T) {
	in := models.BillboardInput{
		CategoryID:   "cat-1",
		Description:  "Double sided",
		Location:     "Jl. Sudirman 1",
		CityID:       "3171",
		ProvinceID:   "31",
		Status:       models.BillboardAvailable,
		Mode:         models.ModeRent,
		Size:         "4x8",
		Orientation:  "Horizontal",
		Display:      "OneSide",
		Lighting:     "Frontlite",
		Tax:          "Included",
		RentPrice:    "Rp 25.000.000",
		ServicePrice: "nol",
	}

	_, err := BillboardForm(in)
	assert.EqualError(t, err, "Service price must contain an amount")

	in.ServicePrice = ""
	fd, err := BillboardForm(in)
	require.NoError(t, err)
	v := fd.Values()
	assert.Equal(t, "25000000", v.Get("rentPrice"))
	assert.Empty(t, v.Get("sellPrice"))
	assert.Equal(t, "cat-1", v.Get("categoryId"))
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" paid ")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionPaid, st)

	_, err = ParseStatus("shipped")
	assert.EqualError(t, err, "Status must be one of PENDING, PAID, EXPIRED, REJECTED, CANCELLED, COMPLETED")
}
