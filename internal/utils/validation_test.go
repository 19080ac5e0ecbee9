package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username        string `validate:"required,notblank"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Price           string `validate:"omitempty,currency"`
}

func TestValidateForm(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		assert.NoError(t, ValidateForm(signupForm{
			Username:        "andi",
			Email:           "andi@example.com",
			Password:        "rahasia",
			ConfirmPassword: "rahasia",
			Price:           "Rp10.000",
		}))
	})

	t.Run("single violation reads as its message", func(t *testing.T) {
		err := ValidateForm(signupForm{
			Username:        "andi",
			Email:           "andi@example.com",
			Password:        "rahasia",
			ConfirmPassword: "rahasib",
		})
		assert.EqualError(t, err, "Passwords do not match")
	})

	t.Run("messages per rule", func(t *testing.T) {
		err := ValidateForm(signupForm{Username: " ", Email: "andi", Password: "abc", ConfirmPassword: "abc", Price: "free"})

		var multi *MultiError
		require.ErrorAs(t, err, &multi)
		msgs := map[string]string{}
		for _, e := range multi.Errors {
			ve := e.(*ValidationError)
			msgs[ve.Field] = ve.Message
		}
		assert.Equal(t, map[string]string{
			"Username": "Username is required",
			"Email":    "Invalid email",
			"Password": "Password must be at least 6 characters",
			"Price":    "Price must contain an amount",
		}, msgs)
	})
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Category", FieldLabel("CategoryID"))
	assert.Equal(t, "Confirm password", FieldLabel("ConfirmPassword"))
	assert.Equal(t, "Images", FieldLabel("Images[0]"))
}

func TestValidatePassword(t *testing.T) {
	assert.EqualError(t, ValidatePassword("abc", "abc"), "Password must be at least 6 characters")
	assert.EqualError(t, ValidatePassword("rahasia", ""), "Please confirm your password")
	assert.EqualError(t, ValidatePassword("rahasia", "rahasib"), "Passwords do not match")
	assert.NoError(t, ValidatePassword("rahasia", "rahasia"))
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("LED", "Name"))
	assert.EqualError(t, ValidateRequired("", "Name"), "Name is required")

	err := ValidateRequired(" \t ", "Name")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Name", ve.Field)
}
