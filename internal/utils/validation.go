package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	digitPattern = regexp.MustCompile(`\d`)
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = validate.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			return digitPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// ValidateForm checks a form struct against its validate tags. Every
// violation becomes a *ValidationError; several are joined in a *MultiError.
func ValidateForm(form interface{}) error {
	err := formValidator().Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewValidationError("", err.Error())
	}

	multi := NewMultiError()
	for _, fe := range fieldErrs {
		multi.Add(NewValidationError(fe.Field(), fieldMessage(fe)))
	}
	return multi.ErrorOrNil()
}

func fieldMessage(fe validator.FieldError) string {
	label := FieldLabel(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "currency":
		return label + " must contain an amount"
	case "file":
		return fmt.Sprintf("%s: file %q not found", label, fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// FieldLabel turns a Go field name into a form label: CategoryID becomes
// "Category", ConfirmPassword becomes "Confirm password".
func FieldLabel(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	field = strings.TrimSuffix(field, "ID")
	if field == "" {
		return "Value"
	}

	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) {
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateRequired validates that a string is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fieldName, fieldName+" is required")
	}
	return nil
}

// ValidatePassword validates a password on account creation
func ValidatePassword(password, confirm string) error {
	if len(password) < 6 {
		return NewValidationError("Password", "Password must be at least 6 characters")
	}
	if confirm == "" {
		return NewValidationError("ConfirmPassword", "Please confirm your password")
	}
	if confirm != password {
		return NewValidationError("ConfirmPassword", "Passwords do not match")
	}
	return nil
}
