package service

import (
	"errors"
	"fmt"
	"regexp"

	apperrors "house-rental-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// bcrypt rejects longer passwords
const maxPasswordBytes = 72

// NewValidator returns a validator with the project's custom rules registered:
//
//	phone10  - exactly ten ASCII digits
//	password - at most 72 bytes, counted in UTF-8 rather than runes
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})
	return v
}

// validationError converts the first failed field of a validator error into an apperrors.ValidationError
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), describe(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "phone10":
		return "must be a 10-digit phone number"
	case "email":
		return "must be a valid email address"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "password":
		return fmt.Sprintf("must be at most %d bytes", maxPasswordBytes)
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "uuid":
		return "must be a valid id"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
