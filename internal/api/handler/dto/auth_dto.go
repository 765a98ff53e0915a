package dto

import (
	"bank-services/internal/pkg/apperrors"
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type LoginRequest struct {
	UserName string `json:"userName" validate:"required,max=128"`
	Password string `json:"password" validate:"required,max=128"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Validate reports the first invalid field as an apperrors.ValidationError.
func (r LoginRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(jsonFieldName(fe.Field()), fieldErrorMessage(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func jsonFieldName(structField string) string {
	switch structField {
	case "UserName":
		return "userName"
	case "Password":
		return "password"
	default:
		return structField
	}
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}
