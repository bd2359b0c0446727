package dto

import (
	"time"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the custom tags used by the request DTOs.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("dateonly", validateDateOnly); err != nil {
		return err
	}
	return v.RegisterValidation("role", validateRole)
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DateLayout, fl.Field().String())
	return err == nil
}

func validateRole(fl validator.FieldLevel) bool {
	_, ok := domain.ParseRole(fl.Field().String())
	return ok
}
