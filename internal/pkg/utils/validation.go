package utils

import (
	"glucolog-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var numericIDRegex = regexp.MustCompile(constvars.RegexAllDigits)

func init() {
	validate = validator.New()
	validate.RegisterValidation("form_type", validateFormType)
	validate.RegisterValidation("numeric_id", validateNumericID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateFormType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.FormTypeGlucose || value == constvars.FormTypeInsulin
}

func validateNumericID(fl validator.FieldLevel) bool {
	return numericIDRegex.MatchString(fl.Field().String())
}
