package handlers

import (
	"strings"

	"finflow/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs struct-tag validation and returns per-field errors,
// or nil when the input is valid.
func validateStruct(v interface{}) []utils.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []utils.FieldError{{Field: "", Message: "invalid input"}}
	}

	details := make([]utils.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, utils.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: validationMessage(fe),
		})
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
