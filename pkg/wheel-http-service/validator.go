package wheel_http_service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// itemRow is one editor row. Blank names and zero quantities are allowed here
// and dropped when the list is replaced.
type itemRow struct {
	Name     string `json:"name" validate:"max=64"`
	Quantity int    `json:"quantity" validate:"gte=0,lte=1000000"`
}

type updateItemsRequest struct {
	Items []itemRow `json:"items" validate:"required,max=100,dive"`
}

// formatValidationError maps validation errors to field messages.
func formatValidationError(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Namespace())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}
