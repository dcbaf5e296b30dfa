package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fieldCaser = cases.Title(language.English)

func formatFieldName(s string) string {
	return fieldCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError turns gin binding failures into AppErrors with a
// message naming the first offending field by its json tag.
func MapValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "uuid":
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be a valid UUID", field),
			http.StatusBadRequest,
		)
	case "email":
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be a valid email address", field),
			http.StatusBadRequest,
		)
	case "min":
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must have at least %s items", field, e.Param()),
			http.StatusBadRequest,
		)
	default:
		return InvalidField(field)
	}
}
