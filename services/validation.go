// services/validation.go
package services

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance. Error field names come from json tags so the
// field map handed back to clients matches the request body they sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}
