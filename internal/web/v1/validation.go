package v1

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

// bindError converts a gin binding failure on obj into a ValidationError keyed
// by JSON field name. Raw decoder and validator messages never reach clients.
func bindError(obj any, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewValidationError(nonFieldErrors, "malformed JSON body")
	}

	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(jsonName(t, fe), bindReason(fe.Tag()))
	}
	return verr
}

func jsonName(t reflect.Type, fe validator.FieldError) string {
	if f, ok := t.FieldByName(fe.StructField()); ok {
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
			return name
		}
	}
	return fe.Field()
}

func bindReason(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	default:
		return "invalid value"
	}
}
