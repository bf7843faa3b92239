// Package validate checks tagged structs with go-playground/validator and
// turns the first failure into a short, user-facing error.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	validatorV10 "github.com/go-playground/validator/v10"
)

var engine = newEngine()

func newEngine() *validatorV10.Validate {
	v := validatorV10.New(validatorV10.WithRequiredStructEnabled())

	// Report fields by their config or JSON name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"yaml", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return strings.ToLower(fld.Name)
	})

	if err := v.RegisterValidation("nocontrol", noControl); err != nil {
		panic(err)
	}
	return v
}

// noControl rejects strings containing control characters.
func noControl(fl validatorV10.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}

// FieldError describes the first field that failed validation.
type FieldError struct {
	// Field is the dotted config path, e.g. storage.backend.
	Field string
	Tag   string
	Param string
	Value interface{}
}

func (e *FieldError) Error() string {
	switch e.Tag {
	case "oneof":
		return fmt.Sprintf("invalid %s %q (want one of: %s)", e.Field, e.Value, strings.ReplaceAll(e.Param, " ", ", "))
	case "max":
		return fmt.Sprintf("%s is longer than %s characters", e.Field, e.Param)
	case "nocontrol":
		return fmt.Sprintf("%s contains a control character", e.Field)
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	default:
		return fmt.Sprintf("invalid %s (%s)", e.Field, e.Tag)
	}
}

// Struct validates s against its validate tags.
func Struct(s interface{}) error {
	err := engine.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validatorV10.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]

	// Drop the root struct name from the namespace.
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	return &FieldError{Field: field, Tag: fe.Tag(), Param: fe.Param(), Value: fe.Value()}
}
