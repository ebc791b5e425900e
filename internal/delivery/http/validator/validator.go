// Package validator adapts go-playground/validator to Echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"kuttyport/internal/domain/entity"
	domainerrors "kuttyport/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// tagUniqueLocationIDs rejects a location list in which an id repeats.
const tagUniqueLocationIDs = "unique_location_ids"

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names and
// validates location ids by their text.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if id, ok := field.Interface().(entity.LocationID); ok {
			return id.String()
		}

		return nil
	}, entity.LocationID{})

	// Registration only fails for an empty tag or a nil func.
	_ = validate.RegisterValidation(tagUniqueLocationIDs, func(fl validator.FieldLevel) bool {
		locations, ok := fl.Field().Interface().([]entity.Location)

		return !ok || len(entity.DuplicateLocationIDs(locations)) == 0
	})

	return &Validator{validate: validate}
}

// Validate checks i against its validate tags. Failures are returned as a
// VALIDATION_FAILED application error listing every offending field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), rootNamespace(fe))
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "latitude":
		return fmt.Sprintf("%s must be a latitude between -90 and 90", field)
	case "longitude":
		return fmt.Sprintf("%s must be a longitude between -180 and 180", field)
	case tagUniqueLocationIDs:
		locations, _ := fe.Value().([]entity.Location)

		return fmt.Sprintf("%s has duplicate ids: %s", field, strings.Join(entity.DuplicateLocationIDs(locations), ", "))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
		}

		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// rootNamespace is the struct name prefix of a namespace, e.g. "SnapshotInput.".
func rootNamespace(fe validator.FieldError) string {
	root, _, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return ""
	}

	return root + "."
}
