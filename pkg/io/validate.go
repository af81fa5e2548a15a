package io

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/chartgeom/pkg/animate"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the document tags
// registered. Field names in errors follow the JSON keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("chartkind", func(fl validator.FieldLevel) bool {
			return chart.ValidKinds[fl.Field().String()]
		})

		_ = v.RegisterValidation("orientation", func(fl validator.FieldLevel) bool {
			switch chart.Orientation(fl.Field().String()) {
			case chart.Vertical, chart.Horizontal:
				return true
			}
			return false
		})

		_ = v.RegisterValidation("easing", func(fl validator.FieldLevel) bool {
			_, err := animate.ParseEasing(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := geom.ParseColor(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a document's kind, config values and data items.
func Validate(doc *Document) error {
	if doc == nil {
		return errors.New(errors.ErrCodeInvalidDocument, "document is nil")
	}
	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "validate document")
	}

	ve := ves[0]
	field := fieldName(ve)
	switch {
	case ve.Tag() == "chartkind":
		return errors.New(errors.ErrCodeInvalidKind, "unknown chart kind %q", fmt.Sprint(ve.Value()))
	case strings.HasPrefix(field, "config."):
		return errors.New(errors.ErrCodeInvalidConfig, "%s failed validation for tag '%s'", field, ve.Tag())
	}
	return errors.New(errors.ErrCodeInvalidDocument, "%s failed validation for tag '%s'", field, ve.Tag())
}

// fieldName drops the root struct name from the namespace:
// "Document.config.width" becomes "config.width".
func fieldName(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return rest
}
