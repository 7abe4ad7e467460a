package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/foliocms/shared-go/apperr"
	"github.com/foliocms/shared-go/objectid"
)

// validate is the shared validator instance. validator.Validate caches
// struct metadata, so a single instance is reused for all records.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// objectid checks the 24-lowercase-hex identifier format.
	// RegisterValidation only fails for an empty tag name.
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return objectid.IsValid(fl.Field().String())
	})

	return v
}

// ValidationError reports which fields of a record failed validation.
type ValidationError struct {
	// Fields maps a field path (e.g. "Article.Title") to the failed rule.
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, rule := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: failed %q", field, rule))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks a record against its schema tags. It returns nil for a
// valid record, and a *ValidationError describing every failed field
// otherwise. Calling services translate the result into an
// apperr.KindBadRequest error at the API boundary; AsBadRequest does this
// translation.
func Validate(record interface{}) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-struct input or similar misuse.
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Namespace()] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}

// AsBadRequest wraps a validation failure into the HTTP error vocabulary.
// Returns nil when err is nil.
func AsBadRequest(err error) *apperr.Error {
	if err == nil {
		return nil
	}
	return apperr.Wrap(apperr.KindBadRequest, "invalid record", err)
}
