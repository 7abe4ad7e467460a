// Package env provides small helpers for reading process environment
// variables with fail-fast semantics for required values.
//
// Missing required variables surface as *apperr.MissingEnvError so that
// startup code can report exactly which variable a subsystem needed.
package env

import (
	"os"

	"github.com/foliocms/shared-go/apperr"
)

// Get returns the value of the variable and whether it was set.
// An empty value counts as unset.
func Get(name string) (string, bool) {
	v := os.Getenv(name)
	return v, v != ""
}

// GetDefault returns the value of the variable, or fallback if it is unset
// or empty.
func GetDefault(name, fallback string) string {
	if v, ok := Get(name); ok {
		return v
	}
	return fallback
}

// Require returns the value of the variable, or a *apperr.MissingEnvError
// if it is unset or empty. The context label names the subsystem that
// needed the variable.
func Require(name, context string) (string, error) {
	v, ok := Get(name)
	if !ok {
		return "", apperr.MissingEnv(name, context)
	}
	return v, nil
}

// RequireAll checks that every named variable is set, returning the first
// missing one as a *apperr.MissingEnvError.
func RequireAll(context string, names ...string) error {
	for _, name := range names {
		if _, err := Require(name, context); err != nil {
			return err
		}
	}
	return nil
}
