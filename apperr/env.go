package apperr

import "fmt"

// MissingEnvError signals that a required environment variable is not set.
// It is distinct from the HTTP error kinds: it indicates a deployment
// problem and should abort service startup rather than surface to clients.
type MissingEnvError struct {
	// Name is the environment variable that was not set.
	Name string

	// Context optionally labels the subsystem that needed the variable
	// (e.g. "logger", "database").
	Context string
}

// Error implements the error interface.
func (e *MissingEnvError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("required environment variable %s is not set (%s)", e.Name, e.Context)
	}
	return fmt.Sprintf("required environment variable %s is not set", e.Name)
}

// MissingEnv creates a MissingEnvError for the given variable name.
func MissingEnv(name, context string) *MissingEnvError {
	return &MissingEnvError{Name: name, Context: context}
}
