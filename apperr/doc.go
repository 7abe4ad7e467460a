// Package apperr provides the shared error vocabulary for Folio services.
//
// Errors carry an explicit Kind (a tagged variant) with a default HTTP
// status code mapping, instead of an inheritance hierarchy of exception
// classes. Services construct errors with the per-kind helpers and
// translate them at the API boundary using StatusOf.
//
// The package also defines MissingEnvError, returned by the env package
// when a required environment variable is absent. Startup code is expected
// to treat it as fatal: a missing variable means a misconfigured service.
package apperr
