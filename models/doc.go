// Package models provides the shared data structures for the Folio
// content platform.
//
// This package contains the schema-validated record shapes used across
// services: articles, comments, tags, likes, and users. Keeping them in a
// shared package lets the API servers, background workers, and tooling
// exchange the same types without circular dependencies.
//
// Conventions shared by every record:
//   - Ids are 24-character lowercase-hex strings (see the objectid package)
//   - CreatedAt/UpdatedAt are epoch-millisecond integers
//   - Status fields are closed enumerations validated by Validate
//
// All structs carry validator tags; call Validate before persisting or
// accepting a record at an API boundary.
package models
