// Package objectid provides helpers for the 24-character lowercase-hex
// identifiers used by all Folio content records.
//
// The identifier format is the MongoDB ObjectId; this package is a thin
// wrapper over the driver's primitive type so that calling services never
// handle primitive.ObjectID values directly, only their hex string form.
package objectid

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// New generates a fresh identifier.
func New() string {
	return primitive.NewObjectID().Hex()
}

// FromTime generates an identifier whose embedded timestamp is t.
// Useful for building range-query boundaries over time-ordered ids.
func FromTime(t time.Time) string {
	return primitive.NewObjectIDFromTimestamp(t).Hex()
}

// IsValid reports whether s is a well-formed identifier: exactly 24
// lowercase hex digits.
func IsValid(s string) bool {
	if len(s) != 24 || s != strings.ToLower(s) {
		return false
	}
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// Timestamp extracts the creation time embedded in the identifier.
func Timestamp(s string) (time.Time, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid object id %q: %w", s, err)
	}
	return id.Timestamp(), nil
}

// Compare orders two identifiers byte-wise, which for well-formed ids is
// also creation-time order. Returns -1, 0, or 1.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}
