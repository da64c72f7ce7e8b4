// Package id issues opaque transaction identifiers. IDs are assigned
// once at creation and never reused; nothing downstream parses them.
package id

import "github.com/google/uuid"

// New returns a fresh transaction identifier.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether s is an identifier produced by New.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
