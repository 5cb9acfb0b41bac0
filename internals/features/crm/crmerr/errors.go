// Package crmerr holds the error taxonomy shared by the CRM services.
// Everything is recovered at the transaction boundary: services roll back
// and controllers map these to HTTP statuses.
package crmerr

import "errors"

var (
	// ErrNotFound: a referenced row vanished mid-transaction (or never existed).
	ErrNotFound = errors.New("record not found")

	// ErrConflict: duplicate daily sequence code after retry exhaustion, or a
	// duplicate uniquely-constrained business field.
	ErrConflict = errors.New("conflicting record")
)
