// Package repository implements the data access layer on top of
// database/sql. The sentinel errors defined here are shared across the
// individual repositories so handlers can translate failures into HTTP
// status codes without inspecting driver errors.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested row does not exist. Handlers
// should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers should translate this into an HTTP
// 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an insert or update collides with
// existing state. Handlers should translate this into an HTTP 409
// response.
var ErrConflict = errors.New("conflict")

// ErrEmailExists is returned when an insert hits the unique email
// constraint on profiles or admin_emails.
var ErrEmailExists = errors.New("email already exists")

// isDup reports whether err is a MySQL duplicate-key violation (1062).
func isDup(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
