// Package repository defines sentinel errors shared across the data
// access layer so handlers can map failures to specific HTTP responses
// without inspecting driver errors.
package repository

import "errors"

// ErrEmailExists is returned when an insert or update would violate the
// unique email constraint.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when an operation targets a row that does not
// exist, such as deleting a review by a (movie_id, user_id) pair that
// was never written.
var ErrNotFound = errors.New("not found")
