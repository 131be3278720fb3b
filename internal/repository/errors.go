// Package repository contains data access logic separated from HTTP
// handlers.  Sentinel errors defined here let handlers distinguish
// failure scenarios without inspecting driver-specific error strings:
// ErrNotFound maps to 404, ErrEmailExists and ErrAlreadyApplied map to
// 409.
package repository

import "errors"

// ErrNotFound is returned when a row with the requested id does not
// exist.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registration collides with an existing
// account email.
var ErrEmailExists = errors.New("email already exists")

// ErrAlreadyApplied is returned when a user submits a second application
// to the same job posting.
var ErrAlreadyApplied = errors.New("already applied to this job")
