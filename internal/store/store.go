package store

import "errors"

// ErrNotFound is returned when a row does not exist or belongs to a
// different tenant.
var ErrNotFound = errors.New("not found")
