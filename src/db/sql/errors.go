package db

import "errors"

// ErrNotFound is returned for lookup misses and for targeted updates or
// deletes that affect zero rows, so handlers can map them to 404 instead
// of a server error.
var ErrNotFound = errors.New("not found")
