package repositories

import "errors"

// ErrNotFound is returned when a document id does not resolve.
var ErrNotFound = errors.New("document not found")
