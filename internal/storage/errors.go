package storage

import "errors"

// ErrNotFound is returned by all stores when the requested record does not exist.
var ErrNotFound = errors.New("record not found")
