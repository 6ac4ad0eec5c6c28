package storage

import "errors"

// ErrConflict is returned when a backend rejects a snapshot because two
// records claim the same key.
var ErrConflict = errors.New("storage_conflict")
