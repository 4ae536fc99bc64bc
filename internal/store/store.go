package store

import "errors"

// ErrNotFound is returned by Get when a key has never been set (or was deleted)
var ErrNotFound = errors.New("store: key not found")

// KV is the persistence port used by the engine. Exactly one engine owns a
// store, so implementations only need to be safe for concurrent use by it.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
