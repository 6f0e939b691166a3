package store

import "errors"

// ErrNotFound is returned by Get when no value exists for a key.
var ErrNotFound = errors.New("store: key not found")

// Store is a small key-value persistence interface. Cart and entitlement
// state go through this so the engines stay storage-backend-agnostic; the
// server backs it with Postgres, tests with an in-memory map.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
