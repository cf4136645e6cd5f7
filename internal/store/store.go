// Package store provides the persistent key-value store backing the trip
// repository.
package store

// Store is the key-value contract the repository persists through. Get
// reports absence with ok=false rather than an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
