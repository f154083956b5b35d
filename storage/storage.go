// Package storage provides the durable key-value store the session layer
// persists into. It mirrors a browser's localStorage: flat string keys,
// JSON-serialized string values, no TTL.
package storage

// Store is the key-value contract consumed by the session store. A nil
// Store is valid at the session layer and simply disables persistence.
type Store interface {
	// Get returns the value under key and whether the key exists.
	Get(key string) (string, bool)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
