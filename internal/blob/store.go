package blob

import "context"

// Store persists raw attachment bytes under a caller-chosen key and
// returns an opaque stored reference for it. Keys are slash-separated
// and already sanitized by the caller; writing the same key twice
// overwrites. Implementations must be safe for concurrent use with
// distinct keys.
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
