package fetch

import (
	"errors"
	"strings"
	"sync"
)

// ErrNoKeys is returned when a ring is built without usable credentials.
var ErrNoKeys = errors.New("key ring needs at least one key")

// KeyRing is an ordered list of interchangeable credentials with a cursor.
// The cursor only moves on failed attempts and is never reset, so it carries
// across polling cycles.
type KeyRing struct {
	mu     sync.Mutex
	keys   []string
	cursor int
}

// NewKeyRing builds a ring from keys, dropping blank entries.
func NewKeyRing(keys ...string) (*KeyRing, error) {
	ring := &KeyRing{}
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			ring.keys = append(ring.keys, k)
		}
	}
	if len(ring.keys) == 0 {
		return nil, ErrNoKeys
	}
	return ring, nil
}

// Len returns the number of keys.
func (r *KeyRing) Len() int {
	return len(r.keys)
}

// Current returns the cursor position and the key under it.
func (r *KeyRing) Current() (int, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor, r.keys[r.cursor]
}

// Advance moves the cursor to the next key, wrapping around.
func (r *KeyRing) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursor = (r.cursor + 1) % len(r.keys)
}
