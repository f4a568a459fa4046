package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a question. The interpretation oracle is
// temperature-pinned, so identical questions hash to identical filters and
// caching is sound.
func Key(question string) string {
	hash := sha256.Sum256([]byte(question))
	return "aequery:v1:" + hex.EncodeToString(hash[:])
}
