// Package cache stores answered consultations so repeated queries with identical
// parameters skip the generator.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"legalgpt-portal/models"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ConsultationKey derives the cache key of a consultation request. Queries differing only in
// surrounding whitespace or letter case share a key; any parameter change produces a new one.
func ConsultationKey(req models.ConsultationRequest) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(req.Query), " "))
	raw := fmt.Sprintf("%s|%.2f|%.2f|%d|%d|%d",
		normalized, req.Temperature, req.TopP, req.TopK, req.NumBeams, req.MaxTokens)
	hash := sha256.Sum256([]byte(raw))
	return "legalgpt:v1:" + hex.EncodeToString(hash[:])
}
