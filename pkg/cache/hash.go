package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashJSON returns the hex SHA-256 of v's JSON encoding. Map keys are sorted
// by encoding/json, so equal values hash equally.
func HashJSON(v any) (string, error) {
	h := sha256.New()
	if err := json.NewEncoder(h).Encode(v); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// hashKey returns prefix + ":" + HashJSON(parts). parts are plain values, so
// encoding cannot fail.
func hashKey(prefix string, parts ...any) string {
	sum, _ := HashJSON(parts)
	return prefix + ":" + sum
}
