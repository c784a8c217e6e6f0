package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds "<prefix>:<sha256 of the JSON-encoded parts>".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the hex SHA-256 digest of data. Dataset keys hash the raw
// CSV bytes with it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// KeyType returns the key's type prefix, ignoring any scope prefix, or ""
// for keys not made by a Keyer.
func KeyType(key string) string {
	for _, t := range []string{KeyTypeDataset, KeyTypeLayout, KeyTypeArtifact} {
		// A Keyer key ends in "<type>:<64 hex chars>".
		n := len(key) - 64 - 1 - len(t)
		if n >= 0 && key[n:n+len(t)] == t && key[n+len(t)] == ':' {
			return t
		}
	}
	return ""
}
