package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashOpaqueToken generates a SHA256 hash of an opaque token (refresh or
// password-reset). Only the hash is ever stored.
func HashOpaqueToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CompareOpaqueTokenHash compares a raw token string with its stored SHA256 hash.
func CompareOpaqueTokenHash(token string, storedHash string) bool {
	return HashOpaqueToken(token) == storedHash
}
