package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the hex SHA256 of a raw token. Revoked tokens are stored by hash only.
func HashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}
