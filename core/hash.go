package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUnavailable is the sentinel digest used when hashing fails. Scoring
// still succeeds in that case; the record just carries this marker instead
// of a content address.
const HashUnavailable = "hash-unavailable"

// FileHash computes the lowercase hex SHA-256 digest of the exact input
// bytes. Identical content always yields the identical digest, which is
// what the marketplace uses for duplicate-image detection.
func FileHash(data []byte) (digest string) {
	defer func() {
		if r := recover(); r != nil {
			digest = HashUnavailable
		}
	}()
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
