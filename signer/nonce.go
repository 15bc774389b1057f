package signer

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// generateNonce returns a per-request unique value: the SHA1 of a
// high-resolution clock reading concatenated with a random UUID. Collision
// resistance holds across concurrent signers without any shared counter.
func generateNonce() string {
	seed := strconv.FormatInt(time.Now().UnixNano(), 10) + uuid.NewString()
	sum := sha1.Sum([]byte(seed))
	return hex.EncodeToString(sum[:])
}
