// Package hash provides the single pure hashing primitive the rest of the
// blockchain packages build on: a SHA-256 digest over a block's canonical
// fields, and the difficulty-suffix check performed against it.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash returns the lowercase hex SHA-256 digest over the UTF-8 bytes of the
// decimal/text concatenation of id, data, prev, and nonce, in that order.
// This is the one and only encoding used to produce a block's hash, and it
// excludes the hash field itself.
func Hash(id uint64, data, prev string, nonce uint64) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d%s%s%d", id, data, prev, nonce)
	return hex.EncodeToString(h.Sum(nil))
}

// Satisfies reports whether hash ends with suffix, case-insensitively. An
// empty suffix is trivially satisfied by every hash.
func Satisfies(hash, suffix string) bool {
	if suffix == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(hash), strings.ToLower(suffix))
}
