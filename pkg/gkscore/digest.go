package gkscore

import (
	"crypto/sha512"
	"encoding/base64"
	"fmt"
)

// Digest computes the GA4GH sha512t24u truncated digest: the base64url
// encoding of the first 24 bytes of the SHA-512 hash of the input.
func Digest(data []byte) string {
	sum := sha512.Sum512(data)
	return base64.RawURLEncoding.EncodeToString(sum[:24])
}

// ComputedIdentifier formats a GA4GH computed identifier from a type prefix
// and a digest, e.g. "ga4gh:VA.<digest>".
func ComputedIdentifier(prefix, digest string) string {
	return fmt.Sprintf("ga4gh:%s.%s", prefix, digest)
}
