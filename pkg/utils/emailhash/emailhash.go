// Package emailhash computes the normalized email fingerprint used as the
// Gravatar lookup path segment and as the enrichment cache key.
package emailhash

import (
	"crypto/md5" // #nosec G501 -- Gravatar's protocol requires MD5; the hash is a public lookup key, not a credential
	"encoding/hex"
	"strings"
)

// Fingerprint returns the lowercase hex MD5 digest of the trimmed,
// lowercased email address. Case and surrounding whitespace variants of the
// same address produce identical output, and the value is stable across
// process restarts.
func Fingerprint(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized)) // #nosec G401
	return hex.EncodeToString(sum[:])
}
