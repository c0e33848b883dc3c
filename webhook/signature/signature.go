package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const (
	// Header is the request header GitHub uses to carry the body signature
	Header = "X-Hub-Signature-256"

	// Algorithm is the only digest accepted in the header prefix
	Algorithm = "sha256"
)

// Sign returns the header value for body: sha256=<hex digest>
func Sign(secret, body []byte) string {
	return Algorithm + "=" + hex.EncodeToString(digest(secret, body))
}

// Verify reports whether header carries a valid HMAC-SHA256 of body
// keyed with secret. A missing header, a foreign algorithm or a digest
// that is not hex all count as invalid.
func Verify(secret, body []byte, header string) bool {
	if header == "" {
		return false
	}

	algorithm, hexDigest, found := strings.Cut(header, "=")
	if !found || algorithm != Algorithm {
		return false
	}

	received, err := hex.DecodeString(hexDigest)
	if err != nil {
		return false
	}

	// Use constant-time comparison to prevent timing attacks
	return subtle.ConstantTimeCompare(digest(secret, body), received) == 1
}

func digest(secret, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return mac.Sum(nil)
}
