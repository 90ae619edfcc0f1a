// Package webhook verifies the authenticity of external payment-status
// callbacks before any state change is applied.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Sign computes the hex HMAC-SHA256 over "reference:status" with the shared
// webhook secret. Callers must put the result in the request's signature
// field.
func Sign(secret, reference, status string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s:%s", reference, status)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a received signature in constant time.
func Verify(secret, reference, status, signature string) bool {
	expected := Sign(secret, reference, status)
	return hmac.Equal([]byte(expected), []byte(signature))
}
