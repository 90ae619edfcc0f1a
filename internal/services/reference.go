package services

import (
	"crypto/rand"
	"encoding/base32"
)

// referenceBytes yields 24 base32 characters, comfortably beyond guessing
// range for a handle that gates a payment status.
const referenceBytes = 15

var referenceEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewReference generates a cryptographically unpredictable transaction
// reference. References are never reused; the unique index on the column
// backstops the negligible collision chance.
func NewReference() (string, error) {
	buf := make([]byte, referenceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return referenceEncoding.EncodeToString(buf), nil
}
