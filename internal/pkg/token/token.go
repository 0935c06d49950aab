package token

import (
	"crypto/rand"
	"encoding/hex"

	"swiss-virtual-airline/internal/pkg/errs"
)

const sessionTokenBytes = 32

// NewSessionToken returns an opaque 64-character hex bearer token.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate session token")
	}
	return hex.EncodeToString(buf), nil
}
