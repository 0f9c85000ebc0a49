package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ResetTokenLength is the hex-encoded length of a reset token.
const ResetTokenLength = 64

// NewResetToken returns an opaque password-reset token: 32 bytes from the
// system CSPRNG, hex encoded. Not derived from user identity or time.
func NewResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
