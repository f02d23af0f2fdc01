package helpers

import (
	"crypto/sha256"
	"fmt"
)

// Sha256String returns the hex encoded SHA256 hash of the input.
func Sha256String(input string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}
