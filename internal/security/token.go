package security

import (
	"crypto/rand"
	"fmt"
)

// GenerateOpaqueToken returns a random hex token used for email verification
// and password reset links.
func GenerateOpaqueToken() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}
