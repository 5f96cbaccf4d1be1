package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// RandomToken generates a URL-safe random token from n bytes of entropy
func RandomToken(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("generate random token failed")
	}

	return base64.RawURLEncoding.EncodeToString(buf)
}
