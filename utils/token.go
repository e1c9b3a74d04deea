package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewAPIToken renvoie 40 caractères hexadécimaux (20 octets aléatoires).
func NewAPIToken() string {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
