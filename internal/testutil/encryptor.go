package testutil

import (
	"aquafarm/internal/encryption"
	"aquafarm/internal/farm"
)

// NewTestEncryptor creates a new test encryptor for testing.
func NewTestEncryptor() farm.Encryptor {
	return encryption.NewTestEncryptor()
}
