package secrets

import (
	"errors"
	"fmt"

	"github.com/guardkit/guardkit/pkg/guard"
)

var (
	// Key length violations unwrap to the guard invalid-argument kind.
	ErrInvalidAppKey    = fmt.Errorf("%w: app key must be %d bytes", guard.ErrInvalidArgument, KeySize)
	ErrInvalidTenantKey = fmt.Errorf("%w: tenant key must be %d bytes", guard.ErrInvalidArgument, KeySize)

	// Encryption/decryption errors
	ErrEncryptionFailed  = errors.New("encryption failed")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")

	// Key derivation errors
	ErrKeyDerivationFailed = errors.New("key derivation failed")
)
