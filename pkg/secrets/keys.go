package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required size for both app and tenant keys
	KeySize = 32 // 256 bits for AES-256

	// saltInfo is used for HKDF key derivation to provide domain separation
	saltInfo = "guardkit-secrets-v1"
)

// ValidateKeys checks that both keys are exactly KeySize bytes. Both lengths
// are evaluated before either error returns, so timing does not reveal which
// key failed. A nil key fails its length contract.
func ValidateKeys(appKey, tenantKey []byte) error {
	validApp := len(appKey) == KeySize
	validTenant := len(tenantKey) == KeySize

	if !validApp {
		return ErrInvalidAppKey
	}
	if !validTenant {
		return ErrInvalidTenantKey
	}
	return nil
}

// deriveKey creates a compound key from the app and tenant keys using
// HKDF-SHA256. Callers must clear the returned slice with clearBytes once the
// cipher has been initialized.
func deriveKey(appKey, tenantKey []byte) ([]byte, error) {
	hkdfReader := hkdf.New(sha256.New, appKey, tenantKey, []byte(saltInfo))

	derivedKey := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdfReader, derivedKey); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	return derivedKey, nil
}

// clearBytes zeros out key material that is no longer needed.
func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateKey creates a new random 32-byte key suitable for encryption
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
