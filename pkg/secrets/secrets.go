package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// EncryptString encrypts a string using the compound key derived from the app
// and tenant keys. Returns base64-encoded ciphertext.
func EncryptString(appKey, tenantKey []byte, plaintext string) (string, error) {
	ciphertext, err := EncryptBytes(appKey, tenantKey, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptString decrypts a base64-encoded ciphertext back to string.
func DecryptString(appKey, tenantKey []byte, ciphertext string) (string, error) {
	ciphertextBytes, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	plaintextBytes, err := DecryptBytes(appKey, tenantKey, ciphertextBytes)
	if err != nil {
		return "", err
	}

	return string(plaintextBytes), nil
}

// EncryptBytes seals raw bytes with AES-256-GCM under the compound key.
// Returns ciphertext in format: nonce + encrypted data + tag
func EncryptBytes(appKey, tenantKey []byte, data []byte) ([]byte, error) {
	if err := ValidateKeys(appKey, tenantKey); err != nil {
		return nil, err
	}

	key, err := deriveKey(appKey, tenantKey)
	if err != nil {
		return nil, err
	}
	// aes.NewCipher copies the key into its schedule, the source can be wiped
	defer clearBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	// Prepend nonce to ciphertext so the result is self-contained
	return aesGCM.Seal(nonce, nonce, data, nil), nil
}

// DecryptBytes opens ciphertext produced by EncryptBytes.
// Expects ciphertext in format: nonce + encrypted data + tag
func DecryptBytes(appKey, tenantKey []byte, ciphertext []byte) ([]byte, error) {
	if err := ValidateKeys(appKey, tenantKey); err != nil {
		return nil, err
	}

	key, err := deriveKey(appKey, tenantKey)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, ErrInvalidCiphertext
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
