package secrets_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guardkit/guardkit/pkg/guard"
	"github.com/guardkit/guardkit/pkg/secrets"
)

func TestEncryptDecryptString(t *testing.T) {
	t.Parallel()
	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	tenantKey, err := secrets.GenerateKey()
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
	}{
		{"empty string", ""},
		{"simple text", "Hello, World!"},
		{"api key", "sk_test_1234567890abcdef"},
		{"json", `{"client_id":"abc123","client_secret":"xyz789"}`},
		{"unicode", "Hello 世界 🌍"},
		{"long text", "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ciphertext, err := secrets.EncryptString(appKey, tenantKey, tt.plaintext)
			require.NoError(t, err)

			if tt.plaintext != "" {
				require.NotEqual(t, tt.plaintext, ciphertext)
			}

			decrypted, err := secrets.DecryptString(appKey, tenantKey, ciphertext)
			require.NoError(t, err)
			require.Equal(t, tt.plaintext, decrypted)
		})
	}
}

func TestEncryptDecryptBytes(t *testing.T) {
	t.Parallel()
	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	tenantKey, err := secrets.GenerateKey()
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty bytes", []byte{}},
		{"single byte", []byte{42}},
		{"binary data", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD}},
		{"text as bytes", []byte("Hello, World!")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ciphertext, err := secrets.EncryptBytes(appKey, tenantKey, tt.data)
			require.NoError(t, err)

			if len(tt.data) > 0 {
				require.False(t, bytes.Equal(ciphertext, tt.data))
			}

			decrypted, err := secrets.DecryptBytes(appKey, tenantKey, ciphertext)
			require.NoError(t, err)
			require.True(t, bytes.Equal(decrypted, tt.data))
		})
	}
}

func TestEncryptionIsNotDeterministic(t *testing.T) {
	t.Parallel()
	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	tenantKey, err := secrets.GenerateKey()
	require.NoError(t, err)

	first, err := secrets.EncryptString(appKey, tenantKey, "same plaintext")
	require.NoError(t, err)
	second, err := secrets.EncryptString(appKey, tenantKey, "same plaintext")
	require.NoError(t, err)

	require.NotEqual(t, first, second, "fresh nonce per call should randomize ciphertexts")
}

func TestTenantKeyIsolation(t *testing.T) {
	t.Parallel()
	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	tenantKey1, err := secrets.GenerateKey()
	require.NoError(t, err)
	tenantKey2, err := secrets.GenerateKey()
	require.NoError(t, err)

	plaintext := "secret-api-key"

	ciphertext1, err := secrets.EncryptString(appKey, tenantKey1, plaintext)
	require.NoError(t, err)

	ciphertext2, err := secrets.EncryptString(appKey, tenantKey2, plaintext)
	require.NoError(t, err)

	require.NotEqual(t, ciphertext1, ciphertext2)

	// One tenant's key must not open another tenant's secret
	_, err = secrets.DecryptString(appKey, tenantKey2, ciphertext1)
	require.Error(t, err)
	require.ErrorIs(t, err, secrets.ErrDecryptionFailed)

	decrypted, err := secrets.DecryptString(appKey, tenantKey1, ciphertext1)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestAppKeyIsolation(t *testing.T) {
	t.Parallel()
	appKey1, err := secrets.GenerateKey()
	require.NoError(t, err)
	appKey2, err := secrets.GenerateKey()
	require.NoError(t, err)
	tenantKey, err := secrets.GenerateKey()
	require.NoError(t, err)

	ciphertext, err := secrets.EncryptString(appKey1, tenantKey, "rotate me")
	require.NoError(t, err)

	_, err = secrets.DecryptString(appKey2, tenantKey, ciphertext)
	require.Error(t, err)
	require.ErrorIs(t, err, secrets.ErrDecryptionFailed)
}

func TestKeyContracts(t *testing.T) {
	t.Parallel()
	validKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	plaintext := "test"

	tests := []struct {
		name      string
		appKey    []byte
		tenantKey []byte
		wantErr   error
	}{
		{"nil app key", nil, validKey, secrets.ErrInvalidAppKey},
		{"nil tenant key", validKey, nil, secrets.ErrInvalidTenantKey},
		{"short app key", make([]byte, 16), validKey, secrets.ErrInvalidAppKey},
		{"short tenant key", validKey, make([]byte, 16), secrets.ErrInvalidTenantKey},
		{"long app key", make([]byte, 64), validKey, secrets.ErrInvalidAppKey},
		{"long tenant key", validKey, make([]byte, 64), secrets.ErrInvalidTenantKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := secrets.EncryptString(tt.appKey, tt.tenantKey, plaintext)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, guard.ErrInvalidArgument)

			_, err = secrets.DecryptString(tt.appKey, tt.tenantKey, "aXJyZWxldmFudA==")
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateKeys(t *testing.T) {
	t.Parallel()
	validKey := make([]byte, secrets.KeySize)

	t.Run("both valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, secrets.ValidateKeys(validKey, validKey))
	})

	t.Run("app key reported first", func(t *testing.T) {
		t.Parallel()
		err := secrets.ValidateKeys(make([]byte, 16), make([]byte, 64))
		require.ErrorIs(t, err, secrets.ErrInvalidAppKey)
	})

	t.Run("tenant key reported when app key valid", func(t *testing.T) {
		t.Parallel()
		err := secrets.ValidateKeys(validKey, make([]byte, 16))
		require.ErrorIs(t, err, secrets.ErrInvalidTenantKey)
	})
}

func TestInvalidCiphertext(t *testing.T) {
	t.Parallel()
	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	tenantKey, err := secrets.GenerateKey()
	require.NoError(t, err)

	garbage := base64.StdEncoding.EncodeToString(make([]byte, 32))

	tests := []struct {
		name       string
		ciphertext string
		wantErr    error
	}{
		{"empty string", "", secrets.ErrInvalidCiphertext},
		{"invalid base64", "not-base64!@#$", secrets.ErrInvalidCiphertext},
		{"shorter than nonce", "AA==", secrets.ErrInvalidCiphertext},
		{"valid base64 but invalid ciphertext", garbage, secrets.ErrDecryptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := secrets.DecryptString(appKey, tenantKey, tt.ciphertext)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()
	keys := make(map[string]bool)

	for range 10 {
		key, err := secrets.GenerateKey()
		require.NoError(t, err)

		require.Len(t, key, secrets.KeySize)

		keyStr := string(key)
		require.False(t, keys[keyStr], "generated duplicate key")
		keys[keyStr] = true
	}
}
