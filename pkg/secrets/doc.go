// Package secrets provides guarded symmetric encryption for per-tenant
// secret material.
//
// A compound 32-byte key is derived from an application key and a tenant key
// using HKDF-SHA256, then used with AES-256 in GCM mode to protect arbitrary
// byte slices or strings. The nonce is prepended to the ciphertext so results
// are self-contained.
//
// # Architecture
//
//  1. Key contracts - both appKey and tenantKey must be exactly KeySize
//     (32) bytes. ValidateKeys checks both lengths before either error
//     returns; violations unwrap to guard.ErrInvalidArgument.
//  2. Key derivation - HKDF-SHA256 with package-scoped salt info yields the
//     compound key. Derived key material is zeroed once the cipher holds its
//     own copy.
//  3. Sealing - AES-256-GCM via the standard library. EncryptBytes and
//     DecryptBytes work on raw slices; EncryptString and DecryptString add
//     transparent base64 encoding.
//
// # Usage
//
//	import "github.com/guardkit/guardkit/pkg/secrets"
//
//	// Generate keys once and store securely
//	appKey, _ := secrets.GenerateKey()
//	tenantKey, _ := secrets.GenerateKey()
//
//	// Encrypt
//	ct, err := secrets.EncryptString(appKey, tenantKey, "super-secret")
//	if err != nil {
//	    // handle error
//	}
//
//	// Decrypt
//	plain, err := secrets.DecryptString(appKey, tenantKey, ct)
//	if err != nil {
//	    // handle error
//	}
//
// # Error Handling
//
// Key contract violations return ErrInvalidAppKey or ErrInvalidTenantKey,
// both of which match guard.ErrInvalidArgument with errors.Is. Operational
// failures wrap ErrEncryptionFailed, ErrDecryptionFailed or
// ErrInvalidCiphertext; use errors.Is to match.
//
// # Performance Considerations
//
// AES-GCM is hardware-accelerated on modern CPUs. Allocations are limited to
// the nonce, tag and ciphertext payload plus one 32-byte derived key per
// operation.
package secrets
