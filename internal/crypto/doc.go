// Package crypto provides password-based authenticated encryption of
// single values for sealbox.
//
// # Envelope Format
//
// Each encrypted value is a self-contained envelope: a base64-encoded
// concatenation of
//
//	salt (16) || nonce (12) || tag (16) || ciphertext (N)
//
// The salt and nonce are freshly random for every encryption, so the same
// plaintext never encrypts to the same envelope twice. Anything shorter
// than the 44-byte header is rejected before key derivation is attempted.
//
// # Key Derivation
//
// The 256-bit AES key is derived from the password and salt with
// PBKDF2-HMAC-SHA256 at a fixed 600,000 iterations. The count is a
// published constant, not configurable, so every envelope produced by one
// build decrypts under any other. The derived key exists only for the
// duration of a single call and is zeroed before the call returns, on
// success and failure paths alike.
//
// # Authentication
//
// Encryption uses AES-256-GCM with a 128-bit tag and no additional
// authenticated data. Decryption verifies the tag before releasing any
// plaintext; a wrong password and a tampered envelope are indistinguishable
// and both surface as ErrAuthenticationFailed.
package crypto
