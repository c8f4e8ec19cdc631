// Package errors provides typed error values for the sealbox application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. The CLI
// relies on this to choose its diagnostics: an authentication failure gets
// a "check your password" hint, while a format error does not.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Input errors: Bad caller input, rejected before any crypto work
//     (ErrEmptyPassword, ErrValueNotString)
//   - Envelope errors: Malformed or unverifiable envelopes
//     (ErrEnvelopeFormat, ErrAuthenticationFailed)
//   - Document errors: Decrypted content that cannot rebuild a document
//     (ErrPlaintextNotJSON, ErrNotObject)
//   - Discovery errors: Missing keys directories or encrypted files
//     (ErrKeysDirNotFound, ErrNoEncryptedFiles, ErrEnvFileExists)
//
// # Usage
//
// Return errors from internal packages, wrapped with context:
//
//	if password == "" {
//	    return "", errors.ErrEmptyPassword
//	}
//	return nil, fmt.Errorf("key %q: %w", key, err)
//
// Handle errors in the CLI layer:
//
//	doc, err := document.DecryptDocument(doc, password)
//	if errors.Is(err, serrors.ErrAuthenticationFailed) {
//	    // Suggest checking the password
//	}
package errors
