package errors

import "errors"

// Input errors indicate the caller supplied something unusable. They are
// detected before any cryptographic work begins.
var (
	// ErrEmptyPassword indicates an empty password was supplied.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrValueNotString indicates a document value was expected to hold an
	// encrypted envelope string but held some other JSON type.
	ErrValueNotString = errors.New("expected encrypted string value")
)

// Envelope errors indicate failures while decoding or verifying an
// encrypted envelope.
var (
	// ErrEnvelopeFormat indicates the envelope text is not valid base64 or
	// decodes to fewer bytes than the fixed salt+nonce+tag header.
	ErrEnvelopeFormat = errors.New("invalid envelope format")

	// ErrAuthenticationFailed indicates the AES-GCM authentication tag did
	// not verify: wrong password, corrupted data, or tampering.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Document errors indicate issues reconstructing a decrypted document.
var (
	// ErrPlaintextNotJSON indicates an authenticated plaintext did not parse
	// as a JSON value when rebuilding a document entry.
	ErrPlaintextNotJSON = errors.New("decrypted value is not valid JSON")

	// ErrNotObject indicates the input text is not a single JSON object.
	ErrNotObject = errors.New("document is not a JSON object")
)

// Discovery errors indicate issues locating or distributing encrypted
// key material.
var (
	// ErrKeysDirNotFound indicates no keys directory was found walking up
	// the directory tree.
	ErrKeysDirNotFound = errors.New("keys directory not found")

	// ErrNoEncryptedFiles indicates a keys directory held no encrypted
	// document files.
	ErrNoEncryptedFiles = errors.New("no encrypted document files found")

	// ErrEnvFileExists indicates the target env file already exists and
	// overwriting was not requested.
	ErrEnvFileExists = errors.New("env file already exists")
)
