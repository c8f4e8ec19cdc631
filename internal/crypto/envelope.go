package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"runtime"

	serrors "github.com/sealbox/sealbox/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

// Envelope layout: salt || nonce || tag || ciphertext, base64-encoded.
// The field sizes and KDF parameters are a compatibility contract; data
// encrypted by one build must decrypt under any other.
const (
	SaltSize  = 16 // 128 bit
	NonceSize = 12 // 96 bit, recommended for AES-GCM
	TagSize   = 16 // 128 bit AES-GCM authentication tag
	KeySize   = 32 // 256 bit AES key

	// Iterations is the fixed PBKDF2-HMAC-SHA256 iteration count,
	// following the OWASP password storage recommendation.
	Iterations = 600000

	// MinEnvelopeSize is the smallest valid decoded envelope: the full
	// salt+nonce+tag header with an empty ciphertext.
	MinEnvelopeSize = SaltSize + NonceSize + TagSize
)

// deriveKey derives a 256-bit AES key from a password and salt using
// PBKDF2-HMAC-SHA256 with the fixed iteration count.
func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, KeySize, sha256.New)
}

// zeroBytes overwrites a byte slice with zeros so key material does not
// linger in memory after use.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Encrypt encrypts plaintext with a key derived from password and returns
// a base64-encoded envelope containing salt, nonce, tag, and ciphertext.
//
// Every call generates a fresh random salt and nonce, so encrypting the
// same plaintext twice produces different envelopes that both decrypt
// correctly under the same password.
func Encrypt(plaintext []byte, password string) (string, error) {
	if password == "" {
		return "", serrors.ErrEmptyPassword
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	key := deriveKey(password, salt)
	defer zeroBytes(key)

	aesgcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// Seal appends the 16-byte tag to the ciphertext; the envelope stores
	// the tag before the ciphertext, so split and reorder.
	sealed := aesgcm.Seal(nil, nonce, plaintext, nil)
	ciphertext := sealed[:len(sealed)-TagSize]
	tag := sealed[len(sealed)-TagSize:]

	envelope := make([]byte, 0, MinEnvelopeSize+len(ciphertext))
	envelope = append(envelope, salt...)
	envelope = append(envelope, nonce...)
	envelope = append(envelope, tag...)
	envelope = append(envelope, ciphertext...)

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt decodes a base64 envelope produced by Encrypt and returns the
// original plaintext.
//
// It returns ErrEnvelopeFormat if the text is not valid base64 or decodes
// to fewer than the 44-byte header minimum, and ErrAuthenticationFailed if
// the authentication tag does not verify (wrong password, corruption, or
// tampering). No plaintext is ever returned on failure.
func Decrypt(envelopeText string, password string) ([]byte, error) {
	if password == "" {
		return nil, serrors.ErrEmptyPassword
	}

	envelope, err := base64.StdEncoding.DecodeString(envelopeText)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid base64: %v", serrors.ErrEnvelopeFormat, err)
	}
	if len(envelope) < MinEnvelopeSize {
		return nil, fmt.Errorf("%w: decoded length %d is below the %d-byte minimum",
			serrors.ErrEnvelopeFormat, len(envelope), MinEnvelopeSize)
	}

	salt := envelope[:SaltSize]
	nonce := envelope[SaltSize : SaltSize+NonceSize]
	tag := envelope[SaltSize+NonceSize : MinEnvelopeSize]
	ciphertext := envelope[MinEnvelopeSize:]

	key := deriveKey(password, salt)
	defer zeroBytes(key)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Open expects the tag appended to the ciphertext.
	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aesgcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, serrors.ErrAuthenticationFailed
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesgcm, nil
}
