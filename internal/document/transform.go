package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sealbox/sealbox/internal/crypto"
	serrors "github.com/sealbox/sealbox/internal/errors"
)

// EncryptDocument encrypts every top-level value of doc with a key derived
// from password and returns a new document with the same keys in the same
// order, each value replaced by an envelope string. The input document is
// not modified.
//
// Every value is serialized to its canonical JSON text before encryption,
// strings and nulls included, so decryption can always re-parse the
// plaintext without guessing at its type.
func EncryptDocument(doc *Document, password string) (*Document, error) {
	if password == "" {
		return nil, serrors.ErrEmptyPassword
	}

	encrypted := NewDocument()
	for _, key := range doc.Keys() {
		value, _ := doc.Get(key)

		var compact bytes.Buffer
		if err := json.Compact(&compact, value); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		envelope, err := crypto.Encrypt(compact.Bytes(), password)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		encodedEnvelope, err := json.Marshal(envelope)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		encrypted.Set(key, encodedEnvelope)
	}

	return encrypted, nil
}

// DecryptDocument reverses EncryptDocument: every value must be a string
// holding an envelope, which is decrypted and re-parsed as a JSON value.
// The result is a new document with the same keys in the same order.
//
// Failures are annotated with the offending key so a single bad entry in a
// large document produces a localized report. Any failure aborts the whole
// operation; no partially decrypted document is ever returned.
func DecryptDocument(doc *Document, password string) (*Document, error) {
	if password == "" {
		return nil, serrors.ErrEmptyPassword
	}

	decrypted := NewDocument()
	for _, key := range doc.Keys() {
		value, _ := doc.Get(key)

		var envelope string
		if err := json.Unmarshal(value, &envelope); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, serrors.ErrValueNotString)
		}

		plaintext, err := crypto.Decrypt(envelope, password)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		if !json.Valid(plaintext) {
			return nil, fmt.Errorf("key %q: %w", key, serrors.ErrPlaintextNotJSON)
		}

		decrypted.Set(key, json.RawMessage(plaintext))
	}

	return decrypted, nil
}
