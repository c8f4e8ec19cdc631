package document

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sealbox/sealbox/internal/crypto"
	serrors "github.com/sealbox/sealbox/internal/errors"
)

const testPassword = "test-password-123"

func parseDocument(t *testing.T, input string) *Document {
	t.Helper()
	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Failed to parse test document: %v", err)
	}
	return doc
}

func TestEncryptDecryptDocument_RoundTrip(t *testing.T) {
	input := `{"a":"connection string","b":42,"c":{"region":"westus","depth":{"k":[1,2,3]}},"d":null,"e":true}`
	doc := parseDocument(t, input)

	encrypted, err := EncryptDocument(doc, testPassword)
	if err != nil {
		t.Fatalf("EncryptDocument failed: %v", err)
	}

	decrypted, err := DecryptDocument(encrypted, testPassword)
	if err != nil {
		t.Fatalf("DecryptDocument failed: %v", err)
	}

	serialized, err := json.Marshal(decrypted)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(serialized) != input {
		t.Errorf("Round trip mismatch:\nexpected %s\ngot      %s", input, serialized)
	}
}

func TestEncryptDocument_PreservesKeyOrder(t *testing.T) {
	doc := parseDocument(t, `{"wharf":1,"anchor":2,"mast":3,"bilge":4,"keel":5}`)

	encrypted, err := EncryptDocument(doc, testPassword)
	if err != nil {
		t.Fatalf("EncryptDocument failed: %v", err)
	}

	if !reflect.DeepEqual(encrypted.Keys(), doc.Keys()) {
		t.Errorf("Expected key order %v, got %v", doc.Keys(), encrypted.Keys())
	}
}

func TestEncryptDocument_AllValuesBecomeStrings(t *testing.T) {
	doc := parseDocument(t, `{"number":7,"object":{"a":1},"null":null}`)

	encrypted, err := EncryptDocument(doc, testPassword)
	if err != nil {
		t.Fatalf("EncryptDocument failed: %v", err)
	}

	for _, key := range encrypted.Keys() {
		value, _ := encrypted.Get(key)
		var envelope string
		if err := json.Unmarshal(value, &envelope); err != nil {
			t.Errorf("Expected string value for key %q, got %s", key, value)
		}
	}
}

func TestEncryptDocument_DoesNotMutateInput(t *testing.T) {
	doc := parseDocument(t, `{"a":1,"b":"two"}`)
	before, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if _, err := EncryptDocument(doc, testPassword); err != nil {
		t.Fatalf("EncryptDocument failed: %v", err)
	}

	after, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(before) != string(after) {
		t.Errorf("Input document was mutated: %s became %s", before, after)
	}
}

func TestEncryptDocument_NullBecomesNullText(t *testing.T) {
	doc := parseDocument(t, `{"comment":null}`)

	encrypted, err := EncryptDocument(doc, testPassword)
	if err != nil {
		t.Fatalf("EncryptDocument failed: %v", err)
	}

	value, _ := encrypted.Get("comment")
	var envelope string
	if err := json.Unmarshal(value, &envelope); err != nil {
		t.Fatalf("Expected envelope string, got %s", value)
	}

	plaintext, err := crypto.Decrypt(envelope, testPassword)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if string(plaintext) != "null" {
		t.Errorf("Expected null to encrypt as the text %q, got %q", "null", plaintext)
	}
}

func TestDecryptDocument_EmptyPassword(t *testing.T) {
	doc := parseDocument(t, `{"a":"x"}`)
	if _, err := DecryptDocument(doc, ""); !errors.Is(err, serrors.ErrEmptyPassword) {
		t.Errorf("Expected ErrEmptyPassword, got: %v", err)
	}
}

func TestDecryptDocument_NonStringValue(t *testing.T) {
	doc := parseDocument(t, `{"good":"irrelevant","bad":42}`)

	_, err := DecryptDocument(doc, testPassword)
	if !errors.Is(err, serrors.ErrValueNotString) {
		t.Fatalf("Expected ErrValueNotString, got: %v", err)
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("Expected error to name the offending key, got: %v", err)
	}
}

func TestDecryptDocument_LocalizesCorruptedEntry(t *testing.T) {
	doc := parseDocument(t, `{"intact":"one","broken":"two","fine":"three"}`)

	encrypted, err := EncryptDocument(doc, testPassword)
	if err != nil {
		t.Fatalf("EncryptDocument failed: %v", err)
	}

	// Flip one byte inside the envelope stored under "broken".
	value, _ := encrypted.Get("broken")
	var envelope string
	if err := json.Unmarshal(value, &envelope); err != nil {
		t.Fatalf("Expected envelope string: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		t.Fatalf("Envelope is not valid base64: %v", err)
	}
	raw[crypto.MinEnvelopeSize] ^= 0x01
	corrupted, err := json.Marshal(base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	encrypted.Set("broken", corrupted)

	_, err = DecryptDocument(encrypted, testPassword)
	if !errors.Is(err, serrors.ErrAuthenticationFailed) {
		t.Fatalf("Expected ErrAuthenticationFailed, got: %v", err)
	}
	if !strings.Contains(err.Error(), `"broken"`) {
		t.Errorf("Expected error to name the corrupted key, got: %v", err)
	}
}

func TestDecryptDocument_PlaintextNotJSON(t *testing.T) {
	// An envelope whose authenticated plaintext is not JSON: produced by
	// something other than EncryptDocument.
	envelope, err := crypto.Encrypt([]byte(`{not json`), testPassword)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	encoded, err := json.Marshal(envelope)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	doc := NewDocument()
	doc.Set("foreign", encoded)

	_, err = DecryptDocument(doc, testPassword)
	if !errors.Is(err, serrors.ErrPlaintextNotJSON) {
		t.Fatalf("Expected ErrPlaintextNotJSON, got: %v", err)
	}
	if !strings.Contains(err.Error(), `"foreign"`) {
		t.Errorf("Expected error to name the offending key, got: %v", err)
	}
}
