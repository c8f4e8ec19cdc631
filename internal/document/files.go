package document

import (
	"fmt"
	"os"
	"strings"
)

// EncryptedSuffix is appended to a document's base name when encrypting:
// settings.json becomes settings_encrypted.json.
const EncryptedSuffix = "_encrypted"

// Load reads and parses a flat JSON document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document at %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document at %s: %w", path, err)
	}

	return doc, nil
}

// Save writes the document to path as indented JSON. Encrypted documents
// hold derived ciphertext only, but the decrypted form contains secrets,
// so everything is written 0600.
func Save(path string, doc *Document) error {
	data, err := doc.Indent()
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write document to %s: %w", path, err)
	}

	return nil
}

// EncryptedName derives the output path for an encrypted document:
// config.json -> config_encrypted.json. A path without a .json extension
// gets the suffix appended as-is.
func EncryptedName(path string) string {
	if strings.HasSuffix(path, ".json") {
		return strings.TrimSuffix(path, ".json") + EncryptedSuffix + ".json"
	}
	return path + EncryptedSuffix
}

// DecryptedName reverses EncryptedName: config_encrypted.json ->
// config.json. A path without the suffix is returned unchanged with
// ".decrypted" appended so the original file is never clobbered.
func DecryptedName(path string) string {
	if strings.HasSuffix(path, EncryptedSuffix+".json") {
		return strings.TrimSuffix(path, EncryptedSuffix+".json") + ".json"
	}
	if strings.HasSuffix(path, EncryptedSuffix) {
		return strings.TrimSuffix(path, EncryptedSuffix)
	}
	return path + ".decrypted"
}
