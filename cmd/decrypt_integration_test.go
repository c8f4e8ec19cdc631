package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecryptCommand_RoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "sealbox-test-decrypt-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	inputPath := writeTestDocument(t, tmpDir)

	output, err := runCommand("encrypt", inputPath, "--password", "round-trip-pw")
	if err != nil {
		t.Fatalf("Encrypt failed: %v\nOutput: %s", err, output)
	}

	// Decrypt into a separate file and compare against the original.
	encryptedPath := filepath.Join(tmpDir, "appsettings_encrypted.json")
	restoredPath := filepath.Join(tmpDir, "restored.json")
	output, err = runCommand("decrypt", encryptedPath, "--password", "round-trip-pw", "--output", restoredPath)
	if err != nil {
		t.Fatalf("Decrypt failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Decrypted") {
		t.Errorf("Expected success message, got: %s", output)
	}

	restored, err := os.ReadFile(restoredPath)
	if err != nil {
		t.Fatalf("Restored file was not written: %v", err)
	}
	if string(restored) != testDocument {
		t.Errorf("Round trip mismatch:\nexpected %s\ngot      %s", testDocument, restored)
	}
}

func TestDecryptCommand_WrongPassword(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "sealbox-test-decrypt-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	inputPath := writeTestDocument(t, tmpDir)

	if output, err := runCommand("encrypt", inputPath, "--password", "right"); err != nil {
		t.Fatalf("Encrypt failed: %v\nOutput: %s", err, output)
	}

	encryptedPath := filepath.Join(tmpDir, "appsettings_encrypted.json")
	output, err := runCommand("decrypt", encryptedPath, "--password", "wrong")
	if err != nil {
		t.Fatalf("Expected user-facing failure message, not error: %v", err)
	}
	if !strings.Contains(output, "Check your password") {
		t.Errorf("Expected password hint, got: %s", output)
	}
}

func TestDecryptCommand_NotAnEncryptedFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "sealbox-test-decrypt-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// A plaintext document: the number values are not envelope strings.
	inputPath := writeTestDocument(t, tmpDir)

	output, err := runCommand("decrypt", inputPath, "--password", "pw")
	if err != nil {
		t.Fatalf("Expected user-facing failure message, not error: %v", err)
	}
	if !strings.Contains(output, "Failed to decrypt") {
		t.Errorf("Expected decrypt failure message, got: %s", output)
	}
	if strings.Contains(output, "Check your password") {
		t.Errorf("Structural error must not suggest a password problem, got: %s", output)
	}
}

func TestDecryptCommand_PasswordFromEnvironment(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "sealbox-test-decrypt-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	inputPath := writeTestDocument(t, tmpDir)

	t.Setenv(PasswordEnvVar, "from-environment")
	if output, err := runCommand("encrypt", inputPath); err != nil {
		t.Fatalf("Encrypt failed: %v\nOutput: %s", err, output)
	}

	encryptedPath := filepath.Join(tmpDir, "appsettings_encrypted.json")
	output, err := runCommand("decrypt", encryptedPath, "--output", filepath.Join(tmpDir, "out.json"))
	if err != nil {
		t.Fatalf("Decrypt failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Decrypted") {
		t.Errorf("Expected success message, got: %s", output)
	}
}
