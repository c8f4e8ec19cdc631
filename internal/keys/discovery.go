package keys

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	serrors "github.com/sealbox/sealbox/internal/errors"
)

// FindKeysDirectory walks up the directory tree from start looking for a
// keys directory. It accepts either a directory literally named after
// dirName, or a directory containing a dirName subdirectory that holds at
// least one encrypted document matching pattern.
func FindKeysDirectory(start, dirName, pattern string) (string, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start path: %w", err)
	}

	for {
		if strings.EqualFold(filepath.Base(current), dirName) {
			return current, nil
		}

		candidate := filepath.Join(current, dirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			if containsEncryptedDocuments(candidate, pattern) {
				return candidate, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: searched from %s upward", serrors.ErrKeysDirNotFound, start)
		}
		current = parent
	}
}

// SelectEncryptedFile picks one encrypted document at random from dir.
// The random pick spreads lab users across the available key sets.
func SelectEncryptedFile(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("bad file pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: pattern %q in %s", serrors.ErrNoEncryptedFiles, pattern, dir)
	}

	index, err := rand.Int(rand.Reader, big.NewInt(int64(len(matches))))
	if err != nil {
		return "", fmt.Errorf("failed to pick a random file: %w", err)
	}

	return matches[index.Int64()], nil
}

func containsEncryptedDocuments(dir, pattern string) bool {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	return err == nil && len(matches) > 0
}
