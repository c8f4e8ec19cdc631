package keys

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sealbox/sealbox/internal/document"
	serrors "github.com/sealbox/sealbox/internal/errors"
)

// FlattenToEnv converts a decrypted document to .env lines. Nested objects
// flatten with a double-underscore delimiter (PARENT__CHILD=value), keys
// are upper-cased, and values containing shell-significant characters are
// quoted. A null value becomes an empty assignment.
func FlattenToEnv(doc *document.Document) ([]string, error) {
	var lines []string

	for _, key := range doc.Keys() {
		raw, _ := doc.Get(key)
		flattened, err := flattenValue(strings.ToUpper(key), raw)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		lines = append(lines, flattened...)
	}

	return lines, nil
}

func flattenValue(name string, raw json.RawMessage) ([]string, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}

	if _, ok := value.(map[string]any); !ok {
		return []string{name + "=" + envValue(raw, value)}, nil
	}

	// json.Unmarshal into a map loses order, so re-walk the raw object to
	// keep the child keys in document order.
	child, err := document.Parse(raw)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, key := range child.Keys() {
		childRaw, _ := child.Get(key)
		flattened, err := flattenValue(name+"__"+strings.ToUpper(key), childRaw)
		if err != nil {
			return nil, err
		}
		lines = append(lines, flattened...)
	}

	return lines, nil
}

func envValue(raw json.RawMessage, value any) string {
	var text string
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		text = v
	case bool:
		text = strconv.FormatBool(v)
	default:
		// Numbers and arrays keep their JSON text form.
		text = string(raw)
	}

	if strings.ContainsAny(text, " \"'=#") {
		return strconv.Quote(text)
	}
	return text
}

// WriteEnvFile writes the flattened lines to path, one assignment per
// line. It refuses to replace an existing file unless overwrite is set,
// since a hand-edited .env may carry local changes.
func WriteEnvFile(path string, lines []string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", serrors.ErrEnvFileExists, path)
		}
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write env file to %s: %w", path, err)
	}

	return nil
}
