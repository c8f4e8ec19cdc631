package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	serrors "github.com/sealbox/sealbox/internal/errors"
)

// Document is a flat JSON object whose top-level keys keep their original
// insertion order. Values are held as raw JSON so no type information is
// lost between parse and serialize.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]json.RawMessage)}
}

// Parse reads a single JSON object and returns it as an ordered document.
// encoding/json maps are unordered, so the object is walked token by token
// to record the key sequence exactly as it appears in the input.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", serrors.ErrNotObject, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: found %v at top level", serrors.ErrNotObject, tok)
	}

	doc := NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", serrors.ErrNotObject, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string", serrors.ErrNotObject)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: value for key %q: %v", serrors.ErrNotObject, key, err)
		}

		doc.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", serrors.ErrNotObject, err)
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data %v after object", serrors.ErrNotObject, tok)
	}

	return doc, nil
}

// Keys returns the document's keys in insertion order. The returned slice
// is a copy and safe for the caller to modify.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Get returns the raw JSON value stored under key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	value, ok := d.values[key]
	return value, ok
}

// Set stores a raw JSON value under key. A new key is appended to the key
// order; an existing key keeps its position.
func (d *Document) Set(key string, value json.RawMessage) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Len returns the number of top-level entries.
func (d *Document) Len() int {
	return len(d.keys)
}

// MarshalJSON serializes the document with its keys in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')

		compact := bytes.Buffer{}
		if err := json.Compact(&compact, d.values[key]); err != nil {
			return nil, fmt.Errorf("value for key %q: %w", key, err)
		}
		buf.Write(compact.Bytes())
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the document's contents with the parsed object.
func (d *Document) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// Indent returns the document serialized with two-space indentation and a
// trailing newline, the form written to disk.
func (d *Document) Indent() ([]byte, error) {
	compact, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
