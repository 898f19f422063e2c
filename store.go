package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrInvalidFormat is returned when a backing file is valid JSON but not an object.
var ErrInvalidFormat = errors.New("invalid format")

// Store is a string-keyed mapping that remembers insertion order and is
// persisted as a single indented JSON object.
type Store[V any] struct {
	path  string
	keys  []string
	items map[string]V
}

// NewStore returns an empty store backed by path. Nothing is read until Load.
func NewStore[V any](path string) *Store[V] {
	return &Store[V]{path: path, items: map[string]V{}}
}

func (s *Store[V]) Path() string { return s.path }
func (s *Store[V]) Len() int     { return len(s.keys) }

// Keys returns a copy of the keys in insertion order.
func (s *Store[V]) Keys() []string {
	return append([]string(nil), s.keys...)
}

func (s *Store[V]) Has(key string) bool {
	_, ok := s.items[key]
	return ok
}

func (s *Store[V]) Get(key string) (V, bool) {
	v, ok := s.items[key]
	return v, ok
}

// Put inserts or replaces the value for key. A replaced key keeps its position.
func (s *Store[V]) Put(key string, v V) {
	if !s.Has(key) {
		s.keys = append(s.keys, key)
	}
	s.items[key] = v
}

func (s *Store[V]) reset() {
	s.keys = nil
	s.items = map[string]V{}
}

// Load replaces the contents of the store with the backing file. A missing
// file leaves the store empty and is not an error. On any other failure the
// store is left empty and the error is returned.
func (s *Store[V]) Load() error {
	s.reset()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		s.reset()
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	return nil
}

// Save overwrites the backing file with the current contents.
func (s *Store[V]) Save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	// Ensure the directory exists
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// MarshalJSON writes the entries as one object in insertion order.
func (s *Store[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := encodeRaw(key)
		if err != nil {
			return nil, err
		}
		v, err := encodeRaw(s.items[key])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object token by token so the key order survives.
func (s *Store[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: expected an object", ErrInvalidFormat)
	}

	keys := []string{}
	items := map[string]V{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected token %v", ErrInvalidFormat, tok)
		}

		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		if _, dup := items[key]; !dup {
			keys = append(keys, key)
		}
		items[key] = v
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	s.keys, s.items = keys, items
	return nil
}

// encodeRaw marshals v without HTML escaping; non-ASCII text is kept as is.
func encodeRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
