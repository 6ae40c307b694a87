package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrNotFound is returned when a key has never been written.
	ErrNotFound = errors.New("key not found in local store")
)

// Local is a file-backed keyed JSON store, one document per key. It stands in
// for the browser's local storage: each key holds a single JSON value that is
// read and rewritten whole on every change.
type Local struct {
	mu  sync.Mutex
	dir string
}

// Open creates the backing directory if needed and returns the store.
func Open(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Get unmarshals the value stored under key into v. Returns ErrNotFound when
// the key has never been written; malformed stored JSON propagates as a parse
// error.
func (s *Local) Get(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("read key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse key %s: %w", key, err)
	}
	return nil
}

// Put marshals v and overwrites the value under key. The write goes through a
// temp file and rename so a crash never leaves a half-written document.
func (s *Local) Put(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode key %s: %w", key, err)
	}

	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write key %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write key %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write key %s: %w", key, err)
	}
	return nil
}

func (s *Local) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
