// Package snapshot persists a single JSON document on the local filesystem.
// Writes go through a temp file in the target directory followed by fsync and
// rename, so readers never observe a partially written snapshot and a crash
// mid-write leaves the previous snapshot intact.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes one snapshot file holding a value of type T.
type Store[T any] struct {
	path string
}

// New creates a snapshot store for the given file path. The parent directory
// is created if it does not exist.
func New[T any](path string) (*Store[T], error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	return &Store[T]{path: abs}, nil
}

// Path returns the absolute path of the snapshot file.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads and decodes the snapshot. A missing file is not an error; the
// zero value of T is returned so a fresh deployment starts empty.
func (s *Store[T]) Load() (T, error) {
	var v T

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return v, fmt.Errorf("%w: %v", ErrFailedToReadSnapshot, err)
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrFailedToDecodeSnapshot, err)
	}

	return v, nil
}

// Save encodes v and atomically replaces the snapshot file. The temp file is
// created in the same directory so the final rename stays on one filesystem.
func (s *Store[T]) Save(v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToEncodeSnapshot, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteSnapshot, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrFailedToWriteSnapshot, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrFailedToWriteSnapshot, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrFailedToWriteSnapshot, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrFailedToWriteSnapshot, err)
	}

	return nil
}
